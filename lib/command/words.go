package command

import (
	"fmt"
	"io"

	"promptdiff/lib/command/print_diff"
)

type Words struct {
	args      []string
	options   WordsOption
	stdin     io.Reader
	stderr    io.Writer
	printDiff *print_diff.PrintDiff
}

type WordsOption struct {
}

func NewWords(args []string, options WordsOption, stdin io.Reader, stdout, stderr io.Writer) *Words {
	return &Words{
		args:      args,
		options:   options,
		stdin:     stdin,
		stderr:    stderr,
		printDiff: print_diff.NewPrintDiff(stdout),
	}
}

func (w *Words) Run() int {
	oldText, err := readInput(w.args[0], w.stdin)
	if err != nil {
		fmt.Fprintf(w.stderr, "fatal: %v\n", err)
		return 128
	}
	newText, err := readInput(w.args[1], w.stdin)
	if err != nil {
		fmt.Fprintf(w.stderr, "fatal: %v\n", err)
		return 128
	}

	w.printDiff.PrintWordDiff(w.args[0], w.args[1], oldText, newText)
	return 0
}
