package command

import (
	"fmt"
	"io"

	"promptdiff/lib/command/print_diff"
	"promptdiff/lib/diff"
)

type Lines struct {
	args      []string
	options   LinesOption
	stdin     io.Reader
	stderr    io.Writer
	printDiff *print_diff.PrintDiff
}

type LinesOption struct {
	// Context is the number of unchanged lines shown around each change.
	Context int
}

func NewLines(args []string, options LinesOption, stdin io.Reader, stdout, stderr io.Writer) *Lines {
	if options.Context < 0 {
		options.Context = diff.HunkContext
	}
	return &Lines{
		args:      args,
		options:   options,
		stdin:     stdin,
		stderr:    stderr,
		printDiff: print_diff.NewPrintDiff(stdout),
	}
}

func (l *Lines) Run() int {
	oldText, err := readInput(l.args[0], l.stdin)
	if err != nil {
		fmt.Fprintf(l.stderr, "fatal: %v\n", err)
		return 128
	}
	newText, err := readInput(l.args[1], l.stdin)
	if err != nil {
		fmt.Fprintf(l.stderr, "fatal: %v\n", err)
		return 128
	}

	l.printDiff.PrintLineDiff(l.args[0], l.args[1], oldText, newText, l.options.Context)
	return 0
}
