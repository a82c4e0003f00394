package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"promptdiff/lib/command"
	"promptdiff/lib/pager"
)

var wordsCmd = &cobra.Command{
	Use:   "words <old> <new>",
	Short: "show the word-level diff of two files",
	Long:  ``,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		writer, cleanup := pager.SetupPager(isTTY, stdout, stderr)

		words := command.NewWords(args, command.WordsOption{}, os.Stdin, writer, stderr)
		code := words.Run()
		cleanup()
		os.Exit(code)
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
