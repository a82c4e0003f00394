package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"promptdiff/lib/command"
	"promptdiff/lib/diff"
	"promptdiff/lib/pager"
)

var linesCmd = &cobra.Command{
	Use:   "lines <old> <new>",
	Short: "show the line-level diff of two files",
	Long:  ``,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		stdout := cmd.OutOrStdout()
		stderr := cmd.ErrOrStderr()

		context, _ := cmd.Flags().GetInt("unified")
		options := command.LinesOption{Context: context}

		isTTY := term.IsTerminal(int(os.Stdout.Fd()))
		writer, cleanup := pager.SetupPager(isTTY, stdout, stderr)

		lines := command.NewLines(args, options, os.Stdin, writer, stderr)
		code := lines.Run()
		cleanup()
		os.Exit(code)
	},
}

func init() {
	linesCmd.Flags().IntP("unified", "U", diff.HunkContext, "number of unchanged lines shown around each change")
	rootCmd.AddCommand(linesCmd)
}
