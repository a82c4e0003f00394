// Package print_diff renders diff results for terminals: unified-style line
// diffs with hunk headers, and two-sided word diffs with inline highlights.
package print_diff

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"promptdiff/lib/diff"
)

type PrintDiff struct {
	stdout io.Writer
}

func NewPrintDiff(stdout io.Writer) *PrintDiff {
	return &PrintDiff{stdout: stdout}
}

// PrintLineDiff prints a unified-style line diff of a and b: a file header,
// cyan hunk headers, red "-" lines and green "+" lines with context
// unchanged lines around each change. Identical inputs print nothing.
func (p *PrintDiff) PrintLineDiff(aName, bName, a, b string, context int) {
	hunks := diff.HunkFilter(diff.LineEdits(a, b), context)
	if len(hunks) == 0 {
		return
	}

	fmt.Fprintf(p.stdout, "--- %s\n", aName)
	fmt.Fprintf(p.stdout, "+++ %s\n", bName)
	for _, hunk := range hunks {
		p.printHunk(hunk)
	}
}

func (p *PrintDiff) printHunk(hunk *diff.Hunk) {
	color.New(color.FgCyan).Fprintf(p.stdout, "%s\n", hunk.Header())

	for _, edit := range hunk.Edits {
		switch edit.Type {
		case diff.INS:
			color.New(color.FgGreen).Fprintf(p.stdout, "%s\n", edit.String())
		case diff.DEL:
			color.New(color.FgRed).Fprintf(p.stdout, "%s\n", edit.String())
		default:
			fmt.Fprintf(p.stdout, "%s\n", edit.String())
		}
	}
}

// PrintWordDiff prints both sides of a word diff: the old text with removed
// runs in red, then the new text with added runs in green. Identical inputs
// print nothing.
func (p *PrintDiff) PrintWordDiff(aName, bName, a, b string) {
	result := diff.Words(a, b)
	if allUnchanged(result.OldParts) && allUnchanged(result.NewParts) {
		return
	}

	p.printParts("--- "+aName, result.OldParts, diff.Removed, color.New(color.FgRed))
	p.printParts("+++ "+bName, result.NewParts, diff.Added, color.New(color.FgGreen))
}

func (p *PrintDiff) printParts(header string, parts []diff.Part, changed diff.PartType, highlight *color.Color) {
	color.New(color.Bold).Fprintf(p.stdout, "%s\n", header)
	for _, part := range parts {
		if part.Type == changed {
			highlight.Fprint(p.stdout, part.Text)
		} else {
			fmt.Fprint(p.stdout, part.Text)
		}
	}
	fmt.Fprintln(p.stdout)
}

func allUnchanged(parts []diff.Part) bool {
	for _, part := range parts {
		if part.Type != diff.Unchanged {
			return false
		}
	}
	return true
}
