// Package diff computes word-level and line-level differences between two
// strings, classifying every fragment as unchanged, removed or added.
//
// Both entry points produce one part list per side. The lists are
// independent; each reconstructs its own input on its own:
//
//   - concat(OldParts.Text where Type is Unchanged or Removed) == old input
//   - concat(NewParts.Text where Type is Unchanged or Added) == new input
//
// (line mode rejoins the texts with "\n"). Removed never appears on a new
// side and Added never appears on an old side.
//
// Every call allocates its own tokens, table and result, so concurrent calls
// are safe and nothing is retained between them.
package diff

// PartType classifies a fragment of diffed text.
type PartType string

const (
	Unchanged PartType = "unchanged"
	Removed   PartType = "removed"
	Added     PartType = "added"
)

// Part is a labeled fragment of one side of a diff.
type Part struct {
	Text string
	Type PartType
}

// WordResult is a word diff. OldParts holds Unchanged and Removed parts,
// NewParts holds Unchanged and Added parts.
type WordResult struct {
	OldParts []Part
	NewParts []Part
}

// LineResult is a line diff with one part per line, shaped like WordResult.
type LineResult struct {
	OldLines []Part
	NewLines []Part
}

// Words diffs oldText and newText word by word. Tokens are runs of
// whitespace and non-whitespace, so concatenating each side's part texts
// reproduces that side's input byte for byte.
func Words(oldText, newText string) WordResult {
	a, b := WordTokens(oldText), WordTokens(newText)
	oldParts, newParts := assemble(Align(a, b), a, b)
	return WordResult{OldParts: oldParts, NewParts: newParts}
}

// Lines diffs oldText and newText line by line. Lines that differ only in
// leading, trailing or internal spacing align as equal; the returned parts
// keep each side's original text untouched.
func Lines(oldText, newText string) LineResult {
	a, b := LineTokens(oldText), LineTokens(newText)
	oldLines, newLines := assemble(Align(a, b), a, b)
	return LineResult{OldLines: oldLines, NewLines: newLines}
}

// assemble converts an edit script into per-side part lists. An EQL step
// lands in both lists, each carrying its own side's display text (the keys
// matched, the raw text may differ in line mode). DEL lands only in the old
// list, INS only in the new one. Adjacent same-type parts are not merged.
func assemble(script []Edit, a, b []Token) (oldParts, newParts []Part) {
	oldParts = make([]Part, 0, len(script))
	newParts = make([]Part, 0, len(script))
	for _, edit := range script {
		switch edit.Type {
		case EQL:
			oldParts = append(oldParts, Part{Text: a[edit.AIndex].Display, Type: Unchanged})
			newParts = append(newParts, Part{Text: b[edit.BIndex].Display, Type: Unchanged})
		case DEL:
			oldParts = append(oldParts, Part{Text: a[edit.AIndex].Display, Type: Removed})
		case INS:
			newParts = append(newParts, Part{Text: b[edit.BIndex].Display, Type: Added})
		}
	}
	return oldParts, newParts
}
