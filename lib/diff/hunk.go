package diff

import "fmt"

const HunkContext = 3

// LineEdit is one interleaved step of a line diff. ANumber and BNumber are
// 1-based line numbers; a number is 0 on the side the edit does not touch.
// Text is the display text of the governing side: the old line for EQL and
// DEL, the new line for INS.
type LineEdit struct {
	Type    EditType
	ANumber int
	BNumber int
	Text    string
}

func (e LineEdit) String() string {
	return symbols[e.Type] + e.Text
}

// LineEdits returns the interleaved edit view of a line diff. It is built
// from the same tokenization and alignment as Lines, so the classification
// of every line agrees between the two views.
func LineEdits(oldText, newText string) []LineEdit {
	a, b := LineTokens(oldText), LineTokens(newText)
	script := Align(a, b)
	edits := make([]LineEdit, 0, len(script))
	for _, e := range script {
		switch e.Type {
		case EQL:
			edits = append(edits, LineEdit{Type: EQL, ANumber: e.AIndex + 1, BNumber: e.BIndex + 1, Text: a[e.AIndex].Display})
		case DEL:
			edits = append(edits, LineEdit{Type: DEL, ANumber: e.AIndex + 1, Text: a[e.AIndex].Display})
		case INS:
			edits = append(edits, LineEdit{Type: INS, BNumber: e.BIndex + 1, Text: b[e.BIndex].Display})
		}
	}
	return edits
}

// Hunk is a run of edits around one or more changes, padded with up to the
// filter's context of unchanged lines on each side.
type Hunk struct {
	Edits []LineEdit
}

// HunkFilter groups edits into hunks. Changes whose context padding would
// touch end up in the same hunk. A diff with no changes yields no hunks.
func HunkFilter(edits []LineEdit, context int) []*Hunk {
	hunks := []*Hunk{}
	offset := 0
	for {
		for offset < len(edits) && edits[offset].Type == EQL {
			offset++
		}
		if offset >= len(edits) {
			return hunks
		}

		start := offset - context
		if start < 0 {
			start = 0
		}
		last := offset
		for k := offset + 1; k < len(edits) && k <= last+2*context+1; k++ {
			if edits[k].Type != EQL {
				last = k
			}
		}
		end := last + context + 1
		if end > len(edits) {
			end = len(edits)
		}

		hunks = append(hunks, &Hunk{Edits: edits[start:end]})
		offset = end
	}
}

// Header renders the hunk range in the usual "@@ -start,len +start,len @@"
// form. A side absent from the hunk reports 0,0.
func (h *Hunk) Header() string {
	aStart, aLen := sideRange(h.Edits, func(e LineEdit) int { return e.ANumber })
	bStart, bLen := sideRange(h.Edits, func(e LineEdit) int { return e.BNumber })
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", aStart, aLen, bStart, bLen)
}

func sideRange(edits []LineEdit, number func(LineEdit) int) (start, length int) {
	for _, e := range edits {
		n := number(e)
		if n == 0 {
			continue
		}
		if length == 0 {
			start = n
		}
		length++
	}
	return start, length
}
