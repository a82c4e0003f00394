package diff

type EditType string

const (
	EQL EditType = "eql"
	INS EditType = "ins"
	DEL EditType = "del"
)

var symbols = map[EditType]string{
	EQL: " ",
	INS: "+",
	DEL: "-",
}

// Keyed is what alignment requires of a sequence element: a key to test for
// equality. Both diff modes share one aligner; only their keys differ.
type Keyed interface {
	CompareKey() string
}

// Edit is one step of an edit script. AIndex and BIndex are positions in the
// old and new sequences; an index is -1 when its side does not take part
// (AIndex for INS, BIndex for DEL).
type Edit struct {
	Type   EditType
	AIndex int
	BIndex int
}

// Align computes a longest-common-subsequence edit script from a to b,
// comparing elements by CompareKey. The script lists EQL, DEL and INS steps
// in left-to-right order and is total over any pair of sequences, including
// empty ones.
//
// The DP table costs O(len(a)*len(b)) time and space. That is acceptable for
// prompt-sized inputs (hundreds to low thousands of tokens) but makes this
// aligner unsuitable for large documents; doing those would mean swapping in
// a linear-space variant such as Hirschberg's algorithm.
func Align[T Keyed](a, b []T) []Edit {
	// Flat backing arena addressed by row*width+col.
	width := len(b) + 1
	table := make([]int, (len(a)+1)*width)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1].CompareKey() == b[j-1].CompareKey():
				table[i*width+j] = table[(i-1)*width+j-1] + 1
			case table[(i-1)*width+j] > table[i*width+j-1]:
				table[i*width+j] = table[(i-1)*width+j]
			default:
				table[i*width+j] = table[i*width+j-1]
			}
		}
	}

	var script []Edit
	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1].CompareKey() == b[j-1].CompareKey():
			script = append(script, Edit{Type: EQL, AIndex: i - 1, BIndex: j - 1})
			i--
			j--
		case j > 0 && (i == 0 || table[i*width+j-1] >= table[(i-1)*width+j]):
			// The >= pins the tie-break: on equal table values the INS move
			// wins, fixing one of the many optimal scripts.
			script = append(script, Edit{Type: INS, AIndex: -1, BIndex: j - 1})
			j--
		default:
			script = append(script, Edit{Type: DEL, AIndex: i - 1, BIndex: -1})
			i--
		}
	}

	// The walk above runs back to front; reverse into input order.
	for l, r := 0, len(script)-1; l < r; l, r = l+1, r-1 {
		script[l], script[r] = script[r], script[l]
	}
	return script
}
