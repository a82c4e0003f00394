package diff

import (
	"strings"
	"unicode"
)

// Token is one unit of comparison. Display is the exact input substring the
// token stands for; Key is the value compared during alignment. For word
// tokens the two are identical. For line tokens Key is the
// whitespace-normalized line, so lines that differ only in spacing align as
// equal while Display keeps the original formatting.
type Token struct {
	Display string
	Key     string
}

// CompareKey satisfies Keyed.
func (t Token) CompareKey() string {
	return t.Key
}

// WordTokens splits text into alternating runs of whitespace and
// non-whitespace. No character is dropped: concatenating Display over the
// result yields text exactly. An empty input produces a single empty token so
// the aligner always sees a non-empty sequence.
func WordTokens(text string) []Token {
	if text == "" {
		return []Token{{}}
	}

	var tokens []Token
	start := 0
	prevSpace := false
	for i, r := range text {
		space := unicode.IsSpace(r)
		if i == 0 {
			prevSpace = space
			continue
		}
		if space != prevSpace {
			run := text[start:i]
			tokens = append(tokens, Token{Display: run, Key: run})
			start = i
			prevSpace = space
		}
	}
	run := text[start:]
	return append(tokens, Token{Display: run, Key: run})
}

// LineTokens splits text on '\n', one token per line. An empty input
// produces a single token for an empty line. Joining Display over the result
// with "\n" yields text exactly.
func LineTokens(text string) []Token {
	lines := strings.Split(text, "\n")
	tokens := make([]Token, len(lines))
	for i, line := range lines {
		tokens[i] = Token{Display: line, Key: normalizeSpace(line)}
	}
	return tokens
}

// normalizeSpace trims the line and collapses internal whitespace runs to a
// single space.
func normalizeSpace(line string) string {
	return strings.Join(strings.Fields(line), " ")
}
