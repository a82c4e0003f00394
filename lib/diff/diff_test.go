package diff

import (
	"reflect"
	"strings"
	"testing"
)

// reconstruct concatenates every part text with sep, failing the test if a
// part carries a type that must not appear on this side.
func reconstruct(t *testing.T, parts []Part, changed PartType, sep string) string {
	t.Helper()
	texts := make([]string, 0, len(parts))
	for _, part := range parts {
		if part.Type != Unchanged && part.Type != changed {
			t.Errorf("unexpected part type %q on side allowing %q", part.Type, changed)
		}
		texts = append(texts, part.Text)
	}
	return strings.Join(texts, sep)
}

func TestWords(t *testing.T) {
	t.Run("pure insertion", func(t *testing.T) {
		result := Words("Hello", "Hello world")

		expectedOld := []Part{{Text: "Hello", Type: Unchanged}}
		expectedNew := []Part{
			{Text: "Hello", Type: Unchanged},
			{Text: " ", Type: Added},
			{Text: "world", Type: Added},
		}
		if !reflect.DeepEqual(result.OldParts, expectedOld) {
			t.Errorf("OldParts = %v, want %v", result.OldParts, expectedOld)
		}
		if !reflect.DeepEqual(result.NewParts, expectedNew) {
			t.Errorf("NewParts = %v, want %v", result.NewParts, expectedNew)
		}
	})

	t.Run("pure deletion", func(t *testing.T) {
		result := Words("Hello world", "Hello")

		expectedOld := []Part{
			{Text: "Hello", Type: Unchanged},
			{Text: " ", Type: Removed},
			{Text: "world", Type: Removed},
		}
		expectedNew := []Part{{Text: "Hello", Type: Unchanged}}
		if !reflect.DeepEqual(result.OldParts, expectedOld) {
			t.Errorf("OldParts = %v, want %v", result.OldParts, expectedOld)
		}
		if !reflect.DeepEqual(result.NewParts, expectedNew) {
			t.Errorf("NewParts = %v, want %v", result.NewParts, expectedNew)
		}
	})

	t.Run("substitution", func(t *testing.T) {
		result := Words("Hello world", "Hello universe")

		expectedOld := []Part{
			{Text: "Hello", Type: Unchanged},
			{Text: " ", Type: Unchanged},
			{Text: "world", Type: Removed},
		}
		expectedNew := []Part{
			{Text: "Hello", Type: Unchanged},
			{Text: " ", Type: Unchanged},
			{Text: "universe", Type: Added},
		}
		if !reflect.DeepEqual(result.OldParts, expectedOld) {
			t.Errorf("OldParts = %v, want %v", result.OldParts, expectedOld)
		}
		if !reflect.DeepEqual(result.NewParts, expectedNew) {
			t.Errorf("NewParts = %v, want %v", result.NewParts, expectedNew)
		}
	})

	t.Run("identical inputs stay unchanged", func(t *testing.T) {
		text := "the quick  brown fox"
		result := Words(text, text)

		for _, part := range append(result.OldParts, result.NewParts...) {
			if part.Type != Unchanged {
				t.Errorf("part %v should be unchanged", part)
			}
		}
		if got := reconstruct(t, result.OldParts, Removed, ""); got != text {
			t.Errorf("old side reconstructs to %q", got)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		result := Words("", "")

		expected := []Part{{Text: "", Type: Unchanged}}
		if !reflect.DeepEqual(result.OldParts, expected) || !reflect.DeepEqual(result.NewParts, expected) {
			t.Errorf("Words(\"\", \"\") = %v / %v, want %v on both sides", result.OldParts, result.NewParts, expected)
		}
	})
}

func TestWordsReconstruction(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"", "something from nothing"},
		{"everything removed", ""},
		{"Hello world", "Hello universe"},
		{"  spaced   oddly\t", "spaced oddly"},
		{"no overlap at all", "zilch"},
		{"汉字 と kana mixed", "汉字 と kana changed"},
		{"a b c a b b a", "c b a b a c"},
	}

	for _, pair := range pairs {
		result := Words(pair[0], pair[1])
		if got := reconstruct(t, result.OldParts, Removed, ""); got != pair[0] {
			t.Errorf("Words(%q, %q) old side reconstructs to %q", pair[0], pair[1], got)
		}
		if got := reconstruct(t, result.NewParts, Added, ""); got != pair[1] {
			t.Errorf("Words(%q, %q) new side reconstructs to %q", pair[0], pair[1], got)
		}
	}
}

func TestLines(t *testing.T) {
	t.Run("whitespace differences align as equal", func(t *testing.T) {
		result := Lines("  Line 1  \n  Line 2  ", "Line 1\nLine 2")

		expectedOld := []Part{
			{Text: "  Line 1  ", Type: Unchanged},
			{Text: "  Line 2  ", Type: Unchanged},
		}
		expectedNew := []Part{
			{Text: "Line 1", Type: Unchanged},
			{Text: "Line 2", Type: Unchanged},
		}
		if !reflect.DeepEqual(result.OldLines, expectedOld) {
			t.Errorf("OldLines = %v, want %v", result.OldLines, expectedOld)
		}
		if !reflect.DeepEqual(result.NewLines, expectedNew) {
			t.Errorf("NewLines = %v, want %v", result.NewLines, expectedNew)
		}
	})

	t.Run("inserted line", func(t *testing.T) {
		result := Lines("a\nb", "a\nx\nb")

		expectedOld := []Part{
			{Text: "a", Type: Unchanged},
			{Text: "b", Type: Unchanged},
		}
		expectedNew := []Part{
			{Text: "a", Type: Unchanged},
			{Text: "x", Type: Added},
			{Text: "b", Type: Unchanged},
		}
		if !reflect.DeepEqual(result.OldLines, expectedOld) {
			t.Errorf("OldLines = %v, want %v", result.OldLines, expectedOld)
		}
		if !reflect.DeepEqual(result.NewLines, expectedNew) {
			t.Errorf("NewLines = %v, want %v", result.NewLines, expectedNew)
		}
	})

	t.Run("changed line", func(t *testing.T) {
		result := Lines("keep\ndrop", "keep\ngain")

		expectedOld := []Part{
			{Text: "keep", Type: Unchanged},
			{Text: "drop", Type: Removed},
		}
		expectedNew := []Part{
			{Text: "keep", Type: Unchanged},
			{Text: "gain", Type: Added},
		}
		if !reflect.DeepEqual(result.OldLines, expectedOld) {
			t.Errorf("OldLines = %v, want %v", result.OldLines, expectedOld)
		}
		if !reflect.DeepEqual(result.NewLines, expectedNew) {
			t.Errorf("NewLines = %v, want %v", result.NewLines, expectedNew)
		}
	})

	t.Run("both empty", func(t *testing.T) {
		result := Lines("", "")

		expected := []Part{{Text: "", Type: Unchanged}}
		if !reflect.DeepEqual(result.OldLines, expected) || !reflect.DeepEqual(result.NewLines, expected) {
			t.Errorf("Lines(\"\", \"\") = %v / %v, want %v on both sides", result.OldLines, result.NewLines, expected)
		}
	})
}

func TestLinesReconstruction(t *testing.T) {
	pairs := [][2]string{
		{"", ""},
		{"", "one\ntwo"},
		{"one\ntwo", ""},
		{"a\nb\nc", "a\nc"},
		{"  Line 1  \n  Line 2  ", "Line 1\nLine 2"},
		{"shared\nold tail", "shared\nnew tail\nextra"},
		{"trailing\n", "trailing\n"},
	}

	for _, pair := range pairs {
		result := Lines(pair[0], pair[1])
		if got := reconstruct(t, result.OldLines, Removed, "\n"); got != pair[0] {
			t.Errorf("Lines(%q, %q) old side reconstructs to %q", pair[0], pair[1], got)
		}
		if got := reconstruct(t, result.NewLines, Added, "\n"); got != pair[1] {
			t.Errorf("Lines(%q, %q) new side reconstructs to %q", pair[0], pair[1], got)
		}
	}
}

func TestResultsAreDeterministic(t *testing.T) {
	a := "a\nb\nc\na\nb\nb\na"
	b := "c\nb\na\nb\na\nc"

	first := Lines(a, b)
	for i := 0; i < 10; i++ {
		if next := Lines(a, b); !reflect.DeepEqual(next, first) {
			t.Fatalf("Lines(%q, %q) produced differing results across calls", a, b)
		}
	}
}
