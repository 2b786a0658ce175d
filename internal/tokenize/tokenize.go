package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinWordLength is the shortest alphanumeric run that counts as a word.
const MinWordLength = 2

// Line is a normalized line together with its space-delimited sequences.
type Line struct {
	Normalized string
	Sequences  []string
}

// Parse normalizes a raw line and splits it into sequences.
func Parse(raw string) Line {
	normalized := Normalize(raw)
	return Line{
		Normalized: normalized,
		Sequences:  Sequences(normalized),
	}
}

// Normalize collapses every whitespace run into a single space and strips
// leading whitespace. A trailing whitespace run survives as one space.
func Normalize(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	leading := true
	inSpace := false
	for _, r := range line {
		if isSpace(r) {
			if leading || inSpace {
				continue
			}
			b.WriteByte(' ')
			inSpace = true
			continue
		}
		leading = false
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// Sequences splits a normalized line on the single space character. Empty
// sequences are kept; they produce no tokens downstream.
func Sequences(normalized string) []string {
	return strings.Split(normalized, " ")
}

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// IsAlphanumeric reports whether r is an ASCII letter or digit.
func IsAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// AlphanumericRuns returns every maximal [A-Za-z0-9]+ run in seq.
func AlphanumericRuns(seq string) []string {
	return runs(seq, true)
}

// Words returns the alphanumeric runs of seq that are at least
// MinWordLength characters long.
func Words(seq string) []string {
	all := AlphanumericRuns(seq)
	words := all[:0]
	for _, run := range all {
		if len(run) >= MinWordLength {
			words = append(words, run)
		}
	}
	return words
}

// Punctuation returns every maximal [^A-Za-z0-9]+ run in seq.
func Punctuation(seq string) []string {
	return runs(seq, false)
}

// NGrams returns every contiguous n-character window of seq, in order.
// Sequences shorter than n produce none.
func NGrams(seq string, n int) []string {
	if n <= 0 || seq == "" {
		return nil
	}
	offsets := make([]int, 0, len(seq)+1)
	for i := range seq {
		offsets = append(offsets, i)
	}
	count := len(offsets) - n + 1
	if count <= 0 {
		return nil
	}
	offsets = append(offsets, len(seq))

	grams := make([]string, 0, count)
	for i := 0; i < count; i++ {
		grams = append(grams, seq[offsets[i]:offsets[i+n]])
	}
	return grams
}

func runs(seq string, alphanumeric bool) []string {
	var out []string
	start := -1
	for i, r := range seq {
		if IsAlphanumeric(r) == alphanumeric {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, seq[start:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, seq[start:])
	}
	return out
}

// isSpace matches Unicode white space plus the zero width no-break space,
// which editors leave behind as a byte order mark. NEL (U+0085) is not a
// separator: it is counted as punctuation like any other control character.
func isSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}
