package rna

import (
	"fmt"
	"strings"
	"unicode"
)

// Normalize removes whitespace and quotes, upper-cases letters and maps the
// DNA base T to its RNA counterpart U. No validation is performed.
func Normalize(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsSpace(r) || r == '\'' || r == '"' {
			continue
		}
		r = unicode.ToUpper(r)
		if r == 'T' {
			r = 'U'
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// Parse normalizes raw and returns it as a Sequence, or ErrInvalidSymbol
// (wrapped with the symbol and its 1-based position) if any symbol falls
// outside the alphabet. An empty input yields an empty Sequence.
func Parse(raw string) (Sequence, error) {
	seq := Sequence(Normalize(raw))
	if err := seq.Validate(); err != nil {
		return "", err
	}

	return seq, nil
}

// Validate checks every symbol against the alphabet without normalizing.
// The reported position counts runes, so a multi-byte symbol is named whole
// and at the place a reader would count it.
//
// Complexity: O(n).
func (s Sequence) Validate() error {
	var pos int
	for _, r := range string(s) {
		pos++
		if r > unicode.MaxASCII || !Base(r).Valid() {
			return fmt.Errorf("%q at %d; allowed: A U G C: %w", r, pos, ErrInvalidSymbol)
		}
	}

	return nil
}
