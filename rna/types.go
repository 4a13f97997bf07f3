package rna

import "errors"

var (
	// ErrInvalidSymbol indicates a symbol outside the {A, U, G, C} alphabet.
	ErrInvalidSymbol = errors.New("rna: invalid symbol")

	// ErrInvalidLength indicates a negative sequence length was requested.
	ErrInvalidLength = errors.New("rna: length must be non-negative")
)

// Base is a single nucleotide symbol.
type Base byte

// The RNA alphabet.
const (
	A Base = 'A'
	U Base = 'U'
	G Base = 'G'
	C Base = 'C'
)

// Alphabet lists the bases in canonical order (A, U, G, C).
var Alphabet = [4]Base{A, U, G, C}

// Valid reports whether b belongs to the alphabet.
func (b Base) Valid() bool {
	switch b {
	case A, U, G, C:
		return true
	}

	return false
}

// String returns the one-letter code.
func (b Base) String() string { return string(rune(b)) }

// Sequence is an ordered, immutable list of bases indexed 0..Len()-1.
// It is a string type so values cannot be mutated after creation.
type Sequence string

// Len returns the number of symbols.
func (s Sequence) Len() int { return len(s) }

// At returns the symbol at position i. It panics if i is out of range,
// exactly like indexing a string.
func (s Sequence) At(i int) Base { return Base(s[i]) }

// String implements fmt.Stringer.
func (s Sequence) String() string { return string(s) }
