package structure

import "errors"

var (
	// ErrBadSymbol indicates a symbol other than '.', '(' or ')'.
	ErrBadSymbol = errors.New("structure: invalid dot-bracket symbol")

	// ErrUnbalanced indicates a '(' without a matching ')' or vice versa.
	ErrUnbalanced = errors.New("structure: unbalanced brackets")

	// ErrOutOfRange indicates a pair index outside [0, n) or a pair with I >= J.
	ErrOutOfRange = errors.New("structure: pair index out of range")

	// ErrConflict indicates a position taking part in more than one pair.
	ErrConflict = errors.New("structure: position paired more than once")

	// ErrCrossing indicates two pairs i1 < i2 < j1 < j2 (a pseudoknot).
	ErrCrossing = errors.New("structure: crossing pairs")

	// ErrLengthMismatch indicates the structure and sequence differ in length.
	ErrLengthMismatch = errors.New("structure: length does not match sequence")

	// ErrSharpTurn indicates a pair enclosing fewer unpaired positions than allowed.
	ErrSharpTurn = errors.New("structure: hairpin loop too short")

	// ErrIllegalPair indicates a pair of bases outside the pair validity relation.
	ErrIllegalPair = errors.New("structure: illegal base pair")
)

// Dot-bracket symbols.
const (
	Unpaired byte = '.'
	Open     byte = '('
	Close    byte = ')'
)

// DotBracket is a secondary structure in dot-bracket notation.
type DotBracket string

// Len returns the number of positions.
func (d DotBracket) Len() int { return len(d) }

// String implements fmt.Stringer.
func (d DotBracket) String() string { return string(d) }

// Pair links position I with position J, I < J.
type Pair struct {
	I, J int
}

// Loop returns the number of positions strictly between I and J.
func (p Pair) Loop() int { return p.J - p.I - 1 }

// Unfolded returns the all-unpaired structure of length n.
// For n<=0 it returns the empty structure.
func Unfolded(n int) DotBracket {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = Unpaired
	}

	return DotBracket(buf)
}
