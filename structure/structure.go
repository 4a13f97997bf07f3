package structure

import (
	"fmt"

	"github.com/katalvlaran/rnafold/rna"
)

// partners matches brackets with a stack and returns, for each position,
// its partner index or -1 when unpaired.
//
// Complexity: O(n) time, O(n) space.
func partners(db DotBracket) ([]int, error) {
	n := len(db)
	partner := make([]int, n)
	stack := make([]int, 0, n/2)

	var (
		i   int
		top int
	)
	for i = 0; i < n; i++ {
		partner[i] = -1
		switch db[i] {
		case Unpaired:
		case Open:
			stack = append(stack, i)
		case Close:
			if len(stack) == 0 {
				return nil, fmt.Errorf("')' at %d: %w", i, ErrUnbalanced)
			}
			top = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			partner[top], partner[i] = i, top
		default:
			return nil, fmt.Errorf("%q at %d: %w", db[i], i, ErrBadSymbol)
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("'(' at %d: %w", stack[len(stack)-1], ErrUnbalanced)
	}

	return partner, nil
}

// Parse returns the base pairs of db ordered by opening index.
// Unknown symbols yield ErrBadSymbol; unmatched brackets yield ErrUnbalanced.
//
// Complexity: O(n).
func Parse(db DotBracket) ([]Pair, error) {
	partner, err := partners(db)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, len(db)/2)
	for i, j := range partner {
		if j > i {
			pairs = append(pairs, Pair{I: i, J: j})
		}
	}

	return pairs, nil
}

// Validate checks that db is balanced and properly nested. Bracket matching
// is nesting by construction, so a successful match is sufficient.
func Validate(db DotBracket) error {
	_, err := partners(db)
	return err
}

// CountPairs returns the number of '(' in db. It does not validate.
func CountPairs(db DotBracket) int {
	var count int
	for i := 0; i < len(db); i++ {
		if db[i] == Open {
			count++
		}
	}

	return count
}

// FromPairs renders n positions with the given pairs in dot-bracket form.
//
// Contract:
//   - every pair satisfies 0 <= I < J < n        (ErrOutOfRange otherwise),
//   - no position occurs in two pairs             (ErrConflict),
//   - no two pairs cross                          (ErrCrossing).
//
// Pair order is irrelevant. n<0 is reported as ErrOutOfRange.
//
// Complexity: O(n + p) time, O(n) space.
func FromPairs(n int, pairs []Pair) (DotBracket, error) {
	if n < 0 {
		return "", ErrOutOfRange
	}
	partner := make([]int, n)
	for i := range partner {
		partner[i] = -1
	}

	var p Pair
	for _, p = range pairs {
		if p.I < 0 || p.J >= n || p.I >= p.J {
			return "", fmt.Errorf("(%d,%d): %w", p.I, p.J, ErrOutOfRange)
		}
		if partner[p.I] != -1 || partner[p.J] != -1 {
			return "", fmt.Errorf("(%d,%d): %w", p.I, p.J, ErrConflict)
		}
		partner[p.I], partner[p.J] = p.J, p.I
	}

	// A closing position must close the innermost open pair.
	buf := make([]byte, n)
	stack := make([]int, 0, len(pairs))
	var i int
	for i = 0; i < n; i++ {
		switch {
		case partner[i] == -1:
			buf[i] = Unpaired
		case partner[i] > i:
			buf[i] = Open
			stack = append(stack, i)
		default:
			if stack[len(stack)-1] != partner[i] {
				return "", fmt.Errorf("(%d,%d): %w", partner[i], i, ErrCrossing)
			}
			stack = stack[:len(stack)-1]
			buf[i] = Close
		}
	}

	return DotBracket(buf), nil
}

// Verify checks db against seq:
//   - db is balanced and nested (Validate),
//   - len(db) == seq.Len()                        (ErrLengthMismatch),
//   - every pair encloses at least minLoop positions (ErrSharpTurn),
//   - every pair is in the rna pair validity relation (ErrIllegalPair).
//
// Complexity: O(n).
func Verify(db DotBracket, seq rna.Sequence, minLoop int) error {
	if db.Len() != seq.Len() {
		return fmt.Errorf("structure %d vs sequence %d: %w", db.Len(), seq.Len(), ErrLengthMismatch)
	}
	pairs, err := Parse(db)
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if p.Loop() < minLoop {
			return fmt.Errorf("(%d,%d) loop %d < %d: %w", p.I, p.J, p.Loop(), minLoop, ErrSharpTurn)
		}
		if !rna.ValidPair(seq.At(p.I), seq.At(p.J)) {
			return fmt.Errorf("(%d,%d) %s-%s: %w", p.I, p.J, seq.At(p.I), seq.At(p.J), ErrIllegalPair)
		}
	}

	return nil
}
