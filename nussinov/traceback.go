package nussinov

import (
	"fmt"

	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

// Traceback reconstructs one optimal structure from a table filled by Solve.
// It allocates a buffer of '.' and runs Reconstruct over [0, n-1].
//
// Errors: ErrInvalidInput if t is nil or sized for another sequence;
// ErrInternalInconsistency if t does not satisfy the recurrence.
//
// Complexity: O(n²) worst case (n cells visited, O(n) split scan each).
func Traceback(t *Table, seq rna.Sequence) (structure.DotBracket, error) {
	if t == nil || t.Size() != seq.Len() {
		return "", fmt.Errorf("traceback: table does not match sequence: %w", ErrInvalidInput)
	}
	buf := []byte(structure.Unfolded(seq.Len()))
	if err := Reconstruct(t, seq, 0, seq.Len()-1, buf); err != nil {
		return "", err
	}

	return structure.DotBracket(buf), nil
}

// Reconstruct writes the dot-bracket symbols of one optimal structure for
// the interval [i, j] into buf. It only writes buf[i..j].
//
// Cases are tested in this fixed order and the first match wins:
//  1. DP[i][j] == DP[i+1][j]                 ⇒ i unpaired, recurse (i+1, j).
//  2. DP[i][j] == DP[i][j-1]                 ⇒ j unpaired, recurse (i, j-1).
//  3. DP[i][j] == DP[i+1][j-1] + Delta(i, j) ⇒ '(' at i, ')' at j, recurse (i+1, j-1).
//  4. first k in (i, j) with DP[i][j] == DP[i][k] + DP[k+1][j] ⇒ recurse (i, k), (k+1, j).
//
// The order decides which optimal structure is returned when several exist.
// Intervals with i >= j are terminal.
//
// Errors:
//   - ErrInvalidInput          — nil table, size/buffer mismatch, or i, j outside [0, n)
//     for a non-terminal interval.
//   - ErrInternalInconsistency — no case matches; the table is corrupt.
func Reconstruct(t *Table, seq rna.Sequence, i, j int, buf []byte) error {
	if i >= j {
		return nil
	}
	if t == nil || t.Size() != seq.Len() || len(buf) != seq.Len() {
		return fmt.Errorf("reconstruct: table, sequence and buffer sizes differ: %w", ErrInvalidInput)
	}
	if i < 0 || j >= t.Size() {
		return fmt.Errorf("reconstruct [%d,%d] of %d: %w", i, j, t.Size(), ErrInvalidInput)
	}

	return reconstruct(t, seq, i, j, buf)
}

// reconstruct is the unchecked recursive descent behind Reconstruct.
func reconstruct(t *Table, seq rna.Sequence, i, j int, buf []byte) error {
	if i >= j {
		return nil
	}
	cur := t.get(i, j)

	switch {
	case cur == t.get(i+1, j):
		buf[i] = structure.Unpaired
		return reconstruct(t, seq, i+1, j, buf)

	case cur == t.get(i, j-1):
		buf[j] = structure.Unpaired
		return reconstruct(t, seq, i, j-1, buf)

	case cur == t.get(i+1, j-1)+Delta(seq, i, j):
		buf[i] = structure.Open
		buf[j] = structure.Close
		return reconstruct(t, seq, i+1, j-1, buf)
	}

	var k int
	for k = i + 1; k < j; k++ {
		if cur != t.get(i, k)+t.get(k+1, j) {
			continue
		}
		if err := reconstruct(t, seq, i, k, buf); err != nil {
			return err
		}

		return reconstruct(t, seq, k+1, j, buf)
	}

	return fmt.Errorf("cell (%d,%d)=%d: %w", i, j, cur, ErrInternalInconsistency)
}
