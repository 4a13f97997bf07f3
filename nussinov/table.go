// SPDX-License-Identifier: MIT

package nussinov

import (
	"fmt"
	"strings"
)

// tableErrorf wraps an underlying error with Table method context.
func tableErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Table.%s(%d,%d): %w", method, i, j, err)
}

// Table is the n×n DP table. Cell (i, j), i < j, holds the maximum number of
// base pairs achievable among positions i..j. Cells with i >= j read as 0.
// Storage is a flat row-major slice of n*n ints.
//
// A Table is written only by Solve; afterwards it is read-only and safe for
// concurrent readers.
type Table struct {
	n    int
	data []int
}

// newTable allocates an n×n zero table. n==0 yields an empty table.
// Complexity: O(n²) time and memory.
func newTable(n int) *Table {
	return &Table{n: n, data: make([]int, n*n)}
}

// Size returns n, the length of the folded sequence.
func (t *Table) Size() int { return t.n }

// get reads (i, j) without bounds checks; i >= j reads as 0.
func (t *Table) get(i, j int) int {
	if i >= j {
		return 0
	}

	return t.data[i*t.n+j]
}

// set writes (i, j) without bounds checks.
func (t *Table) set(i, j, v int) { t.data[i*t.n+j] = v }

// At returns DP[i][j] or ErrOutOfRange for indices outside [0, n).
// Cells with i >= j are 0.
// Complexity: O(1).
func (t *Table) At(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, tableErrorf("At", i, j, ErrOutOfRange)
	}

	return t.get(i, j), nil
}

// Score returns DP[0][n-1], the maximum number of pairs over the whole
// sequence; 0 when n <= 1.
func (t *Table) Score() int {
	if t.n <= 1 {
		return 0
	}

	return t.get(0, t.n-1)
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (t *Table) Clone() *Table {
	data := make([]int, len(t.data))
	copy(data, t.data)

	return &Table{n: t.n, data: data}
}

// Equal reports whether t and other have the same size and cells.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.n != other.n {
		return false
	}
	for k := range t.data {
		if t.data[k] != other.data[k] {
			return false
		}
	}

	return true
}

// String renders the upper triangle, one row per line; cells below the
// diagonal print as '-'.
func (t *Table) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < t.n; i++ {
		for j = 0; j < t.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if j < i {
				sb.WriteByte('-')
				continue
			}
			fmt.Fprintf(&sb, "%d", t.get(i, j))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
