package nussinov

import (
	"fmt"

	"github.com/katalvlaran/rnafold/rna"
	"golang.org/x/sync/errgroup"
)

// Solve fills the Nussinov DP table for seq and returns it together with
// DP[0][n-1], the maximum number of non-crossing base pairs.
//
// Algorithm:
//  1. DP[i][j] = 0 for i >= j (empty and singleton intervals).
//  2. For span = 1..n-1, for every i with j = i+span:
//     DP[i][j] = max(
//     DP[i+1][j],                         // i unpaired
//     DP[i][j-1],                         // j unpaired
//     DP[i+1][j-1] + Delta(i, j),         // i pairs with j
//     max_{i<=k<j} DP[i][k] + DP[k+1][j], // bifurcation
//     )
//
// Every cell a span-s cell reads has a span < s, so filling by increasing
// span satisfies all dependencies. Cells of one span are mutually
// independent; WithParallel splits them across goroutines.
//
// Errors:
//   - ErrInvalidInput  — seq longer than the WithMaxLength limit.
//   - ErrInvalidSymbol — foreign symbol under WithStrictAlphabet.
//
// Both are reported before the table is allocated.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(seq rna.Sequence, opts ...Option) (*Table, int, error) {
	o := gatherOptions(opts...)
	if err := validateSequence(seq, o); err != nil {
		return nil, 0, err
	}

	n := seq.Len()
	t := newTable(n)
	var span int
	for span = 1; span < n; span++ {
		if o.workers > 1 && n-span >= parallelMinCells {
			if err := fillSpanParallel(t, seq, span, o.workers); err != nil {
				return nil, 0, fmt.Errorf("span %d: %w", span, err)
			}
			continue
		}
		fillSpan(t, seq, span, 0, n-span)
	}

	return t, t.Score(), nil
}

// validateSequence enforces the length limit and, when strict, the alphabet.
func validateSequence(seq rna.Sequence, o Options) error {
	if seq.Len() > o.maxLength {
		return fmt.Errorf("length %d exceeds limit %d: %w", seq.Len(), o.maxLength, ErrInvalidInput)
	}
	if o.strict {
		if err := seq.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidSymbol, err)
		}
	}

	return nil
}

// fillSpan computes cells (i, i+span) for i in [from, to).
func fillSpan(t *Table, seq rna.Sequence, span, from, to int) {
	var i int
	for i = from; i < to; i++ {
		t.set(i, i+span, bestCell(t, seq, i, i+span))
	}
}

// fillSpanParallel splits one anti-diagonal into contiguous chunks (about
// chunksPerWorker per worker) and runs at most workers of them at a time.
// Chunks write disjoint cells and read only cells of smaller spans, so no
// locking is required.
func fillSpanParallel(t *Table, seq rna.Sequence, span, workers int) error {
	cells := t.n - span
	chunk := max(1, (cells+workers*chunksPerWorker-1)/(workers*chunksPerWorker))

	var g errgroup.Group
	g.SetLimit(workers)
	var from int
	for from = 0; from < cells; from += chunk {
		lo, hi := from, min(from+chunk, cells)
		g.Go(func() error {
			fillSpan(t, seq, span, lo, hi)
			return nil
		})
	}

	return g.Wait()
}

// bestCell evaluates the four recurrence cases for (i, j), i < j.
func bestCell(t *Table, seq rna.Sequence, i, j int) int {
	best := t.get(i+1, j)
	if v := t.get(i, j-1); v > best {
		best = v
	}
	if v := t.get(i+1, j-1) + Delta(seq, i, j); v > best {
		best = v
	}

	var k, v int
	for k = i; k < j; k++ {
		v = t.get(i, k) + t.get(k+1, j)
		if v > best {
			best = v
		}
	}

	return best
}
