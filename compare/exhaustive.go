// Package compare — Exhaustive (exact search over all legal pairings).
//
// The search walks positions left to right keeping a stack of open
// positions. At each position it may:
//  1. leave it unpaired,
//  2. close the innermost open position (if the two may pair),
//  3. open it (if enough positions remain to close every open one).
//
// Stack discipline makes every enumerated structure non-crossing; the close
// step consults nussinov.CanPair so the minimum loop and pair legality hold.
//
// Bound: with p pairs so far, s open positions and r positions left, at most
// (s + r) / 2 further pairs can be closed. Branches whose bound does not beat
// the incumbent are pruned, so the first maximum in enumeration order wins.
//
// Cancellation: ctx is polled on entry and every 4096 node events.
//
// Complexity: exponential in n; memory O(n).
package compare

import (
	"context"
	"fmt"

	"github.com/katalvlaran/rnafold/nussinov"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

// DefaultMaxExhaustiveLength bounds Exhaustive when MaxLength is 0.
const DefaultMaxExhaustiveLength = 32

// Exhaustive is an exact Solver that enumerates every legal non-crossing
// structure. It does not use the DP table.
type Exhaustive struct {
	// MaxLength rejects longer sequences with ErrTooLong;
	// 0 means DefaultMaxExhaustiveLength.
	MaxLength int
}

// exEngine holds the search state of one Predict call.
type exEngine struct {
	ctx   context.Context
	seq   rna.Sequence
	n     int
	steps int
	err   error

	buf   []byte // current partial structure
	stack []int  // open positions, innermost last
	pairs int

	best     int
	bestBuf  []byte
	foundAny bool
}

// Predict returns the first maximum-pair structure in enumeration order.
func (x Exhaustive) Predict(ctx context.Context, seq rna.Sequence) (structure.DotBracket, int, error) {
	limit := x.MaxLength
	if limit == 0 {
		limit = DefaultMaxExhaustiveLength
	}
	if seq.Len() > limit {
		return "", 0, fmt.Errorf("length %d > %d: %w", seq.Len(), limit, ErrTooLong)
	}

	e := &exEngine{
		ctx:   ctx,
		seq:   seq,
		n:     seq.Len(),
		buf:   []byte(structure.Unfolded(seq.Len())),
		stack: make([]int, 0, seq.Len()/2),
	}
	e.search(0)
	if e.err != nil {
		return "", 0, e.err
	}

	return structure.DotBracket(e.bestBuf), e.best, nil
}

// cancelled polls ctx on the first node and every 4096th after it.
func (e *exEngine) cancelled() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if e.steps&4095 != 1 {
		return false
	}
	e.err = e.ctx.Err()

	return e.err != nil
}

// search explores all completions of positions [pos, n).
func (e *exEngine) search(pos int) {
	if e.cancelled() {
		return
	}
	remaining := e.n - pos
	open := len(e.stack)
	if open > remaining {
		return // cannot close every open position
	}
	if e.foundAny && e.pairs+(open+remaining)/2 <= e.best {
		return
	}
	if pos == e.n {
		e.best = e.pairs
		e.bestBuf = append(e.bestBuf[:0], e.buf...)
		e.foundAny = true
		return
	}

	// 1) unpaired
	e.buf[pos] = structure.Unpaired
	e.search(pos + 1)

	// 2) close the innermost open position
	if open > 0 {
		top := e.stack[open-1]
		if nussinov.CanPair(e.seq, top, pos) {
			e.stack = e.stack[:open-1]
			e.buf[pos] = structure.Close
			e.pairs++
			e.search(pos + 1)
			e.pairs--
			e.stack = append(e.stack, top)
		}
	}

	// 3) open
	if open+1 <= remaining-1 {
		e.stack = append(e.stack, pos)
		e.buf[pos] = structure.Open
		e.search(pos + 1)
		e.stack = e.stack[:open]
	}

	e.buf[pos] = structure.Unpaired
}
