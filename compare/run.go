package compare

import (
	"context"
	"time"

	"github.com/katalvlaran/rnafold/nussinov"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

// Run folds seq with the Nussinov DP, then calls solver opts.Iterations
// times and classifies each attempt against the DP result.
//
// Contracts:
//   - solver must be non-nil (ErrNilSolver).
//   - opts.Iterations ≥ 1 and opts.Timeout ≥ 0 (ErrBadOptions).
//   - A solver error or per-attempt timeout is recorded as Failed and the
//     loop continues. Cancellation of ctx stops the loop and returns the
//     partial report together with ctx.Err().
//
// Errors from nussinov.Fold are returned as-is.
func Run(ctx context.Context, seq rna.Sequence, solver Solver, opts Options) (Report, error) {
	if solver == nil {
		return Report{}, ErrNilSolver
	}
	if opts.Iterations < 1 || opts.Timeout < 0 {
		return Report{}, ErrBadOptions
	}

	ref, err := nussinov.Fold(seq, opts.FoldOptions...)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Reference: ref,
		Attempts:  make([]Attempt, 0, opts.Iterations),
	}
	var iter int
	for iter = 0; iter < opts.Iterations; iter++ {
		if err = ctx.Err(); err != nil {
			return rep, err
		}
		att := attempt(ctx, seq, solver, opts.Timeout, ref)
		if att.Outcome == Failed && ctx.Err() != nil {
			return rep, ctx.Err()
		}
		rep.add(att)
	}

	return rep, nil
}

// attempt runs one solver call under its own deadline and classifies it.
func attempt(ctx context.Context, seq rna.Sequence, solver Solver, timeout time.Duration, ref nussinov.Result) Attempt {
	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if timeout > 0 {
		runCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	start := time.Now()
	db, score, err := solver.Predict(runCtx, seq)
	att := Attempt{
		Structure: db,
		Score:     score,
		Err:       err,
		Elapsed:   time.Since(start),
	}
	if err != nil {
		att.Outcome = Failed
		return att
	}
	att.Valid = structure.Verify(db, seq, nussinov.MinLoop) == nil
	att.Outcome = classify(db, score, ref)

	return att
}

// classify applies the match / low / high policy.
func classify(db structure.DotBracket, score int, ref nussinov.Result) Outcome {
	switch {
	case db == ref.Structure:
		return Match
	case score < ref.Score:
		return MismatchLow
	default:
		return MismatchHigh
	}
}

// add appends att and bumps its outcome counter.
func (r *Report) add(att Attempt) {
	r.Attempts = append(r.Attempts, att)
	switch att.Outcome {
	case Match:
		r.Matches++
	case MismatchLow:
		r.Low++
	case MismatchHigh:
		r.High++
	default:
		r.Failed++
	}
}
