package nussinov

import (
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

// Result is the outcome of Fold.
type Result struct {
	// Sequence is the folded input.
	Sequence rna.Sequence

	// Structure is the canonical optimal structure in dot-bracket form,
	// len(Structure) == Sequence.Len().
	Structure structure.DotBracket

	// Score is the maximum number of base pairs, == CountPairs(Structure).
	Score int

	// Pairs lists the pairs of Structure ordered by opening index.
	Pairs []structure.Pair

	// Table is the filled DP table, retained read-only for inspection.
	Table *Table
}

// Fold runs Solve and Traceback on seq.
//
// Example:
//
//	res, err := nussinov.Fold(rna.Sequence("GGGAAAUCC"))
//	// res.Structure == "(((...)))", res.Score == 3
func Fold(seq rna.Sequence, opts ...Option) (Result, error) {
	t, score, err := Solve(seq, opts...)
	if err != nil {
		return Result{}, err
	}
	db, err := Traceback(t, seq)
	if err != nil {
		return Result{}, err
	}
	pairs, err := structure.Parse(db)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Sequence:  seq,
		Structure: db,
		Score:     score,
		Pairs:     pairs,
		Table:     t,
	}, nil
}
