package nussinov

import "github.com/katalvlaran/rnafold/rna"

// MinLoop is the minimum number of unpaired positions a pair must enclose.
// Pairs (i, j) with j-i-1 < MinLoop are sharp turns and never score.
const MinLoop = 3

// CanPair reports whether positions i and j of seq may pair: they must
// enclose at least MinLoop positions and their bases must belong to the
// rna pair validity relation (checked in either orientation). Symbols
// outside the alphabet never pair.
//
// CanPair is pure and total for 0 <= i, j < seq.Len(); i >= j is always
// false since it violates the separation rule.
//
// Complexity: O(1).
func CanPair(seq rna.Sequence, i, j int) bool {
	if j-i-1 < MinLoop {
		return false
	}

	return rna.ValidPair(seq.At(i), seq.At(j))
}

// Delta is the unit score contribution of pairing i with j: 1 if CanPair,
// otherwise 0.
func Delta(seq rna.Sequence, i, j int) int {
	if CanPair(seq, i, j) {
		return 1
	}

	return 0
}
