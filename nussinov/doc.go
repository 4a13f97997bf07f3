// Package nussinov predicts RNA secondary structure by base-pair
// maximization: the Nussinov dynamic-programming algorithm and its traceback.
//
// 🚀 What is Nussinov folding?
//
//	Given a sequence over {A, U, G, C}, find a set of non-crossing base pairs
//	(A–U, G–C, G–U) of maximum size, where every pair encloses at least
//	MinLoop = 3 unpaired positions. The answer is reported as a score (the
//	number of pairs) and one optimal structure in dot-bracket notation.
//
// ✨ Key features:
//   - Scoring oracle: CanPair / Delta with the minimum-loop rule
//   - Span-ordered fill over an n×n table (Solve)
//   - Deterministic traceback with a fixed tie-break order (Reconstruct)
//   - Optional wavefront-parallel fill (WithParallel)
//   - Strict or permissive treatment of foreign symbols (WithStrictAlphabet)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rnafold/nussinov"
//
//	res, err := nussinov.Fold(rna.Sequence("GGGAAAUCC"))
//	// res.Structure == "(((...)))", res.Score == 3
//
//	// or step by step:
//	tbl, score, err := nussinov.Solve(seq, nussinov.WithParallel(4))
//	db, err := nussinov.Traceback(tbl, seq)
//
// Tie-break policy:
//
//	When several structures are optimal, traceback prefers, in order:
//	i unpaired, j unpaired, i paired with j, then the leftmost bifurcation.
//	The returned structure is therefore canonical for a given sequence.
//
// Performance:
//
//   - Time:   O(n³) fill, O(n²) traceback
//   - Memory: O(n²)
package nussinov
