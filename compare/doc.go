// Package compare benchmarks an alternative structure predictor against the
// Nussinov dynamic program.
//
// A Solver proposes a structure and a score for a sequence (for example an
// annealing or QUBO optimizer reached over the network). Run computes the
// exact DP reference once, queries the solver repeatedly under a per-attempt
// timeout and classifies every attempt:
//
//	Match        — identical dot-bracket structure
//	MismatchLow  — score below the DP optimum
//	MismatchHigh — different structure at (or claiming above) the optimum
//	Failed       — the solver returned an error or timed out
//
// Report.MatchRate and Report.OptimalRate summarize the run.
//
// Exhaustive is an exact, exponential Solver that enumerates every legal
// non-crossing pairing. It is independent of the DP and serves as a ground
// truth for short sequences.
package compare
