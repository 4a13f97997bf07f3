// Package rnafold predicts RNA secondary structure by base-pair maximization
// and provides the tooling around it: sequence handling, dot-bracket
// structures and a harness for checking alternative solvers.
//
// 🚀 What is rnafold?
//
//	A small, deterministic library built around the Nussinov algorithm:
//		• rna:       alphabet, immutable sequences, pair validity, seeded generation
//		• nussinov:  scoring oracle, span-ordered DP fill, fixed-order traceback
//		• structure: dot-bracket parsing, rendering, validation and verification
//		• compare:   repeat an external solver and classify it against the DP optimum
//
// ✨ Why rnafold?
//
//   - One canonical answer – traceback breaks ties in a documented, fixed order
//   - No global state – tables are owned by the call that fills them
//   - Optional wavefront parallel fill with identical results
//   - Sentinel errors everywhere, matched with errors.Is
//
// Quick example:
//
//	GGGAAAUCC
//	(((...)))   score 3
//
// Command line:
//
//	go run ./cmd/nussinov -seq GGGAAAUCC
//	RNAFOLD_LENGTH=12 RNAFOLD_SEED=7 go run ./cmd/nussinov -json
package rnafold
