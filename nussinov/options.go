// SPDX-License-Identifier: MIT

// Package nussinov: functional configuration for the DP engine.
//
// Design goals:
//   - Deterministic behavior: every option leaves the resulting table unchanged
//     except WithStrictAlphabet and WithMaxLength, which only add rejections.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package nussinov

// Defaults (single source of truth).
const (
	// DefaultMaxLength bounds the sequence length accepted by Solve. The table
	// holds n² cells, so 4096 positions already take 128 MiB on 64-bit hosts.
	DefaultMaxLength = 4096

	// DefaultWorkers keeps the fill sequential.
	DefaultWorkers = 1

	// DefaultStrictAlphabet treats foreign symbols as non-pairing.
	DefaultStrictAlphabet = false

	// parallelMinCells is the smallest diagonal worth splitting across workers.
	parallelMinCells = 64

	// chunksPerWorker splits a diagonal finer than the worker count so that
	// uneven chunks balance out under the errgroup limit.
	chunksPerWorker = 4
)

const (
	panicMaxLengthInvalid = "nussinov: WithMaxLength: limit must be non-negative"
	panicWorkersInvalid   = "nussinov: WithParallel: workers must be positive"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	maxLength int  // DefaultMaxLength
	workers   int  // DefaultWorkers
	strict    bool // DefaultStrictAlphabet
}

// WithMaxLength rejects sequences longer than limit with ErrInvalidInput.
// Panics if limit < 0.
func WithMaxLength(limit int) Option {
	if limit < 0 {
		panic(panicMaxLengthInvalid)
	}

	return func(o *Options) { o.maxLength = limit }
}

// WithParallel fills each anti-diagonal of the table with up to workers
// goroutines. workers==1 is the sequential fill. Panics if workers < 1.
func WithParallel(workers int) Option {
	if workers < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithStrictAlphabet makes Solve and Fold fail with ErrInvalidSymbol on any
// symbol outside {A, U, G, C} instead of treating it as non-pairing.
func WithStrictAlphabet() Option {
	return func(o *Options) { o.strict = true }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		maxLength: DefaultMaxLength,
		workers:   DefaultWorkers,
		strict:    DefaultStrictAlphabet,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
