// Package rna - deterministic random sequence generation.
//
// Goals:
//   - Determinism: same seed ⇒ identical sequences across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
package rna

import "math/rand"

// DefaultSeed is used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Random draws n bases uniformly from Alphabet.
// If rng==nil, the default deterministic stream is used (seed==0 policy).
// Returns ErrInvalidLength for n<0.
//
// Complexity: O(n) time, O(n) space.
func Random(n int, rng *rand.Rand) (Sequence, error) {
	if n < 0 {
		return "", ErrInvalidLength
	}
	r := rng
	if r == nil {
		r = NewRNG(0)
	}

	buf := make([]byte, n)
	var i int
	for i = 0; i < n; i++ {
		buf[i] = byte(Alphabet[r.Intn(len(Alphabet))])
	}

	return Sequence(buf), nil
}
