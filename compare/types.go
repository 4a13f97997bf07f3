package compare

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/rnafold/nussinov"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

var (
	// ErrNilSolver is returned when Run receives a nil Solver.
	ErrNilSolver = errors.New("compare: solver is nil")

	// ErrBadOptions is returned for Iterations < 1 or a negative Timeout.
	ErrBadOptions = errors.New("compare: invalid options")

	// ErrTooLong is returned by Exhaustive for sequences above its length limit.
	ErrTooLong = errors.New("compare: sequence too long for exhaustive search")
)

// Solver predicts a secondary structure and its pair count for seq.
// Implementations should honor ctx cancellation.
type Solver interface {
	Predict(ctx context.Context, seq rna.Sequence) (structure.DotBracket, int, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, seq rna.Sequence) (structure.DotBracket, int, error)

// Predict calls f.
func (f SolverFunc) Predict(ctx context.Context, seq rna.Sequence) (structure.DotBracket, int, error) {
	return f(ctx, seq)
}

// Default harness settings.
const (
	DefaultIterations = 5
	DefaultTimeout    = 10 * time.Second
)

// Options configures Run.
//
// Fields:
//   - Iterations  — number of solver attempts (≥ 1).
//   - Timeout     — per-attempt deadline; 0 disables it.
//   - FoldOptions — forwarded to nussinov.Fold for the reference.
type Options struct {
	Iterations  int
	Timeout     time.Duration
	FoldOptions []nussinov.Option
}

// DefaultOptions returns {DefaultIterations, DefaultTimeout, nil}.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Timeout:    DefaultTimeout,
	}
}

// Outcome classifies one solver attempt against the DP reference.
type Outcome int

const (
	// Match means the solver returned the reference structure.
	Match Outcome = iota

	// MismatchLow means the solver scored below the DP optimum.
	MismatchLow

	// MismatchHigh means a different structure scoring at least the optimum.
	MismatchHigh

	// Failed means the solver returned an error.
	Failed
)

// String returns a short name.
func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case MismatchLow:
		return "mismatch-low"
	case MismatchHigh:
		return "mismatch-high"
	default:
		return "failed"
	}
}

// Attempt records a single solver call.
type Attempt struct {
	Structure structure.DotBracket
	Score     int
	Outcome   Outcome

	// Valid is true when Structure passes structure.Verify with
	// nussinov.MinLoop against the sequence.
	Valid bool

	Err     error
	Elapsed time.Duration
}

// Report aggregates a Run.
type Report struct {
	Reference nussinov.Result
	Attempts  []Attempt

	Matches int
	Low     int
	High    int
	Failed  int
}

// MatchRate is the fraction of attempts that reproduced the reference.
func (r Report) MatchRate() float64 {
	if len(r.Attempts) == 0 {
		return 0
	}

	return float64(r.Matches) / float64(len(r.Attempts))
}

// OptimalRate is the fraction of attempts that matched or reached at least
// the optimal score with a different structure.
func (r Report) OptimalRate() float64 {
	if len(r.Attempts) == 0 {
		return 0
	}

	return float64(r.Matches+r.High) / float64(len(r.Attempts))
}
