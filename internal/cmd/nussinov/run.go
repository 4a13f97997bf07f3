package nussinov

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/rnafold/compare"
	"github.com/katalvlaran/rnafold/nussinov"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
)

// Summary is the machine-readable output of Run.
type Summary struct {
	Sequence  string        `json:"sequence"`
	Structure string        `json:"structure"`
	Score     int           `json:"score"`
	Pairs     []PairSummary `json:"pairs"`
	Compare   *Outcome      `json:"compare,omitempty"`
}

// PairSummary is one base pair of the predicted structure, 0-based.
type PairSummary struct {
	I     int    `json:"i"`
	J     int    `json:"j"`
	Bases string `json:"bases"`
	Kind  string `json:"kind"`
}

// Outcome summarizes a comparison run.
type Outcome struct {
	Solver      string  `json:"solver"`
	Iterations  int     `json:"iterations"`
	Matches     int     `json:"matches"`
	Low         int     `json:"mismatch_low"`
	High        int     `json:"mismatch_high"`
	Failed      int     `json:"failed"`
	MatchRate   float64 `json:"match_rate"`
	OptimalRate float64 `json:"optimal_rate"`
}

// Run executes the nussinov command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: level}))

	seq, err := sequenceFor(cfg)
	if err != nil {
		return err
	}
	logger.Debug("sequence ready", slog.Int("length", seq.Len()), slog.Bool("random", cfg.Sequence == ""))

	opts := foldOptions(cfg)
	res, err := nussinov.Fold(seq, opts...)
	if err != nil {
		return fmt.Errorf("fold: %w", err)
	}
	logger.Debug("folded", slog.Int("score", res.Score), slog.Int("workers", cfg.Workers))

	sum := Summary{
		Sequence:  seq.String(),
		Structure: res.Structure.String(),
		Score:     res.Score,
		Pairs:     pairSummaries(seq, res.Pairs),
	}

	if cfg.Compare {
		solver := compare.Exhaustive{}
		if seq.Len() > compare.DefaultMaxExhaustiveLength {
			logger.Warn("skipping comparison: sequence too long for exhaustive search",
				slog.Int("length", seq.Len()),
				slog.Int("limit", compare.DefaultMaxExhaustiveLength))
		} else {
			rep, err := compare.Run(ctx, seq, solver, compare.Options{
				Iterations:  cfg.Iterations,
				Timeout:     cfg.Timeout,
				FoldOptions: opts,
			})
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}
			for i, a := range rep.Attempts {
				logger.Debug("attempt",
					slog.Int("iteration", i),
					slog.String("outcome", a.Outcome.String()),
					slog.Int("score", a.Score),
					slog.Duration("elapsed", a.Elapsed))
			}
			sum.Compare = &Outcome{
				Solver:      "exhaustive",
				Iterations:  len(rep.Attempts),
				Matches:     rep.Matches,
				Low:         rep.Low,
				High:        rep.High,
				Failed:      rep.Failed,
				MatchRate:   rep.MatchRate(),
				OptimalRate: rep.OptimalRate(),
			}
		}
	}

	if cfg.JSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}

	return writeText(out, sum)
}

// sequenceFor parses cfg.Sequence or draws a random one.
func sequenceFor(cfg Config) (rna.Sequence, error) {
	if cfg.Sequence == "" {
		seq, err := rna.Random(cfg.Length, rna.NewRNG(cfg.Seed))
		if err != nil {
			return "", fmt.Errorf("random sequence: %w", err)
		}
		return seq, nil
	}
	if cfg.Strict {
		seq, err := rna.Parse(cfg.Sequence)
		if err != nil {
			return "", fmt.Errorf("parse sequence: %w", err)
		}
		return seq, nil
	}

	return rna.Sequence(rna.Normalize(cfg.Sequence)), nil
}

// pairSummaries annotates each pair with its bases and pair kind.
func pairSummaries(seq rna.Sequence, pairs []structure.Pair) []PairSummary {
	out := make([]PairSummary, 0, len(pairs))
	for _, p := range pairs {
		a, b := seq.At(p.I), seq.At(p.J)
		out = append(out, PairSummary{
			I:     p.I,
			J:     p.J,
			Bases: string([]byte{byte(a), byte(b)}),
			Kind:  rna.PairKind(a, b).String(),
		})
	}

	return out
}

// foldOptions maps cfg onto DP engine options.
func foldOptions(cfg Config) []nussinov.Option {
	opts := []nussinov.Option{nussinov.WithParallel(cfg.Workers)}
	if cfg.Strict {
		opts = append(opts, nussinov.WithStrictAlphabet())
	}

	return opts
}

// writeText prints the human-readable report.
func writeText(out io.Writer, sum Summary) error {
	if _, err := fmt.Fprintf(out, "RNA sequence: %s\nScore by DP: %d\nStructure: %s\n",
		sum.Sequence, sum.Score, sum.Structure); err != nil {
		return err
	}
	for _, p := range sum.Pairs {
		if _, err := fmt.Fprintf(out, "Pair: %d-%d %s %s\n", p.I, p.J, p.Bases, p.Kind); err != nil {
			return err
		}
	}
	if sum.Compare == nil {
		return nil
	}
	c := sum.Compare
	_, err := fmt.Fprintf(out, "Solver: %s\nMatches: %d/%d (low %d, high %d, failed %d)\nResult: %.2f %.2f\n",
		c.Solver, c.Matches, c.Iterations, c.Low, c.High, c.Failed, c.MatchRate, c.OptimalRate)

	return err
}
