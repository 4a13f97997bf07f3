package nussinov_test

import (
	"testing"

	"github.com/katalvlaran/rnafold/nussinov"
	"github.com/katalvlaran/rnafold/rna"
	"github.com/katalvlaran/rnafold/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Scoring oracle
// -----------------------------------------------------------------------------

// TestCanPair_Separation enforces the minimum loop of three positions.
func TestCanPair_Separation(t *testing.T) {
	seq := rna.Sequence("GAAAC")
	assert.True(t, nussinov.CanPair(seq, 0, 4), "loop of 3 is allowed")
	assert.False(t, nussinov.CanPair(seq, 0, 3), "loop of 2 is a sharp turn")
	assert.False(t, nussinov.CanPair(seq, 4, 0), "i > j never pairs")
	assert.False(t, nussinov.CanPair(seq, 2, 2), "i == j never pairs")
}

// TestCanPair_Relation checks legality in both orientations.
func TestCanPair_Relation(t *testing.T) {
	assert.True(t, nussinov.CanPair(rna.Sequence("UAAAG"), 0, 4))
	assert.True(t, nussinov.CanPair(rna.Sequence("CAAAG"), 0, 4))
	assert.False(t, nussinov.CanPair(rna.Sequence("AAAAC"), 0, 4))
	assert.False(t, nussinov.CanPair(rna.Sequence("NAAAU"), 0, 4), "foreign symbols never pair")
	assert.Equal(t, 1, nussinov.Delta(rna.Sequence("AUUUU"), 0, 4))
	assert.Equal(t, 0, nussinov.Delta(rna.Sequence("AUUUA"), 0, 4))
}

// -----------------------------------------------------------------------------
// Fill + traceback scenarios
// -----------------------------------------------------------------------------

// TestFold_Scenarios covers the fixed small inputs with exact expectations.
func TestFold_Scenarios(t *testing.T) {
	cases := []struct {
		name  string
		seq   rna.Sequence
		want  structure.DotBracket
		score int
	}{
		{"empty", "", "", 0},
		{"single", "G", ".", 0},
		{"no legal pairs", "AAAA", "....", 0},
		{"too short to pair", "AUAU", "....", 0},
		{"hairpin stem", "GGGAAAUCC", "(((...)))", 3},
		{"nested with unpaired", "AAAAAUAU", "((...).)", 2},
		{"bifurcation", "GAAACGAAAC", "(...)(...)", 2},
		{"foreign symbols", "NNNNNNNN", "........", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := nussinov.Fold(tc.seq)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Structure)
			assert.Equal(t, tc.score, res.Score)
			assert.Equal(t, tc.score, len(res.Pairs))
			assert.Equal(t, tc.seq.Len(), res.Table.Size())
		})
	}
}

// TestSolve_ScoreMatchesTable ensures the returned score is DP[0][n-1].
func TestSolve_ScoreMatchesTable(t *testing.T) {
	seq := rna.Sequence("GGGAAAUCC")
	tbl, score, err := nussinov.Solve(seq)
	require.NoError(t, err)
	v, err := tbl.At(0, seq.Len()-1)
	require.NoError(t, err)
	assert.Equal(t, v, score)
	assert.Equal(t, score, tbl.Score())

	// lower triangle and diagonal read as zero
	v, err = tbl.At(5, 2)
	require.NoError(t, err)
	assert.Zero(t, v)

	_, err = tbl.At(0, seq.Len())
	assert.ErrorIs(t, err, nussinov.ErrOutOfRange)
}

// TestSolve_Idempotent runs Solve twice and compares tables and scores.
func TestSolve_Idempotent(t *testing.T) {
	seq, err := rna.Random(60, rna.NewRNG(7))
	require.NoError(t, err)

	t1, s1, err := nussinov.Solve(seq)
	require.NoError(t, err)
	t2, s2, err := nussinov.Solve(seq)
	require.NoError(t, err)
	assert.Equal(t, s1, s2)
	assert.True(t, t1.Equal(t2))
	assert.True(t, t1.Equal(t1.Clone()))
}

// TestSolve_Monotone checks DP[i][j] <= DP[i][j+1] and DP[i][j] <= DP[i-1][j].
func TestSolve_Monotone(t *testing.T) {
	seq, err := rna.Random(48, rna.NewRNG(11))
	require.NoError(t, err)
	tbl, _, err := nussinov.Solve(seq)
	require.NoError(t, err)

	n := seq.Len()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			cur, _ := tbl.At(i, j)
			if j+1 < n {
				right, _ := tbl.At(i, j+1)
				assert.LessOrEqual(t, cur, right, "DP[%d][%d] vs DP[%d][%d]", i, j, i, j+1)
			}
			if i > 0 {
				left, _ := tbl.At(i-1, j)
				assert.LessOrEqual(t, cur, left, "DP[%d][%d] vs DP[%d][%d]", i, j, i-1, j)
			}
		}
	}
}

// TestFold_RandomProperties verifies validity, separation and legality of the
// reconstructed structure on many random sequences.
func TestFold_RandomProperties(t *testing.T) {
	rng := rna.NewRNG(2024)
	for iter := 0; iter < 200; iter++ {
		seq, err := rna.Random(rng.Intn(40), rng)
		require.NoError(t, err)

		res, err := nussinov.Fold(seq)
		require.NoError(t, err, "seq %s", seq)
		require.NoError(t, structure.Verify(res.Structure, seq, nussinov.MinLoop), "seq %s", seq)
		assert.Equal(t, res.Score, structure.CountPairs(res.Structure), "seq %s", seq)
		for _, p := range res.Pairs {
			assert.True(t, nussinov.CanPair(seq, p.I, p.J), "pair %v in %s", p, seq)
		}
	}
}

// TestFold_NoLegalPairsAllDots uses an alphabet subset that can never pair.
func TestFold_NoLegalPairsAllDots(t *testing.T) {
	res, err := nussinov.Fold(rna.Sequence("AACACCAACCAAACCA"))
	require.NoError(t, err)
	assert.Zero(t, res.Score)
	assert.Equal(t, structure.Unfolded(16), res.Structure)
}

// TestSolve_ParallelMatchesSequential compares wavefront and sequential fills
// on a sequence long enough to take the parallel path.
func TestSolve_ParallelMatchesSequential(t *testing.T) {
	seq, err := rna.Random(180, rna.NewRNG(3))
	require.NoError(t, err)

	seqTbl, seqScore, err := nussinov.Solve(seq)
	require.NoError(t, err)
	parTbl, parScore, err := nussinov.Solve(seq, nussinov.WithParallel(4))
	require.NoError(t, err)

	assert.Equal(t, seqScore, parScore)
	assert.True(t, seqTbl.Equal(parTbl), "parallel fill must be identical")
}

// TestSolve_ParallelWorkerCounts covers worker counts that do not divide the
// diagonal evenly and counts larger than the diagonal itself.
func TestSolve_ParallelWorkerCounts(t *testing.T) {
	seq, err := rna.Random(150, rna.NewRNG(11))
	require.NoError(t, err)
	want, wantScore, err := nussinov.Solve(seq)
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 7, 200} {
		got, score, err := nussinov.Solve(seq, nussinov.WithParallel(workers))
		require.NoError(t, err, "workers=%d", workers)
		assert.Equal(t, wantScore, score, "workers=%d", workers)
		assert.True(t, want.Equal(got), "workers=%d", workers)
	}
}

// -----------------------------------------------------------------------------
// Options and errors
// -----------------------------------------------------------------------------

// TestSolve_MaxLength rejects long input before allocation.
func TestSolve_MaxLength(t *testing.T) {
	tbl, _, err := nussinov.Solve(rna.Sequence("GGGAAAUCC"), nussinov.WithMaxLength(8))
	assert.ErrorIs(t, err, nussinov.ErrInvalidInput)
	assert.Nil(t, tbl)

	_, _, err = nussinov.Solve(rna.Sequence("GGGAAAUCC"), nussinov.WithMaxLength(9))
	assert.NoError(t, err)
}

// TestSolve_StrictAlphabet fails fast on foreign symbols only when asked.
func TestSolve_StrictAlphabet(t *testing.T) {
	seq := rna.Sequence("GNAAC")

	_, _, err := nussinov.Solve(seq)
	assert.NoError(t, err, "permissive by default")

	_, _, err = nussinov.Solve(seq, nussinov.WithStrictAlphabet())
	assert.ErrorIs(t, err, nussinov.ErrInvalidSymbol)
	assert.ErrorIs(t, err, rna.ErrInvalidSymbol)

	_, err = nussinov.Fold(seq, nussinov.WithStrictAlphabet())
	assert.ErrorIs(t, err, nussinov.ErrInvalidSymbol)
}

// TestOptions_Panics ensures nonsensical option values are programmer errors.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { nussinov.WithMaxLength(-1) })
	assert.Panics(t, func() { nussinov.WithParallel(0) })
	assert.NotPanics(t, func() { _, _, _ = nussinov.Solve("", nil) })
}

// TestReconstruct_InvalidInput covers nil/mismatched tables and buffers.
func TestReconstruct_InvalidInput(t *testing.T) {
	seq := rna.Sequence("GGGAAAUCC")
	tbl, _, err := nussinov.Solve(seq)
	require.NoError(t, err)

	assert.ErrorIs(t, nussinov.Reconstruct(nil, seq, 0, 8, make([]byte, 9)), nussinov.ErrInvalidInput)
	assert.ErrorIs(t, nussinov.Reconstruct(tbl, seq, 0, 8, make([]byte, 4)), nussinov.ErrInvalidInput)
	assert.ErrorIs(t, nussinov.Reconstruct(tbl, seq, 0, 9, make([]byte, 9)), nussinov.ErrInvalidInput)
	assert.ErrorIs(t, nussinov.Reconstruct(tbl, rna.Sequence("GG"), 0, 1, make([]byte, 2)), nussinov.ErrInvalidInput)
	assert.NoError(t, nussinov.Reconstruct(tbl, seq, 4, 4, nil), "terminal interval is a no-op")

	_, err = nussinov.Traceback(nil, seq)
	assert.ErrorIs(t, err, nussinov.ErrInvalidInput)
}

// TestReconstruct_WritesOnlyInterval checks sub-interval traceback leaves the
// rest of the buffer untouched.
func TestReconstruct_WritesOnlyInterval(t *testing.T) {
	seq := rna.Sequence("GAAACGAAAC")
	tbl, _, err := nussinov.Solve(seq)
	require.NoError(t, err)

	buf := []byte("xxxxxxxxxx")
	require.NoError(t, nussinov.Reconstruct(tbl, seq, 5, 9, buf))
	assert.Equal(t, "xxxxx", string(buf[:5]), "positions before the interval are untouched")
	assert.Equal(t, byte('('), buf[5])
	assert.Equal(t, byte(')'), buf[9])
	assert.NotContains(t, string(buf[6:9]), "(")
	assert.NotContains(t, string(buf[6:9]), ")")
}

// TestReconstruct_Inconsistent detects a corrupted table.
func TestReconstruct_Inconsistent(t *testing.T) {
	seq := rna.Sequence("AAAAA")
	tbl := nussinov.NewTableForTest(seq.Len())
	nussinov.SetCell(tbl, 0, 4, 5)

	_, err := nussinov.Traceback(tbl, seq)
	assert.ErrorIs(t, err, nussinov.ErrInternalInconsistency)
}

// TestTable_String renders the upper triangle.
func TestTable_String(t *testing.T) {
	tbl, _, err := nussinov.Solve(rna.Sequence("GAAAC"))
	require.NoError(t, err)
	want := "0 0 0 0 1\n" +
		"- 0 0 0 0\n" +
		"- - 0 0 0\n" +
		"- - - 0 0\n" +
		"- - - - 0\n"
	assert.Equal(t, want, tbl.String())
}
