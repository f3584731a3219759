package elbow_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spectral/elbow"
)

// TestSelectDimension_BadElbowCount verifies that nElbows < 1 errors before
// any sequence validation takes place.
func TestSelectDimension_BadElbowCount(t *testing.T) {
	_, err := elbow.SelectDimension([]float64{3, 2, 1}, 0)
	assert.ErrorIs(t, err, elbow.ErrBadElbowCount, "nElbows=0 must error ErrBadElbowCount")

	_, err = elbow.SelectDimension(nil, -1)
	assert.ErrorIs(t, err, elbow.ErrBadElbowCount, "elbow-count check precedes length check")
}

// TestSelectDimension_TooShort verifies the minimum-length contract.
func TestSelectDimension_TooShort(t *testing.T) {
	_, err := elbow.SelectDimension(nil, 1)
	assert.ErrorIs(t, err, elbow.ErrTooShort, "nil input must error ErrTooShort")

	_, err = elbow.SelectDimension([]float64{5}, 1)
	assert.ErrorIs(t, err, elbow.ErrTooShort, "single value must error ErrTooShort")
}

// TestSelectDimension_InvalidValues covers NaN/Inf, negative, and unsorted inputs.
func TestSelectDimension_InvalidValues(t *testing.T) {
	_, err := elbow.SelectDimension([]float64{3, math.NaN(), 1}, 1)
	assert.ErrorIs(t, err, elbow.ErrNaNInf, "NaN must error ErrNaNInf")

	_, err = elbow.SelectDimension([]float64{math.Inf(1), 2, 1}, 1)
	assert.ErrorIs(t, err, elbow.ErrNaNInf, "+Inf must error ErrNaNInf")

	_, err = elbow.SelectDimension([]float64{3, 2, -1}, 1)
	assert.ErrorIs(t, err, elbow.ErrNegativeValue, "negative value must error ErrNegativeValue")

	_, err = elbow.SelectDimension([]float64{3, 4, 1}, 1)
	assert.ErrorIs(t, err, elbow.ErrNotDescending, "ascending step must error ErrNotDescending")
}

// TestSelectDimension_SharpDrop verifies the canonical two-level sequence:
// [10,10,1,1,1] has a perfect split after the second value.
func TestSelectDimension_SharpDrop(t *testing.T) {
	res, err := elbow.SelectDimension([]float64{10, 10, 1, 1, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Elbows, "perfect two-level fit splits at index 2")
	assert.Equal(t, 2, res.Dimension)
}

// TestSelectDimension_FlatSequence pins the documented flat-input policy:
// every split fits exactly, so the earliest-index tie-break selects elbow 1
// (and elbow 2 immediately after it when a second elbow is requested).
func TestSelectDimension_FlatSequence(t *testing.T) {
	flat := []float64{7, 7, 7, 7, 7}

	res, err := elbow.SelectDimension(flat, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Elbows, "flat input resolves to the first index")

	res, err = elbow.SelectDimension(flat, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Elbows, "second elbow follows the same tie-break in the tail")
}

// TestSelectDimension_LargestValueBias pins the heuristic's documented bias:
// when the gap above the leading run dwarfs the run-to-noise gap, the first
// elbow isolates the single largest value instead of grouping it with the
// near-equal run that follows.
func TestSelectDimension_LargestValueBias(t *testing.T) {
	// One dominant value, a run of ten near-equal values (3.0 down to 2.1),
	// then a ten-value noise tail (1.0 down to 0.55).
	values := []float64{20}
	for i := 0; i < 10; i++ {
		values = append(values, 3.0-0.1*float64(i))
	}
	for i := 0; i < 10; i++ {
		values = append(values, 1.0-0.05*float64(i))
	}

	res, err := elbow.SelectDimension(values, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Elbows[0], "first elbow isolates the dominant value, not the run")
	assert.Equal(t, 11, res.Elbows[1], "second elbow lands at the run/noise boundary")
	assert.Equal(t, 11, res.Dimension)
}

// TestSelectDimension_ElbowInvariants checks the structural guarantees on a
// spread of descending sequences: first elbow in [1,n-1], elbows strictly
// increasing, dimension bounded by the sequence length.
func TestSelectDimension_ElbowInvariants(t *testing.T) {
	sequences := [][]float64{
		{9, 1},
		{5, 4, 3, 2, 1},
		{100, 50, 25, 12.5, 6.25, 3.125, 1.5625, 0.78},
		{3, 3, 3, 2, 2, 2, 1, 1, 1, 0, 0, 0},
		{2.5, 2.5, 0.1, 0.1},
	}

	for _, seq := range sequences {
		res, err := elbow.SelectDimension(seq, 2)
		if err != nil {
			assert.ErrorIs(t, err, elbow.ErrElbowsExhausted, "only exhaustion may fail valid input")
			continue
		}
		require.NotEmpty(t, res.Elbows)
		assert.GreaterOrEqual(t, res.Elbows[0], 1, "first elbow must be >= 1")
		assert.LessOrEqual(t, res.Elbows[0], len(seq)-1, "first elbow must be <= n-1")
		for i := 1; i < len(res.Elbows); i++ {
			assert.Greater(t, res.Elbows[i], res.Elbows[i-1], "elbows must strictly increase")
		}
		assert.Equal(t, res.Elbows[len(res.Elbows)-1], res.Dimension)
		assert.LessOrEqual(t, res.Dimension, len(seq), "dimension bounded by sequence length")
	}
}

// TestSelectDimension_Exhausted verifies the unsatisfiable-request error:
// after an elbow at the penultimate index there is no room for another.
func TestSelectDimension_Exhausted(t *testing.T) {
	_, err := elbow.SelectDimension([]float64{10, 1}, 2)
	assert.ErrorIs(t, err, elbow.ErrElbowsExhausted, "len-2 input cannot hold two elbows")

	// No partial result escapes on failure.
	res, err := elbow.SelectDimension([]float64{10, 10, 1, 1}, 5)
	assert.ErrorIs(t, err, elbow.ErrElbowsExhausted)
	assert.Empty(t, res.Elbows, "failed call must not return partial elbows")
}

// TestSelectDimension_Idempotent verifies that repeated calls on the same
// input produce identical results (pure function, no hidden state).
func TestSelectDimension_Idempotent(t *testing.T) {
	values := []float64{14, 6.1, 6.0, 5.9, 2, 1.9, 1.8, 0.3, 0.2, 0.1}

	first, err := elbow.SelectDimension(values, 3)
	require.NoError(t, err)
	second, err := elbow.SelectDimension(values, 3)
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical input must yield identical output")
}

// TestLikelihoods_MatchesFirstElbow verifies the diagnostic surface: one
// score per candidate split, argmax at the first elbow, +Inf on exact fits.
func TestLikelihoods_MatchesFirstElbow(t *testing.T) {
	values := []float64{10, 10, 1, 1, 1}

	lls, err := elbow.Likelihoods(values)
	require.NoError(t, err)
	require.Len(t, lls, len(values)-1, "one score per candidate split")
	assert.True(t, math.IsInf(lls[1], 1), "exact two-level split scores +Inf")

	best := 0
	for q, ll := range lls {
		if ll > lls[best] {
			best = q
		}
	}
	res, err := elbow.SelectDimension(values, 1)
	require.NoError(t, err)
	assert.Equal(t, res.Elbows[0], best+1, "argmax of Likelihoods equals the first elbow")
}

// TestLikelihoods_Validation verifies that the diagnostic applies the same
// input contract as SelectDimension.
func TestLikelihoods_Validation(t *testing.T) {
	_, err := elbow.Likelihoods([]float64{1})
	assert.ErrorIs(t, err, elbow.ErrTooShort)

	_, err = elbow.Likelihoods([]float64{2, -3})
	assert.ErrorIs(t, err, elbow.ErrNegativeValue)
}
