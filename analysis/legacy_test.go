package analysis

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"math"
	"testing"
)

func legacyTable(t *testing.T) *analytics.SignalTable {
	return newTestTable(t,
		[]float64{math.NaN(), 0.01, 0.02, 0.015, -0.01, -0.02, -0.015, 0.001, 0.002},
		map[string][]int{"Signal": {0, 1, 1, 1, -1, -1, -1, 0, 0}})
}

func TestPerformTTestsRequiresMoreThanTwoObservations(t *testing.T) {
	results, err := PerformTTests(legacyTable(t), "Signal")
	require.NoError(t, err)

	// Hold has exactly two defined returns, so only Buy vs Sell is tested.
	require.Len(t, results, 1)
	assert.Less(t, results["Buy vs Sell"], 0.01)

	grades := GradeStrategies(results)
	assert.Equal(t, "A+ (Highly Significant)", grades["Buy vs Sell"])
}

func TestPerformPairwiseTTest(t *testing.T) {
	result, err := PerformPairwiseTTest(legacyTable(t), "Signal", BucketBuy, BucketSell)
	require.NoError(t, err)
	assert.InDelta(t, 7.3484692, result.TStatistic, 1e-6)
	assert.Equal(t, "A+", result.Grade())
	assert.Equal(t, 3, result.SampleSize1)
	assert.Equal(t, 3, result.SampleSize2)
	assert.InDelta(t, 0.015, result.MeanReturn1.Value, 1e-12)
	assert.InDelta(t, -0.015, result.MeanReturn2.Value, 1e-12)

	// The pairwise path accepts two observations where PerformTTests does not.
	result, err = PerformPairwiseTTest(legacyTable(t), "Signal", BucketBuy, BucketHold)
	require.NoError(t, err)
	assert.False(t, result.IsInsufficient())
	assert.Equal(t, 2, result.SampleSize2)
}

func TestPerformPairwiseTTestInsufficientData(t *testing.T) {
	table := newTestTable(t,
		[]float64{math.NaN(), 0.01, 0.02, -0.01},
		map[string][]int{"Signal": {1, 1, 1, -1}})

	result, err := PerformPairwiseTTest(table, "Signal", BucketBuy, BucketSell)
	require.NoError(t, err)
	assert.True(t, result.IsInsufficient())
	assert.Equal(t, 1.0, result.PValue)
	assert.Equal(t, 0.0, result.TStatistic)
	assert.Equal(t, "N/A", result.Grade())
	assert.Equal(t, 2, result.SampleSize1)
	assert.Equal(t, 1, result.SampleSize2)
}

func TestParseBucket(t *testing.T) {
	bucket, err := ParseBucket("Hold")
	require.NoError(t, err)
	assert.Equal(t, BucketHold, bucket)

	_, err = ParseBucket("All")
	assert.ErrorIs(t, err, ErrInvalidBucket)

	_, err = PerformPairwiseTTest(legacyTable(t), "Signal", Bucket("Short"), BucketBuy)
	assert.ErrorIs(t, err, ErrInvalidBucket)
}
