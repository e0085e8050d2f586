package analysis

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"math"
	"testing"
	"time"
)

// newTestTable builds a table from raw returns; NaN marks an undefined return.
func newTestTable(t *testing.T, returns []float64, columns map[string][]int) *analytics.SignalTable {
	t.Helper()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	timestamps := make([]time.Time, len(returns))
	optionalReturns := make([]analytics.OptionalFloat, len(returns))
	for i, value := range returns {
		timestamps[i] = start.AddDate(0, 0, i)
		if math.IsNaN(value) {
			optionalReturns[i] = analytics.NoFloat()
		} else {
			optionalReturns[i] = analytics.SomeFloat(value)
		}
	}
	table := analytics.NewSignalTable(timestamps, nil, optionalReturns)
	for column, signals := range columns {
		require.NoError(t, table.SetSignals(column, signals))
	}
	return table
}

func TestFilterReturnsByPolarity(t *testing.T) {
	table := newTestTable(t,
		[]float64{math.NaN(), 0.01, 0.02, -0.01, 0.03, 0.04},
		map[string][]int{"Signal": {1, 1, -1, 0, 1, -1}})

	buys, err := FilterReturns(table, "Signal", analytics.PolarityBuy)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01, 0.03}, buys)

	sells, err := FilterReturns(table, "Signal", analytics.PolaritySell)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.02, 0.04}, sells)

	all, err := FilterReturns(table, "Signal", analytics.PolarityAll)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.01, 0.02, 0.03, 0.04}, all)
}

func TestFilterReturnsEmptyPopulation(t *testing.T) {
	table := newTestTable(t, []float64{0.01, 0.02, 0.03}, map[string][]int{"Signal": {0, 0, 0}})

	returns, err := FilterReturns(table, "Signal", analytics.PolarityBuy)
	require.NoError(t, err)
	assert.NotNil(t, returns)
	assert.Len(t, returns, 0)
}

func TestFilterReturnsRejectsBadInput(t *testing.T) {
	table := newTestTable(t, []float64{0.01}, map[string][]int{"Signal": {1}})

	_, err := FilterReturns(table, "Missing", analytics.PolarityAll)
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = FilterReturns(table, "Signal", analytics.Polarity("Long"))
	assert.ErrorIs(t, err, ErrUnknownPolarity)
}
