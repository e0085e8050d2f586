package strategies

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStrategyGrader/analysis"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/tests/mocks"
	"testing"
)

func assertSignalDomain(t *testing.T, signals []int) {
	t.Helper()
	for i, signal := range signals {
		assert.Contains(t, []int{-1, 0, 1}, signal, "row %d", i)
	}
}

func TestStrategyFactory(t *testing.T) {
	cases := map[string]string{
		analysis.IndicatorRSI:       analysis.ColumnRSI,
		analysis.IndicatorMACD:      analysis.ColumnMACD,
		analysis.IndicatorBollinger: analysis.ColumnBollinger,
		IndicatorStochRSI:           ColumnStochRSI,
	}
	for name, column := range cases {
		strategy, err := StrategyFactory(name)
		require.NoError(t, err)
		assert.Equal(t, name, strategy.Name())
		assert.Equal(t, column, strategy.SignalColumn())
	}

	_, err := StrategyFactory("Ichimoku")
	assert.Error(t, err)

	_, err = StrategiesFor([]string{"RSI", "Ichimoku"})
	assert.Error(t, err)
}

func TestRSIStrategyUsesQuartiles(t *testing.T) {
	strategy := NewRSIStrategy()
	series := mocks.SeriesFromPrices(mocks.WavePrices(120))

	signals, err := strategy.GenerateSignals(series)
	require.NoError(t, err)
	require.Len(t, signals, 120)
	assertSignalDomain(t, signals)

	for i := 0; i < strategy.Window; i++ {
		assert.Equal(t, 0, signals[i], "row %d is before the RSI window", i)
	}
	assert.GreaterOrEqual(t, helpers.CountValue(signals, 1), 2)
	assert.GreaterOrEqual(t, helpers.CountValue(signals, -1), 2)
}

func TestRSIStrategyNeedsEnoughCandles(t *testing.T) {
	strategy := NewRSIStrategy()
	_, err := strategy.GenerateSignals(mocks.SeriesFromPrices(mocks.WavePrices(10)))
	assert.Error(t, err)
}

func TestMACDStrategyFollowsTrend(t *testing.T) {
	strategy := NewMACDStrategy()

	rising, err := strategy.GenerateSignals(mocks.SeriesFromPrices(mocks.GeometricPrices(90, 0.01)))
	require.NoError(t, err)
	require.Len(t, rising, 90)
	for i := 0; i < 33; i++ {
		assert.Equal(t, 0, rising[i], "row %d is before the signal line", i)
	}
	for i := 60; i < 90; i++ {
		assert.Equal(t, 1, rising[i], "row %d", i)
	}

	accelerating := make([]float64, 90)
	for i := range accelerating {
		accelerating[i] = 200 - 0.02*float64(i*i)
	}
	falling, err := strategy.GenerateSignals(mocks.SeriesFromPrices(accelerating))
	require.NoError(t, err)
	for i := 60; i < 90; i++ {
		assert.Equal(t, -1, falling[i], "row %d", i)
	}

	_, err = strategy.GenerateSignals(mocks.SeriesFromPrices(mocks.WavePrices(30)))
	assert.Error(t, err)
}

func TestBollingerStrategyFlagsBandBreaks(t *testing.T) {
	prices := make([]float64, 90)
	for i := range prices {
		prices[i] = 100
		if i%2 == 1 {
			prices[i] = 100.5
		}
	}
	prices[30] = 90
	prices[50] = 110
	prices[75] = 90

	strategy := NewBollingerStrategy()
	signals, err := strategy.GenerateSignals(mocks.SeriesFromPrices(prices))
	require.NoError(t, err)

	expected := make([]int, 90)
	expected[30] = 1
	expected[50] = -1
	expected[75] = 1
	assert.Equal(t, expected, signals)
}

func TestBollingerStrategyFallsBackToMomentum(t *testing.T) {
	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 100
		if i%2 == 1 {
			prices[i] = 101
		}
	}

	strategy := NewBollingerStrategy()
	signals, err := strategy.GenerateSignals(mocks.SeriesFromPrices(prices))
	require.NoError(t, err)

	// No band is touched, so every 1% swing becomes a momentum signal.
	assert.Equal(t, 0, signals[0])
	for i := 1; i < len(prices); i++ {
		if i%2 == 1 {
			assert.Equal(t, 1, signals[i], "row %d", i)
		} else {
			assert.Equal(t, -1, signals[i], "row %d", i)
		}
	}
}

func TestStochRSIStrategy(t *testing.T) {
	strategy := NewStochRSIStrategy()
	signals, err := strategy.GenerateSignals(mocks.SeriesFromPrices(mocks.WavePrices(150)))
	require.NoError(t, err)
	require.Len(t, signals, 150)
	assertSignalDomain(t, signals)

	for i := 0; i < 29; i++ {
		assert.Equal(t, 0, signals[i], "row %d is before the smoothed stochastic RSI", i)
	}
	assert.NotZero(t, helpers.CountValue(signals, 1)+helpers.CountValue(signals, -1))

	_, err = strategy.GenerateSignals(mocks.SeriesFromPrices(mocks.WavePrices(29)))
	assert.Error(t, err)
}
