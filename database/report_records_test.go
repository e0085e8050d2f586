package database

import (
	"context"
	"errors"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"gitlab.com/aoterocom/AOStrategyGrader/tests/mocks"
	"math"
	"testing"
	"time"
)

func sampleReport() *analytics.GradingReport {
	return &analytics.GradingReport{
		Ticker:      "ETHEUR",
		Period:      "6mo",
		Interval:    "1d",
		Rows:        182,
		GeneratedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Comparisons: map[string]analytics.ComparisonResult{
			"RSI_All vs MACD_All": {
				Key:          "RSI_All vs MACD_All",
				First:        analytics.ComparisonSide{Indicator: "RSI", Polarity: analytics.PolarityAll, Count: 40, Mean: 0.004, StdDev: 0.02},
				Second:       analytics.ComparisonSide{Indicator: "MACD", Polarity: analytics.PolarityAll, Count: 90, Mean: 0.001, StdDev: 0.03},
				TStatistic:   0.61,
				PValue:       0.54,
				Significance: analytics.SignificanceNotSignificant,
				Winner:       analytics.WinnerInconclusive,
			},
			"Bollinger_Buy vs MACD_Buy": {
				Key:          "Bollinger_Buy vs MACD_Buy",
				First:        analytics.ComparisonSide{Indicator: "Bollinger", Polarity: analytics.PolarityBuy, Count: 3, Mean: 0.01},
				Second:       analytics.ComparisonSide{Indicator: "MACD", Polarity: analytics.PolarityBuy, Count: 3, Mean: 0.0},
				TStatistic:   math.Inf(1),
				PValue:       0,
				Significance: analytics.SignificanceHighlySignificant,
				Winner:       "Bollinger",
			},
		},
		Ranking: []analytics.IndicatorScore{
			{Indicator: "Bollinger", Score: 1},
			{Indicator: "RSI", Score: 0},
			{Indicator: "MACD", Score: 0},
		},
		Summary: map[string]analytics.IndicatorSummary{
			"RSI":       {Indicator: "RSI", MeanReturn: analytics.SomeFloat(0.004), StdReturn: analytics.SomeFloat(0.02), Count: 40, TotalReturn: 0.16},
			"Bollinger": {Indicator: "Bollinger", MeanReturn: analytics.NoFloat(), StdReturn: analytics.NoFloat()},
		},
	}
}

func TestNewReportRecord(t *testing.T) {
	record := NewReportRecord(sampleReport())

	assert.Equal(t, "ETHEUR", record.Ticker)
	assert.Equal(t, 182, record.Rows)
	require.Len(t, record.Comparisons, 2)

	bollinger := record.Comparisons[0]
	assert.Equal(t, "Bollinger_Buy vs MACD_Buy", bollinger.Key)
	assert.Nil(t, bollinger.TStatistic)
	assert.Equal(t, 1, bollinger.TStatisticInfinity)
	require.NotNil(t, bollinger.PValue)
	assert.Equal(t, 0.0, *bollinger.PValue)
	assert.Equal(t, "A+", bollinger.Grade)
	assert.Equal(t, "Buy", bollinger.FirstPolarity)

	rsi := record.Comparisons[1]
	require.NotNil(t, rsi.TStatistic)
	assert.Equal(t, 0.61, *rsi.TStatistic)
	assert.Equal(t, 0, rsi.TStatisticInfinity)
	assert.Equal(t, "C", rsi.Grade)

	require.Len(t, record.Scores, 3)
	assert.Equal(t, 0, record.Scores[0].Position)
	assert.Equal(t, "Bollinger", record.Scores[0].Indicator)

	require.Len(t, record.Summaries, 2)
	assert.Equal(t, "Bollinger", record.Summaries[0].Indicator)
	assert.Nil(t, record.Summaries[0].MeanReturn)
	require.NotNil(t, record.Summaries[1].StdReturn)
	assert.Equal(t, 0.02, *record.Summaries[1].StdReturn)
}

func TestToReportRestoresStoredRows(t *testing.T) {
	original := sampleReport()
	restored := ToReport(NewReportRecord(original))

	assert.Equal(t, original.Ranking, restored.Ranking)
	assert.Equal(t, original.Summary, restored.Summary)
	assert.Equal(t, original.Comparisons["RSI_All vs MACD_All"], restored.Comparisons["RSI_All vs MACD_All"])

	infinite := restored.Comparisons["Bollinger_Buy vs MACD_Buy"]
	assert.True(t, math.IsInf(infinite.TStatistic, 1))
	assert.Equal(t, "Bollinger", infinite.Winner)
}

func TestToReportKeepsNegativeInfiniteStatistic(t *testing.T) {
	report := sampleReport()
	reversed := report.Comparisons["Bollinger_Buy vs MACD_Buy"]
	reversed.TStatistic = math.Inf(-1)
	reversed.Winner = "MACD"
	report.Comparisons["Bollinger_Buy vs MACD_Buy"] = reversed

	record := NewReportRecord(report)
	assert.Equal(t, -1, record.Comparisons[0].TStatisticInfinity)

	restored := ToReport(record).Comparisons["Bollinger_Buy vs MACD_Buy"]
	assert.True(t, math.IsInf(restored.TStatistic, -1))
	assert.Equal(t, 0.0, restored.PValue)

	record.Comparisons[0].PValue = nil
	assert.True(t, math.IsNaN(ToReport(record).Comparisons["Bollinger_Buy vs MACD_Buy"].PValue))
}

type candleStoreMock struct {
	symbols []string
	err     error
}

func (store *candleStoreMock) AddOrUpdateCandle(candle techan.Candle, symbol string) error {
	store.symbols = append(store.symbols, symbol)
	return store.err
}

func TestCandleRecorder(t *testing.T) {
	store := &candleStoreMock{}
	recorder := &CandleRecorder{provider: mocks.NewProviderMock(mocks.WavePrices(30)), store: store}

	series, err := recorder.GetSeries(context.Background(), "ETHEUR", "1d", 10)
	require.NoError(t, err)
	assert.Len(t, series.Candles, 10)
	assert.Len(t, store.symbols, 10)
	assert.Equal(t, "ETHEUR", store.symbols[0])

	store.err = errors.New("duplicate")
	_, err = recorder.GetSeries(context.Background(), "ETHEUR", "1d", 10)
	assert.NoError(t, err)

	failing := mocks.NewProviderMock(nil)
	failing.Err = errors.New("offline")
	recorder = &CandleRecorder{provider: failing, store: store}
	_, err = recorder.GetSeries(context.Background(), "ETHEUR", "1d", 10)
	assert.Error(t, err)
}

func TestNewCandleRecord(t *testing.T) {
	series := mocks.SeriesFromPrices([]float64{101.5})
	record := NewCandleRecord(*series.Candles[0], "ETHEUR")
	assert.Equal(t, "ETHEUR", record.Symbol)
	assert.Equal(t, 101.5, record.ClosePrice.Float())
	assert.Equal(t, "2024-01-01 00:00:00 +0000 UTC 2024-01-02 00:00:00 +0000 UTC", record.Period)
}
