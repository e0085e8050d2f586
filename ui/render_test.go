package ui

import (
	"bytes"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"math"
	"testing"
	"time"
)

func testReport() *analytics.GradingReport {
	return &analytics.GradingReport{
		Ticker:      "ETHEUR",
		Period:      "6mo",
		Interval:    "1d",
		Rows:        182,
		GeneratedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Comparisons: map[string]analytics.ComparisonResult{
			"RSI_Buy vs MACD_Buy": {
				Key:          "RSI_Buy vs MACD_Buy",
				First:        analytics.ComparisonSide{Indicator: "RSI", Polarity: analytics.PolarityBuy, Count: 3, Mean: 0.02},
				Second:       analytics.ComparisonSide{Indicator: "MACD", Polarity: analytics.PolarityBuy, Count: 3, Mean: 0.01},
				TStatistic:   math.Inf(1),
				PValue:       0,
				Significance: analytics.SignificanceHighlySignificant,
				Winner:       "RSI",
			},
		},
		Ranking: []analytics.IndicatorScore{{Indicator: "RSI", Score: 1}, {Indicator: "MACD", Score: 0}},
		Summary: map[string]analytics.IndicatorSummary{
			"RSI":  {Indicator: "RSI", MeanReturn: analytics.SomeFloat(0.02), StdReturn: analytics.NoFloat(), Count: 1, TotalReturn: 0.02},
			"MACD": {Indicator: "MACD", MeanReturn: analytics.NoFloat(), StdReturn: analytics.NoFloat()},
		},
	}
}

func TestRenderJSONHandlesInfiniteStatistics(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, RenderJSON(&buffer, testReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buffer.Bytes(), &decoded))
	comparison := decoded["comparisons"].(map[string]interface{})["RSI_Buy vs MACD_Buy"].(map[string]interface{})
	assert.Nil(t, comparison["t_statistic"])
	assert.Equal(t, 0.0, comparison["p_value"])
	assert.Equal(t, "A+", comparison["grade"])
	assert.Equal(t, "Highly Significant (p < 0.01)", comparison["significance"])

	summary := decoded["summary"].(map[string]interface{})["MACD"].(map[string]interface{})
	assert.Nil(t, summary["mean_return"])
}

func TestRenderText(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, RenderText(&buffer, testReport()))
	text := buffer.String()

	assert.Contains(t, text, "ETHEUR 6mo 1d (182 rows)")
	assert.Contains(t, text, "RSI_Buy vs MACD_Buy")
	assert.Contains(t, text, "Highly Significant (p < 0.01) [A+]")
	assert.Contains(t, text, "Mean Difference:")
	assert.Contains(t, text, "N/A")
	assert.Regexp(t, `1\.\s+RSI\s+1`, text)
}

func TestRenderTextWithoutComparisons(t *testing.T) {
	report := testReport()
	report.Comparisons = map[string]analytics.ComparisonResult{}
	var buffer bytes.Buffer
	require.NoError(t, RenderText(&buffer, report))
	assert.Contains(t, buffer.String(), "No comparison")
}

func TestRenderLegacy(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, RenderLegacy(&buffer, "RSI_Signal",
		map[string]float64{"Buy vs Sell": 0.003},
		map[string]string{"Buy vs Sell": "A+ (Highly Significant)"}))
	assert.Contains(t, buffer.String(), "A+ (Highly Significant)")
	assert.Contains(t, buffer.String(), "p=0.003000")

	buffer.Reset()
	require.NoError(t, RenderLegacy(&buffer, "RSI_Signal", map[string]float64{}, map[string]string{}))
	assert.Contains(t, buffer.String(), "No bucket pair")
}

func TestRenderPairwise(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, RenderPairwise(&buffer, analytics.PairwiseResult{
		First:        "Buy",
		Second:       "Sell",
		PValue:       1,
		Significance: analytics.SignificanceInsufficientData,
		SampleSize1:  1,
		MeanReturn1:  analytics.SomeFloat(0.01),
		Detail:       "Need at least 2 observations for each strategy. Buy: 1, Sell: 0",
	}))
	assert.Contains(t, buffer.String(), "N/A (Insufficient Data)")
	assert.Contains(t, buffer.String(), "Need at least 2 observations")
}

func TestDashboardRows(t *testing.T) {
	report := testReport()
	rows := comparisonRows(report)
	require.Len(t, rows, 2)
	assert.Equal(t, "RSI_Buy vs MACD_Buy", rows[1][0])
	assert.Equal(t, "[RSI](fg:green)", rows[1][4])
	assert.Equal(t, "A+ highly significant", rows[1][3])

	summary := summaryRows(report)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"MACD", "0", "N/A", "N/A", "0.000000"}, summary[1])

	assert.Len(t, NewUserInterface(report).widgets(), 4)
}
