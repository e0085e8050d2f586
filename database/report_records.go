package database

import (
	"github.com/samber/lo"
	database "gitlab.com/aoterocom/AOStrategyGrader/database/models"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"math"
	"sort"
)

// NewReportRecord converts a grading report into its database rows. Comparisons and summaries
// are stored in key order so that repeated saves produce the same rows.
func NewReportRecord(report *analytics.GradingReport) database.GradingReport {
	record := database.GradingReport{
		Ticker:      report.Ticker,
		Period:      report.Period,
		Interval:    report.Interval,
		Rows:        report.Rows,
		GeneratedAt: report.GeneratedAt,
	}

	for _, key := range sortedKeys(report.Comparisons) {
		result := report.Comparisons[key]
		record.Comparisons = append(record.Comparisons, database.Comparison{
			Key:                key,
			FirstIndicator:     result.First.Indicator,
			FirstPolarity:      string(result.First.Polarity),
			FirstCount:         result.First.Count,
			FirstMean:          result.First.Mean,
			FirstStdDev:        result.First.StdDev,
			SecondIndicator:    result.Second.Indicator,
			SecondPolarity:     string(result.Second.Polarity),
			SecondCount:        result.Second.Count,
			SecondMean:         result.Second.Mean,
			SecondStdDev:       result.Second.StdDev,
			TStatistic:         finiteOrNil(result.TStatistic),
			TStatisticInfinity: infinitySign(result.TStatistic),
			PValue:             finiteOrNil(result.PValue),
			Significance:       int(result.Significance),
			Grade:              result.Significance.Grade(),
			Winner:             result.Winner,
		})
	}

	for position, score := range report.Ranking {
		record.Scores = append(record.Scores, database.IndicatorScore{
			Position:  position,
			Indicator: score.Indicator,
			Score:     score.Score,
		})
	}

	for _, indicator := range sortedKeys(report.Summary) {
		summary := report.Summary[indicator]
		record.Summaries = append(record.Summaries, database.IndicatorSummary{
			Indicator:   indicator,
			Count:       summary.Count,
			MeanReturn:  optionalToNullable(summary.MeanReturn),
			StdReturn:   optionalToNullable(summary.StdReturn),
			TotalReturn: summary.TotalReturn,
		})
	}
	return record
}

// ToReport rebuilds a grading report from stored rows. Infinite t statistics keep their sign,
// other undefined statistics come back as NaN.
func ToReport(record database.GradingReport) *analytics.GradingReport {
	report := &analytics.GradingReport{
		Ticker:      record.Ticker,
		Period:      record.Period,
		Interval:    record.Interval,
		Rows:        record.Rows,
		GeneratedAt: record.GeneratedAt,
		Comparisons: make(map[string]analytics.ComparisonResult, len(record.Comparisons)),
		Summary:     make(map[string]analytics.IndicatorSummary, len(record.Summaries)),
	}

	for _, comparison := range record.Comparisons {
		report.Comparisons[comparison.Key] = analytics.ComparisonResult{
			Key: comparison.Key,
			First: analytics.ComparisonSide{
				Indicator: comparison.FirstIndicator,
				Polarity:  analytics.Polarity(comparison.FirstPolarity),
				Count:     comparison.FirstCount,
				Mean:      comparison.FirstMean,
				StdDev:    comparison.FirstStdDev,
			},
			Second: analytics.ComparisonSide{
				Indicator: comparison.SecondIndicator,
				Polarity:  analytics.Polarity(comparison.SecondPolarity),
				Count:     comparison.SecondCount,
				Mean:      comparison.SecondMean,
				StdDev:    comparison.SecondStdDev,
			},
			TStatistic:   restoreStatistic(comparison.TStatistic, comparison.TStatisticInfinity),
			PValue:       nullableOrNaN(comparison.PValue),
			Significance: analytics.Significance(comparison.Significance),
			Winner:       comparison.Winner,
		}
	}

	scores := make([]database.IndicatorScore, len(record.Scores))
	copy(scores, record.Scores)
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Position < scores[j].Position
	})
	for _, score := range scores {
		report.Ranking = append(report.Ranking, analytics.IndicatorScore{Indicator: score.Indicator, Score: score.Score})
	}

	for _, summary := range record.Summaries {
		report.Summary[summary.Indicator] = analytics.IndicatorSummary{
			Indicator:   summary.Indicator,
			MeanReturn:  nullableToOptional(summary.MeanReturn),
			StdReturn:   nullableToOptional(summary.StdReturn),
			Count:       summary.Count,
			TotalReturn: summary.TotalReturn,
		}
	}
	return report
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}

func finiteOrNil(value float64) *float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil
	}
	return &value
}

func nullableOrNaN(value *float64) float64 {
	if value == nil {
		return math.NaN()
	}
	return *value
}

func infinitySign(value float64) int {
	switch {
	case math.IsInf(value, 1):
		return 1
	case math.IsInf(value, -1):
		return -1
	default:
		return 0
	}
}

func restoreStatistic(value *float64, infinity int) float64 {
	if infinity != 0 {
		return math.Inf(infinity)
	}
	return nullableOrNaN(value)
}

func optionalToNullable(value analytics.OptionalFloat) *float64 {
	if v, ok := value.Get(); ok {
		return &v
	}
	return nil
}

func nullableToOptional(value *float64) analytics.OptionalFloat {
	if value == nil {
		return analytics.NoFloat()
	}
	return analytics.SomeFloat(*value)
}
