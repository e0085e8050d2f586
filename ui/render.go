package ui

import (
	"encoding/json"
	"fmt"
	"github.com/samber/lo"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"io"
	"math"
	"sort"
	"text/tabwriter"
	"time"
)

type comparisonView struct {
	First        analytics.ComparisonSide `json:"first"`
	Second       analytics.ComparisonSide `json:"second"`
	TStatistic   analytics.OptionalFloat  `json:"t_statistic"`
	PValue       analytics.OptionalFloat  `json:"p_value"`
	Significance analytics.Significance   `json:"significance"`
	Grade        string                   `json:"grade"`
	Winner       string                   `json:"winner"`
}

type reportView struct {
	Ticker      string                                `json:"ticker"`
	Period      string                                `json:"period"`
	Interval    string                                `json:"interval"`
	Rows        int                                   `json:"rows"`
	GeneratedAt time.Time                             `json:"generated_at"`
	Comparisons map[string]comparisonView             `json:"comparisons"`
	Ranking     []analytics.IndicatorScore            `json:"ranking"`
	Summary     map[string]analytics.IndicatorSummary `json:"summary"`
}

// RenderJSON writes the report as indented JSON. Infinite or undefined statistics become null.
func RenderJSON(w io.Writer, report *analytics.GradingReport) error {
	view := reportView{
		Ticker:      report.Ticker,
		Period:      report.Period,
		Interval:    report.Interval,
		Rows:        report.Rows,
		GeneratedAt: report.GeneratedAt,
		Comparisons: lo.MapValues(report.Comparisons, func(result analytics.ComparisonResult, _ string) comparisonView {
			return comparisonView{
				First:        result.First,
				Second:       result.Second,
				TStatistic:   finite(result.TStatistic),
				PValue:       finite(result.PValue),
				Significance: result.Significance,
				Grade:        result.Significance.Grade(),
				Winner:       result.Winner,
			}
		}),
		Ranking: report.Ranking,
		Summary: report.Summary,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(view)
}

// RenderText writes a plain-text report: the verdict of every comparison, the ranking and the summary.
func RenderText(w io.Writer, report *analytics.GradingReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s %s %s (%d rows)\n", report.Ticker, report.Period, report.Interval, report.Rows)

	if len(report.Comparisons) == 0 {
		fmt.Fprintln(tw, "\nNo comparison: at least one side has fewer than two signals.")
	}
	for _, key := range sortedKeys(report.Comparisons) {
		result := report.Comparisons[key]
		fmt.Fprintf(tw, "\n%s\n", key)
		fmt.Fprintf(tw, "  T-Statistic:\t%.4f\n", result.TStatistic)
		fmt.Fprintf(tw, "  P-Value:\t%.6f\n", result.PValue)
		fmt.Fprintf(tw, "  Significance:\t%s [%s]\n", result.Significance, result.Significance.Grade())
		fmt.Fprintf(tw, "  Winner:\t%s\n", result.Winner)
		for _, side := range []analytics.ComparisonSide{result.First, result.Second} {
			fmt.Fprintf(tw, "  %s:\t%d signals, mean %.4f, std %.4f\n", side.Label(), side.Count, side.Mean, side.StdDev)
		}
		fmt.Fprintf(tw, "  Mean Difference:\t%.4f\n", math.Abs(result.First.Mean-result.Second.Mean))
	}

	fmt.Fprintln(tw, "\nRanking")
	for position, score := range report.Ranking {
		fmt.Fprintf(tw, "  %d.\t%s\t%d\n", position+1, score.Indicator, score.Score)
	}

	fmt.Fprintln(tw, "\nSummary")
	fmt.Fprintln(tw, "  Indicator\tCount\tMean\tStd\tTotal")
	for _, indicator := range sortedKeys(report.Summary) {
		summary := report.Summary[indicator]
		fmt.Fprintf(tw, "  %s\t%d\t%s\t%s\t%.6f\n", indicator, summary.Count, summary.MeanReturn, summary.StdReturn, summary.TotalReturn)
	}
	return tw.Flush()
}

// RenderLegacy writes the Buy/Sell/Hold p-values of one signal column with their grades.
func RenderLegacy(w io.Writer, column string, pValues map[string]float64, grades map[string]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\n", column)
	if len(pValues) == 0 {
		fmt.Fprintln(tw, "  No bucket pair has more than two observations.")
	}
	for _, pair := range sortedKeys(pValues) {
		fmt.Fprintf(tw, "  %s:\tp=%.6f\t%s\n", pair, pValues[pair], grades[pair])
	}
	return tw.Flush()
}

func RenderPairwise(w io.Writer, result analytics.PairwiseResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s vs %s\n", result.First, result.Second)
	fmt.Fprintf(tw, "  Grade:\t%s (%s)\n", result.Grade(), result.Significance)
	fmt.Fprintf(tw, "  P-Value:\t%.6f\n", result.PValue)
	fmt.Fprintf(tw, "  T-Statistic:\t%.4f\n", result.TStatistic)
	fmt.Fprintf(tw, "  %s:\t%d returns, mean %s, std %s\n", result.First, result.SampleSize1, result.MeanReturn1, result.StdReturn1)
	fmt.Fprintf(tw, "  %s:\t%d returns, mean %s, std %s\n", result.Second, result.SampleSize2, result.MeanReturn2, result.StdReturn2)
	if result.Detail != "" {
		fmt.Fprintf(tw, "  %s\n", result.Detail)
	}
	return tw.Flush()
}

func finite(value float64) analytics.OptionalFloat {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return analytics.NoFloat()
	}
	return analytics.SomeFloat(value)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
