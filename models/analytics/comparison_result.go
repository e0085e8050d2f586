package analytics

import (
	"fmt"
	"strings"
)

const (
	WinnerInconclusive = "Inconclusive"
	WinnerTie          = "Tie"
)

type ComparisonSide struct {
	Indicator string   `json:"indicator"`
	Polarity  Polarity `json:"polarity"`
	Count     int      `json:"count"`
	Mean      float64  `json:"mean"`
	StdDev    float64  `json:"std"`
}

func (s ComparisonSide) Label() string {
	return fmt.Sprintf("%s_%s", s.Indicator, s.Polarity)
}

// ComparisonResult is the verdict of one Welch test between two (indicator, polarity) configurations.
type ComparisonResult struct {
	Key          string         `json:"key"`
	First        ComparisonSide `json:"first"`
	Second       ComparisonSide `json:"second"`
	TStatistic   float64        `json:"t_statistic"`
	PValue       float64        `json:"p_value"`
	Significance Significance   `json:"significance"`
	Winner       string         `json:"winner"`
}

func ComparisonKey(indicatorA string, polarityA Polarity, indicatorB string, polarityB Polarity) string {
	return fmt.Sprintf("%s_%s vs %s_%s", indicatorA, polarityA, indicatorB, polarityB)
}

// StatKey is the lowercase, indicator-derived prefix used for per-side statistics ("rsi" -> "rsi_mean").
func StatKey(indicator string) string {
	return strings.ReplaceAll(strings.ToLower(indicator), " ", "_")
}

func (r ComparisonResult) IsDecisive() bool {
	return r.Winner != WinnerInconclusive && r.Winner != WinnerTie
}

// ToMap renders the result record with indicator-derived statistic keys. When both sides use the same
// indicator the polarity is added to the prefix so that the two sides do not overwrite each other.
func (r ComparisonResult) ToMap() map[string]interface{} {
	firstKey := StatKey(r.First.Indicator)
	secondKey := StatKey(r.Second.Indicator)
	if firstKey == secondKey {
		firstKey += "_" + strings.ToLower(string(r.First.Polarity))
		secondKey += "_" + strings.ToLower(string(r.Second.Polarity))
	}

	return map[string]interface{}{
		"t_statistic":        r.TStatistic,
		"p_value":            r.PValue,
		firstKey + "_mean":   r.First.Mean,
		secondKey + "_mean":  r.Second.Mean,
		firstKey + "_count":  r.First.Count,
		secondKey + "_count": r.Second.Count,
		"winner":             r.Winner,
		"significance":       r.Significance.String(),
	}
}
