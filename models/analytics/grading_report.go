package analytics

import "time"

type GradingReport struct {
	Ticker      string                      `json:"ticker"`
	Period      string                      `json:"period"`
	Interval    string                      `json:"interval"`
	Rows        int                         `json:"rows"`
	GeneratedAt time.Time                   `json:"generated_at"`
	Comparisons map[string]ComparisonResult `json:"comparisons"`
	Ranking     []IndicatorScore            `json:"ranking"`
	Summary     map[string]IndicatorSummary `json:"summary"`
}
