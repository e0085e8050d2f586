package analytics

type IndicatorScore struct {
	Indicator string `json:"indicator"`
	Score     int    `json:"score"`
}

// IndicatorSummary holds descriptive statistics over every non-hold signal of one indicator.
type IndicatorSummary struct {
	Indicator   string        `json:"indicator"`
	MeanReturn  OptionalFloat `json:"mean_return"`
	StdReturn   OptionalFloat `json:"std_return"`
	Count       int           `json:"count"`
	TotalReturn float64       `json:"total_return"`
}

func (s IndicatorSummary) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"mean_return":  s.MeanReturn,
		"std_return":   s.StdReturn,
		"count":        s.Count,
		"total_return": s.TotalReturn,
	}
}
