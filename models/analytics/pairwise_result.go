package analytics

// PairwiseResult is the outcome of the single-strategy Buy/Sell/Hold comparison.
type PairwiseResult struct {
	First        string        `json:"strategy_1"`
	Second       string        `json:"strategy_2"`
	PValue       float64       `json:"p_value"`
	TStatistic   float64       `json:"t_statistic"`
	Significance Significance  `json:"significance"`
	SampleSize1  int           `json:"sample_size_1"`
	SampleSize2  int           `json:"sample_size_2"`
	MeanReturn1  OptionalFloat `json:"mean_return_1"`
	MeanReturn2  OptionalFloat `json:"mean_return_2"`
	StdReturn1   OptionalFloat `json:"std_return_1"`
	StdReturn2   OptionalFloat `json:"std_return_2"`
	Detail       string        `json:"debug_info,omitempty"`
}

func (r PairwiseResult) Grade() string {
	return r.Significance.Grade()
}

func (r PairwiseResult) IsInsufficient() bool {
	return r.Significance == SignificanceInsufficientData
}
