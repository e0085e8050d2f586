package analysis

import "gitlab.com/aoterocom/AOStrategyGrader/models/analytics"

// ResolveWinner names the configuration with the significantly larger mean. A positive
// statistic favours the first label.
func ResolveWinner(statistic float64, pValue float64, first string, second string) string {
	if !(pValue < SignificanceLevel) {
		return analytics.WinnerInconclusive
	}
	if statistic > 0 {
		return first
	} else if statistic < 0 {
		return second
	}
	return analytics.WinnerTie
}
