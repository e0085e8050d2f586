package analysis

import (
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize reports count, mean, sample standard deviation and total return over every
// non-hold signal of each registry indicator.
func Summarize(registry *Registry, table *analytics.SignalTable) (map[string]analytics.IndicatorSummary, error) {
	summary := make(map[string]analytics.IndicatorSummary)
	for _, indicator := range registry.Indicators() {
		returns, err := FilterReturns(table, indicator.SignalColumn, analytics.PolarityAll)
		if err != nil {
			return nil, err
		}
		summary[indicator.Name] = describePopulation(indicator.Name, returns)
	}
	return summary, nil
}

func describePopulation(indicator string, returns []float64) analytics.IndicatorSummary {
	result := analytics.IndicatorSummary{
		Indicator:   indicator,
		MeanReturn:  analytics.NoFloat(),
		StdReturn:   analytics.NoFloat(),
		Count:       len(returns),
		TotalReturn: floats.Sum(returns),
	}
	if len(returns) > 0 {
		result.MeanReturn = analytics.SomeFloat(stat.Mean(returns, nil))
	}
	if len(returns) > 1 {
		result.StdReturn = analytics.SomeFloat(stat.StdDev(returns, nil))
	}
	return result
}
