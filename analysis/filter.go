package analysis

import (
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
)

// FilterReturns selects the defined returns whose signal in column matches the polarity.
// An empty sample is a valid result; callers check its size before testing.
func FilterReturns(table *analytics.SignalTable, column string, polarity analytics.Polarity) ([]float64, error) {
	if err := validatePolarity(polarity); err != nil {
		return nil, err
	}
	signals, ok := table.Column(column)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	returns := []float64{}
	for i, signal := range signals {
		if !polarity.Matches(signal) {
			continue
		}
		if value, defined := table.Returns[i].Get(); defined {
			returns = append(returns, value)
		}
	}
	return returns, nil
}

func validatePolarity(polarity analytics.Polarity) error {
	switch polarity {
	case analytics.PolarityBuy, analytics.PolaritySell, analytics.PolarityAll:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownPolarity, polarity)
}
