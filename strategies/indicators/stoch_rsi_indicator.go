package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

type stochasticRelativeStrengthIndicator struct {
	rsi    techan.Indicator
	minRSI techan.Indicator
	maxRSI techan.Indicator
}

// NewStochasticRelativeStrengthIndicator positions the RSI inside its own range over the last
// window candles: 0 at the window low, 1 at the window high.
func NewStochasticRelativeStrengthIndicator(rsi techan.Indicator, window int) techan.Indicator {
	return stochasticRelativeStrengthIndicator{
		rsi:    rsi,
		minRSI: techan.NewMinimumValueIndicator(rsi, window),
		maxRSI: techan.NewMaximumValueIndicator(rsi, window),
	}
}

func (srs stochasticRelativeStrengthIndicator) Calculate(index int) big.Decimal {
	minRSI := srs.minRSI.Calculate(index).Float()
	divisor := srs.maxRSI.Calculate(index).Float() - minRSI
	if divisor == 0.0 {
		return big.ZERO
	}
	return big.NewDecimal((srs.rsi.Calculate(index).Float() - minRSI) / divisor)
}
