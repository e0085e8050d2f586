package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gonum.org/v1/gonum/stat"
)

// bollingerBandIndicator is a moving average shifted by sigma sample standard deviations.
type bollingerBandIndicator struct {
	base   techan.Indicator
	sma    techan.Indicator
	window int
	sigma  float64
}

func NewBollingerUpperBandIndicator(baseIndicator techan.Indicator, window int, sigma float64) techan.Indicator {
	return bollingerBandIndicator{
		base:   baseIndicator,
		sma:    techan.NewSimpleMovingAverage(baseIndicator, window),
		window: window,
		sigma:  sigma,
	}
}

func NewBollingerLowerBandIndicator(baseIndicator techan.Indicator, window int, sigma float64) techan.Indicator {
	return NewBollingerUpperBandIndicator(baseIndicator, window, -sigma)
}

func (bb bollingerBandIndicator) Calculate(index int) big.Decimal {
	if index < bb.window-1 {
		return big.ZERO
	}

	values := make([]float64, bb.window)
	for i := range values {
		values[i] = bb.base.Calculate(index - bb.window + 1 + i).Float()
	}
	stdDev := stat.StdDev(values, nil)

	return big.NewDecimal(bb.sma.Calculate(index).Float() + bb.sigma*stdDev)
}
