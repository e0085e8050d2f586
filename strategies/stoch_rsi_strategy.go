package strategies

import (
	"fmt"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/strategies/indicators"
)

const (
	IndicatorStochRSI = "StochRSI"
	ColumnStochRSI    = "StochRSI_Signal"
)

// StochRSIStrategy buys while the smoothed stochastic RSI is under Oversold and sells while it
// is over Overbought.
type StochRSIStrategy struct {
	RSIWindow         int
	StochWindow       int
	SmoothK           int
	Oversold          float64
	Overbought        float64
	MomentumThreshold float64
}

func NewStochRSIStrategy() StochRSIStrategy {
	return StochRSIStrategy{
		RSIWindow:         14,
		StochWindow:       14,
		SmoothK:           3,
		Oversold:          0.2,
		Overbought:        0.8,
		MomentumThreshold: defaultMomentumThreshold,
	}
}

func (s *StochRSIStrategy) Name() string {
	return IndicatorStochRSI
}

func (s *StochRSIStrategy) SignalColumn() string {
	return ColumnStochRSI
}

func (s *StochRSIStrategy) GenerateSignals(timeSeries *techan.TimeSeries) ([]int, error) {
	candles := len(timeSeries.Candles)
	firstDefined := s.RSIWindow + s.StochWindow + s.SmoothK - 2
	if candles <= firstDefined {
		return nil, fmt.Errorf("StochRSI needs more than %d candles, got %d", firstDefined, candles)
	}

	rsi := techan.NewRelativeStrengthIndexIndicator(techan.NewClosePriceIndicator(timeSeries), s.RSIWindow)
	stochRSI := indicators.NewStochasticRelativeStrengthIndicator(rsi, s.StochWindow)
	smoothK := techan.NewSimpleMovingAverage(stochRSI, s.SmoothK)

	signals := make([]int, candles)
	for i := firstDefined; i < candles; i++ {
		k := smoothK.Calculate(i).Float()
		if k < s.Oversold {
			signals[i] = 1
		} else if k > s.Overbought {
			signals[i] = -1
		}
	}

	if helpers.SumInts(signals) == 0 {
		applyMomentumFallback(signals, helpers.ClosePrices(timeSeries), s.MomentumThreshold)
	}

	return signals, nil
}
