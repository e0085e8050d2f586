package strategies

import (
	"fmt"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/analysis"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
)

// RSIStrategy buys the lowest RSI quartile and sells the highest one, falling back to fixed
// oversold/overbought levels and finally to momentum when too few signals are produced.
type RSIStrategy struct {
	Window            int
	LowerQuantile     float64
	UpperQuantile     float64
	Oversold          float64
	Overbought        float64
	MomentumThreshold float64
	MinSignalsPerSide int
}

func NewRSIStrategy() RSIStrategy {
	return RSIStrategy{
		Window:            14,
		LowerQuantile:     0.25,
		UpperQuantile:     0.75,
		Oversold:          35,
		Overbought:        65,
		MomentumThreshold: defaultMomentumThreshold,
		MinSignalsPerSide: 2,
	}
}

func (s *RSIStrategy) Name() string {
	return analysis.IndicatorRSI
}

func (s *RSIStrategy) SignalColumn() string {
	return analysis.ColumnRSI
}

func (s *RSIStrategy) GenerateSignals(timeSeries *techan.TimeSeries) ([]int, error) {
	candles := len(timeSeries.Candles)
	if candles <= s.Window {
		return nil, fmt.Errorf("RSI needs more than %d candles, got %d", s.Window, candles)
	}

	rsi := techan.NewRelativeStrengthIndexIndicator(techan.NewClosePriceIndicator(timeSeries), s.Window)
	values := make([]float64, candles)
	var defined []float64
	for i := s.Window; i < candles; i++ {
		values[i] = rsi.Calculate(i).Float()
		defined = append(defined, values[i])
	}

	lower := helpers.Quantile(defined, s.LowerQuantile)
	upper := helpers.Quantile(defined, s.UpperQuantile)

	signals := make([]int, candles)
	for i := s.Window; i < candles; i++ {
		if values[i] < lower {
			signals[i] = 1
		} else if values[i] > upper {
			signals[i] = -1
		}
	}

	if helpers.SumInts(signals) == 0 || !hasBothSides(signals, s.MinSignalsPerSide) {
		for i := s.Window; i < candles; i++ {
			if values[i] < s.Oversold {
				signals[i] = 1
			} else if values[i] > s.Overbought {
				signals[i] = -1
			}
		}
	}

	if !hasBothSides(signals, s.MinSignalsPerSide) {
		applyMomentumFallback(signals, helpers.ClosePrices(timeSeries), s.MomentumThreshold)
	}

	return signals, nil
}
