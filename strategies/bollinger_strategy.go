package strategies

import (
	"fmt"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/analysis"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/strategies/indicators"
)

// BollingerStrategy buys closes at or under the lower band and sells closes at or over the upper band.
type BollingerStrategy struct {
	Window            int
	Sigma             float64
	MomentumThreshold float64
}

func NewBollingerStrategy() BollingerStrategy {
	return BollingerStrategy{
		Window:            20,
		Sigma:             2,
		MomentumThreshold: defaultMomentumThreshold,
	}
}

func (s *BollingerStrategy) Name() string {
	return analysis.IndicatorBollinger
}

func (s *BollingerStrategy) SignalColumn() string {
	return analysis.ColumnBollinger
}

func (s *BollingerStrategy) GenerateSignals(timeSeries *techan.TimeSeries) ([]int, error) {
	candles := len(timeSeries.Candles)
	if candles < s.Window {
		return nil, fmt.Errorf("Bollinger Bands need at least %d candles, got %d", s.Window, candles)
	}

	closePrices := techan.NewClosePriceIndicator(timeSeries)
	upperBand := indicators.NewBollingerUpperBandIndicator(closePrices, s.Window, s.Sigma)
	lowerBand := indicators.NewBollingerLowerBandIndicator(closePrices, s.Window, s.Sigma)

	signals := make([]int, candles)
	for i := s.Window - 1; i < candles; i++ {
		closePrice := closePrices.Calculate(i)
		if closePrice.LTE(lowerBand.Calculate(i)) {
			signals[i] = 1
		}
		if closePrice.GTE(upperBand.Calculate(i)) {
			signals[i] = -1
		}
	}

	if helpers.SumInts(signals) == 0 {
		applyMomentumFallback(signals, helpers.ClosePrices(timeSeries), s.MomentumThreshold)
	}

	return signals, nil
}
