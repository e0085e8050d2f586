package strategies

import (
	"fmt"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/analysis"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/strategies/indicators"
)

// MACDStrategy is long while the MACD line is above its signal line and short while below.
type MACDStrategy struct {
	FastWindow        int
	SlowWindow        int
	SignalWindow      int
	MomentumThreshold float64
}

func NewMACDStrategy() MACDStrategy {
	return MACDStrategy{
		FastWindow:        12,
		SlowWindow:        26,
		SignalWindow:      9,
		MomentumThreshold: defaultMomentumThreshold,
	}
}

func (s *MACDStrategy) Name() string {
	return analysis.IndicatorMACD
}

func (s *MACDStrategy) SignalColumn() string {
	return analysis.ColumnMACD
}

func (s *MACDStrategy) GenerateSignals(timeSeries *techan.TimeSeries) ([]int, error) {
	candles := len(timeSeries.Candles)
	// The signal line is defined once both the slow EMA and the EMA over MACD have warmed up.
	firstDefined := s.SlowWindow + s.SignalWindow - 2
	if candles <= firstDefined {
		return nil, fmt.Errorf("MACD needs more than %d candles, got %d", firstDefined, candles)
	}

	closePrices := techan.NewClosePriceIndicator(timeSeries)
	MACD := techan.NewMACDIndicator(closePrices, s.FastWindow, s.SlowWindow)
	// MACD is only meaningful from the slow window on, so the signal line starts there.
	MACDOffset := s.SlowWindow - 1
	MACDSignal := techan.NewEMAIndicator(indicators.NewOffsetIndicator(MACD, MACDOffset), s.SignalWindow)

	signals := make([]int, candles)
	for i := firstDefined; i < candles; i++ {
		macdValue := MACD.Calculate(i)
		signalValue := MACDSignal.Calculate(i - MACDOffset)
		if macdValue.GT(signalValue) {
			signals[i] = 1
		} else if macdValue.LT(signalValue) {
			signals[i] = -1
		}
	}

	if helpers.SumInts(signals) == 0 {
		applyMomentumFallback(signals, helpers.ClosePrices(timeSeries), s.MomentumThreshold)
	}

	return signals, nil
}
