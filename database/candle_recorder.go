package database

import (
	"context"
	"fmt"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/interfaces"
)

type candleStore interface {
	AddOrUpdateCandle(candle techan.Candle, symbol string) error
}

// CandleRecorder is a price provider that stores every candle it serves.
type CandleRecorder struct {
	provider interfaces.PriceProvider
	store    candleStore
}

func NewCandleRecorder(provider interfaces.PriceProvider, dBService *DBService) *CandleRecorder {
	return &CandleRecorder{provider: provider, store: dBService}
}

func (recorder *CandleRecorder) GetSeries(ctx context.Context, symbol string, interval string, limit int) (*techan.TimeSeries, error) {
	timeSeries, err := recorder.provider.GetSeries(ctx, symbol, interval, limit)
	if err != nil {
		return nil, err
	}
	failures := 0
	for _, candle := range timeSeries.Candles {
		if err := recorder.store.AddOrUpdateCandle(*candle, symbol); err != nil {
			failures++
		}
	}
	if failures > 0 {
		helpers.Logger.Warnln(fmt.Sprintf("%s: %d of %d candles could not be recorded", symbol, failures, len(timeSeries.Candles)))
	}
	return timeSeries, nil
}
