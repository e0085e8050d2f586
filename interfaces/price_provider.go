package interfaces

import (
	"context"
	"github.com/sdcoffey/techan"
)

type PriceProvider interface {
	GetSeries(ctx context.Context, symbol string, interval string, limit int) (*techan.TimeSeries, error)
}
