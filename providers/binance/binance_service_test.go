package binance

import (
	"context"
	"errors"
	"fmt"
	"github.com/adshao/go-binance/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

type fakeFetcher struct {
	interval time.Duration
	limits   []int
	err      error
}

func (fetcher *fakeFetcher) fetch(ctx context.Context, symbol string, interval string, startTime int64, limit int) ([]*binance.Kline, error) {
	fetcher.limits = append(fetcher.limits, limit)
	if fetcher.err != nil {
		return nil, fetcher.err
	}
	var klines []*binance.Kline
	for i := 0; i < limit; i++ {
		openTime := startTime + int64(i)*fetcher.interval.Milliseconds()
		price := fmt.Sprintf("%d", 100+i%7)
		klines = append(klines, &binance.Kline{
			OpenTime: openTime,
			Open:     price,
			High:     price,
			Low:      price,
			Close:    price,
			Volume:   "10",
			TradeNum: 3,
		})
	}
	return klines, nil
}

func newTestService(fetcher klinesFetcher) *BinanceService {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	return &BinanceService{
		fetcher: fetcher,
		now:     func() time.Time { return now },
	}
}

func TestGetSeriesPagesByThousand(t *testing.T) {
	fetcher := &fakeFetcher{interval: time.Hour}
	service := newTestService(fetcher)

	series, err := service.GetSeries(context.Background(), "ETHEUR", "1h", 1500)
	require.NoError(t, err)

	assert.Equal(t, []int{500, 1000}, fetcher.limits)
	assert.Len(t, series.Candles, 1500)
	assert.Equal(t, time.Hour, series.Candles[0].Period.Length())
	assert.Equal(t, 100.0, series.Candles[0].ClosePrice.Float())
}

func TestGetSeriesDefaultsToOnePage(t *testing.T) {
	fetcher := &fakeFetcher{interval: 24 * time.Hour}
	service := newTestService(fetcher)

	series, err := service.GetSeries(context.Background(), "BTCUSDT", "1d", 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1000}, fetcher.limits)
	assert.Len(t, series.Candles, 1000)
}

func TestGetSeriesErrors(t *testing.T) {
	service := newTestService(&fakeFetcher{interval: time.Hour, err: errors.New("rate limited")})
	_, err := service.GetSeries(context.Background(), "ETHEUR", "1h", 100)
	assert.ErrorContains(t, err, "rate limited")

	service = newTestService(&fakeFetcher{interval: time.Hour})
	_, err = service.GetSeries(context.Background(), "ETHEUR", "1x", 100)
	assert.Error(t, err)
}
