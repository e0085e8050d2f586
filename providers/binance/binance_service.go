package binance

import (
	"context"
	"fmt"
	"github.com/adshao/go-binance/v2"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"time"
)

// maxKlinesPerRequest is the page size the klines endpoint accepts.
const maxKlinesPerRequest = 1000

type klinesFetcher interface {
	fetch(ctx context.Context, symbol string, interval string, startTime int64, limit int) ([]*binance.Kline, error)
}

type clientFetcher struct {
	binanceClient *binance.Client
}

func (fetcher clientFetcher) fetch(ctx context.Context, symbol string, interval string, startTime int64, limit int) ([]*binance.Kline, error) {
	return fetcher.binanceClient.NewKlinesService().Symbol(symbol).
		Interval(interval).Limit(limit).StartTime(startTime).Do(ctx)
}

type BinanceService struct {
	fetcher   klinesFetcher
	apiKey    string
	apiSecret string
	now       func() time.Time
}

func NewBinanceService(apiKey string, apiSecret string) *BinanceService {
	return &BinanceService{
		fetcher:   clientFetcher{binanceClient: binance.NewClient(apiKey, apiSecret)},
		apiKey:    apiKey,
		apiSecret: apiSecret,
		now:       time.Now,
	}
}

// GetSeries downloads the last limit candles of symbol, walking forward in pages of at most 1000 klines.
func (binanceService *BinanceService) GetSeries(ctx context.Context, symbol string, interval string, limit int) (*techan.TimeSeries, error) {
	if limit <= 0 {
		limit = maxKlinesPerRequest
	}
	intervalDuration, err := helpers.StringIntervalToDuration(interval)
	if err != nil {
		return nil, err
	}

	provisionalLimit := limit % maxKlinesPerRequest
	if provisionalLimit == 0 {
		provisionalLimit = maxKlinesPerRequest
	}

	var resultKlines []*binance.Kline
	for remaining := limit; remaining > 0; {
		startTime := binanceService.now().Add(-intervalDuration * time.Duration(remaining))
		klines, err := binanceService.fetcher.fetch(ctx, symbol, interval, startTime.UnixMilli(), provisionalLimit)
		if err != nil {
			return nil, fmt.Errorf("error getting %s klines: %w", symbol, err)
		}
		resultKlines = append(resultKlines, klines...)
		helpers.Logger.Debugln(fmt.Sprintf("%s: fetched %d klines (%d pending)", symbol, len(klines), remaining-provisionalLimit))

		remaining -= provisionalLimit
		provisionalLimit = maxKlinesPerRequest
	}

	timeSeries := techan.NewTimeSeries()
	for _, k := range resultKlines {
		// AddCandle rejects candles that do not start after the last one, so page overlaps are dropped
		timeSeries.AddCandle(klineToCandle(k, intervalDuration))
	}
	if len(timeSeries.Candles) == 0 {
		return nil, fmt.Errorf("no klines returned for %s", symbol)
	}

	return timeSeries, nil
}

func klineToCandle(k *binance.Kline, intervalDuration time.Duration) *techan.Candle {
	period := techan.NewTimePeriod(time.UnixMilli(k.OpenTime), intervalDuration)
	candle := techan.NewCandle(period)
	candle.OpenPrice = big.NewFromString(k.Open)
	candle.ClosePrice = big.NewFromString(k.Close)
	candle.MaxPrice = big.NewFromString(k.High)
	candle.MinPrice = big.NewFromString(k.Low)
	candle.TradeCount = uint(k.TradeNum)
	candle.Volume = big.NewFromString(k.Volume)
	return candle
}
