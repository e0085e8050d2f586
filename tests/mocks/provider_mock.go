package mocks

import (
	"context"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"math"
	"time"
)

type ProviderMock struct {
	Series *techan.TimeSeries
	Err    error
	Calls  int
}

func NewProviderMock(prices []float64) *ProviderMock {
	return &ProviderMock{
		Series: SeriesFromPrices(prices),
	}
}

func (providerMock *ProviderMock) GetSeries(ctx context.Context, symbol string, interval string, limit int) (*techan.TimeSeries, error) {
	providerMock.Calls++
	if providerMock.Err != nil {
		return nil, providerMock.Err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	candles := providerMock.Series.Candles
	if limit > 0 && limit < len(candles) {
		candles = candles[len(candles)-limit:]
	}
	series := techan.NewTimeSeries()
	for _, candle := range candles {
		series.AddCandle(candle)
	}
	return series, nil
}

// SeriesFromPrices builds daily candles starting on 2024-01-01 with the given close prices.
func SeriesFromPrices(prices []float64) *techan.TimeSeries {
	series := techan.NewTimeSeries()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, price := range prices {
		candle := techan.NewCandle(techan.NewTimePeriod(start.AddDate(0, 0, i), 24*time.Hour))
		candle.OpenPrice = big.NewDecimal(price)
		candle.ClosePrice = big.NewDecimal(price)
		candle.MaxPrice = big.NewDecimal(price)
		candle.MinPrice = big.NewDecimal(price)
		candle.Volume = big.NewDecimal(1000)
		candle.TradeCount = 100
		series.AddCandle(candle)
	}
	return series
}

// WavePrices is a deterministic oscillating price path with a slow upward drift.
func WavePrices(count int) []float64 {
	prices := make([]float64, count)
	for i := range prices {
		prices[i] = 100 + 0.05*float64(i) + 8*math.Sin(float64(i)/4) + 2*math.Sin(float64(i)/1.7)
	}
	return prices
}

func GeometricPrices(count int, rate float64) []float64 {
	prices := make([]float64, count)
	for i := range prices {
		prices[i] = 100 * math.Pow(1+rate, float64(i))
	}
	return prices
}
