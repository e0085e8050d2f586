package services

import (
	"context"
	"fmt"
	"github.com/samber/lo"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/analysis"
	"gitlab.com/aoterocom/AOStrategyGrader/config"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/interfaces"
	"gitlab.com/aoterocom/AOStrategyGrader/metrics"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"gitlab.com/aoterocom/AOStrategyGrader/strategies"
	"time"
)

// MinimumRows is the shortest price history the grader accepts.
const MinimumRows = 60

type Request struct {
	Ticker     string
	Period     string
	Interval   string
	Comparison analysis.ComparisonRequest
	// Universe adds every pairing of the registry to the requested comparison.
	Universe bool
}

type GradingService struct {
	provider   interfaces.PriceProvider
	comparator *analysis.Comparator
	store      interfaces.ReportStore
	now        func() time.Time
}

func NewGradingService(provider interfaces.PriceProvider, comparator *analysis.Comparator) *GradingService {
	return &GradingService{
		provider:   provider,
		comparator: comparator,
		now:        time.Now,
	}
}

// SetReportStore enables persistence of every generated report.
func (gs *GradingService) SetReportStore(store interfaces.ReportStore) {
	gs.store = store
}

func (gs *GradingService) Run(ctx context.Context, request Request) (*analytics.GradingReport, error) {
	period, _, err := config.ResolvePeriod(request.Period)
	if err != nil {
		return nil, err
	}
	limit, err := config.CandleCount(period, request.Interval)
	if err != nil {
		return nil, err
	}

	helpers.Logger.Infoln(fmt.Sprintf("%s: fetching %d %s candles (%s)", request.Ticker, limit, request.Interval, period))
	timeSeries, err := gs.provider.GetSeries(ctx, request.Ticker, request.Interval, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", request.Ticker, err)
	}
	if len(timeSeries.Candles) < MinimumRows {
		return nil, fmt.Errorf("insufficient data for %s: only %d rows available, need %d. Try a longer period",
			request.Ticker, len(timeSeries.Candles), MinimumRows)
	}

	table, err := BuildSignalTable(timeSeries, gs.comparator.Registry())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", request.Ticker, err)
	}

	request.Period = period
	return gs.Grade(ctx, request, table)
}

// Grade runs the comparison, ranking and summary over an already built signal table.
func (gs *GradingService) Grade(ctx context.Context, request Request, table *analytics.SignalTable) (*analytics.GradingReport, error) {
	requests := []analysis.ComparisonRequest{request.Comparison}
	if request.Universe {
		pairings := lo.Filter(analysis.AllPairings(gs.comparator.Registry(), request.Comparison.PolarityA),
			func(pairing analysis.ComparisonRequest, _ int) bool {
				return !pairing.SameTest(request.Comparison)
			})
		requests = append(requests, pairings...)
	}

	comparisons, err := gs.comparator.CompareBatch(ctx, table, requests)
	if err != nil {
		return nil, err
	}
	if len(comparisons) == 0 {
		helpers.Logger.Warnln(fmt.Sprintf("%s: not enough signals for %s", request.Ticker, request.Comparison.Key()))
	}
	for key, result := range comparisons {
		metrics.RecordComparison(result.Significance)
		helpers.Logger.Infoln(fmt.Sprintf("%s: %s -> %s (p=%.4f), winner %s",
			request.Ticker, key, result.Significance.ShortLabel(), result.PValue, result.Winner))
	}

	summary, err := analysis.Summarize(gs.comparator.Registry(), table)
	if err != nil {
		return nil, err
	}

	report := &analytics.GradingReport{
		Ticker:      request.Ticker,
		Period:      request.Period,
		Interval:    request.Interval,
		Rows:        table.Len(),
		GeneratedAt: gs.now(),
		Comparisons: comparisons,
		Ranking:     analysis.Rank(gs.comparator.Registry(), comparisons),
		Summary:     summary,
	}
	metrics.RecordRun(request.Ticker)

	if gs.store != nil {
		id, err := gs.store.SaveReport(report)
		if err != nil {
			helpers.Logger.Errorln(fmt.Sprintf("%s: saving report: %s", request.Ticker, err.Error()))
		} else {
			helpers.Logger.Debugln(fmt.Sprintf("%s: report %d saved", request.Ticker, id))
		}
	}

	return report, nil
}

// BuildSignalTable computes close-to-close returns and one signal column per registry indicator.
func BuildSignalTable(timeSeries *techan.TimeSeries, registry *analysis.Registry) (*analytics.SignalTable, error) {
	timestamps := make([]time.Time, len(timeSeries.Candles))
	for i, candle := range timeSeries.Candles {
		timestamps[i] = candle.Period.Start
	}
	closes := helpers.ClosePrices(timeSeries)
	table := analytics.NewSignalTable(timestamps, closes, helpers.PctChange(closes))

	signalStrategies, err := strategies.StrategiesFor(registry.Names())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", analysis.ErrUnknownIndicator, err)
	}
	// Generators come back in registry order; the registry decides the column each one fills.
	for i, indicator := range registry.Indicators() {
		signals, err := signalStrategies[i].GenerateSignals(timeSeries)
		if err != nil {
			return nil, err
		}
		if err := table.SetSignals(indicator.SignalColumn, signals); err != nil {
			return nil, err
		}
	}
	return table, nil
}
