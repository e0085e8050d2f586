package analysis

import (
	"context"
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"gonum.org/v1/gonum/stat"
	"sync"
)

// ComparisonRequest names the two (indicator, signal type) configurations to compare.
type ComparisonRequest struct {
	IndicatorA string
	PolarityA  analytics.Polarity
	IndicatorB string
	PolarityB  analytics.Polarity
}

func (r ComparisonRequest) Key() string {
	return analytics.ComparisonKey(r.IndicatorA, r.PolarityA, r.IndicatorB, r.PolarityB)
}

// SameTest reports whether other compares the same two configurations, in either order.
func (r ComparisonRequest) SameTest(other ComparisonRequest) bool {
	if r.IndicatorA == other.IndicatorA && r.PolarityA == other.PolarityA &&
		r.IndicatorB == other.IndicatorB && r.PolarityB == other.PolarityB {
		return true
	}
	return r.IndicatorA == other.IndicatorB && r.PolarityA == other.PolarityB &&
		r.IndicatorB == other.IndicatorA && r.PolarityB == other.PolarityA
}

type Comparator struct {
	registry         *Registry
	outlierThreshold float64
}

type ComparatorOption func(*Comparator)

// WithOutlierRemoval trims each sample by z-score before testing. A threshold <= 0 disables it.
func WithOutlierRemoval(threshold float64) ComparatorOption {
	return func(c *Comparator) {
		c.outlierThreshold = threshold
	}
}

func NewComparator(registry *Registry, options ...ComparatorOption) *Comparator {
	comparator := &Comparator{registry: registry}
	for _, option := range options {
		option(comparator)
	}
	return comparator
}

func (c *Comparator) Registry() *Registry {
	return c.registry
}

// Compare runs one comparison. The returned map holds a single entry keyed by the request key, or
// no entry at all when either side has fewer than MinSampleSize returns.
func (c *Comparator) Compare(table *analytics.SignalTable, request ComparisonRequest) (map[string]analytics.ComparisonResult, error) {
	columnA, err := c.registry.SignalColumn(request.IndicatorA)
	if err != nil {
		return nil, err
	}
	columnB, err := c.registry.SignalColumn(request.IndicatorB)
	if err != nil {
		return nil, err
	}
	if err := validatePolarity(request.PolarityA); err != nil {
		return nil, err
	}
	if err := validatePolarity(request.PolarityB); err != nil {
		return nil, err
	}

	returnsA, err := c.sample(table, columnA, request.PolarityA)
	if err != nil {
		return nil, err
	}
	returnsB, err := c.sample(table, columnB, request.PolarityB)
	if err != nil {
		return nil, err
	}

	results := make(map[string]analytics.ComparisonResult)
	if !HasSufficientSample(len(returnsA)) || !HasSufficientSample(len(returnsB)) {
		return results, nil
	}

	test, err := WelchTTest(returnsA, returnsB)
	if err != nil {
		return nil, err
	}

	results[request.Key()] = analytics.ComparisonResult{
		Key:          request.Key(),
		First:        describeSide(request.IndicatorA, request.PolarityA, returnsA),
		Second:       describeSide(request.IndicatorB, request.PolarityB, returnsB),
		TStatistic:   test.Statistic,
		PValue:       test.PValue,
		Significance: Grade(test.PValue),
		Winner:       ResolveWinner(test.Statistic, test.PValue, request.IndicatorA, request.IndicatorB),
	}
	return results, nil
}

// CompareBatch runs independent comparisons concurrently and merges their results.
func (c *Comparator) CompareBatch(ctx context.Context, table *analytics.SignalTable,
	requests []ComparisonRequest) (map[string]analytics.ComparisonResult, error) {

	merged := make(map[string]analytics.ComparisonResult)
	var mutex sync.Mutex
	var waitGroup sync.WaitGroup
	errs := make([]error, len(requests))

	for i, request := range requests {
		if err := ctx.Err(); err != nil {
			waitGroup.Wait()
			return nil, err
		}
		waitGroup.Add(1)
		go func(i int, request ComparisonRequest) {
			defer waitGroup.Done()
			results, err := c.Compare(table, request)
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", request.Key(), err)
				return
			}
			mutex.Lock()
			for key, result := range results {
				merged[key] = result
			}
			mutex.Unlock()
		}(i, request)
	}
	waitGroup.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return merged, nil
}

// AllPairings builds one request per unordered pair of registry indicators.
func AllPairings(registry *Registry, polarity analytics.Polarity) []ComparisonRequest {
	names := registry.Names()
	var requests []ComparisonRequest
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			requests = append(requests, ComparisonRequest{
				IndicatorA: names[i],
				PolarityA:  polarity,
				IndicatorB: names[j],
				PolarityB:  polarity,
			})
		}
	}
	return requests
}

func (c *Comparator) sample(table *analytics.SignalTable, column string, polarity analytics.Polarity) ([]float64, error) {
	returns, err := FilterReturns(table, column, polarity)
	if err != nil {
		return nil, err
	}
	if c.outlierThreshold > 0 {
		returns = RemoveOutliers(returns, c.outlierThreshold)
	}
	return returns, nil
}

func describeSide(indicator string, polarity analytics.Polarity, returns []float64) analytics.ComparisonSide {
	mean, stdDev := stat.MeanStdDev(returns, nil)
	return analytics.ComparisonSide{
		Indicator: indicator,
		Polarity:  polarity,
		Count:     len(returns),
		Mean:      mean,
		StdDev:    stdDev,
	}
}
