package analysis

import (
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"gonum.org/v1/gonum/stat"
)

// Bucket is one of the three fixed single-strategy buckets.
type Bucket string

const (
	BucketBuy  Bucket = "Buy"
	BucketSell Bucket = "Sell"
	BucketHold Bucket = "Hold"
)

// legacyMinSampleSize is the threshold of the batch Buy/Sell/Hold run: strictly more than two
// observations. PerformPairwiseTTest keeps MinSampleSize instead.
const legacyMinSampleSize = 3

func ParseBucket(name string) (Bucket, error) {
	switch Bucket(name) {
	case BucketBuy, BucketSell, BucketHold:
		return Bucket(name), nil
	}
	return "", fmt.Errorf("%w: %q (expected Buy, Sell or Hold)", ErrInvalidBucket, name)
}

func (b Bucket) signal() (int, error) {
	switch b {
	case BucketBuy:
		return 1, nil
	case BucketSell:
		return -1, nil
	case BucketHold:
		return 0, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBucket, b)
}

// PerformTTests compares Buy vs Sell, Buy vs Hold and Sell vs Hold returns of one signal column
// and returns the p-value of every pair whose buckets both hold more than two observations.
func PerformTTests(table *analytics.SignalTable, column string) (map[string]float64, error) {
	buckets := []Bucket{BucketBuy, BucketSell, BucketHold}
	returns := make(map[Bucket][]float64, len(buckets))
	for _, bucket := range buckets {
		bucketReturns, err := returnsForBucket(table, column, bucket)
		if err != nil {
			return nil, err
		}
		returns[bucket] = bucketReturns
	}

	pairs := [][2]Bucket{
		{BucketBuy, BucketSell},
		{BucketBuy, BucketHold},
		{BucketSell, BucketHold},
	}
	results := make(map[string]float64)
	for _, pair := range pairs {
		first, second := returns[pair[0]], returns[pair[1]]
		if len(first) < legacyMinSampleSize || len(second) < legacyMinSampleSize {
			continue
		}
		test, err := WelchTTest(first, second)
		if err != nil {
			return nil, err
		}
		results[fmt.Sprintf("%s vs %s", pair[0], pair[1])] = test.PValue
	}
	return results, nil
}

// PerformPairwiseTTest compares two buckets of one signal column. Undersized buckets yield the
// insufficient-data sentinel instead of a test.
func PerformPairwiseTTest(table *analytics.SignalTable, column string, first Bucket, second Bucket) (analytics.PairwiseResult, error) {
	firstReturns, err := returnsForBucket(table, column, first)
	if err != nil {
		return analytics.PairwiseResult{}, err
	}
	secondReturns, err := returnsForBucket(table, column, second)
	if err != nil {
		return analytics.PairwiseResult{}, err
	}

	if !HasSufficientSample(len(firstReturns)) || !HasSufficientSample(len(secondReturns)) {
		return InsufficientDataResult(string(first), string(second), len(firstReturns), len(secondReturns)), nil
	}

	test, err := WelchTTest(firstReturns, secondReturns)
	if err != nil {
		return analytics.PairwiseResult{}, err
	}

	firstMean, firstStdDev := stat.MeanStdDev(firstReturns, nil)
	secondMean, secondStdDev := stat.MeanStdDev(secondReturns, nil)
	return analytics.PairwiseResult{
		First:        string(first),
		Second:       string(second),
		PValue:       test.PValue,
		TStatistic:   test.Statistic,
		Significance: Grade(test.PValue),
		SampleSize1:  len(firstReturns),
		SampleSize2:  len(secondReturns),
		MeanReturn1:  analytics.SomeFloat(firstMean),
		MeanReturn2:  analytics.SomeFloat(secondMean),
		StdReturn1:   analytics.SomeFloat(firstStdDev),
		StdReturn2:   analytics.SomeFloat(secondStdDev),
	}, nil
}

func returnsForBucket(table *analytics.SignalTable, column string, bucket Bucket) ([]float64, error) {
	target, err := bucket.signal()
	if err != nil {
		return nil, err
	}
	signals, ok := table.Column(column)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}

	returns := []float64{}
	for i, signal := range signals {
		if signal != target {
			continue
		}
		if value, defined := table.Returns[i].Get(); defined {
			returns = append(returns, value)
		}
	}
	return returns, nil
}
