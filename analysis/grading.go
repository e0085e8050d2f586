package analysis

import (
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
)

const (
	HighSignificanceLevel     = 0.01
	SignificanceLevel         = 0.05
	ModerateSignificanceLevel = 0.1
)

// Grade maps a p-value to its tier. The cutoffs are checked in ascending order with strict
// comparisons, so a p-value sitting exactly on a cutoff falls into the weaker tier.
func Grade(pValue float64) analytics.Significance {
	if pValue < HighSignificanceLevel {
		return analytics.SignificanceHighlySignificant
	} else if pValue < SignificanceLevel {
		return analytics.SignificanceSignificant
	} else if pValue < ModerateSignificanceLevel {
		return analytics.SignificanceModeratelySignificant
	}
	return analytics.SignificanceNotSignificant
}

// GradeStrategies labels every p-value of a legacy t-test run, e.g. "A+ (Highly Significant)".
func GradeStrategies(pValues map[string]float64) map[string]string {
	grades := make(map[string]string, len(pValues))
	for pair, pValue := range pValues {
		significance := Grade(pValue)
		grades[pair] = fmt.Sprintf("%s (%s)", significance.Grade(), significance.ShortLabel())
	}
	return grades
}

// InsufficientDataResult is the sentinel returned instead of a test when a bucket is too small.
func InsufficientDataResult(first string, second string, firstSize int, secondSize int) analytics.PairwiseResult {
	return analytics.PairwiseResult{
		First:        first,
		Second:       second,
		PValue:       1.0,
		TStatistic:   0.0,
		Significance: analytics.SignificanceInsufficientData,
		SampleSize1:  firstSize,
		SampleSize2:  secondSize,
		Detail: fmt.Sprintf("Need at least %d observations for each strategy. %s: %d, %s: %d",
			MinSampleSize, first, firstSize, second, secondSize),
	}
}
