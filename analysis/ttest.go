package analysis

import (
	"fmt"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"math"
)

// MinSampleSize is the smallest sample the Welch test accepts.
const MinSampleSize = 2

type TTestResult struct {
	Statistic        float64
	PValue           float64
	DegreesOfFreedom float64
}

func HasSufficientSample(size int) bool {
	return size >= MinSampleSize
}

// WelchTTest runs a two-tailed two-sample t-test without assuming equal variances.
func WelchTTest(first []float64, second []float64) (TTestResult, error) {
	if !HasSufficientSample(len(first)) || !HasSufficientSample(len(second)) {
		return TTestResult{}, fmt.Errorf("%w: got %d and %d observations, need %d each",
			ErrInsufficientSample, len(first), len(second), MinSampleSize)
	}

	firstSize := float64(len(first))
	secondSize := float64(len(second))
	firstMean, firstVariance := stat.MeanVariance(first, nil)
	secondMean, secondVariance := stat.MeanVariance(second, nil)

	firstError := firstVariance / firstSize
	secondError := secondVariance / secondSize
	difference := firstMean - secondMean
	standardError := math.Sqrt(firstError + secondError)

	// Both samples constant: the statistic degenerates.
	if standardError == 0 {
		degreesOfFreedom := firstSize + secondSize - 2
		if difference == 0 {
			return TTestResult{Statistic: 0, PValue: 1, DegreesOfFreedom: degreesOfFreedom}, nil
		}
		return TTestResult{Statistic: math.Inf(sign(difference)), PValue: 0, DegreesOfFreedom: degreesOfFreedom}, nil
	}

	statistic := difference / standardError
	degreesOfFreedom := math.Pow(firstError+secondError, 2) /
		(firstError*firstError/(firstSize-1) + secondError*secondError/(secondSize-1))

	distribution := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: degreesOfFreedom}
	pValue := math.Min(1, 2*distribution.Survival(math.Abs(statistic)))

	return TTestResult{
		Statistic:        statistic,
		PValue:           pValue,
		DegreesOfFreedom: degreesOfFreedom,
	}, nil
}

func sign(value float64) int {
	if value < 0 {
		return -1
	}
	return 1
}
