package analysis

import (
	"gonum.org/v1/gonum/stat"
	"math"
)

// RemoveOutliers drops returns whose z-score reaches the threshold. Samples under three
// observations or with zero spread are returned untouched.
func RemoveOutliers(returns []float64, threshold float64) []float64 {
	if len(returns) < 3 {
		return returns
	}
	mean, stdDev := stat.MeanStdDev(returns, nil)
	if stdDev == 0 || math.IsNaN(stdDev) {
		return returns
	}

	kept := make([]float64, 0, len(returns))
	for _, value := range returns {
		if math.Abs((value-mean)/stdDev) < threshold {
			kept = append(kept, value)
		}
	}
	return kept
}
