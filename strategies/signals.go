package strategies

import (
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
)

// defaultMomentumThreshold is the close-to-close change that flags a momentum buy or sell.
const defaultMomentumThreshold = 0.005

// applyMomentumFallback marks rows whose close moved more than threshold as buy (+) or sell (-).
// Rows that do not move enough keep their current signal.
func applyMomentumFallback(signals []int, closes []float64, threshold float64) {
	for i, change := range helpers.PctChange(closes) {
		value, defined := change.Get()
		if !defined {
			continue
		}
		if value > threshold {
			signals[i] = 1
		} else if value < -threshold {
			signals[i] = -1
		}
	}
}

func hasBothSides(signals []int, minimum int) bool {
	return helpers.CountValue(signals, 1) >= minimum && helpers.CountValue(signals, -1) >= minimum
}
