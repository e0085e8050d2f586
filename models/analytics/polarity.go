package analytics

import "fmt"

type Polarity string

const (
	PolarityBuy  Polarity = "Buy"
	PolaritySell Polarity = "Sell"
	PolarityAll  Polarity = "All"
)

var Polarities = []Polarity{PolarityAll, PolarityBuy, PolaritySell}

func ParsePolarity(name string) (Polarity, error) {
	for _, polarity := range Polarities {
		if string(polarity) == name {
			return polarity, nil
		}
	}
	return "", fmt.Errorf("%q is not a known signal type (expected All, Buy or Sell)", name)
}

// Matches reports whether a signal value belongs to the polarity.
func (p Polarity) Matches(signal int) bool {
	switch p {
	case PolarityBuy:
		return signal == 1
	case PolaritySell:
		return signal == -1
	case PolarityAll:
		return signal != 0
	}
	return false
}
