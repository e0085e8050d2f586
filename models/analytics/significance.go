package analytics

type Significance int

const (
	SignificanceInsufficientData Significance = iota
	SignificanceHighlySignificant
	SignificanceSignificant
	SignificanceModeratelySignificant
	SignificanceNotSignificant
)

func (s Significance) String() string {
	switch s {
	case SignificanceHighlySignificant:
		return "Highly Significant (p < 0.01)"
	case SignificanceSignificant:
		return "Significant (p < 0.05)"
	case SignificanceModeratelySignificant:
		return "Moderately Significant (p < 0.1)"
	case SignificanceNotSignificant:
		return "Not Significant (p ≥ 0.1)"
	default:
		return "Insufficient Data"
	}
}

func (s Significance) Grade() string {
	switch s {
	case SignificanceHighlySignificant:
		return "A+"
	case SignificanceSignificant:
		return "A"
	case SignificanceModeratelySignificant:
		return "B"
	case SignificanceNotSignificant:
		return "C"
	default:
		return "N/A"
	}
}

// ShortLabel is the tier name without the p-value range, e.g. "Highly Significant".
func (s Significance) ShortLabel() string {
	switch s {
	case SignificanceHighlySignificant:
		return "Highly Significant"
	case SignificanceSignificant:
		return "Significant"
	case SignificanceModeratelySignificant:
		return "Moderately Significant"
	case SignificanceNotSignificant:
		return "Not Significant"
	default:
		return "Insufficient Data"
	}
}

func (s Significance) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
