package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

// offsetIndicator re-indexes a base indicator so that index 0 maps to its first defined value.
// Indicators stacked on top of it then warm up on defined values only.
type offsetIndicator struct {
	base   techan.Indicator
	offset int
}

func NewOffsetIndicator(baseIndicator techan.Indicator, offset int) techan.Indicator {
	return offsetIndicator{
		base:   baseIndicator,
		offset: offset,
	}
}

func (oi offsetIndicator) Calculate(index int) big.Decimal {
	return oi.base.Calculate(index + oi.offset)
}
