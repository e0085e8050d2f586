package interfaces

import (
	"github.com/sdcoffey/techan"
)

type (
	// SignalStrategy turns a price series into one -1/0/+1 signal per candle.
	SignalStrategy interface {
		Name() string
		SignalColumn() string
		GenerateSignals(timeSeries *techan.TimeSeries) ([]int, error)
	}
)
