package analytics

import (
	"fmt"
	"time"
)

// SignalTable is the combined per-period table the grader works on: one return per row
// and one signal column (-1, 0, +1) per indicator.
type SignalTable struct {
	Timestamps []time.Time
	Closes     []float64
	Returns    []OptionalFloat
	Signals    map[string][]int
}

func NewSignalTable(timestamps []time.Time, closes []float64, returns []OptionalFloat) *SignalTable {
	return &SignalTable{
		Timestamps: timestamps,
		Closes:     closes,
		Returns:    returns,
		Signals:    make(map[string][]int),
	}
}

func (t *SignalTable) Len() int {
	return len(t.Returns)
}

func (t *SignalTable) SetSignals(column string, signals []int) error {
	if len(signals) != t.Len() {
		return fmt.Errorf("signal column %s has %d rows, table has %d", column, len(signals), t.Len())
	}
	t.Signals[column] = signals
	return nil
}

func (t *SignalTable) Column(column string) ([]int, bool) {
	signals, ok := t.Signals[column]
	return signals, ok
}
