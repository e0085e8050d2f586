package analysis

import (
	"fmt"
)

const (
	IndicatorRSI       = "RSI"
	IndicatorMACD      = "MACD"
	IndicatorBollinger = "Bollinger"

	ColumnRSI       = "RSI_Signal"
	ColumnMACD      = "MACD_Strategy_Signal"
	ColumnBollinger = "BB_Strategy_Signal"
)

// Indicator binds an indicator name to the signal column holding its -1/0/+1 series.
type Indicator struct {
	Name         string `yaml:"name" json:"name"`
	SignalColumn string `yaml:"signal_column" json:"signal_column"`
}

// Registry is the ordered indicator universe. Declaration order is the ranking tie-break order.
type Registry struct {
	indicators []Indicator
	columns    map[string]string
}

func NewRegistry(indicators ...Indicator) (*Registry, error) {
	if len(indicators) == 0 {
		return nil, fmt.Errorf("registry needs at least one indicator")
	}

	registry := &Registry{
		columns: make(map[string]string, len(indicators)),
	}
	seenColumns := make(map[string]string, len(indicators))
	for _, indicator := range indicators {
		if indicator.Name == "" || indicator.SignalColumn == "" {
			return nil, fmt.Errorf("indicator %q: name and signal column are required", indicator.Name)
		}
		if _, exists := registry.columns[indicator.Name]; exists {
			return nil, fmt.Errorf("indicator %s declared twice", indicator.Name)
		}
		if owner, exists := seenColumns[indicator.SignalColumn]; exists {
			return nil, fmt.Errorf("signal column %s used by both %s and %s", indicator.SignalColumn, owner, indicator.Name)
		}
		seenColumns[indicator.SignalColumn] = indicator.Name
		registry.columns[indicator.Name] = indicator.SignalColumn
		registry.indicators = append(registry.indicators, indicator)
	}
	return registry, nil
}

func DefaultRegistry() *Registry {
	registry, _ := NewRegistry(
		Indicator{Name: IndicatorRSI, SignalColumn: ColumnRSI},
		Indicator{Name: IndicatorMACD, SignalColumn: ColumnMACD},
		Indicator{Name: IndicatorBollinger, SignalColumn: ColumnBollinger},
	)
	return registry
}

func (r *Registry) Indicators() []Indicator {
	indicators := make([]Indicator, len(r.indicators))
	copy(indicators, r.indicators)
	return indicators
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.indicators))
	for _, indicator := range r.indicators {
		names = append(names, indicator.Name)
	}
	return names
}

func (r *Registry) Contains(name string) bool {
	_, ok := r.columns[name]
	return ok
}

func (r *Registry) SignalColumn(name string) (string, error) {
	column, ok := r.columns[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownIndicator, name)
	}
	return column, nil
}
