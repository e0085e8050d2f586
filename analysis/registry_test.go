package analysis

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDefaultRegistryMapping(t *testing.T) {
	registry := DefaultRegistry()
	assert.Equal(t, []string{"RSI", "MACD", "Bollinger"}, registry.Names())

	for name, column := range map[string]string{
		"RSI":       "RSI_Signal",
		"MACD":      "MACD_Strategy_Signal",
		"Bollinger": "BB_Strategy_Signal",
	} {
		got, err := registry.SignalColumn(name)
		require.NoError(t, err)
		assert.Equal(t, column, got)
	}

	_, err := registry.SignalColumn("rsi")
	assert.ErrorIs(t, err, ErrUnknownIndicator)
	assert.False(t, registry.Contains("Stochastic"))
}

func TestNewRegistryValidation(t *testing.T) {
	_, err := NewRegistry()
	assert.Error(t, err)

	_, err = NewRegistry(Indicator{Name: "RSI", SignalColumn: "A"}, Indicator{Name: "RSI", SignalColumn: "B"})
	assert.Error(t, err)

	_, err = NewRegistry(Indicator{Name: "RSI", SignalColumn: "A"}, Indicator{Name: "MACD", SignalColumn: "A"})
	assert.Error(t, err)

	_, err = NewRegistry(Indicator{Name: "RSI"})
	assert.Error(t, err)
}
