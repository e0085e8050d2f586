package analysis

import (
	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"testing"
)

func TestResolveWinner(t *testing.T) {
	cases := []struct {
		statistic float64
		pValue    float64
		want      string
	}{
		{2.5, 0.01, "RSI"},
		{-2.5, 0.01, "MACD"},
		{0, 0.01, analytics.WinnerTie},
		{2.5, 0.05, analytics.WinnerInconclusive},
		{-9.0, 0.2, analytics.WinnerInconclusive},
		{0, 1, analytics.WinnerInconclusive},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ResolveWinner(c.statistic, c.pValue, "RSI", "MACD"),
			"t=%v p=%v", c.statistic, c.pValue)
	}
}

func TestResolveWinnerSignConsistency(t *testing.T) {
	for _, p := range []float64{0, 0.001, 0.02, 0.0499} {
		for _, statistic := range []float64{-100, -1, -1e-12, 1e-12, 1, 100} {
			winner := ResolveWinner(statistic, p, "A", "B")
			if statistic > 0 {
				assert.Equal(t, "A", winner)
			} else {
				assert.Equal(t, "B", winner)
			}
		}
	}
}

func TestResolveWinnerInconclusiveDominates(t *testing.T) {
	for _, p := range []float64{0.05, 0.06, 0.5, 1} {
		for _, statistic := range []float64{-100, -1, 0, 1, 100} {
			assert.Equal(t, analytics.WinnerInconclusive, ResolveWinner(statistic, p, "A", "B"))
		}
	}
}
