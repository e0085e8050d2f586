package config

import (
	"fmt"
	"github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"time"
)

// minimumPeriod is the shortest history that can feed the 26 candle MACD and the
// 20 candle bands with enough rows left to test.
const minimumPeriod = "3mo"

var namedPeriods = map[string]string{
	"3mo": "90d",
	"6mo": "182d",
	"1y":  "365d",
	"2y":  "730d",
	"5y":  "1825d",
}

// ResolvePeriod turns a named period (1mo, 3mo, 6mo, 1y, 2y, 5y) or a duration string such
// as "180d" or "26w" into a duration. 1mo is raised to 3mo.
func ResolvePeriod(period string) (string, time.Duration, error) {
	if period == "1mo" {
		period = minimumPeriod
	}
	expression := period
	if named, ok := namedPeriods[period]; ok {
		expression = named
	}
	duration, err := str2duration.ParseDuration(expression)
	if err != nil {
		return "", 0, fmt.Errorf("invalid period %q: %w", period, err)
	}
	if duration <= 0 {
		return "", 0, fmt.Errorf("invalid period %q: must be positive", period)
	}
	return period, duration, nil
}

// CandleCount is the number of interval candles that cover period.
func CandleCount(period string, interval string) (int, error) {
	_, periodDuration, err := ResolvePeriod(period)
	if err != nil {
		return 0, err
	}
	intervalDuration, err := helpers.StringIntervalToDuration(interval)
	if err != nil {
		return 0, err
	}
	count := int(periodDuration / intervalDuration)
	if count == 0 {
		return 0, fmt.Errorf("period %s is shorter than one %s candle", period, interval)
	}
	return count, nil
}
