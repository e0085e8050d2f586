package helpers

import (
	"fmt"
	"github.com/sdcoffey/techan"
	"github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

func ClosePrices(timeSeries *techan.TimeSeries) []float64 {
	closes := make([]float64, len(timeSeries.Candles))
	for i, candle := range timeSeries.Candles {
		closes[i] = candle.ClosePrice.Float()
	}
	return closes
}

// PctChange returns the period-over-period change of values. The first change is undefined.
func PctChange(values []float64) []analytics.OptionalFloat {
	changes := make([]analytics.OptionalFloat, len(values))
	for i := range values {
		if i == 0 || values[i-1] == 0 {
			changes[i] = analytics.NoFloat()
			continue
		}
		changes[i] = analytics.SomeFloat(values[i]/values[i-1] - 1)
	}
	return changes
}

// Quantile interpolates linearly between the closest ranks, placing q at position (n-1)*q.
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	position := q * float64(len(sorted)-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(position-float64(lower))
}

func CountValue(values []int, target int) int {
	count := 0
	for _, value := range values {
		if value == target {
			count++
		}
	}
	return count
}

func SumInts(values []int) (total int) {
	for _, x := range values {
		total += x
	}
	return total
}

// StringIntervalToDuration converts exchange intervals such as "15m", "4h", "1d" or "1w". Months
// ("1M") count as 30 days.
func StringIntervalToDuration(interval string) (time.Duration, error) {
	if strings.HasSuffix(interval, "M") {
		months, err := strconv.Atoi(strings.TrimSuffix(interval, "M"))
		if err != nil || months <= 0 {
			return 0, fmt.Errorf("invalid interval %q", interval)
		}
		return time.Duration(months) * 30 * 24 * time.Hour, nil
	}

	duration, err := str2duration.ParseDuration(interval)
	if err != nil || duration <= 0 {
		return 0, fmt.Errorf("invalid interval %q", interval)
	}
	return duration, nil
}
