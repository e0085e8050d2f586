package file

import (
	"errors"
	"fmt"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"gitlab.com/aoterocom/AOStrategyGrader/models/analytics"
	"math"
	"strconv"
	"strings"
)

// LoadSignalTable reads a precomputed signal table: a date column, a close column and one
// column per signal series. An optional returns (or return) column overrides the close-to-close
// change; empty cells in it are undefined returns. Signal cells must be -1, 0 or 1, empty or NaN
// cells are holds.
func LoadSignalTable(path string) (*analytics.SignalTable, error) {
	header, rows, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	timeIndex, ok := columnIndex(header, "date", "time", "timestamp")
	if !ok {
		return nil, fmt.Errorf("%s: missing date column", path)
	}
	closeIndex, ok := columnIndex(header, "close")
	if !ok {
		return nil, fmt.Errorf("%s: missing close column", path)
	}
	returnsIndex, hasReturns := columnIndex(header, "returns", "return")

	table := analytics.NewSignalTable(nil, nil, nil)
	signals := make(map[string][]int)
	for line, row := range rows {
		timestamp, err := parseTime(row[timeIndex])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line+2, err)
		}
		closePrice, err := strconv.ParseFloat(row[closeIndex], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line+2, err)
		}
		table.Timestamps = append(table.Timestamps, timestamp)
		table.Closes = append(table.Closes, closePrice)

		if hasReturns {
			value, err := parseOptionalFloat(row[returnsIndex])
			if err != nil {
				return nil, fmt.Errorf("%s line %d: %w", path, line+2, err)
			}
			table.Returns = append(table.Returns, value)
		}

		for i, column := range header {
			if i == timeIndex || i == closeIndex || (hasReturns && i == returnsIndex) {
				continue
			}
			signal, err := parseSignal(row[i])
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %s: %w", path, line+2, column, err)
			}
			signals[strings.TrimSpace(column)] = append(signals[strings.TrimSpace(column)], signal)
		}
	}

	if !hasReturns {
		table.Returns = helpers.PctChange(table.Closes)
	}
	for column, values := range signals {
		if err := table.SetSignals(column, values); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// ErrInvalidSignal reports a signal cell outside {-1, 0, 1}.
var ErrInvalidSignal = errors.New("invalid signal")

func parseOptionalFloat(value string) (analytics.OptionalFloat, error) {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "nan") {
		return analytics.NoFloat(), nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return analytics.NoFloat(), err
	}
	return analytics.SomeFloat(parsed), nil
}

func parseSignal(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(parsed) {
		return 0, nil
	}
	if parsed != -1 && parsed != 0 && parsed != 1 {
		return 0, fmt.Errorf("%w: %q is not -1, 0 or 1", ErrInvalidSignal, value)
	}
	return int(parsed), nil
}
