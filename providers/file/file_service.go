package file

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOStrategyGrader/helpers"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var timeLayouts = []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"}

// JSONCandle is the on-disk candle format for .json price files.
type JSONCandle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// FileService serves price series from .json or .csv files. When path is a directory the
// file is looked up as <symbol>.json or <symbol>.csv inside it.
type FileService struct {
	path string
}

func NewFileService(path string) *FileService {
	return &FileService{path: path}
}

func (fileService *FileService) GetSeries(ctx context.Context, symbol string, interval string, limit int) (*techan.TimeSeries, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	intervalDuration, err := helpers.StringIntervalToDuration(interval)
	if err != nil {
		return nil, err
	}

	path, err := fileService.resolve(symbol)
	if err != nil {
		return nil, err
	}

	var candles []JSONCandle
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		candles, err = readJSONCandles(path)
	case ".csv":
		candles, err = readCSVCandles(path)
	default:
		err = fmt.Errorf("unsupported price file %s", path)
	}
	if err != nil {
		return nil, err
	}

	if limit > 0 && limit < len(candles) {
		candles = candles[len(candles)-limit:]
	}

	timeSeries := techan.NewTimeSeries()
	for _, c := range candles {
		candle := techan.NewCandle(techan.NewTimePeriod(c.Time, intervalDuration))
		candle.OpenPrice = big.NewDecimal(c.Open)
		candle.ClosePrice = big.NewDecimal(c.Close)
		candle.MaxPrice = big.NewDecimal(c.High)
		candle.MinPrice = big.NewDecimal(c.Low)
		candle.Volume = big.NewDecimal(c.Volume)
		if !timeSeries.AddCandle(candle) {
			helpers.Logger.Warnln(fmt.Sprintf("%s: skipping out of order candle at %s", path, c.Time.Format(time.RFC3339)))
		}
	}
	if len(timeSeries.Candles) == 0 {
		return nil, fmt.Errorf("%s has no candles", path)
	}
	return timeSeries, nil
}

func (fileService *FileService) resolve(symbol string) (string, error) {
	info, err := os.Stat(fileService.path)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return fileService.path, nil
	}
	for _, ext := range []string{".json", ".csv"} {
		candidate := filepath.Join(fileService.path, symbol+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no price file for %s in %s", symbol, fileService.path)
}

func readJSONCandles(path string) ([]JSONCandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var candles []JSONCandle
	if err := json.Unmarshal(data, &candles); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return candles, nil
}

func readCSVCandles(path string) ([]JSONCandle, error) {
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
	openIndex, hasOpen := columnIndex(header, "open")
	highIndex, hasHigh := columnIndex(header, "high")
	lowIndex, hasLow := columnIndex(header, "low")
	volumeIndex, hasVolume := columnIndex(header, "volume")

	candles := make([]JSONCandle, 0, len(rows))
	for line, row := range rows {
		timestamp, err := parseTime(row[timeIndex])
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line+2, err)
		}
		closePrice, err := strconv.ParseFloat(row[closeIndex], 64)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", path, line+2, err)
		}
		candle := JSONCandle{Time: timestamp, Open: closePrice, High: closePrice, Low: closePrice, Close: closePrice}
		optional := []struct {
			present bool
			index   int
			name    string
			target  *float64
		}{
			{hasOpen, openIndex, "open", &candle.Open},
			{hasHigh, highIndex, "high", &candle.High},
			{hasLow, lowIndex, "low", &candle.Low},
			{hasVolume, volumeIndex, "volume", &candle.Volume},
		}
		for _, column := range optional {
			if !column.present {
				continue
			}
			value, err := strconv.ParseFloat(row[column.index], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %s: %w", path, line+2, column.name, err)
			}
			*column.target = value
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("%s is empty", path)
	}
	if err != nil {
		return nil, nil, err
	}
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return header, rows, nil
}

func columnIndex(header []string, names ...string) (int, bool) {
	for i, column := range header {
		for _, name := range names {
			if strings.EqualFold(strings.TrimSpace(column), name) {
				return i, true
			}
		}
	}
	return -1, false
}

func parseTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", value)
}
