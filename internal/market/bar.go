// Package market holds the bar data model shared by ingestion, strategies, and the engine.
package market

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Bar is one aggregated OHLCV observation. Ts is epoch milliseconds.
type Bar struct {
	Ts     int64   `json:"ts"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// LoadCSV reads bars from a ts,open,high,low,close,volume file. A header row is
// skipped when its first field is not numeric; malformed rows are dropped.
func LoadCSV(path string) ([]Bar, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bars: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read bars: %w", err)
	}

	bars := make([]Bar, 0, len(records))
	for _, rec := range records {
		bar, ok := parseRow(rec)
		if !ok {
			continue
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func parseRow(rec []string) (Bar, bool) {
	if len(rec) < 6 {
		return Bar{}, false
	}
	ts, err := strconv.ParseInt(rec[0], 10, 64)
	if err != nil {
		return Bar{}, false
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return Bar{}, false
		}
		vals[i] = v
	}
	return Bar{Ts: ts, Open: vals[0], High: vals[1], Low: vals[2], Close: vals[3], Volume: vals[4]}, true
}
