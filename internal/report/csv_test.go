package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/backtest"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

func sampleResults() []backtest.Result {
	return []backtest.Result{
		{
			Asset:       "AAPL",
			EquityCurve: []float64{100000, 100100, 100050},
			PnLSeries:   []float64{0, 100, -50},
			Sharpe:      1.5,
			MaxDrawdown: 0.0005,
			FinalEquity: 100050,
			TradeCount:  2,
		},
		{
			Asset:       "MSFT",
			EquityCurve: []float64{100000, 99900},
			PnLSeries:   []float64{0, -100},
			FinalEquity: 99900,
			TradeCount:  1,
		},
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.csv")
	if err := WriteSummaryCSV(path, sampleResults(), 100000); err != nil {
		t.Fatalf("WriteSummaryCSV returned error: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "asset" || records[0][5] != "total_return" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "AAPL" || records[1][4] != "2" {
		t.Fatalf("unexpected AAPL row: %v", records[1])
	}
	if records[2][5] != "-0.001" {
		t.Fatalf("unexpected MSFT total return: %v", records[2])
	}
}

func TestWriteDetailsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "details.csv")
	if err := WriteDetailsCSV(path, sampleResults()); err != nil {
		t.Fatalf("WriteDetailsCSV returned error: %v", err)
	}

	records := readCSV(t, path)
	// header + 3 AAPL rows + 2 MSFT rows
	if len(records) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(records))
	}
	if records[2][0] != "AAPL" || records[2][1] != "1" || records[2][3] != "100" {
		t.Fatalf("unexpected detail row: %v", records[2])
	}
}

func TestWriteEquityCSVPadsShortCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "equity.csv")
	if err := WriteEquityCSV(path, sampleResults()); err != nil {
		t.Fatalf("WriteEquityCSV returned error: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(records))
	}
	if records[0][1] != "AAPL" || records[0][2] != "MSFT" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	// MSFT has 2 points; the third row must repeat its final value.
	if records[3][2] != "99900" {
		t.Fatalf("expected padded MSFT value, got %v", records[3])
	}
}
