// Package report serializes backtest results for downstream analysis.
package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/backtest"
)

// WriteSummaryCSV writes one row per result: asset, sharpe, max drawdown,
// final equity, trade count, and total return against the supplied initial cash.
func WriteSummaryCSV(path string, results []backtest.Result, initialCash float64) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"asset", "sharpe", "max_dd", "final_equity", "trades", "total_return"}); err != nil {
			return err
		}
		for _, r := range results {
			totalReturn := 0.0
			if len(r.EquityCurve) > 0 && initialCash != 0 {
				totalReturn = (r.FinalEquity - initialCash) / initialCash
			}
			row := []string{
				r.Asset,
				formatF(r.Sharpe),
				formatF(r.MaxDrawdown),
				formatF(r.FinalEquity),
				strconv.Itoa(r.TradeCount),
				formatF(totalReturn),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// WriteDetailsCSV writes the per-bar equity and pnl rows for every result.
func WriteDetailsCSV(path string, results []backtest.Result) error {
	return writeCSV(path, func(w *csv.Writer) error {
		if err := w.Write([]string{"asset", "bar_idx", "equity", "pnl"}); err != nil {
			return err
		}
		for _, r := range results {
			for i := range r.EquityCurve {
				row := []string{r.Asset, strconv.Itoa(i), formatF(r.EquityCurve[i]), formatF(r.PnLSeries[i])}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// WriteEquityCSV writes an index-aligned equity table, one column per asset.
// Curves shorter than the longest are padded with their final value.
func WriteEquityCSV(path string, results []backtest.Result) error {
	return writeCSV(path, func(w *csv.Writer) error {
		header := []string{"bar_idx"}
		maxBars := 0
		for _, r := range results {
			header = append(header, r.Asset)
			if len(r.EquityCurve) > maxBars {
				maxBars = len(r.EquityCurve)
			}
		}
		if err := w.Write(header); err != nil {
			return err
		}
		for i := 0; i < maxBars; i++ {
			row := make([]string, 0, len(results)+1)
			row = append(row, strconv.Itoa(i))
			for _, r := range results {
				curve := r.EquityCurve
				switch {
				case i < len(curve):
					row = append(row, formatF(curve[i]))
				case len(curve) > 0:
					row = append(row, formatF(curve[len(curve)-1]))
				default:
					row = append(row, "")
				}
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeCSV(path string, fill func(*csv.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := fill(w); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	w.Flush()
	return w.Error()
}

func formatF(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
