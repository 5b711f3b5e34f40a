package backtest

import (
	"math"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/strategy"
)

// annualPeriods is the number of return periods compounded to one year.
const annualPeriods = 252.0

// Metrics is the extended reduction over an equity curve, used for top-level
// reporting rather than per-run bookkeeping.
type Metrics struct {
	TotalReturn      float64
	AnnualizedReturn float64
	Sharpe           float64
	Sortino          float64
	MaxDrawdown      float64
	Calmar           float64
	WinRate          float64 // fraction of recorded trades closed at a profit
	WinningTrades    int
	TotalTrades      int
}

// Compute folds an equity curve and its recorded trades into Metrics.
// A zero-length curve yields a zeroed record.
func Compute(equity []float64, trades []strategy.Trade) Metrics {
	var m Metrics
	m.TotalTrades = len(trades)
	if len(equity) == 0 {
		return m
	}

	if equity[0] != 0 {
		m.TotalReturn = (equity[len(equity)-1] - equity[0]) / equity[0]
	}
	m.AnnualizedReturn = math.Pow(1.0+m.TotalReturn, annualPeriods/float64(len(equity))) - 1.0

	rets := simpleReturns(equity)
	if len(rets) > 0 {
		mean, sd := meanStd(rets)
		if sd > 0 {
			m.Sharpe = mean / sd * math.Sqrt(annualPeriods)
		}

		var downVar float64
		var downN int
		for _, r := range rets {
			if r < 0 {
				d := r - mean
				downVar += d * d
				downN++
			}
		}
		if downN > 0 {
			downSD := math.Sqrt(downVar / float64(downN))
			if downSD > 0 {
				m.Sortino = mean / downSD * math.Sqrt(annualPeriods)
			}
		}
	}

	m.MaxDrawdown = maxDrawdown(equity)
	if m.MaxDrawdown > 0 {
		m.Calmar = m.AnnualizedReturn / m.MaxDrawdown
	}

	for _, tr := range trades {
		if (tr.ExitPrice-tr.EntryPrice)*float64(tr.Quantity) > 0 {
			m.WinningTrades++
		}
	}
	if m.TotalTrades > 0 {
		m.WinRate = float64(m.WinningTrades) / float64(m.TotalTrades)
	}
	return m
}

// sharpeRatio is the per-run Sharpe over an equity curve: mean of per-step
// simple returns over their population stddev, annualized. Zero for curves
// with fewer than two points or zero-variance returns.
func sharpeRatio(equity []float64) float64 {
	rets := simpleReturns(equity)
	if len(rets) == 0 {
		return 0
	}
	mean, sd := meanStd(rets)
	if sd == 0 {
		return 0
	}
	return mean / sd * math.Sqrt(annualPeriods)
}

// maxDrawdown is the largest fractional decline from a running peak. Peaks at
// or below zero contribute no drawdown.
func maxDrawdown(equity []float64) float64 {
	if len(equity) == 0 {
		return 0
	}
	peak := equity[0]
	var mdd float64
	for _, v := range equity {
		if v > peak {
			peak = v
		}
		if peak <= 0 {
			continue
		}
		if dd := (peak - v) / peak; dd > mdd {
			mdd = dd
		}
	}
	return mdd
}

func simpleReturns(equity []float64) []float64 {
	if len(equity) < 2 {
		return nil
	}
	rets := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		if equity[i-1] == 0 {
			continue
		}
		rets = append(rets, (equity[i]-equity[i-1])/equity[i-1])
	}
	return rets
}

func meanStd(xs []float64) (float64, float64) {
	var mean float64
	for _, x := range xs {
		mean += x
	}
	mean /= float64(len(xs))

	var variance float64
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(len(xs))
	return mean, math.Sqrt(variance)
}
