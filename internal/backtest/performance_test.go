package backtest

import (
	"math"
	"testing"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/strategy"
)

func TestComputeEmptyCurve(t *testing.T) {
	m := Compute(nil, nil)
	if m != (Metrics{}) {
		t.Fatalf("expected zeroed metrics, got %+v", m)
	}
}

func TestComputeTotalAndAnnualizedReturn(t *testing.T) {
	// 252 points compounding to +10%: annualized equals total by construction.
	equity := make([]float64, 252)
	for i := range equity {
		equity[i] = 100 * math.Pow(1.1, float64(i)/251.0)
	}
	m := Compute(equity, nil)
	if math.Abs(m.TotalReturn-0.1) > 1e-9 {
		t.Fatalf("total return: got %.6f want 0.1", m.TotalReturn)
	}
	if math.Abs(m.AnnualizedReturn-0.1) > 1e-6 {
		t.Fatalf("annualized return: got %.6f want 0.1", m.AnnualizedReturn)
	}
}

func TestComputeSharpeZeroOnConstantReturns(t *testing.T) {
	m := Compute([]float64{100, 110, 121}, nil)
	if m.Sharpe != 0 {
		t.Fatalf("constant returns have zero variance, sharpe should be 0, got %.6f", m.Sharpe)
	}
	if m.Sortino != 0 {
		t.Fatalf("no downside periods, sortino should be 0, got %.6f", m.Sortino)
	}
	if m.MaxDrawdown != 0 || m.Calmar != 0 {
		t.Fatalf("monotone curve should have zero drawdown and calmar")
	}
}

func TestComputeDrawdownAndCalmar(t *testing.T) {
	m := Compute([]float64{100, 120, 90, 100}, nil)
	if math.Abs(m.MaxDrawdown-0.25) > 1e-12 {
		t.Fatalf("max drawdown: got %.6f want 0.25", m.MaxDrawdown)
	}
	if m.Calmar != m.AnnualizedReturn/0.25 {
		t.Fatalf("calmar should be annualized return over drawdown")
	}
	if m.Sharpe == 0 {
		t.Fatalf("varying returns should produce nonzero sharpe")
	}
	if m.Sortino == 0 {
		t.Fatalf("a losing period should produce nonzero sortino")
	}
}

func TestComputeWinRate(t *testing.T) {
	trades := []strategy.Trade{
		{EntryPrice: 100, ExitPrice: 105, Quantity: 1}, // win
		{EntryPrice: 100, ExitPrice: 95, Quantity: 1},  // loss
		{EntryPrice: 100, ExitPrice: 95, Quantity: -2}, // short win
		{EntryPrice: 100, ExitPrice: 100, Quantity: 1}, // flat, not a win
	}
	m := Compute([]float64{100, 101}, trades)
	if m.TotalTrades != 4 || m.WinningTrades != 2 {
		t.Fatalf("expected 2 wins of 4, got %d of %d", m.WinningTrades, m.TotalTrades)
	}
	if m.WinRate != 0.5 {
		t.Fatalf("win rate: got %.4f want 0.5", m.WinRate)
	}
}

func TestSharpeRatioGuards(t *testing.T) {
	if sharpeRatio(nil) != 0 {
		t.Fatalf("nil curve should be zero")
	}
	if sharpeRatio([]float64{100}) != 0 {
		t.Fatalf("single point should be zero")
	}
	if sharpeRatio([]float64{100, 100, 100}) != 0 {
		t.Fatalf("zero-variance returns should be zero")
	}
}

func TestMaxDrawdownBounds(t *testing.T) {
	curves := [][]float64{
		{100, 120, 90, 100},
		{50, 40, 60, 30},
		{10, 10, 10},
	}
	for i, c := range curves {
		dd := maxDrawdown(c)
		if dd < 0 || dd > 1 {
			t.Fatalf("curve %d drawdown out of [0,1]: %.6f", i, dd)
		}
	}
}

func TestMaxDrawdownZeroPeakGuard(t *testing.T) {
	// A curve starting at zero must not divide by the zero peak.
	dd := maxDrawdown([]float64{0, 10, 5})
	if math.IsNaN(dd) || math.IsInf(dd, 0) {
		t.Fatalf("zero peak not guarded: %.6f", dd)
	}
	if math.Abs(dd-0.5) > 1e-12 {
		t.Fatalf("expected drawdown 0.5 from the later peak, got %.6f", dd)
	}
}
