package risk

import (
	"math"
	"testing"
)

func TestVolatilityFloorBelowLookback(t *testing.T) {
	prices := []float64{100, 101, 102}
	if vol := Volatility(prices, 20); vol != 0.01 {
		t.Fatalf("expected 0.01 floor, got %.6f", vol)
	}
}

func TestVolatilityConstantPricesIsZero(t *testing.T) {
	prices := make([]float64, 30)
	for i := range prices {
		prices[i] = 50
	}
	if vol := Volatility(prices, 20); vol != 0 {
		t.Fatalf("expected zero vol for flat prices, got %.6f", vol)
	}
}

func TestVolatilityAnnualized(t *testing.T) {
	// Alternating ±1% returns: population stddev of returns is 0.01.
	prices := []float64{100}
	for i := 0; i < 40; i++ {
		last := prices[len(prices)-1]
		if i%2 == 0 {
			prices = append(prices, last*1.01)
		} else {
			prices = append(prices, last*0.99)
		}
	}
	vol := Volatility(prices, 20)
	want := 0.01 * math.Sqrt(252)
	if math.Abs(vol-want) > 1e-3 {
		t.Fatalf("expected ~%.4f, got %.4f", want, vol)
	}
}

func TestScaleByVolCapsAtTwice(t *testing.T) {
	if got := ScaleByVol(10, 0.001); got != 20 {
		t.Fatalf("expected 2x cap, got %d", got)
	}
}

func TestScaleByVolShrinksInHighVol(t *testing.T) {
	if got := ScaleByVol(10, 0.40); got != 5 {
		t.Fatalf("expected 5 at 40%% vol, got %d", got)
	}
	if got := ScaleByVol(10, 0.80); got != 2 {
		t.Fatalf("expected 2 at 80%% vol, got %d", got)
	}
}

func TestScaleByVolTruncatesTowardZero(t *testing.T) {
	// scale = 0.20/0.30 = 0.666..; 10*0.666.. truncates to 6.
	if got := ScaleByVol(10, 0.30); got != 6 {
		t.Fatalf("expected truncation to 6, got %d", got)
	}
}

func TestControlValidate(t *testing.T) {
	ok := Control{MaxPosition: 100, MaxDailyLoss: 2000, StopLossPct: 0.02, TakeProfitPct: 0.05}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid control rejected: %v", err)
	}
	if err := (Control{MaxPosition: -1}).Validate(); err == nil {
		t.Fatalf("expected error for negative max_position")
	}
	if err := (Control{MaxDailyLoss: -5}).Validate(); err == nil {
		t.Fatalf("expected error for negative max_daily_loss")
	}
	if err := (Control{StopLossPct: -0.1}).Validate(); err == nil {
		t.Fatalf("expected error for negative stop_loss_pct")
	}
}
