// Package risk holds the limit configuration consumed by the engine along
// with rolling-volatility helpers.
package risk

import (
	"errors"
	"math"
)

const (
	volFloor      = 0.01
	annualization = 252.0
	targetVol     = 0.20
	maxVolScale   = 2.0
)

// Control is the static limit configuration for one run. StopLossPct,
// TakeProfitPct, and UseVolScaling are declared but not applied by the engine
// loop; they are carried for strategies and future per-trade exits.
type Control struct {
	MaxPosition   float64 `yaml:"max_position"`
	StopLossPct   float64 `yaml:"stop_loss_pct"`
	TakeProfitPct float64 `yaml:"take_profit_pct"`
	MaxDailyLoss  float64 `yaml:"max_daily_loss"`
	UseVolScaling bool    `yaml:"use_vol_scaling"`
}

// Validate rejects configurations that cannot express a meaningful limit.
func (c Control) Validate() error {
	if c.MaxPosition < 0 {
		return errors.New("max_position must be non-negative")
	}
	if c.MaxDailyLoss < 0 {
		return errors.New("max_daily_loss must be non-negative")
	}
	if c.StopLossPct < 0 || c.TakeProfitPct < 0 {
		return errors.New("stop/take-profit percentages must be non-negative")
	}
	return nil
}

// Volatility computes annualized volatility over the trailing lookback window
// of prices: population stddev of simple returns scaled by √252. With fewer
// than lookback prices it returns a fixed floor instead of failing.
func Volatility(prices []float64, lookback int) float64 {
	if len(prices) < lookback {
		return volFloor
	}

	rets := make([]float64, 0, lookback)
	for i := len(prices) - lookback; i < len(prices); i++ {
		if i == 0 {
			continue
		}
		rets = append(rets, (prices[i]-prices[i-1])/prices[i-1])
	}
	if len(rets) == 0 {
		return volFloor
	}

	var mean float64
	for _, r := range rets {
		mean += r
	}
	mean /= float64(len(rets))

	var variance float64
	for _, r := range rets {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(rets))

	return math.Sqrt(variance) * math.Sqrt(annualization)
}

// ScaleByVol sizes a base quantity inversely to volatility, targeting 20%
// annualized vol and never returning more than 2x the base. Truncates toward
// zero.
func ScaleByVol(baseQty int, vol float64) int {
	if vol < volFloor {
		vol = volFloor
	}
	scale := targetVol / vol
	if scale > maxVolScale {
		scale = maxVolScale
	}
	return int(float64(baseQty) * scale)
}
