package execution

import "math"

// impactNormalizer is a fixed quantity normalization constant, independent of
// the bar's realized volume.
const impactNormalizer = 100000.0

// OrderBook is a stateless microstructure fill model: a configured bid/ask
// spread plus market impact linear in order size. Buys always fill at or
// above the reference price, sells at or below.
type OrderBook struct {
	MidPrice     float64 `yaml:"mid_price"`
	BidSpreadBps float64 `yaml:"bid_spread_bps"`
	AskSpreadBps float64 `yaml:"ask_spread_bps"`
	ImpactCoeff  float64 `yaml:"impact_coeff"`
}

// FillPrice returns the executed price for qty units against refPrice.
func (b OrderBook) FillPrice(refPrice float64, qty int, isBuy bool) float64 {
	spread := b.BidSpreadBps
	if isBuy {
		spread = b.AskSpreadBps
	}
	slip := spread/10000.0 + b.ImpactCoeff*math.Abs(float64(qty))/impactNormalizer
	if isBuy {
		return refPrice * (1.0 + slip)
	}
	return refPrice * (1.0 - slip)
}
