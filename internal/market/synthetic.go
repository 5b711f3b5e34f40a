package market

import (
	"math"
	"math/rand"
)

// WalkParams configures the synthetic random-walk generator.
type WalkParams struct {
	Bars       int
	StartPrice float64
	Drift      float64
	Vol        float64
	StartTs    int64
	IntervalMs int64
	Seed       int64
}

const (
	defaultStartPrice = 100.0
	defaultDrift      = 0.0002
	defaultVol        = 0.005
	defaultStartTs    = 1731321600000
	defaultIntervalMs = 60000
	defaultSeed       = 42
)

// RandomWalk generates n bars of a gaussian random walk. Output is fully
// deterministic for a given parameter set; high/low bracket open/close by 0.1%.
func RandomWalk(p WalkParams) []Bar {
	if p.StartPrice <= 0 {
		p.StartPrice = defaultStartPrice
	}
	if p.Drift == 0 {
		p.Drift = defaultDrift
	}
	if p.Vol <= 0 {
		p.Vol = defaultVol
	}
	if p.StartTs <= 0 {
		p.StartTs = defaultStartTs
	}
	if p.IntervalMs <= 0 {
		p.IntervalMs = defaultIntervalMs
	}
	if p.Seed == 0 {
		p.Seed = defaultSeed
	}

	rng := rand.New(rand.NewSource(p.Seed))
	bars := make([]Bar, 0, p.Bars)
	price := p.StartPrice
	for i := 0; i < p.Bars; i++ {
		z := rng.NormFloat64()
		ret := p.Drift + p.Vol*z
		close := price * (1.0 + ret)
		high := math.Max(price, close) * 1.001
		low := math.Min(price, close) * 0.999
		volume := 10000 + 1000*math.Abs(rng.NormFloat64())
		bars = append(bars, Bar{
			Ts:     p.StartTs + int64(i)*p.IntervalMs,
			Open:   price,
			High:   high,
			Low:    low,
			Close:  close,
			Volume: volume,
		})
		price = close
	}
	return bars
}
