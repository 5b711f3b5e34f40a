package strategy

import "github.com/Harsha-bonthu/HFT-Backtester/internal/market"

// MeanReversion fades deviations from a rolling mean: shorts when price sits
// above the mean by more than the threshold, buys when below, capped at ±qty.
type MeanReversion struct {
	lookback  int
	threshold float64
	qty       int
	prices    []float64
}

// NewMeanReversion builds a mean-reversion strategy with defaulted knobs.
func NewMeanReversion(lookback int, threshold float64, qty int) *MeanReversion {
	if lookback <= 0 {
		lookback = 20
	}
	if threshold <= 0 {
		threshold = 0.01
	}
	if qty <= 0 {
		qty = 1
	}
	return &MeanReversion{lookback: lookback, threshold: threshold, qty: qty}
}

// Name returns the identifier used in logs and reports.
func (m *MeanReversion) Name() string { return "MeanReversion" }

// OnBar compares the close to the rolling mean and trades against the gap.
func (m *MeanReversion) OnBar(bar market.Bar, ctx *Context) []Trade {
	m.prices = append(m.prices, bar.Close)
	if len(m.prices) > m.lookback {
		m.prices = m.prices[1:]
	}
	if len(m.prices) < m.lookback {
		return nil
	}

	var sum float64
	for _, p := range m.prices {
		sum += p
	}
	avg := sum / float64(len(m.prices))
	dev := (bar.Close - avg) / avg

	switch {
	case dev > m.threshold && ctx.Position > -m.qty:
		sell := min(m.qty, ctx.Position+m.qty)
		if sell > 0 {
			ctx.Cash += float64(sell) * bar.Close
			ctx.Position -= sell
			return []Trade{{EntryTs: bar.Ts, EntryPrice: bar.Close, ExitTs: bar.Ts, ExitPrice: bar.Close, Quantity: -sell}}
		}
	case dev < -m.threshold && ctx.Position < m.qty:
		buy := min(m.qty, m.qty-ctx.Position)
		if buy > 0 {
			ctx.Cash -= float64(buy) * bar.Close
			ctx.Position += buy
			return []Trade{{EntryTs: bar.Ts, EntryPrice: bar.Close, ExitTs: bar.Ts, ExitPrice: bar.Close, Quantity: buy}}
		}
	}
	return nil
}
