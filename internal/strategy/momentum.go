package strategy

import "github.com/Harsha-bonthu/HFT-Backtester/internal/market"

// Momentum goes long when the trailing lookback return is positive and short
// when it is negative, topping the position up to the target size each flip.
type Momentum struct {
	lookback int
	qty      int
	prices   []float64
}

// NewMomentum builds a momentum strategy with sane defaults for bad inputs.
func NewMomentum(lookback, qty int) *Momentum {
	if lookback <= 0 {
		lookback = 20
	}
	if qty <= 0 {
		qty = 1
	}
	return &Momentum{lookback: lookback, qty: qty}
}

// Name returns the identifier used in logs and reports.
func (m *Momentum) Name() string { return "Momentum" }

// OnBar evaluates the lookback return and flips the book toward its sign.
func (m *Momentum) OnBar(bar market.Bar, ctx *Context) []Trade {
	m.prices = append(m.prices, bar.Close)
	if len(m.prices) > m.lookback {
		m.prices = m.prices[1:]
	}
	if len(m.prices) < m.lookback {
		return nil
	}

	ret := (m.prices[len(m.prices)-1] - m.prices[0]) / m.prices[0]
	switch {
	case ret > 0 && ctx.Position <= 0:
		buy := m.qty - max(0, ctx.Position)
		if buy > 0 {
			ctx.Cash -= float64(buy) * bar.Close
			ctx.Position += buy
			return []Trade{{EntryTs: bar.Ts, EntryPrice: bar.Close, ExitTs: bar.Ts, ExitPrice: bar.Close, Quantity: buy}}
		}
	case ret < 0 && ctx.Position >= 0:
		sell := m.qty + min(0, ctx.Position)
		if sell > 0 {
			ctx.Cash += float64(sell) * bar.Close
			ctx.Position -= sell
			return []Trade{{EntryTs: bar.Ts, EntryPrice: bar.Close, ExitTs: bar.Ts, ExitPrice: bar.Close, Quantity: -sell}}
		}
	}
	return nil
}
