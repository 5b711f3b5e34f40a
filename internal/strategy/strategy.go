// Package strategy contains the pluggable decision makers driven bar by bar.
package strategy

import (
	"strings"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/market"
)

// Context is the mutable account state threaded through every bar. Strategies
// book their own provisional fills against it at the bar close; the engine
// then books the realized fill on top of that. One Context belongs to exactly
// one run.
type Context struct {
	Cash     float64
	Position int
}

// Trade is a single executed intent. Strategies emit it with the bar close as
// a provisional EntryPrice; the engine overwrites EntryPrice with the realized
// fill before recording. Quantity is positive for buys, negative for sells.
type Trade struct {
	EntryTs    int64   `json:"entry_ts"`
	EntryPrice float64 `json:"entry_price"`
	ExitTs     int64   `json:"exit_ts"`
	ExitPrice  float64 `json:"exit_price"`
	Quantity   int     `json:"quantity"`
}

// Strategy is the single capability the engine needs from a decision maker.
type Strategy interface {
	Name() string
	OnBar(bar market.Bar, ctx *Context) []Trade
}

// Params groups the tunable knobs required by strategy constructors.
type Params struct {
	Lookback  int
	Qty       int
	Threshold float64
}

// Build returns a strategy implementation matching the configured mode.
func Build(mode string, params Params) Strategy {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "momentum", "mom":
		return NewMomentum(params.Lookback, params.Qty)
	case "meanreversion", "mean_reversion", "mr":
		return NewMeanReversion(params.Lookback, params.Threshold, params.Qty)
	default:
		return NewMomentum(params.Lookback, params.Qty)
	}
}
