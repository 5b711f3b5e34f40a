// Package backtest replays bar sequences through a strategy and produces the
// simulated account trajectory and summary statistics.
package backtest

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/execution"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/market"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/metrics"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/risk"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/strategy"
)

const (
	defaultInitialCash = 100000.0
	defaultVolLookback = 20
)

// TradeRecorder captures recorded fills for later inspection.
type TradeRecorder interface {
	Record(strategy.Trade)
}

// Result is the complete output of one run. Once returned it is read-only;
// EquityCurve and PnLSeries always hold one entry per processed bar.
type Result struct {
	Asset       string
	Trades      []strategy.Trade
	EquityCurve []float64
	PnLSeries   []float64
	Sharpe      float64
	MaxDrawdown float64
	FinalEquity float64
	TradeCount  int
}

// Engine composes the cost model, fill model, and risk limits into the
// per-bar execution procedure. An Engine holds no run state and may be reused
// across sequential runs; concurrent runs should each construct their own.
type Engine struct {
	costs       execution.CostModel
	book        execution.OrderBook
	limits      risk.Control
	initialCash float64
	volLookback int
	recorder    TradeRecorder
	log         zerolog.Logger
}

// Option configures Engine construction.
type Option func(*Engine)

// WithInitialCash overrides the starting bankroll.
func WithInitialCash(cash float64) Option {
	return func(e *Engine) { e.initialCash = cash }
}

// WithVolLookback overrides the rolling volatility window.
func WithVolLookback(lookback int) Option {
	return func(e *Engine) {
		if lookback > 0 {
			e.volLookback = lookback
		}
	}
}

// WithRecorder streams every recorded fill to the supplied recorder.
func WithRecorder(r TradeRecorder) Option {
	return func(e *Engine) { e.recorder = r }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New validates the risk limits and builds an engine.
func New(costs execution.CostModel, book execution.OrderBook, limits risk.Control, opts ...Option) (*Engine, error) {
	if err := limits.Validate(); err != nil {
		return nil, fmt.Errorf("risk limits: %w", err)
	}
	e := &Engine{
		costs:       costs,
		book:        book,
		limits:      limits,
		initialCash: defaultInitialCash,
		volLookback: defaultVolLookback,
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.initialCash <= 0 {
		return nil, fmt.Errorf("initial cash must be positive, got %.2f", e.initialCash)
	}
	return e, nil
}

// Run replays bars in order through strat and returns the completed result.
//
// Contract: the strategy books its own provisional fill at the bar close
// (mutating ctx) and emits the matching trade; Run then applies the realized
// fill price and transaction cost on top, so the account carries both
// adjustments. Intents that would breach the position limit are discarded
// without touching the account. A breach of the daily loss limit flattens the
// position at mark-to-market and restarts the intraday accumulator.
func (e *Engine) Run(asset string, bars []market.Bar, strat strategy.Strategy) Result {
	res := Result{
		Asset:       asset,
		Trades:      []strategy.Trade{},
		EquityCurve: make([]float64, 0, len(bars)),
		PnLSeries:   make([]float64, 0, len(bars)),
	}
	ctx := &strategy.Context{Cash: e.initialCash}
	prices := make([]float64, 0, len(bars))
	var dailyPnL float64

	for _, b := range bars {
		prices = append(prices, b.Close)

		vol := risk.Volatility(prices, e.volLookback)
		metrics.Volatility.WithLabelValues(asset).Set(vol)

		for _, tr := range strat.OnBar(b, ctx) {
			if math.Abs(float64(ctx.Position+tr.Quantity)) > e.limits.MaxPosition {
				metrics.RejectsTotal.WithLabelValues(asset).Inc()
				e.log.Debug().Str("asset", asset).Int("qty", tr.Quantity).Int("position", ctx.Position).Msg("intent rejected by position limit")
				continue
			}

			isBuy := tr.Quantity > 0
			fill := e.book.FillPrice(b.Close, tr.Quantity, isBuy)
			cost := e.costs.Cost(fill, tr.Quantity)

			ctx.Cash -= float64(tr.Quantity)*fill + cost
			ctx.Position += tr.Quantity

			tr.EntryPrice = fill
			res.Trades = append(res.Trades, tr)
			if e.recorder != nil {
				e.recorder.Record(tr)
			}
			metrics.FillsTotal.WithLabelValues(asset, string(execution.SideOf(tr.Quantity))).Inc()
		}

		mtm := ctx.Cash + float64(ctx.Position)*b.Close
		prevClose := b.Close
		if len(prices) > 1 {
			prevClose = prices[len(prices)-2]
		}
		unrealized := float64(ctx.Position) * (b.Close - prevClose)
		dailyPnL += unrealized

		if dailyPnL < -e.limits.MaxDailyLoss {
			e.log.Info().Str("asset", asset).Float64("daily_pnl", dailyPnL).Float64("equity", mtm).Msg("daily loss breached, flattening")
			ctx.Position = 0
			ctx.Cash = mtm
			dailyPnL = 0
			metrics.LiquidationsTotal.WithLabelValues(asset).Inc()
		}

		res.EquityCurve = append(res.EquityCurve, mtm)
		res.PnLSeries = append(res.PnLSeries, unrealized)
		metrics.BarsTotal.WithLabelValues(asset).Inc()
	}

	res.TradeCount = len(res.Trades)
	if len(res.EquityCurve) > 0 {
		res.FinalEquity = res.EquityCurve[len(res.EquityCurve)-1]
	} else {
		res.FinalEquity = ctx.Cash
	}
	res.Sharpe = sharpeRatio(res.EquityCurve)
	res.MaxDrawdown = maxDrawdown(res.EquityCurve)

	e.log.Info().
		Str("asset", asset).
		Str("strategy", strat.Name()).
		Int("bars", len(bars)).
		Int("trades", res.TradeCount).
		Float64("final_equity", res.FinalEquity).
		Float64("sharpe", res.Sharpe).
		Float64("max_dd", res.MaxDrawdown).
		Msg("run complete")
	return res
}
