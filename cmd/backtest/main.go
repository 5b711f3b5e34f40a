package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/backtest"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/config"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/market"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/metrics"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/report"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/strategy"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/util"
)

func main() {
	_ = godotenv.Load()

	cfgPath := getEnv("BACKTEST_CONFIG", "configs/backtest.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := util.NewLogger(cfg.App.LogLevel)
	if addr := getEnv("METRICS_ADDR", cfg.App.MetricsAddr); addr != "" {
		_ = metrics.Serve(addr)
		log.Info().Str("addr", addr).Msg("metrics up")
	}

	var recorder backtest.TradeRecorder
	if cfg.Report.TradesJSONL != "" {
		jsonl, err := report.NewJSONLRecorder(cfg.Report.TradesJSONL)
		if err != nil {
			log.Fatal().Err(err).Msg("open trade recorder")
		}
		defer jsonl.Close()
		recorder = jsonl
	}

	opts := []backtest.Option{backtest.WithLogger(log)}
	if cfg.Backtest.InitialCash > 0 {
		opts = append(opts, backtest.WithInitialCash(cfg.Backtest.InitialCash))
	}
	if cfg.Backtest.VolLookback > 0 {
		opts = append(opts, backtest.WithVolLookback(cfg.Backtest.VolLookback))
	}
	if recorder != nil {
		opts = append(opts, backtest.WithRecorder(recorder))
	}

	engine, err := backtest.New(cfg.Cost, cfg.Book, cfg.Risk, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("build engine")
	}

	assets := cfg.Assets
	if len(assets) == 0 {
		assets = []config.Asset{{Name: "SYN"}}
	}

	// One run per asset; runs share nothing mutable, so they fan out freely.
	results := make([]backtest.Result, len(assets))
	var wg sync.WaitGroup
	for i, asset := range assets {
		wg.Add(1)
		go func(i int, asset config.Asset) {
			defer wg.Done()
			bars, err := loadBars(cfg, asset)
			if err != nil {
				log.Error().Err(err).Str("asset", asset.Name).Msg("load bars")
				return
			}
			params := strategy.Params{
				Lookback:  cfg.Strategy.Params.Lookback,
				Qty:       cfg.Strategy.Params.Qty,
				Threshold: cfg.Strategy.Params.Threshold,
			}
			results[i] = engine.Run(asset.Name, bars, strategy.Build(cfg.Strategy.Mode, params))
		}(i, asset)
	}
	wg.Wait()

	for _, res := range results {
		m := backtest.Compute(res.EquityCurve, res.Trades)
		log.Info().
			Str("asset", res.Asset).
			Float64("sharpe", res.Sharpe).
			Float64("sortino", m.Sortino).
			Float64("max_dd", res.MaxDrawdown).
			Float64("calmar", m.Calmar).
			Float64("final_equity", res.FinalEquity).
			Float64("win_rate", m.WinRate).
			Int("trades", res.TradeCount).
			Msg("asset summary")
	}

	if cfg.Report.Dir != "" {
		if err := writeReports(cfg, results); err != nil {
			log.Fatal().Err(err).Msg("write reports")
		}
		log.Info().Str("dir", cfg.Report.Dir).Msg("reports written")
	}
}

func loadBars(cfg *config.Config, asset config.Asset) ([]market.Bar, error) {
	if cfg.Data.Source == "csv" {
		return market.LoadCSV(cfg.Data.Path)
	}
	bars := cfg.Data.Bars
	if bars <= 0 {
		bars = 1000
	}
	return market.RandomWalk(market.WalkParams{
		Bars:       bars,
		StartPrice: asset.StartPrice,
		Drift:      asset.Drift,
		Vol:        asset.Vol,
		StartTs:    cfg.Data.StartTs,
		IntervalMs: cfg.Data.IntervalMs,
		Seed:       asset.Seed,
	}), nil
}

func writeReports(cfg *config.Config, results []backtest.Result) error {
	if err := os.MkdirAll(cfg.Report.Dir, 0o755); err != nil {
		return err
	}
	base := cfg.Report.Base
	if base == "" {
		base = "results"
	}
	initialCash := cfg.Backtest.InitialCash
	if initialCash <= 0 {
		initialCash = 100000
	}
	prefix := filepath.Join(cfg.Report.Dir, base)
	if err := report.WriteSummaryCSV(prefix+"_summary.csv", results, initialCash); err != nil {
		return err
	}
	if err := report.WriteDetailsCSV(prefix+"_details.csv", results); err != nil {
		return err
	}
	return report.WriteEquityCSV(prefix+"_equity.csv", results)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
