package main

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/joho/godotenv"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/backtest"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/config"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/market"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/strategy"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/util"
)

type variant struct {
	mode   string
	params strategy.Params
}

type outcome struct {
	name    string
	result  backtest.Result
	metrics backtest.Metrics
}

func (v variant) label() string {
	return fmt.Sprintf("%s_lb%d_q%d_t%.3f", v.mode, v.params.Lookback, v.params.Qty, v.params.Threshold)
}

func main() {
	_ = godotenv.Load()

	cfgPath := getEnv("BACKTEST_CONFIG", "configs/backtest.yaml")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := util.NewLogger(cfg.App.LogLevel)

	bars := market.RandomWalk(market.WalkParams{
		Bars:       cfg.Data.Bars,
		StartTs:    cfg.Data.StartTs,
		IntervalMs: cfg.Data.IntervalMs,
	})
	if cfg.Data.Source == "csv" {
		bars, err = market.LoadCSV(cfg.Data.Path)
		if err != nil {
			log.Fatal().Err(err).Msg("load bars")
		}
	}

	variants := buildGrid()
	log.Info().Int("variants", len(variants)).Int("bars", len(bars)).Msg("sweep started")

	jobs := make(chan variant, len(variants))
	out := make(chan outcome, len(variants))
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range jobs {
				// Each run builds its own engine and strategy; nothing is shared.
				engine, err := backtest.New(cfg.Cost, cfg.Book, cfg.Risk)
				if err != nil {
					log.Error().Err(err).Str("variant", v.label()).Msg("build engine")
					continue
				}
				res := engine.Run(v.label(), bars, strategy.Build(v.mode, v.params))
				out <- outcome{name: v.label(), result: res, metrics: backtest.Compute(res.EquityCurve, res.Trades)}
			}
		}()
	}
	for _, v := range variants {
		jobs <- v
	}
	close(jobs)
	wg.Wait()
	close(out)

	outcomes := make([]outcome, 0, len(variants))
	for o := range out {
		outcomes = append(outcomes, o)
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].result.Sharpe > outcomes[j].result.Sharpe })

	fmt.Printf("%-32s %10s %10s %10s %12s %8s\n", "variant", "sharpe", "sortino", "max_dd", "final_eq", "trades")
	for _, o := range outcomes {
		fmt.Printf("%-32s %10.4f %10.4f %10.6f %12.2f %8d\n",
			o.name, o.result.Sharpe, o.metrics.Sortino, o.result.MaxDrawdown, o.result.FinalEquity, o.result.TradeCount)
	}
	log.Info().Int("completed", len(outcomes)).Msg("sweep complete")
}

func buildGrid() []variant {
	var grid []variant
	for _, lb := range []int{10, 20, 30, 50} {
		for _, qty := range []int{1, 5} {
			grid = append(grid, variant{mode: "momentum", params: strategy.Params{Lookback: lb, Qty: qty}})
		}
		for _, thr := range []float64{0.004, 0.01, 0.02} {
			grid = append(grid, variant{mode: "mean_reversion", params: strategy.Params{Lookback: lb, Qty: 3, Threshold: thr}})
		}
	}
	return grid
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
