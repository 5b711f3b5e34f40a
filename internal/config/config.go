// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/execution"
	"github.com/Harsha-bonthu/HFT-Backtester/internal/risk"
)

// App captures process-wide runtime settings such as name, metrics, and logging levels.
type App struct {
	Name        string `yaml:"name"`
	MetricsAddr string `yaml:"metrics_addr"`
	LogLevel    string `yaml:"log_level"`
}

// Data selects the bar source: a CSV file or the synthetic generator.
type Data struct {
	Source     string `yaml:"source"` // "synthetic" (default) or "csv"
	Path       string `yaml:"path"`
	Bars       int    `yaml:"bars"`
	StartTs    int64  `yaml:"start_ts"`
	IntervalMs int64  `yaml:"interval_ms"`
}

// Asset names one instrument and its synthetic walk parameters.
type Asset struct {
	Name       string  `yaml:"name"`
	StartPrice float64 `yaml:"start_price"`
	Drift      float64 `yaml:"drift"`
	Vol        float64 `yaml:"vol"`
	Seed       int64   `yaml:"seed"`
}

// Params groups the tunable knobs shared by the strategy constructors.
type Params struct {
	Lookback  int     `yaml:"lookback"`
	Qty       int     `yaml:"qty"`
	Threshold float64 `yaml:"threshold"`
}

// Strategy specifies which strategy is active along with the parameter bundle.
type Strategy struct {
	Mode   string `yaml:"mode"`
	Params Params `yaml:"params"`
}

// Backtest carries engine-level settings.
type Backtest struct {
	InitialCash float64 `yaml:"initial_cash"`
	VolLookback int     `yaml:"vol_lookback"`
}

// Report configures where result files land.
type Report struct {
	Dir         string `yaml:"dir"`
	Base        string `yaml:"base"`
	TradesJSONL string `yaml:"trades_jsonl"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App      App                 `yaml:"app"`
	Data     Data                `yaml:"data"`
	Assets   []Asset             `yaml:"assets"`
	Cost     execution.CostModel `yaml:"cost"`
	Book     execution.OrderBook `yaml:"book"`
	Risk     risk.Control        `yaml:"risk"`
	Strategy Strategy            `yaml:"strategy"`
	Backtest Backtest            `yaml:"backtest"`
	Report   Report              `yaml:"report"`
}

// Load reads a YAML file from disk, hydrates a Config struct, and validates it.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate rejects configurations the engine cannot run.
func (c *Config) Validate() error {
	switch c.Data.Source {
	case "", "synthetic":
	case "csv":
		if c.Data.Path == "" {
			return fmt.Errorf("data.path required for csv source")
		}
	default:
		return fmt.Errorf("unknown data source %q", c.Data.Source)
	}
	if c.Backtest.InitialCash < 0 {
		return fmt.Errorf("backtest.initial_cash must be non-negative")
	}
	if err := c.Risk.Validate(); err != nil {
		return fmt.Errorf("risk: %w", err)
	}
	return nil
}
