package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	BarsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "bars_processed_total", Help: "Count of bars replayed through the engine"},
		[]string{"asset"},
	)
	FillsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fills_total", Help: "Trade intents filled"},
		[]string{"asset", "side"},
	)
	RejectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "rejects_total", Help: "Trade intents discarded by risk checks"},
		[]string{"asset"},
	)
	LiquidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "liquidations_total", Help: "Daily-loss breaker force-flattens"},
		[]string{"asset"},
	)
	Volatility = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "rolling_volatility", Help: "Annualized rolling volatility per asset"},
		[]string{"asset"},
	)
)

func init() {
	prometheus.MustRegister(BarsTotal, FillsTotal, RejectsTotal, LiquidationsTotal, Volatility)
}

func Serve(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() { _ = srv.ListenAndServe() }()
	return srv
}
