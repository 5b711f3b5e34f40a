package report

import (
	"sync"

	"github.com/Harsha-bonthu/HFT-Backtester/internal/strategy"
)

// TradeLog stores recorded fills in memory for quick inspection.
type TradeLog struct {
	mu     sync.Mutex
	trades []strategy.Trade
}

// NewTradeLog creates an empty log, optionally pre-sizing storage.
func NewTradeLog(capacity int) *TradeLog {
	if capacity < 0 {
		capacity = 0
	}
	return &TradeLog{trades: make([]strategy.Trade, 0, capacity)}
}

// Record appends a trade to the log.
func (l *TradeLog) Record(tr strategy.Trade) {
	l.mu.Lock()
	l.trades = append(l.trades, tr)
	l.mu.Unlock()
}

// Snapshot returns a copy of the recorded trades.
func (l *TradeLog) Snapshot() []strategy.Trade {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]strategy.Trade, len(l.trades))
	copy(out, l.trades)
	return out
}

// Reset clears all stored trades.
func (l *TradeLog) Reset() {
	l.mu.Lock()
	l.trades = l.trades[:0]
	l.mu.Unlock()
}
