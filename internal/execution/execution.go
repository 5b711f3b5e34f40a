// Package execution prices trade intents: side handling, transaction costs,
// and the spread/impact fill model applied by the engine.
package execution

// Side enumerates trade directions used in records and metric labels.
type Side string

const (
	// Buy indicates a position-increasing order.
	Buy Side = "BUY"
	// Sell indicates a position-decreasing order.
	Sell Side = "SELL"
)

// SideOf maps a signed quantity to its side. Zero counts as a sell.
func SideOf(qty int) Side {
	if qty > 0 {
		return Buy
	}
	return Sell
}
