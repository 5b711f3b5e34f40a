package execution

import "math"

// CostModel charges a fixed commission per unit plus slippage in basis points
// of the traded price. Stateless; safe to share across runs.
type CostModel struct {
	CommissionPerUnit float64 `yaml:"commission_per_unit"`
	SlippageBps       float64 `yaml:"slippage_bps"`
}

// Cost returns the total transaction cost for trading qty units at price.
func (c CostModel) Cost(price float64, qty int) float64 {
	units := math.Abs(float64(qty))
	commission := c.CommissionPerUnit * units
	slippage := (c.SlippageBps / 10000.0) * price * units
	return commission + slippage
}
