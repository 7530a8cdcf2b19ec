package order

import "time"

const (
	PerishableHold = 24 * time.Hour
	StandardHold   = 48 * time.Hour
	Currency       = "XAF"
)

const PolicyText = "Orders containing perishable products must be collected within 24 hours. " +
	"Other orders are held for 48 hours. Uncollected orders are cancelled."

// HoldFor is the pickup window for an order.
func HoldFor(anyPerishable bool) time.Duration {
	if anyPerishable {
		return PerishableHold
	}
	return StandardHold
}
