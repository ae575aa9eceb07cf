package pricing

import (
	"math"
	"time"

	"github.com/dabirisdesserts/order-intake/internal/orders"
)

const (
	// RushFee is the flat surcharge applied when pickup is requested with
	// fewer than RushThresholdDays days of notice.
	RushFee = 20.0
	// RushThresholdDays is exclusive: exactly ten days of notice is not a
	// rush order.
	RushThresholdDays = 10
)

// ComputeTotal prices an order: unit price times quantity over every item
// with a positive quantity, plus the rush fee when the pickup date is less
// than RushThresholdDays away. Items with a non-positive quantity
// contribute nothing and are not an error. The clock is a parameter so
// the function stays pure and deterministic under test.
func ComputeTotal(items []orders.LineItem, pickupDate, now time.Time) float64 {
	var total float64
	for _, it := range items {
		if it.Quantity > 0 {
			total += it.UnitPrice * float64(it.Quantity)
		}
	}

	if DaysUntilPickup(pickupDate, now) < RushThresholdDays {
		total += RushFee
	}
	return total
}

// DaysUntilPickup reports the days of notice between now and the pickup
// date, rounded up.
func DaysUntilPickup(pickupDate, now time.Time) int {
	return int(math.Ceil(pickupDate.Sub(now).Hours() / 24))
}
