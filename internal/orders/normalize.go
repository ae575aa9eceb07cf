package orders

import (
	"fmt"
	"time"

	"github.com/dabirisdesserts/order-intake/internal/validation"
)

// PickupDateLayout is the wire format of pickup and order dates.
const PickupDateLayout = "2006-01-02"

// Normalize reshapes a bound form submission into the canonical order
// fields. The order ID, total price and submission time are filled in by
// the workflow afterwards. Normalization is synchronous and side-effect
// free: an absent line-item list becomes an empty slice and every
// annotation field is carried as a plain string, so no downstream
// consumer ever needs a nil check.
func Normalize(req validation.SubmitOrderRequest) (Order, error) {
	pickup, err := time.Parse(PickupDateLayout, req.PickupDate)
	if err != nil {
		return Order{}, fmt.Errorf("parse pickup date %q: %w", req.PickupDate, err)
	}

	items := make([]LineItem, 0, len(req.LineItems))
	for _, it := range req.LineItems {
		items = append(items, LineItem{
			Name:      it.Name,
			UnitPrice: it.Price,
			Quantity:  it.Quantity,
		})
	}

	return Order{
		CustomerName: req.FirstName + " " + req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		PickupDate:   pickup,
		LineItems:    items,
		Annotations: Annotations{
			SpecialInstructions: req.SpecialInstructions,
			DesignRequests:      req.DesignRequests,
			CakeText:            req.CakeText,
			ColorRequests:       req.ColorRequests,
			CustomFlavor:        req.CustomFlavor,
			AdditionalSpecs:     req.AdditionalSpecs,
			Allergies:           req.Allergies,
			HowDidYouHear:       req.HowDidYouHear,
		},
		Status: StatusSubmitted,
	}, nil
}
