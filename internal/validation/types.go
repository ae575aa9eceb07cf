package validation

// LineItem mirrors one product row of the order form. Quantity zero is
// allowed; such rows are carried through but never priced.
type LineItem struct {
	Name     string  `json:"name" validate:"required"`
	Price    float64 `json:"price" validate:"min=0"`
	Quantity int     `json:"quantity" validate:"min=0"`
}

// SubmitOrderRequest is the payload for POST /submit-order. The free-text
// fields are all optional; normalization defaults them to empty strings.
type SubmitOrderRequest struct {
	FirstName  string     `json:"firstName" validate:"required"`
	LastName   string     `json:"lastName" validate:"required"`
	Email      string     `json:"email" validate:"required,email"`
	Phone      string     `json:"phone" validate:"required"`
	PickupDate string     `json:"pickupDate" validate:"required,datetime=2006-01-02"`
	LineItems  []LineItem `json:"products" validate:"omitempty,dive"`

	SpecialInstructions string `json:"specialInstructions"`
	DesignRequests      string `json:"designRequests"`
	CakeText            string `json:"cakeText"`
	ColorRequests       string `json:"colorRequests"`
	CustomFlavor        string `json:"customFlavor"`
	AdditionalSpecs     string `json:"additionalSpecs"`
	Allergies           string `json:"allergies"`
	HowDidYouHear       string `json:"howDidYouHear"`
}
