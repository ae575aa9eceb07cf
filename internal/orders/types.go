package orders

import "time"

// Order statuses persisted to the datastore. Submitted is the only status
// this system assigns; later transitions happen outside the intake path.
const (
	StatusSubmitted = "Submitted"
)

// LineItem is a single product row from the order form.
type LineItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Annotations is the closed set of free-text fields the form collects.
// Every field is defaulted to the empty string during normalization so
// downstream consumers never see a missing value.
type Annotations struct {
	SpecialInstructions string
	DesignRequests      string
	CakeText            string
	ColorRequests       string
	CustomFlavor        string
	AdditionalSpecs     string
	Allergies           string
	HowDidYouHear       string
}

// Order is the canonical, server-trusted record of one submission. It is
// built exactly once by the workflow, after normalization and pricing
// succeed, and is never mutated afterwards. TotalPrice is always computed
// server-side; a total claimed by the client is never trusted.
type Order struct {
	OrderID      string
	CustomerName string
	Email        string
	Phone        string
	PickupDate   time.Time
	LineItems    []LineItem
	Annotations  Annotations
	TotalPrice   float64
	Status       string
	SubmittedAt  time.Time // persisted with date-only precision
}
