package validation

import "testing"

func validRequest() SubmitOrderRequest {
	return SubmitOrderRequest{
		FirstName:  "Ava",
		LastName:   "Lee",
		Email:      "a@x.com",
		Phone:      "555-1111",
		PickupDate: "2025-06-01",
		LineItems: []LineItem{
			{Name: "6in cake", Price: 45, Quantity: 1},
		},
	}
}

func TestSubmitOrderRequest_Valid(t *testing.T) {
	v := New()

	if err := v.Struct(validRequest()); err != nil {
		t.Fatalf("expected valid, got error: %v", err)
	}
}

func TestSubmitOrderRequest_MissingRequired(t *testing.T) {
	v := New()

	for _, tc := range []struct {
		name   string
		mutate func(*SubmitOrderRequest)
	}{
		{"first_name", func(r *SubmitOrderRequest) { r.FirstName = "" }},
		{"last_name", func(r *SubmitOrderRequest) { r.LastName = "" }},
		{"email", func(r *SubmitOrderRequest) { r.Email = "" }},
		{"phone", func(r *SubmitOrderRequest) { r.Phone = "" }},
		{"pickup_date", func(r *SubmitOrderRequest) { r.PickupDate = "" }},
	} {
		req := validRequest()
		tc.mutate(&req)
		if err := v.Struct(req); err == nil {
			t.Fatalf("%s: expected validation error, got nil", tc.name)
		}
	}
}

func TestSubmitOrderRequest_BadEmail(t *testing.T) {
	v := New()

	req := validRequest()
	req.Email = "not-an-email"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for malformed email, got nil")
	}
}

func TestSubmitOrderRequest_BadDateFormat(t *testing.T) {
	v := New()

	req := validRequest()
	req.PickupDate = "06/01/2025"
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for non ISO date, got nil")
	}
}

func TestSubmitOrderRequest_ZeroQuantityAllowed(t *testing.T) {
	v := New()

	req := validRequest()
	req.LineItems = append(req.LineItems, LineItem{Name: "cookies", Price: 12, Quantity: 0})
	if err := v.Struct(req); err != nil {
		t.Fatalf("zero quantity rows are legal, got error: %v", err)
	}
}

func TestSubmitOrderRequest_NegativePriceRejected(t *testing.T) {
	v := New()

	req := validRequest()
	req.LineItems[0].Price = -1
	if err := v.Struct(req); err == nil {
		t.Fatal("expected validation error for negative unit price, got nil")
	}
}

func TestSubmitOrderRequest_NoItemsAllowed(t *testing.T) {
	v := New()

	req := validRequest()
	req.LineItems = nil
	if err := v.Struct(req); err != nil {
		t.Fatalf("an order without products is legal, got error: %v", err)
	}
}
