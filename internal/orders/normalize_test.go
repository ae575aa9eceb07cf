package orders

import (
	"testing"
	"time"

	"github.com/dabirisdesserts/order-intake/internal/validation"
)

func minimalRequest() validation.SubmitOrderRequest {
	return validation.SubmitOrderRequest{
		FirstName:  "Ava",
		LastName:   "Lee",
		Email:      "a@x.com",
		Phone:      "555-1111",
		PickupDate: "2025-06-01",
	}
}

func TestNormalize_Minimal(t *testing.T) {
	o, err := Normalize(minimalRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.CustomerName != "Ava Lee" {
		t.Fatalf("expected customer name %q, got %q", "Ava Lee", o.CustomerName)
	}
	if o.Status != StatusSubmitted {
		t.Fatalf("expected status %q, got %q", StatusSubmitted, o.Status)
	}
	want := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	if !o.PickupDate.Equal(want) {
		t.Fatalf("expected pickup date %v, got %v", want, o.PickupDate)
	}
}

// Every annotation on a submission that omitted them all must come out as
// an empty string, never a missing value.
func TestNormalize_AnnotationDefaults(t *testing.T) {
	o, err := Normalize(minimalRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.Annotations != (Annotations{}) {
		t.Fatalf("expected all annotations empty, got %+v", o.Annotations)
	}
}

func TestNormalize_AbsentLineItems(t *testing.T) {
	o, err := Normalize(minimalRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.LineItems == nil {
		t.Fatal("expected empty line item slice, got nil")
	}
	if len(o.LineItems) != 0 {
		t.Fatalf("expected no line items, got %d", len(o.LineItems))
	}
}

func TestNormalize_LineItemsCarriedInOrder(t *testing.T) {
	req := minimalRequest()
	req.LineItems = []validation.LineItem{
		{Name: "6in cake", Price: 45, Quantity: 1},
		{Name: "cookies", Price: 12, Quantity: 0},
	}

	o, err := Normalize(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(o.LineItems) != 2 {
		t.Fatalf("expected both rows carried (zero-quantity included), got %d", len(o.LineItems))
	}
	if o.LineItems[0].Name != "6in cake" || o.LineItems[1].Name != "cookies" {
		t.Fatalf("line item order not preserved: %+v", o.LineItems)
	}
}

func TestNormalize_BadPickupDate(t *testing.T) {
	req := minimalRequest()
	req.PickupDate = "June 1st"

	if _, err := Normalize(req); err == nil {
		t.Fatal("expected error for unparseable pickup date, got nil")
	}
}
