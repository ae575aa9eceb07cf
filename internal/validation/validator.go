package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns the configured validator shared by the order routes.
// Field-level tags on SubmitOrderRequest express the whole contract;
// everything else (date parsing into a time.Time, defaulting) happens in
// the normalizer.
func New() *validatorv10.Validate {
	return validatorv10.New()
}
