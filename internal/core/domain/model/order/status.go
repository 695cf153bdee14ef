package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Ordered ──> Canceled
//
// The string form is what gets persisted and returned by the API.
type Status int

const (
	// Unknown helps catch uninitialized Status values.
	Unknown Status = iota

	// Ordered is the initial status of a placed order.
	Ordered

	// Canceled is final.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Ordered:  "ORDERED",
		Canceled: "CANCELED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Ordered:  "ORDERED",
		Canceled: "CANCELED",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns "ORDERED", "CANCELED" or "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ParseStatus converts a persisted or requested status name to a Status.
//
// Example:
//
//	status, err := order.ParseStatus("ORDERED")
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Cancel transitions the status to Canceled. Only Ordered orders can be canceled.
func (s Status) Cancel() (Status, error) {
	if s != Ordered {
		return Unknown, errs.NewIllegalStateError("cancel order", s.String())
	}
	return Canceled, nil
}
