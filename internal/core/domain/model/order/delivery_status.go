package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// DeliveryStatus represents the state of a delivery.
//
//	Ready ──> Completed
type DeliveryStatus int

const (
	UnknownDeliveryStatus DeliveryStatus = iota
	Ready
	Completed
)

func getDeliveryStatusStrings() map[DeliveryStatus]string {
	return map[DeliveryStatus]string{
		UnknownDeliveryStatus: "UNKNOWN",
		Ready:                 "READY",
		Completed:             "COMPLETED",
	}
}

func (s DeliveryStatus) Validate() error {
	if s != Ready && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("delivery status is invalid", fmt.Errorf("%d is not a valid delivery status", s))
	}
	return nil
}

func (s DeliveryStatus) String() string {
	if str, ok := getDeliveryStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

func ParseDeliveryStatus(s string) (DeliveryStatus, error) {
	for status, str := range getDeliveryStatusStrings() {
		if status != UnknownDeliveryStatus && str == s {
			return status, nil
		}
	}
	return UnknownDeliveryStatus, errs.NewValueIsInvalidErrorWithCause(
		"delivery status is invalid",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Complete transitions Ready to Completed.
func (s DeliveryStatus) Complete() (DeliveryStatus, error) {
	if s != Ready {
		return UnknownDeliveryStatus, errs.NewIllegalStateError("complete delivery", s.String())
	}
	return Completed, nil
}
