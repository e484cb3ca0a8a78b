package shipment

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// PaymentType says where the transport fee is collected: at the origin agency
// when the sender drops the parcel, or at the destination agency when the
// receiver picks it up.
type PaymentType int

const (
	PaymentTypeUnknown PaymentType = iota
	PaymentAtOrigin
	PaymentAtDestination
)

func getPaymentTypeStrings() map[PaymentType]string {
	return map[PaymentType]string{
		PaymentTypeUnknown:   "UNKNOWN",
		PaymentAtOrigin:      "ORIGIN",
		PaymentAtDestination: "DESTINATION",
	}
}

// PaymentTypeFromString parses the persisted representation.
func PaymentTypeFromString(s string) (PaymentType, error) {
	switch s {
	case "ORIGIN":
		return PaymentAtOrigin, nil
	case "DESTINATION":
		return PaymentAtDestination, nil
	default:
		return PaymentTypeUnknown, errs.NewValueIsInvalidErrorWithCause("paymentType",
			fmt.Errorf("%q is not a payment type", s))
	}
}

// Validate checks that the PaymentType is one of the defined values.
func (p PaymentType) Validate() error {
	if p != PaymentAtOrigin && p != PaymentAtDestination {
		return errs.NewValueIsInvalidErrorWithCause("paymentType",
			fmt.Errorf("%d is not a valid payment type", p))
	}
	return nil
}

// String returns the persisted name of the payment type.
func (p PaymentType) String() string {
	if str, ok := getPaymentTypeStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

// PaymentStatus tracks whether the transport fee has actually been collected.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentPending
	PaymentSettled
)

// PaymentStatusFromString parses the persisted representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	switch s {
	case "PENDING":
		return PaymentPending, nil
	case "SETTLED":
		return PaymentSettled, nil
	default:
		return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%q is not a payment status", s))
	}
}

// Validate checks that the PaymentStatus is one of the defined values.
func (p PaymentStatus) Validate() error {
	if p != PaymentPending && p != PaymentSettled {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

// String returns the persisted name of the payment status.
func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "PENDING"
	case PaymentSettled:
		return "SETTLED"
	default:
		return "UNKNOWN"
	}
}
