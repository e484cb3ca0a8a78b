package kernel

import (
	"fmt"
	"time"

	"logistics/internal/pkg/errs"
)

// NewShipmentReference formats the human-readable shipment reference minted
// from the per-agency sequence counter. The format is persisted and
// user-facing, so it must stay bit-exact:
//
//	{companyCode}-{agencyCode}-{agentCode}-{sequence:05d}
//
// e.g. "KMT-ABJ-C003-00042".
func NewShipmentReference(companyCode, agencyCode, agentCode string, sequence int64) (string, error) {
	if companyCode == "" {
		return "", errs.NewValueIsRequiredError("companyCode")
	}
	if agencyCode == "" {
		return "", errs.NewValueIsRequiredError("agencyCode")
	}
	if agentCode == "" {
		return "", errs.NewValueIsRequiredError("agentCode")
	}
	if sequence <= 0 {
		return "", errs.NewValueIsInvalidErrorWithCause("sequence",
			fmt.Errorf("%d is not greater than 0", sequence))
	}
	return fmt.Sprintf("%s-%s-%s-%05d", companyCode, agencyCode, agentCode, sequence), nil
}

// NewTripKey derives the deterministic string identifying one route + departure
// time + date instance. Two batches created for the same trip always produce
// the same key.
func NewTripKey(routeCode, departureTime string, date time.Time) (string, error) {
	if routeCode == "" {
		return "", errs.NewValueIsRequiredError("routeCode")
	}
	if departureTime == "" {
		return "", errs.NewValueIsRequiredError("departureTime")
	}
	return fmt.Sprintf("%s_%s_%s", routeCode, departureTime, date.Format("2006-01-02")), nil
}
