package shipment

import (
	"logistics/internal/pkg/errs"
)

// Party identifies the sender or the receiver of a shipment.
// It is an immutable value object; the name is mandatory, the phone is kept
// as given (receivers are sometimes registered with only a name at rural
// agencies).
type Party struct {
	name  string
	phone string
}

// NewParty creates a Party with a mandatory name.
func NewParty(name, phone string) (Party, error) {
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}
	return Party{name: name, phone: phone}, nil
}

// Name returns the party's full name.
func (p Party) Name() string {
	return p.name
}

// Phone returns the party's phone number, possibly empty.
func (p Party) Phone() string {
	return p.phone
}

// Validate returns an error for a zero-value Party.
func (p Party) Validate() error {
	if p.name == "" {
		return errs.NewValueIsRequiredError("party name")
	}
	return nil
}
