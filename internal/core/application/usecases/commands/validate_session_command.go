package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrValidateSessionCommandIsNotConstructed = errors.New(
	"ValidateSessionCommand must be created via NewValidateSessionCommand constructor",
)

// ValidateSessionCommand represents an accountant's reconciliation of a
// closed cash session: the counted cash is recorded and the difference
// against the expected amount is computed and kept, surplus or deficit.
type ValidateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID     kernel.UUID
	countedAmount kernel.Money
	validatedBy   kernel.UUID
	role          services.Role

	guard guard.ConstructorGuard
}

// NewValidateSessionCommand creates a command to validate a cash session.
// The counted amount is physical cash and can never be negative.
func NewValidateSessionCommand(
	sessionID kernel.UUID,
	countedAmount kernel.Money,
	validatedBy kernel.UUID,
	role services.Role,
) (ValidateSessionCommand, error) {
	cmd := ValidateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setCountedAmount(countedAmount),
		cmd.setValidatedBy(validatedBy),
		cmd.setRole(role),
	); err != nil {
		return ValidateSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateSessionCommand) Validate() error {
	return c.guard.Validate(ErrValidateSessionCommandIsNotConstructed)
}

// SessionID returns the session to validate.
func (c ValidateSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// CountedAmount returns the physically counted cash.
func (c ValidateSessionCommand) CountedAmount() kernel.Money {
	return c.countedAmount
}

// ValidatedBy returns the accountant performing the validation.
func (c ValidateSessionCommand) ValidatedBy() kernel.UUID {
	return c.validatedBy
}

// Role returns the caller's role.
func (c ValidateSessionCommand) Role() services.Role {
	return c.role
}

func (c *ValidateSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *ValidateSessionCommand) setCountedAmount(countedAmount kernel.Money) error {
	if countedAmount.IsNegative() {
		return errs.NewValueIsInvalidError("countedAmount")
	}

	c.countedAmount = countedAmount
	return nil
}

func (c *ValidateSessionCommand) setValidatedBy(validatedBy kernel.UUID) error {
	if err := validatedBy.Validate(); err != nil {
		return err
	}

	c.validatedBy = validatedBy
	return nil
}

func (c *ValidateSessionCommand) setRole(role services.Role) error {
	if role == "" {
		return ErrRoleIsRequired
	}

	c.role = role
	return nil
}
