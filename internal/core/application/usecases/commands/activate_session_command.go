package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/guard"
)

var (
	ErrActivateSessionCommandIsNotConstructed = errors.New(
		"ActivateSessionCommand must be created via NewActivateSessionCommand constructor",
	)
	ErrRoleIsRequired = errors.New("caller role is required")
)

// ActivateSessionCommand represents an accountant's request to activate a
// pending cash session so the agent can start registering shipments.
type ActivateSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID   kernel.UUID
	activatedBy kernel.UUID
	role        services.Role

	guard guard.ConstructorGuard
}

// NewActivateSessionCommand creates a command to activate a cash session.
func NewActivateSessionCommand(
	sessionID kernel.UUID,
	activatedBy kernel.UUID,
	role services.Role,
) (ActivateSessionCommand, error) {
	cmd := ActivateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setActivatedBy(activatedBy),
		cmd.setRole(role),
	); err != nil {
		return ActivateSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ActivateSessionCommand) Validate() error {
	return c.guard.Validate(ErrActivateSessionCommandIsNotConstructed)
}

// SessionID returns the session to activate.
func (c ActivateSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// ActivatedBy returns the accountant performing the activation.
func (c ActivateSessionCommand) ActivatedBy() kernel.UUID {
	return c.activatedBy
}

// Role returns the caller's role.
func (c ActivateSessionCommand) Role() services.Role {
	return c.role
}

func (c *ActivateSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *ActivateSessionCommand) setActivatedBy(activatedBy kernel.UUID) error {
	if err := activatedBy.Validate(); err != nil {
		return err
	}

	c.activatedBy = activatedBy
	return nil
}

func (c *ActivateSessionCommand) setRole(role services.Role) error {
	if role == "" {
		return ErrRoleIsRequired
	}

	c.role = role
	return nil
}
