package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCloseSessionCommandIsNotConstructed = errors.New(
	"CloseSessionCommand must be created via NewCloseSessionCommand constructor",
)

// CloseSessionCommand represents an agent's request to close their cash
// session at end of day. The expected amount is computed live from the
// shipments registered under the session, never from a running total.
type CloseSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCloseSessionCommand creates a command to close a cash session.
func NewCloseSessionCommand(sessionID kernel.UUID) (CloseSessionCommand, error) {
	cmd := CloseSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return CloseSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseSessionCommand) Validate() error {
	return c.guard.Validate(ErrCloseSessionCommandIsNotConstructed)
}

// SessionID returns the session to close.
func (c CloseSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

func (c *CloseSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}
