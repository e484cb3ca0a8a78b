package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var (
	ErrOpenSessionCommandIsNotConstructed = errors.New(
		"OpenSessionCommand must be created via NewOpenSessionCommand constructor",
	)
	ErrAgentCodeIsRequired = errors.New("agent code is required")
)

// OpenSessionCommand represents a request to open a daily cash session for an
// agent. Opening is idempotent per agent: if the agent already has a PENDING
// or ACTIVE session the handler returns that session's ID instead of creating
// a second one.
type OpenSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	agencyID  kernel.UUID
	agentID   kernel.UUID
	agentCode string

	guard guard.ConstructorGuard
}

// NewOpenSessionCommand creates a command to open a cash session.
func NewOpenSessionCommand(
	sessionID kernel.UUID,
	agencyID kernel.UUID,
	agentID kernel.UUID,
	agentCode string,
) (OpenSessionCommand, error) {
	cmd := OpenSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setAgencyID(agencyID),
		cmd.setAgentID(agentID),
		cmd.setAgentCode(agentCode),
	); err != nil {
		return OpenSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenSessionCommand) Validate() error {
	return c.guard.Validate(ErrOpenSessionCommandIsNotConstructed)
}

// SessionID returns the identifier for the session to create.
func (c OpenSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// AgencyID returns the agency the session belongs to.
func (c OpenSessionCommand) AgencyID() kernel.UUID {
	return c.agencyID
}

// AgentID returns the agent the session belongs to.
func (c OpenSessionCommand) AgentID() kernel.UUID {
	return c.agentID
}

// AgentCode returns the agent's short code used in shipment references.
func (c OpenSessionCommand) AgentCode() string {
	return c.agentCode
}

func (c *OpenSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *OpenSessionCommand) setAgencyID(agencyID kernel.UUID) error {
	if err := agencyID.Validate(); err != nil {
		return err
	}

	c.agencyID = agencyID
	return nil
}

func (c *OpenSessionCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}

func (c *OpenSessionCommand) setAgentCode(agentCode string) error {
	if agentCode == "" {
		return ErrAgentCodeIsRequired
	}

	c.agentCode = agentCode
	return nil
}
