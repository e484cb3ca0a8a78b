package session

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// ErrSessionIsNotConstructed is returned when a Session instance was not
// created through NewSession or RestoreSession.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is the aggregate root for one agent's cash-handling period at one
// agency, the unit of financial reconciliation.
//
// Invariants:
//   - the expected amount is only ever set by Close, from a live sum over the
//     shipments linked to the session, never hand-entered
//   - counted amount and difference are only ever set by MarkValidated
//   - ledger entries are accepted only while ACTIVE (enforced by the ledger
//     command over this aggregate's status)
type Session struct {
	id          kernel.UUID
	agencyID    kernel.UUID
	agentID     kernel.UUID
	agentCode   string
	status      Status
	createdAt   time.Time
	openedAt    *time.Time
	closedAt    *time.Time
	validatedAt *time.Time

	expectedAmount *kernel.Money
	countedAmount  *kernel.Money
	difference     *kernel.Money

	activatedBy *kernel.UUID
	validatedBy *kernel.UUID

	isConstructed bool
}

// NewSession creates a session in PENDING status awaiting accountant
// activation.
func NewSession(
	id kernel.UUID,
	agencyID kernel.UUID,
	agentID kernel.UUID,
	agentCode string,
	createdAt time.Time,
) (*Session, error) {
	if err := errors.Join(
		id.Validate(),
		agencyID.Validate(),
		agentID.Validate(),
	); err != nil {
		return nil, err
	}
	if agentCode == "" {
		return nil, errs.NewValueIsRequiredError("agentCode")
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &Session{
		id:            id,
		agencyID:      agencyID,
		agentID:       agentID,
		agentCode:     agentCode,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreSession rehydrates a session from persistence.
func RestoreSession(
	id kernel.UUID,
	agencyID kernel.UUID,
	agentID kernel.UUID,
	agentCode string,
	status Status,
	createdAt time.Time,
	openedAt, closedAt, validatedAt *time.Time,
	expectedAmount, countedAmount, difference *kernel.Money,
	activatedBy, validatedBy *kernel.UUID,
) (*Session, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Session{
		id:             id,
		agencyID:       agencyID,
		agentID:        agentID,
		agentCode:      agentCode,
		status:         status,
		createdAt:      createdAt,
		openedAt:       openedAt,
		closedAt:       closedAt,
		validatedAt:    validatedAt,
		expectedAmount: expectedAmount,
		countedAmount:  countedAmount,
		difference:     difference,
		activatedBy:    activatedBy,
		validatedBy:    validatedBy,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Session was created through a constructor.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID { return s.id }

// AgencyID returns the agency the session belongs to.
func (s *Session) AgencyID() kernel.UUID { return s.agencyID }

// AgentID returns the agent handling the cash.
func (s *Session) AgentID() kernel.UUID { return s.agentID }

// AgentCode returns the agent's short code used in shipment references.
func (s *Session) AgentCode() string { return s.agentCode }

// Status returns the current lifecycle state.
func (s *Session) Status() Status { return s.status }

// CreatedAt returns when the agent requested the session.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// OpenedAt returns the activation time, nil while PENDING.
func (s *Session) OpenedAt() *time.Time { return s.openedAt }

// ClosedAt returns the closure time, nil until CLOSED.
func (s *Session) ClosedAt() *time.Time { return s.closedAt }

// ValidatedAt returns the reconciliation time, nil until VALIDATED.
func (s *Session) ValidatedAt() *time.Time { return s.validatedAt }

// ExpectedAmount returns the computed expectation, nil until CLOSED.
func (s *Session) ExpectedAmount() *kernel.Money { return s.expectedAmount }

// CountedAmount returns the accountant's physical count, nil until VALIDATED.
func (s *Session) CountedAmount() *kernel.Money { return s.countedAmount }

// Difference returns counted - expected, nil until VALIDATED. A negative
// difference means the drawer fell short.
func (s *Session) Difference() *kernel.Money { return s.difference }

// ActivatedBy returns the accountant who activated the session.
func (s *Session) ActivatedBy() *kernel.UUID { return s.activatedBy }

// ValidatedBy returns the accountant who validated the session.
func (s *Session) ValidatedBy() *kernel.UUID { return s.validatedBy }

// IsOpen reports whether the session counts against the one-open-session-
// per-agent invariant.
func (s *Session) IsOpen() bool { return s.status.IsOpen() }

// Activate moves PENDING -> ACTIVE, stamping the opening time and the
// activating accountant.
func (s *Session) Activate(activatedBy kernel.UUID, openedAt time.Time) error {
	if err := activatedBy.Validate(); err != nil {
		return err
	}
	newStatus, err := s.status.Activate()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.openedAt = &openedAt
	s.activatedBy = &activatedBy
	return nil
}

// Close moves ACTIVE -> CLOSED and records the expected amount the caller
// computed by summing the charges of shipments linked to this session inside
// the same transaction.
func (s *Session) Close(expectedAmount kernel.Money, closedAt time.Time) error {
	newStatus, err := s.status.Close()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.expectedAmount = &expectedAmount
	s.closedAt = &closedAt
	return nil
}

// MarkValidated moves CLOSED -> VALIDATED, storing the counted amount and the
// signed difference (counted - expected).
func (s *Session) MarkValidated(countedAmount kernel.Money, validatedBy kernel.UUID, validatedAt time.Time) error {
	if err := validatedBy.Validate(); err != nil {
		return err
	}
	if countedAmount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("countedAmount",
			errors.New("counted amount cannot be negative"))
	}
	newStatus, err := s.status.MarkValidated()
	if err != nil {
		return err
	}

	difference := countedAmount.Sub(*s.expectedAmount)

	s.status = newStatus
	s.countedAmount = &countedAmount
	s.difference = &difference
	s.validatedAt = &validatedAt
	s.validatedBy = &validatedBy
	return nil
}
