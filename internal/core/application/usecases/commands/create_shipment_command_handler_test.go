package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

func newCreateShipmentCommand(t *testing.T, sessionID *kernel.UUID, paymentType shipment.PaymentType) commands.CreateShipmentCommand {
	t.Helper()
	sender, err := shipment.NewParty("Kouame Yao", "+2250701020304")
	require.NoError(t, err)
	receiver, err := shipment.NewParty("Adjoua Brou", "")
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), "KMT", "ABJ", "C003",
		kernel.NewUUID(), kernel.NewUUID(),
		sender, receiver, "spare parts",
		kernel.NewMoney(10000), insuranceRate(), kernel.NewMoney(1500),
		paymentType, sessionID, kernel.NewUUID())
	require.NoError(t, err)
	return cmd
}

func sessionIDRef(id kernel.UUID) *kernel.UUID {
	return &id
}

func TestCreateShipmentCommandHandler_Handle_MintsReferenceAndPostsCash(t *testing.T) {
	ctx := t.Context()
	agentSession := activeSession("C003")
	cmd := newCreateShipmentCommand(t, sessionIDRef(agentSession.ID()), shipment.PaymentAtOrigin)

	sessionRepo := new(MockSessionRepository)
	shipmentRepo := new(MockShipmentRepository)
	eventRepo := new(MockEventRepository)
	ledgerRepo := new(MockLedgerRepository)
	counter := new(MockSequenceCounter)

	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", mock.Anything, agentSession.ID()).Return(agentSession, nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", mock.Anything, cmd.OriginAgencyID()).Return(int64(42), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("shipment.Event")).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
	)
	ledgerRepo.On("Add", mock.Anything, mock.AnythingOfType("session.LedgerEntry")).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	reference, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "KMT-ABJ-C003-00042", reference)

	// Transport fee plus insurance (10000 x 0.02 = 200): two ledger entries.
	ledgerRepo.AssertNumberOfCalls(t, "Add", 2)
	shipmentRepo.AssertExpectations(t)
	counter.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_NoSessionSkipsLedger(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateShipmentCommand(t, nil, shipment.PaymentAtOrigin)

	sessionRepo := new(MockSessionRepository)
	shipmentRepo := new(MockShipmentRepository)
	eventRepo := new(MockEventRepository)
	ledgerRepo := new(MockLedgerRepository)
	counter := new(MockSequenceCounter)

	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SequenceCounter").Return(counter).Once(),
		counter.On("Next", mock.Anything, cmd.OriginAgencyID()).Return(int64(42), nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		eventRepo.On("Add", mock.Anything, mock.AnythingOfType("shipment.Event")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	reference, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "KMT-ABJ-C003-00042", reference)

	// No session: nothing is verified and no cash posts anywhere.
	uow.AssertNotCalled(t, "SessionRepository")
	sessionRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "LedgerRepository")
	ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_DestinationPaidPostsNothing(t *testing.T) {
	ctx := t.Context()
	agentSession := activeSession("C003")
	cmd := newCreateShipmentCommand(t, sessionIDRef(agentSession.ID()), shipment.PaymentAtDestination)

	sessionRepo := new(MockSessionRepository)
	shipmentRepo := new(MockShipmentRepository)
	eventRepo := new(MockEventRepository)
	ledgerRepo := new(MockLedgerRepository)
	counter := new(MockSequenceCounter)

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(sessionRepo).Once()
	sessionRepo.On("Get", mock.Anything, agentSession.ID()).Return(agentSession, nil).Once()
	uow.On("SequenceCounter").Return(counter).Once()
	counter.On("Next", mock.Anything, cmd.OriginAgencyID()).Return(int64(7), nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("shipment.Event")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	reference, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "KMT-ABJ-C003-00007", reference)
	ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "LedgerRepository")
}

func TestCreateShipmentCommandHandler_Handle_RequiresActiveSession(t *testing.T) {
	ctx := t.Context()
	pending, err := session.NewSession(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "C003", time.Now().UTC())
	require.NoError(t, err)
	cmd := newCreateShipmentCommand(t, sessionIDRef(pending.ID()), shipment.PaymentAtOrigin)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockShipmentUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	uow.AssertNotCalled(t, "SequenceCounter")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_NumberingDisabled(t *testing.T) {
	ctx := t.Context()
	agentSession := activeSession("C003")

	sender, err := shipment.NewParty("Kouame Yao", "+2250701020304")
	require.NoError(t, err)
	receiver, err := shipment.NewParty("Adjoua Brou", "")
	require.NoError(t, err)

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), "", "", "",
		kernel.NewUUID(), kernel.NewUUID(),
		sender, receiver, "spare parts",
		kernel.NewMoney(10000), insuranceRate(), kernel.NewMoney(1500),
		shipment.PaymentAtDestination, sessionIDRef(agentSession.ID()), kernel.NewUUID())
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	shipmentRepo := new(MockShipmentRepository)
	eventRepo := new(MockEventRepository)
	counter := new(MockSequenceCounter)

	uow := new(MockShipmentUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("SessionRepository").Return(sessionRepo).Once()
	sessionRepo.On("Get", mock.Anything, agentSession.ID()).Return(agentSession, nil).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	shipmentRepo.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("shipment.Event")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory)
	reference, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Empty(t, reference)
	counter.AssertNotCalled(t, "Next", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "SequenceCounter")
}

func TestNewCreateShipmentCommand_NumberingRequiresAgentCode(t *testing.T) {
	sender, err := shipment.NewParty("Kouame Yao", "+2250701020304")
	require.NoError(t, err)
	receiver, err := shipment.NewParty("Adjoua Brou", "")
	require.NoError(t, err)

	_, err = commands.NewCreateShipmentCommand(
		kernel.NewUUID(), "KMT", "ABJ", "",
		kernel.NewUUID(), kernel.NewUUID(),
		sender, receiver, "spare parts",
		kernel.NewMoney(10000), insuranceRate(), kernel.NewMoney(1500),
		shipment.PaymentAtOrigin, nil, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
