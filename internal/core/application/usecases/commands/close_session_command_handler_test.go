package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/session"
)

func TestCloseSessionCommandHandler_Handle_FreezesLiveSum(t *testing.T) {
	ctx := t.Context()
	agentSession := activeSession("C003")
	cmd, err := commands.NewCloseSessionCommand(agentSession.ID())
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", mock.Anything, agentSession.ID()).Return(agentSession, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("SumChargesBySession", mock.Anything, agentSession.ID()).
			Return(kernel.NewMoney(1700), nil).Once(),
		sessionRepo.On("Update", mock.Anything, agentSession).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseSessionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, session.Closed, agentSession.Status())
	require.NotNil(t, agentSession.ExpectedAmount())
	require.True(t, agentSession.ExpectedAmount().IsEqual(kernel.NewMoney(1700)))
	sessionRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCloseSessionCommandHandler_Handle_AlreadyClosedIsNoOp(t *testing.T) {
	ctx := t.Context()
	agentSession := activeSession("C003")
	require.NoError(t, agentSession.Close(kernel.NewMoney(1700), time.Now().UTC()))

	cmd, err := commands.NewCloseSessionCommand(agentSession.ID())
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", mock.Anything, agentSession.ID()).Return(agentSession, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseSessionCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The frozen expected amount is untouched and nothing was recomputed.
	require.True(t, agentSession.ExpectedAmount().IsEqual(kernel.NewMoney(1700)))
	uow.AssertNotCalled(t, "ShipmentRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	sessionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCloseSessionCommandHandler_Handle_PendingSessionCannotClose(t *testing.T) {
	ctx := t.Context()
	pending, err := session.NewSession(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "C003", time.Now().UTC())
	require.NoError(t, err)

	cmd, err := commands.NewCloseSessionCommand(pending.ID())
	require.NoError(t, err)

	sessionRepo := new(MockSessionRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockSessionUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SessionRepository").Return(sessionRepo).Once(),
		sessionRepo.On("Get", mock.Anything, pending.ID()).Return(pending, nil).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		shipmentRepo.On("SumChargesBySession", mock.Anything, pending.ID()).
			Return(kernel.NewMoney(0), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSessionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCloseSessionCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
