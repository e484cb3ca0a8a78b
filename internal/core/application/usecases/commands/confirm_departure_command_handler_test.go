package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

func TestConfirmDepartureCommandHandler_Handle_FlipsBatchAndAllMembers(t *testing.T) {
	ctx := t.Context()
	first := kernel.NewUUID()
	second := kernel.NewUUID()
	b := readyBatchWith(first, second)

	memberOne := batchedShipment(b.ID(), kernel.NewUUID())
	memberTwo := batchedShipment(b.ID(), kernel.NewUUID())

	cmd, err := commands.NewConfirmDepartureCommand(b.ID(), kernel.NewUUID(), services.RoleAgencyChief)
	require.NoError(t, err)

	checker := new(MockCapabilityChecker)
	checker.On("Require", ctx, services.RoleAgencyChief, services.CapDispatchBatch, "confirm departure").
		Return(nil).Once()

	batchRepo := new(MockBatchRepository)
	shipmentRepo := new(MockShipmentRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		uow.On("EventRepository").Return(eventRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		shipmentRepo.On("GetAllInBatch", mock.Anything, b.ID()).
			Return([]*shipment.Shipment{memberOne, memberTwo}, nil).Once(),
	)
	shipmentRepo.On("Update", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Twice()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("shipment.Event")).Return(nil).Twice()
	batchRepo.On("Update", mock.Anything, b).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDepartureCommandHandler(factory, checker)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, batch.Departed, b.Status())
	require.Equal(t, shipment.InTransit, memberOne.Status())
	require.Equal(t, shipment.InTransit, memberTwo.Status())
	batchRepo.AssertExpectations(t)
	shipmentRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmDepartureCommandHandler_Handle_MemberFailureRollsBackEverything(t *testing.T) {
	ctx := t.Context()
	b := readyBatchWith(kernel.NewUUID(), kernel.NewUUID())

	healthy := batchedShipment(b.ID(), kernel.NewUUID())
	// A member already moved out of CREATED cannot depart.
	stuck := storedShipmentInBatch(t, b.ID())

	cmd, err := commands.NewConfirmDepartureCommand(b.ID(), kernel.NewUUID(), services.RoleAgencyChief)
	require.NoError(t, err)

	checker := new(MockCapabilityChecker)
	checker.On("Require", ctx, services.RoleAgencyChief, services.CapDispatchBatch, "confirm departure").
		Return(nil).Once()

	batchRepo := new(MockBatchRepository)
	shipmentRepo := new(MockShipmentRepository)
	eventRepo := new(MockEventRepository)
	uow := new(MockBatchUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BatchRepository").Return(batchRepo).Once()
	uow.On("ShipmentRepository").Return(shipmentRepo).Once()
	uow.On("EventRepository").Return(eventRepo).Once()
	batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once()
	shipmentRepo.On("GetAllInBatch", mock.Anything, b.ID()).
		Return([]*shipment.Shipment{healthy, stuck}, nil).Once()
	shipmentRepo.On("Update", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil)
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("shipment.Event")).Return(nil)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmDepartureCommandHandler(factory, checker)
	require.Error(t, h.Handle(ctx, cmd))

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	batchRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestConfirmDepartureCommandHandler_Handle_DeniedBeforeAnyRead(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewConfirmDepartureCommand(kernel.NewUUID(), kernel.NewUUID(), services.RoleAgent)
	require.NoError(t, err)

	checker := new(MockCapabilityChecker)
	checker.On("Require", ctx, services.RoleAgent, services.CapDispatchBatch, "confirm departure").
		Return(errs.NewNotAuthorizedError(string(services.RoleAgent), "confirm departure")).Once()

	factory := new(MockBatchUoWFactory)

	h := commands.NewConfirmDepartureCommandHandler(factory, checker)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}
