package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
)

func draftBatch(t *testing.T) *batch.Batch {
	t.Helper()
	b, err := batch.NewBatch(
		kernel.NewUUID(), kernel.NewUUID(), "ABJ-BKE_08h_2026-03-14",
		kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	require.NoError(t, err)
	return b
}

func TestAddShipmentToBatchCommandHandler_Handle_WritesBothSides(t *testing.T) {
	ctx := t.Context()
	b := draftBatch(t)
	aggregate := createdShipment(t)

	cmd, err := commands.NewAddShipmentToBatchCommand(b.ID(), aggregate.ID())
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		shipmentRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		batchRepo.On("Update", mock.Anything, b).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddShipmentToBatchCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.True(t, b.Contains(aggregate.ID()))
	require.NotNil(t, aggregate.BatchID())
	require.True(t, aggregate.BatchID().IsEqual(b.ID()))
	require.Equal(t, shipment.Created, aggregate.Status())
}

func TestAddShipmentToBatchCommandHandler_Handle_AlreadyMemberIsNoOp(t *testing.T) {
	ctx := t.Context()
	b := draftBatch(t)
	aggregate := createdShipment(t)
	require.NoError(t, aggregate.AssignToBatch(b.ID()))
	require.NoError(t, b.AddShipment(aggregate.ID()))

	cmd, err := commands.NewAddShipmentToBatchCommand(b.ID(), aggregate.ID())
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddShipmentToBatchCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	batchRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddShipmentToBatchCommandHandler_Handle_MemberOfReadyBatchIsRejectedNotSkipped(t *testing.T) {
	ctx := t.Context()
	b := draftBatch(t)
	aggregate := createdShipment(t)
	require.NoError(t, aggregate.AssignToBatch(b.ID()))
	require.NoError(t, b.AddShipment(aggregate.ID()))
	require.NoError(t, b.MarkReady())

	cmd, err := commands.NewAddShipmentToBatchCommand(b.ID(), aggregate.ID())
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddShipmentToBatchCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	shipmentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	batchRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestAddShipmentToBatchCommandHandler_Handle_RejectsSecondBatch(t *testing.T) {
	ctx := t.Context()
	b := draftBatch(t)
	other := draftBatch(t)
	aggregate := createdShipment(t)
	require.NoError(t, aggregate.AssignToBatch(other.ID()))

	cmd, err := commands.NewAddShipmentToBatchCommand(b.ID(), aggregate.ID())
	require.NoError(t, err)

	batchRepo := new(MockBatchRepository)
	shipmentRepo := new(MockShipmentRepository)
	uow := new(MockBatchUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		uow.On("ShipmentRepository").Return(shipmentRepo).Once(),
		batchRepo.On("Get", mock.Anything, b.ID()).Return(b, nil).Once(),
		shipmentRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAddShipmentToBatchCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
