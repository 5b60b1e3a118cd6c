package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/actor"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	staff := newTestActor(t, actor.Admin)
	testOrder := newTestOrderInStatus(t, order.Assigned, kernel.NewUUID())
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), staff.ID(), "client unreachable")
	require.NoError(t, err)

	actorRepo := new(MockActorRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ActorRepository").Return(actorRepo).Once(),
		actorRepo.On("Get", ctx, staff.ID()).Return(staff, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	assert.Equal(t, "client unreachable", testOrder.Reason())
	assert.Nil(t, testOrder.Worker(), "cancellation must release the worker")
}

func TestCancelOrderCommandHandler_Handle_OptionalReason(t *testing.T) {
	ctx := t.Context()
	staff := newTestActor(t, actor.Support)
	testOrder := newTestOrderInStatus(t, order.InProgress, kernel.NewUUID())
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), staff.ID(), "")
	require.NoError(t, err)

	actorRepo := new(MockActorRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ActorRepository").Return(actorRepo).Once(),
		actorRepo.On("Get", ctx, staff.ID()).Return(staff, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, testOrder.Status())
}

func TestCancelOrderCommandHandler_Handle_ForbiddenForMasters(t *testing.T) {
	ctx := t.Context()
	worker := newTestActor(t, actor.Master)
	testOrder := newTestOrderInStatus(t, order.Assigned, worker.ID())
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), worker.ID(), "reason")
	require.NoError(t, err)

	actorRepo := new(MockActorRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ActorRepository").Return(actorRepo).Once(),
		actorRepo.On("Get", ctx, worker.ID()).Return(worker, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrForbidden)
	assert.Equal(t, order.Assigned, testOrder.Status())
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_PendingNotCancellable(t *testing.T) {
	ctx := t.Context()
	staff := newTestActor(t, actor.Admin)
	testOrder := newTestPendingOrder(t, false)
	cmd, err := commands.NewCancelOrderCommand(testOrder.ID(), staff.ID(), "reason")
	require.NoError(t, err)

	actorRepo := new(MockActorRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ActorRepository").Return(actorRepo).Once(),
		actorRepo.On("Get", ctx, staff.ID()).Return(staff, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
}

func TestCancelOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CancelOrderCommand{} // not constructed properly

	factory := new(MockUoWFactory)
	handler := commands.NewCancelOrderCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCancelOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
