package commands_test

import (
	"errors"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type editOrderFixture struct {
	uow       *MockUoW
	orders    *MockOrderRepository
	publisher *MockPublisher
	handler   commands.EditOrderCommandHandler
}

func newEditOrderFixture(t *testing.T, stored *order.Order) editOrderFixture {
	t.Helper()
	ctx := t.Context()
	f := editOrderFixture{
		uow:       new(MockUoW),
		orders:    new(MockOrderRepository),
		publisher: new(MockPublisher),
	}
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("OrderRepository").Return(f.orders).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, kernel.MustNewID(existingOrder)).Return(stored, nil).Once()
	f.handler = commands.NewEditOrderCommandHandler(uowFactory{f.uow}.order(), f.publisher, discardLogger())
	return f
}

func editCommand(t *testing.T, a user.Actor, status order.Status) commands.EditOrderCommand {
	t.Helper()
	cmd, err := commands.NewEditOrderCommand(a, kernel.MustNewID(existingOrder), status)
	require.NoError(t, err)
	return cmd
}

func TestEditOrderCommandHandler_Handle_OwnerCookedFansOutTwice(t *testing.T) {
	ctx := t.Context()
	stored := testOrder(t, order.Pending, nil)
	f := newEditOrderFixture(t, stored)

	isCooked := mock.MatchedBy(func(o *order.Order) bool { return o.Status() == order.Cooked })
	mock.InOrder(
		f.orders.On("Update", ctx, isCooked).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.publisher.On("Publish", ctx, ports.TopicNewCookedOrder, isCooked).Return(nil).Once(),
		f.publisher.On("Publish", ctx, ports.TopicOrderUpdate, isCooked).Return(nil).Once(),
	)

	updated, err := f.handler.Handle(ctx, editCommand(t, actor(ownerID, user.Owner), order.Cooked))

	require.NoError(t, err)
	assert.Equal(t, order.Cooked, updated.Status())
	assert.InDelta(t, 15.0, updated.Total().Amount(), 1e-9)
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_PublishFailureKeepsChange(t *testing.T) {
	ctx := t.Context()
	f := newEditOrderFixture(t, testOrder(t, order.Pending, nil))
	f.orders.On("Update", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.publisher.On("Publish", ctx, ports.TopicNewCookedOrder, mock.Anything).Return(errors.New("broker down")).Once()
	f.publisher.On("Publish", ctx, ports.TopicOrderUpdate, mock.Anything).Return(errors.New("broker down")).Once()

	updated, err := f.handler.Handle(ctx, editCommand(t, actor(ownerID, user.Owner), order.Cooked))

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Cooked, updated.Status())
	f.uow.AssertExpectations(t)
	f.publisher.AssertExpectations(t)
}

func TestEditOrderCommandHandler_Handle_OwnerCookingOnlyUpdates(t *testing.T) {
	ctx := t.Context()
	f := newEditOrderFixture(t, testOrder(t, order.Pending, nil))
	f.orders.On("Update", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.publisher.On("Publish", ctx, ports.TopicOrderUpdate, mock.Anything).Return(nil).Once()

	updated, err := f.handler.Handle(ctx, editCommand(t, actor(ownerID, user.Owner), order.Cooking))

	require.NoError(t, err)
	assert.Equal(t, order.Cooking, updated.Status())
	f.publisher.AssertExpectations(t)
	f.publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestEditOrderCommandHandler_Handle_DriverPickedUpIsNotACookedOrder(t *testing.T) {
	ctx := t.Context()
	driver := kernel.MustNewID(driverID)
	f := newEditOrderFixture(t, testOrder(t, order.Cooked, &driver))
	f.orders.On("Update", ctx, mock.Anything).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.publisher.On("Publish", ctx, ports.TopicOrderUpdate, mock.Anything).Return(nil).Once()

	updated, err := f.handler.Handle(ctx, editCommand(t, actor(driverID, user.Delivery), order.PickedUp))

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, updated.Status())
	f.publisher.AssertNumberOfCalls(t, "Publish", 1)
}

func TestEditOrderCommandHandler_Handle_DeliveryCannotCook(t *testing.T) {
	ctx := t.Context()
	driver := kernel.MustNewID(driverID)
	stored := testOrder(t, order.Pending, &driver)
	f := newEditOrderFixture(t, stored)

	_, err := f.handler.Handle(ctx, editCommand(t, actor(driverID, user.Delivery), order.Cooking))

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	require.ErrorIs(t, err, services.ErrStatusNotAllowedForRole)
	assert.Equal(t, order.Pending, stored.Status())
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditOrderCommandHandler_Handle_ClientNeverTransitions(t *testing.T) {
	for _, target := range order.AllStatuses() {
		t.Run(target.String(), func(t *testing.T) {
			f := newEditOrderFixture(t, testOrder(t, order.Pending, nil))

			_, err := f.handler.Handle(t.Context(), editCommand(t, actor(clientID, user.Client), target))

			require.ErrorIs(t, err, errs.ErrNotAuthorized)
			f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestEditOrderCommandHandler_Handle_ForeignOwnerIsNotAuthorized(t *testing.T) {
	f := newEditOrderFixture(t, testOrder(t, order.Pending, nil))

	_, err := f.handler.Handle(t.Context(), editCommand(t, actor(otherOwnerID, user.Owner), order.Cooking))

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	require.ErrorIs(t, err, services.ErrOrderNotVisible)
	assert.NotErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestEditOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orders.On("Get", ctx, mock.Anything).Return(nil, errs.NewObjectNotFoundError("order", existingOrder)).Once()

	h := commands.NewEditOrderCommandHandler(uowFactory{uow}.order(), new(MockPublisher), discardLogger())
	_, err := h.Handle(ctx, editCommand(t, actor(ownerID, user.Owner), order.Cooking))

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.NotErrorIs(t, err, errs.ErrNotAuthorized)
}
