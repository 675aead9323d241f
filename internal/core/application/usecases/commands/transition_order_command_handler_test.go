package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

func transitionHandler(factory *MockOrderUoWFactory, notifier *MockPayerNotifier) commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(factory, notifier, discardLogger())
}

func singleUseUoW(t *testing.T, repo *MockOrderRepository) (*MockUoW, *MockOrderUoWFactory) {
	t.Helper()
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil).Once()
	uow.On("OrderRepository").Return(repo)
	uow.On("Commit", mock.Anything).Return(nil).Maybe()
	uow.On("Rollback", mock.Anything).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestTransitionOrderCommandHandler_Handle(t *testing.T) {
	orderID := int64(42)

	t.Run("confirm payment moves a quoted order forward", func(t *testing.T) {
		aggregate, err := order.NewOrder(id(t, orderID), "CL-77", "tiles", 1, kernel.FreightModeAir)
		require.NoError(t, err)
		require.NoError(t, aggregate.ApplyQuote(money(t, "10"), money(t, "0"), kernel.ZeroDimensions(), money(t, "2")))

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id(t, orderID)).Return(aggregate, nil).Once()
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
		_, factory := singleUseUoW(t, repo)

		notifier := new(MockPayerNotifier)
		notifier.On("NotifyStatusChanged", mock.Anything, id(t, orderID), order.PaymentConfirmed).Return(nil).Once()

		cmd, err := commands.NewTransitionOrderCommand(id(t, orderID), commands.TransitionConfirmPayment)
		require.NoError(t, err)

		h := transitionHandler(factory, notifier)
		require.NoError(t, h.Handle(t.Context(), cmd))
		assert.Equal(t, order.PaymentConfirmed, aggregate.Status())
		notifier.AssertExpectations(t)
	})

	t.Run("guard violation leaves the order untouched", func(t *testing.T) {
		aggregate, err := order.NewOrder(id(t, orderID), "CL-77", "tiles", 1, kernel.FreightModeAir)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id(t, orderID)).Return(aggregate, nil).Once()
		_, factory := singleUseUoW(t, repo)

		cmd, err := commands.NewTransitionOrderCommand(id(t, orderID), commands.TransitionConfirmPayment)
		require.NoError(t, err)

		h := transitionHandler(factory, new(MockPayerNotifier))
		err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrPreconditionFailed)
		assert.Equal(t, order.Received, aggregate.Status())
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("notifier failure does not fail the command", func(t *testing.T) {
		aggregate, err := order.NewOrder(id(t, orderID), "CL-77", "tiles", 1, kernel.FreightModeAir)
		require.NoError(t, err)

		repo := new(MockOrderRepository)
		repo.On("Get", mock.Anything, id(t, orderID)).Return(aggregate, nil).Once()
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once()
		_, factory := singleUseUoW(t, repo)

		notifier := new(MockPayerNotifier)
		notifier.On("NotifyStatusChanged", mock.Anything, id(t, orderID), order.Cancelled).
			Return(errors.New("webhook down")).Once()

		cmd, err := commands.NewTransitionOrderCommand(id(t, orderID), commands.TransitionCancel)
		require.NoError(t, err)

		h := transitionHandler(factory, notifier)
		require.NoError(t, h.Handle(t.Context(), cmd))
		assert.Equal(t, order.Cancelled, aggregate.Status())
	})

	t.Run("unknown transition is rejected at construction", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(id(t, orderID), commands.OrderTransition("teleport"))
		require.Error(t, err)
	})
}
