package commands

import (
	"context"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// TransitionOrderCommandHandler executes payload-free lifecycle transitions.
// The aggregate decides whether the transition is allowed from the current
// state; a guard violation surfaces as PreconditionFailed with the state
// untouched.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.PayerNotifier
	logger     *slog.Logger
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.PayerNotifier,
	logger *slog.Logger) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With(slog.String("component", "transition_order")),
	}
}

// Handle loads the order, applies the transition and commits. The payer is
// notified after the commit; notification failure is logged, never returned.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = apply(aggregate, cmd.Transition()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.notifier.NotifyStatusChanged(ctx, aggregate.ID(), aggregate.Status()); err != nil {
		h.logger.Error("payer notification failed",
			slog.Int64("orderID", aggregate.ID().Int64()),
			slog.Any("error", err))
	}

	return nil
}

func apply(aggregate *order.Order, transition OrderTransition) error {
	switch transition {
	case TransitionUnderReview:
		return aggregate.MarkUnderReview()
	case TransitionReject:
		return aggregate.Reject()
	case TransitionConfirmPayment:
		return aggregate.ConfirmPayment()
	case TransitionValidatePayment:
		return aggregate.ValidatePayment()
	case TransitionCancel:
		return aggregate.Cancel()
	case TransitionCustoms:
		return aggregate.MarkInCustoms()
	case TransitionArrived:
		return aggregate.MarkArrived()
	case TransitionReadyForDelivery:
		return aggregate.MarkReadyForDelivery()
	case TransitionDelivered:
		return aggregate.MarkDelivered()
	}
	return fmt.Errorf("unknown order transition %q", transition)
}
