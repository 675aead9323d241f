package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/saga"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// SendBoxDirectlyCommandHandler ships an air-only box without container
// consolidation. The box and each member order live in separate aggregates
// with no shared transaction, so the cascade runs as a saga: every step
// commits on its own, and a failed step compensates the ones already
// applied before the error propagates as PersistenceFailed.
type SendBoxDirectlyCommandHandler struct {
	uowFactory BoxUoWFactory
	logger     *slog.Logger
}

// NewSendBoxDirectlyCommandHandler creates the handler.
func NewSendBoxDirectlyCommandHandler(uowFactory BoxUoWFactory, logger *slog.Logger) SendBoxDirectlyCommandHandler {
	return SendBoxDirectlyCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With(slog.String("component", "send_box_directly")),
	}
}

// Handle validates the direct-send guards, then runs the cascade. Mixing
// freight modes is prevented at assignment time; if a mixed box is found
// anyway the send is rejected with PreconditionFailed.
func (h *SendBoxDirectlyCommandHandler) Handle(ctx context.Context, cmd SendBoxDirectlyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	orderIDs, err := h.preflight(ctx, cmd.BoxID())
	if err != nil {
		return err
	}

	steps := make([]saga.Step, 0, len(orderIDs)+1)
	for _, orderID := range orderIDs {
		steps = append(steps, h.sendOrderStep(orderID))
	}
	steps = append(steps, h.shipBoxStep(cmd.BoxID()))

	if err = saga.New(h.logger, steps).Run(ctx); err != nil {
		var stepErr *saga.StepError
		if errors.As(err, &stepErr) {
			return &errs.PersistenceFailedError{
				Aggregate:  "box",
				ID:         cmd.BoxID(),
				Operation:  "sendDirectly",
				RolledBack: stepErr.Compensated,
				Cause:      err,
			}
		}
		return err
	}

	return nil
}

// preflight verifies the guards in a read-only transaction before any
// mutation: the box must be open and non-empty, and every member order must
// be an air order ready to ship.
func (h *SendBoxDirectlyCommandHandler) preflight(ctx context.Context, boxID kernel.ID) ([]kernel.ID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	boxAggregate, err := uow.BoxRepository().Get(ctx, boxID)
	if err != nil {
		return nil, err
	}
	if err = boxAggregate.EnsureAcceptsOrders(); err != nil {
		return nil, err
	}

	members, err := uow.OrderRepository().GetAllByBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, errs.NewPreconditionFailedErrorWithCause("box", boxID, "sendDirectly",
			boxAggregate.Status().Int(), errors.New("box is empty"))
	}

	orderIDs := make([]kernel.ID, 0, len(members))
	for _, member := range members {
		if member.FreightMode() != kernel.FreightModeAir {
			return nil, errs.NewPreconditionFailedErrorWithCause("box", boxID, "sendDirectly",
				boxAggregate.Status().Int(),
				fmt.Errorf("order %d is %s, direct send is air-only", member.ID().Int64(), member.FreightMode()))
		}
		orderIDs = append(orderIDs, member.ID())
	}

	return orderIDs, nil
}

// sendOrderStep marks one order sent in its own transaction. The previous
// status is captured at execute time so the compensation can restore it.
func (h *SendBoxDirectlyCommandHandler) sendOrderStep(orderID kernel.ID) saga.Step {
	var previous order.Status

	return saga.Step{
		Name: fmt.Sprintf("send order %d", orderID.Int64()),
		Execute: func(ctx context.Context) error {
			return h.mutateOrder(ctx, orderID, func(aggregate *order.Order) error {
				previous = aggregate.Status()
				return aggregate.MarkSent()
			})
		},
		Compensate: func(ctx context.Context) error {
			return h.mutateOrder(ctx, orderID, func(aggregate *order.Order) error {
				return aggregate.RevertStatus(previous)
			})
		},
	}
}

// shipBoxStep marks the box shipped. It runs last so a failure here only
// needs the order steps compensated.
func (h *SendBoxDirectlyCommandHandler) shipBoxStep(boxID kernel.ID) saga.Step {
	return saga.Step{
		Name: fmt.Sprintf("ship box %d", boxID.Int64()),
		Execute: func(ctx context.Context) error {
			uow := h.uowFactory.Create()
			if err := uow.Begin(ctx); err != nil {
				return err
			}
			defer func() {
				_ = uow.Rollback(ctx)
			}()

			aggregate, err := uow.BoxRepository().Get(ctx, boxID)
			if err != nil {
				return err
			}
			if err = aggregate.MarkShippedDirect(); err != nil {
				return err
			}
			if err = uow.BoxRepository().Update(ctx, aggregate); err != nil {
				return err
			}
			return uow.Commit(ctx)
		},
	}
}

func (h *SendBoxDirectlyCommandHandler) mutateOrder(ctx context.Context, orderID kernel.ID,
	mutate func(*order.Order) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, orderID)
	if err != nil {
		return err
	}
	if err = mutate(aggregate); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
