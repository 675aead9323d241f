package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/application/saga"
	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// SendContainerCommandHandler ships a container and cascades the shipment
// down to every member box and transitively to every order those boxes
// hold. The aggregates have no shared transaction, so the cascade runs as a
// saga: orders first, then boxes, then the container, with compensations
// restoring the prior states when a later step fails.
type SendContainerCommandHandler struct {
	uowFactory UoWFactory
	logger     *slog.Logger
}

// NewSendContainerCommandHandler creates the handler.
func NewSendContainerCommandHandler(uowFactory UoWFactory, logger *slog.Logger) SendContainerCommandHandler {
	return SendContainerCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With(slog.String("component", "send_container")),
	}
}

// Handle validates the send guards, runs the cascade, and reports
// incomplete tracking metadata as a data-quality warning next to the
// success result.
func (h *SendContainerCommandHandler) Handle(ctx context.Context, cmd SendContainerCommand) ([]errs.DataQualityWarning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	boxIDs, orderIDs, err := h.preflight(ctx, cmd.ContainerID())
	if err != nil {
		return nil, err
	}

	steps := make([]saga.Step, 0, len(orderIDs)+len(boxIDs)+1)
	for _, orderID := range orderIDs {
		steps = append(steps, h.sendOrderStep(orderID))
	}
	for _, boxID := range boxIDs {
		steps = append(steps, h.shipBoxStep(boxID))
	}
	steps = append(steps, h.shipContainerStep(cmd.ContainerID(), cmd.Tracking()))

	if err = saga.New(h.logger, steps).Run(ctx); err != nil {
		var stepErr *saga.StepError
		if errors.As(err, &stepErr) {
			return nil, &errs.PersistenceFailedError{
				Aggregate:  "container",
				ID:         cmd.ContainerID(),
				Operation:  "send",
				RolledBack: stepErr.Compensated,
				Cause:      err,
			}
		}
		return nil, err
	}

	var warnings []errs.DataQualityWarning
	if !cmd.Tracking().IsComplete() {
		warnings = append(warnings, errs.NewDataQualityWarning("container", cmd.ContainerID(),
			"shipped with incomplete tracking metadata"))
	}
	return warnings, nil
}

// preflight verifies in a read-only transaction that the container is
// loading and collects the member boxes and orders the cascade must touch.
func (h *SendContainerCommandHandler) preflight(ctx context.Context, containerID kernel.ID) ([]kernel.ID, []kernel.ID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parent, err := uow.ContainerRepository().Get(ctx, containerID)
	if err != nil {
		return nil, nil, err
	}
	if parent.Status() != container.Loading {
		return nil, nil, errs.NewPreconditionFailedError("container", containerID, "send",
			parent.Status().Int())
	}

	boxes, err := uow.BoxRepository().GetAllByContainer(ctx, containerID)
	if err != nil {
		return nil, nil, err
	}
	if len(boxes) == 0 {
		return nil, nil, errs.NewPreconditionFailedErrorWithCause("container", containerID, "send",
			parent.Status().Int(), errors.New("container has no boxes"))
	}

	boxIDs := make([]kernel.ID, 0, len(boxes))
	var orderIDs []kernel.ID
	for _, member := range boxes {
		boxIDs = append(boxIDs, member.ID())

		orders, ordersErr := uow.OrderRepository().GetAllByBox(ctx, member.ID())
		if ordersErr != nil {
			return nil, nil, ordersErr
		}
		for _, o := range orders {
			orderIDs = append(orderIDs, o.ID())
		}
	}

	return boxIDs, orderIDs, nil
}

func (h *SendContainerCommandHandler) sendOrderStep(orderID kernel.ID) saga.Step {
	var previous order.Status

	return saga.Step{
		Name: fmt.Sprintf("send order %d", orderID.Int64()),
		Execute: func(ctx context.Context) error {
			return h.inTx(ctx, func(ctx context.Context, uow UoW) error {
				aggregate, err := uow.OrderRepository().Get(ctx, orderID)
				if err != nil {
					return err
				}
				previous = aggregate.Status()
				if err = aggregate.MarkSent(); err != nil {
					return err
				}
				return uow.OrderRepository().Update(ctx, aggregate)
			})
		},
		Compensate: func(ctx context.Context) error {
			return h.inTx(ctx, func(ctx context.Context, uow UoW) error {
				aggregate, err := uow.OrderRepository().Get(ctx, orderID)
				if err != nil {
					return err
				}
				if err = aggregate.RevertStatus(previous); err != nil {
					return err
				}
				return uow.OrderRepository().Update(ctx, aggregate)
			})
		},
	}
}

func (h *SendContainerCommandHandler) shipBoxStep(boxID kernel.ID) saga.Step {
	var previous box.Status

	return saga.Step{
		Name: fmt.Sprintf("ship box %d", boxID.Int64()),
		Execute: func(ctx context.Context) error {
			return h.inTx(ctx, func(ctx context.Context, uow UoW) error {
				aggregate, err := uow.BoxRepository().Get(ctx, boxID)
				if err != nil {
					return err
				}
				previous = aggregate.Status()
				if err = aggregate.MarkShipped(); err != nil {
					return err
				}
				return uow.BoxRepository().Update(ctx, aggregate)
			})
		},
		Compensate: func(ctx context.Context) error {
			return h.inTx(ctx, func(ctx context.Context, uow UoW) error {
				aggregate, err := uow.BoxRepository().Get(ctx, boxID)
				if err != nil {
					return err
				}
				if err = aggregate.RevertStatus(previous); err != nil {
					return err
				}
				return uow.BoxRepository().Update(ctx, aggregate)
			})
		},
	}
}

// shipContainerStep runs last so a failure here only needs the box and
// order steps compensated.
func (h *SendContainerCommandHandler) shipContainerStep(containerID kernel.ID, tracking container.TrackingInfo) saga.Step {
	return saga.Step{
		Name: fmt.Sprintf("ship container %d", containerID.Int64()),
		Execute: func(ctx context.Context) error {
			return h.inTx(ctx, func(ctx context.Context, uow UoW) error {
				aggregate, err := uow.ContainerRepository().Get(ctx, containerID)
				if err != nil {
					return err
				}
				if err = aggregate.MarkShipped(tracking); err != nil {
					return err
				}
				return uow.ContainerRepository().Update(ctx, aggregate)
			})
		},
	}
}

func (h *SendContainerCommandHandler) inTx(ctx context.Context, fn func(context.Context, UoW) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(ctx, uow); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
