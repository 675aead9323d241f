package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// ProposeAlternativeCommandHandler flips the alternative-proposal flag and
// alerts the payer, who has to accept or decline the substitute.
type ProposeAlternativeCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.PayerNotifier
	logger     *slog.Logger
}

// NewProposeAlternativeCommandHandler creates the handler.
func NewProposeAlternativeCommandHandler(uowFactory OrderUoWFactory, notifier ports.PayerNotifier,
	logger *slog.Logger) ProposeAlternativeCommandHandler {
	return ProposeAlternativeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With(slog.String("component", "propose_alternative")),
	}
}

// Handle applies the flag change and commits.
func (h *ProposeAlternativeCommandHandler) Handle(ctx context.Context, cmd ProposeAlternativeCommand) error {
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

	if err = aggregate.ProposeAlternative(cmd.Proposed()); err != nil {
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
