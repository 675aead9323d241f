package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/core/ports"
)

// PatchTariffsCommandHandler applies a field-level change to the shared
// pricing configuration. The store serializes concurrent patches on the row
// lock and bumps the version; the updated record is returned so callers can
// refresh their view.
type PatchTariffsCommandHandler struct {
	tariffStore ports.TariffStore
}

// NewPatchTariffsCommandHandler creates the handler.
func NewPatchTariffsCommandHandler(tariffStore ports.TariffStore) PatchTariffsCommandHandler {
	return PatchTariffsCommandHandler{
		tariffStore: tariffStore,
	}
}

// Handle applies the patch and returns the updated configuration.
func (h *PatchTariffsCommandHandler) Handle(ctx context.Context, cmd PatchTariffsCommand) (tariff.Tariff, error) {
	if err := cmd.Validate(); err != nil {
		return tariff.Tariff{}, err
	}

	return h.tariffStore.Patch(ctx, cmd.Patch())
}
