package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/tariff"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrPatchTariffsCommandIsNotConstructed = errors.New(
		"PatchTariffsCommand must be created via NewPatchTariffsCommand constructor",
	)
	ErrPatchIsEmpty = errors.New("patch changes no fields")
)

// PatchTariffsCommand carries a field-level change to the shared pricing
// configuration. Only the fields the writer intends to change are set;
// concurrent edits to other fields are never clobbered.
type PatchTariffsCommand struct { //nolint:recvcheck //using for validation
	patch tariff.Patch

	guard guard.ConstructorGuard
}

// NewPatchTariffsCommand creates the command. An empty patch is rejected
// here; field-value validation happens when the patch is applied.
func NewPatchTariffsCommand(patch tariff.Patch) (PatchTariffsCommand, error) {
	if patch.IsEmpty() {
		return PatchTariffsCommand{}, ErrPatchIsEmpty
	}
	if err := patch.Validate(); err != nil {
		return PatchTariffsCommand{}, err
	}

	return PatchTariffsCommand{
		patch: patch,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchTariffsCommand) Validate() error {
	return c.guard.Validate(ErrPatchTariffsCommandIsNotConstructed)
}

// Patch returns the field-level change.
func (c PatchTariffsCommand) Patch() tariff.Patch {
	return c.patch
}
