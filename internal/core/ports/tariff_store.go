package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/tariff"
)

// TariffStore is the shared pricing-configuration record. Readers always
// re-fetch; writers patch only the fields they intend to change.
type TariffStore interface {
	// Get retrieves the current configuration. There is exactly one row;
	// a missing row is an initialization error, not a normal condition.
	Get(ctx context.Context) (tariff.Tariff, error)

	// Patch applies a field-level patch under the row lock and returns the
	// updated record with its bumped version.
	Patch(ctx context.Context, patch tariff.Patch) (tariff.Tariff, error)
}
