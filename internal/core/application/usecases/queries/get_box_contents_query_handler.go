package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
)

// GetBoxContentsQueryHandler reads the orders packed into a box.
type GetBoxContentsQueryHandler struct {
	db *gorm.DB
}

// NewGetBoxContentsQueryHandler creates a handler for box-contents queries.
func NewGetBoxContentsQueryHandler(db *gorm.DB) GetBoxContentsQueryHandler {
	return GetBoxContentsQueryHandler{db: db}
}

// Handle returns the orders of one box with their physical data. Volume is
// computed from the centimeter measurements at read time.
func (h GetBoxContentsQueryHandler) Handle(
	ctx context.Context,
	query GetBoxContentsQuery,
) ([]GetBoxContentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetBoxContentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_ref,
			description,
			quantity,
			status,
			freight_mode,
			weight_kg,
			height_cm,
			width_cm,
			length_cm
		FROM orders
		WHERE box_id = ?
		ORDER BY id
	`, query.BoxID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp                                  GetBoxContentsQueryResponse
			rowID                                 int64
			weightKg, heightCm, widthCm, lengthCm string
			weight, height, width, length         decimal.Decimal
		)

		if err = rows.Scan(&rowID, &resp.ClientRef, &resp.Description, &resp.Quantity,
			&resp.Status, &resp.FreightMode, &weightKg, &heightCm, &widthCm, &lengthCm); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.NewID(rowID)
		if err != nil {
			return nil, err
		}

		weight, err = decimal.NewFromString(weightKg)
		if err != nil {
			return nil, err
		}
		height, err = decimal.NewFromString(heightCm)
		if err != nil {
			return nil, err
		}
		width, err = decimal.NewFromString(widthCm)
		if err != nil {
			return nil, err
		}
		length, err = decimal.NewFromString(lengthCm)
		if err != nil {
			return nil, err
		}

		dims, dimsErr := kernel.NewDimensions(height, width, length, weight)
		if dimsErr != nil {
			return nil, dimsErr
		}
		resp.WeightKg = dims.WeightKg().String()
		resp.VolumeM3 = dims.VolumeCubicMeters().String()

		responses = append(responses, resp)
	}

	return responses, rows.Err()
}
