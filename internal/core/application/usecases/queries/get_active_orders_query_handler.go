package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler reads the staff work queue straight from the
// orders table.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for work-queue queries.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle returns every non-terminal order sorted by id.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_ref,
			status,
			freight_mode,
			final_charge,
			box_id,
			alternative_proposal
		FROM orders
		WHERE status NOT IN (?, ?, ?)
		ORDER BY id
	`, order.Delivered.Int(), order.Cancelled.Int(), order.RejectedFinal.Int()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp        GetActiveOrdersQueryResponse
			rowID       int64
			finalCharge sql.NullString
			boxID       sql.NullInt64
		)

		if err = rows.Scan(&rowID, &resp.ClientRef, &resp.Status, &resp.FreightMode,
			&finalCharge, &boxID, &resp.AlternativeProposal); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.NewID(rowID)
		if err != nil {
			return nil, err
		}
		if finalCharge.Valid {
			resp.FinalCharge = finalCharge.String
		}
		if boxID.Valid {
			id, idErr := kernel.NewID(boxID.Int64)
			if idErr != nil {
				return nil, idErr
			}
			resp.BoxID = &id
		}

		responses = append(responses, resp)
	}

	return responses, rows.Err()
}
