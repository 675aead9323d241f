package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
)

// GetShippedContainersQueryHandler reads the tracking dashboard rows.
type GetShippedContainersQueryHandler struct {
	db *gorm.DB
}

// NewGetShippedContainersQueryHandler creates a handler for tracking queries.
func NewGetShippedContainersQueryHandler(db *gorm.DB) GetShippedContainersQueryHandler {
	return GetShippedContainersQueryHandler{db: db}
}

// Handle returns shipped containers, most recently shipped first, with the
// number of boxes and orders each one carries.
func (h GetShippedContainersQueryHandler) Handle(
	ctx context.Context,
	query GetShippedContainersQuery,
) ([]GetShippedContainersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	responses := make([]GetShippedContainersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.tracking_number,
			c.carrier,
			c.tracking_link,
			c.eta,
			c.shipped_at,
			COUNT(DISTINCT b.id),
			COUNT(o.id)
		FROM containers c
		LEFT JOIN boxes b ON b.container_id = c.id
		LEFT JOIN orders o ON o.box_id = b.id
		WHERE c.status >= ?
		GROUP BY c.id, c.name, c.tracking_number, c.carrier, c.tracking_link, c.eta, c.shipped_at
		ORDER BY c.shipped_at DESC
	`, container.Shipped.Int()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			resp           GetShippedContainersQueryResponse
			rowID          int64
			eta, shippedAt sql.NullTime
		)

		if err = rows.Scan(&rowID, &resp.Name, &resp.TrackingNumber, &resp.Carrier,
			&resp.TrackingLink, &eta, &shippedAt, &resp.Boxes, &resp.Orders); err != nil {
			return nil, err
		}

		resp.ID, err = kernel.NewID(rowID)
		if err != nil {
			return nil, err
		}
		if eta.Valid {
			t := eta.Time
			resp.ETA = &t
		}
		if shippedAt.Valid {
			t := shippedAt.Time
			resp.ShippedAt = &t
		}

		responses = append(responses, resp)
	}

	return responses, rows.Err()
}
