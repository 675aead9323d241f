// Package orderrepo maps order aggregates onto their relational
// representation.
package orderrepo

import (
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO is the database row for an order aggregate. Monetary amounts and
// measurements are stored as numerics and surface in the change feed as their
// decimal string form.
type OrderDTO struct {
	ID                  int64  `gorm:"primaryKey"`
	ClientRef           string `gorm:"index"`
	Description         string
	Quantity            int
	Status              int `gorm:"index"`
	FreightMode         string
	UnitPrice           decimal.Decimal `gorm:"type:numeric"`
	FreightPrice        decimal.Decimal `gorm:"type:numeric"`
	WeightKg            decimal.Decimal `gorm:"type:numeric"`
	HeightCm            decimal.Decimal `gorm:"type:numeric"`
	WidthCm             decimal.Decimal `gorm:"type:numeric"`
	LengthCm            decimal.Decimal `gorm:"type:numeric"`
	FinalCharge         *decimal.Decimal `gorm:"type:numeric"`
	BoxID               *int64           `gorm:"index"`
	AlternativeProposal bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var finalCharge *decimal.Decimal
	if charge := aggregate.FinalCharge(); charge != nil {
		amount := charge.Amount()
		finalCharge = &amount
	}

	var boxID *int64
	if id := aggregate.Box(); id != nil {
		raw := id.Int64()
		boxID = &raw
	}

	dims := aggregate.Dimensions()
	return OrderDTO{
		ID:                  aggregate.ID().Int64(),
		ClientRef:           aggregate.ClientRef(),
		Description:         aggregate.Description(),
		Quantity:            aggregate.Quantity(),
		Status:              aggregate.Status().Int(),
		FreightMode:         aggregate.FreightMode().String(),
		UnitPrice:           aggregate.UnitPrice().Amount(),
		FreightPrice:        aggregate.FreightPrice().Amount(),
		WeightKg:            dims.WeightKg(),
		HeightCm:            dims.HeightCm(),
		WidthCm:             dims.WidthCm(),
		LengthCm:            dims.LengthCm(),
		FinalCharge:         finalCharge,
		BoxID:               boxID,
		AlternativeProposal: aggregate.AlternativeProposal(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	mode, err := kernel.NewFreightMode(dto.FreightMode)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.MoneyFromDecimal(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	freightPrice, err := kernel.MoneyFromDecimal(dto.FreightPrice)
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.HeightCm, dto.WidthCm, dto.LengthCm, dto.WeightKg)
	if err != nil {
		return nil, err
	}

	var finalCharge *kernel.Money
	if dto.FinalCharge != nil {
		charge, chargeErr := kernel.MoneyFromDecimal(*dto.FinalCharge)
		if chargeErr != nil {
			return nil, chargeErr
		}
		finalCharge = &charge
	}

	var boxID *kernel.ID
	if dto.BoxID != nil {
		bID, boxErr := kernel.NewID(*dto.BoxID)
		if boxErr != nil {
			return nil, boxErr
		}
		boxID = &bID
	}

	return order.RestoreOrder(
		id,
		dto.ClientRef, dto.Description,
		dto.Quantity,
		order.Status(dto.Status),
		mode,
		unitPrice, freightPrice,
		dims,
		finalCharge,
		boxID,
		dto.AlternativeProposal,
		dto.CreatedAt, dto.UpdatedAt,
	)
}
