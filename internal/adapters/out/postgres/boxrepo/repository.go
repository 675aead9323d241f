package boxrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// GormBoxRepository implements ports.BoxRepository using GORM.
type GormBoxRepository struct {
	db *gorm.DB
}

// NewGormBoxRepository creates a new GORM box repository.
func NewGormBoxRepository(db *gorm.DB) *GormBoxRepository {
	return &GormBoxRepository{db: db}
}

// Add saves a new box to the database.
func (r *GormBoxRepository) Add(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing box to the database. Nullable columns are written
// explicitly so unpacking a box out of its container persists.
func (r *GormBoxRepository) Update(ctx context.Context, aggregate *box.Box) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BoxDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("box", aggregate.ID().String())
	}

	return nil
}

// Delete removes a box row. The caller has already verified the box is empty
// and not shipped.
func (r *GormBoxRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&BoxDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("box", id.String())
	}

	return nil
}

// Get retrieves a box by ID.
func (r *GormBoxRepository) Get(ctx context.Context, id kernel.ID) (*box.Box, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BoxDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("box", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByContainer retrieves every box assigned to the container, sorted by id.
func (r *GormBoxRepository) GetAllByContainer(ctx context.Context, containerID kernel.ID) ([]*box.Box, error) {
	if err := containerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BoxDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "container_id = ?", containerID.Int64()).Error; err != nil {
		return nil, err
	}

	boxes := make([]*box.Box, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		boxes = append(boxes, b)
	}

	return boxes, nil
}
