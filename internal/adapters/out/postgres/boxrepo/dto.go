// Package boxrepo maps box aggregates onto their relational representation.
package boxrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/box"
	"fulfillment/internal/core/domain/model/kernel"
)

// BoxDTO is the database row for a box aggregate.
type BoxDTO struct {
	ID          int64 `gorm:"primaryKey"`
	Name        string
	Status      int    `gorm:"index"`
	ContainerID *int64 `gorm:"index"`
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "boxes".
func (BoxDTO) TableName() string {
	return "boxes"
}

func fromDomain(aggregate *box.Box) BoxDTO {
	var containerID *int64
	if id := aggregate.Container(); id != nil {
		raw := id.Int64()
		containerID = &raw
	}

	return BoxDTO{
		ID:          aggregate.ID().Int64(),
		Name:        aggregate.Name(),
		Status:      aggregate.Status().Int(),
		ContainerID: containerID,
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto BoxDTO) (*box.Box, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	var containerID *kernel.ID
	if dto.ContainerID != nil {
		cID, containerErr := kernel.NewID(*dto.ContainerID)
		if containerErr != nil {
			return nil, containerErr
		}
		containerID = &cID
	}

	return box.RestoreBox(id, dto.Name, box.Status(dto.Status), containerID, dto.CreatedAt)
}
