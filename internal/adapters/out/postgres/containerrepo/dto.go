// Package containerrepo maps container aggregates onto their relational
// representation.
package containerrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/container"
	"fulfillment/internal/core/domain/model/kernel"
)

// ContainerDTO is the database row for a container aggregate. Tracking
// metadata lives on the same row; it is empty until the container ships.
type ContainerDTO struct {
	ID             int64 `gorm:"primaryKey"`
	Name           string
	Status         int `gorm:"index"`
	TrackingNumber string
	Carrier        string
	TrackingLink   string
	ETA            *time.Time
	ShippedAt      *time.Time
	CreatedAt      time.Time
}

// TableName overrides GORM's default naming to use "containers".
func (ContainerDTO) TableName() string {
	return "containers"
}

func fromDomain(aggregate *container.Container) ContainerDTO {
	tracking := aggregate.Tracking()
	return ContainerDTO{
		ID:             aggregate.ID().Int64(),
		Name:           aggregate.Name(),
		Status:         aggregate.Status().Int(),
		TrackingNumber: tracking.Number,
		Carrier:        tracking.Carrier,
		TrackingLink:   tracking.Link,
		ETA:            tracking.ETA,
		ShippedAt:      aggregate.ShippedAt(),
		CreatedAt:      aggregate.CreatedAt(),
	}
}

func toDomain(dto ContainerDTO) (*container.Container, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	tracking := container.TrackingInfo{
		Number:  dto.TrackingNumber,
		Carrier: dto.Carrier,
		Link:    dto.TrackingLink,
		ETA:     dto.ETA,
	}

	return container.RestoreContainer(
		id, dto.Name, container.Status(dto.Status), tracking, dto.ShippedAt, dto.CreatedAt)
}
