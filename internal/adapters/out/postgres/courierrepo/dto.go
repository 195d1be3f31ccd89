// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"cafedelivery/internal/core/domain/model/courier"
	"cafedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
// Availability is indexed for the dispatch candidate query.
type CourierDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                string    `gorm:"type:varchar(255);not null"`
	Phone               string    `gorm:"type:varchar(32);not null"`
	PhotoRef            string    `gorm:"type:varchar(255)"`
	Available           bool      `gorm:"not null;index"`
	Rating              float64   `gorm:"type:numeric(3,2);not null"`
	DeliveriesCompleted int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:                  aggregate.ID().Bytes(),
		Name:                aggregate.Name(),
		Phone:               aggregate.Phone(),
		PhotoRef:            aggregate.PhotoRef(),
		Available:           aggregate.IsAvailable(),
		Rating:              aggregate.Rating(),
		DeliveriesCompleted: aggregate.DeliveriesCompleted(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate using RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		dto.Phone,
		dto.PhotoRef,
		dto.Available,
		dto.Rating,
		dto.DeliveriesCompleted,
	)
}
