// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// This package implements the repository pattern for the cart aggregate, handling
// the conversion between domain entities and database representations.
package cartrepo

import (
	"encoding/json"
	"time"

	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/kernel"
)

// CartDTO represents the database structure for persisting cart aggregates.
// Each owner has at most one row; cart lines are stored as a jsonb document
// so the whole aggregate is written and read in a single statement.
type CartDTO struct {
	OwnerID       string    `gorm:"type:text;primaryKey"`
	Items         []byte    `gorm:"type:jsonb;not null"`
	SubtotalCents int64     `gorm:"type:bigint;not null"`
	TotalCents    int64     `gorm:"type:bigint;not null"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for cart entities.
// Overrides GORM's default naming convention to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// itemRecord is the jsonb shape of one cart line. The key names are shared
// with the read-side queries that unpack the same document.
type itemRecord struct {
	ID             string `json:"id"`
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	SizeVariant    string `json:"sizeVariant"`
	ImageRef       string `json:"imageRef"`
}

// fromDomain converts a cart aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) (CartDTO, error) {
	items, err := marshalItems(aggregate.Items())
	if err != nil {
		return CartDTO{}, err
	}

	return CartDTO{
		OwnerID:       aggregate.OwnerID(),
		Items:         items,
		SubtotalCents: aggregate.Subtotal().Cents(),
		TotalCents:    aggregate.Total().Cents(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to a cart aggregate.
// Reconstructs all cart lines and lets RestoreCart recompute the totals.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	items, err := unmarshalItems(dto.Items)
	if err != nil {
		return nil, err
	}

	return cart.RestoreCart(dto.OwnerID, items, dto.CreatedAt, dto.UpdatedAt)
}

func marshalItems(items []*cart.Item) ([]byte, error) {
	records := make([]itemRecord, 0, len(items))
	for _, item := range items {
		records = append(records, itemRecord{
			ID:             item.ID().String(),
			ProductID:      item.ProductID().String(),
			Name:           item.Name(),
			UnitPriceCents: item.UnitPrice().Cents(),
			Quantity:       item.Quantity(),
			SizeVariant:    item.SizeVariant(),
			ImageRef:       item.ImageRef(),
		})
	}

	return json.Marshal(records)
}

func unmarshalItems(raw []byte) ([]*cart.Item, error) {
	var records []itemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(records))
	for _, record := range records {
		item, err := recordToItem(record)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func recordToItem(record itemRecord) (*cart.Item, error) {
	id, err := kernel.UUIDFromString(record.ID)
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromString(record.ProductID)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoneyFromCents(record.UnitPriceCents)
	if err != nil {
		return nil, err
	}

	return cart.RestoreItem(
		id,
		productID,
		record.Name,
		unitPrice,
		record.Quantity,
		record.SizeVariant,
		record.ImageRef,
	)
}
