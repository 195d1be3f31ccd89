// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"time"

	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/core/domain/model/kernel"
	"cafedelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The line items are stored as the same jsonb document shape the cart uses,
// frozen at checkout time. Status and owner are indexed for the dispatch
// and listing queries.
type OrderDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OwnerID             string     `gorm:"type:text;not null;index"`
	Items               []byte     `gorm:"type:jsonb;not null"`
	SubtotalCents       int64      `gorm:"type:bigint;not null"`
	TotalCents          int64      `gorm:"type:bigint;not null"`
	Street              string     `gorm:"type:varchar(255);not null"`
	City                string     `gorm:"type:varchar(255);not null"`
	Reference           string     `gorm:"type:varchar(255)"`
	PaymentMethod       string     `gorm:"type:varchar(32);not null"`
	Status              int        `gorm:"type:int;not null;index"`
	CreatedAt           time.Time  `gorm:"not null;index"`
	EstimatedDeliveryAt time.Time  `gorm:"not null"`
	Notes               string     `gorm:"type:text"`
	CourierID           *uuid.UUID `gorm:"type:uuid;index"`
	CourierName         string     `gorm:"type:varchar(255)"`
	CourierPhone        string     `gorm:"type:varchar(32)"`
	CourierAssignedAt   *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemRecord is the jsonb shape of one order line, shared with the cart
// document and the read-side queries.
type itemRecord struct {
	ID             string `json:"id"`
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
	SizeVariant    string `json:"sizeVariant"`
	ImageRef       string `json:"imageRef"`
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional courier binding.
func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items, err := marshalItems(aggregate.Items())
	if err != nil {
		return OrderDTO{}, err
	}

	var courierID *uuid.UUID
	if id := aggregate.CourierID(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	return OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		OwnerID:             aggregate.OwnerID(),
		Items:               items,
		SubtotalCents:       aggregate.Subtotal().Cents(),
		TotalCents:          aggregate.Total().Cents(),
		Street:              aggregate.DeliveryAddress().Street(),
		City:                aggregate.DeliveryAddress().City(),
		Reference:           aggregate.DeliveryAddress().Reference(),
		PaymentMethod:       aggregate.PaymentMethod().String(),
		Status:              int(aggregate.Status()),
		CreatedAt:           aggregate.CreatedAt(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		Notes:               aggregate.Notes(),
		CourierID:           courierID,
		CourierName:         aggregate.CourierName(),
		CourierPhone:        aggregate.CourierPhone(),
		CourierAssignedAt:   aggregate.CourierAssignedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status and courier binding using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items, err := unmarshalItems(dto.Items)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Street, dto.City, dto.Reference)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	return order.RestoreOrder(
		id,
		dto.OwnerID,
		items,
		address,
		paymentMethod,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.EstimatedDeliveryAt,
		dto.Notes,
		courierID,
		dto.CourierName,
		dto.CourierPhone,
		dto.CourierAssignedAt,
	)
}

func marshalItems(items []cart.Item) ([]byte, error) {
	records := make([]itemRecord, 0, len(items))
	for idx := range items {
		item := &items[idx]
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

func unmarshalItems(raw []byte) ([]cart.Item, error) {
	var records []itemRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}

	items := make([]cart.Item, 0, len(records))
	for _, record := range records {
		item, err := recordToItem(record)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
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
