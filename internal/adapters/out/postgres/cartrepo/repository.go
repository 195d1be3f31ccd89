package cartrepo

import (
	"context"
	"errors"

	"cafedelivery/internal/adapters/out/postgres/pgerr"
	"cafedelivery/internal/core/domain/model/cart"
	"cafedelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id string, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save upserts the cart row keyed by owner. The same call persists a fresh
// cart and every later mutation of it.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
	if err != nil {
		return pgerr.Translate("save cart", err)
	}

	r.tracker.TrackAggregate(aggregate.OwnerID(), aggregate)
	return nil
}

// Delete removes the owner's cart row. Deleting an absent cart is not an
// error so clearing and checkout stay idempotent.
func (r *GormCartRepository) Delete(ctx context.Context, ownerID string) error {
	if ownerID == "" {
		return errs.NewValueIsRequiredError("ownerID")
	}

	return pgerr.Translate("delete cart", r.db.WithContext(ctx).Delete(&CartDTO{}, "owner_id = ?", ownerID).Error)
}

// Get retrieves the cart for the given owner.
func (r *GormCartRepository) Get(ctx context.Context, ownerID string) (*cart.Cart, error) {
	if ownerID == "" {
		return nil, errs.NewValueIsRequiredError("ownerID")
	}

	var dto CartDTO
	if err := r.db.WithContext(ctx).First(&dto, "owner_id = ?", ownerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", ownerID)
		}
		return nil, pgerr.Translate("get cart", err)
	}

	return toDomain(dto)
}
