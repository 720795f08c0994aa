package orderrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order and its items, then hands the generated ids back to
// the aggregate.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	itemIDs := make([]kernel.ID, 0, len(dto.Items))
	for _, item := range dto.Items {
		itemID, itemErr := kernel.NewID(item.ID)
		if itemErr != nil {
			return itemErr
		}
		itemIDs = append(itemIDs, itemID)
	}
	if err = aggregate.AssignID(id, itemIDs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable part of an order: status and driver.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"status":    dto.Status,
		"driver_id": dto.DriverID,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with its items and restaurant owner.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withOwner(ctx).First(&dto, "orders.id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindMatching lists the orders of one party, newest first.
func (r *GormOrderRepository) FindMatching(ctx context.Context, criteria ports.OrderCriteria) ([]*order.Order, error) {
	query := r.withOwner(ctx)
	if criteria.CustomerID != nil {
		query = query.Where("orders.customer_id = ?", criteria.CustomerID.Int64())
	}
	if criteria.DriverID != nil {
		query = query.Where("orders.driver_id = ?", criteria.DriverID.Int64())
	}
	if criteria.OwnerID != nil {
		query = query.Where("restaurants.owner_id = ?", criteria.OwnerID.Int64())
	}
	if criteria.Status != nil {
		query = query.Where("orders.status = ?", int(*criteria.Status))
	}

	var dtos []OrderDTO
	if err := query.Order("orders.id DESC").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// withOwner loads orders together with their items and the owner of their restaurant.
func (r *GormOrderRepository) withOwner(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("orders.*, restaurants.owner_id AS restaurant_owner_id").
		Joins("JOIN restaurants ON restaurants.id = orders.restaurant_id").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.id")
		})
}
