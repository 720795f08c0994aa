package restaurantrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDishRepository implements ports.DishRepository using GORM.
type GormDishRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDishRepository tracks every dish it writes on tracker.
func NewGormDishRepository(db *gorm.DB, tracker aggregateTracker) *GormDishRepository {
	return &GormDishRepository{db: db, tracker: tracker}
}

func (r *GormDishRepository) Add(ctx context.Context, dish *restaurant.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(dish)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return err
	}
	if err = dish.AssignID(id); err != nil {
		return err
	}

	r.tracker.TrackAggregate(dish.ID(), dish)
	return nil
}

func (r *GormDishRepository) Update(ctx context.Context, dish *restaurant.Dish) error {
	if err := dish.Validate(); err != nil {
		return err
	}

	dto := dishFromDomain(dish)
	result := r.db.WithContext(ctx).Model(&DishDTO{ID: dto.ID}).Select(
		"Name", "Price", "Photo", "Description", "Options", "UpdatedAt",
	).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", dish.ID().String())
	}

	r.tracker.TrackAggregate(dish.ID(), dish)
	return nil
}

func (r *GormDishRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Dish, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DishDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dish", id.String())
		}
		return nil, err
	}

	return dishToDomain(dto)
}

func (r *GormDishRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&DishDTO{}, id.Int64())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("dish", id.String())
	}
	return nil
}

// FindByRestaurant returns the menu of a restaurant in creation order.
func (r *GormDishRepository) FindByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*restaurant.Dish, error) {
	var dtos []DishDTO
	if err := r.db.WithContext(ctx).Where("restaurant_id = ?", restaurantID.Int64()).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	dishes := make([]*restaurant.Dish, 0, len(dtos))
	for _, dto := range dtos {
		d, err := dishToDomain(dto)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}
