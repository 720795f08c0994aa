package restaurantrepo

import (
	"context"

	"eats/internal/core/domain/model/restaurant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCategoryRepository implements ports.CategoryRepository using GORM.
type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// GetOrCreate returns the category with the slug derived from name, inserting
// it first when missing. Concurrent creators end up with the same row.
func (r *GormCategoryRepository) GetOrCreate(ctx context.Context, name string) (restaurant.Category, error) {
	category, err := restaurant.NewCategory(name)
	if err != nil {
		return restaurant.Category{}, err
	}

	db := r.db.WithContext(ctx)
	dto := CategoryDTO{Name: category.Name(), Slug: category.Slug()}
	if err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error; err != nil {
		return restaurant.Category{}, err
	}

	var stored CategoryDTO
	if err = db.Where("slug = ?", category.Slug()).Take(&stored).Error; err != nil {
		return restaurant.Category{}, err
	}

	return categoryToDomain(stored)
}
