package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCategoriesQueryHandler lists the categories by name with their
// restaurant counts. Categories without restaurants are included.
type GetCategoriesQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoriesQueryHandler reads categories straight from db.
func NewGetCategoriesQueryHandler(db *gorm.DB) GetCategoriesQueryHandler {
	return GetCategoriesQueryHandler{db: db}
}

func (h GetCategoriesQueryHandler) Handle(ctx context.Context, _ GetCategoriesQuery) ([]GetCategoriesQueryResponse, error) {
	var rows []struct {
		ID              int64
		Name            string
		Slug            string
		RestaurantCount int64
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			c.slug,
			COUNT(r.id) AS restaurant_count
		FROM categories c
		LEFT JOIN restaurants r ON r.category_id = c.id
		GROUP BY c.id, c.name, c.slug
		ORDER BY c.name, c.id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	categories := make([]GetCategoriesQueryResponse, 0, len(rows))
	for _, row := range rows {
		category, convErr := restoreCategory(row.ID, row.Name, row.Slug)
		if convErr != nil {
			return nil, convErr
		}
		categories = append(categories, GetCategoriesQueryResponse{
			Category:        category,
			RestaurantCount: row.RestaurantCount,
		})
	}
	return categories, nil
}

// GetCategoryQueryHandler returns an ObjectNotFoundError for an unknown slug.
type GetCategoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCategoryQueryHandler reads a category and its restaurants straight from db.
func NewGetCategoryQueryHandler(db *gorm.DB) GetCategoryQueryHandler {
	return GetCategoryQueryHandler{db: db}
}

func (h GetCategoryQueryHandler) Handle(ctx context.Context, query GetCategoryQuery) (GetCategoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCategoryQueryResponse{}, err
	}

	var row struct {
		ID   int64
		Name string
		Slug string
	}
	err := h.db.WithContext(ctx).Table("categories").
		Select("id, name, slug").
		Where("slug = ?", query.Slug()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return GetCategoryQueryResponse{}, errs.NewObjectNotFoundError("category", query.Slug())
	}
	if err != nil {
		return GetCategoryQueryResponse{}, err
	}

	category, err := restoreCategory(row.ID, row.Name, row.Slug)
	if err != nil {
		return GetCategoryQueryResponse{}, err
	}

	page, err := listRestaurants(ctx, h.db, query.Page(), func(db *gorm.DB) *gorm.DB {
		return db.Where("category_id = ?", row.ID)
	})
	if err != nil {
		return GetCategoryQueryResponse{}, err
	}

	return GetCategoryQueryResponse{Category: category, RestaurantsPage: page}, nil
}

func restoreCategory(id int64, name, slug string) (restaurant.Category, error) {
	categoryID, err := kernel.NewID(id)
	if err != nil {
		return restaurant.Category{}, err
	}
	return restaurant.RestoreCategory(categoryID, name, slug)
}
