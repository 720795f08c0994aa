package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler reading the restaurants
// table directly.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle returns an empty page, not an error, past the last page.
func (h GetRestaurantsQueryHandler) Handle(ctx context.Context, query GetRestaurantsQuery) (RestaurantsPage, error) {
	if err := query.Validate(); err != nil {
		return RestaurantsPage{}, err
	}

	return listRestaurants(ctx, h.db, query.Page(), func(db *gorm.DB) *gorm.DB {
		if query.Search() == "" {
			return db
		}
		return db.Where("name ILIKE ?", containsPattern(query.Search()))
	})
}
