package queries

import (
	"context"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"gorm.io/gorm"
)

// restaurantRow is the column set read by the listings.
type restaurantRow struct {
	ID            int64
	Name          string
	Address       string
	CoverImage    string
	OwnerID       int64
	CategoryID    *int64
	IsPromoted    bool
	PromotedUntil *time.Time
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere, with the
// wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// listRestaurants reads page of the restaurants selected by scope.
func listRestaurants(
	ctx context.Context,
	db *gorm.DB,
	page int,
	scope func(*gorm.DB) *gorm.DB,
) (RestaurantsPage, error) {
	base := scope(db.WithContext(ctx).Table("restaurants")).Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return RestaurantsPage{}, err
	}

	var rows []restaurantRow
	err := base.
		Select("id, name, address, cover_image, owner_id, category_id, is_promoted, promoted_until").
		Order("is_promoted DESC").
		Order("id").
		Limit(RestaurantsPageSize).
		Offset((page - 1) * RestaurantsPageSize).
		Find(&rows).Error
	if err != nil {
		return RestaurantsPage{}, err
	}

	restaurants := make([]*restaurant.Restaurant, 0, len(rows))
	for _, row := range rows {
		r, convErr := row.toDomain()
		if convErr != nil {
			return RestaurantsPage{}, convErr
		}
		restaurants = append(restaurants, r)
	}

	return RestaurantsPage{
		Restaurants:  restaurants,
		TotalPages:   int((total + RestaurantsPageSize - 1) / RestaurantsPageSize),
		TotalResults: total,
	}, nil
}

func (row restaurantRow) toDomain() (*restaurant.Restaurant, error) {
	id, err := kernel.NewID(row.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.NewID(row.OwnerID)
	if err != nil {
		return nil, err
	}
	var categoryID *kernel.ID
	if row.CategoryID != nil {
		cid, cidErr := kernel.NewID(*row.CategoryID)
		if cidErr != nil {
			return nil, cidErr
		}
		categoryID = &cid
	}
	return restaurant.RestoreRestaurant(
		id, row.Name, row.Address, row.CoverImage, ownerID, categoryID, row.IsPromoted, row.PromotedUntil,
	)
}
