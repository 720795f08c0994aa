package queries

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var (
	ErrGetCategoryQueryIsNotConstructed = errors.New(
		"GetCategoryQuery must be created via NewGetCategoryQuery constructor",
	)
)

// GetCategoriesQuery lists every category. It carries no parameters.
type GetCategoriesQuery struct{}

// GetCategoriesQueryResponse is a category with the number of its restaurants.
type GetCategoriesQueryResponse struct {
	Category        restaurant.Category
	RestaurantCount int64
}

// GetCategoryQuery reads a category by slug with one page of its restaurants.
type GetCategoryQuery struct {
	slug string
	page int

	guard guard.ConstructorGuard
}

// NewGetCategoryQuery reads page, starting at 1, of the restaurants in the
// category with slug.
func NewGetCategoryQuery(slug string, page int) (GetCategoryQuery, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return GetCategoryQuery{}, errs.NewValueIsRequiredError("slug")
	}
	if err := validatePage(page); err != nil {
		return GetCategoryQuery{}, err
	}
	return GetCategoryQuery{slug: slug, page: page, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCategoryQueryIsNotConstructed)
}

func (q GetCategoryQuery) Slug() string { return q.slug }
func (q GetCategoryQuery) Page() int    { return q.page }

type GetCategoryQueryResponse struct {
	Category restaurant.Category
	RestaurantsPage
}
