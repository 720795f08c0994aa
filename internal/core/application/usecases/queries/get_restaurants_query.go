package queries

import (
	"errors"
	"math"
	"strings"

	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

// RestaurantsPageSize is the number of restaurants per listing page.
const RestaurantsPageSize = 25

var (
	ErrGetRestaurantsQueryIsNotConstructed = errors.New(
		"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
	)
)

// GetRestaurantsQuery pages through all restaurants, promoted ones first.
// A non-empty search keeps the restaurants whose name contains it, ignoring case.
type GetRestaurantsQuery struct {
	page   int
	search string

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery reads page, starting at 1, filtered by a trimmed
// name search. An empty search matches every restaurant.
func NewGetRestaurantsQuery(page int, search string) (GetRestaurantsQuery, error) {
	if err := validatePage(page); err != nil {
		return GetRestaurantsQuery{}, err
	}
	return GetRestaurantsQuery{
		page:   page,
		search: strings.TrimSpace(search),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

func (q GetRestaurantsQuery) Page() int      { return q.page }
func (q GetRestaurantsQuery) Search() string { return q.search }

// RestaurantsPage is one page of a restaurant listing.
type RestaurantsPage struct {
	Restaurants  []*restaurant.Restaurant
	TotalPages   int
	TotalResults int64
}

func validatePage(page int) error {
	if page < 1 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, math.MaxInt32)
	}
	return nil
}
