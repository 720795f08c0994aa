package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(c echo.Context) error {
	page, err := pageParam(c)
	if err != nil {
		return s.fail(c, err)
	}
	var search string
	if err = runtime.BindQueryParameter("form", true, false, "query", c.QueryParams(), &search); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid parameter query"))
	}

	query, err := queries.NewGetRestaurantsQuery(page, search)
	if err != nil {
		return s.fail(c, err)
	}

	res, err := s.handlers.GetRestaurants.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toRestaurantsOutput(res))
}

// EditRestaurant handles PATCH /api/v1/restaurants/{id}.
func (s *Server) EditRestaurant(c echo.Context) error {
	restaurantID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var in EditRestaurantInput
	if err = c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	cmd, err := commands.NewEditRestaurantCommand(actorOf(c), restaurantID,
		in.Name, in.Address, in.CoverImage, in.CategoryName)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.handlers.EditRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/{id}.
func (s *Server) DeleteRestaurant(c echo.Context) error {
	restaurantID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteRestaurantCommand(actorOf(c), restaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

// EditDish handles PATCH /api/v1/dishes/{id}.
func (s *Server) EditDish(c echo.Context) error {
	dishID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var in EditDishInput
	if err = c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}
	changes, err := in.changes()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewEditDishCommand(actorOf(c), dishID, changes)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.handlers.EditDish.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

// GetCategories handles GET /api/v1/categories.
func (s *Server) GetCategories(c echo.Context) error {
	res, err := s.handlers.GetCategories.Handle(c.Request().Context(), queries.GetCategoriesQuery{})
	if err != nil {
		return s.fail(c, err)
	}

	out := CategoriesOutput{CoreOutput: success(), Categories: make([]CategoryDTO, 0, len(res))}
	for _, item := range res {
		dto := toCategoryDTO(item.Category)
		count := item.RestaurantCount
		dto.RestaurantCount = &count
		out.Categories = append(out.Categories, dto)
	}
	return c.JSON(http.StatusOK, out)
}

// GetCategory handles GET /api/v1/categories/{slug}.
func (s *Server) GetCategory(c echo.Context) error {
	var slug string
	err := runtime.BindStyledParameterWithOptions("simple", "slug", c.Param("slug"), &slug,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("slug", err))
	}
	page, err := pageParam(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetCategoryQuery(slug, page)
	if err != nil {
		return s.fail(c, err)
	}

	res, err := s.handlers.GetCategory.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	category := toCategoryDTO(res.Category)
	return c.JSON(http.StatusOK, CategoryOutput{
		RestaurantsOutput: toRestaurantsOutput(res.RestaurantsPage),
		Category:          &category,
	})
}

// pageParam binds the optional page query parameter. Pages start at 1.
func pageParam(c echo.Context) (int, error) {
	page := 1
	if err := runtime.BindQueryParameter("form", true, false, "page", c.QueryParams(), &page); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("page", err)
	}
	return page, nil
}
