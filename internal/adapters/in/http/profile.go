package http

import (
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetUser handles GET /api/v1/users/{id}.
func (s *Server) GetUser(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}
	return s.renderUser(c, userID)
}

// GetProfile handles GET /api/v1/profile.
func (s *Server) GetProfile(c echo.Context) error {
	return s.renderUser(c, actorOf(c).ID())
}

// EditProfile handles PATCH /api/v1/profile.
func (s *Server) EditProfile(c echo.Context) error {
	var in EditProfileInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	cmd, err := commands.NewEditProfileCommand(actorOf(c), in.Email, in.Password)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.handlers.EditProfile.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

func (s *Server) renderUser(c echo.Context, userID kernel.ID) error {
	query, err := queries.NewGetUserQuery(userID)
	if err != nil {
		return s.fail(c, err)
	}

	u, err := s.handlers.GetUser.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, UserOutput{CoreOutput: success(), User: toUserDTO(u)})
}
