package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UserIDHeader carries the id of the user authenticated upstream.
const UserIDHeader = "X-User-Id"

const actorContextKey = "actor"

// UserReader resolves the authenticated user.
type UserReader interface {
	Get(ctx context.Context, id kernel.ID) (*user.User, error)
}

// requireActor resolves the acting user from UserIDHeader and stores it in
// the echo context. Requests without a known user get 401.
func requireActor(users UserReader, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(UserIDHeader)
			if raw == "" {
				return c.JSON(http.StatusUnauthorized, failure("authentication required"))
			}

			id, err := kernel.IDFromString(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, failure("invalid "+UserIDHeader+" header"))
			}

			u, err := users.Get(c.Request().Context(), id)
			if errors.Is(err, errs.ErrObjectNotFound) {
				return c.JSON(http.StatusUnauthorized, failure("unknown user"))
			}
			if err != nil {
				return fail(c, logger, err)
			}

			actor, err := u.Actor()
			if err != nil {
				return fail(c, logger, err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// actorOf returns the actor stored by requireActor.
func actorOf(c echo.Context) user.Actor {
	actor, _ := c.Get(actorContextKey).(user.Actor)
	return actor
}
