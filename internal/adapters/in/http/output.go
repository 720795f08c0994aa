package http

import (
	"errors"
	"log/slog"
	"net/http"

	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const unexpectedErrorMessage = "unexpected error, please try again later"

// CoreOutput is embedded in every response body. Clients branch on Ok and
// never have to interpret the status code.
type CoreOutput struct {
	Ok    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func success() CoreOutput {
	return CoreOutput{Ok: true}
}

func failure(message string) CoreOutput {
	return CoreOutput{Ok: false, Error: message}
}

// statusOf maps an error kind to the HTTP status and the message shown to the
// client. Unknown errors are Unexpected and keep their details server side.
func statusOf(err error) (int, string, bool) {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error(), true
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden, err.Error(), true
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, err.Error(), true
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, err.Error(), true
	default:
		return http.StatusInternalServerError, unexpectedErrorMessage, false
	}
}

// fail writes err as a CoreOutput. Unexpected errors are logged.
func fail(c echo.Context, logger *slog.Logger, err error) error {
	status, message, known := statusOf(err)
	if !known {
		logger.ErrorContext(c.Request().Context(), "Request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
	}
	return c.JSON(status, failure(message))
}

// httpErrorHandler renders echo errors, including recovered panics, as CoreOutput.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			message := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok {
				message = m
			}
			_ = c.JSON(he.Code, failure(message))
			return
		}

		_ = fail(c, logger, err)
	}
}
