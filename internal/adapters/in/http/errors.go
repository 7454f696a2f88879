package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/generated/servers"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps use case errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrNoCurrentOrder),
		errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrOrderNotSaved):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error, message string) error {
	code := statusOf(err)
	if code >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
	}
	if code < http.StatusInternalServerError {
		message = message + ": " + err.Error()
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// ErrorHandler renders errors that escaped the handlers, such as routing or
// request validation failures, in the API error shape.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprint(httpErr.Message)
		} else {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled request error", "path", ctx.Path(), "error", err)
		}

		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", err)
		}
	}
}
