package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"storefront/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	legacyrouter "github.com/getkin/kin-openapi/routers/legacy"
	"github.com/labstack/echo/v4"
)

const apiPrefix = "/api/"

// Register mounts the health check, the swagger UI and the API on e. API requests are
// validated against the embedded OpenAPI document before they reach server.
func Register(e *echo.Echo, server *Server, logger *slog.Logger) error {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return err
	}
	validator, err := RequestValidator(swagger)
	if err != nil {
		return err
	}

	e.HTTPErrorHandler = ErrorHandler(logger)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	mountSwagger(e)

	e.Use(validator)
	servers.RegisterHandlers(e, server)
	return nil
}

// RequestValidator checks parameters and bodies of requests under /api/.
// Requests that match no documented operation are left to the router.
func RequestValidator(swagger *openapi3.T) (echo.MiddlewareFunc, error) {
	swagger.Servers = nil
	router, err := legacyrouter.NewRouter(swagger)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			if !strings.HasPrefix(req.URL.Path, apiPrefix) {
				return next(ctx)
			}

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, validationMessage(err))
			}
			return next(ctx)
		}
	}, nil
}

func validationMessage(err error) string {
	var multi openapi3.MultiError
	if !errors.As(err, &multi) || len(multi) == 0 {
		return err.Error()
	}

	parts := make([]string, 0, len(multi))
	for _, e := range multi {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}
