package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List every archived order, newest first
	// (GET /api/v1/history)
	GetGlobalHistory(ctx echo.Context) error
	// Confirm a checkout and start tracking the order
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context, params UserParams) error
	// Read the current order of the user
	// (GET /api/v1/orders/current)
	GetCurrentOrder(ctx echo.Context, params UserParams) error
	// Rate the delivered current order
	// (POST /api/v1/orders/current/rating)
	RateOrder(ctx echo.Context, params UserParams) error
	// Drain pending notifications and the delivery celebration
	// (GET /api/v1/orders/current/signals)
	GetSignals(ctx echo.Context, params UserParams) error
	// Cancel every pending transition of the user's tracker
	// (DELETE /api/v1/orders/current/tracking)
	StopTracking(ctx echo.Context, params UserParams) error
	// Resume tracking of the stored current order
	// (POST /api/v1/orders/current/tracking)
	StartTracking(ctx echo.Context, params UserParams) error
	// List the user's archived orders, newest first
	// (GET /api/v1/users/{userId}/history)
	GetUserHistory(ctx echo.Context, userId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetGlobalHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetGlobalHistory(ctx echo.Context) error {
	return w.Handler.GetGlobalHistory(ctx)
}

// PlaceOrder converts echo context to params.
func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	params, err := bindUserParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PlaceOrder(ctx, params)
}

// GetCurrentOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetCurrentOrder(ctx echo.Context) error {
	params, err := bindUserParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetCurrentOrder(ctx, params)
}

// RateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) RateOrder(ctx echo.Context) error {
	params, err := bindUserParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RateOrder(ctx, params)
}

// GetSignals converts echo context to params.
func (w *ServerInterfaceWrapper) GetSignals(ctx echo.Context) error {
	params, err := bindUserParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetSignals(ctx, params)
}

// StopTracking converts echo context to params.
func (w *ServerInterfaceWrapper) StopTracking(ctx echo.Context) error {
	params, err := bindUserParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StopTracking(ctx, params)
}

// StartTracking converts echo context to params.
func (w *ServerInterfaceWrapper) StartTracking(ctx echo.Context) error {
	params, err := bindUserParams(ctx)
	if err != nil {
		return err
	}
	return w.Handler.StartTracking(ctx, params)
}

// GetUserHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetUserHistory(ctx echo.Context) error {
	var userId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "userId", ctx.Param("userId"), &userId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter userId: %s", err))
	}

	return w.Handler.GetUserHistory(ctx, userId)
}

func bindUserParams(ctx echo.Context) (UserParams, error) {
	var params UserParams

	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey("X-User-Id")]
	if !found {
		return params, echo.NewHTTPError(http.StatusBadRequest, "Header parameter X-User-Id is required, but not found")
	}
	if n := len(valueList); n != 1 {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for X-User-Id, got %d", n))
	}

	var userID XUserId
	err := runtime.BindStyledParameterWithOptions("simple", "X-User-Id", valueList[0], &userID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: true})
	if err != nil {
		return params, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter X-User-Id: %s", err))
	}

	params.XUserId = userID
	return params, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register
// handlers.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to
// the paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/history", wrapper.GetGlobalHistory)
	router.POST(baseURL+"/api/v1/orders", wrapper.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/current", wrapper.GetCurrentOrder)
	router.POST(baseURL+"/api/v1/orders/current/rating", wrapper.RateOrder)
	router.GET(baseURL+"/api/v1/orders/current/signals", wrapper.GetSignals)
	router.DELETE(baseURL+"/api/v1/orders/current/tracking", wrapper.StopTracking)
	router.POST(baseURL+"/api/v1/orders/current/tracking", wrapper.StartTracking)
	router.GET(baseURL+"/api/v1/users/:userId/history", wrapper.GetUserHistory)
}
