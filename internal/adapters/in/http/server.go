package http

import (
	"log/slog"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	placeOrderHandler   commands.PlaceOrderCommandHandler
	trackOrderHandler   commands.TrackOrderCommandHandler
	rateOrderHandler    commands.RateOrderCommandHandler
	stopTrackingHandler commands.StopTrackingCommandHandler

	// Query handlers
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler
	getSignalsHandler      queries.GetSignalsQueryHandler

	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	placeOrderHandler commands.PlaceOrderCommandHandler,
	trackOrderHandler commands.TrackOrderCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	stopTrackingHandler commands.StopTrackingCommandHandler,
	getCurrentOrderHandler queries.GetCurrentOrderQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getSignalsHandler queries.GetSignalsQueryHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		placeOrderHandler:      placeOrderHandler,
		trackOrderHandler:      trackOrderHandler,
		rateOrderHandler:       rateOrderHandler,
		stopTrackingHandler:    stopTrackingHandler,
		getCurrentOrderHandler: getCurrentOrderHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		getSignalsHandler:      getSignalsHandler,
		logger:                 logger.With("component", "http_server"),
	}
}

// PlaceOrder handles POST /api/v1/orders - confirms a checkout.
func (s *Server) PlaceOrder(ctx echo.Context, params servers.UserParams) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	user, err := userKeyOf(params.XUserId)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}

	cmd, err := toPlaceOrderCommand(user, body)
	if err != nil {
		return s.fail(ctx, err, "Invalid order data")
	}

	number, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, servers.PlacedOrder{OrderNumber: number})
}

// GetCurrentOrder handles GET /api/v1/orders/current - reads the tracking view.
func (s *Server) GetCurrentOrder(ctx echo.Context, params servers.UserParams) error {
	user, err := userKeyOf(params.XUserId)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}
	query, err := queries.NewGetCurrentOrderQuery(user)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}

	current, err := s.getCurrentOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve current order")
	}

	return ctx.JSON(http.StatusOK, servers.CurrentOrder{
		Order:            toOrder(current.Order),
		ShowRatingPrompt: current.ShowRatingPrompt,
		Tracking:         current.Tracking,
	})
}

// StartTracking handles POST /api/v1/orders/current/tracking - resumes tracking
// on page load. A 404 tells the page to leave.
func (s *Server) StartTracking(ctx echo.Context, params servers.UserParams) error {
	user, err := userKeyOf(params.XUserId)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}
	cmd, err := commands.NewTrackOrderCommand(user)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}

	result, err := s.trackOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to track order")
	}

	return ctx.JSON(http.StatusOK, servers.CurrentOrder{
		Order:            toOrder(result.Order),
		ShowRatingPrompt: result.ShowRatingPrompt,
		Tracking:         result.Tracking,
	})
}

// StopTracking handles DELETE /api/v1/orders/current/tracking - view teardown.
func (s *Server) StopTracking(ctx echo.Context, params servers.UserParams) error {
	user, err := userKeyOf(params.XUserId)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}
	cmd, err := commands.NewStopTrackingCommand(user)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}

	stopped, err := s.stopTrackingHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to stop tracking")
	}

	return ctx.JSON(http.StatusOK, servers.TrackingStopped{Stopped: stopped})
}

// RateOrder handles POST /api/v1/orders/current/rating.
func (s *Server) RateOrder(ctx echo.Context, params servers.UserParams) error {
	var body servers.RateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	user, err := userKeyOf(params.XUserId)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}

	cmd, err := commands.NewRateOrderCommand(user, body.Rating)
	if err != nil {
		return s.fail(ctx, err, "Invalid rating")
	}

	applied, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to rate order")
	}

	return ctx.JSON(http.StatusOK, servers.RatingResult{Applied: applied})
}

// GetSignals handles GET /api/v1/orders/current/signals - drains toasts and
// the one-shot celebration.
func (s *Server) GetSignals(ctx echo.Context, params servers.UserParams) error {
	user, err := userKeyOf(params.XUserId)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}
	query, err := queries.NewGetSignalsQuery(user)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}

	signals, err := s.getSignalsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve signals")
	}

	return ctx.JSON(http.StatusOK, toSignals(signals))
}

// GetUserHistory handles GET /api/v1/users/{userId}/history.
func (s *Server) GetUserHistory(ctx echo.Context, userID openapi_types.UUID) error {
	user, err := userKeyOf(userID)
	if err != nil {
		return s.fail(ctx, err, "Invalid user")
	}
	return s.history(ctx, queries.NewGetOrderHistoryQuery(user))
}

// GetGlobalHistory handles GET /api/v1/history.
func (s *Server) GetGlobalHistory(ctx echo.Context) error {
	return s.history(ctx, queries.NewGetGlobalHistoryQuery())
}

func (s *Server) history(ctx echo.Context, query queries.GetOrderHistoryQuery) error {
	history, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve order history")
	}

	response := servers.History{Orders: make([]servers.Order, len(history.Orders))}
	for i, o := range history.Orders {
		response.Orders[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// userKeyOf accepts the identifiers issued by the auth provider. The nil UUID
// is not one of them.
func userKeyOf(id openapi_types.UUID) (string, error) {
	user, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return "", err
	}
	return user.String(), nil
}
