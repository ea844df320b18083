// Package http is the inbound HTTP adapter. It translates requests into
// commands and queries, resolves the calling actor from gateway headers,
// and maps core errors to HTTP statuses. No business rules live here.
package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/application/usecases/queries"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/travelorder"
	"travelorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler        commands.CreateTravelOrderCommandHandler
	updateOrderHandler        commands.UpdateTravelOrderCommandHandler
	changeStatusHandler       commands.ChangeTravelOrderStatusCommandHandler
	cancelOrderHandler        commands.CancelTravelOrderCommandHandler
	deleteOrderHandler        commands.DeleteTravelOrderCommandHandler
	markReadHandler           commands.MarkNotificationReadCommandHandler
	markAllReadHandler        commands.MarkAllNotificationsReadCommandHandler
	deleteNotificationHandler commands.DeleteNotificationCommandHandler

	// Query handlers
	getOrderHandler          queries.GetTravelOrderQueryHandler
	listOrdersHandler        queries.ListTravelOrdersQueryHandler
	listNotificationsHandler queries.ListNotificationsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateTravelOrderCommandHandler,
	updateOrderHandler commands.UpdateTravelOrderCommandHandler,
	changeStatusHandler commands.ChangeTravelOrderStatusCommandHandler,
	cancelOrderHandler commands.CancelTravelOrderCommandHandler,
	deleteOrderHandler commands.DeleteTravelOrderCommandHandler,
	markReadHandler commands.MarkNotificationReadCommandHandler,
	markAllReadHandler commands.MarkAllNotificationsReadCommandHandler,
	deleteNotificationHandler commands.DeleteNotificationCommandHandler,
	getOrderHandler queries.GetTravelOrderQueryHandler,
	listOrdersHandler queries.ListTravelOrdersQueryHandler,
	listNotificationsHandler queries.ListNotificationsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:        createOrderHandler,
		updateOrderHandler:        updateOrderHandler,
		changeStatusHandler:       changeStatusHandler,
		cancelOrderHandler:        cancelOrderHandler,
		deleteOrderHandler:        deleteOrderHandler,
		markReadHandler:           markReadHandler,
		markAllReadHandler:        markAllReadHandler,
		deleteNotificationHandler: deleteNotificationHandler,
		getOrderHandler:           getOrderHandler,
		listOrdersHandler:         listOrdersHandler,
		listNotificationsHandler:  listNotificationsHandler,
	}
}

// RegisterRoutes mounts every route on the given Echo instance. The actor
// middleware guards everything under /api; /health stays open for probes.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", ActorMiddleware())

	api.POST("/travel-orders", s.CreateTravelOrder)
	api.GET("/travel-orders", s.ListTravelOrders)
	api.GET("/travel-orders/:id", s.GetTravelOrder)
	api.PATCH("/travel-orders/:id", s.UpdateTravelOrder)
	api.DELETE("/travel-orders/:id", s.DeleteTravelOrder)
	api.PATCH("/travel-orders/:id/status", s.ChangeTravelOrderStatus)
	api.POST("/travel-orders/:id/cancel", s.CancelTravelOrder)

	api.GET("/notifications", s.ListNotifications)
	api.GET("/notifications/unread", s.ListUnreadNotifications)
	api.POST("/notifications/:id/read", s.MarkNotificationRead)
	api.POST("/notifications/read-all", s.MarkAllNotificationsRead)
	api.DELETE("/notifications/:id", s.DeleteNotification)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type travelOrderRequest struct {
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
}

func (r travelOrderRequest) tripDates() (travelorder.TripDates, error) {
	departure, err := time.Parse(time.DateOnly, r.DepartureDate)
	if err != nil {
		return travelorder.TripDates{}, errs.NewSingleFieldValidationError(
			"departure_date", "must be a date in YYYY-MM-DD format")
	}
	returning, err := time.Parse(time.DateOnly, r.ReturnDate)
	if err != nil {
		return travelorder.TripDates{}, errs.NewSingleFieldValidationError(
			"return_date", "must be a date in YYYY-MM-DD format")
	}
	return travelorder.NewTripDates(departure, returning)
}

// CreateTravelOrder handles POST /api/v1/travel-orders.
func (s *Server) CreateTravelOrder(ctx echo.Context) error {
	var request travelOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	actor := actorFromContext(ctx)

	dates, err := request.tripDates()
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateTravelOrderCommand(orderID, actor, request.Destination, dates)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID, actor)
}

// GetTravelOrder handles GET /api/v1/travel-orders/:id.
func (s *Server) GetTravelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actorFromContext(ctx))
}

// ListTravelOrders handles GET /api/v1/travel-orders.
func (s *Server) ListTravelOrders(ctx echo.Context) error {
	actor := actorFromContext(ctx)

	filters, err := parseListFilters(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewListTravelOrdersQuery(actor, filters)
	if err != nil {
		return writeError(ctx, err)
	}

	list, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTravelOrderList(list))
}

// UpdateTravelOrder handles PATCH /api/v1/travel-orders/:id.
func (s *Server) UpdateTravelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request travelOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	actor := actorFromContext(ctx)

	dates, err := request.tripDates()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateTravelOrderCommand(orderID, actor, request.Destination, dates)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

type changeStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// ChangeTravelOrderStatus handles PATCH /api/v1/travel-orders/:id/status.
func (s *Server) ChangeTravelOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request changeStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	target, err := travelorder.StatusFromString(request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	actor := actorFromContext(ctx)

	cmd, err := commands.NewChangeTravelOrderStatusCommand(orderID, actor, target, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

// CancelTravelOrder handles POST /api/v1/travel-orders/:id/cancel.
func (s *Server) CancelTravelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request cancelRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorBody{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	actor := actorFromContext(ctx)

	cmd, err := commands.NewCancelTravelOrderCommand(orderID, actor, request.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, orderID, actor)
}

// DeleteTravelOrder handles DELETE /api/v1/travel-orders/:id.
func (s *Server) DeleteTravelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteTravelOrderCommand(orderID, actorFromContext(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListNotifications handles GET /api/v1/notifications.
func (s *Server) ListNotifications(ctx echo.Context) error {
	return s.respondWithNotifications(ctx, queries.NewListNotificationsQuery)
}

// ListUnreadNotifications handles GET /api/v1/notifications/unread.
func (s *Server) ListUnreadNotifications(ctx echo.Context) error {
	return s.respondWithNotifications(ctx, queries.NewUnreadNotificationsQuery)
}

func (s *Server) respondWithNotifications(
	ctx echo.Context,
	newQuery func(kernel.UUID, int) (queries.ListNotificationsQuery, error),
) error {
	actor := actorFromContext(ctx)

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return writeError(ctx, errs.NewSingleFieldValidationError("limit", "must be an integer"))
		}
		limit = parsed
	}

	query, err := newQuery(actor.ID(), limit)
	if err != nil {
		return writeError(ctx, err)
	}

	list, err := s.listNotificationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toNotificationList(list))
}

// MarkNotificationRead handles POST /api/v1/notifications/:id/read.
func (s *Server) MarkNotificationRead(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkNotificationReadCommand(notificationID, actorFromContext(ctx).ID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkAllNotificationsRead handles POST /api/v1/notifications/read-all.
func (s *Server) MarkAllNotificationsRead(ctx echo.Context) error {
	cmd, err := commands.NewMarkAllNotificationsReadCommand(actorFromContext(ctx).ID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markAllReadHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteNotification handles DELETE /api/v1/notifications/:id.
func (s *Server) DeleteNotification(ctx echo.Context) error {
	notificationID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteNotificationCommand(notificationID, actorFromContext(ctx).ID())
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deleteNotificationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// respondWithOrder reads the order back through the query side and writes it
// with the given status. Commands return no data; the read model is the
// single source of response bodies.
func (s *Server) respondWithOrder(
	ctx echo.Context, status int, orderID kernel.UUID, actor kernel.Actor,
) error {
	query, err := queries.NewGetTravelOrderQuery(orderID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	order, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, toTravelOrder(order))
}

// parseListFilters extracts the list filter set from query parameters.
func parseListFilters(ctx echo.Context) (queries.ListTravelOrdersFilters, error) {
	var filters queries.ListTravelOrdersFilters

	if raw := ctx.QueryParam("status"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			status, err := travelorder.StatusFromString(strings.TrimSpace(name))
			if err != nil {
				return filters, err
			}
			filters.Statuses = append(filters.Statuses, status)
		}
	}

	filters.Destination = ctx.QueryParam("destination")

	if raw := ctx.QueryParam("owner_id"); raw != "" {
		ownerID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return filters, err
		}
		filters.OwnerID = ownerID
	}

	bounds := []struct {
		param  string
		target **time.Time
	}{
		{"departure_from", &filters.DepartureFrom},
		{"departure_to", &filters.DepartureTo},
		{"return_from", &filters.ReturnFrom},
		{"return_to", &filters.ReturnTo},
		{"created_from", &filters.CreatedFrom},
		{"created_to", &filters.CreatedTo},
	}
	for _, bound := range bounds {
		raw := ctx.QueryParam(bound.param)
		if raw == "" {
			continue
		}
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return filters, errs.NewSingleFieldValidationError(
				bound.param, "must be a date in YYYY-MM-DD format")
		}
		*bound.target = &parsed
	}

	filters.SortBy = ctx.QueryParam("sort_by")
	filters.SortAscending = ctx.QueryParam("sort_dir") == "asc"

	for _, p := range []struct {
		param  string
		target *int
	}{
		{"page", &filters.Page},
		{"per_page", &filters.PerPage},
	} {
		raw := ctx.QueryParam(p.param)
		if raw == "" {
			continue
		}
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errs.NewSingleFieldValidationError(p.param, "must be an integer")
		}
		*p.target = parsed
	}

	return filters, nil
}
