// Package http provides the inbound HTTP adapter. Handlers translate JSON
// requests into commands and queries and map domain errors onto the HTTP
// status taxonomy.
package http

import (
	"errors"
	"net/http"
	"time"

	"replenishment/internal/core/application/usecases/commands"
	"replenishment/internal/core/application/usecases/queries"
	"replenishment/internal/core/domain/model/kernel"
	"replenishment/internal/core/domain/model/order"
	"replenishment/internal/core/domain/services"
	"replenishment/internal/pkg/errs"
	"replenishment/internal/pkg/opguard"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	markPickedHandler      commands.MarkPickedCommandHandler
	dispatchOrderHandler   commands.DispatchOrderCommandHandler
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler
	returnOrderHandler     commands.ReturnOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler

	getPendingOrdersHandler       queries.GetPendingOrdersQueryHandler
	getClientReplenishmentHandler queries.GetClientReplenishmentQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	markPickedHandler commands.MarkPickedCommandHandler,
	dispatchOrderHandler commands.DispatchOrderCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	returnOrderHandler commands.ReturnOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getPendingOrdersHandler queries.GetPendingOrdersQueryHandler,
	getClientReplenishmentHandler queries.GetClientReplenishmentQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:            createOrderHandler,
		markPickedHandler:             markPickedHandler,
		dispatchOrderHandler:          dispatchOrderHandler,
		confirmDeliveryHandler:        confirmDeliveryHandler,
		returnOrderHandler:            returnOrderHandler,
		cancelOrderHandler:            cancelOrderHandler,
		getPendingOrdersHandler:       getPendingOrdersHandler,
		getClientReplenishmentHandler: getClientReplenishmentHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/pending", s.GetPendingOrders)
	api.POST("/orders/:id/pick", s.MarkPicked)
	api.POST("/orders/:id/dispatch", s.DispatchOrder)
	api.POST("/orders/:id/deliver", s.ConfirmDelivery)
	api.POST("/orders/:id/return", s.ReturnOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.GET("/clients/:id/replenishment", s.GetClientReplenishment)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	clientID, err := kernel.UUIDFromString(req.ClientID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid client id: "+err.Error())
	}

	orderType := order.Special
	if req.OrderType != "" {
		orderType, err = parseOrderType(req.OrderType)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, err.Error())
		}
	}

	scheduledDate := time.Now().UTC()
	if req.ScheduledDate != "" {
		scheduledDate, err = time.Parse("2006-01-02", req.ScheduledDate)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "invalid scheduled date: "+err.Error())
		}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, clientID, req.TotalUnits, orderType, scheduledDate)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// MarkPicked handles POST /api/v1/orders/:id/pick.
func (s *Server) MarkPicked(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewMarkPickedCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.markPickedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrder handles POST /api/v1/orders/:id/dispatch.
func (s *Server) DispatchOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	cmd, err := commands.NewDispatchOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.dispatchOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmDelivery handles POST /api/v1/orders/:id/deliver.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	var req ConfirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	deliveredAt := time.Now().UTC()
	if req.DeliveredAt != "" {
		deliveredAt, err = time.Parse(time.RFC3339, req.DeliveredAt)
		if err != nil {
			return errorResponse(ctx, http.StatusBadRequest, "invalid delivered at: "+err.Error())
		}
	}

	deliveredByProduct := make(map[kernel.UUID]int, len(req.Items))
	for _, item := range req.Items {
		productID, itemErr := kernel.UUIDFromString(item.ProductID)
		if itemErr != nil {
			return errorResponse(ctx, http.StatusBadRequest, "invalid product id: "+itemErr.Error())
		}
		deliveredByProduct[productID] = item.Quantity
	}

	cmd, err := commands.NewConfirmDeliveryCommand(orderID, deliveredAt, deliveredByProduct)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReturnOrder handles POST /api/v1/orders/:id/return.
func (s *Server) ReturnOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	var req ReturnOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewReturnOrderCommand(orderID, req.Reason)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.returnOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid order id: "+err.Error())
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Note)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPendingOrders handles GET /api/v1/orders/pending.
func (s *Server) GetPendingOrders(ctx echo.Context) error {
	query := queries.NewGetPendingOrdersQuery()

	orders, err := s.getPendingOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := make([]PendingOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = PendingOrderResponse{
			ID:                  o.ID.String(),
			ClientID:            o.ClientID.String(),
			OrderType:           o.OrderType.String(),
			Status:              o.Status.String(),
			Substatus:           o.Substatus.String(),
			RequestedTotalUnits: o.RequestedTotalUnits,
			ScheduledDate:       o.ScheduledDate.Format("2006-01-02"),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetClientReplenishment handles GET /api/v1/clients/:id/replenishment.
func (s *Server) GetClientReplenishment(ctx echo.Context) error {
	clientID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid client id: "+err.Error())
	}

	query, err := queries.NewGetClientReplenishmentQuery(clientID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	}

	result, err := s.getClientReplenishmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	response := ClientReplenishmentResponse{
		ClientID:                result.ClientID.String(),
		Name:                    result.Name,
		StandardQuantity:        result.StandardQuantity,
		StandardPeriodicityDays: result.StandardPeriodicityDays,
		Active:                  result.Active,
	}
	if result.LastEffectiveDeliveryDate != nil {
		last := result.LastEffectiveDeliveryDate.Format(time.RFC3339)
		response.LastEffectiveDeliveryDate = &last
	}
	if result.NextDueDate != nil {
		next := result.NextDueDate.Format(time.RFC3339)
		response.NextDueDate = &next
	}

	return ctx.JSON(http.StatusOK, response)
}

// domainError maps domain errors onto HTTP status codes:
// conflicting lifecycle operations are 409, business rules that reject an
// otherwise well-formed request are 422, missing aggregates are 404, and
// malformed input is 400.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, opguard.ErrOperationInProgress):
		return errorResponse(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, order.ErrInsufficientStock),
		errors.Is(err, services.ErrUnallocatableOrder):
		return errorResponse(ctx, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "internal error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func parseOrderType(s string) (order.Type, error) {
	switch s {
	case "Standard":
		return order.Standard, nil
	case "Changed":
		return order.Changed, nil
	case "Special":
		return order.Special, nil
	default:
		return order.TypeUnknown, errors.New("invalid order type: " + s)
	}
}
