// Package http exposes the dispatch use cases over a REST API.
// Every route authenticates the caller through the X-Actor-ID header; the
// role checks themselves live in the domain services, not here.
package http

import (
	"errors"
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated caller's identifier.
// Authentication itself is handled upstream; the API trusts this header.
const actorHeader = "X-Actor-ID"

// Server implements the HTTP handlers for order dispatch.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler    commands.CreateOrderCommandHandler
	assignOrderHandler    commands.AssignOrderCommandHandler
	startWorkHandler      commands.StartWorkCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	modernizeOrderHandler commands.ModernizeOrderCommandHandler
	resumeOrderHandler    commands.ResumeOrderCommandHandler
	rejectOrderHandler    commands.RejectOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler

	// Query handlers
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler
	getActiveMastersHandler queries.GetActiveMastersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	startWorkHandler commands.StartWorkCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	modernizeOrderHandler commands.ModernizeOrderCommandHandler,
	resumeOrderHandler commands.ResumeOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getVisibleOrdersHandler queries.GetVisibleOrdersQueryHandler,
	getActiveMastersHandler queries.GetActiveMastersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		assignOrderHandler:      assignOrderHandler,
		startWorkHandler:        startWorkHandler,
		completeOrderHandler:    completeOrderHandler,
		modernizeOrderHandler:   modernizeOrderHandler,
		resumeOrderHandler:      resumeOrderHandler,
		rejectOrderHandler:      rejectOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		getVisibleOrdersHandler: getVisibleOrdersHandler,
		getActiveMastersHandler: getActiveMastersHandler,
	}
}

// RegisterRoutes binds the dispatch API onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/assign", s.AssignOrder)
	api.POST("/orders/:orderID/start", s.StartWork)
	api.POST("/orders/:orderID/complete", s.CompleteOrder)
	api.POST("/orders/:orderID/modernize", s.ModernizeOrder)
	api.POST("/orders/:orderID/resume", s.ResumeOrder)
	api.POST("/orders/:orderID/reject", s.RejectOrder)
	api.POST("/orders/:orderID/cancel", s.CancelOrder)

	api.GET("/masters", s.GetMasters)
}

// ErrorResponse is the uniform error body for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the intake payload for a new work order.
type CreateOrderRequest struct {
	ClientName  string  `json:"client_name"`
	ClientPhone string  `json:"client_phone"`
	Address     string  `json:"address"`
	Problem     string  `json:"problem"`
	CategoryID  *string `json:"category_id,omitempty"`
	Price       int64   `json:"price"`
	IsPremium   bool    `json:"is_premium"`
}

// CreateOrderResponse returns the identifier of the registered order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// AssignOrderRequest names the assignment target. An absent worker_id means
// the caller claims the order for themselves.
type AssignOrderRequest struct {
	WorkerID *string `json:"worker_id,omitempty"`
}

// CompleteOrderRequest carries the optional final price adjustment and the
// worker's private note. The note is intentionally never persisted.
type CompleteOrderRequest struct {
	FinalPrice  *int64 `json:"final_price,omitempty"`
	PrivateNote string `json:"private_note,omitempty"`
}

// CompleteOrderResponse reports the settlement split for the completed order.
type CompleteOrderResponse struct {
	Commission int64 `json:"commission"`
	Payout     int64 `json:"payout"`
}

// ModernizeOrderRequest carries the mandatory escalation reason.
type ModernizeOrderRequest struct {
	Reason string `json:"reason"`
}

// RejectOrderRequest carries the mandatory refusal reason and the callout fee
// the client still owes.
type RejectOrderRequest struct {
	Reason     string `json:"reason"`
	CalloutFee int64  `json:"callout_fee"`
}

// CancelOrderRequest carries the optional cancellation reason.
type CancelOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// OrderResponse is the order card returned by the board listing.
type OrderResponse struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	Address     string    `json:"address"`
	Problem     string    `json:"problem,omitempty"`
	CategoryID  *string   `json:"category_id,omitempty"`
	Price       int64     `json:"price"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
	WorkerID    *string   `json:"worker_id,omitempty"`
	IsPremium   bool      `json:"is_premium"`
	OnSite      bool      `json:"on_site"`
	CreatedAt   time.Time `json:"created_at"`
}

// MasterResponse is one row of the assignable master roster.
type MasterResponse struct {
	ID             string  `json:"id"`
	FullName       string  `json:"full_name"`
	Phone          string  `json:"phone,omitempty"`
	Role           string  `json:"role"`
	CommissionRate int     `json:"commission_rate"`
	CategoryID     *string `json:"category_id,omitempty"`
}

// GetOrders handles GET /api/v1/orders - lists the orders visible to the caller.
func (s *Server) GetOrders(ctx echo.Context) error {
	actorID, err := s.actingActorID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetVisibleOrdersQuery(actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.getVisibleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		var categoryID *string
		if o.CategoryID != nil {
			raw := o.CategoryID.String()
			categoryID = &raw
		}

		var workerID *string
		if o.WorkerID != nil {
			raw := o.WorkerID.String()
			workerID = &raw
		}

		response = append(response, OrderResponse{
			ID:          o.ID.String(),
			ClientName:  o.ClientName,
			ClientPhone: o.ClientPhone,
			Address:     o.Address,
			Problem:     o.Problem,
			CategoryID:  categoryID,
			Price:       o.Price.Amount(),
			Status:      o.Status.String(),
			Reason:      o.Reason,
			WorkerID:    workerID,
			IsPremium:   o.IsPremium,
			OnSite:      o.OnSite,
			CreatedAt:   o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - registers a new work order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actorID, err := s.actingActorID(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	categoryID, err := s.optionalUUID(req.CategoryID)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID,
		actorID,
		req.ClientName,
		req.ClientPhone,
		req.Address,
		req.Problem,
		categoryID,
		price,
		req.IsPremium,
	)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// AssignOrder handles POST /api/v1/orders/:orderID/assign - assigns or claims a pending order.
func (s *Server) AssignOrder(ctx echo.Context) error {
	actorID, orderID, err := s.actorAndOrder(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req AssignOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	workerID, err := s.optionalUUID(req.WorkerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignOrderCommand(orderID, actorID, workerID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartWork handles POST /api/v1/orders/:orderID/start - marks the worker on site.
func (s *Server) StartWork(ctx echo.Context) error {
	actorID, orderID, err := s.actorAndOrder(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewStartWorkCommand(orderID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.startWorkHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:orderID/complete - settles the order.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	actorID, orderID, err := s.actorAndOrder(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req CompleteOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	var finalPrice *kernel.Money
	if req.FinalPrice != nil {
		price, priceErr := kernel.NewMoney(*req.FinalPrice)
		if priceErr != nil {
			return s.fail(ctx, priceErr)
		}
		finalPrice = &price
	}

	cmd, err := commands.NewCompleteOrderCommand(orderID, actorID, finalPrice, req.PrivateNote)
	if err != nil {
		return s.fail(ctx, err)
	}

	breakdown, err := s.completeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CompleteOrderResponse{
		Commission: breakdown.Commission.Amount(),
		Payout:     breakdown.Payout.Amount(),
	})
}

// ModernizeOrder handles POST /api/v1/orders/:orderID/modernize - parks the order pending rework approval.
func (s *Server) ModernizeOrder(ctx echo.Context) error {
	actorID, orderID, err := s.actorAndOrder(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req ModernizeOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewModernizeOrderCommand(orderID, actorID, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.modernizeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ResumeOrder handles POST /api/v1/orders/:orderID/resume - returns a parked order to work.
func (s *Server) ResumeOrder(ctx echo.Context) error {
	actorID, orderID, err := s.actorAndOrder(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewResumeOrderCommand(orderID, actorID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.resumeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:orderID/reject - refuses the order with a callout fee.
func (s *Server) RejectOrder(ctx echo.Context) error {
	actorID, orderID, err := s.actorAndOrder(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req RejectOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	fee, err := kernel.NewMoney(req.CalloutFee)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRejectOrderCommand(orderID, actorID, req.Reason, fee)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel - withdraws the order from the board.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actorID, orderID, err := s.actorAndOrder(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	var req CancelOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return s.badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorID, req.Reason)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetMasters handles GET /api/v1/masters - lists the assignable master roster.
func (s *Server) GetMasters(ctx echo.Context) error {
	if _, err := s.actingActorID(ctx); err != nil {
		return s.fail(ctx, err)
	}

	query := queries.NewGetActiveMastersQuery()

	masters, err := s.getActiveMastersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]MasterResponse, 0, len(masters))
	for _, m := range masters {
		var categoryID *string
		if m.CategoryID != nil {
			raw := m.CategoryID.String()
			categoryID = &raw
		}

		response = append(response, MasterResponse{
			ID:             m.ID.String(),
			FullName:       m.FullName,
			Phone:          m.Phone,
			Role:           m.Role.String(),
			CommissionRate: m.CommissionRate,
			CategoryID:     categoryID,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// actingActorID extracts and validates the caller's identity header.
func (s *Server) actingActorID(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(actorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(actorHeader)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(actorHeader, err)
	}

	return id, nil
}

// actorAndOrder extracts the caller identity and the order path parameter.
func (s *Server) actorAndOrder(ctx echo.Context) (kernel.UUID, kernel.UUID, error) {
	actorID, err := s.actingActorID(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}

	return actorID, orderID, nil
}

// optionalUUID parses an optional UUID string from a request body.
func (s *Server) optionalUUID(raw *string) (*kernel.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	id, err := kernel.UUIDFromString(*raw)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", err)
	}

	return &id, nil
}

// fail translates domain errors into the API's status code taxonomy.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, services.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, order.ErrAlreadyAssigned):
		code = http.StatusConflict
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrInvalidPayload):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrPersistenceFailure):
		code = http.StatusBadGateway
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func (s *Server) badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
