// Package http exposes the supply chain over a REST surface. The caller is
// identified by the X-Caller-Id header on every state-changing route; this
// deployment trusts its edge proxy to authenticate that header.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// CallerHeader carries the caller identity on every request that needs one.
const CallerHeader = "X-Caller-Id"

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	updateWalletHandler   commands.UpdateCompanyWalletCommandHandler
	addEmployeeHandler    commands.AddEmployeeCommandHandler
	removeEmployeeHandler commands.RemoveEmployeeCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler
	prepareOrderHandler   commands.PrepareOrderCommandHandler
	readyOrderHandler     commands.ReadyOrderCommandHandler
	deliverOrderHandler   commands.DeliverOrderCommandHandler
	completeOrderHandler  commands.CompleteOrderCommandHandler
	cancelOrderHandler    commands.CancelOrderCommandHandler

	// Query handlers
	getOrderHandler       queries.GetOrderQueryHandler
	getOrderStatusHandler queries.GetOrderStatusQueryHandler
	getEmployeeHandler    queries.GetEmployeeQueryHandler
	getOwnerHandler       queries.GetOwnerQueryHandler
	getWalletHandler      queries.GetCompanyWalletQueryHandler
	getBalanceHandler     queries.GetBalanceQueryHandler
	listEventsHandler     queries.ListEventsQueryHandler
	getStatsHandler       queries.GetPipelineStatsQueryHandler
}

// NewServer creates the HTTP server with the required command and query handlers.
func NewServer(
	updateWalletHandler commands.UpdateCompanyWalletCommandHandler,
	addEmployeeHandler commands.AddEmployeeCommandHandler,
	removeEmployeeHandler commands.RemoveEmployeeCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	prepareOrderHandler commands.PrepareOrderCommandHandler,
	readyOrderHandler commands.ReadyOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	completeOrderHandler commands.CompleteOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getEmployeeHandler queries.GetEmployeeQueryHandler,
	getOwnerHandler queries.GetOwnerQueryHandler,
	getWalletHandler queries.GetCompanyWalletQueryHandler,
	getBalanceHandler queries.GetBalanceQueryHandler,
	listEventsHandler queries.ListEventsQueryHandler,
	getStatsHandler queries.GetPipelineStatsQueryHandler,
) *Server {
	return &Server{
		updateWalletHandler:   updateWalletHandler,
		addEmployeeHandler:    addEmployeeHandler,
		removeEmployeeHandler: removeEmployeeHandler,
		placeOrderHandler:     placeOrderHandler,
		prepareOrderHandler:   prepareOrderHandler,
		readyOrderHandler:     readyOrderHandler,
		deliverOrderHandler:   deliverOrderHandler,
		completeOrderHandler:  completeOrderHandler,
		cancelOrderHandler:    cancelOrderHandler,
		getOrderHandler:       getOrderHandler,
		getOrderStatusHandler: getOrderStatusHandler,
		getEmployeeHandler:    getEmployeeHandler,
		getOwnerHandler:       getOwnerHandler,
		getWalletHandler:      getWalletHandler,
		getBalanceHandler:     getBalanceHandler,
		listEventsHandler:     listEventsHandler,
		getStatsHandler:       getStatsHandler,
	}
}

// RegisterRoutes mounts every route on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")

	api.POST("/company-wallet", s.UpdateCompanyWallet)
	api.GET("/company-wallet", s.GetCompanyWallet)
	api.GET("/owner", s.GetOwner)

	api.POST("/employees", s.AddEmployee)
	api.DELETE("/employees/:id", s.RemoveEmployee)
	api.GET("/employees/:id", s.GetEmployee)

	api.POST("/orders", s.PlaceOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/:id/status", s.GetOrderStatus)
	api.POST("/orders/:id/prepare", s.PrepareOrder)
	api.POST("/orders/:id/ready", s.ReadyOrder)
	api.POST("/orders/:id/deliver", s.DeliverOrder)
	api.POST("/orders/:id/complete", s.CompleteOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)

	api.GET("/balances/:id", s.GetBalance)
	api.GET("/events", s.ListEvents)
	api.GET("/stats", s.GetPipelineStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// caller extracts the caller identity from the request header.
func caller(ctx echo.Context) (kernel.Identity, error) {
	raw := ctx.Request().Header.Get(CallerHeader)
	if raw == "" {
		return kernel.Identity{}, errs.NewValidationErrorWithCause("caller",
			errors.New("missing "+CallerHeader+" header"))
	}
	return kernel.IdentityFromString(raw)
}

// orderID parses the :id path parameter.
func orderID(ctx echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return 0, errs.NewValidationErrorWithCause("id", err)
	}
	return id, nil
}

// writeError maps an application error onto the HTTP status taxonomy.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrUnauthorized):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrTransferFailed):
		code = http.StatusBadGateway
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, kernel.ErrIdentityIsNotConstructed):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}

// UpdateCompanyWallet handles POST /api/v1/company-wallet.
func (s *Server) UpdateCompanyWallet(ctx echo.Context) error {
	actor, err := caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Wallet string `json:"wallet"`
	}
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	// The wallet string goes through unparsed on failure: a malformed
	// wallet must still be rejected only after the ownership check.
	wallet, _ := kernel.IdentityFromString(body.Wallet)

	cmd, err := commands.NewUpdateCompanyWalletCommand(actor, wallet)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateWalletHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCompanyWallet handles GET /api/v1/company-wallet. Owner only.
func (s *Server) GetCompanyWallet(ctx echo.Context) error {
	actor, err := caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCompanyWalletQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getWalletHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOwner handles GET /api/v1/owner.
func (s *Server) GetOwner(ctx echo.Context) error {
	resp, err := s.getOwnerHandler.Handle(ctx.Request().Context(), queries.NewGetOwnerQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// AddEmployee handles POST /api/v1/employees.
func (s *Server) AddEmployee(ctx echo.Context) error {
	actor, err := caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Identity string `json:"identity"`
		Role     string `json:"role"`
	}
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	employee, _ := kernel.IdentityFromString(body.Identity)

	cmd, err := commands.NewAddEmployeeCommand(actor, employee, body.Role)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveEmployee handles DELETE /api/v1/employees/:id.
func (s *Server) RemoveEmployee(ctx echo.Context) error {
	actor, err := caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	employee, _ := kernel.IdentityFromString(ctx.Param("id"))

	cmd, err := commands.NewRemoveEmployeeCommand(actor, employee)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.removeEmployeeHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEmployee handles GET /api/v1/employees/:id.
func (s *Server) GetEmployee(ctx echo.Context) error {
	identity, err := kernel.IdentityFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetEmployeeQuery(identity)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getEmployeeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// PlaceOrder handles POST /api/v1/orders. The amount in the body is the
// value escrowed for the order.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	actor, err := caller(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Amount string `json:"amount"`
	}
	if err = ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	amount, err := kernel.AmountFromString(body.Amount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPlaceOrderCommand(actor, amount)
	if err != nil {
		return writeError(ctx, err)
	}

	id, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]uint64{"id": id})
}

// PrepareOrder handles POST /api/v1/orders/:id/prepare.
func (s *Server) PrepareOrder(ctx echo.Context) error {
	actor, id, err := callerAndOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPrepareOrderCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.prepareOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReadyOrder handles POST /api/v1/orders/:id/ready.
func (s *Server) ReadyOrder(ctx echo.Context) error {
	actor, id, err := callerAndOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReadyOrderCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.readyOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/orders/:id/deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	actor, id, err := callerAndOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	actor, id, err := callerAndOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteOrderCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	actor, id, err := callerAndOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(actor, id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderHandler.Handle(ctx.Request().Context(), queries.NewGetOrderQuery(id))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetOrderStatus handles GET /api/v1/orders/:id/status. Unknown ids are
// 200 with status NOT_EXISTS, never 404.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	id, err := orderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), queries.NewGetOrderStatusQuery(id))
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetBalance handles GET /api/v1/balances/:id.
func (s *Server) GetBalance(ctx echo.Context) error {
	identity, err := kernel.IdentityFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetBalanceQuery(identity)
	if err != nil {
		return writeError(ctx, err)
	}

	resp, err := s.getBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// ListEvents handles GET /api/v1/events.
func (s *Server) ListEvents(ctx echo.Context) error {
	resp, err := s.listEventsHandler.Handle(ctx.Request().Context(), queries.NewListEventsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

// GetPipelineStats handles GET /api/v1/stats.
func (s *Server) GetPipelineStats(ctx echo.Context) error {
	resp, err := s.getStatsHandler.Handle(ctx.Request().Context(), queries.NewGetPipelineStatsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, resp)
}

func callerAndOrderID(ctx echo.Context) (kernel.Identity, uint64, error) {
	actor, err := caller(ctx)
	if err != nil {
		return kernel.Identity{}, 0, err
	}

	id, err := orderID(ctx)
	if err != nil {
		return kernel.Identity{}, 0, err
	}

	return actor, id, nil
}
