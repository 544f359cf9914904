// Package http exposes the order API over HTTP using echo.
//
// Two failure classes are deliberately conflated at this boundary: an order
// that does not exist and an order owned by another user both produce the
// same 404 body, so callers cannot use the API to probe for foreign order ids.
package http

import (
	"errors"
	"net/http"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// UserIDHeader identifies the calling customer. In production it is set by
// the API gateway after authentication.
const UserIDHeader = "X-User-Id"

// Server implements the HTTP handlers for the order API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler commands.CreateOrderCommandHandler
	getOrderHandler    queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		getOrderHandler:    getOrderHandler,
	}
}

// RegisterRoutes attaches all order endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:orderId", s.GetOrder)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	userID := ctx.Request().Header.Get(UserIDHeader)
	if userID == "" {
		return ctx.JSON(http.StatusUnauthorized,
			errorResponse(http.StatusUnauthorized, "Missing "+UserIDHeader+" header"))
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest,
			errorResponse(http.StatusBadRequest, "Invalid request body"))
	}

	items := make([]commands.ItemInput, len(request.Items))
	for i, item := range request.Items {
		items[i] = commands.ItemInput{
			DishID:   item.DishID,
			DishName: item.DishName,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		userID,
		request.MerchantID,
		items,
		commands.DeliveryInput{
			RecipientName:  request.DeliveryInfo.RecipientName,
			RecipientPhone: request.DeliveryInfo.RecipientPhone,
			Address:        request.DeliveryInfo.Address,
		},
		request.Remark,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, successResponse(CreateOrderResponse{
		OrderID:     result.ID.String(),
		OrderNumber: result.Number,
		Status:      result.Status.String(),
		Pricing: PricingResponse{
			ItemsTotal:   result.Pricing.ItemsTotal().String(),
			PackagingFee: result.Pricing.PackagingFee().String(),
			DeliveryFee:  result.Pricing.DeliveryFee().String(),
			FinalAmount:  result.Pricing.FinalAmount().String(),
		},
		CreatedAt: result.CreatedAt,
	}))
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one of the
// caller's orders.
func (s *Server) GetOrder(ctx echo.Context) error {
	userID := ctx.Request().Header.Get(UserIDHeader)
	if userID == "" {
		return ctx.JSON(http.StatusUnauthorized,
			errorResponse(http.StatusUnauthorized, "Missing "+UserIDHeader+" header"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest,
			errorResponse(http.StatusBadRequest, "Invalid order id"))
	}

	query, err := queries.NewGetOrderQuery(orderID, userID)
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, successResponse(toOrderResponse(response)))
}

// writeError maps application errors onto HTTP responses.
// Not-found and access-denied produce byte-identical 404 bodies.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound) || errors.Is(err, errs.ErrAccessDenied):
		return ctx.JSON(http.StatusNotFound,
			errorResponse(http.StatusNotFound, "Order not found"))
	case errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest,
			errorResponse(http.StatusBadRequest, err.Error()))
	default:
		return ctx.JSON(http.StatusInternalServerError,
			errorResponse(http.StatusInternalServerError, "Internal server error"))
	}
}
