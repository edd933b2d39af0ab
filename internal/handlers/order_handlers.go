package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/services"
)

type OrderHandlers struct {
	checkout services.CheckoutService
	queries  services.OrderQueryService
}

func NewOrderHandlers(checkout services.CheckoutService, queries services.OrderQueryService) *OrderHandlers {
	return &OrderHandlers{checkout: checkout, queries: queries}
}

// CreateOrder places an order atomically: header, line items and stock
// decrements land together or not at all.
func (h *OrderHandlers) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req models.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request body")
	}

	orderID, err := h.checkout.PlaceOrder(ctx, userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return common.SendClientError(c, err.Error())
		case errors.Is(err, services.ErrInsufficientStock):
			return common.SendConflictError(c, "STOCK_UNAVAILABLE", "One or more products do not have enough stock")
		default:
			return common.SendServerError(c, "Failed to create order")
		}
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"status":  "ok",
		"orderId": orderID,
	})
}

// GetMyOrders lists the caller's orders, newest first
func (h *OrderHandlers) GetMyOrders(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	orders, err := h.queries.ListByUser(ctx, userID)
	if err != nil {
		return common.SendServerError(c, "Failed to fetch orders")
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// GetAllOrders lists every order with the orderer's identity. Admin only,
// enforced by route middleware.
func (h *OrderHandlers) GetAllOrders(c echo.Context) error {
	orders, err := h.queries.ListAll(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to fetch orders")
	}
	if orders == nil {
		orders = []*models.OrderWithUser{}
	}
	return c.JSON(http.StatusOK, orders)
}

// GetOrderDetails returns one order with its line items, visible to the
// owner and to admins.
func (h *OrderHandlers) GetOrderDetails(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	role, _ := common.GetUserRoleFromContext(ctx)

	orderID, err := common.ParseIDParam(c, "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	detail, err := h.queries.GetDetail(ctx, orderID, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return common.SendNotFoundError(c, "Order")
		case errors.Is(err, services.ErrForbidden):
			return common.SendForbiddenError(c, "You do not have access to this order")
		default:
			return common.SendServerError(c, "Failed to fetch order")
		}
	}
	return c.JSON(http.StatusOK, detail)
}
