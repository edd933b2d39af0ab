package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/services"
)

type mockCheckoutService struct {
	mock.Mock
}

func (m *mockCheckoutService) PlaceOrder(ctx context.Context, userID int64, req *models.CreateOrderRequest) (int64, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(int64), args.Error(1)
}

type mockOrderQueryService struct {
	mock.Mock
}

func (m *mockOrderQueryService) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	args := m.Called(ctx, userID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderQueryService) ListAll(ctx context.Context) ([]*models.OrderWithUser, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*models.OrderWithUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderQueryService) GetDetail(ctx context.Context, orderID, requesterID int64, role string) (*models.OrderDetail, error) {
	args := m.Called(ctx, orderID, requesterID, role)
	if detail := args.Get(0); detail != nil {
		return detail.(*models.OrderDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func newOrderContext(t *testing.T, method, target, body string, userID int64, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	ctx := context.WithValue(req.Context(), common.UserIDKey, userID)
	ctx = context.WithValue(ctx, common.UserRoleKey, role)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateOrder_Created(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	body := `{"shipping_address":"1 Main Street","total_price":19.98,"items":[{"product_id":1,"quantity":2,"price":9.99}]}`
	c, rec := newOrderContext(t, http.MethodPost, "/api/orders", body, 5, "customer")

	checkout.On("PlaceOrder", mock.Anything, int64(5), mock.AnythingOfType("*models.CreateOrderRequest")).
		Return(int64(42), nil)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.EqualValues(t, 42, resp["orderId"])

	checkout.AssertExpectations(t)
}

func TestCreateOrder_ValidationError(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	c, rec := newOrderContext(t, http.MethodPost, "/api/orders", `{"items":[]}`, 5, "customer")

	checkout.On("PlaceOrder", mock.Anything, int64(5), mock.Anything).
		Return(int64(0), fmt.Errorf("%w: items must not be empty", services.ErrValidation))

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateOrder_StockConflict(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	body := `{"shipping_address":"1 Main Street","total_price":9.99,"items":[{"product_id":1,"quantity":1,"price":9.99}]}`
	c, rec := newOrderContext(t, http.MethodPost, "/api/orders", body, 5, "customer")

	checkout.On("PlaceOrder", mock.Anything, int64(5), mock.Anything).
		Return(int64(0), fmt.Errorf("product 1: %w", services.ErrInsufficientStock))

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "STOCK_UNAVAILABLE")
}

func TestCreateOrder_MissingIdentity(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateOrder(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	checkout.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetMyOrders_ReturnsOwnOrders(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	c, rec := newOrderContext(t, http.MethodGet, "/api/orders/my", "", 5, "customer")

	queries.On("ListByUser", mock.Anything, int64(5)).
		Return([]*models.Order{{ID: 2, UserID: 5}, {ID: 1, UserID: 5}}, nil)

	require.NoError(t, h.GetMyOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []*models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestGetOrderDetails_Forbidden(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	c, rec := newOrderContext(t, http.MethodGet, "/api/orders/10", "", 5, "customer")
	c.SetParamNames("id")
	c.SetParamValues("10")

	queries.On("GetDetail", mock.Anything, int64(10), int64(5), "customer").
		Return(nil, fmt.Errorf("order 10: %w", services.ErrForbidden))

	require.NoError(t, h.GetOrderDetails(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetOrderDetails_NotFound(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	c, rec := newOrderContext(t, http.MethodGet, "/api/orders/99", "", 5, "customer")
	c.SetParamNames("id")
	c.SetParamValues("99")

	queries.On("GetDetail", mock.Anything, int64(99), int64(5), "customer").
		Return(nil, fmt.Errorf("order 99: %w", services.ErrNotFound))

	require.NoError(t, h.GetOrderDetails(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAllOrders_ReturnsJoinedRows(t *testing.T) {
	checkout := new(mockCheckoutService)
	queries := new(mockOrderQueryService)
	h := NewOrderHandlers(checkout, queries)

	c, rec := newOrderContext(t, http.MethodGet, "/api/orders", "", 1, "admin")

	queries.On("ListAll", mock.Anything).Return([]*models.OrderWithUser{
		{Order: models.Order{ID: 1, UserID: 5}, Firstname: "Ada", Email: "ada@example.com"},
	}, nil)

	require.NoError(t, h.GetAllOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ada@example.com")
}
