package services

import (
	"context"
	"testing"

	pgx "github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shopmart/internal/models"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *models.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	args := m.Called(ctx, id)
	if order := args.Get(0); order != nil {
		return order.(*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	args := m.Called(ctx, userID)
	if orders := args.Get(0); orders != nil {
		return orders.([]*models.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderRepo) ListWithUsers(ctx context.Context) ([]*models.OrderWithUser, error) {
	args := m.Called(ctx)
	if orders := args.Get(0); orders != nil {
		return orders.([]*models.OrderWithUser), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockOrderItemRepo struct {
	mock.Mock
}

func (m *mockOrderItemRepo) CreateBatch(ctx context.Context, orderID int64, items []models.OrderItemInput) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *mockOrderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*models.OrderItemDetail, error) {
	args := m.Called(ctx, orderID)
	if items := args.Get(0); items != nil {
		return items.([]*models.OrderItemDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestGetDetail_OwnerSeesOwnOrder(t *testing.T) {
	orders := new(mockOrderRepo)
	items := new(mockOrderItemRepo)
	svc := NewOrderQueryService(orders, items)

	order := &models.Order{ID: 10, UserID: 4, TotalPrice: 19.98, Status: "pending"}
	detailItems := []*models.OrderItemDetail{
		{OrderItem: models.OrderItem{ID: 1, OrderID: 10, ProductID: 2, Quantity: 2, Price: 9.99}, ProductName: "Mug"},
	}

	orders.On("GetByID", mock.Anything, int64(10)).Return(order, nil)
	items.On("ListByOrder", mock.Anything, int64(10)).Return(detailItems, nil)

	detail, err := svc.GetDetail(context.Background(), 10, 4, "customer")
	assert.NoError(t, err)
	assert.Equal(t, order, detail.Order)
	assert.Len(t, detail.Items, 1)
	assert.Equal(t, "Mug", detail.Items[0].ProductName)

	orders.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestGetDetail_AdminSeesAnyOrder(t *testing.T) {
	orders := new(mockOrderRepo)
	items := new(mockOrderItemRepo)
	svc := NewOrderQueryService(orders, items)

	order := &models.Order{ID: 10, UserID: 4}
	orders.On("GetByID", mock.Anything, int64(10)).Return(order, nil)
	items.On("ListByOrder", mock.Anything, int64(10)).Return([]*models.OrderItemDetail{}, nil)

	detail, err := svc.GetDetail(context.Background(), 10, 99, "admin")
	assert.NoError(t, err)
	assert.NotNil(t, detail)
}

func TestGetDetail_StrangerForbidden(t *testing.T) {
	orders := new(mockOrderRepo)
	items := new(mockOrderItemRepo)
	svc := NewOrderQueryService(orders, items)

	order := &models.Order{ID: 10, UserID: 4}
	orders.On("GetByID", mock.Anything, int64(10)).Return(order, nil)

	detail, err := svc.GetDetail(context.Background(), 10, 5, "customer")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Nil(t, detail)
	items.AssertNotCalled(t, "ListByOrder", mock.Anything, mock.Anything)
}

func TestGetDetail_MissingOrderNotFound(t *testing.T) {
	orders := new(mockOrderRepo)
	items := new(mockOrderItemRepo)
	svc := NewOrderQueryService(orders, items)

	orders.On("GetByID", mock.Anything, int64(77)).Return(nil, pgx.ErrNoRows)

	detail, err := svc.GetDetail(context.Background(), 77, 4, "customer")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, detail)
}

func TestListByUser_PassesThrough(t *testing.T) {
	orders := new(mockOrderRepo)
	items := new(mockOrderItemRepo)
	svc := NewOrderQueryService(orders, items)

	expected := []*models.Order{{ID: 2, UserID: 4}, {ID: 1, UserID: 4}}
	orders.On("ListByUser", mock.Anything, int64(4)).Return(expected, nil)

	result, err := svc.ListByUser(context.Background(), 4)
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}

func TestListAll_ReturnsOrdererIdentity(t *testing.T) {
	orders := new(mockOrderRepo)
	items := new(mockOrderItemRepo)
	svc := NewOrderQueryService(orders, items)

	expected := []*models.OrderWithUser{
		{Order: models.Order{ID: 1, UserID: 4}, Firstname: "Ada", Email: "ada@example.com"},
	}
	orders.On("ListWithUsers", mock.Anything).Return(expected, nil)

	result, err := svc.ListAll(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, result)
}
