package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopmart/internal/common"
	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

type OrderQueryService interface {
	ListByUser(ctx context.Context, userID int64) ([]*models.Order, error)
	ListAll(ctx context.Context) ([]*models.OrderWithUser, error)
	GetDetail(ctx context.Context, orderID, requesterID int64, role string) (*models.OrderDetail, error)
}

type orderQueryService struct {
	orders repositories.OrderRepository
	items  repositories.OrderItemRepository
}

func NewOrderQueryService(orders repositories.OrderRepository, items repositories.OrderItemRepository) OrderQueryService {
	return &orderQueryService{orders: orders, items: items}
}

func (s *orderQueryService) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders for user %d: %w", userID, err)
	}
	return orders, nil
}

func (s *orderQueryService) ListAll(ctx context.Context) ([]*models.OrderWithUser, error) {
	orders, err := s.orders.ListWithUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all orders: %w", err)
	}
	return orders, nil
}

// GetDetail returns an order with its line items. Existence is checked
// before ownership so an order the requester cannot see still reads as 404
// only when it truly does not exist, and as 403 when it belongs to someone
// else.
func (s *orderQueryService) GetDetail(ctx context.Context, orderID, requesterID int64, role string) (*models.OrderDetail, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("order %d: %w", orderID, ErrNotFound)
		}
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}

	if role != common.RoleAdmin && order.UserID != requesterID {
		return nil, fmt.Errorf("order %d: %w", orderID, ErrForbidden)
	}

	items, err := s.items.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list items for order %d: %w", orderID, err)
	}

	return &models.OrderDetail{Order: order, Items: items}, nil
}
