package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

// TxBeginner is the one pool capability checkout needs. Begin leases a
// connection from the pool, Commit or Rollback returns it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, userID int64, req *models.CreateOrderRequest) (int64, error)
}

type checkoutService struct {
	db TxBeginner
}

func NewCheckoutService(db TxBeginner) CheckoutService {
	return &checkoutService{db: db}
}

// priceTolerance absorbs float noise when comparing the submitted total
// against the recomputed one.
const priceTolerance = 0.01

func validateOrderRequest(req *models.CreateOrderRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request body is required", ErrValidation)
	}
	if strings.TrimSpace(req.ShippingAddress) == "" {
		return fmt.Errorf("%w: shipping_address is required", ErrValidation)
	}
	if req.TotalPrice <= 0 {
		return fmt.Errorf("%w: total_price must be positive", ErrValidation)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: items must not be empty", ErrValidation)
	}

	var computed float64
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: product_id must be positive", ErrValidation)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for product %d", ErrValidation, item.ProductID)
		}
		if item.Price < 0 {
			return fmt.Errorf("%w: price cannot be negative for product %d", ErrValidation, item.ProductID)
		}
		computed += float64(item.Quantity) * item.Price
	}

	if math.Abs(computed-req.TotalPrice) > priceTolerance {
		return fmt.Errorf("%w: total_price %.2f does not match item total %.2f", ErrValidation, req.TotalPrice, computed)
	}
	return nil
}

// PlaceOrder creates the order header, its line items and the matching
// stock decrements as one transaction. Either every write lands or none
// does, the deferred rollback covers every early return and the commit
// turns it into a no-op.
func (s *checkoutService) PlaceOrder(ctx context.Context, userID int64, req *models.CreateOrderRequest) (int64, error) {
	if err := validateOrderRequest(req); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin checkout transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orders := repositories.NewOrderRepo(tx)
	items := repositories.NewOrderItemRepo(tx)
	stock := repositories.NewStockRepo(tx)

	orderID, err := orders.Create(ctx, &models.Order{
		UserID:          userID,
		TotalPrice:      req.TotalPrice,
		ShippingAddress: strings.TrimSpace(req.ShippingAddress),
	})
	if err != nil {
		return 0, fmt.Errorf("insert order: %w", err)
	}

	if err := items.CreateBatch(ctx, orderID, req.Items); err != nil {
		return 0, fmt.Errorf("insert order items: %w", err)
	}

	if err := stock.DecrementAll(ctx, req.Items); err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit checkout transaction: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"user_id":  userID,
		"items":    len(req.Items),
	}).Info("order placed")

	return orderID, nil
}
