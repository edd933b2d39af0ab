package repositories

import (
	"context"

	"shopmart/internal/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*models.Order, error)
	ListWithUsers(ctx context.Context) ([]*models.OrderWithUser, error)
}

type orderRepo struct {
	db DB
}

func NewOrderRepo(db DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, order *models.Order) (int64, error) {
	query := `
		INSERT INTO orders (user_id, total_price, shipping_address, status, created_at, updated_at)
		VALUES ($1, $2, $3, 'pending', NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, order.UserID, order.TotalPrice, order.ShippingAddress).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	order := &models.Order{}
	query := `
		SELECT id, user_id, total_price, shipping_address, status, created_at, updated_at
		FROM orders
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&order.ID, &order.UserID, &order.TotalPrice,
		&order.ShippingAddress, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64) ([]*models.Order, error) {
	query := `
		SELECT id, user_id, total_price, shipping_address, status, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalPrice,
			&order.ShippingAddress, &order.Status, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepo) ListWithUsers(ctx context.Context) ([]*models.OrderWithUser, error) {
	query := `
		SELECT o.id, o.user_id, o.total_price, o.shipping_address, o.status, o.created_at, o.updated_at,
		       u.firstname, u.email
		FROM orders o
		JOIN users u ON u.id = o.user_id
		ORDER BY o.created_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.OrderWithUser
	for rows.Next() {
		order := &models.OrderWithUser{}
		if err := rows.Scan(&order.ID, &order.UserID, &order.TotalPrice,
			&order.ShippingAddress, &order.Status, &order.CreatedAt, &order.UpdatedAt,
			&order.Firstname, &order.Email); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
