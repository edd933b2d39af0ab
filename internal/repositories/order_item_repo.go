package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopmart/internal/models"
)

type OrderItemRepository interface {
	CreateBatch(ctx context.Context, orderID int64, items []models.OrderItemInput) error
	ListByOrder(ctx context.Context, orderID int64) ([]*models.OrderItemDetail, error)
}

type orderItemRepo struct {
	db DB
}

func NewOrderItemRepo(db DB) OrderItemRepository {
	return &orderItemRepo{db: db}
}

const insertOrderItemQuery = `
	INSERT INTO order_items (order_id, product_id, quantity, price, created_at, updated_at)
	VALUES ($1, $2, $3, $4, NOW(), NOW())
`

// CreateBatch inserts every line item of an order in a single round trip.
// Prices are stored exactly as submitted, they are the snapshot the order
// was priced at.
func (r *orderItemRepo) CreateBatch(ctx context.Context, orderID int64, items []models.OrderItemInput) error {
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(insertOrderItemQuery, orderID, item.ProductID, item.Quantity, item.Price)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for _, item := range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("insert item for product %d: %w", item.ProductID, err)
		}
	}
	return results.Close()
}

func (r *orderItemRepo) ListByOrder(ctx context.Context, orderID int64) ([]*models.OrderItemDetail, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price, oi.created_at, oi.updated_at,
		       p.name AS product_name, p.image AS product_image
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id ASC
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.OrderItemDetail
	for rows.Next() {
		item := &models.OrderItemDetail{}
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&item.CreatedAt, &item.UpdatedAt, &item.ProductName, &item.ProductImage); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
