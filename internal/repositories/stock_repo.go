package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"shopmart/internal/models"
)

// ErrInsufficientStock reports a decrement that found less stock than
// requested. The row is left untouched when this happens.
var ErrInsufficientStock = errors.New("insufficient stock")

type StockRepository interface {
	Decrement(ctx context.Context, productID int64, quantity int) error
	DecrementAll(ctx context.Context, items []models.OrderItemInput) error
}

type stockRepo struct {
	db DB
}

func NewStockRepo(db DB) StockRepository {
	return &stockRepo{db: db}
}

// The stock predicate lives in the WHERE clause so the check and the write
// are one atomic statement. Row locking inside the storage engine serializes
// concurrent decrements of the same product, no application-level locking.
const decrementStockQuery = `
	UPDATE products
	SET stock = stock - $1, updated_at = NOW()
	WHERE id = $2 AND stock >= $1
`

func (r *stockRepo) Decrement(ctx context.Context, productID int64, quantity int) error {
	tag, err := r.db.Exec(ctx, decrementStockQuery, quantity, productID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", productID, ErrInsufficientStock)
	}
	return nil
}

// DecrementAll queues one guarded decrement per line item and sends them as
// a single batch on the caller's connection. The first zero-row result fails
// the whole call, the surrounding transaction is expected to roll back.
func (r *stockRepo) DecrementAll(ctx context.Context, items []models.OrderItemInput) error {
	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(decrementStockQuery, item.Quantity, item.ProductID)
	}

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for _, item := range items {
		tag, err := results.Exec()
		if err != nil {
			return fmt.Errorf("decrement stock for product %d: %w", item.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("product %d: %w", item.ProductID, ErrInsufficientStock)
		}
	}
	return results.Close()
}
