package repositories

import (
	"context"

	"shopmart/internal/models"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	UpdateImage(ctx context.Context, id int64, objectName string) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	ListBelowStock(ctx context.Context, threshold int) ([]*models.Product, error)
}

type productRepo struct {
	db DB
}

func NewProductRepo(db DB) ProductRepository {
	return &productRepo{db: db}
}

const productColumns = `id, category_id, status_id, user_id, name, description, barcode, image, stock, price, created_at, updated_at`

func (r *productRepo) scan(row interface{ Scan(dest ...any) error }, p *models.Product) error {
	return row.Scan(&p.ID, &p.CategoryID, &p.StatusID, &p.UserID, &p.Name, &p.Description,
		&p.Barcode, &p.Image, &p.Stock, &p.Price, &p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepo) Create(ctx context.Context, product *models.Product) (int64, error) {
	query := `
		INSERT INTO products (category_id, status_id, user_id, name, description, barcode, image, stock, price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id
	`
	var id int64
	err := r.db.QueryRow(ctx, query, product.CategoryID, product.StatusID, product.UserID, product.Name,
		product.Description, product.Barcode, product.Image, product.Stock, product.Price).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	product := &models.Product{}
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1
	`
	if err := r.scan(r.db.QueryRow(ctx, query, id), product); err != nil {
		return nil, err
	}
	return product, nil
}

func (r *productRepo) Update(ctx context.Context, product *models.Product) error {
	// stock is deliberately absent here, checkout's guarded decrement is the
	// only writer once a product exists
	query := `
		UPDATE products
		SET category_id = $1, status_id = $2, name = $3, description = $4, barcode = $5, price = $6, updated_at = NOW()
		WHERE id = $7
	`
	_, err := r.db.Exec(ctx, query, product.CategoryID, product.StatusID, product.Name,
		product.Description, product.Barcode, product.Price, product.ID)
	return err
}

func (r *productRepo) UpdateImage(ctx context.Context, id int64, objectName string) error {
	query := `UPDATE products SET image = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.db.Exec(ctx, query, objectName, id)
	return err
}

func (r *productRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *productRepo) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := r.scan(rows, product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

func (r *productRepo) ListBelowStock(ctx context.Context, threshold int) ([]*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE stock < $1
		ORDER BY stock ASC
	`
	rows, err := r.db.Query(ctx, query, threshold)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product := &models.Product{}
		if err := r.scan(rows, product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}
