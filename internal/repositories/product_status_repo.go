package repositories

import (
	"context"

	"shopmart/internal/models"
)

type ProductStatusRepository interface {
	Create(ctx context.Context, status *models.ProductStatus) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.ProductStatus, error)
	Update(ctx context.Context, status *models.ProductStatus) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.ProductStatus, error)
}

type productStatusRepo struct {
	db DB
}

func NewProductStatusRepo(db DB) ProductStatusRepository {
	return &productStatusRepo{db: db}
}

func (r *productStatusRepo) Create(ctx context.Context, status *models.ProductStatus) (int64, error) {
	query := `INSERT INTO product_statuses (name) VALUES ($1) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, status.Name).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *productStatusRepo) GetByID(ctx context.Context, id int64) (*models.ProductStatus, error) {
	status := &models.ProductStatus{}
	query := `SELECT id, name FROM product_statuses WHERE id = $1`
	if err := r.db.QueryRow(ctx, query, id).Scan(&status.ID, &status.Name); err != nil {
		return nil, err
	}
	return status, nil
}

func (r *productStatusRepo) Update(ctx context.Context, status *models.ProductStatus) error {
	query := `UPDATE product_statuses SET name = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, status.Name, status.ID)
	return err
}

func (r *productStatusRepo) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM product_statuses WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *productStatusRepo) List(ctx context.Context) ([]*models.ProductStatus, error) {
	query := `SELECT id, name FROM product_statuses ORDER BY id ASC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []*models.ProductStatus
	for rows.Next() {
		status := &models.ProductStatus{}
		if err := rows.Scan(&status.ID, &status.Name); err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, rows.Err()
}
