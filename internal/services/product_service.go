package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"shopmart/internal/caching"
	"shopmart/internal/models"
	"shopmart/internal/repositories"
)

const (
	productCacheTTL = 5 * time.Minute
	imageURLExpiry  = time.Hour
)

type ProductService interface {
	List(ctx context.Context, limit, offset int) ([]*models.Product, error)
	Get(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) (int64, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, productID int64, filename, contentType string, reader io.Reader, size int64) (string, error)
}

type productService struct {
	products repositories.ProductRepository
	cache    caching.CacheService
	storage  StorageService
	bucket   string
}

func NewProductService(products repositories.ProductRepository, cache caching.CacheService, storage StorageService, bucket string) ProductService {
	return &productService{products: products, cache: cache, storage: storage, bucket: bucket}
}

func (s *productService) List(ctx context.Context, limit, offset int) ([]*models.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	products, err := s.products.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	for _, product := range products {
		s.resolveImageURL(product)
	}
	return products, nil
}

func (s *productService) Get(ctx context.Context, id int64) (*models.Product, error) {
	if cached, err := s.cache.GetProduct(ctx, id); err == nil && cached != nil {
		s.resolveImageURL(cached)
		return cached, nil
	} else if err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("product cache read failed")
	}

	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}

	if err := s.cache.SetProduct(ctx, product, productCacheTTL); err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("product cache write failed")
	}

	s.resolveImageURL(product)
	return product, nil
}

func (s *productService) Create(ctx context.Context, product *models.Product) (int64, error) {
	if err := s.validate(product); err != nil {
		return 0, err
	}
	id, err := s.products.Create(ctx, product)
	if err != nil {
		return 0, fmt.Errorf("create product: %w", err)
	}
	return id, nil
}

func (s *productService) Update(ctx context.Context, product *models.Product) error {
	if err := s.validate(product); err != nil {
		return err
	}
	if _, err := s.products.GetByID(ctx, product.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("product %d: %w", product.ID, ErrNotFound)
		}
		return err
	}
	if err := s.products.Update(ctx, product); err != nil {
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}
	return s.invalidate(ctx, product.ID)
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return err
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if product.Image != nil {
		if err := s.storage.DeleteImage(ctx, s.bucket, *product.Image); err != nil {
			logrus.WithError(err).WithField("object", *product.Image).Warn("delete product image failed")
		}
	}
	return s.invalidate(ctx, id)
}

// UploadImage stores the file under a random object key and records that
// key on the product. The returned URL is a presigned GET, clients never
// talk to the bucket with credentials.
func (s *productService) UploadImage(ctx context.Context, productID int64, filename, contentType string, reader io.Reader, size int64) (string, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("product %d: %w", productID, ErrNotFound)
		}
		return "", err
	}

	objectName := fmt.Sprintf("products/%d/%s%s", productID, uuid.NewString(), path.Ext(filename))
	if err := s.storage.UploadImage(ctx, s.bucket, objectName, contentType, reader, size); err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	if err := s.products.UpdateImage(ctx, productID, objectName); err != nil {
		return "", fmt.Errorf("record image for product %d: %w", productID, err)
	}
	if err := s.invalidate(ctx, productID); err != nil {
		return "", err
	}

	url, err := s.storage.GetPresignedURL(s.bucket, objectName, imageURLExpiry)
	if err != nil {
		return "", fmt.Errorf("presign image url: %w", err)
	}
	return url, nil
}

func (s *productService) validate(product *models.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if product.Price < 0 {
		return fmt.Errorf("%w: price cannot be negative", ErrValidation)
	}
	if product.Stock < 0 {
		return fmt.Errorf("%w: stock cannot be negative", ErrValidation)
	}
	return nil
}

func (s *productService) invalidate(ctx context.Context, id int64) error {
	if err := s.cache.DeleteProduct(ctx, id); err != nil {
		logrus.WithError(err).WithField("product_id", id).Warn("product cache invalidation failed")
	}
	return nil
}

func (s *productService) resolveImageURL(product *models.Product) {
	if product.Image == nil || *product.Image == "" {
		return
	}
	url, err := s.storage.GetPresignedURL(s.bucket, *product.Image, imageURLExpiry)
	if err != nil {
		logrus.WithError(err).WithField("object", *product.Image).Warn("presign image url failed")
		return
	}
	product.ImageURL = url
}
