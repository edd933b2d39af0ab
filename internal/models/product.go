package models

import "time"

type Product struct {
	ID          int64     `json:"id" db:"id"`
	CategoryID  *int64    `json:"category_id" db:"category_id"`
	StatusID    *int64    `json:"status_id" db:"status_id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	Name        string    `json:"name" db:"name"`
	Description *string   `json:"description" db:"description"`
	Barcode     *string   `json:"barcode" db:"barcode"`
	Image       *string   `json:"image" db:"image"`
	Stock       int       `json:"stock" db:"stock"`
	Price       float64   `json:"price" db:"price"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// ImageURL is a presigned download link resolved at read time, never stored.
	ImageURL string `json:"image_url,omitempty" db:"-"`
}
