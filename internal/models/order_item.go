package models

import "time"

type OrderItem struct {
	ID        int64     `json:"id" db:"id"`
	OrderID   int64     `json:"order_id" db:"order_id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     float64   `json:"price" db:"price"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// OrderItemDetail is a line item joined with the product's name and image
type OrderItemDetail struct {
	OrderItem
	ProductName  string  `json:"product_name" db:"product_name"`
	ProductImage *string `json:"product_image" db:"product_image"`
}
