package models

import "time"

type Order struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	TotalPrice      float64   `json:"total_price" db:"total_price"`
	ShippingAddress string    `json:"shipping_address" db:"shipping_address"`
	Status          string    `json:"status" db:"status"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// OrderWithUser is an order row joined with the orderer's identity,
// returned by the privileged listing.
type OrderWithUser struct {
	Order
	Firstname string `json:"firstname" db:"firstname"`
	Email     string `json:"email" db:"email"`
}

// OrderItemInput is one requested line of a checkout
type OrderItemInput struct {
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrderRequest is the checkout payload
type CreateOrderRequest struct {
	ShippingAddress string           `json:"shipping_address"`
	TotalPrice      float64          `json:"total_price"`
	Items           []OrderItemInput `json:"items"`
}

// OrderDetail is an order plus its line items, enriched with product info
type OrderDetail struct {
	Order *Order             `json:"order"`
	Items []*OrderItemDetail `json:"items"`
}
