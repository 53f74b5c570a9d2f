package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCartRequest canasta con sus líneas. Cada subtotal debe ser precio × cantidad.
type CreateCartRequest struct {
	StoreID    string            `json:"store_id"`
	CartName   string            `json:"cart_name"`
	TotalPrice decimal.Decimal   `json:"total_price"`
	TotalItems int               `json:"total_items"`
	Items      []CartItemRequest `json:"items"`
}

// CartItemRequest línea de canasta.
type CartItemRequest struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse canasta serializada.
type CartResponse struct {
	ID         string             `json:"id"`
	StoreID    string             `json:"store_id"`
	SellerID   string             `json:"seller_id"`
	CartName   string             `json:"cart_name"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	TotalItems int                `json:"total_items"`
	Items      []CartItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time          `json:"created_at"`
}

// CartItemResponse línea serializada.
type CartItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}
