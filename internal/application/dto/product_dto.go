package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto en una tienda.
type CreateProductRequest struct {
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	ReorderLevel int             `json:"reorder_level"`
}

// UpdateProductRequest modificación parcial; Stock no se toca aquí (va por ajustes).
type UpdateProductRequest struct {
	Barcode      *string          `json:"barcode"`
	Name         *string          `json:"name"`
	Category     *string          `json:"category"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	ReorderLevel *int             `json:"reorder_level"`
}

// AdjustStockRequest delta de stock (positivo o negativo).
type AdjustStockRequest struct {
	Quantity int `json:"quantity"`
}

// SetReorderLevelRequest umbral de reposición.
type SetReorderLevelRequest struct {
	Level int `json:"level"`
}

// ProductResponse producto serializado.
type ProductResponse struct {
	ID           string          `json:"id"`
	StoreID      string          `json:"store_id"`
	Barcode      string          `json:"barcode"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	Sold         int             `json:"sold"`
	ReorderLevel int             `json:"reorder_level"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockAdjustmentResponse entrada del historial de ajustes.
type StockAdjustmentResponse struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"store_id"`
	ProductID string    `json:"product_id"`
	UserID    string    `json:"user_id"`
	OldStock  int       `json:"old_stock"`
	NewStock  int       `json:"new_stock"`
	CreatedAt time.Time `json:"created_at"`
}
