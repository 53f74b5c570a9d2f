package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product pertenece a una tienda. Stock se muta sólo vía ajustes (cada ajuste deja un
// registro de auditoría en StockAdjustment).
type Product struct {
	ID           string
	StoreID      string
	Barcode      string
	Name         string
	Category     string
	Description  string
	Price        decimal.Decimal
	Stock        int
	Sold         int
	ReorderLevel int // umbral de reposición: stock < ReorderLevel dispara alerta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NeedsRestock indica si el producto está por debajo de su umbral de reposición.
func (p Product) NeedsRestock() bool {
	return p.Stock < p.ReorderLevel
}
