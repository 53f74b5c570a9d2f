package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart una canasta vendida en tienda, registrada por un vendedor (dueño o trabajador).
type Cart struct {
	ID         string
	StoreID    string
	SellerID   string // subject del vendedor
	CartName   string
	TotalPrice decimal.Decimal
	TotalItems int
	Items      []CartItem
	CreatedAt  time.Time
}

// CartItem línea de una canasta. Subtotal debe ser precio del producto × cantidad.
type CartItem struct {
	ID        string
	CartID    string
	ProductID string
	Quantity  int
	Subtotal  decimal.Decimal
}
