package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale una transacción de venta contra una tienda. Borrarla representa un reembolso
// (destructivo: no hay ledger de reversión).
type Sale struct {
	ID          string
	StoreID     string
	TotalAmount decimal.Decimal
	SaleDate    time.Time
}
