package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sarismart/retail-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByStoreAndID(storeID, saleID string) (*entity.Sale, error)
	ListByStore(storeID string) ([]*entity.Sale, error)
	// Delete representa un reembolso: borra la venta sin ledger de reversión.
	Delete(storeID, saleID string) error
	// SumByStoreAndRange agrega total vendido y número de ventas en [from, to).
	SumByStoreAndRange(storeID string, from, to time.Time) (decimal.Decimal, int, error)
}
