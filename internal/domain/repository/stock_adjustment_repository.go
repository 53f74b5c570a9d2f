package repository

import "github.com/sarismart/retail-api/internal/domain/entity"

// StockAdjustmentRepository puerto de persistencia del historial de ajustes de stock.
// Los registros son inmutables: sólo Create y lecturas.
type StockAdjustmentRepository interface {
	Create(adjustment *entity.StockAdjustment) error
	ListByStore(storeID string) ([]*entity.StockAdjustment, error)
	ListByProduct(storeID, productID string) ([]*entity.StockAdjustment, error)
}
