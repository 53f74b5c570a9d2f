package postgres

import (
	"context"
	"fmt"

	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

var _ repository.StockAdjustmentRepository = (*StockAdjustmentRepo)(nil)

const adjustmentColumns = `id, store_id, product_id, user_id, old_stock, new_stock, created_at`

// StockAdjustmentRepo persistencia del historial de ajustes de stock.
// Las filas son inmutables: sólo INSERT y SELECT.
type StockAdjustmentRepo struct {
	db querier
}

// NewStockAdjustmentRepository construye el adaptador del historial de ajustes.
func NewStockAdjustmentRepository(db querier) *StockAdjustmentRepo {
	return &StockAdjustmentRepo{db: db}
}

// Create inserta un registro de auditoría; se invoca en la misma transacción
// que la actualización de stock del producto.
func (r *StockAdjustmentRepo) Create(adjustment *entity.StockAdjustment) error {
	query := `
		INSERT INTO stock_adjustments (id, store_id, product_id, user_id, old_stock, new_stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		adjustment.ID, adjustment.StoreID, adjustment.ProductID, adjustment.UserID,
		adjustment.OldStock, adjustment.NewStock, adjustment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock adjustment: %w", err)
	}
	return nil
}

// ListByStore historial completo de una tienda, más reciente primero.
func (r *StockAdjustmentRepo) ListByStore(storeID string) ([]*entity.StockAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM stock_adjustments WHERE store_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, storeID)
}

// ListByProduct historial de un producto concreto.
func (r *StockAdjustmentRepo) ListByProduct(storeID, productID string) ([]*entity.StockAdjustment, error) {
	query := `SELECT ` + adjustmentColumns + ` FROM stock_adjustments WHERE store_id = $1 AND product_id = $2 ORDER BY created_at DESC`
	return r.scanMany(query, storeID, productID)
}

func (r *StockAdjustmentRepo) scanMany(query string, args ...any) ([]*entity.StockAdjustment, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock adjustments: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAdjustment
	for rows.Next() {
		var a entity.StockAdjustment
		if err := rows.Scan(
			&a.ID, &a.StoreID, &a.ProductID, &a.UserID,
			&a.OldStock, &a.NewStock, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock adjustment: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
