package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	db querier
}

// NewSaleRepository construye el adaptador de persistencia para ventas.
func NewSaleRepository(db querier) *SaleRepo {
	return &SaleRepo{db: db}
}

// Create persiste una venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, store_id, total_amount, sale_date)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(context.Background(), query,
		sale.ID, sale.StoreID, sale.TotalAmount, sale.SaleDate)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByStoreAndID devuelve (nil, nil) si la venta no existe en esa tienda.
func (r *SaleRepo) GetByStoreAndID(storeID, saleID string) (*entity.Sale, error) {
	query := `SELECT id, store_id, total_amount, sale_date FROM sales WHERE store_id = $1 AND id = $2`
	var s entity.Sale
	err := r.db.QueryRow(context.Background(), query, storeID, saleID).Scan(
		&s.ID, &s.StoreID, &s.TotalAmount, &s.SaleDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// ListByStore lista las ventas de una tienda, más recientes primero.
func (r *SaleRepo) ListByStore(storeID string) ([]*entity.Sale, error) {
	query := `SELECT id, store_id, total_amount, sale_date FROM sales WHERE store_id = $1 ORDER BY sale_date DESC`
	rows, err := r.db.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.StoreID, &s.TotalAmount, &s.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete borra la venta (reembolso destructivo).
func (r *SaleRepo) Delete(storeID, saleID string) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM sales WHERE store_id = $1 AND id = $2`, storeID, saleID)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// SumByStoreAndRange agrega total vendido y número de ventas en [from, to).
func (r *SaleRepo) SumByStoreAndRange(storeID string, from, to time.Time) (decimal.Decimal, int, error) {
	query := `
		SELECT COALESCE(SUM(total_amount), 0), COUNT(*)
		FROM sales
		WHERE store_id = $1 AND sale_date >= $2 AND sale_date < $3`
	var total decimal.Decimal
	var count int
	err := r.db.QueryRow(context.Background(), query, storeID, from, to).Scan(&total, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("sum sales: %w", err)
	}
	return total, count, nil
}
