package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sarismart/retail-api/internal/application/usecase"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner implementación del puerto de transacciones sobre pgxpool.
// Cada Run* abre una transacción y liga los repos que el callback necesita a ese pgx.Tx.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el ejecutor de transacciones.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) run(ctx context.Context, fn func(tx querier) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// RunStock ejecuta fn con repos de productos y ajustes ligados a la misma transacción.
func (t *TxRunner) RunStock(ctx context.Context, fn func(
	products repository.ProductRepository,
	adjustments repository.StockAdjustmentRepository,
) error) error {
	return t.run(ctx, func(tx querier) error {
		return fn(NewProductRepository(tx), NewStockAdjustmentRepository(tx))
	})
}

// RunCart ejecuta fn con repos de canastas y productos ligados a la misma transacción.
func (t *TxRunner) RunCart(ctx context.Context, fn func(
	carts repository.CartRepository,
	products repository.ProductRepository,
) error) error {
	return t.run(ctx, func(tx querier) error {
		return fn(NewCartRepository(tx), NewProductRepository(tx))
	})
}
