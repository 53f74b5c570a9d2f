package usecase

import (
	"context"

	"github.com/sarismart/retail-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción de la base de datos.
// Lo implementa postgres.TxRunner; la interfaz vive aquí para poder usar fakes en tests.
type TxRunner interface {
	// RunStock transacción para ajuste de stock: producto + registro de auditoría.
	RunStock(ctx context.Context, fn func(
		products repository.ProductRepository,
		adjustments repository.StockAdjustmentRepository,
	) error) error

	// RunCart transacción para alta de canasta: líneas validadas contra productos.
	RunCart(ctx context.Context, fn func(
		carts repository.CartRepository,
		products repository.ProductRepository,
	) error) error
}
