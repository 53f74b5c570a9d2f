package repository

import "github.com/sarismart/retail-api/internal/domain/entity"

// CartRepository puerto de persistencia para canastas y sus líneas.
type CartRepository interface {
	// Create inserta la canasta y sus items; dentro de una transacción cuando se usa vía TxRunner.
	Create(cart *entity.Cart) error
	ListByStore(storeID string) ([]*entity.Cart, error)
	ListBySeller(sellerSubject string) ([]*entity.Cart, error)
	SearchByName(name string) ([]*entity.Cart, error)
}
