package repository

import "github.com/sarismart/retail-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos, siempre acotado a una tienda.
type ProductRepository interface {
	Create(product *entity.Product) error
	// GetByStoreAndID devuelve (nil, nil) si el producto no existe o no pertenece a la tienda.
	GetByStoreAndID(storeID, productID string) (*entity.Product, error)
	ListByStore(storeID string) ([]*entity.Product, error)
	Update(product *entity.Product) error
	Delete(storeID, productID string) error
}
