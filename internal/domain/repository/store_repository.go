package repository

import "github.com/sarismart/retail-api/internal/domain/entity"

// StoreRepository puerto de persistencia para tiendas y su membresía de trabajadores.
// GetByID carga Owner y Workers: el chequeo de autorización necesita ambos.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id string) (*entity.Store, error)
	List() ([]*entity.Store, error)
	ListByOwner(ownerSubject string) ([]*entity.Store, error)
	ListByWorker(workerSubject string) ([]*entity.Store, error)
	// ListNearby: tiendas dentro de radiusKm (distancia haversine calculada en SQL).
	ListNearby(latitude, longitude, radiusKm float64) ([]*entity.Store, error)
	Update(store *entity.Store) error
	// Delete borra la tienda; products y sales caen en cascada (FK ON DELETE CASCADE).
	Delete(id string) error

	AddWorker(storeID, workerSubject string) error
	RemoveWorker(storeID, workerSubject string) error
	ListWorkers(storeID string) ([]entity.User, error)
}
