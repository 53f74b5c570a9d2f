package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/authz"
	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

// StoreUseCase CRUD de tiendas y membresía de trabajadores.
// Toda mutación sigue el mismo orden: cargar la tienda, autorizar al caller, mutar, persistir.
// Las lecturas (lista, detalle, nearby, trabajadores) son públicas a propósito.
type StoreUseCase struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
}

// NewStoreUseCase construye el caso de uso.
func NewStoreUseCase(storeRepo repository.StoreRepository, userRepo repository.UserRepository) *StoreUseCase {
	return &StoreUseCase{storeRepo: storeRepo, userRepo: userRepo}
}

// Create crea una tienda cuyo dueño es el caller. El caller debe tener perfil local
// (ErrUserNotFound si no) y el nombre de tienda es único (ErrDuplicate si choca).
func (uc *StoreUseCase) Create(callerID string, in dto.CreateStoreRequest) (*dto.StoreResponse, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Location) == "" {
		return nil, domain.ErrValidation
	}
	owner, err := uc.userRepo.GetBySubject(callerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrUserNotFound
	}

	now := time.Now()
	store := &entity.Store{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Location:  in.Location,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
		OwnerID:   owner.SubjectID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.storeRepo.Create(store); err != nil {
		return nil, err
	}
	store.Owner = owner
	return toStoreResponse(store), nil
}

// GetByID obtiene una tienda con dueño y trabajadores.
func (uc *StoreUseCase) GetByID(id string) (*dto.StoreResponse, error) {
	store, err := uc.loadStore(id)
	if err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// List lista todas las tiendas.
func (uc *StoreUseCase) List() ([]dto.StoreResponse, error) {
	stores, err := uc.storeRepo.List()
	if err != nil {
		return nil, err
	}
	return toStoreResponses(stores), nil
}

// ListByOwner tiendas cuyo dueño es el subject dado.
func (uc *StoreUseCase) ListByOwner(ownerSubject string) ([]dto.StoreResponse, error) {
	stores, err := uc.storeRepo.ListByOwner(ownerSubject)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(stores), nil
}

// ListByWorker tiendas donde el subject dado es trabajador.
func (uc *StoreUseCase) ListByWorker(workerSubject string) ([]dto.StoreResponse, error) {
	stores, err := uc.storeRepo.ListByWorker(workerSubject)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(stores), nil
}

// ListNearby tiendas dentro de radiusKm alrededor del punto dado.
func (uc *StoreUseCase) ListNearby(latitude, longitude, radiusKm float64) ([]dto.StoreResponse, error) {
	stores, err := uc.storeRepo.ListNearby(latitude, longitude, radiusKm)
	if err != nil {
		return nil, err
	}
	return toStoreResponses(stores), nil
}

// Update modifica nombre/ubicación. Sólo el dueño.
func (uc *StoreUseCase) Update(storeID, callerID string, in dto.UpdateStoreRequest) (*dto.StoreResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwner(store, callerID); err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		store.Name = *in.Name
	}
	if in.Location != nil {
		store.Location = *in.Location
	}
	store.UpdatedAt = time.Now()
	if err := uc.storeRepo.Update(store); err != nil {
		return nil, err
	}
	return toStoreResponse(store), nil
}

// Delete borra la tienda y, en cascada, sus productos y ventas. Sólo el dueño.
func (uc *StoreUseCase) Delete(storeID, callerID string) error {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeOwner(store, callerID); err != nil {
		return err
	}
	return uc.storeRepo.Delete(storeID)
}

// AssignWorker agrega un trabajador a la tienda. Sólo el dueño.
func (uc *StoreUseCase) AssignWorker(storeID, callerID, workerSubject string) error {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeOwner(store, callerID); err != nil {
		return err
	}
	worker, err := uc.userRepo.GetBySubject(workerSubject)
	if err != nil {
		return err
	}
	if worker == nil {
		return domain.ErrUserNotFound
	}
	return uc.storeRepo.AddWorker(storeID, workerSubject)
}

// RemoveWorker quita a un trabajador de la tienda. Sólo el dueño.
func (uc *StoreUseCase) RemoveWorker(storeID, callerID, workerSubject string) error {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeOwner(store, callerID); err != nil {
		return err
	}
	return uc.storeRepo.RemoveWorker(storeID, workerSubject)
}

// ListWorkers trabajadores de la tienda (público).
func (uc *StoreUseCase) ListWorkers(storeID string) ([]dto.UserResponse, error) {
	if _, err := uc.loadStore(storeID); err != nil {
		return nil, err
	}
	workers, err := uc.storeRepo.ListWorkers(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, dto.UserResponse{
			SubjectID: w.SubjectID,
			Email:     w.Email,
			FullName:  w.FullName,
			Phone:     w.Phone,
			CreatedAt: w.CreatedAt,
		})
	}
	return out, nil
}

func (uc *StoreUseCase) loadStore(id string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

func toStoreResponse(s *entity.Store) *dto.StoreResponse {
	if s == nil {
		return nil
	}
	workers := make([]dto.UserResponse, 0, len(s.Workers))
	for _, w := range s.Workers {
		workers = append(workers, dto.UserResponse{
			SubjectID: w.SubjectID,
			Email:     w.Email,
			FullName:  w.FullName,
			Phone:     w.Phone,
			CreatedAt: w.CreatedAt,
		})
	}
	return &dto.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Location:  s.Location,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
		OwnerID:   s.OwnerID,
		Workers:   workers,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toStoreResponses(stores []*entity.Store) []dto.StoreResponse {
	out := make([]dto.StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, *toStoreResponse(s))
	}
	return out
}
