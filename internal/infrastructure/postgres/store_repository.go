package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

const storeColumns = `id, name, location, latitude, longitude, owner_id, created_at, updated_at`

// StoreRepo implementación del puerto StoreRepository sobre PostgreSQL.
type StoreRepo struct {
	db querier
}

// NewStoreRepository construye el adaptador de persistencia para tiendas.
func NewStoreRepository(db querier) *StoreRepo {
	return &StoreRepo{db: db}
}

// Create persiste una tienda. Devuelve ErrDuplicate si el nombre ya existe.
func (r *StoreRepo) Create(store *entity.Store) error {
	query := `
		INSERT INTO stores (id, name, location, latitude, longitude, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		store.ID, store.Name, store.Location, store.Latitude, store.Longitude,
		store.OwnerID, store.CreatedAt, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert store: %w", err)
	}
	return nil
}

// GetByID obtiene una tienda con su dueño y sus trabajadores cargados.
// El chequeo de autorización necesita ambos, así que siempre se cargan juntos.
func (r *StoreRepo) GetByID(id string) (*entity.Store, error) {
	ctx := context.Background()
	query := `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`
	var s entity.Store
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Name, &s.Location, &s.Latitude, &s.Longitude,
		&s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store by id: %w", err)
	}

	owner, err := r.loadOwner(ctx, s.OwnerID)
	if err != nil {
		return nil, err
	}
	s.Owner = owner

	workers, err := r.ListWorkers(id)
	if err != nil {
		return nil, err
	}
	s.Workers = workers

	return &s, nil
}

func (r *StoreRepo) loadOwner(ctx context.Context, ownerID string) (*entity.User, error) {
	query := `
		SELECT subject_id, email, full_name, phone, created_at
		FROM users WHERE subject_id = $1`
	var u entity.User
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&u.SubjectID, &u.Email, &u.FullName, &u.Phone, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get store owner: %w", err)
	}
	return &u, nil
}

// List lista todas las tiendas (sin cargar trabajadores).
func (r *StoreRepo) List() ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores ORDER BY created_at DESC`
	return r.scanMany(query)
}

// ListByOwner tiendas de un dueño.
func (r *StoreRepo) ListByOwner(ownerSubject string) ([]*entity.Store, error) {
	query := `SELECT ` + storeColumns + ` FROM stores WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, ownerSubject)
}

// ListByWorker tiendas donde el subject es trabajador.
func (r *StoreRepo) ListByWorker(workerSubject string) ([]*entity.Store, error) {
	query := `
		SELECT s.id, s.name, s.location, s.latitude, s.longitude, s.owner_id, s.created_at, s.updated_at
		FROM stores s
		JOIN store_workers w ON w.store_id = s.id
		WHERE w.user_id = $1
		ORDER BY s.created_at DESC`
	return r.scanMany(query, workerSubject)
}

// ListNearby tiendas dentro de radiusKm (fórmula haversine evaluada en SQL).
func (r *StoreRepo) ListNearby(latitude, longitude, radiusKm float64) ([]*entity.Store, error) {
	query := `
		SELECT ` + storeColumns + ` FROM stores
		WHERE (
			6371 * acos(
				cos(radians($1)) * cos(radians(latitude)) *
				cos(radians(longitude) - radians($2)) +
				sin(radians($1)) * sin(radians(latitude))
			)
		) <= $3`
	return r.scanMany(query, latitude, longitude, radiusKm)
}

// Update actualiza nombre y ubicación de la tienda.
func (r *StoreRepo) Update(store *entity.Store) error {
	query := `
		UPDATE stores SET name = $2, location = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(context.Background(), query,
		store.ID, store.Name, store.Location, store.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update store: %w", err)
	}
	return nil
}

// Delete borra la tienda; productos, ventas y membresías caen por FK ON DELETE CASCADE.
func (r *StoreRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete store: %w", err)
	}
	return nil
}

// AddWorker agrega la membresía; repetirla no es error (ON CONFLICT DO NOTHING).
func (r *StoreRepo) AddWorker(storeID, workerSubject string) error {
	query := `
		INSERT INTO store_workers (store_id, user_id)
		VALUES ($1, $2) ON CONFLICT DO NOTHING`
	_, err := r.db.Exec(context.Background(), query, storeID, workerSubject)
	if err != nil {
		return fmt.Errorf("add worker: %w", err)
	}
	return nil
}

// RemoveWorker quita la membresía.
func (r *StoreRepo) RemoveWorker(storeID, workerSubject string) error {
	query := `DELETE FROM store_workers WHERE store_id = $1 AND user_id = $2`
	_, err := r.db.Exec(context.Background(), query, storeID, workerSubject)
	if err != nil {
		return fmt.Errorf("remove worker: %w", err)
	}
	return nil
}

// ListWorkers trabajadores de una tienda.
func (r *StoreRepo) ListWorkers(storeID string) ([]entity.User, error) {
	query := `
		SELECT u.subject_id, u.email, u.full_name, u.phone, u.created_at
		FROM users u
		JOIN store_workers w ON w.user_id = u.subject_id
		WHERE w.store_id = $1
		ORDER BY u.created_at`
	rows, err := r.db.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list workers: %w", err)
	}
	defer rows.Close()
	var list []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.SubjectID, &u.Email, &u.FullName, &u.Phone, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan worker: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

func (r *StoreRepo) scanMany(query string, args ...any) ([]*entity.Store, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Store
	for rows.Next() {
		var s entity.Store
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Location, &s.Latitude, &s.Longitude,
			&s.OwnerID, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan store: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
