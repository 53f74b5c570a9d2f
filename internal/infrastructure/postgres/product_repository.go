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

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, store_id, barcode, name, category, description, price, stock, sold, reorder_level, created_at, updated_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	db querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db querier) *ProductRepo {
	return &ProductRepo{db: db}
}

// Create persiste un producto nuevo dentro de su tienda.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, store_id, barcode, name, category, description, price, stock, sold, reorder_level, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.StoreID, product.Barcode, product.Name, product.Category,
		product.Description, product.Price, product.Stock, product.Sold,
		product.ReorderLevel, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByStoreAndID devuelve (nil, nil) si el producto no existe en esa tienda.
func (r *ProductRepo) GetByStoreAndID(storeID, productID string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND id = $2`
	var p entity.Product
	err := r.db.QueryRow(context.Background(), query, storeID, productID).Scan(
		&p.ID, &p.StoreID, &p.Barcode, &p.Name, &p.Category, &p.Description,
		&p.Price, &p.Stock, &p.Sold, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByStore lista los productos de una tienda.
func (r *ProductRepo) ListByStore(storeID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 ORDER BY name`
	rows, err := r.db.Query(context.Background(), query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.StoreID, &p.Barcode, &p.Name, &p.Category, &p.Description,
			&p.Price, &p.Stock, &p.Sold, &p.ReorderLevel, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos mutables del producto, incluido el stock.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products
		SET barcode = $3, name = $4, category = $5, description = $6, price = $7,
		    stock = $8, sold = $9, reorder_level = $10, updated_at = $11
		WHERE store_id = $1 AND id = $2`
	_, err := r.db.Exec(context.Background(), query,
		product.StoreID, product.ID, product.Barcode, product.Name, product.Category,
		product.Description, product.Price, product.Stock, product.Sold,
		product.ReorderLevel, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// Delete borra el producto; su historial de ajustes cae por FK ON DELETE CASCADE.
func (r *ProductRepo) Delete(storeID, productID string) error {
	_, err := r.db.Exec(context.Background(),
		`DELETE FROM products WHERE store_id = $1 AND id = $2`, storeID, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}
