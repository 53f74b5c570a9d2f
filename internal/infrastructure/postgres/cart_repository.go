package postgres

import (
	"context"
	"fmt"

	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	db querier
}

// NewCartRepository construye el adaptador de persistencia para canastas.
func NewCartRepository(db querier) *CartRepo {
	return &CartRepo{db: db}
}

// Create inserta la canasta y sus líneas. El llamador decide la transacción:
// cuando db es un pgx.Tx ambas inserciones son atómicas.
func (r *CartRepo) Create(cart *entity.Cart) error {
	ctx := context.Background()
	query := `
		INSERT INTO carts (id, store_id, seller_id, cart_name, total_price, total_items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		cart.ID, cart.StoreID, cart.SellerID, cart.CartName,
		cart.TotalPrice, cart.TotalItems, cart.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	itemQuery := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, subtotal)
		VALUES ($1, $2, $3, $4, $5)`
	for _, item := range cart.Items {
		if _, err := r.db.Exec(ctx, itemQuery,
			item.ID, cart.ID, item.ProductID, item.Quantity, item.Subtotal,
		); err != nil {
			return fmt.Errorf("insert cart item: %w", err)
		}
	}
	return nil
}

// ListByStore canastas de una tienda, más recientes primero.
func (r *CartRepo) ListByStore(storeID string) ([]*entity.Cart, error) {
	query := `
		SELECT id, store_id, seller_id, cart_name, total_price, total_items, created_at
		FROM carts WHERE store_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, storeID)
}

// ListBySeller canastas registradas por un vendedor.
func (r *CartRepo) ListBySeller(sellerSubject string) ([]*entity.Cart, error) {
	query := `
		SELECT id, store_id, seller_id, cart_name, total_price, total_items, created_at
		FROM carts WHERE seller_id = $1 ORDER BY created_at DESC`
	return r.scanMany(query, sellerSubject)
}

// SearchByName busca canastas por nombre (coincidencia parcial, sin distinguir mayúsculas).
func (r *CartRepo) SearchByName(name string) ([]*entity.Cart, error) {
	query := `
		SELECT id, store_id, seller_id, cart_name, total_price, total_items, created_at
		FROM carts WHERE cart_name ILIKE '%' || $1 || '%' ORDER BY created_at DESC`
	return r.scanMany(query, name)
}

func (r *CartRepo) scanMany(query string, args ...any) ([]*entity.Cart, error) {
	ctx := context.Background()
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list carts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cart
	for rows.Next() {
		var c entity.Cart
		if err := rows.Scan(
			&c.ID, &c.StoreID, &c.SellerID, &c.CartName,
			&c.TotalPrice, &c.TotalItems, &c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan cart: %w", err)
		}
		list = append(list, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, c := range list {
		items, err := r.listItems(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		c.Items = items
	}
	return list, nil
}

func (r *CartRepo) listItems(ctx context.Context, cartID string) ([]entity.CartItem, error) {
	query := `
		SELECT id, cart_id, product_id, quantity, subtotal
		FROM cart_items WHERE cart_id = $1`
	rows, err := r.db.Query(ctx, query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var items []entity.CartItem
	for rows.Next() {
		var it entity.CartItem
		if err := rows.Scan(&it.ID, &it.CartID, &it.ProductID, &it.Quantity, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
