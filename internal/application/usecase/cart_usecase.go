package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/authz"
	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

// CartUseCase canastas de venta en tienda. El alta valida cada subtotal contra el precio
// vigente del producto y se persiste junto con sus líneas en una transacción.
type CartUseCase struct {
	storeRepo repository.StoreRepository
	userRepo  repository.UserRepository
	cartRepo  repository.CartRepository
	txRunner  TxRunner
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	cartRepo repository.CartRepository,
	txRunner TxRunner,
) *CartUseCase {
	return &CartUseCase{storeRepo: storeRepo, userRepo: userRepo, cartRepo: cartRepo, txRunner: txRunner}
}

// Create registra una canasta. El vendedor es el caller (debe tener perfil local);
// la validación aborta antes de persistir nada: no hay escrituras parciales.
func (uc *CartUseCase) Create(ctx context.Context, callerID string, in dto.CreateCartRequest) (*dto.CartResponse, error) {
	if len(in.Items) == 0 || strings.TrimSpace(in.CartName) == "" {
		return nil, domain.ErrValidation
	}
	if !in.TotalPrice.IsPositive() || in.TotalItems <= 0 {
		return nil, domain.ErrValidation
	}

	store, err := uc.storeRepo.GetByID(in.StoreID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}

	seller, err := uc.userRepo.GetBySubject(callerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrUserNotFound
	}

	cart := &entity.Cart{
		ID:         uuid.New().String(),
		StoreID:    in.StoreID,
		SellerID:   seller.SubjectID,
		CartName:   in.CartName,
		TotalPrice: in.TotalPrice,
		TotalItems: in.TotalItems,
		CreatedAt:  time.Now(),
	}

	err = uc.txRunner.RunCart(ctx, func(
		carts repository.CartRepository,
		products repository.ProductRepository,
	) error {
		for _, item := range in.Items {
			product, err := products.GetByStoreAndID(in.StoreID, item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			// El subtotal declarado debe coincidir con precio vigente × cantidad.
			expected := product.Price.Mul(decimalFromInt(item.Quantity))
			if !expected.Equal(item.Subtotal) {
				return domain.ErrValidation
			}
			cart.Items = append(cart.Items, entity.CartItem{
				ID:        uuid.New().String(),
				CartID:    cart.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Subtotal:  item.Subtotal,
			})
		}
		return carts.Create(cart)
	})
	if err != nil {
		return nil, err
	}
	return toCartResponse(cart), nil
}

// ListByStore canastas de una tienda.
func (uc *CartUseCase) ListByStore(storeID string) ([]dto.CartResponse, error) {
	carts, err := uc.cartRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	return toCartResponses(carts), nil
}

// ListBySeller canastas registradas por un vendedor.
func (uc *CartUseCase) ListBySeller(sellerSubject string) ([]dto.CartResponse, error) {
	carts, err := uc.cartRepo.ListBySeller(sellerSubject)
	if err != nil {
		return nil, err
	}
	return toCartResponses(carts), nil
}

// SearchByName búsqueda por nombre de canasta (contiene, sin distinguir mayúsculas).
func (uc *CartUseCase) SearchByName(name string) ([]dto.CartResponse, error) {
	carts, err := uc.cartRepo.SearchByName(name)
	if err != nil {
		return nil, err
	}
	return toCartResponses(carts), nil
}

func toCartResponse(c *entity.Cart) *dto.CartResponse {
	if c == nil {
		return nil
	}
	items := make([]dto.CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.CartItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Subtotal:  it.Subtotal,
		})
	}
	return &dto.CartResponse{
		ID:         c.ID,
		StoreID:    c.StoreID,
		SellerID:   c.SellerID,
		CartName:   c.CartName,
		TotalPrice: c.TotalPrice,
		TotalItems: c.TotalItems,
		Items:      items,
		CreatedAt:  c.CreatedAt,
	}
}

func toCartResponses(carts []*entity.Cart) []dto.CartResponse {
	out := make([]dto.CartResponse, 0, len(carts))
	for _, c := range carts {
		out = append(out, *toCartResponse(c))
	}
	return out
}
