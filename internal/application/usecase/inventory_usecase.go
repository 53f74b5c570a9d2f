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

// InventoryUseCase productos, ajustes de stock con auditoría y umbrales de reposición.
// Las mutaciones siguen cargar → autorizar → mutar; el ajuste de stock corre en transacción
// porque escribe el producto y su registro de auditoría juntos.
type InventoryUseCase struct {
	storeRepo      repository.StoreRepository
	productRepo    repository.ProductRepository
	adjustmentRepo repository.StockAdjustmentRepository
	txRunner       TxRunner
	allowNegative  bool
}

// NewInventoryUseCase construye el caso de uso. allowNegativeStock gobierna el piso de
// stock: en false, un ajuste que deje el stock < 0 falla con ErrInsufficientStock.
func NewInventoryUseCase(
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	adjustmentRepo repository.StockAdjustmentRepository,
	txRunner TxRunner,
	allowNegativeStock bool,
) *InventoryUseCase {
	return &InventoryUseCase{
		storeRepo:      storeRepo,
		productRepo:    productRepo,
		adjustmentRepo: adjustmentRepo,
		txRunner:       txRunner,
		allowNegative:  allowNegativeStock,
	}
}

// ListProducts productos de la tienda (público).
func (uc *InventoryUseCase) ListProducts(storeID string) ([]dto.ProductResponse, error) {
	if _, err := uc.loadStore(storeID); err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

// CreateProduct alta de producto. Dueño o trabajador.
func (uc *InventoryUseCase) CreateProduct(storeID, callerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Name) == "" || in.Price.IsNegative() {
		return nil, domain.ErrValidation
	}

	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		StoreID:      storeID,
		Barcode:      in.Barcode,
		Name:         in.Name,
		Category:     in.Category,
		Description:  in.Description,
		Price:        in.Price,
		Stock:        in.Stock,
		ReorderLevel: in.ReorderLevel,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// ModifyProduct modificación parcial de un producto. Dueño o trabajador.
func (uc *InventoryUseCase) ModifyProduct(storeID, productID, callerID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return uc.modifyProduct(storeID, productID, callerID, in, authz.AuthorizeOwnerOrWorker)
}

// ModifyProductByOwner variante restringida al dueño (ruta /products/:id/owner del API).
func (uc *InventoryUseCase) ModifyProductByOwner(storeID, productID, callerID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	return uc.modifyProduct(storeID, productID, callerID, in, authz.AuthorizeOwner)
}

func (uc *InventoryUseCase) modifyProduct(
	storeID, productID, callerID string,
	in dto.UpdateProductRequest,
	authorize func(*entity.Store, string) error,
) (*dto.ProductResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authorize(store, callerID); err != nil {
		return nil, err
	}
	product, err := uc.loadProduct(storeID, productID)
	if err != nil {
		return nil, err
	}

	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrValidation
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrValidation
		}
		product.Price = *in.Price
	}
	if in.ReorderLevel != nil {
		product.ReorderLevel = *in.ReorderLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// DeleteProduct baja de producto. Dueño o trabajador.
func (uc *InventoryUseCase) DeleteProduct(storeID, productID, callerID string) error {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return err
	}
	if _, err := uc.loadProduct(storeID, productID); err != nil {
		return err
	}
	return uc.productRepo.Delete(storeID, productID)
}

// AdjustStock aplica un delta al stock y deja el registro de auditoría, todo en una
// transacción. El registro guarda stock anterior, nuevo, actor y fecha; nunca se muta.
func (uc *InventoryUseCase) AdjustStock(ctx context.Context, storeID, productID, callerID string, quantity int) (*dto.StockAdjustmentResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	if quantity == 0 {
		return nil, domain.ErrValidation
	}

	var adjustment *entity.StockAdjustment
	err = uc.txRunner.RunStock(ctx, func(
		products repository.ProductRepository,
		adjustments repository.StockAdjustmentRepository,
	) error {
		product, err := products.GetByStoreAndID(storeID, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		oldStock := product.Stock
		newStock := oldStock + quantity
		if newStock < 0 && !uc.allowNegative {
			return domain.ErrInsufficientStock
		}

		product.Stock = newStock
		product.UpdatedAt = time.Now()
		if err := products.Update(product); err != nil {
			return err
		}

		adjustment = &entity.StockAdjustment{
			ID:        uuid.New().String(),
			StoreID:   storeID,
			ProductID: productID,
			UserID:    callerID,
			OldStock:  oldStock,
			NewStock:  newStock,
			CreatedAt: time.Now(),
		}
		return adjustments.Create(adjustment)
	})
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponse(adjustment), nil
}

// StockHistoryByStore historial de ajustes de la tienda. Dueño o trabajador.
func (uc *InventoryUseCase) StockHistoryByStore(storeID, callerID string) ([]dto.StockAdjustmentResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	list, err := uc.adjustmentRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponses(list), nil
}

// StockHistoryByProduct historial de ajustes de un producto. Dueño o trabajador.
func (uc *InventoryUseCase) StockHistoryByProduct(storeID, productID, callerID string) ([]dto.StockAdjustmentResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	if _, err := uc.loadProduct(storeID, productID); err != nil {
		return nil, err
	}
	list, err := uc.adjustmentRepo.ListByProduct(storeID, productID)
	if err != nil {
		return nil, err
	}
	return toAdjustmentResponses(list), nil
}

// RestockAlert productos con stock por debajo del umbral de reposición. Dueño o trabajador.
func (uc *InventoryUseCase) RestockAlert(storeID, callerID string) ([]dto.ProductResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	alerts := make([]dto.ProductResponse, 0)
	for _, p := range products {
		if p.NeedsRestock() {
			alerts = append(alerts, *toProductResponse(p))
		}
	}
	return alerts, nil
}

// SetReorderLevel fija el umbral de reposición de un producto. Dueño o trabajador.
func (uc *InventoryUseCase) SetReorderLevel(storeID, productID, callerID string, level int) error {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return err
	}
	if level < 0 {
		return domain.ErrValidation
	}
	product, err := uc.loadProduct(storeID, productID)
	if err != nil {
		return err
	}
	product.ReorderLevel = level
	product.UpdatedAt = time.Now()
	return uc.productRepo.Update(product)
}

// InventoryStatus todos los productos con su stock actual. Dueño o trabajador.
func (uc *InventoryUseCase) InventoryStatus(storeID, callerID string) ([]dto.ProductResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	return toProductResponses(products), nil
}

func (uc *InventoryUseCase) loadStore(id string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

func (uc *InventoryUseCase) loadProduct(storeID, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByStoreAndID(storeID, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		StoreID:      p.StoreID,
		Barcode:      p.Barcode,
		Name:         p.Name,
		Category:     p.Category,
		Description:  p.Description,
		Price:        p.Price,
		Stock:        p.Stock,
		Sold:         p.Sold,
		ReorderLevel: p.ReorderLevel,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *toProductResponse(p))
	}
	return out
}

func toAdjustmentResponse(a *entity.StockAdjustment) *dto.StockAdjustmentResponse {
	if a == nil {
		return nil
	}
	return &dto.StockAdjustmentResponse{
		ID:        a.ID,
		StoreID:   a.StoreID,
		ProductID: a.ProductID,
		UserID:    a.UserID,
		OldStock:  a.OldStock,
		NewStock:  a.NewStock,
		CreatedAt: a.CreatedAt,
	}
}

func toAdjustmentResponses(list []*entity.StockAdjustment) []dto.StockAdjustmentResponse {
	out := make([]dto.StockAdjustmentResponse, 0, len(list))
	for _, a := range list {
		out = append(out, *toAdjustmentResponse(a))
	}
	return out
}
