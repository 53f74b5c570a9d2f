package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/authz"
	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

// SalesUseCase ventas, reembolsos y reportes agregados por período.
type SalesUseCase struct {
	storeRepo repository.StoreRepository
	saleRepo  repository.SaleRepository
	// now inyectable para que los reportes sean deterministas en tests.
	now func() time.Time
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(storeRepo repository.StoreRepository, saleRepo repository.SaleRepository) *SalesUseCase {
	return &SalesUseCase{storeRepo: storeRepo, saleRepo: saleRepo, now: time.Now}
}

// CreateSale registra una venta. Dueño o trabajador.
func (uc *SalesUseCase) CreateSale(storeID, callerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	if !in.TotalAmount.IsPositive() {
		return nil, domain.ErrValidation
	}

	sale := &entity.Sale{
		ID:          uuid.New().String(),
		StoreID:     storeID,
		TotalAmount: in.TotalAmount,
		SaleDate:    uc.now(),
	}
	if err := uc.saleRepo.Create(sale); err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// GetSale obtiene una venta de la tienda. Dueño o trabajador.
func (uc *SalesUseCase) GetSale(storeID, saleID, callerID string) (*dto.SaleResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	sale, err := uc.saleRepo.GetByStoreAndID(storeID, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(sale), nil
}

// ListSales ventas de la tienda. Dueño o trabajador.
func (uc *SalesUseCase) ListSales(storeID, callerID string) ([]dto.SaleResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListByStore(storeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// RefundSale reembolsa (borra) una venta. Destructivo: no queda ledger de reversión.
// Dueño o trabajador.
func (uc *SalesUseCase) RefundSale(storeID, saleID, callerID string) error {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return err
	}
	sale, err := uc.saleRepo.GetByStoreAndID(storeID, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.Delete(storeID, saleID)
}

// DailyReport total vendido y número de ventas de hoy. Dueño o trabajador.
func (uc *SalesUseCase) DailyReport(storeID, callerID string) (*dto.ReportResponse, error) {
	now := uc.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return uc.report(storeID, callerID, "Daily", "Today", start, start.AddDate(0, 0, 1))
}

// MonthlyReport total vendido y número de ventas del mes en curso. Dueño o trabajador.
func (uc *SalesUseCase) MonthlyReport(storeID, callerID string) (*dto.ReportResponse, error) {
	now := uc.now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return uc.report(storeID, callerID, "Monthly", "This Month", start, start.AddDate(0, 1, 0))
}

func (uc *SalesUseCase) report(storeID, callerID, reportType, period string, from, to time.Time) (*dto.ReportResponse, error) {
	store, err := uc.loadStore(storeID)
	if err != nil {
		return nil, err
	}
	if err := authz.AuthorizeOwnerOrWorker(store, callerID); err != nil {
		return nil, err
	}
	total, count, err := uc.saleRepo.SumByStoreAndRange(storeID, from, to)
	if err != nil {
		return nil, err
	}
	return &dto.ReportResponse{
		ReportType:        reportType,
		Period:            period,
		TotalSales:        total,
		TotalTransactions: count,
	}, nil
}

func (uc *SalesUseCase) loadStore(id string) (*entity.Store, error) {
	store, err := uc.storeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, domain.ErrNotFound
	}
	return store, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:          s.ID,
		StoreID:     s.StoreID,
		TotalAmount: s.TotalAmount,
		SaleDate:    s.SaleDate,
	}
}
