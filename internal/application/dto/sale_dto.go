package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest registro de una venta.
type CreateSaleRequest struct {
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SaleResponse venta serializada.
type SaleResponse struct {
	ID          string          `json:"id"`
	StoreID     string          `json:"store_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	SaleDate    time.Time       `json:"sale_date"`
}

// ReportResponse agregado de ventas de un período.
type ReportResponse struct {
	ReportType        string          `json:"report_type"`
	Period            string          `json:"period"`
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalTransactions int             `json:"total_transactions"`
}
