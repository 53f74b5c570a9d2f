package entity

import "time"

// StockAdjustment registro inmutable de auditoría de una mutación de stock.
// Se crea en cada cambio de stock; nunca se actualiza ni se borra.
type StockAdjustment struct {
	ID        string
	StoreID   string
	ProductID string
	UserID    string // subject del actor que hizo el ajuste
	OldStock  int
	NewStock  int
	CreatedAt time.Time
}
