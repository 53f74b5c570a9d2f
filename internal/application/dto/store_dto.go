package dto

import "time"

// CreateStoreRequest alta de tienda. El dueño es el caller autenticado.
type CreateStoreRequest struct {
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UpdateStoreRequest modificación de nombre/ubicación (el dueño no cambia).
type UpdateStoreRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
}

// StoreResponse tienda con su dueño y trabajadores.
type StoreResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	OwnerID   string         `json:"owner_id"`
	Workers   []UserResponse `json:"workers,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
