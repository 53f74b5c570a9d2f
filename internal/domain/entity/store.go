package entity

import "time"

// Store una tienda con exactamente un dueño y cero o más trabajadores.
// Name es único. Products y Sales pertenecen a la tienda (borrado en cascada).
// Workers es membresía (muchos a muchos), no propiedad; el dueño no cambia tras la creación.
type Store struct {
	ID        string
	Name      string
	Location  string
	Latitude  float64
	Longitude float64
	OwnerID   string // subject del dueño
	Owner     *User  // cargado por el repositorio en GetByID
	Workers   []User // cargados por el repositorio en GetByID
	CreatedAt time.Time
	UpdatedAt time.Time
}
