package entity

import "time"

// User perfil local de un usuario autenticado por el proveedor de identidad.
// La clave primaria es el subject (claim sub) que emite el proveedor; no se borra nunca
// desde este servicio y es referenciado (no poseído) por Store y Sale.
type User struct {
	SubjectID string // uid estable del proveedor de identidad
	Email     string
	FullName  string
	Phone     string
	CreatedAt time.Time
}
