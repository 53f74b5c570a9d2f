package repository

import "github.com/sarismart/retail-api/internal/domain/entity"

// UserRepository puerto de persistencia para usuarios.
// Los métodos Get* devuelven (nil, nil) cuando el registro no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetBySubject(subjectID string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
}
