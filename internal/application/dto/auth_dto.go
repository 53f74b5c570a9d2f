package dto

import "time"

// AuthRequest registro e inicio de sesión contra el proveedor de identidad.
type AuthRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

// RefreshRequest renovación de sesión.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// SessionResponse sesión emitida por el proveedor (se reenvía tal cual al cliente).
type SessionResponse struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// UserResponse perfil local de usuario.
type UserResponse struct {
	SubjectID string    `json:"subject_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}
