package auth

import "context"

// ProviderUser usuario como lo devuelve el proveedor de identidad.
// ID es el subject (sub) que luego viaja en los tokens.
type ProviderUser struct {
	ID       string
	Email    string
	FullName string
	Phone    string
}

// Session sesión emitida por el proveedor tras login o refresh.
type Session struct {
	AccessToken  string
	TokenType    string
	ExpiresIn    int
	RefreshToken string
	User         ProviderUser
}

// IdentityProvider contrato mínimo con el proveedor de identidad remoto.
// Lo implementa el cliente HTTP de infraestructura; la interfaz vive aquí para
// poder sustituirlo por un fake en tests.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, fullName, phone string) (*ProviderUser, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	GetUser(ctx context.Context, accessToken string) (*ProviderUser, error)
}
