package auth

import (
	"context"
	"errors"
	"time"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/entity"
	"github.com/sarismart/retail-api/internal/domain/repository"
)

// AuthUseCase registro/login delegados al proveedor de identidad más la resolución
// de identidad local (subject del token -> perfil User).
type AuthUseCase struct {
	userRepo repository.UserRepository
	provider IdentityProvider
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, provider IdentityProvider) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, provider: provider}
}

// Resolve mapea un subject del proveedor al perfil local. Falla con ErrUserNotFound si
// no existe: las rutas mutadoras autenticadas exigen un perfil previo.
func (uc *AuthUseCase) Resolve(subjectID string) (*entity.User, error) {
	user, err := uc.userRepo.GetBySubject(subjectID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// ResolveOrCreate devuelve el usuario con ese email si ya existe (ignorando los demás
// campos), o lo crea. Idempotente: si dos sign-ups concurrentes chocan, el índice único
// de email convierte al perdedor en ErrDuplicate y aquí se relee la fila ganadora.
func (uc *AuthUseCase) ResolveOrCreate(email, subjectID, fullName, phone string) (*entity.User, error) {
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user := &entity.User{
		SubjectID: subjectID,
		Email:     email,
		FullName:  fullName,
		Phone:     phone,
		CreatedAt: time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return uc.userRepo.GetByEmail(email)
		}
		return nil, err
	}
	return user, nil
}

// SignUp registra al usuario en el proveedor y crea (o reutiliza) el perfil local.
// Este es el único camino que ejecuta ResolveOrCreate.
func (uc *AuthUseCase) SignUp(ctx context.Context, in dto.AuthRequest) (*dto.UserResponse, error) {
	pu, err := uc.provider.SignUp(ctx, in.Email, in.Password, in.FullName, in.Phone)
	if err != nil {
		return nil, err
	}

	fullName := pu.FullName
	if fullName == "" {
		fullName = in.FullName
	}
	user, err := uc.ResolveOrCreate(in.Email, pu.ID, fullName, in.Phone)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// SignIn delega el password grant al proveedor y reenvía la sesión.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.AuthRequest) (*dto.SessionResponse, error) {
	session, err := uc.provider.SignIn(ctx, in.Email, in.Password)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// Refresh renueva la sesión con el refresh token.
func (uc *AuthUseCase) Refresh(ctx context.Context, refreshToken string) (*dto.SessionResponse, error) {
	session, err := uc.provider.Refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

// ProviderUser consulta al proveedor los datos del usuario del access token.
func (uc *AuthUseCase) ProviderUser(ctx context.Context, accessToken string) (*dto.UserResponse, error) {
	pu, err := uc.provider.GetUser(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		SubjectID: pu.ID,
		Email:     pu.Email,
		FullName:  pu.FullName,
		Phone:     pu.Phone,
	}, nil
}

// ToUserResponse mapea la entidad al DTO de respuesta.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		SubjectID: u.SubjectID,
		Email:     u.Email,
		FullName:  u.FullName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

func toSessionResponse(s *Session) *dto.SessionResponse {
	return &dto.SessionResponse{
		AccessToken:  s.AccessToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		RefreshToken: s.RefreshToken,
		User: dto.UserResponse{
			SubjectID: s.User.ID,
			Email:     s.User.Email,
			FullName:  s.User.FullName,
			Phone:     s.User.Phone,
		},
	}
}
