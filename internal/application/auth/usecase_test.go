package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarismart/retail-api/internal/application/auth"
	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/entity"
)

// fakeUserRepo repo en memoria indexado por subject y por email.
type fakeUserRepo struct {
	bySubject map[string]*entity.User
	byEmail   map[string]*entity.User
	// failCreateWithDuplicate simula la carrera: el Create pierde contra un insert
	// concurrente y la violación del índice único aflora como ErrDuplicate.
	failCreateWithDuplicate *entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		bySubject: map[string]*entity.User{},
		byEmail:   map[string]*entity.User{},
	}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if r.failCreateWithDuplicate != nil {
		winner := r.failCreateWithDuplicate
		r.byEmail[winner.Email] = winner
		r.bySubject[winner.SubjectID] = winner
		r.failCreateWithDuplicate = nil
		return domain.ErrDuplicate
	}
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrDuplicate
	}
	r.bySubject[u.SubjectID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetBySubject(id string) (*entity.User, error) { return r.bySubject[id], nil }
func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

// fakeProvider proveedor de identidad determinista.
type fakeProvider struct {
	nextSubject string
}

func (p *fakeProvider) SignUp(_ context.Context, email, _, fullName, phone string) (*auth.ProviderUser, error) {
	return &auth.ProviderUser{ID: p.nextSubject, Email: email, FullName: fullName, Phone: phone}, nil
}
func (p *fakeProvider) SignIn(context.Context, string, string) (*auth.Session, error) {
	return &auth.Session{AccessToken: "at", TokenType: "bearer", ExpiresIn: 3600, RefreshToken: "rt"}, nil
}
func (p *fakeProvider) Refresh(context.Context, string) (*auth.Session, error) {
	return &auth.Session{AccessToken: "at2", TokenType: "bearer", ExpiresIn: 3600, RefreshToken: "rt2"}, nil
}
func (p *fakeProvider) GetUser(context.Context, string) (*auth.ProviderUser, error) {
	return &auth.ProviderUser{ID: p.nextSubject}, nil
}

func TestResolve_UsuarioExistente(t *testing.T) {
	repo := newFakeUserRepo()
	repo.bySubject["uid-1"] = &entity.User{SubjectID: "uid-1", Email: "ana@tienda.ph"}
	uc := auth.NewAuthUseCase(repo, &fakeProvider{})

	user, err := uc.Resolve("uid-1")
	require.NoError(t, err)
	assert.Equal(t, "ana@tienda.ph", user.Email)
}

func TestResolve_Inexistente_RetornaErrUserNotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), &fakeProvider{})

	_, err := uc.Resolve("uid-fantasma")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

// Sign-up con un email que ya existe debe devolver al usuario existente sin tocarlo,
// aunque el segundo intento traiga full_name y phone distintos.
func TestResolveOrCreate_Idempotente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, &fakeProvider{})

	first, err := uc.ResolveOrCreate("ana@tienda.ph", "uid-1", "Ana Reyes", "+63 900 000 0001")
	require.NoError(t, err)

	second, err := uc.ResolveOrCreate("ana@tienda.ph", "uid-2", "Otro Nombre", "+63 900 999 9999")
	require.NoError(t, err)

	assert.Equal(t, first.SubjectID, second.SubjectID, "debe devolver el usuario original")
	assert.Equal(t, "Ana Reyes", second.FullName, "los campos del perfil no deben cambiar")
	assert.Equal(t, "+63 900 000 0001", second.Phone)
}

// Carrera de sign-ups duplicados: el Create pierde contra un insert concurrente;
// el resolver debe releer por email y devolver la fila ganadora, no fallar.
func TestResolveOrCreate_CarreraDeDuplicados(t *testing.T) {
	repo := newFakeUserRepo()
	repo.failCreateWithDuplicate = &entity.User{
		SubjectID: "uid-ganador", Email: "ana@tienda.ph", FullName: "Ana Reyes",
	}
	uc := auth.NewAuthUseCase(repo, &fakeProvider{})

	user, err := uc.ResolveOrCreate("ana@tienda.ph", "uid-perdedor", "Ana R.", "")
	require.NoError(t, err)
	assert.Equal(t, "uid-ganador", user.SubjectID)
}

func TestSignUp_CreaPerfilLocalConSubjectDelProveedor(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, &fakeProvider{nextSubject: "uid-prov-7"})

	out, err := uc.SignUp(context.Background(), dto.AuthRequest{
		Email: "leo@tienda.ph", Password: "secreto123", FullName: "Leo Cruz", Phone: "+63 900 123 4567",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-prov-7", out.SubjectID)

	stored, _ := repo.GetBySubject("uid-prov-7")
	require.NotNil(t, stored, "el perfil local debe quedar persistido")
	assert.Equal(t, "Leo Cruz", stored.FullName)
}
