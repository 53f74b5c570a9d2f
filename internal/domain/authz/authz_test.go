package authz_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/authz"
	"github.com/sarismart/retail-api/internal/domain/entity"
)

func storeWith(ownerID string, workerIDs ...string) *entity.Store {
	workers := make([]entity.User, 0, len(workerIDs))
	for _, id := range workerIDs {
		workers = append(workers, entity.User{SubjectID: id})
	}
	return &entity.Store{ID: "s1", Name: "Tienda Uno", OwnerID: ownerID, Workers: workers}
}

func TestAuthorizeOwner(t *testing.T) {
	s := storeWith("u1", "u2")

	assert.NoError(t, authz.AuthorizeOwner(s, "u1"), "el dueño debe pasar")
	assert.ErrorIs(t, authz.AuthorizeOwner(s, "u2"), domain.ErrForbidden, "trabajador no es dueño")
	assert.ErrorIs(t, authz.AuthorizeOwner(s, "u3"), domain.ErrForbidden, "extraño no es dueño")
	assert.ErrorIs(t, authz.AuthorizeOwner(s, ""), domain.ErrForbidden, "caller vacío nunca pasa")
	assert.ErrorIs(t, authz.AuthorizeOwner(nil, "u1"), domain.ErrForbidden)
}

func TestAuthorizeOwnerOrWorker(t *testing.T) {
	s := storeWith("u1", "u2", "u4")

	assert.NoError(t, authz.AuthorizeOwnerOrWorker(s, "u1"), "el dueño debe pasar")
	assert.NoError(t, authz.AuthorizeOwnerOrWorker(s, "u2"), "trabajador debe pasar")
	assert.NoError(t, authz.AuthorizeOwnerOrWorker(s, "u4"), "cualquier trabajador debe pasar")
	assert.ErrorIs(t, authz.AuthorizeOwnerOrWorker(s, "u3"), domain.ErrForbidden, "extraño no pasa")
	assert.ErrorIs(t, authz.AuthorizeOwnerOrWorker(s, ""), domain.ErrForbidden)
}

// Propiedad sobre tripletas aleatorias dueño/trabajador/extraño:
//   - AuthorizeOwner pasa sólo para el dueño.
//   - AuthorizeOwnerOrWorker pasa para dueño y trabajadores, nunca para el extraño.
func TestAuthorize_PropiedadTripletasAleatorias(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		owner := fmt.Sprintf("owner-%d", rng.Intn(10000))
		workers := make([]string, rng.Intn(5))
		for j := range workers {
			workers[j] = fmt.Sprintf("worker-%d-%d", i, j)
		}
		stranger := fmt.Sprintf("stranger-%d", i)

		s := storeWith(owner, workers...)

		assert.NoError(t, authz.AuthorizeOwner(s, owner))
		assert.NoError(t, authz.AuthorizeOwnerOrWorker(s, owner))
		assert.ErrorIs(t, authz.AuthorizeOwner(s, stranger), domain.ErrForbidden)
		assert.ErrorIs(t, authz.AuthorizeOwnerOrWorker(s, stranger), domain.ErrForbidden)

		for _, w := range workers {
			assert.ErrorIs(t, authz.AuthorizeOwner(s, w), domain.ErrForbidden,
				"un trabajador no debe pasar el chequeo de dueño")
			assert.NoError(t, authz.AuthorizeOwnerOrWorker(s, w))
		}
	}
}
