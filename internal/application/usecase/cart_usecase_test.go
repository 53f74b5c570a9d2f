package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/internal/application/usecase"
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/domain/entity"
)

func cartDePrueba() (*usecase.CartUseCase, *fakeCartRepo) {
	storeRepo := newFakeStoreRepo(tiendaDeU1ConTrabajadorU2())
	userRepo := newFakeUserRepo(
		&entity.User{SubjectID: "u1", Email: "ana@tienda.ph"},
		&entity.User{SubjectID: "u2", Email: "leo@tienda.ph"},
	)
	productRepo := newFakeProductRepo(&entity.Product{
		ID: "p1", StoreID: "s1", Name: "Arroz 1kg", Price: decimal.NewFromInt(60),
	})
	cartRepo := &fakeCartRepo{}
	tx := &fakeTxRunner{products: productRepo, adjustments: &fakeAdjustmentRepo{}, carts: cartRepo}
	return usecase.NewCartUseCase(storeRepo, userRepo, cartRepo, tx), cartRepo
}

func requestOK() dto.CreateCartRequest {
	return dto.CreateCartRequest{
		StoreID:    "s1",
		CartName:   "Caja 1",
		TotalPrice: decimal.NewFromInt(120),
		TotalItems: 2,
		Items: []dto.CartItemRequest{
			{ProductID: "p1", Quantity: 2, Subtotal: decimal.NewFromInt(120)},
		},
	}
}

func TestCartCreate_OK(t *testing.T) {
	uc, cartRepo := cartDePrueba()

	out, err := uc.Create(context.Background(), "u2", requestOK())
	require.NoError(t, err)

	assert.Equal(t, "u2", out.SellerID, "el vendedor es el caller resuelto")
	require.Len(t, cartRepo.carts, 1)
	assert.Len(t, cartRepo.carts[0].Items, 1)
}

// Subtotal declarado distinto de precio × cantidad: la canasta se rechaza completa,
// sin escrituras parciales.
func TestCartCreate_SubtotalInconsistente(t *testing.T) {
	uc, cartRepo := cartDePrueba()

	in := requestOK()
	in.Items[0].Subtotal = decimal.NewFromInt(115)

	_, err := uc.Create(context.Background(), "u2", in)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, cartRepo.carts)
}

func TestCartCreate_Validaciones(t *testing.T) {
	uc, _ := cartDePrueba()
	ctx := context.Background()

	in := requestOK()
	in.Items = nil
	_, err := uc.Create(ctx, "u2", in)
	assert.ErrorIs(t, err, domain.ErrValidation, "sin items")

	in = requestOK()
	in.CartName = ""
	_, err = uc.Create(ctx, "u2", in)
	assert.ErrorIs(t, err, domain.ErrValidation, "sin nombre")

	in = requestOK()
	in.TotalPrice = decimal.Zero
	_, err = uc.Create(ctx, "u2", in)
	assert.ErrorIs(t, err, domain.ErrValidation, "total no positivo")
}

func TestCartCreate_ExtranoForbidden(t *testing.T) {
	uc, _ := cartDePrueba()

	_, err := uc.Create(context.Background(), "u3", requestOK())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCartCreate_VendedorSinPerfil(t *testing.T) {
	storeRepo := newFakeStoreRepo(tiendaDeU1ConTrabajadorU2())
	productRepo := newFakeProductRepo()
	cartRepo := &fakeCartRepo{}
	tx := &fakeTxRunner{products: productRepo, adjustments: &fakeAdjustmentRepo{}, carts: cartRepo}
	// u2 es trabajador pero no tiene perfil local registrado.
	uc := usecase.NewCartUseCase(storeRepo, newFakeUserRepo(), cartRepo, tx)

	_, err := uc.Create(context.Background(), "u2", requestOK())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
