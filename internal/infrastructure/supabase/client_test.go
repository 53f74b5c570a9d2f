package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/internal/infrastructure/supabase"
	"github.com/sarismart/retail-api/pkg/config"
)

func newClient(t *testing.T, handler http.HandlerFunc) *supabase.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	// El cliente agrega /auth/v1 a la URL base, igual que contra el proveedor real.
	return supabase.NewClient(config.SupabaseConfig{
		URL:    srv.URL,
		APIKey: "test-api-key",
	})
}

func TestSignIn_DevuelveSesion(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "test-api-key", r.Header.Get("apikey"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana@tienda.ph", body["email"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "jwt-de-prueba",
			"token_type":    "bearer",
			"expires_in":    3600,
			"refresh_token": "refresh-de-prueba",
			"user": map[string]any{
				"id":    "sub-123",
				"email": "ana@tienda.ph",
				"user_metadata": map[string]string{
					"full_name": "Ana",
					"phone":     "+63 900 000 0000",
				},
			},
		})
	})

	session, err := client.SignIn(context.Background(), "ana@tienda.ph", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "jwt-de-prueba", session.AccessToken)
	assert.Equal(t, "refresh-de-prueba", session.RefreshToken)
	assert.Equal(t, "sub-123", session.User.ID)
	assert.Equal(t, "Ana", session.User.FullName)
}

func TestSignIn_CredencialesInvalidas_RetornaUnauthorized(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	})

	_, err := client.SignIn(context.Background(), "ana@tienda.ph", "mala")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid login credentials",
		"el mensaje del proveedor debe propagarse")
}

func TestSignUp_PerfilViajaEnData(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		data, ok := body["data"].(map[string]any)
		require.True(t, ok, "el perfil debe viajar en data")
		assert.Equal(t, "Ana", data["full_name"])

		json.NewEncoder(w).Encode(map[string]any{
			"id":    "sub-456",
			"email": "ana@tienda.ph",
			"user_metadata": map[string]string{
				"full_name": "Ana",
				"phone":     "+63 900 000 0000",
			},
		})
	})

	user, err := client.SignUp(context.Background(), "ana@tienda.ph", "secreto", "Ana", "+63 900 000 0000")
	require.NoError(t, err)
	assert.Equal(t, "sub-456", user.ID)
	assert.Equal(t, "Ana", user.FullName)
}

func TestSignUp_UsuarioEnvueltoEnSesion(t *testing.T) {
	// Con confirmación de email desactivada el proveedor responde una sesión
	// completa en vez del usuario suelto; ambas formas deben aceptarse.
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "jwt",
			"user": map[string]any{
				"id":    "sub-789",
				"email": "ana@tienda.ph",
			},
		})
	})

	user, err := client.SignUp(context.Background(), "ana@tienda.ph", "secreto", "Ana", "")
	require.NoError(t, err)
	assert.Equal(t, "sub-789", user.ID)
}

func TestRefresh_UsaGrantRefreshToken(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "viejo-refresh", body["refresh_token"])

		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "jwt-nuevo",
			"refresh_token": "nuevo-refresh",
			"user":          map[string]any{"id": "sub-123"},
		})
	})

	session, err := client.Refresh(context.Background(), "viejo-refresh")
	require.NoError(t, err)
	assert.Equal(t, "jwt-nuevo", session.AccessToken)
	assert.Equal(t, "nuevo-refresh", session.RefreshToken)
}

func TestGetUser_EnviaBearer(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/user", r.URL.Path)
		assert.Equal(t, "Bearer un-access-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"id": "sub-123", "email": "ana@tienda.ph"})
	})

	user, err := client.GetUser(context.Background(), "un-access-token")
	require.NoError(t, err)
	assert.Equal(t, "sub-123", user.ID)
}
