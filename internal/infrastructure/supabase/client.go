// Package supabase implementa el cliente HTTP contra el proveedor de identidad.
// Este servicio no guarda contraseñas: registro, login y refresh se delegan
// al endpoint /auth/v1 del proveedor y aquí sólo se traducen las respuestas.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sarismart/retail-api/internal/application/auth"
	"github.com/sarismart/retail-api/internal/domain"
	"github.com/sarismart/retail-api/pkg/config"
)

var _ auth.IdentityProvider = (*Client)(nil)

// Client cliente del API de auth del proveedor de identidad.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient construye el cliente a partir de la configuración del proveedor.
func NewClient(cfg config.SupabaseConfig) *Client {
	return &Client{
		baseURL: cfg.AuthBaseURL(),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// providerUser forma en que el proveedor serializa un usuario. Los datos de
// perfil van en user_metadata tal como se enviaron en el registro.
type providerUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	UserMetadata struct {
		FullName string `json:"full_name"`
		Phone    string `json:"phone"`
	} `json:"user_metadata"`
}

func (u providerUser) toDomain() auth.ProviderUser {
	return auth.ProviderUser{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.UserMetadata.FullName,
		Phone:    u.UserMetadata.Phone,
	}
}

type sessionResponse struct {
	AccessToken  string       `json:"access_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"`
	RefreshToken string       `json:"refresh_token"`
	User         providerUser `json:"user"`
}

type providerError struct {
	Message          string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	Error            string `json:"error"`
}

func (e providerError) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.ErrorDescription != "":
		return e.ErrorDescription
	default:
		return e.Error
	}
}

// SignUp registra el usuario en el proveedor. El perfil (nombre, teléfono) viaja
// en options.data y el proveedor lo devuelve luego como user_metadata.
func (c *Client) SignUp(ctx context.Context, email, password, fullName, phone string) (*auth.ProviderUser, error) {
	payload := map[string]any{
		"email":    email,
		"password": password,
		"data": map[string]string{
			"full_name": fullName,
			"phone":     phone,
		},
	}
	body, err := c.do(ctx, http.MethodPost, "/signup", payload, "")
	if err != nil {
		return nil, err
	}

	// Signup puede devolver el usuario directo o envuelto en una sesión,
	// según la configuración de confirmación de email del proveedor.
	var session sessionResponse
	if err := json.Unmarshal(body, &session); err == nil && session.User.ID != "" {
		u := session.User.toDomain()
		return &u, nil
	}
	var user providerUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decodificar respuesta de signup: %w", err)
	}
	u := user.toDomain()
	return &u, nil
}

// SignIn intercambia credenciales por una sesión (grant password).
func (c *Client) SignIn(ctx context.Context, email, password string) (*auth.Session, error) {
	payload := map[string]string{"email": email, "password": password}
	body, err := c.do(ctx, http.MethodPost, "/token?grant_type=password", payload, "")
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

// Refresh intercambia un refresh token por una sesión nueva.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*auth.Session, error) {
	payload := map[string]string{"refresh_token": refreshToken}
	body, err := c.do(ctx, http.MethodPost, "/token?grant_type=refresh_token", payload, "")
	if err != nil {
		return nil, err
	}
	return decodeSession(body)
}

// GetUser obtiene el usuario dueño de un access token.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*auth.ProviderUser, error) {
	body, err := c.do(ctx, http.MethodGet, "/user", nil, accessToken)
	if err != nil {
		return nil, err
	}
	var user providerUser
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decodificar usuario del proveedor: %w", err)
	}
	u := user.toDomain()
	return &u, nil
}

func decodeSession(body []byte) (*auth.Session, error) {
	var s sessionResponse
	if err := json.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("decodificar sesión del proveedor: %w", err)
	}
	return &auth.Session{
		AccessToken:  s.AccessToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		RefreshToken: s.RefreshToken,
		User:         s.User.toDomain(),
	}, nil
}

// do ejecuta la llamada HTTP contra el proveedor y traduce los errores:
// 401/403 -> ErrUnauthorized, 4xx -> ErrValidation con el mensaje del proveedor.
func (c *Client) do(ctx context.Context, method, path string, payload any, bearer string) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("serializar petición al proveedor: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("construir petición al proveedor: %w", err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamada al proveedor de identidad: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("leer respuesta del proveedor: %w", err)
	}

	if resp.StatusCode >= 400 {
		var perr providerError
		_ = json.Unmarshal(body, &perr)
		msg := perr.text()
		if msg == "" {
			msg = resp.Status
		}
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return nil, fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
		default:
			return nil, fmt.Errorf("%w: %s", domain.ErrValidation, msg)
		}
	}
	return body, nil
}
