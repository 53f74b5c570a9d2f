package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de validación, uno por cada chequeo. El middleware HTTP los traduce a códigos 401.
var (
	ErrInvalidToken    = errors.New("token inválido")
	ErrInvalidIssuer   = errors.New("issuer inválido")
	ErrInvalidAudience = errors.New("audience inválido")
	ErrTokenExpired    = errors.New("token expirado")
	ErrMissingSubject  = errors.New("falta el claim sub")
)

// Claims incluye los claims estándar JWT más el rol que emite el proveedor de identidad.
type Claims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// Config parámetros de validación. Issuer debe ser <base del proveedor>/auth/v1;
// Audience es el literal que el proveedor pone en los access tokens ("authenticated").
type Config struct {
	Secret   string
	Issuer   string
	Audience string
}

// Validator valida access tokens del proveedor de identidad. Sin estado: no hay lista de
// revocación, ni protección de replay, ni tolerancia de reloj.
type Validator struct {
	cfg Config
}

// NewValidator construye el validador con la configuración inmutable de la app.
func NewValidator(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate verifica el token en orden: firma HMAC, issuer, audience, expiración y subject.
// Cada chequeo falla de forma independiente con su error tipado. En éxito devuelve los claims;
// el caller usa Subject como identificador canónico del usuario durante el resto del request.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	if v.cfg.Secret == "" {
		return nil, fmt.Errorf("%w: secret vacío", ErrInvalidToken)
	}

	// WithoutClaimsValidation: la firma se verifica aquí; los claims se chequean
	// manualmente abajo para controlar el orden y el error devuelto.
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(v.cfg.Secret), nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Issuer != v.cfg.Issuer {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIssuer, claims.Issuer)
	}
	if !containsAudience(claims.Audience, v.cfg.Audience) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAudience, []string(claims.Audience))
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		return nil, ErrTokenExpired
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	return claims, nil
}

func containsAudience(aud jwt.ClaimStrings, want string) bool {
	for _, a := range aud {
		if a == want {
			return true
		}
	}
	return false
}

// Generate emite un token firmado con los mismos claims que el proveedor. Pensado para
// tests y entornos locales sin proveedor; en producción los tokens los emite Supabase.
func Generate(cfg Config, subject, role string, ttl time.Duration) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("token: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(cfg.Secret))
}
