package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarismart/retail-api/pkg/token"
)

const testSecret = "test-secret-key-for-unit-tests"

var testCfg = token.Config{
	Secret:   testSecret,
	Issuer:   "https://proyecto.supabase.co/auth/v1",
	Audience: "authenticated",
}

// sign firma un Claims arbitrario con el secret indicado (para fabricar tokens malformados).
func sign(t *testing.T, secret string, claims token.Claims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

// claimsOK devuelve un juego de claims válido que cada test muta según el caso.
func claimsOK() token.Claims {
	now := time.Now()
	return token.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testCfg.Issuer,
			Subject:   "uid-123",
			Audience:  jwt.ClaimStrings{"authenticated"},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Role: "authenticated",
	}
}

func TestValidate_TokenValido(t *testing.T) {
	v := token.NewValidator(testCfg)

	claims, err := v.Validate(sign(t, testSecret, claimsOK()))
	require.NoError(t, err)

	assert.Equal(t, "uid-123", claims.Subject, "sub debe ser el identificador canónico")
	assert.Equal(t, "authenticated", claims.Role)
}

func TestValidate_FirmaIncorrecta_RetornaErrInvalidToken(t *testing.T) {
	v := token.NewValidator(testCfg)

	_, err := v.Validate(sign(t, "otro-secret-completamente-distinto", claimsOK()))
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidate_Malformado_RetornaErrInvalidToken(t *testing.T) {
	v := token.NewValidator(testCfg)

	_, err := v.Validate("token.invalido.aqui")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestValidate_IssuerDistinto_RetornaErrInvalidIssuer(t *testing.T) {
	v := token.NewValidator(testCfg)
	c := claimsOK()
	c.Issuer = "https://otro.supabase.co/auth/v1"

	// Bien formado en todo lo demás: la firma es válida y no está expirado.
	_, err := v.Validate(sign(t, testSecret, c))
	assert.ErrorIs(t, err, token.ErrInvalidIssuer)
}

func TestValidate_AudienceDistinto_RetornaErrInvalidAudience(t *testing.T) {
	v := token.NewValidator(testCfg)
	c := claimsOK()
	c.Audience = jwt.ClaimStrings{"anon"}

	_, err := v.Validate(sign(t, testSecret, c))
	assert.ErrorIs(t, err, token.ErrInvalidAudience)
}

func TestValidate_Expirado_RetornaErrTokenExpired(t *testing.T) {
	v := token.NewValidator(testCfg)
	c := claimsOK()
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	// Firma válida pero exp en el pasado: debe fallar exactamente con ErrTokenExpired.
	_, err := v.Validate(sign(t, testSecret, c))
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestValidate_SinExp_RetornaErrTokenExpired(t *testing.T) {
	v := token.NewValidator(testCfg)
	c := claimsOK()
	c.ExpiresAt = nil

	_, err := v.Validate(sign(t, testSecret, c))
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestValidate_SinSubject_RetornaErrMissingSubject(t *testing.T) {
	v := token.NewValidator(testCfg)
	c := claimsOK()
	c.Subject = ""

	_, err := v.Validate(sign(t, testSecret, c))
	assert.ErrorIs(t, err, token.ErrMissingSubject)
}

// El orden importa: un token expirado con issuer incorrecto debe reportar el issuer,
// porque ese chequeo va antes que el de expiración.
func TestValidate_OrdenDeChequeos(t *testing.T) {
	v := token.NewValidator(testCfg)
	c := claimsOK()
	c.Issuer = "https://otro.supabase.co/auth/v1"
	c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	_, err := v.Validate(sign(t, testSecret, c))
	assert.ErrorIs(t, err, token.ErrInvalidIssuer)
}

func TestGenerate_RoundTrip(t *testing.T) {
	tok, err := token.Generate(testCfg, "uid-999", "authenticated", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := token.NewValidator(testCfg).Validate(tok)
	require.NoError(t, err)
	assert.Equal(t, "uid-999", claims.Subject)
}
