package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sarismart/retail-api/internal/application/dto"
	"github.com/sarismart/retail-api/pkg/token"
)

// Locals keys para claims del token en Fiber.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// Headers aceptados para el token, en orden de preferencia. Authorization es el
// estándar; los demás existen por compatibilidad con clientes móviles antiguos.
var tokenHeaders = []string{"Authorization", "X-Authorization", "Auth", "X-Auth-Token"}

// AuthMiddleware valida el Bearer token del proveedor de identidad y carga
// el subject y el rol en c.Locals. Cada fallo de validación tiene su propio
// código 401 para que el cliente distinga token expirado de token inválido.
func AuthMiddleware(validator *token.Validator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := extractToken(c)
		if raw == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}

		claims, err := validator.Validate(raw)
		if err != nil {
			code := "INVALID_TOKEN"
			switch {
			case errors.Is(err, token.ErrInvalidIssuer):
				code = "INVALID_ISSUER"
			case errors.Is(err, token.ErrInvalidAudience):
				code = "INVALID_AUDIENCE"
			case errors.Is(err, token.ErrTokenExpired):
				code = "TOKEN_EXPIRED"
			case errors.Is(err, token.ErrMissingSubject):
				code = "MISSING_SUBJECT"
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: "token inválido o expirado"})
		}

		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// extractToken busca el token en los headers aceptados. El valor puede venir
// con o sin el prefijo "Bearer ".
func extractToken(c *fiber.Ctx) string {
	for _, header := range tokenHeaders {
		value := strings.TrimSpace(c.Get(header))
		if value == "" {
			continue
		}
		if parts := strings.SplitN(value, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		return value
	}
	return ""
}

// GetUserID devuelve el subject del caller (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol declarado en el token (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
