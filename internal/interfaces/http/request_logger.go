package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sarismart/retail-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y duración.
// Los errores del handler ya viajan como respuesta JSON, así que aquí sólo se observa.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		event := log.Info()
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			event = log.Error()
		}
		event.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")

		return err
	}
}
