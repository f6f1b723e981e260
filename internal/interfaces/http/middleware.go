package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const headerRequestID = "X-Request-ID"

// RequestLogger registra cada petición con zerolog: método, ruta, estado y duración.
// Las respuestas 5xx se registran en nivel error junto con la causa.
func RequestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := c.Get(headerRequestID)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Set(headerRequestID, reqID)

		chainErr := c.Next()
		if chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
			if cause, ok := c.Locals(localsErr).(error); ok {
				ev = ev.Err(cause)
			} else if chainErr != nil {
				ev = ev.Err(chainErr)
			}
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("http request")
		return nil
	}
}
