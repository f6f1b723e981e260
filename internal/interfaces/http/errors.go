package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
)

// localsErr clave de c.Locals donde queda el error interno para el log de peticiones.
const localsErr = "request_error"

// writeError traduce un error de dominio a su respuesta HTTP:
// ErrNotFound → 404, conflicto/duplicado → 409, ErrInvalidInput → 400 y el resto 500.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case domain.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		c.Locals(localsErr, err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// errorHandler respuesta para errores que no pasan por un handler (ruta inexistente, panic recuperado).
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := "INTERNAL"
		switch fe.Code {
		case fiber.StatusNotFound:
			code = "NOT_FOUND"
		case fiber.StatusMethodNotAllowed:
			code = "METHOD_NOT_ALLOWED"
		case fiber.StatusBadRequest:
			code = "VALIDATION"
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
	}
	return writeError(c, err)
}

// ok responde 200 con out o traduce err.
func ok(c *fiber.Ctx, out any, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// created responde 201 con out o traduce err.
func created(c *fiber.Ctx, out any, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// noContent responde 204 o traduce err.
func noContent(c *fiber.Ctx, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
