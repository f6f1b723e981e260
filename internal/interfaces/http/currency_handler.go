package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
)

// CurrencyHandler catálogo global de monedas.
type CurrencyHandler struct {
	uc *usecase.CurrencyUseCase
}

func NewCurrencyHandler(uc *usecase.CurrencyUseCase) *CurrencyHandler {
	return &CurrencyHandler{uc: uc}
}

func (h *CurrencyHandler) Mount(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/decimal-places/:n", h.ListByDecimalPlaces)
	r.Get("/code/:code", h.GetByCode)
	r.Get("/:id<guid>", h.GetByID)
	r.Patch("/:id<guid>", h.Update)
	r.Delete("/:id<guid>", h.Remove)
}

// Create godoc
// @Summary      Crear moneda (ISO 4217)
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCurrencyRequest  true  "Moneda"
// @Success      201   {object}  dto.CurrencyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/currencies [post]
func (h *CurrencyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCurrencyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

// GetByID godoc
// @Summary      Obtener moneda por ID
// @Tags         currencies
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.CurrencyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/currencies/{id} [get]
func (h *CurrencyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *CurrencyHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), c.Params("code"))
	return ok(c, out, err)
}

// List godoc
// @Summary      Listar monedas
// @Tags         currencies
// @Produce      json
// @Param        active_only  query  bool  false  "Solo activas"
// @Success      200  {array}  dto.CurrencyResponse
// @Router       /api/currencies [get]
func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.QueryBool("active_only", false))
	return ok(c, out, err)
}

func (h *CurrencyHandler) ListByDecimalPlaces(c *fiber.Ctx) error {
	n, err := c.ParamsInt("n")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "n debe ser entero"})
	}
	out, err := h.uc.ListByDecimalPlaces(c.UserContext(), n)
	return ok(c, out, err)
}

func (h *CurrencyHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	return ok(c, out, err)
}

// Update godoc
// @Summary      Actualizar moneda
// @Tags         currencies
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID"
// @Param        body  body  dto.UpdateCurrencyRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.CurrencyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/currencies/{id} [patch]
func (h *CurrencyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCurrencyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

func (h *CurrencyHandler) Remove(c *fiber.Ctx) error {
	return noContent(c, h.uc.Remove(c.UserContext(), c.Params("id")))
}
