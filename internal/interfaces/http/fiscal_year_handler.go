package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-api/internal/application/accounting"
	"github.com/jhoicas/Contable-api/internal/application/dto"
)

// FiscalYearHandler ciclo de vida de los años fiscales.
type FiscalYearHandler struct {
	uc *accounting.FiscalYearUseCase
}

// NewFiscalYearHandler construye el handler.
func NewFiscalYearHandler(uc *accounting.FiscalYearUseCase) *FiscalYearHandler {
	return &FiscalYearHandler{uc: uc}
}

// Mount registra las rutas de años fiscales.
func (h *FiscalYearHandler) Mount(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/by-company/:companyId<guid>", h.ListByCompany)
	r.Get("/by-company/:companyId<guid>/active", h.ListActiveByCompany)
	r.Get("/by-company/:companyId<guid>/open", h.ListOpenByCompany)
	r.Get("/by-company/:companyId<guid>/closed", h.ListClosedByCompany)
	r.Get("/by-company/:companyId<guid>/code/:code", h.GetByCompanyAndCode)
	r.Get("/by-company/:companyId<guid>/date/:date", h.GetByCompanyAndDate)
	r.Get("/:id<guid>", h.GetByID)
	r.Patch("/:id<guid>", h.Update)
	r.Delete("/:id<guid>", h.Remove)
	r.Post("/:id<guid>/close", h.Close)
	r.Post("/:id<guid>/reopen", h.Reopen)
}

// Create godoc
// @Summary      Crear año fiscal
// @Description  Rechaza rangos invertidos, códigos repetidos y solapamientos con otro año de la empresa.
// @Tags         fiscal-years
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFiscalYearRequest  true  "Año fiscal"
// @Success      201   {object}  dto.FiscalYearResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fiscal-years [post]
func (h *FiscalYearHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFiscalYearRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

// GetByID godoc
// @Summary      Obtener año fiscal
// @Tags         fiscal-years
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.FiscalYearResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal-years/{id} [get]
func (h *FiscalYearHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *FiscalYearHandler) GetByCompanyAndCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCompanyAndCode(c.UserContext(), c.Params("companyId"), c.Params("code"))
	return ok(c, out, err)
}

// GetByCompanyAndDate godoc
// @Summary      Año fiscal activo que contiene una fecha
// @Tags         fiscal-years
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        date       path  string  true  "Fecha YYYY-MM-DD"
// @Success      200  {object}  dto.FiscalYearResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal-years/by-company/{companyId}/date/{date} [get]
func (h *FiscalYearHandler) GetByCompanyAndDate(c *fiber.Ctx) error {
	out, err := h.uc.GetByCompanyAndDate(c.UserContext(), c.Params("companyId"), c.Params("date"))
	return ok(c, out, err)
}

func (h *FiscalYearHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

// ListByCompany godoc
// @Summary      Años fiscales de una empresa
// @Tags         fiscal-years
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.FiscalYearResponse
// @Router       /api/fiscal-years/by-company/{companyId} [get]
func (h *FiscalYearHandler) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.UserContext(), c.Params("companyId"))
	return ok(c, out, err)
}

func (h *FiscalYearHandler) ListActiveByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListActiveByCompany(c.UserContext(), c.Params("companyId"))
	return ok(c, out, err)
}

func (h *FiscalYearHandler) ListOpenByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListOpenByCompany(c.UserContext(), c.Params("companyId"))
	return ok(c, out, err)
}

func (h *FiscalYearHandler) ListClosedByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListClosedByCompany(c.UserContext(), c.Params("companyId"))
	return ok(c, out, err)
}

// Update godoc
// @Summary      Actualizar año fiscal abierto
// @Tags         fiscal-years
// @Accept       json
// @Produce      json
// @Param        id    path  string                       true  "ID"
// @Param        body  body  dto.UpdateFiscalYearRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.FiscalYearResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/fiscal-years/{id} [patch]
func (h *FiscalYearHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFiscalYearRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// Close godoc
// @Summary      Cerrar año fiscal
// @Tags         fiscal-years
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.FiscalYearResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal-years/{id}/close [post]
func (h *FiscalYearHandler) Close(c *fiber.Ctx) error {
	out, err := h.uc.Close(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

// Reopen godoc
// @Summary      Reabrir año fiscal
// @Tags         fiscal-years
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.FiscalYearResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/fiscal-years/{id}/reopen [post]
func (h *FiscalYearHandler) Reopen(c *fiber.Ctx) error {
	out, err := h.uc.Reopen(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *FiscalYearHandler) Remove(c *fiber.Ctx) error {
	return noContent(c, h.uc.Remove(c.UserContext(), c.Params("id")))
}
