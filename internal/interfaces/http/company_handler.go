package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para el recurso Company.
type CompanyHandler struct {
	uc *usecase.CompanyUseCase
}

// NewCompanyHandler construye el handler inyectando el caso de uso.
func NewCompanyHandler(uc *usecase.CompanyUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// Mount registra las rutas de empresas.
func (h *CompanyHandler) Mount(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/search", h.Search)
	r.Get("/code/:code", h.GetByCode)
	r.Get("/:id<guid>", h.GetByID)
	r.Patch("/:id<guid>", h.Update)
	r.Delete("/:id<guid>", h.Remove)
}

// Create godoc
// @Summary      Crear empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCompanyRequest  true  "Datos de la empresa"
// @Success      201   {object}  dto.CompanyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

// GetByID godoc
// @Summary      Obtener empresa por ID
// @Tags         companies
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [get]
func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

// GetByCode godoc
// @Summary      Obtener empresa por código
// @Tags         companies
// @Produce      json
// @Param        code  path  string  true  "Código de la empresa"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/code/{code} [get]
func (h *CompanyHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.UserContext(), c.Params("code"))
	return ok(c, out, err)
}

// List godoc
// @Summary      Listar empresas
// @Tags         companies
// @Produce      json
// @Param        limit        query  int   false  "Límite"   default(20)
// @Param        offset       query  int   false  "Offset"   default(0)
// @Param        active_only  query  bool  false  "Solo activas"
// @Success      200     {object}  dto.CompanyListResponse
// @Router       /api/companies [get]
func (h *CompanyHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(c.UserContext(), page, c.QueryBool("active_only", false))
	return ok(c, out, err)
}

// Search godoc
// @Summary      Buscar empresas por código o nombre
// @Tags         companies
// @Produce      json
// @Param        q    query  string  true  "Texto (mínimo 2 caracteres)"
// @Success      200  {array}   dto.CompanyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/companies/search [get]
func (h *CompanyHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Query("q"))
	return ok(c, out, err)
}

// Update godoc
// @Summary      Actualizar empresa
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID de la empresa"
// @Param        body  body  dto.UpdateCompanyRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.CompanyResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [patch]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// Remove godoc
// @Summary      Desactivar empresa
// @Tags         companies
// @Param        id   path  string  true  "ID de la empresa"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id} [delete]
func (h *CompanyHandler) Remove(c *fiber.Ctx) error {
	return noContent(c, h.uc.Remove(c.UserContext(), c.Params("id")))
}
