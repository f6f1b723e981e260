package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
)

// AccountHandler plan de cuentas: CRUD común más consultas por tipo y búsqueda.
type AccountHandler struct {
	*ScopedHandler[dto.CreateAccountRequest, dto.UpdateAccountRequest, dto.AccountResponse]
	uc *usecase.AccountUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		ScopedHandler: NewScopedHandler[dto.CreateAccountRequest, dto.UpdateAccountRequest, dto.AccountResponse](uc),
		uc:            uc,
	}
}

// Mount registra las rutas del plan de cuentas.
func (h *AccountHandler) Mount(r fiber.Router) {
	h.ScopedHandler.Mount(r, func(r fiber.Router) {
		r.Get("/by-company/:companyId<guid>/type/:type", h.ListByType)
		r.Get("/by-company/:companyId<guid>/search", h.Search)
	})
}

// ListByType godoc
// @Summary      Cuentas activas de un tipo
// @Tags         accounts
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        type       path  string  true  "ASSET, LIABILITY, EQUITY, REVENUE o EXPENSE"
// @Success      200  {array}   dto.AccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/accounts/by-company/{companyId}/type/{type} [get]
func (h *AccountHandler) ListByType(c *fiber.Ctx) error {
	out, err := h.uc.ListByType(c.UserContext(), c.Params("companyId"), c.Params("type"))
	return ok(c, out, err)
}

// Search godoc
// @Summary      Buscar cuentas por código o nombre
// @Tags         accounts
// @Produce      json
// @Param        companyId  path   string  true  "ID de la empresa"
// @Param        q          query  string  true  "Texto (mínimo 2 caracteres)"
// @Success      200  {array}   dto.AccountResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/accounts/by-company/{companyId}/search [get]
func (h *AccountHandler) Search(c *fiber.Ctx) error {
	out, err := h.uc.Search(c.UserContext(), c.Params("companyId"), c.Query("q"))
	return ok(c, out, err)
}
