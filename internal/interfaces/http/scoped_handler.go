package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// scopedUseCase operaciones comunes de los datos maestros por empresa
// (cuentas, diarios, impuestos, terceros, productos y bodegas).
type scopedUseCase[C, U, R any] interface {
	Create(ctx context.Context, in C) (*R, error)
	GetByID(ctx context.Context, id string) (*R, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*R, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]R, error)
	Update(ctx context.Context, id string, in U) (*R, error)
	Remove(ctx context.Context, id string) error
}

// ScopedHandler CRUD HTTP de un recurso de datos maestros.
//
//	POST   /                                  crear
//	GET    /by-company/:companyId             listar (?active_only=true)
//	GET    /by-company/:companyId/code/:code  por código
//	GET    /:id                               por ID
//	PATCH  /:id                               actualizar
//	DELETE /:id                               baja lógica (204)
//
// Los parámetros de ID llevan la restricción <guid>: un valor que no es UUID no
// encuentra ruta y responde 404 sin llegar a la base de datos.
type ScopedHandler[C, U, R any] struct {
	uc scopedUseCase[C, U, R]
}

// NewScopedHandler construye el handler sobre el caso de uso.
func NewScopedHandler[C, U, R any](uc scopedUseCase[C, U, R]) *ScopedHandler[C, U, R] {
	return &ScopedHandler[C, U, R]{uc: uc}
}

// Mount registra las rutas en r. extra permite añadir rutas propias del recurso
// antes de /:id.
func (h *ScopedHandler[C, U, R]) Mount(r fiber.Router, extra ...func(fiber.Router)) {
	r.Post("/", h.Create)
	r.Get("/by-company/:companyId<guid>", h.ListByCompany)
	r.Get("/by-company/:companyId<guid>/code/:code", h.GetByCompanyAndCode)
	for _, fn := range extra {
		fn(r)
	}
	r.Get("/:id<guid>", h.GetByID)
	r.Patch("/:id<guid>", h.Update)
	r.Delete("/:id<guid>", h.Remove)
}

func (h *ScopedHandler[C, U, R]) Create(c *fiber.Ctx) error {
	var in C
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

func (h *ScopedHandler[C, U, R]) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *ScopedHandler[C, U, R]) GetByCompanyAndCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCompanyAndCode(c.UserContext(), c.Params("companyId"), c.Params("code"))
	return ok(c, out, err)
}

func (h *ScopedHandler[C, U, R]) ListByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.UserContext(), c.Params("companyId"), c.QueryBool("active_only", false))
	return ok(c, out, err)
}

func (h *ScopedHandler[C, U, R]) Update(c *fiber.Ctx) error {
	var in U
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

func (h *ScopedHandler[C, U, R]) Remove(c *fiber.Ctx) error {
	return noContent(c, h.uc.Remove(c.UserContext(), c.Params("id")))
}
