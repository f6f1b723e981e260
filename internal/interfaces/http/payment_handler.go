package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/application/dto"
)

// PaymentHandler registro de pagos recibidos y enviados.
type PaymentHandler struct {
	uc *billing.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *billing.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

// Mount registra las rutas de pagos.
func (h *PaymentHandler) Mount(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/by-company/:companyId<guid>", h.ListByCompany)
	r.Get("/by-company/:companyId<guid>/number/:number", h.GetByCompanyAndNumber)
	r.Get("/by-partner/:partnerId<guid>", h.ListByBusinessPartner)
	r.Get("/by-invoice/:invoiceId<guid>", h.ListByInvoice)
	r.Get("/total/by-company/:companyId<guid>/by-type/:type", h.TotalByCompanyAndType)
	r.Get("/:id<guid>", h.GetByID)
	r.Patch("/:id<guid>", h.Update)
	r.Patch("/:id<guid>/status/:status", h.UpdateStatus)
	r.Delete("/:id<guid>", h.Remove)
}

// Create godoc
// @Summary      Registrar pago
// @Description  El pago nace PENDING y no modifica el saldo de la factura vinculada.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePaymentRequest  true  "Pago"
// @Success      201   {object}  dto.PaymentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payments [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *PaymentHandler) GetByCompanyAndNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByCompanyAndNumber(c.UserContext(), c.Params("companyId"), c.Params("number"))
	return ok(c, out, err)
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

// ListByCompany godoc
// @Summary      Pagos de una empresa
// @Tags         payments
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        type       query  string  false  "RECEIVED o SENT"
// @Param        status     query  string  false  "Estado"
// @Param        method     query  string  false  "Método de pago"
// @Param        from       query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}   dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/payments/by-company/{companyId} [get]
func (h *PaymentHandler) ListByCompany(c *fiber.Ctx) error {
	var f dto.PaymentFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListByCompany(c.UserContext(), c.Params("companyId"), f)
	return ok(c, out, err)
}

func (h *PaymentHandler) ListByBusinessPartner(c *fiber.Ctx) error {
	out, err := h.uc.ListByBusinessPartner(c.UserContext(), c.Params("partnerId"))
	return ok(c, out, err)
}

func (h *PaymentHandler) ListByInvoice(c *fiber.Ctx) error {
	out, err := h.uc.ListByInvoice(c.UserContext(), c.Params("invoiceId"))
	return ok(c, out, err)
}

// TotalByCompanyAndType godoc
// @Summary      Suma de pagos COMPLETED por tipo
// @Tags         payments
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Param        type       path  string  true  "RECEIVED o SENT"
// @Success      200  {object}  dto.PaymentTotalResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/payments/total/by-company/{companyId}/by-type/{type} [get]
func (h *PaymentHandler) TotalByCompanyAndType(c *fiber.Ctx) error {
	out, err := h.uc.TotalByCompanyAndType(c.UserContext(), c.Params("companyId"), c.Params("type"))
	return ok(c, out, err)
}

// Update godoc
// @Summary      Actualizar pago
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID"
// @Param        body  body  dto.UpdatePaymentRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id} [patch]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del pago
// @Tags         payments
// @Produce      json
// @Param        id      path  string  true  "ID"
// @Param        status  path  string  true  "PENDING, COMPLETED, FAILED o CANCELLED"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payments/{id}/status/{status} [patch]
func (h *PaymentHandler) UpdateStatus(c *fiber.Ctx) error {
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), c.Params("status"))
	return ok(c, out, err)
}

func (h *PaymentHandler) Remove(c *fiber.Ctx) error {
	return noContent(c, h.uc.Remove(c.UserContext(), c.Params("id")))
}
