package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/application/dto"
)

// headerDigest cabecera con el SHA-256 de la forma canónica del UBL.
const headerDigest = "X-Document-Digest"

// InvoiceHandler maneja las peticiones HTTP de facturación.
type InvoiceHandler struct {
	uc     *billing.InvoiceUseCase
	export *billing.ExportUseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, export *billing.ExportUseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, export: export}
}

// Mount registra las rutas de facturas.
func (h *InvoiceHandler) Mount(r fiber.Router) {
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/by-company/:companyId<guid>", h.ListByCompany)
	r.Get("/by-company/:companyId<guid>/overdue", h.ListOverdueByCompany)
	r.Get("/by-company/:companyId<guid>/number/:number", h.GetByCompanyAndNumber)
	r.Get("/by-partner/:partnerId<guid>", h.ListByBusinessPartner)
	r.Get("/:id<guid>", h.GetByID)
	r.Get("/:id<guid>/pdf", h.DownloadPDF)
	r.Get("/:id<guid>/xml", h.DownloadXML)
	r.Patch("/:id<guid>", h.Update)
	r.Patch("/:id<guid>/status/:status", h.UpdateStatus)
	r.Post("/:id<guid>/payment", h.RecordPayment)
	r.Delete("/:id<guid>", h.Remove)
}

// Create godoc
// @Summary      Crear factura
// @Description  El saldo inicial es el total; pagado en cero.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateInvoiceRequest  true  "Factura"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return created(c, out, err)
}

// GetByID godoc
// @Summary      Obtener factura
// @Tags         invoices
// @Produce      json
// @Param        id   path  string  true  "ID"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	return ok(c, out, err)
}

func (h *InvoiceHandler) GetByCompanyAndNumber(c *fiber.Ctx) error {
	out, err := h.uc.GetByCompanyAndNumber(c.UserContext(), c.Params("companyId"), c.Params("number"))
	return ok(c, out, err)
}

func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	return ok(c, out, err)
}

// ListByCompany godoc
// @Summary      Facturas de una empresa
// @Tags         invoices
// @Produce      json
// @Param        companyId  path   string  true   "ID de la empresa"
// @Param        type       query  string  false  "SALES, PURCHASE, CREDIT_NOTE o DEBIT_NOTE"
// @Param        status     query  string  false  "Estado"
// @Param        from       query  string  false  "Desde (YYYY-MM-DD)"
// @Param        to         query  string  false  "Hasta (YYYY-MM-DD)"
// @Success      200  {array}   dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/invoices/by-company/{companyId} [get]
func (h *InvoiceHandler) ListByCompany(c *fiber.Ctx) error {
	var f dto.InvoiceFilterRequest
	if err := c.QueryParser(&f); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ListByCompany(c.UserContext(), c.Params("companyId"), f)
	return ok(c, out, err)
}

func (h *InvoiceHandler) ListByBusinessPartner(c *fiber.Ctx) error {
	out, err := h.uc.ListByBusinessPartner(c.UserContext(), c.Params("partnerId"))
	return ok(c, out, err)
}

// ListOverdueByCompany godoc
// @Summary      Facturas vencidas con saldo
// @Tags         invoices
// @Produce      json
// @Param        companyId  path  string  true  "ID de la empresa"
// @Success      200  {array}  dto.InvoiceResponse
// @Router       /api/invoices/by-company/{companyId}/overdue [get]
func (h *InvoiceHandler) ListOverdueByCompany(c *fiber.Ctx) error {
	out, err := h.uc.ListOverdueByCompany(c.UserContext(), c.Params("companyId"))
	return ok(c, out, err)
}

// Update godoc
// @Summary      Actualizar factura
// @Description  Un nuevo total recalcula el saldo y el estado.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID"
// @Param        body  body  dto.UpdateInvoiceRequest  true  "Campos a modificar"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [patch]
func (h *InvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

// UpdateStatus godoc
// @Summary      Fijar el estado de una factura
// @Tags         invoices
// @Produce      json
// @Param        id      path  string  true  "ID"
// @Param        status  path  string  true  "DRAFT, POSTED, PARTIALLY_PAID, PAID o CANCELLED"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/status/{status} [patch]
func (h *InvoiceHandler) UpdateStatus(c *fiber.Ctx) error {
	out, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), c.Params("status"))
	return ok(c, out, err)
}

// RecordPayment godoc
// @Summary      Aplicar un pago al saldo
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Param        id    path  string                    true  "ID"
// @Param        body  body  dto.RecordPaymentRequest  true  "Monto"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/payment [post]
func (h *InvoiceHandler) RecordPayment(c *fiber.Ctx) error {
	var in dto.RecordPaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RecordPayment(c.UserContext(), c.Params("id"), in)
	return ok(c, out, err)
}

func (h *InvoiceHandler) Remove(c *fiber.Ctx) error {
	return noContent(c, h.uc.Remove(c.UserContext(), c.Params("id")))
}

// DownloadPDF godoc
// @Summary      Estado de cuenta de la factura (PDF)
// @Tags         invoices
// @Produce      application/pdf
// @Param        id   path  string  true  "ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	out, filename, err := h.export.DownloadInvoicePDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(out)
}

// DownloadXML godoc
// @Summary      Documento UBL 2.1 de la factura
// @Tags         invoices
// @Produce      application/xml
// @Param        id   path  string  true  "ID"
// @Success      200  {file}    binary
// @Header       200  {string}  X-Document-Digest  "SHA-256 de la forma canónica"
// @Header       200  {string}  ETag               "digest entre comillas"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/xml [get]
func (h *InvoiceHandler) DownloadXML(c *fiber.Ctx) error {
	out, digest, filename, err := h.export.DownloadInvoiceXML(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(headerDigest, digest)
	c.Set(fiber.HeaderETag, `"`+digest+`"`)
	return c.Send(out)
}
