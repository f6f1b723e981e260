package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"

	"github.com/jhoicas/Contable-api/internal/application/accounting"
	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC         *usecase.CompanyUseCase
	CurrencyUC        *usecase.CurrencyUseCase
	AccountUC         *usecase.AccountUseCase
	JournalUC         *usecase.JournalUseCase
	TaxCodeUC         *usecase.TaxCodeUseCase
	BusinessPartnerUC *usecase.BusinessPartnerUseCase
	ProductUC         *usecase.ProductUseCase
	WarehouseUC       *usecase.WarehouseUseCase
	FiscalYearUC      *accounting.FiscalYearUseCase
	InvoiceUC         *billing.InvoiceUseCase
	PaymentUC         *billing.PaymentUseCase
	ExportUC          *billing.ExportUseCase
}

// NewApp crea la aplicación Fiber con recover, log de peticiones y /health.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ErrorHandler: errorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": name})
	})
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogos globales
	NewCompanyHandler(deps.CompanyUC).Mount(api.Group("/companies"))
	NewCurrencyHandler(deps.CurrencyUC).Mount(api.Group("/currencies"))

	// Datos maestros por empresa
	NewAccountHandler(deps.AccountUC).Mount(api.Group("/accounts"))
	NewScopedHandler[dto.CreateJournalRequest, dto.UpdateJournalRequest, dto.JournalResponse](deps.JournalUC).
		Mount(api.Group("/journals"))
	NewScopedHandler[dto.CreateTaxCodeRequest, dto.UpdateTaxCodeRequest, dto.TaxCodeResponse](deps.TaxCodeUC).
		Mount(api.Group("/tax-codes"))
	NewScopedHandler[dto.CreateBusinessPartnerRequest, dto.UpdateBusinessPartnerRequest, dto.BusinessPartnerResponse](deps.BusinessPartnerUC).
		Mount(api.Group("/business-partners"))
	NewScopedHandler[dto.CreateProductRequest, dto.UpdateProductRequest, dto.ProductResponse](deps.ProductUC).
		Mount(api.Group("/products"))
	NewScopedHandler[dto.CreateWarehouseRequest, dto.UpdateWarehouseRequest, dto.WarehouseResponse](deps.WarehouseUC).
		Mount(api.Group("/warehouses"))

	// Contabilidad
	NewFiscalYearHandler(deps.FiscalYearUC).Mount(api.Group("/fiscal-years"))

	// Facturación
	NewInvoiceHandler(deps.InvoiceUC, deps.ExportUC).Mount(api.Group("/invoices"))
	NewPaymentHandler(deps.PaymentUC).Mount(api.Group("/payments"))
}
