package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/Contable-api/docs"
	"github.com/jhoicas/Contable-api/internal/application/accounting"
	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Contable-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Contable-api/internal/infrastructure/postgres"
	infraubl "github.com/jhoicas/Contable-api/internal/infrastructure/ubl"
	httpRouter "github.com/jhoicas/Contable-api/internal/interfaces/http"
	"github.com/jhoicas/Contable-api/pkg/config"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

// @title        Contable API
// @version      1.0
// @description  Contabilidad multiempresa: años fiscales, facturas, pagos y datos maestros.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.RunMigrations(pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
		log.Info().Msg("migraciones aplicadas")
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	currencyRepo := postgres.NewCurrencyRepository(pool)
	partnerRepo := postgres.NewBusinessPartnerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	fiscalYearUC := accounting.NewFiscalYearUseCase(
		postgres.NewFiscalYearRepository(pool), log.Component("fiscal_year"),
	)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, txRunner, log.Component("invoice"))
	paymentUC := billing.NewPaymentUseCase(paymentRepo, log.Component("payment"))

	// Exportaciones: estado de cuenta PDF y UBL 2.1 con digest C14N
	exportUC := billing.NewExportUseCase(
		invoiceRepo, companyRepo, partnerRepo, currencyRepo, paymentRepo,
		infrapdf.NewMarotoPDFGenerator(), infraubl.NewInvoiceBuilder(),
	)

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs
	swaggerFile, err := swaggerFilePath(cfg.Swagger.FilePath)
	if err != nil {
		log.Warn().Err(err).Msg("swagger no disponible; /docs deshabilitado")
	} else {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Contable API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:         usecase.NewCompanyUseCase(companyRepo),
		CurrencyUC:        usecase.NewCurrencyUseCase(currencyRepo),
		AccountUC:         usecase.NewAccountUseCase(postgres.NewAccountRepository(pool)),
		JournalUC:         usecase.NewJournalUseCase(postgres.NewJournalRepository(pool)),
		TaxCodeUC:         usecase.NewTaxCodeUseCase(postgres.NewTaxCodeRepository(pool)),
		BusinessPartnerUC: usecase.NewBusinessPartnerUseCase(partnerRepo),
		ProductUC:         usecase.NewProductUseCase(postgres.NewProductRepository(pool)),
		WarehouseUC:       usecase.NewWarehouseUseCase(postgres.NewWarehouseRepository(pool)),
		FiscalYearUC:      fiscalYearUC,
		InvoiceUC:         invoiceUC,
		PaymentUC:         paymentUC,
		ExportUC:          exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// swaggerFilePath devuelve path si existe; si no, vuelca el documento registrado por swag
// en un archivo temporal.
func swaggerFilePath(path string) (string, error) {
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	f, err := os.CreateTemp("", "contable-swagger-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := f.WriteString(docs.SwaggerInfo.ReadDoc()); err != nil {
		return "", err
	}
	return f.Name(), nil
}
