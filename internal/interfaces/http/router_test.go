package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/accounting"
	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	"github.com/jhoicas/Contable-api/internal/infrastructure/memory"
	"github.com/jhoicas/Contable-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Contable-api/internal/infrastructure/ubl"
	httpapi "github.com/jhoicas/Contable-api/internal/interfaces/http"
)

const (
	companyID  = "00000000-0000-0000-0000-000000000001"
	partnerID  = "00000000-0000-0000-0000-0000000000aa"
	currencyID = "00000000-0000-0000-0000-0000000000cc"
)

func newTestApp() *fiber.App {
	s := memory.NewStore()
	log := zerolog.Nop()

	invoiceUC := billing.NewInvoiceUseCase(s.Invoices(), s.NewTxRunner(), log)
	exportUC := billing.NewExportUseCase(
		s.Invoices(), s.Companies(), s.BusinessPartners(), s.Currencies(), s.Payments(),
		pdf.NewMarotoPDFGenerator(), ubl.NewInvoiceBuilder(),
	)

	app := httpapi.NewApp("contable-test", log)
	httpapi.Router(app, httpapi.RouterDeps{
		CompanyUC:         usecase.NewCompanyUseCase(s.Companies()),
		CurrencyUC:        usecase.NewCurrencyUseCase(s.Currencies()),
		AccountUC:         usecase.NewAccountUseCase(s.Accounts()),
		JournalUC:         usecase.NewJournalUseCase(s.Journals()),
		TaxCodeUC:         usecase.NewTaxCodeUseCase(s.TaxCodes()),
		BusinessPartnerUC: usecase.NewBusinessPartnerUseCase(s.BusinessPartners()),
		ProductUC:         usecase.NewProductUseCase(s.Products()),
		WarehouseUC:       usecase.NewWarehouseUseCase(s.Warehouses()),
		FiscalYearUC:      accounting.NewFiscalYearUseCase(s.FiscalYears(), log),
		InvoiceUC:         invoiceUC,
		PaymentUC:         billing.NewPaymentUseCase(s.Payments(), log),
		ExportUC:          exportUC,
	})
	return app
}

func do(t *testing.T, app *fiber.App, method, path string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, b []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(b, &v), string(b))
	return v
}

func fiscalYear(code, start, end string) dto.CreateFiscalYearRequest {
	return dto.CreateFiscalYearRequest{CompanyID: companyID, Code: code, Name: code, StartDate: start, EndDate: end}
}

func createInvoice(t *testing.T, app *fiber.App, number string) dto.InvoiceResponse {
	t.Helper()
	status, body := do(t, app, fiber.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		CompanyID: companyID, InvoiceNumber: number, InvoiceType: "SALES",
		BusinessPartnerID: partnerID, CurrencyID: currencyID,
		InvoiceDate: "2024-03-01", DueDate: "2024-03-31",
		TotalBeforeTax: decimal.NewFromInt(1000), TotalAmount: decimal.NewFromInt(1200),
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	return decode[dto.InvoiceResponse](t, body)
}

// ─── Infraestructura ──────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	status, body := do(t, newTestApp(), fiber.MethodGet, "/health", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, string(body), `"status":"ok"`)
}

func TestRutaInexistente_404JSON(t *testing.T) {
	status, body := do(t, newTestApp(), fiber.MethodGet, "/api/nada", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
}

func TestCuerpoInvalido_400(t *testing.T) {
	app := newTestApp()
	req := httptest.NewRequest(fiber.MethodPost, "/api/fiscal-years", bytes.NewReader([]byte("{no-json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ─── Años fiscales ────────────────────────────────────────────────────────────

func TestFiscalYears_SolapamientoEs409(t *testing.T) {
	app := newTestApp()

	status, body := do(t, app, fiber.MethodPost, "/api/fiscal-years", fiscalYear("FY2024", "2024-01-01", "2024-12-31"))
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, body = do(t, app, fiber.MethodPost, "/api/fiscal-years", fiscalYear("FY2024B", "2024-06-01", "2025-05-31"))
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, body).Code)
}

func TestFiscalYears_RangoInvertidoEs400(t *testing.T) {
	status, body := do(t, newTestApp(), fiber.MethodPost, "/api/fiscal-years", fiscalYear("X", "2024-12-31", "2024-01-01"))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
}

func TestFiscalYears_CerrarDosVecesEs400(t *testing.T) {
	app := newTestApp()
	_, body := do(t, app, fiber.MethodPost, "/api/fiscal-years", fiscalYear("FY2024", "2024-01-01", "2024-12-31"))
	fy := decode[dto.FiscalYearResponse](t, body)

	status, body := do(t, app, fiber.MethodPost, "/api/fiscal-years/"+fy.ID+"/close", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	assert.True(t, decode[dto.FiscalYearResponse](t, body).IsClosed)

	status, _ = do(t, app, fiber.MethodPost, "/api/fiscal-years/"+fy.ID+"/close", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodPatch, "/api/fiscal-years/"+fy.ID, map[string]string{"name": "otro"})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = do(t, app, fiber.MethodPost, "/api/fiscal-years/"+fy.ID+"/reopen", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.False(t, decode[dto.FiscalYearResponse](t, body).IsClosed)
}

func TestFiscalYears_NoEncontradoEs404(t *testing.T) {
	status, _ := do(t, newTestApp(), fiber.MethodGet, "/api/fiscal-years/no-existe", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestRutas_IDNoUUIDEs404SinConsultar(t *testing.T) {
	app := newTestApp()
	cases := []struct{ method, path string }{
		{fiber.MethodGet, "/api/fiscal-years/abc"},
		{fiber.MethodPost, "/api/fiscal-years/abc/close"},
		{fiber.MethodGet, "/api/invoices/by-company/abc"},
		{fiber.MethodGet, "/api/payments/by-invoice/abc"},
		{fiber.MethodDelete, "/api/warehouses/abc"},
	}
	for _, tc := range cases {
		status, body := do(t, app, tc.method, tc.path, nil)
		assert.Equal(t, fiber.StatusNotFound, status, tc.path)
		e := decode[dto.ErrorResponse](t, body)
		assert.Equal(t, "NOT_FOUND", e.Code, tc.path)
		assert.Contains(t, e.Message, "Cannot "+tc.method, tc.path)
	}
}

func TestFiscalYears_PorFecha(t *testing.T) {
	app := newTestApp()
	do(t, app, fiber.MethodPost, "/api/fiscal-years", fiscalYear("FY2024", "2024-01-01", "2024-12-31"))

	status, body := do(t, app, fiber.MethodGet, "/api/fiscal-years/by-company/"+companyID+"/date/2024-07-15", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "FY2024", decode[dto.FiscalYearResponse](t, body).Code)

	status, _ = do(t, app, fiber.MethodGet, "/api/fiscal-years/by-company/"+companyID+"/date/2030-01-01", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

// ─── Facturas y pagos ─────────────────────────────────────────────────────────

func TestInvoices_PagoActualizaSaldo(t *testing.T) {
	app := newTestApp()
	inv := createInvoice(t, app, "FV-1")
	assert.True(t, inv.Balance.Equal(decimal.NewFromInt(1200)))

	status, body := do(t, app, fiber.MethodPost, "/api/invoices/"+inv.ID+"/payment", map[string]any{"amount": 500})
	require.Equal(t, fiber.StatusOK, status, string(body))
	got := decode[dto.InvoiceResponse](t, body)
	assert.True(t, got.PaidAmount.Equal(decimal.NewFromInt(500)))
	assert.True(t, got.Balance.Equal(decimal.NewFromInt(700)))
	assert.Equal(t, "PARTIALLY_PAID", got.Status)

	status, body = do(t, app, fiber.MethodPost, "/api/invoices/"+inv.ID+"/payment", map[string]any{"amount": "700"})
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "PAID", decode[dto.InvoiceResponse](t, body).Status)
}

func TestInvoices_PagoInvalido(t *testing.T) {
	app := newTestApp()
	inv := createInvoice(t, app, "FV-1")

	status, _ := do(t, app, fiber.MethodPost, "/api/invoices/"+inv.ID+"/payment", map[string]any{"amount": 0})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodPost, "/api/invoices/no-existe/payment", map[string]any{"amount": 10})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestInvoices_NumeroDuplicadoEs409(t *testing.T) {
	app := newTestApp()
	createInvoice(t, app, "FV-1")

	status, _ := do(t, app, fiber.MethodPost, "/api/invoices", dto.CreateInvoiceRequest{
		CompanyID: companyID, InvoiceNumber: "FV-1", InvoiceType: "SALES",
		BusinessPartnerID: partnerID, CurrencyID: currencyID,
		InvoiceDate: "2024-03-01", DueDate: "2024-03-31", TotalAmount: decimal.NewFromInt(1),
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestInvoices_CambioDeEstadoYBaja(t *testing.T) {
	app := newTestApp()
	inv := createInvoice(t, app, "FV-1")

	status, body := do(t, app, fiber.MethodPatch, "/api/invoices/"+inv.ID+"/status/CANCELLED", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "CANCELLED", decode[dto.InvoiceResponse](t, body).Status)

	status, _ = do(t, app, fiber.MethodPatch, "/api/invoices/"+inv.ID+"/status/BOGUS", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodDelete, "/api/invoices/"+inv.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestInvoices_Exportaciones(t *testing.T) {
	app := newTestApp()
	inv := createInvoice(t, app, "FV-9")

	req := httptest.NewRequest(fiber.MethodGet, "/api/invoices/"+inv.ID+"/xml", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, resp.Header.Get("X-Document-Digest"), 64)
	assert.Equal(t, `"`+resp.Header.Get("X-Document-Digest")+`"`, resp.Header.Get(fiber.HeaderETag))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "factura_FV-9.xml")

	req = httptest.NewRequest(fiber.MethodGet, "/api/invoices/"+inv.ID+"/pdf", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))

	status, _ := do(t, app, fiber.MethodGet, "/api/invoices/no-existe/pdf", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestPayments_TotalPorTipo(t *testing.T) {
	app := newTestApp()
	status, body := do(t, app, fiber.MethodPost, "/api/payments", dto.CreatePaymentRequest{
		CompanyID: companyID, PaymentNumber: "RC-1", PaymentType: "RECEIVED",
		BusinessPartnerID: partnerID, CurrencyID: currencyID, PaymentDate: "2024-03-10",
		Amount: decimal.NewFromInt(300), PaymentMethod: "CASH",
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	p := decode[dto.PaymentResponse](t, body)
	assert.Equal(t, "PENDING", p.Status)

	status, _ = do(t, app, fiber.MethodPatch, "/api/payments/"+p.ID+"/status/COMPLETED", nil)
	require.Equal(t, fiber.StatusOK, status)

	status, body = do(t, app, fiber.MethodGet, "/api/payments/total/by-company/"+companyID+"/by-type/RECEIVED", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, decode[dto.PaymentTotalResponse](t, body).Total.Equal(decimal.NewFromInt(300)))

	status, _ = do(t, app, fiber.MethodGet, "/api/payments/total/by-company/"+companyID+"/by-type/OTHER", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

// ─── Datos maestros ───────────────────────────────────────────────────────────

func TestCompanies_CrudBasico(t *testing.T) {
	app := newTestApp()
	status, body := do(t, app, fiber.MethodPost, "/api/companies", dto.CreateCompanyRequest{Code: "ACME", Name: "Acme"})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	c := decode[dto.CompanyResponse](t, body)

	status, _ = do(t, app, fiber.MethodPost, "/api/companies", dto.CreateCompanyRequest{Code: "ACME", Name: "Otra"})
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = do(t, app, fiber.MethodGet, "/api/companies/code/ACME", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, c.ID, decode[dto.CompanyResponse](t, body).ID)

	status, _ = do(t, app, fiber.MethodGet, "/api/companies/search?q=a", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodDelete, "/api/companies/"+c.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)
}

func TestWarehouses_RutasGenericas(t *testing.T) {
	app := newTestApp()
	status, body := do(t, app, fiber.MethodPost, "/api/warehouses", dto.CreateWarehouseRequest{
		CompanyID: companyID, WarehouseCode: "BOD1", WarehouseName: "Principal",
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))

	status, body = do(t, app, fiber.MethodGet, "/api/warehouses/by-company/"+companyID+"/code/BOD1", nil)
	require.Equal(t, fiber.StatusOK, status)
	w := decode[dto.WarehouseResponse](t, body)

	status, body = do(t, app, fiber.MethodGet, "/api/warehouses/by-company/"+companyID+"?active_only=true", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.WarehouseResponse](t, body), 1)

	status, _ = do(t, app, fiber.MethodDelete, "/api/warehouses/"+w.ID, nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, body = do(t, app, fiber.MethodGet, "/api/warehouses/by-company/"+companyID+"?active_only=true", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, decode[[]dto.WarehouseResponse](t, body))
}
