package billing_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testCompanyID  = "00000000-0000-0000-0000-000000000001"
	testPartnerID  = "00000000-0000-0000-0000-000000000010"
	testCurrencyID = "00000000-0000-0000-0000-000000000020"
)

var today = time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)

func newInvoiceUseCase(store *memory.Store) *billing.InvoiceUseCase {
	return billing.NewInvoiceUseCase(store.Invoices(), store.NewTxRunner(), zerolog.Nop(),
		billing.WithClock(func() time.Time { return today }))
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func invoiceRequest(number, total string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CompanyID:         testCompanyID,
		InvoiceNumber:     number,
		InvoiceType:       entity.InvoiceTypeSales,
		BusinessPartnerID: testPartnerID,
		InvoiceDate:       "2024-06-01",
		DueDate:           "2024-06-30",
		CurrencyID:        testCurrencyID,
		TotalBeforeTax:    dec(total),
		TotalAmount:       dec(total),
	}
}

func createInvoice(t *testing.T, uc *billing.InvoiceUseCase, number, total string) *dto.InvoiceResponse {
	t.Helper()
	inv, err := uc.Create(context.Background(), invoiceRequest(number, total))
	require.NoError(t, err)
	return inv
}

func pay(uc *billing.InvoiceUseCase, id, amount string) (*dto.InvoiceResponse, error) {
	return uc.RecordPayment(context.Background(), id, dto.RecordPaymentRequest{Amount: dec(amount)})
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_SaldoInicial(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "1200.00")

	assert.NotEmpty(t, inv.ID)
	assert.True(t, inv.PaidAmount.IsZero())
	assert.True(t, inv.Balance.Equal(dec("1200")))
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.ExchangeRate.Equal(decimal.NewFromInt(1)), "tasa por defecto 1")
	assert.True(t, inv.TotalTax.IsZero())
}

func TestInvoiceCreate_NumeroDuplicado(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	createInvoice(t, uc, "F-001", "100")

	_, err := uc.Create(context.Background(), invoiceRequest("F-001", "50"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "F-001")
}

func TestInvoiceCreate_VencimientoAnteriorAFecha(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	req := invoiceRequest("F-001", "100")
	req.DueDate = "2024-05-31"

	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceCreate_TotalConMasDeCuatroDecimales(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	req := invoiceRequest("F-001", "100")
	req.TotalAmount = dec("100.12345")

	_, err := uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "total_amount")
}

func TestInvoiceCreate_TipoInvalido(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	req := invoiceRequest("F-001", "100")
	req.InvoiceType = "RECEIPT"

	_, err := uc.Create(context.Background(), req)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "invoice_type")
}

// ──────────────────────────────────────────────────────────────────────────────
// RecordPayment
// ──────────────────────────────────────────────────────────────────────────────

func TestRecordPayment_EscenarioCompleto(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "1200.00")

	got, err := pay(uc, inv.ID, "500")
	require.NoError(t, err)
	assert.True(t, got.PaidAmount.Equal(dec("500")))
	assert.True(t, got.Balance.Equal(dec("700")))
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, got.Status)

	got, err = pay(uc, inv.ID, "700")
	require.NoError(t, err)
	assert.True(t, got.PaidAmount.Equal(dec("1200")))
	assert.True(t, got.Balance.IsZero())
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)

	_, err = pay(uc, inv.ID, "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "excede")
}

func TestRecordPayment_MontoNoPositivo(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "100")

	for _, amount := range []string{"0", "-5"} {
		_, err := pay(uc, inv.ID, amount)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positivo", "monto %s", amount)
	}
	got, err := uc.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, got.PaidAmount.IsZero(), "un pago rechazado no modifica la factura")
}

func TestRecordPayment_FacturaInexistente(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	_, err := pay(uc, "00000000-0000-0000-0000-00000000dead", "10")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordPayment_MasDecimalesQueLaColumna(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "100.00")

	_, err := pay(uc, inv.ID, "0.00001")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "decimales")

	got, err := uc.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, got.PaidAmount.IsZero())
	assert.Equal(t, entity.InvoiceStatusDraft, got.Status)

	got, err = pay(uc, inv.ID, "10.12340")
	require.NoError(t, err, "ceros a la derecha no cuentan como decimales")
	assert.True(t, got.Balance.Equal(dec("89.8766")))
}

func TestRecordPayment_LogTrasConfirmar(t *testing.T) {
	store := memory.NewStore()
	var logs bytes.Buffer
	uc := billing.NewInvoiceUseCase(store.Invoices(), store.NewTxRunner(), zerolog.New(&logs),
		billing.WithClock(func() time.Time { return today }))
	inv := createInvoice(t, uc, "F-001", "100")

	_, err := pay(uc, inv.ID, "40")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "pago aplicado a factura")
	assert.Contains(t, logs.String(), `"to":"PARTIALLY_PAID"`)
}

func TestRecordPayment_ActualizaUpdatedAt(t *testing.T) {
	store := memory.NewStore()
	clock := today
	uc := billing.NewInvoiceUseCase(store.Invoices(), store.NewTxRunner(), zerolog.Nop(),
		billing.WithClock(func() time.Time { return clock }))
	inv := createInvoice(t, uc, "F-001", "100")
	assert.True(t, today.Equal(inv.CreatedAt), "la creación usa el reloj inyectado")

	clock = today.Add(2 * time.Hour)
	got, err := pay(uc, inv.ID, "25")
	require.NoError(t, err)
	assert.True(t, clock.Equal(got.UpdatedAt))
	assert.True(t, today.Equal(got.CreatedAt))
}

// failingTx ejecuta fn con el repositorio real pero informa error al confirmar.
type failingTx struct {
	store *memory.Store
}

func (f failingTx) RunSettlement(ctx context.Context, fn func(repository.InvoiceRepository) error) error {
	return f.store.NewTxRunner().RunSettlement(ctx, func(invoices repository.InvoiceRepository) error {
		if err := fn(invoices); err != nil {
			return err
		}
		return errors.New("commit fallido")
	})
}

func TestRecordPayment_RollbackSiLaTransaccionFalla(t *testing.T) {
	store := memory.NewStore()
	uc := newInvoiceUseCase(store)
	inv := createInvoice(t, uc, "F-001", "100")

	var logs bytes.Buffer
	broken := billing.NewInvoiceUseCase(store.Invoices(), failingTx{store: store}, zerolog.New(&logs))
	_, err := broken.RecordPayment(context.Background(), inv.ID, dto.RecordPaymentRequest{Amount: dec("40")})
	require.Error(t, err)
	assert.NotContains(t, logs.String(), "pago aplicado a factura")

	got, err := uc.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("100")))
	assert.Equal(t, entity.InvoiceStatusDraft, got.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_NuevoTotalRecalculaSaldo(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "1000")
	_, err := pay(uc, inv.ID, "300")
	require.NoError(t, err)

	total := dec("1500")
	got, err := uc.Update(context.Background(), inv.ID, dto.UpdateInvoiceRequest{TotalAmount: &total})
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("1200")))
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, got.Status, "el estado no se rederiva")
}

func TestInvoiceUpdate_FechasCombinadas(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "100")

	date := "2024-07-15"
	_, err := uc.Update(context.Background(), inv.ID, dto.UpdateInvoiceRequest{InvoiceDate: &date})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el vencimiento existente queda antes de la nueva fecha")
}

func TestInvoiceUpdate_NumeroDeOtraFactura(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "100")
	createInvoice(t, uc, "F-002", "100")

	number := "F-002"
	_, err := uc.Update(context.Background(), inv.ID, dto.UpdateInvoiceRequest{InvoiceNumber: &number})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_NoDerivaDelSaldo(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	inv := createInvoice(t, uc, "F-001", "100")

	got, err := uc.UpdateStatus(context.Background(), inv.ID, entity.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, got.Status)
	assert.True(t, got.Balance.Equal(dec("100")))

	_, err = uc.UpdateStatus(context.Background(), inv.ID, "ARCHIVED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListOverdueByCompany(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	ctx := context.Background()
	overdue := createInvoice(t, uc, "F-001", "100")
	paid := createInvoice(t, uc, "F-002", "100")
	_, err := pay(uc, paid.ID, "100")
	require.NoError(t, err)

	notYet := invoiceRequest("F-003", "100")
	notYet.DueDate = "2024-07-01"
	_, err = uc.Create(ctx, notYet)
	require.NoError(t, err)

	list, err := uc.ListOverdueByCompany(ctx, testCompanyID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, overdue.ID, list[0].ID)
}

func TestListByCompany_Filtros(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	ctx := context.Background()
	createInvoice(t, uc, "F-001", "100")
	purchase := invoiceRequest("C-001", "80")
	purchase.InvoiceType = entity.InvoiceTypePurchase
	_, err := uc.Create(ctx, purchase)
	require.NoError(t, err)

	list, err := uc.ListByCompany(ctx, testCompanyID, dto.InvoiceFilterRequest{Type: entity.InvoiceTypePurchase})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "C-001", list[0].InvoiceNumber)

	list, err = uc.ListByCompany(ctx, testCompanyID, dto.InvoiceFilterRequest{From: "2024-06-02"})
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = uc.ListByCompany(ctx, testCompanyID, dto.InvoiceFilterRequest{Status: "OPEN"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceRemove_BajaLogica(t *testing.T) {
	uc := newInvoiceUseCase(memory.NewStore())
	ctx := context.Background()
	inv := createInvoice(t, uc, "F-001", "100")

	require.NoError(t, uc.Remove(ctx, inv.ID))
	got, err := uc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.ErrorIs(t, uc.Remove(ctx, "00000000-0000-0000-0000-00000000dead"), domain.ErrNotFound)
}
