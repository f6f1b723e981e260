package billing_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/infrastructure/memory"
)

func newPaymentUseCase(store *memory.Store) *billing.PaymentUseCase {
	return billing.NewPaymentUseCase(store.Payments(), zerolog.Nop())
}

func paymentRequest(number, amount, paymentType string) dto.CreatePaymentRequest {
	return dto.CreatePaymentRequest{
		CompanyID:         testCompanyID,
		PaymentNumber:     number,
		PaymentType:       paymentType,
		BusinessPartnerID: testPartnerID,
		PaymentDate:       "2024-06-15",
		CurrencyID:        testCurrencyID,
		Amount:            dec(amount),
		PaymentMethod:     entity.PaymentMethodBankTransfer,
	}
}

func TestPaymentCreate_SiemprePendiente(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	p, err := uc.Create(context.Background(), paymentRequest("P-001", "250", entity.PaymentTypeReceived))
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusPending, p.Status)
	assert.True(t, p.ExchangeRate.Equal(dec("1")))
	assert.True(t, p.IsActive)
}

func TestPaymentCreate_MontoNoPositivo(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	_, err := uc.Create(context.Background(), paymentRequest("P-001", "0", entity.PaymentTypeReceived))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "positivo")
}

func TestPaymentCreate_MontoConMasDeCuatroDecimales(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	_, err := uc.Create(context.Background(), paymentRequest("P-001", "10.00001", entity.PaymentTypeReceived))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "decimales")
}

func TestPaymentCreate_NumeroDuplicado(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	_, err := uc.Create(context.Background(), paymentRequest("P-001", "10", entity.PaymentTypeReceived))
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), paymentRequest("P-001", "10", entity.PaymentTypeReceived))
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Registrar un pago vinculado a una factura no cambia el saldo de la factura.
func TestPaymentCreate_NoAplicaAFactura(t *testing.T) {
	store := memory.NewStore()
	invoices := newInvoiceUseCase(store)
	inv := createInvoice(t, invoices, "F-001", "100")

	req := paymentRequest("P-001", "100", entity.PaymentTypeReceived)
	req.InvoiceID = &inv.ID
	_, err := newPaymentUseCase(store).Create(context.Background(), req)
	require.NoError(t, err)

	got, err := invoices.GetByID(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("100")))
}

func TestTotalByCompanyAndType_SoloCompletados(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	ctx := context.Background()

	a, err := uc.Create(ctx, paymentRequest("P-001", "100.50", entity.PaymentTypeReceived))
	require.NoError(t, err)
	b, err := uc.Create(ctx, paymentRequest("P-002", "49.50", entity.PaymentTypeReceived))
	require.NoError(t, err)
	_, err = uc.Create(ctx, paymentRequest("P-003", "999", entity.PaymentTypeReceived))
	require.NoError(t, err)
	c, err := uc.Create(ctx, paymentRequest("P-004", "30", entity.PaymentTypeSent))
	require.NoError(t, err)

	for _, id := range []string{a.ID, b.ID, c.ID} {
		_, err := uc.UpdateStatus(ctx, id, entity.PaymentStatusCompleted)
		require.NoError(t, err)
	}

	got, err := uc.TotalByCompanyAndType(ctx, testCompanyID, entity.PaymentTypeReceived)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(dec("150")), "total %s", got.Total)

	require.NoError(t, uc.Remove(ctx, b.ID))
	got, err = uc.TotalByCompanyAndType(ctx, testCompanyID, entity.PaymentTypeReceived)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(dec("100.5")), "los inactivos no suman")

	_, err = uc.TotalByCompanyAndType(ctx, testCompanyID, "OTHER")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaymentUpdate_MontoYNumero(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	ctx := context.Background()
	p, err := uc.Create(ctx, paymentRequest("P-001", "10", entity.PaymentTypeSent))
	require.NoError(t, err)
	_, err = uc.Create(ctx, paymentRequest("P-002", "10", entity.PaymentTypeSent))
	require.NoError(t, err)

	zero := dec("0")
	_, err = uc.Update(ctx, p.ID, dto.UpdatePaymentRequest{Amount: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	number := "P-002"
	_, err = uc.Update(ctx, p.ID, dto.UpdatePaymentRequest{PaymentNumber: &number})
	assert.ErrorIs(t, err, domain.ErrConflict)

	amount := dec("12.75")
	got, err := uc.Update(ctx, p.ID, dto.UpdatePaymentRequest{Amount: &amount})
	require.NoError(t, err)
	assert.True(t, got.Amount.Equal(amount))
}

func TestPaymentUpdateStatus_Desconocido(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	p, err := uc.Create(context.Background(), paymentRequest("P-001", "10", entity.PaymentTypeSent))
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), p.ID, "REVERSED")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPaymentListByInvoice(t *testing.T) {
	uc := newPaymentUseCase(memory.NewStore())
	ctx := context.Background()
	invoiceID := "00000000-0000-0000-0000-000000000099"
	req := paymentRequest("P-001", "10", entity.PaymentTypeReceived)
	req.InvoiceID = &invoiceID
	_, err := uc.Create(ctx, req)
	require.NoError(t, err)
	_, err = uc.Create(ctx, paymentRequest("P-002", "10", entity.PaymentTypeReceived))
	require.NoError(t, err)

	list, err := uc.ListByInvoice(ctx, invoiceID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "P-001", list[0].PaymentNumber)
}
