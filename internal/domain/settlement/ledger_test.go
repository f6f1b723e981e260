package settlement_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/settlement"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newInvoice(total string) *entity.Invoice {
	inv := &entity.Invoice{TotalAmount: dec(total), Status: entity.InvoiceStatusPaid}
	settlement.Seed(inv)
	return inv
}

func TestSeed_FuerzaDraft(t *testing.T) {
	inv := newInvoice("1200.00")
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
	assert.True(t, inv.PaidAmount.IsZero())
	assert.True(t, inv.Balance.Equal(dec("1200")))
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, entity.InvoiceStatusPaid, settlement.DeriveStatus(dec("100"), dec("0"), entity.InvoiceStatusDraft))
	assert.Equal(t, entity.InvoiceStatusPaid, settlement.DeriveStatus(dec("100"), dec("-1"), entity.InvoiceStatusDraft))
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, settlement.DeriveStatus(dec("100"), dec("40"), entity.InvoiceStatusDraft))
	assert.Equal(t, entity.InvoiceStatusDraft, settlement.DeriveStatus(dec("100"), dec("100"), entity.InvoiceStatusDraft),
		"sin cambio de saldo se conserva el estado")
	assert.Equal(t, entity.InvoiceStatusPosted, settlement.DeriveStatus(dec("40"), dec("100"), entity.InvoiceStatusPosted))
}

// Escenario: total 1200; pago 500 -> parcial; pago 700 -> pagada; pago 1 -> excede.
func TestApplyPayment_Escenario1200(t *testing.T) {
	inv := newInvoice("1200.00")

	require.NoError(t, settlement.ApplyPayment(inv, dec("500")))
	assert.True(t, inv.PaidAmount.Equal(dec("500")))
	assert.True(t, inv.Balance.Equal(dec("700")))
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, inv.Status)

	require.NoError(t, settlement.ApplyPayment(inv, dec("700")))
	assert.True(t, inv.PaidAmount.Equal(dec("1200")))
	assert.True(t, inv.Balance.IsZero())
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)

	err := settlement.ApplyPayment(inv, dec("1"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "excede")
	assert.True(t, inv.PaidAmount.Equal(dec("1200")), "un pago rechazado no modifica la factura")
}

func TestApplyPayment_MontoNoPositivo(t *testing.T) {
	inv := newInvoice("100")
	for _, amount := range []string{"0", "-5"} {
		err := settlement.ApplyPayment(inv, dec(amount))
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "positivo")
	}
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)
}

func TestApplyPayment_EscalaDeLaColumna(t *testing.T) {
	inv := newInvoice("100.00")
	err := settlement.ApplyPayment(inv, dec("0.00001"))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, inv.PaidAmount.IsZero())
	assert.True(t, inv.Balance.Equal(dec("100")))
	assert.Equal(t, entity.InvoiceStatusDraft, inv.Status)

	require.NoError(t, settlement.ApplyPayment(inv, dec("0.0001")))
	assert.True(t, inv.Balance.Equal(dec("99.9999")))
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, inv.Status)
}

func TestValidateScale(t *testing.T) {
	for _, ok := range []string{"1", "1.5", "1.2345", "1.23450000", "-3.1"} {
		assert.NoError(t, settlement.ValidateScale("monto", dec(ok)), ok)
	}
	for _, bad := range []string{"1.23456", "0.00001", "-0.000001"} {
		err := settlement.ValidateScale("monto", dec(bad))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, bad)
	}
}

func TestApplyPayment_SaldoBajaExactamenteElMonto(t *testing.T) {
	amounts := []string{"0.01", "10.50", "33.33", "56.16"}
	inv := newInvoice("100")
	for _, a := range amounts {
		before := inv.Balance
		require.NoError(t, settlement.ApplyPayment(inv, dec(a)))
		assert.True(t, before.Sub(dec(a)).Equal(inv.Balance))
		if inv.Balance.IsPositive() {
			assert.Equal(t, entity.InvoiceStatusPartiallyPaid, inv.Status)
		} else {
			assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
		}
	}
	assert.Equal(t, entity.InvoiceStatusPaid, inv.Status)
}

func TestRecalculateTotal_ConservaPagado(t *testing.T) {
	inv := newInvoice("100")
	require.NoError(t, settlement.ApplyPayment(inv, dec("30")))
	settlement.RecalculateTotal(inv, dec("150"))
	assert.True(t, inv.Balance.Equal(dec("120")))
	assert.Equal(t, entity.InvoiceStatusPartiallyPaid, inv.Status)
}
