package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/infrastructure/pdf"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:             "inv-1",
		InvoiceNumber:  "FV-0001",
		InvoiceType:    entity.InvoiceTypeSales,
		InvoiceDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		TotalBeforeTax: decimal.NewFromInt(1000),
		TotalTax:       decimal.NewFromInt(200),
		TotalAmount:    decimal.NewFromInt(1200),
		PaidAmount:     decimal.NewFromInt(500),
		Balance:        decimal.NewFromInt(700),
		Status:         entity.InvoiceStatusPartiallyPaid,
	}
}

func TestGenerateInvoicePDF_Completo(t *testing.T) {
	invID := "inv-1"
	st := billing.InvoiceStatement{
		Invoice:  sampleInvoice(),
		Company:  &entity.Company{Code: "ACME", Name: "Acme SAS", TaxID: "900123456-7"},
		Partner:  &entity.BusinessPartner{PartnerName: "Cliente Uno", TaxID: "123", Email: "c@uno.co"},
		Currency: &entity.Currency{Code: "COP", Symbol: "$", DecimalPlaces: 2},
		Payments: []*entity.Payment{{
			PaymentNumber: "RC-1", InvoiceID: &invID,
			PaymentDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(500), PaymentMethod: "TRANSFER",
			Status: entity.PaymentStatusCompleted,
		}},
	}

	out, err := pdf.NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_SinDatosRelacionados(t *testing.T) {
	st := billing.InvoiceStatement{Invoice: sampleInvoice()}

	out, err := pdf.NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), st)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateInvoicePDF_SinFactura(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator().GenerateInvoicePDF(context.Background(), billing.InvoiceStatement{})
	assert.Error(t, err)
}
