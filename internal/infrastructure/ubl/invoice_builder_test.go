package ubl_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/billing"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/infrastructure/ubl"
)

func statement(invoiceType string) billing.InvoiceStatement {
	return billing.InvoiceStatement{
		Invoice: &entity.Invoice{
			ID:             "inv-1",
			InvoiceNumber:  "FV-0001",
			InvoiceType:    invoiceType,
			InvoiceDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			DueDate:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			TotalBeforeTax: decimal.NewFromInt(1000),
			TotalTax:       decimal.NewFromInt(200),
			TotalAmount:    decimal.NewFromInt(1200),
			PaidAmount:     decimal.NewFromInt(500),
			Balance:        decimal.NewFromInt(700),
			Status:         entity.InvoiceStatusPartiallyPaid,
			POReference:    "OC-77",
		},
		Company:  &entity.Company{Code: "ACME", Name: "Acme", LegalName: "Acme SAS", TaxID: "900123456"},
		Partner:  &entity.BusinessPartner{PartnerCode: "C001", PartnerName: "Cliente Uno", TaxID: "123"},
		Currency: &entity.Currency{Code: "COP"},
		Payments: []*entity.Payment{
			{PaymentNumber: "RC-1", Amount: decimal.NewFromInt(500), Status: entity.PaymentStatusCompleted, IsActive: true,
				PaymentDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
			{PaymentNumber: "RC-2", Amount: decimal.NewFromInt(100), Status: entity.PaymentStatusPending, IsActive: true,
				PaymentDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func parse(t *testing.T, out []byte) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(out))
	require.NotNil(t, doc.Root())
	return doc.Root()
}

// ─── Contenido ────────────────────────────────────────────────────────────────

func TestBuildInvoiceXML_Contenido(t *testing.T) {
	out, digest, err := ubl.NewInvoiceBuilder().BuildInvoiceXML(statement(entity.InvoiceTypeSales))
	require.NoError(t, err)
	assert.Len(t, digest, 64)

	root := parse(t, out)
	assert.Equal(t, "Invoice", root.Tag)
	assert.Equal(t, "FV-0001", root.FindElement("./cbc:ID").Text())
	assert.Equal(t, "2024-03-31", root.FindElement("./cbc:DueDate").Text())
	assert.Equal(t, "380", root.FindElement("./cbc:InvoiceTypeCode").Text())
	assert.Equal(t, "COP", root.FindElement("./cbc:DocumentCurrencyCode").Text())
	assert.Equal(t, "OC-77", root.FindElement("./cac:OrderReference/cbc:ID").Text())

	payable := root.FindElement("./cac:LegalMonetaryTotal/cbc:PayableAmount")
	require.NotNil(t, payable)
	assert.Equal(t, "700.00", payable.Text())
	assert.Equal(t, "COP", payable.SelectAttrValue("currencyID", ""))

	prepaid := root.FindElements("./cac:PrepaidPayment")
	require.Len(t, prepaid, 1, "solo pagos COMPLETED")
	assert.Equal(t, "RC-1", prepaid[0].FindElement("./cbc:ID").Text())

	supplier := root.FindElement("./cac:AccountingSupplierParty/cac:Party/cac:PartyName/cbc:Name")
	assert.Equal(t, "Acme SAS", supplier.Text())
}

func TestBuildInvoiceXML_NITColombianoConDV(t *testing.T) {
	st := statement(entity.InvoiceTypeSales)
	st.Company.CountryCode = "CO"
	st.Company.TaxID = "800.197.268-4"

	out, _, err := ubl.NewInvoiceBuilder().BuildInvoiceXML(st)
	require.NoError(t, err)

	id := parse(t, out).FindElement("./cac:AccountingSupplierParty/cac:Party/cac:PartyTaxScheme/cbc:CompanyID")
	require.NotNil(t, id)
	assert.Equal(t, "800197268", id.Text())
	assert.Equal(t, "4", id.SelectAttrValue("schemeID", ""))
	assert.Equal(t, "31", id.SelectAttrValue("schemeName", ""))
}

func TestBuildInvoiceXML_CompraInviertePartes(t *testing.T) {
	out, _, err := ubl.NewInvoiceBuilder().BuildInvoiceXML(statement(entity.InvoiceTypePurchase))
	require.NoError(t, err)

	root := parse(t, out)
	supplier := root.FindElement("./cac:AccountingSupplierParty/cac:Party/cac:PartyName/cbc:Name")
	customer := root.FindElement("./cac:AccountingCustomerParty/cac:Party/cac:PartyName/cbc:Name")
	assert.Equal(t, "Cliente Uno", supplier.Text())
	assert.Equal(t, "Acme SAS", customer.Text())
}

func TestBuildInvoiceXML_NotaCredito(t *testing.T) {
	out, _, err := ubl.NewInvoiceBuilder().BuildInvoiceXML(statement(entity.InvoiceTypeCreditNote))
	require.NoError(t, err)
	assert.Equal(t, "381", parse(t, out).FindElement("./cbc:InvoiceTypeCode").Text())
}

func TestBuildInvoiceXML_SinMonedaUsaCurrencyID(t *testing.T) {
	st := statement(entity.InvoiceTypeSales)
	st.Currency, st.Partner, st.Company = nil, nil, nil
	st.Invoice.CurrencyID = "cur-1"

	out, _, err := ubl.NewInvoiceBuilder().BuildInvoiceXML(st)
	require.NoError(t, err)
	assert.Equal(t, "cur-1", parse(t, out).FindElement("./cbc:DocumentCurrencyCode").Text())
}

func TestBuildInvoiceXML_SinFactura(t *testing.T) {
	_, _, err := ubl.NewInvoiceBuilder().BuildInvoiceXML(billing.InvoiceStatement{})
	assert.Error(t, err)
}

// ─── Digest ───────────────────────────────────────────────────────────────────

func TestBuildInvoiceXML_Determinista(t *testing.T) {
	b := ubl.NewInvoiceBuilder()
	out1, d1, err := b.BuildInvoiceXML(statement(entity.InvoiceTypeSales))
	require.NoError(t, err)
	out2, d2, err := b.BuildInvoiceXML(statement(entity.InvoiceTypeSales))
	require.NoError(t, err)

	assert.Equal(t, out1, out2)
	assert.Equal(t, d1, d2)

	st := statement(entity.InvoiceTypeSales)
	st.Invoice.Balance = decimal.NewFromInt(699)
	_, d3, err := b.BuildInvoiceXML(st)
	require.NoError(t, err)
	assert.NotEqual(t, d1, d3)
}

func TestDigest_IgnoraFormato(t *testing.T) {
	compact := []byte(`<a xmlns="urn:x"><b c="1"></b></a>`)
	selfClosing := []byte(`<a xmlns="urn:x"><b  c='1'/></a>`)

	d1, err := ubl.Digest(compact)
	require.NoError(t, err)
	d2, err := ubl.Digest(selfClosing)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestDigest_XMLInvalido(t *testing.T) {
	_, err := ubl.Digest([]byte("<a><b></a>"))
	assert.Error(t, err)
}
