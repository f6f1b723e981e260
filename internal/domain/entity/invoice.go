package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de factura.
const (
	InvoiceTypeSales      = "SALES"
	InvoiceTypePurchase   = "PURCHASE"
	InvoiceTypeCreditNote = "CREDIT_NOTE"
	InvoiceTypeDebitNote  = "DEBIT_NOTE"
)

// Estados de la factura. PARTIALLY_PAID y PAID se derivan del saldo al registrar pagos.
const (
	InvoiceStatusDraft         = "DRAFT"
	InvoiceStatusPosted        = "POSTED"
	InvoiceStatusPartiallyPaid = "PARTIALLY_PAID"
	InvoiceStatusPaid          = "PAID"
	InvoiceStatusCancelled     = "CANCELLED"
)

// Invoice cabecera de una factura con su saldo pendiente.
// Balance = TotalAmount - PaidAmount.
type Invoice struct {
	ID                string
	CompanyID         string
	InvoiceNumber     string
	InvoiceType       string
	BusinessPartnerID string
	InvoiceDate       time.Time
	DueDate           time.Time
	CurrencyID        string
	ExchangeRate      decimal.Decimal
	TotalBeforeTax    decimal.Decimal
	TotalTax          decimal.Decimal
	TotalAmount       decimal.Decimal
	PaidAmount        decimal.Decimal
	Balance           decimal.Decimal
	Status            string
	FiscalYearID      string
	Notes             string
	POReference       string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
