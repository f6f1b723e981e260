package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest body para POST /api/invoices.
// ExchangeRate por defecto 1 y TotalTax por defecto 0. El saldo inicial es TotalAmount.
type CreateInvoiceRequest struct {
	CompanyID         string           `json:"company_id" validate:"required,uuid"`
	InvoiceNumber     string           `json:"invoice_number" validate:"required,max=50"`
	InvoiceType       string           `json:"invoice_type" validate:"required,oneof=SALES PURCHASE CREDIT_NOTE DEBIT_NOTE"`
	BusinessPartnerID string           `json:"business_partner_id" validate:"required,uuid"`
	InvoiceDate       string           `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	DueDate           string           `json:"due_date" validate:"required,datetime=2006-01-02"`
	CurrencyID        string           `json:"currency_id" validate:"required,uuid"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate"`
	TotalBeforeTax    decimal.Decimal  `json:"total_before_tax"`
	TotalTax          *decimal.Decimal `json:"total_tax"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	FiscalYearID      string           `json:"fiscal_year_id" validate:"omitempty,uuid"`
	Notes             string           `json:"notes"`
	POReference       string           `json:"po_reference" validate:"max=100"`
}

// UpdateInvoiceRequest patch parcial. paid_amount, balance y status no se editan aquí.
type UpdateInvoiceRequest struct {
	InvoiceNumber     *string          `json:"invoice_number" validate:"omitempty,max=50"`
	InvoiceType       *string          `json:"invoice_type" validate:"omitempty,oneof=SALES PURCHASE CREDIT_NOTE DEBIT_NOTE"`
	BusinessPartnerID *string          `json:"business_partner_id" validate:"omitempty,uuid"`
	InvoiceDate       *string          `json:"invoice_date" validate:"omitempty,datetime=2006-01-02"`
	DueDate           *string          `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	CurrencyID        *string          `json:"currency_id" validate:"omitempty,uuid"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate"`
	TotalBeforeTax    *decimal.Decimal `json:"total_before_tax"`
	TotalTax          *decimal.Decimal `json:"total_tax"`
	TotalAmount       *decimal.Decimal `json:"total_amount"`
	FiscalYearID      *string          `json:"fiscal_year_id" validate:"omitempty,uuid"`
	Notes             *string          `json:"notes"`
	POReference       *string          `json:"po_reference" validate:"omitempty,max=100"`
	IsActive          *bool            `json:"is_active"`
}

// InvoiceFilterRequest query params de GET /api/invoices/by-company/:companyId.
type InvoiceFilterRequest struct {
	Type   string `query:"type" validate:"omitempty,oneof=SALES PURCHASE CREDIT_NOTE DEBIT_NOTE"`
	Status string `query:"status" validate:"omitempty,oneof=DRAFT POSTED PARTIALLY_PAID PAID CANCELLED"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// RecordPaymentRequest body para POST /api/invoices/:id/payment.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// InvoiceResponse factura con su saldo.
type InvoiceResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	InvoiceNumber     string          `json:"invoice_number"`
	InvoiceType       string          `json:"invoice_type"`
	BusinessPartnerID string          `json:"business_partner_id"`
	InvoiceDate       string          `json:"invoice_date"`
	DueDate           string          `json:"due_date"`
	CurrencyID        string          `json:"currency_id"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
	TotalBeforeTax    decimal.Decimal `json:"total_before_tax"`
	TotalTax          decimal.Decimal `json:"total_tax"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Balance           decimal.Decimal `json:"balance"`
	Status            string          `json:"status"`
	FiscalYearID      string          `json:"fiscal_year_id,omitempty"`
	Notes             string          `json:"notes"`
	POReference       string          `json:"po_reference"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
