package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePaymentRequest body para POST /api/payments. El estado inicial siempre es PENDING.
type CreatePaymentRequest struct {
	CompanyID         string           `json:"company_id" validate:"required,uuid"`
	PaymentNumber     string           `json:"payment_number" validate:"required,max=50"`
	PaymentType       string           `json:"payment_type" validate:"required,oneof=RECEIVED SENT"`
	BusinessPartnerID string           `json:"business_partner_id" validate:"required,uuid"`
	InvoiceID         *string          `json:"invoice_id" validate:"omitempty,uuid"`
	PaymentDate       string           `json:"payment_date" validate:"required,datetime=2006-01-02"`
	CurrencyID        string           `json:"currency_id" validate:"required,uuid"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate"`
	Amount            decimal.Decimal  `json:"amount"`
	PaymentMethod     string           `json:"payment_method" validate:"required,oneof=CASH BANK_TRANSFER CHECK CREDIT_CARD OTHER"`
	Reference         string           `json:"reference" validate:"max=100"`
	Notes             string           `json:"notes"`
}

// UpdatePaymentRequest patch parcial; el estado cambia por PATCH /:id/status/:status.
type UpdatePaymentRequest struct {
	PaymentNumber     *string          `json:"payment_number" validate:"omitempty,max=50"`
	PaymentType       *string          `json:"payment_type" validate:"omitempty,oneof=RECEIVED SENT"`
	BusinessPartnerID *string          `json:"business_partner_id" validate:"omitempty,uuid"`
	InvoiceID         *string          `json:"invoice_id" validate:"omitempty,uuid"`
	PaymentDate       *string          `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	CurrencyID        *string          `json:"currency_id" validate:"omitempty,uuid"`
	ExchangeRate      *decimal.Decimal `json:"exchange_rate"`
	Amount            *decimal.Decimal `json:"amount"`
	PaymentMethod     *string          `json:"payment_method" validate:"omitempty,oneof=CASH BANK_TRANSFER CHECK CREDIT_CARD OTHER"`
	Reference         *string          `json:"reference" validate:"omitempty,max=100"`
	Notes             *string          `json:"notes"`
	IsActive          *bool            `json:"is_active"`
}

// PaymentFilterRequest query params de GET /api/payments/by-company/:companyId.
type PaymentFilterRequest struct {
	Type   string `query:"type" validate:"omitempty,oneof=RECEIVED SENT"`
	Status string `query:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED CANCELLED"`
	Method string `query:"method" validate:"omitempty,oneof=CASH BANK_TRANSFER CHECK CREDIT_CARD OTHER"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	PaymentNumber     string          `json:"payment_number"`
	PaymentType       string          `json:"payment_type"`
	BusinessPartnerID string          `json:"business_partner_id"`
	InvoiceID         *string         `json:"invoice_id"`
	PaymentDate       string          `json:"payment_date"`
	CurrencyID        string          `json:"currency_id"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentMethod     string          `json:"payment_method"`
	Reference         string          `json:"reference"`
	Notes             string          `json:"notes"`
	Status            string          `json:"status"`
	IsActive          bool            `json:"is_active"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// PaymentTotalResponse suma de pagos COMPLETED por empresa y tipo.
type PaymentTotalResponse struct {
	CompanyID   string          `json:"company_id"`
	PaymentType string          `json:"payment_type"`
	Total       decimal.Decimal `json:"total"`
}
