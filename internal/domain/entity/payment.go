package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago.
const (
	PaymentTypeReceived = "RECEIVED"
	PaymentTypeSent     = "SENT"
)

// Medios de pago.
const (
	PaymentMethodCash         = "CASH"
	PaymentMethodBankTransfer = "BANK_TRANSFER"
	PaymentMethodCheck        = "CHECK"
	PaymentMethodCreditCard   = "CREDIT_CARD"
	PaymentMethodOther        = "OTHER"
)

// Estados del pago.
const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusCancelled = "CANCELLED"
)

// Payment pago recibido o enviado. InvoiceID es opcional y no altera el saldo de la factura:
// el saldo solo cambia vía RecordPayment.
type Payment struct {
	ID                string
	CompanyID         string
	PaymentNumber     string
	PaymentType       string
	BusinessPartnerID string
	InvoiceID         *string
	PaymentDate       time.Time
	CurrencyID        string
	ExchangeRate      decimal.Decimal
	Amount            decimal.Decimal
	PaymentMethod     string
	Reference         string
	Notes             string
	Status            string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
