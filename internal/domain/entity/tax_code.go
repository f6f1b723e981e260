package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de impuesto.
const (
	TaxTypeSales       = "SALES"
	TaxTypePurchase    = "PURCHASE"
	TaxTypeWithholding = "WITHHOLDING"
)

// TaxCode código de impuesto. La tasa se guarda pero no se calcula nada con ella.
type TaxCode struct {
	ID             string
	CompanyID      string
	TaxCode        string
	TaxDescription string
	TaxRate        decimal.Decimal // porcentaje 0..100
	TaxType        string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
