package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTaxCodeRequest entrada para crear un código de impuesto. TaxRate es un porcentaje 0..100.
type CreateTaxCodeRequest struct {
	CompanyID      string          `json:"company_id" validate:"required,uuid"`
	TaxCode        string          `json:"tax_code" validate:"required,max=20"`
	TaxDescription string          `json:"tax_description" validate:"required,max=200"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxType        string          `json:"tax_type" validate:"required,oneof=SALES PURCHASE WITHHOLDING"`
}

// UpdateTaxCodeRequest patch parcial de un código de impuesto.
type UpdateTaxCodeRequest struct {
	TaxCode        *string          `json:"tax_code" validate:"omitempty,max=20"`
	TaxDescription *string          `json:"tax_description" validate:"omitempty,max=200"`
	TaxRate        *decimal.Decimal `json:"tax_rate"`
	TaxType        *string          `json:"tax_type" validate:"omitempty,oneof=SALES PURCHASE WITHHOLDING"`
	IsActive       *bool            `json:"is_active"`
}

// TaxCodeResponse salida de un código de impuesto.
type TaxCodeResponse struct {
	ID             string          `json:"id"`
	CompanyID      string          `json:"company_id"`
	TaxCode        string          `json:"tax_code"`
	TaxDescription string          `json:"tax_description"`
	TaxRate        decimal.Decimal `json:"tax_rate"`
	TaxType        string          `json:"tax_type"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
