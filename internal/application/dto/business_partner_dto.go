package dto

import "time"

// CreateBusinessPartnerRequest entrada para crear un tercero (cliente/proveedor).
type CreateBusinessPartnerRequest struct {
	CompanyID   string `json:"company_id" validate:"required,uuid"`
	PartnerCode string `json:"partner_code" validate:"required,max=50"`
	PartnerName string `json:"partner_name" validate:"required,max=200"`
	PartnerType string `json:"partner_type" validate:"required,oneof=CUSTOMER SUPPLIER BOTH"`
	TaxID       string `json:"tax_id" validate:"max=50"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"max=50"`
}

// UpdateBusinessPartnerRequest patch parcial de un tercero.
type UpdateBusinessPartnerRequest struct {
	PartnerCode *string `json:"partner_code" validate:"omitempty,max=50"`
	PartnerName *string `json:"partner_name" validate:"omitempty,max=200"`
	PartnerType *string `json:"partner_type" validate:"omitempty,oneof=CUSTOMER SUPPLIER BOTH"`
	TaxID       *string `json:"tax_id" validate:"omitempty,max=50"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,max=50"`
	IsActive    *bool   `json:"is_active"`
}

// BusinessPartnerResponse salida de un tercero.
type BusinessPartnerResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	PartnerCode string    `json:"partner_code"`
	PartnerName string    `json:"partner_name"`
	PartnerType string    `json:"partner_type"`
	TaxID       string    `json:"tax_id"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
