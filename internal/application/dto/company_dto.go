package dto

import "time"

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Code               string  `json:"code" validate:"required,min=1,max=20"`
	Name               string  `json:"name" validate:"required,min=1,max=200"`
	LegalName          string  `json:"legal_name" validate:"max=200"`
	TaxID              string  `json:"tax_id" validate:"max=50"`
	RegistrationNumber string  `json:"registration_number" validate:"max=50"`
	AddressLine1       string  `json:"address_line1" validate:"max=200"`
	AddressLine2       string  `json:"address_line2" validate:"max=200"`
	City               string  `json:"city" validate:"max=100"`
	StateProvince      string  `json:"state_province" validate:"max=100"`
	PostalCode         string  `json:"postal_code" validate:"max=20"`
	CountryCode        string  `json:"country_code" validate:"omitempty,iso3166_1_alpha2"`
	DefaultCurrencyID  *string `json:"default_currency_id" validate:"omitempty,uuid"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos opcionales).
type UpdateCompanyRequest struct {
	Code               *string `json:"code" validate:"omitempty,min=1,max=20"`
	Name               *string `json:"name" validate:"omitempty,min=1,max=200"`
	LegalName          *string `json:"legal_name" validate:"omitempty,max=200"`
	TaxID              *string `json:"tax_id" validate:"omitempty,max=50"`
	RegistrationNumber *string `json:"registration_number" validate:"omitempty,max=50"`
	AddressLine1       *string `json:"address_line1" validate:"omitempty,max=200"`
	AddressLine2       *string `json:"address_line2" validate:"omitempty,max=200"`
	City               *string `json:"city" validate:"omitempty,max=100"`
	StateProvince      *string `json:"state_province" validate:"omitempty,max=100"`
	PostalCode         *string `json:"postal_code" validate:"omitempty,max=20"`
	CountryCode        *string `json:"country_code" validate:"omitempty,iso3166_1_alpha2"`
	DefaultCurrencyID  *string `json:"default_currency_id" validate:"omitempty,uuid"`
	IsActive           *bool   `json:"is_active"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	LegalName          string    `json:"legal_name"`
	TaxID              string    `json:"tax_id"`
	RegistrationNumber string    `json:"registration_number"`
	AddressLine1       string    `json:"address_line1"`
	AddressLine2       string    `json:"address_line2"`
	City               string    `json:"city"`
	StateProvince      string    `json:"state_province"`
	PostalCode         string    `json:"postal_code"`
	CountryCode        string    `json:"country_code"`
	DefaultCurrencyID  *string   `json:"default_currency_id"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
