package dto

import "time"

// CreateCurrencyRequest entrada para crear una moneda. DecimalPlaces por defecto 2.
type CreateCurrencyRequest struct {
	Code          string `json:"code" validate:"required,len=3"`
	Name          string `json:"name" validate:"required,max=100"`
	Symbol        string `json:"symbol" validate:"max=10"`
	DecimalPlaces *int   `json:"decimal_places" validate:"omitempty,min=0,max=4"`
}

// UpdateCurrencyRequest entrada para actualizar una moneda.
type UpdateCurrencyRequest struct {
	Code          *string `json:"code" validate:"omitempty,len=3"`
	Name          *string `json:"name" validate:"omitempty,max=100"`
	Symbol        *string `json:"symbol" validate:"omitempty,max=10"`
	DecimalPlaces *int    `json:"decimal_places" validate:"omitempty,min=0,max=4"`
	IsActive      *bool   `json:"is_active"`
}

// CurrencyResponse salida de una moneda.
type CurrencyResponse struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Symbol        string    `json:"symbol"`
	DecimalPlaces int       `json:"decimal_places"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
