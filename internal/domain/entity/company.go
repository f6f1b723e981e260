package entity

import "time"

// Company representa una organización/tenant del sistema. Todas las demás entidades cuelgan de ella.
type Company struct {
	ID                 string
	Code               string // único global
	Name               string
	LegalName          string
	TaxID              string
	RegistrationNumber string
	AddressLine1       string
	AddressLine2       string
	City               string
	StateProvince      string
	PostalCode         string
	CountryCode        string  // ISO 3166-1 alpha-2
	DefaultCurrencyID  *string // nil = sin moneda por defecto
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
