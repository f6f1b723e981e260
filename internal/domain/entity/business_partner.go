package entity

import "time"

// Tipos de tercero.
const (
	PartnerTypeCustomer = "CUSTOMER"
	PartnerTypeSupplier = "SUPPLIER"
	PartnerTypeBoth     = "BOTH"
)

// BusinessPartner cliente y/o proveedor de una empresa.
type BusinessPartner struct {
	ID          string
	CompanyID   string
	PartnerCode string
	PartnerName string
	PartnerType string
	TaxID       string
	Email       string
	Phone       string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
