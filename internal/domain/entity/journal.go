package entity

import "time"

// Tipos de diario.
const (
	JournalTypeSales    = "SALES"
	JournalTypePurchase = "PURCHASE"
	JournalTypeGeneral  = "GENERAL"
	JournalTypeCash     = "CASH"
	JournalTypeBank     = "BANK"
)

// Journal diario contable. Solo contenedor de datos: no hay motor de asientos.
type Journal struct {
	ID          string
	CompanyID   string
	JournalCode string
	JournalName string
	JournalType string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
