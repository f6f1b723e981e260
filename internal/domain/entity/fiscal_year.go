package entity

import "time"

// FiscalYear año (o intervalo) contable de una empresa.
// Dentro de una misma empresa los intervalos [StartDate, EndDate] no se solapan.
type FiscalYear struct {
	ID              string
	CompanyID       string
	Code            string
	Name            string
	StartDate       time.Time
	EndDate         time.Time
	IsClosed        bool
	ClosedDate      *time.Time // solo cuando IsClosed
	IsActive        bool
	NumberOfPeriods int // 1..24
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Límites de sub-períodos por año fiscal.
const (
	MinFiscalPeriods     = 1
	MaxFiscalPeriods     = 24
	DefaultFiscalPeriods = 12
)
