package dto

import "time"

// CreateFiscalYearRequest body para POST /api/fiscal-years. Fechas en YYYY-MM-DD.
type CreateFiscalYearRequest struct {
	CompanyID       string `json:"company_id" validate:"required,uuid"`
	Code            string `json:"code" validate:"required,max=20"`
	Name            string `json:"name" validate:"required,max=100"`
	StartDate       string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string `json:"end_date" validate:"required,datetime=2006-01-02"`
	NumberOfPeriods *int   `json:"number_of_periods"`
	Description     string `json:"description"`
}

// UpdateFiscalYearRequest patch parcial; nil = sin cambio.
// companyId no es editable y el estado de cierre solo cambia con close/reopen.
type UpdateFiscalYearRequest struct {
	Code            *string `json:"code" validate:"omitempty,max=20"`
	Name            *string `json:"name" validate:"omitempty,max=100"`
	StartDate       *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	NumberOfPeriods *int    `json:"number_of_periods"`
	Description     *string `json:"description"`
	IsActive        *bool   `json:"is_active"`
}

// IsEmpty informa si el patch no trae ningún campo.
func (r UpdateFiscalYearRequest) IsEmpty() bool {
	return r.Code == nil && r.Name == nil && r.StartDate == nil && r.EndDate == nil &&
		r.NumberOfPeriods == nil && r.Description == nil && r.IsActive == nil
}

// FiscalYearResponse salida de un año fiscal.
type FiscalYearResponse struct {
	ID              string    `json:"id"`
	CompanyID       string    `json:"company_id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	IsClosed        bool      `json:"is_closed"`
	ClosedDate      *string   `json:"closed_date"`
	IsActive        bool      `json:"is_active"`
	NumberOfPeriods int       `json:"number_of_periods"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
