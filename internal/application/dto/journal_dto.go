package dto

import "time"

// CreateJournalRequest entrada para crear un diario.
type CreateJournalRequest struct {
	CompanyID   string `json:"company_id" validate:"required,uuid"`
	JournalCode string `json:"journal_code" validate:"required,max=20"`
	JournalName string `json:"journal_name" validate:"required,max=200"`
	JournalType string `json:"journal_type" validate:"required,oneof=SALES PURCHASE GENERAL CASH BANK"`
	Description string `json:"description"`
}

// UpdateJournalRequest patch parcial de un diario.
type UpdateJournalRequest struct {
	JournalCode *string `json:"journal_code" validate:"omitempty,max=20"`
	JournalName *string `json:"journal_name" validate:"omitempty,max=200"`
	JournalType *string `json:"journal_type" validate:"omitempty,oneof=SALES PURCHASE GENERAL CASH BANK"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// JournalResponse salida de un diario.
type JournalResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	JournalCode string    `json:"journal_code"`
	JournalName string    `json:"journal_name"`
	JournalType string    `json:"journal_type"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
