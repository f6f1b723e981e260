package dto

import "time"

// CreateAccountRequest entrada para crear una cuenta contable.
type CreateAccountRequest struct {
	CompanyID             string  `json:"company_id" validate:"required,uuid"`
	AccountCode           string  `json:"account_code" validate:"required,max=50"`
	AccountName           string  `json:"account_name" validate:"required,max=200"`
	AccountType           string  `json:"account_type" validate:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	AccountCategory       string  `json:"account_category" validate:"max=100"`
	ParentAccountID       *string `json:"parent_account_id" validate:"omitempty,uuid"`
	NormalBalance         string  `json:"normal_balance" validate:"required,oneof=DEBIT CREDIT"`
	IsControlAccount      bool    `json:"is_control_account"`
	AllowPosting          *bool   `json:"allow_posting"`
	RequireReconciliation bool    `json:"require_reconciliation"`
	Description           string  `json:"description"`
}

// UpdateAccountRequest patch parcial de una cuenta.
type UpdateAccountRequest struct {
	AccountCode           *string `json:"account_code" validate:"omitempty,max=50"`
	AccountName           *string `json:"account_name" validate:"omitempty,max=200"`
	AccountType           *string `json:"account_type" validate:"omitempty,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	AccountCategory       *string `json:"account_category" validate:"omitempty,max=100"`
	ParentAccountID       *string `json:"parent_account_id" validate:"omitempty,uuid"`
	NormalBalance         *string `json:"normal_balance" validate:"omitempty,oneof=DEBIT CREDIT"`
	IsControlAccount      *bool   `json:"is_control_account"`
	AllowPosting          *bool   `json:"allow_posting"`
	RequireReconciliation *bool   `json:"require_reconciliation"`
	Description           *string `json:"description"`
	IsActive              *bool   `json:"is_active"`
}

// AccountResponse salida de una cuenta.
type AccountResponse struct {
	ID                    string    `json:"id"`
	CompanyID             string    `json:"company_id"`
	AccountCode           string    `json:"account_code"`
	AccountName           string    `json:"account_name"`
	AccountType           string    `json:"account_type"`
	AccountCategory       string    `json:"account_category"`
	ParentAccountID       *string   `json:"parent_account_id"`
	NormalBalance         string    `json:"normal_balance"`
	IsControlAccount      bool      `json:"is_control_account"`
	AllowPosting          bool      `json:"allow_posting"`
	RequireReconciliation bool      `json:"require_reconciliation"`
	IsActive              bool      `json:"is_active"`
	Description           string    `json:"description"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}
