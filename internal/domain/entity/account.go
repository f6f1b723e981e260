package entity

import "time"

// Tipos de cuenta contable.
const (
	AccountTypeAsset     = "ASSET"
	AccountTypeLiability = "LIABILITY"
	AccountTypeEquity    = "EQUITY"
	AccountTypeRevenue   = "REVENUE"
	AccountTypeExpense   = "EXPENSE"
)

// Saldo normal de la cuenta.
const (
	NormalBalanceDebit  = "DEBIT"
	NormalBalanceCredit = "CREDIT"
)

// Account cuenta del plan de cuentas de una empresa.
type Account struct {
	ID                    string
	CompanyID             string
	AccountCode           string
	AccountName           string
	AccountType           string
	AccountCategory       string
	ParentAccountID       *string
	NormalBalance         string
	IsControlAccount      bool
	AllowPosting          bool
	RequireReconciliation bool
	IsActive              bool
	Description           string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}
