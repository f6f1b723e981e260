package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

// AccountRepo implementación del plan de cuentas sobre PostgreSQL.
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

const accountColumns = `id, company_id, account_code, account_name, account_type, account_category,
	parent_account_id, normal_balance, is_control_account, allow_posting, require_reconciliation,
	is_active, description, created_at, updated_at`

func scanAccount(row pgxScanner) (*entity.Account, error) {
	var a entity.Account
	err := row.Scan(
		&a.ID, &a.CompanyID, &a.AccountCode, &a.AccountName, &a.AccountType, &a.AccountCategory,
		&a.ParentAccountID, &a.NormalBalance, &a.IsControlAccount, &a.AllowPosting, &a.RequireReconciliation,
		&a.IsActive, &a.Description, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) Create(ctx context.Context, a *entity.Account) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.CompanyID, a.AccountCode, a.AccountName, a.AccountType, a.AccountCategory,
		a.ParentAccountID, a.NormalBalance, a.IsControlAccount, a.AllowPosting, a.RequireReconciliation,
		a.IsActive, a.Description, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert account", err)
	}
	return nil
}

func (r *AccountRepo) GetByID(ctx context.Context, id string) (*entity.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

func (r *AccountRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Account, error) {
	return r.getOne(ctx, `SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 AND account_code = $2`, companyID, code)
}

func (r *AccountRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Account, error) {
	a, err := scanAccount(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return a, nil
}

func (r *AccountRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts
		WHERE company_id = $1 AND ($2 = false OR is_active = true) ORDER BY account_code ASC`, companyID, activeOnly)
}

func (r *AccountRepo) ListByType(ctx context.Context, companyID, accountType string) ([]*entity.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts
		WHERE company_id = $1 AND account_type = $2 AND is_active = true ORDER BY account_code ASC`, companyID, accountType)
}

// Search busca por código o nombre dentro de la empresa.
func (r *AccountRepo) Search(ctx context.Context, companyID, q string) ([]*entity.Account, error) {
	return r.list(ctx, `SELECT `+accountColumns+` FROM accounts
		WHERE company_id = $1 AND is_active = true AND (account_code ILIKE $2 OR account_name ILIKE $2)
		ORDER BY account_code ASC`, companyID, likePattern(q))
}

func (r *AccountRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Account, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	list, err := collect(rows, scanAccount)
	if err != nil {
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return list, nil
}

func (r *AccountRepo) CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM accounts WHERE company_id = $1 AND account_code = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check account code: %w", err)
	}
	return ok, nil
}

func (r *AccountRepo) Update(ctx context.Context, a *entity.Account) error {
	query := `
		UPDATE accounts
		SET account_code = $2, account_name = $3, account_type = $4, account_category = $5,
		    parent_account_id = $6, normal_balance = $7, is_control_account = $8, allow_posting = $9,
		    require_reconciliation = $10, is_active = $11, description = $12, updated_at = $13
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		a.ID, a.AccountCode, a.AccountName, a.AccountType, a.AccountCategory,
		a.ParentAccountID, a.NormalBalance, a.IsControlAccount, a.AllowPosting,
		a.RequireReconciliation, a.IsActive, a.Description, a.UpdatedAt,
	)
	if err != nil {
		return writeErr("update account", err)
	}
	return affectedOrNotFound(tag)
}

func (r *AccountRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE accounts SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	return affectedOrNotFound(tag)
}
