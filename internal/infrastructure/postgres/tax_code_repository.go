package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.TaxCodeRepository = (*TaxCodeRepo)(nil)

// TaxCodeRepo implementación de TaxCodeRepository sobre PostgreSQL. tax_rate es NUMERIC(7,4).
type TaxCodeRepo struct {
	q Querier
}

func NewTaxCodeRepository(q Querier) *TaxCodeRepo {
	return &TaxCodeRepo{q: q}
}

const taxCodeColumns = `id, company_id, tax_code, tax_description, tax_rate, tax_type, is_active, created_at, updated_at`

func scanTaxCode(row pgxScanner) (*entity.TaxCode, error) {
	var t entity.TaxCode
	if err := row.Scan(&t.ID, &t.CompanyID, &t.TaxCode, &t.TaxDescription, &t.TaxRate, &t.TaxType,
		&t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaxCodeRepo) Create(ctx context.Context, t *entity.TaxCode) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `INSERT INTO tax_codes (`+taxCodeColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.CompanyID, t.TaxCode, t.TaxDescription, t.TaxRate, t.TaxType, t.IsActive, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return writeErr("insert tax code", err)
	}
	return nil
}

func (r *TaxCodeRepo) GetByID(ctx context.Context, id string) (*entity.TaxCode, error) {
	return r.getOne(ctx, `SELECT `+taxCodeColumns+` FROM tax_codes WHERE id = $1`, id)
}

func (r *TaxCodeRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.TaxCode, error) {
	return r.getOne(ctx, `SELECT `+taxCodeColumns+` FROM tax_codes WHERE company_id = $1 AND tax_code = $2`, companyID, code)
}

func (r *TaxCodeRepo) getOne(ctx context.Context, query string, args ...any) (*entity.TaxCode, error) {
	t, err := scanTaxCode(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tax code: %w", err)
	}
	return t, nil
}

func (r *TaxCodeRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.TaxCode, error) {
	rows, err := r.q.Query(ctx, `SELECT `+taxCodeColumns+` FROM tax_codes
		WHERE company_id = $1 AND ($2 = false OR is_active = true) ORDER BY tax_code ASC`, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list tax codes: %w", err)
	}
	list, err := collect(rows, scanTaxCode)
	if err != nil {
		return nil, fmt.Errorf("scan tax code: %w", err)
	}
	return list, nil
}

func (r *TaxCodeRepo) CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM tax_codes WHERE company_id = $1 AND tax_code = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check tax code: %w", err)
	}
	return ok, nil
}

func (r *TaxCodeRepo) Update(ctx context.Context, t *entity.TaxCode) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE tax_codes
		SET tax_code = $2, tax_description = $3, tax_rate = $4, tax_type = $5, is_active = $6, updated_at = $7
		WHERE id = $1`,
		t.ID, t.TaxCode, t.TaxDescription, t.TaxRate, t.TaxType, t.IsActive, t.UpdatedAt)
	if err != nil {
		return writeErr("update tax code", err)
	}
	return affectedOrNotFound(tag)
}

func (r *TaxCodeRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE tax_codes SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete tax code: %w", err)
	}
	return affectedOrNotFound(tag)
}
