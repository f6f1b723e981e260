package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.JournalRepository = (*JournalRepo)(nil)

// JournalRepo implementación de JournalRepository sobre PostgreSQL.
type JournalRepo struct {
	q Querier
}

func NewJournalRepository(q Querier) *JournalRepo {
	return &JournalRepo{q: q}
}

const journalColumns = `id, company_id, journal_code, journal_name, journal_type, description, is_active, created_at, updated_at`

func scanJournal(row pgxScanner) (*entity.Journal, error) {
	var j entity.Journal
	if err := row.Scan(&j.ID, &j.CompanyID, &j.JournalCode, &j.JournalName, &j.JournalType,
		&j.Description, &j.IsActive, &j.CreatedAt, &j.UpdatedAt); err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *JournalRepo) Create(ctx context.Context, j *entity.Journal) error {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `INSERT INTO journals (`+journalColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		j.ID, j.CompanyID, j.JournalCode, j.JournalName, j.JournalType, j.Description, j.IsActive, j.CreatedAt, j.UpdatedAt)
	if err != nil {
		return writeErr("insert journal", err)
	}
	return nil
}

func (r *JournalRepo) GetByID(ctx context.Context, id string) (*entity.Journal, error) {
	return r.getOne(ctx, `SELECT `+journalColumns+` FROM journals WHERE id = $1`, id)
}

func (r *JournalRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Journal, error) {
	return r.getOne(ctx, `SELECT `+journalColumns+` FROM journals WHERE company_id = $1 AND journal_code = $2`, companyID, code)
}

func (r *JournalRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Journal, error) {
	j, err := scanJournal(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get journal: %w", err)
	}
	return j, nil
}

func (r *JournalRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Journal, error) {
	rows, err := r.q.Query(ctx, `SELECT `+journalColumns+` FROM journals
		WHERE company_id = $1 AND ($2 = false OR is_active = true) ORDER BY journal_code ASC`, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list journals: %w", err)
	}
	list, err := collect(rows, scanJournal)
	if err != nil {
		return nil, fmt.Errorf("scan journal: %w", err)
	}
	return list, nil
}

func (r *JournalRepo) CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM journals WHERE company_id = $1 AND journal_code = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check journal code: %w", err)
	}
	return ok, nil
}

func (r *JournalRepo) Update(ctx context.Context, j *entity.Journal) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE journals
		SET journal_code = $2, journal_name = $3, journal_type = $4, description = $5, is_active = $6, updated_at = $7
		WHERE id = $1`,
		j.ID, j.JournalCode, j.JournalName, j.JournalType, j.Description, j.IsActive, j.UpdatedAt)
	if err != nil {
		return writeErr("update journal", err)
	}
	return affectedOrNotFound(tag)
}

func (r *JournalRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE journals SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete journal: %w", err)
	}
	return affectedOrNotFound(tag)
}
