package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.FiscalYearRepository = (*FiscalYearRepo)(nil)

// FiscalYearRepo implementación de FiscalYearRepository sobre PostgreSQL (usable con pool o tx).
type FiscalYearRepo struct {
	q Querier
}

// NewFiscalYearRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFiscalYearRepository(q Querier) *FiscalYearRepo {
	return &FiscalYearRepo{q: q}
}

const fiscalYearColumns = `id, company_id, code, name, start_date, end_date, is_closed, closed_date,
	is_active, number_of_periods, description, created_at, updated_at`

func scanFiscalYear(row pgxScanner) (*entity.FiscalYear, error) {
	var fy entity.FiscalYear
	err := row.Scan(
		&fy.ID, &fy.CompanyID, &fy.Code, &fy.Name, &fy.StartDate, &fy.EndDate, &fy.IsClosed, &fy.ClosedDate,
		&fy.IsActive, &fy.NumberOfPeriods, &fy.Description, &fy.CreatedAt, &fy.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &fy, nil
}

// Create persiste un año fiscal. Las fechas van a columnas DATE.
func (r *FiscalYearRepo) Create(ctx context.Context, fy *entity.FiscalYear) error {
	if fy.ID == "" {
		fy.ID = uuid.New().String()
	}
	query := `INSERT INTO fiscal_years (` + fiscalYearColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		fy.ID, fy.CompanyID, fy.Code, fy.Name, fy.StartDate, fy.EndDate, fy.IsClosed, fy.ClosedDate,
		fy.IsActive, fy.NumberOfPeriods, fy.Description, fy.CreatedAt, fy.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert fiscal year", err)
	}
	return nil
}

func (r *FiscalYearRepo) GetByID(ctx context.Context, id string) (*entity.FiscalYear, error) {
	return r.getOne(ctx, `SELECT `+fiscalYearColumns+` FROM fiscal_years WHERE id = $1`, id)
}

func (r *FiscalYearRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.FiscalYear, error) {
	return r.getOne(ctx, `SELECT `+fiscalYearColumns+` FROM fiscal_years WHERE company_id = $1 AND code = $2`, companyID, code)
}

// GetByCompanyAndDate devuelve el año activo que contiene date.
func (r *FiscalYearRepo) GetByCompanyAndDate(ctx context.Context, companyID string, date time.Time) (*entity.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years
		WHERE company_id = $1 AND is_active = true AND start_date <= $2::date AND end_date >= $2::date
		ORDER BY start_date ASC, code ASC LIMIT 1`
	return r.getOne(ctx, query, companyID, date)
}

func (r *FiscalYearRepo) getOne(ctx context.Context, query string, args ...any) (*entity.FiscalYear, error) {
	fy, err := scanFiscalYear(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fiscal year: %w", err)
	}
	return fy, nil
}

func (r *FiscalYearRepo) List(ctx context.Context) ([]*entity.FiscalYear, error) {
	return r.list(ctx, `SELECT `+fiscalYearColumns+` FROM fiscal_years ORDER BY company_id, start_date DESC`)
}

// ListByCompany ordena por start_date descendente.
func (r *FiscalYearRepo) ListByCompany(ctx context.Context, companyID string, f repository.FiscalYearFilter) ([]*entity.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years
		WHERE company_id = $1
		  AND ($2 = false OR is_active = true)
		  AND ($3::boolean IS NULL OR is_closed = $3)
		ORDER BY start_date DESC`
	return r.list(ctx, query, companyID, f.ActiveOnly, f.Closed)
}

// FindOverlapping aplica s1 <= e2 AND e1 >= s2 sobre fechas DATE (extremos inclusivos).
// Incluye años inactivos: la baja lógica no libera el intervalo.
func (r *FiscalYearRepo) FindOverlapping(ctx context.Context, companyID string, start, end time.Time, excludeID string) ([]*entity.FiscalYear, error) {
	query := `SELECT ` + fiscalYearColumns + ` FROM fiscal_years
		WHERE company_id = $1
		  AND start_date <= $3::date
		  AND end_date >= $2::date
		  AND ($4 = '' OR id::text <> $4)
		ORDER BY start_date ASC, code ASC`
	return r.list(ctx, query, companyID, start, end, excludeID)
}

func (r *FiscalYearRepo) list(ctx context.Context, query string, args ...any) ([]*entity.FiscalYear, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list fiscal years: %w", err)
	}
	list, err := collect(rows, scanFiscalYear)
	if err != nil {
		return nil, fmt.Errorf("scan fiscal year: %w", err)
	}
	return list, nil
}

func (r *FiscalYearRepo) CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM fiscal_years WHERE company_id = $1 AND code = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check fiscal year code: %w", err)
	}
	return ok, nil
}

// Update persiste los campos editables. El estado de cierre solo cambia vía SetClosed.
func (r *FiscalYearRepo) Update(ctx context.Context, fy *entity.FiscalYear) error {
	query := `
		UPDATE fiscal_years
		SET code = $2, name = $3, start_date = $4, end_date = $5, is_active = $6,
		    number_of_periods = $7, description = $8, updated_at = $9
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		fy.ID, fy.Code, fy.Name, fy.StartDate, fy.EndDate, fy.IsActive,
		fy.NumberOfPeriods, fy.Description, fy.UpdatedAt,
	)
	if err != nil {
		return writeErr("update fiscal year", err)
	}
	return affectedOrNotFound(tag)
}

func (r *FiscalYearRepo) SetClosed(ctx context.Context, id string, closed bool, closedDate *time.Time) error {
	tag, err := r.q.Exec(ctx,
		`UPDATE fiscal_years SET is_closed = $2, closed_date = $3, updated_at = now() WHERE id = $1`,
		id, closed, closedDate)
	if err != nil {
		return fmt.Errorf("set fiscal year closed: %w", err)
	}
	return affectedOrNotFound(tag)
}

func (r *FiscalYearRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE fiscal_years SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete fiscal year: %w", err)
	}
	return affectedOrNotFound(tag)
}
