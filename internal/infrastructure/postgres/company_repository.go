package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, code, name, legal_name, tax_id, registration_number,
	address_line1, address_line2, city, state_province, postal_code, country_code,
	default_currency_id, is_active, created_at, updated_at`

func scanCompany(row pgxScanner) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.LegalName, &c.TaxID, &c.RegistrationNumber,
		&c.AddressLine1, &c.AddressLine2, &c.City, &c.StateProvince, &c.PostalCode, &c.CountryCode,
		&c.DefaultCurrencyID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `INSERT INTO companies (` + companyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.Code, c.Name, c.LegalName, c.TaxID, c.RegistrationNumber,
		c.AddressLine1, c.AddressLine2, c.City, c.StateProvince, c.PostalCode, c.CountryCode,
		c.DefaultCurrencyID, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert company", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID (activa o no).
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// GetByCode obtiene una empresa por código.
func (r *CompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	c, err := scanCompany(r.q.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE code = $1`, code))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company by code: %w", err)
	}
	return c, nil
}

// CodeExists informa si el código ya está tomado por otra empresa.
func (r *CompanyRepo) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE code = $1 AND ($2 = '' OR id::text <> $2))`,
		code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check company code: %w", err)
	}
	return ok, nil
}

// List devuelve empresas con paginación, ordenadas por código.
func (r *CompanyRepo) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE ($1 = false OR is_active = true)
		ORDER BY code ASC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, activeOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	list, err := collect(rows, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return list, nil
}

// Search busca empresas activas por código o nombre (sin distinguir mayúsculas).
func (r *CompanyRepo) Search(ctx context.Context, q string) ([]*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
		WHERE is_active = true AND (code ILIKE $1 OR name ILIKE $1)
		ORDER BY code ASC`
	rows, err := r.q.Query(ctx, query, likePattern(q))
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	list, err := collect(rows, scanCompany)
	if err != nil {
		return nil, fmt.Errorf("scan company: %w", err)
	}
	return list, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	query := `
		UPDATE companies
		SET code = $2, name = $3, legal_name = $4, tax_id = $5, registration_number = $6,
		    address_line1 = $7, address_line2 = $8, city = $9, state_province = $10,
		    postal_code = $11, country_code = $12, default_currency_id = $13,
		    is_active = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		c.ID, c.Code, c.Name, c.LegalName, c.TaxID, c.RegistrationNumber,
		c.AddressLine1, c.AddressLine2, c.City, c.StateProvince,
		c.PostalCode, c.CountryCode, c.DefaultCurrencyID, c.IsActive, c.UpdatedAt,
	)
	if err != nil {
		return writeErr("update company", err)
	}
	return affectedOrNotFound(tag)
}

// SoftDelete marca la empresa como inactiva.
func (r *CompanyRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE companies SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return affectedOrNotFound(tag)
}
