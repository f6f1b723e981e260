package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.BusinessPartnerRepository = (*BusinessPartnerRepo)(nil)

// BusinessPartnerRepo implementación de BusinessPartnerRepository sobre PostgreSQL.
type BusinessPartnerRepo struct {
	q Querier
}

// NewBusinessPartnerRepository construye el adaptador de terceros. Pasar pool o tx (Querier).
func NewBusinessPartnerRepository(q Querier) *BusinessPartnerRepo {
	return &BusinessPartnerRepo{q: q}
}

const partnerColumns = `id, company_id, partner_code, partner_name, partner_type, tax_id, email, phone,
	is_active, created_at, updated_at`

func scanPartner(row pgxScanner) (*entity.BusinessPartner, error) {
	var p entity.BusinessPartner
	if err := row.Scan(&p.ID, &p.CompanyID, &p.PartnerCode, &p.PartnerName, &p.PartnerType, &p.TaxID,
		&p.Email, &p.Phone, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *BusinessPartnerRepo) Create(ctx context.Context, p *entity.BusinessPartner) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `INSERT INTO business_partners (`+partnerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		p.ID, p.CompanyID, p.PartnerCode, p.PartnerName, p.PartnerType, p.TaxID,
		p.Email, p.Phone, p.IsActive, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return writeErr("insert business partner", err)
	}
	return nil
}

func (r *BusinessPartnerRepo) GetByID(ctx context.Context, id string) (*entity.BusinessPartner, error) {
	return r.getOne(ctx, `SELECT `+partnerColumns+` FROM business_partners WHERE id = $1`, id)
}

func (r *BusinessPartnerRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.BusinessPartner, error) {
	return r.getOne(ctx, `SELECT `+partnerColumns+` FROM business_partners WHERE company_id = $1 AND partner_code = $2`, companyID, code)
}

func (r *BusinessPartnerRepo) getOne(ctx context.Context, query string, args ...any) (*entity.BusinessPartner, error) {
	p, err := scanPartner(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business partner: %w", err)
	}
	return p, nil
}

func (r *BusinessPartnerRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.BusinessPartner, error) {
	rows, err := r.q.Query(ctx, `SELECT `+partnerColumns+` FROM business_partners
		WHERE company_id = $1 AND ($2 = false OR is_active = true) ORDER BY partner_code ASC`, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list business partners: %w", err)
	}
	list, err := collect(rows, scanPartner)
	if err != nil {
		return nil, fmt.Errorf("scan business partner: %w", err)
	}
	return list, nil
}

func (r *BusinessPartnerRepo) CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM business_partners WHERE company_id = $1 AND partner_code = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check business partner code: %w", err)
	}
	return ok, nil
}

func (r *BusinessPartnerRepo) Update(ctx context.Context, p *entity.BusinessPartner) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE business_partners
		SET partner_code = $2, partner_name = $3, partner_type = $4, tax_id = $5, email = $6, phone = $7,
		    is_active = $8, updated_at = $9
		WHERE id = $1`,
		p.ID, p.PartnerCode, p.PartnerName, p.PartnerType, p.TaxID, p.Email, p.Phone, p.IsActive, p.UpdatedAt)
	if err != nil {
		return writeErr("update business partner", err)
	}
	return affectedOrNotFound(tag)
}

func (r *BusinessPartnerRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE business_partners SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete business partner: %w", err)
	}
	return affectedOrNotFound(tag)
}
