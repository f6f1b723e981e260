package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository  = (*CompanyRepo)(nil)
	_ repository.CurrencyRepository = (*CurrencyRepo)(nil)
)

// ── Company ──────────────────────────────────────────────────────────────────

type companyRow struct{ entity.Company }

func (r *companyRow) id() string      { return r.ID }
func (r *companyRow) setID(id string) { r.ID = id }
func (r *companyRow) key() string     { return r.Code }

// CompanyRepo empresas en memoria.
type CompanyRepo struct{ s *Store }

// Companies devuelve el repositorio de empresas del Store.
func (s *Store) Companies() *CompanyRepo { return &CompanyRepo{s: s} }

func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := &companyRow{*c}
	if err := r.s.companies.insert(row); err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.companies.get(id); ok {
		c := row.Company
		return &c, nil
	}
	return nil, nil
}

func (r *CompanyRepo) GetByCode(_ context.Context, code string) (*entity.Company, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.companies.find(func(x *companyRow) bool { return x.Code == code }); ok {
		c := row.Company
		return &c, nil
	}
	return nil, nil
}

func (r *CompanyRepo) CodeExists(_ context.Context, code, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.companies.keyTaken(code, excludeID), nil
}

func (r *CompanyRepo) List(_ context.Context, activeOnly bool, limit, offset int) ([]*entity.Company, error) {
	out := r.where(func(x *companyRow) bool { return !activeOnly || x.IsActive })
	if offset >= len(out) {
		return []*entity.Company{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *CompanyRepo) Search(_ context.Context, q string) ([]*entity.Company, error) {
	return r.where(func(x *companyRow) bool {
		return x.IsActive && (containsFold(x.Code, q) || containsFold(x.Name, q))
	}), nil
}

func (r *CompanyRepo) Update(_ context.Context, c *entity.Company) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.companies.update(&companyRow{*c})
}

func (r *CompanyRepo) SoftDelete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.companies.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	next := cur.Company
	next.IsActive, next.UpdatedAt = false, time.Now()
	return r.s.companies.update(&companyRow{next})
}

func (r *CompanyRepo) where(match func(*companyRow) bool) []*entity.Company {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.companies.filter(match, func(a, b *companyRow) bool { return a.Code < b.Code })
	out := make([]*entity.Company, 0, len(rows))
	for _, row := range rows {
		c := row.Company
		out = append(out, &c)
	}
	return out
}

// ── Currency ─────────────────────────────────────────────────────────────────

type currencyRow struct{ entity.Currency }

func (r *currencyRow) id() string      { return r.ID }
func (r *currencyRow) setID(id string) { r.ID = id }
func (r *currencyRow) key() string     { return r.Code }

// CurrencyRepo catálogo de monedas en memoria.
type CurrencyRepo struct{ s *Store }

// Currencies devuelve el repositorio de monedas del Store.
func (s *Store) Currencies() *CurrencyRepo { return &CurrencyRepo{s: s} }

func (r *CurrencyRepo) Create(_ context.Context, c *entity.Currency) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := &currencyRow{*c}
	if err := r.s.currencies.insert(row); err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *CurrencyRepo) GetByID(_ context.Context, id string) (*entity.Currency, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.currencies.get(id); ok {
		c := row.Currency
		return &c, nil
	}
	return nil, nil
}

func (r *CurrencyRepo) GetByCode(_ context.Context, code string) (*entity.Currency, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.currencies.find(func(x *currencyRow) bool { return x.Code == code }); ok {
		c := row.Currency
		return &c, nil
	}
	return nil, nil
}

func (r *CurrencyRepo) CodeExists(_ context.Context, code, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.currencies.keyTaken(code, excludeID), nil
}

func (r *CurrencyRepo) List(_ context.Context, activeOnly bool) ([]*entity.Currency, error) {
	return r.where(func(x *currencyRow) bool { return !activeOnly || x.IsActive }), nil
}

func (r *CurrencyRepo) ListByDecimalPlaces(_ context.Context, decimalPlaces int) ([]*entity.Currency, error) {
	return r.where(func(x *currencyRow) bool { return x.IsActive && x.DecimalPlaces == decimalPlaces }), nil
}

func (r *CurrencyRepo) Search(_ context.Context, q string) ([]*entity.Currency, error) {
	return r.where(func(x *currencyRow) bool {
		return x.IsActive && (containsFold(x.Code, q) || containsFold(x.Name, q))
	}), nil
}

func (r *CurrencyRepo) Update(_ context.Context, c *entity.Currency) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.currencies.update(&currencyRow{*c})
}

func (r *CurrencyRepo) SoftDelete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.currencies.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	next := cur.Currency
	next.IsActive, next.UpdatedAt = false, time.Now()
	return r.s.currencies.update(&currencyRow{next})
}

func (r *CurrencyRepo) where(match func(*currencyRow) bool) []*entity.Currency {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.currencies.filter(match, func(a, b *currencyRow) bool { return a.Code < b.Code })
	out := make([]*entity.Currency, 0, len(rows))
	for _, row := range rows {
		c := row.Currency
		out = append(out, &c)
	}
	return out
}
