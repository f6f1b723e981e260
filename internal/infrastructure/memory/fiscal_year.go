package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/fiscal"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.FiscalYearRepository = (*FiscalYearRepo)(nil)

type fiscalRow struct{ entity.FiscalYear }

func (r *fiscalRow) id() string      { return r.ID }
func (r *fiscalRow) setID(id string) { r.ID = id }
func (r *fiscalRow) key() string     { return companyKey(r.CompanyID, r.Code) }
func (r *fiscalRow) out() *entity.FiscalYear {
	fy := r.FiscalYear
	return &fy
}

// FiscalYearRepo años fiscales en memoria.
type FiscalYearRepo struct{ s *Store }

// FiscalYears devuelve el repositorio de años fiscales del Store.
func (s *Store) FiscalYears() *FiscalYearRepo { return &FiscalYearRepo{s: s} }

func (r *FiscalYearRepo) Create(_ context.Context, fy *entity.FiscalYear) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := &fiscalRow{*fy}
	if err := r.s.fiscal.insert(row); err != nil {
		return err
	}
	fy.ID = row.ID
	return nil
}

func (r *FiscalYearRepo) GetByID(_ context.Context, id string) (*entity.FiscalYear, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.fiscal.get(id); ok {
		return row.out(), nil
	}
	return nil, nil
}

func (r *FiscalYearRepo) GetByCompanyAndCode(_ context.Context, companyID, code string) (*entity.FiscalYear, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.fiscal.find(func(x *fiscalRow) bool { return x.CompanyID == companyID && x.Code == code }); ok {
		return row.out(), nil
	}
	return nil, nil
}

func (r *FiscalYearRepo) GetByCompanyAndDate(_ context.Context, companyID string, date time.Time) (*entity.FiscalYear, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.fiscal.filter(func(x *fiscalRow) bool {
		return x.CompanyID == companyID && x.IsActive && fiscal.Contains(&x.FiscalYear, date)
	}, byStart)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0].out(), nil
}

func (r *FiscalYearRepo) List(_ context.Context) ([]*entity.FiscalYear, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return fiscalOut(r.s.fiscal.filter(nil, byStartDesc)), nil
}

func (r *FiscalYearRepo) ListByCompany(_ context.Context, companyID string, f repository.FiscalYearFilter) ([]*entity.FiscalYear, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.fiscal.filter(func(x *fiscalRow) bool {
		if x.CompanyID != companyID {
			return false
		}
		if f.ActiveOnly && !x.IsActive {
			return false
		}
		return f.Closed == nil || x.IsClosed == *f.Closed
	}, byStartDesc)
	return fiscalOut(rows), nil
}

func (r *FiscalYearRepo) CodeExistsForCompany(_ context.Context, companyID, code, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.fiscal.keyTaken(companyKey(companyID, code), excludeID), nil
}

// FindOverlapping delega en fiscal.FindOverlapping: misma regla y mismo orden que la consulta SQL.
func (r *FiscalYearRepo) FindOverlapping(_ context.Context, companyID string, start, end time.Time, excludeID string) ([]*entity.FiscalYear, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	years := fiscalOut(r.s.fiscal.filter(nil, nil))
	return fiscal.FindOverlapping(years, companyID, start, end, excludeID), nil
}

func (r *FiscalYearRepo) Update(_ context.Context, fy *entity.FiscalYear) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.fiscal.get(fy.ID)
	if !ok {
		return domain.ErrNotFound
	}
	next := *fy
	next.IsClosed = cur.IsClosed
	next.ClosedDate = cur.ClosedDate
	return r.s.fiscal.update(&fiscalRow{next})
}

func (r *FiscalYearRepo) SetClosed(_ context.Context, id string, closed bool, closedDate *time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.fiscal.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	next := cur.FiscalYear
	next.IsClosed = closed
	next.ClosedDate = closedDate
	next.UpdatedAt = time.Now()
	return r.s.fiscal.update(&fiscalRow{next})
}

func (r *FiscalYearRepo) SoftDelete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.fiscal.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	next := cur.FiscalYear
	next.IsActive = false
	next.UpdatedAt = time.Now()
	return r.s.fiscal.update(&fiscalRow{next})
}

func byStart(a, b *fiscalRow) bool {
	if !a.StartDate.Equal(b.StartDate) {
		return a.StartDate.Before(b.StartDate)
	}
	return a.Code < b.Code
}

func byStartDesc(a, b *fiscalRow) bool {
	return a.StartDate.After(b.StartDate)
}

func fiscalOut(rows []*fiscalRow) []*entity.FiscalYear {
	out := make([]*entity.FiscalYear, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.out())
	}
	return out
}
