package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var (
	_ repository.AccountRepository         = (*AccountRepo)(nil)
	_ repository.JournalRepository         = (*JournalRepo)(nil)
	_ repository.TaxCodeRepository         = (*TaxCodeRepo)(nil)
	_ repository.BusinessPartnerRepository = (*BusinessPartnerRepo)(nil)
	_ repository.ProductRepository         = (*ProductRepo)(nil)
	_ repository.WarehouseRepository       = (*WarehouseRepo)(nil)
)

// scoped implementa el contrato común de los datos maestros por empresa.
type scoped[E any, R row] struct {
	s       *Store
	t       *table[R]
	wrap    func(E) R
	out     func(R) *E
	company func(R) string
	code    func(R) string
	active  func(R) bool
	// deactivate devuelve una copia marcada como inactiva.
	deactivate func(R) R
}

func (m *scoped[E, R]) Create(_ context.Context, e *E) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	row := m.wrap(*e)
	if err := m.t.insert(row); err != nil {
		return err
	}
	*e = *m.out(row)
	return nil
}

func (m *scoped[E, R]) GetByID(_ context.Context, id string) (*E, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	if row, ok := m.t.get(id); ok {
		return m.out(row), nil
	}
	return nil, nil
}

func (m *scoped[E, R]) GetByCompanyAndCode(_ context.Context, companyID, code string) (*E, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	if row, ok := m.t.find(func(x R) bool { return m.company(x) == companyID && m.code(x) == code }); ok {
		return m.out(row), nil
	}
	return nil, nil
}

func (m *scoped[E, R]) ListByCompany(_ context.Context, companyID string, activeOnly bool) ([]*E, error) {
	return m.where(func(x R) bool {
		return m.company(x) == companyID && (!activeOnly || m.active(x))
	}), nil
}

func (m *scoped[E, R]) CodeExistsForCompany(_ context.Context, companyID, code, excludeID string) (bool, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return m.t.keyTaken(companyKey(companyID, code), excludeID), nil
}

func (m *scoped[E, R]) Update(_ context.Context, e *E) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return m.t.update(m.wrap(*e))
}

func (m *scoped[E, R]) SoftDelete(_ context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	cur, ok := m.t.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	return m.t.update(m.deactivate(cur))
}

// where lista por código ascendente.
func (m *scoped[E, R]) where(match func(R) bool) []*E {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	rows := m.t.filter(match, func(a, b R) bool { return m.code(a) < m.code(b) })
	out := make([]*E, 0, len(rows))
	for _, r := range rows {
		out = append(out, m.out(r))
	}
	return out
}

// ── Account ──────────────────────────────────────────────────────────────────

type accountRow struct{ entity.Account }

func (r *accountRow) id() string      { return r.ID }
func (r *accountRow) setID(id string) { r.ID = id }
func (r *accountRow) key() string     { return companyKey(r.CompanyID, r.AccountCode) }

// AccountRepo plan de cuentas en memoria.
type AccountRepo struct {
	scoped[entity.Account, *accountRow]
}

// Accounts devuelve el repositorio de cuentas del Store.
func (s *Store) Accounts() *AccountRepo {
	return &AccountRepo{scoped[entity.Account, *accountRow]{
		s: s, t: s.accounts,
		wrap:    func(e entity.Account) *accountRow { return &accountRow{e} },
		out:     func(r *accountRow) *entity.Account { e := r.Account; return &e },
		company: func(r *accountRow) string { return r.CompanyID },
		code:    func(r *accountRow) string { return r.AccountCode },
		active:  func(r *accountRow) bool { return r.IsActive },
		deactivate: func(r *accountRow) *accountRow {
			e := r.Account
			e.IsActive, e.UpdatedAt = false, time.Now()
			return &accountRow{e}
		},
	}}
}

func (r *AccountRepo) ListByType(_ context.Context, companyID, accountType string) ([]*entity.Account, error) {
	return r.where(func(x *accountRow) bool {
		return x.CompanyID == companyID && x.AccountType == accountType && x.IsActive
	}), nil
}

func (r *AccountRepo) Search(_ context.Context, companyID, q string) ([]*entity.Account, error) {
	return r.where(func(x *accountRow) bool {
		return x.CompanyID == companyID && x.IsActive &&
			(containsFold(x.AccountCode, q) || containsFold(x.AccountName, q))
	}), nil
}

// ── Journal ──────────────────────────────────────────────────────────────────

type journalRow struct{ entity.Journal }

func (r *journalRow) id() string      { return r.ID }
func (r *journalRow) setID(id string) { r.ID = id }
func (r *journalRow) key() string     { return companyKey(r.CompanyID, r.JournalCode) }

// JournalRepo diarios en memoria.
type JournalRepo struct {
	scoped[entity.Journal, *journalRow]
}

// Journals devuelve el repositorio de diarios del Store.
func (s *Store) Journals() *JournalRepo {
	return &JournalRepo{scoped[entity.Journal, *journalRow]{
		s: s, t: s.journals,
		wrap:    func(e entity.Journal) *journalRow { return &journalRow{e} },
		out:     func(r *journalRow) *entity.Journal { e := r.Journal; return &e },
		company: func(r *journalRow) string { return r.CompanyID },
		code:    func(r *journalRow) string { return r.JournalCode },
		active:  func(r *journalRow) bool { return r.IsActive },
		deactivate: func(r *journalRow) *journalRow {
			e := r.Journal
			e.IsActive, e.UpdatedAt = false, time.Now()
			return &journalRow{e}
		},
	}}
}

// ── TaxCode ──────────────────────────────────────────────────────────────────

type taxCodeRow struct{ entity.TaxCode }

func (r *taxCodeRow) id() string      { return r.ID }
func (r *taxCodeRow) setID(id string) { r.ID = id }
func (r *taxCodeRow) key() string     { return companyKey(r.CompanyID, r.TaxCode.TaxCode) }

// TaxCodeRepo códigos de impuesto en memoria.
type TaxCodeRepo struct {
	scoped[entity.TaxCode, *taxCodeRow]
}

// TaxCodes devuelve el repositorio de impuestos del Store.
func (s *Store) TaxCodes() *TaxCodeRepo {
	return &TaxCodeRepo{scoped[entity.TaxCode, *taxCodeRow]{
		s: s, t: s.taxCodes,
		wrap:    func(e entity.TaxCode) *taxCodeRow { return &taxCodeRow{e} },
		out:     func(r *taxCodeRow) *entity.TaxCode { e := r.TaxCode; return &e },
		company: func(r *taxCodeRow) string { return r.CompanyID },
		code:    func(r *taxCodeRow) string { return r.TaxCode.TaxCode },
		active:  func(r *taxCodeRow) bool { return r.IsActive },
		deactivate: func(r *taxCodeRow) *taxCodeRow {
			e := r.TaxCode
			e.IsActive, e.UpdatedAt = false, time.Now()
			return &taxCodeRow{e}
		},
	}}
}

// ── BusinessPartner ──────────────────────────────────────────────────────────

type partnerRow struct{ entity.BusinessPartner }

func (r *partnerRow) id() string      { return r.ID }
func (r *partnerRow) setID(id string) { r.ID = id }
func (r *partnerRow) key() string     { return companyKey(r.CompanyID, r.PartnerCode) }

// BusinessPartnerRepo terceros en memoria.
type BusinessPartnerRepo struct {
	scoped[entity.BusinessPartner, *partnerRow]
}

// BusinessPartners devuelve el repositorio de terceros del Store.
func (s *Store) BusinessPartners() *BusinessPartnerRepo {
	return &BusinessPartnerRepo{scoped[entity.BusinessPartner, *partnerRow]{
		s: s, t: s.partners,
		wrap:    func(e entity.BusinessPartner) *partnerRow { return &partnerRow{e} },
		out:     func(r *partnerRow) *entity.BusinessPartner { e := r.BusinessPartner; return &e },
		company: func(r *partnerRow) string { return r.CompanyID },
		code:    func(r *partnerRow) string { return r.PartnerCode },
		active:  func(r *partnerRow) bool { return r.IsActive },
		deactivate: func(r *partnerRow) *partnerRow {
			e := r.BusinessPartner
			e.IsActive, e.UpdatedAt = false, time.Now()
			return &partnerRow{e}
		},
	}}
}

// ── Product ──────────────────────────────────────────────────────────────────

type productRow struct{ entity.Product }

func (r *productRow) id() string      { return r.ID }
func (r *productRow) setID(id string) { r.ID = id }
func (r *productRow) key() string     { return companyKey(r.CompanyID, r.ProductCode) }

// ProductRepo productos en memoria.
type ProductRepo struct {
	scoped[entity.Product, *productRow]
}

// Products devuelve el repositorio de productos del Store.
func (s *Store) Products() *ProductRepo {
	return &ProductRepo{scoped[entity.Product, *productRow]{
		s: s, t: s.products,
		wrap:    func(e entity.Product) *productRow { return &productRow{e} },
		out:     func(r *productRow) *entity.Product { e := r.Product; return &e },
		company: func(r *productRow) string { return r.CompanyID },
		code:    func(r *productRow) string { return r.ProductCode },
		active:  func(r *productRow) bool { return r.IsActive },
		deactivate: func(r *productRow) *productRow {
			e := r.Product
			e.IsActive, e.UpdatedAt = false, time.Now()
			return &productRow{e}
		},
	}}
}

// ── Warehouse ────────────────────────────────────────────────────────────────

type warehouseRow struct{ entity.Warehouse }

func (r *warehouseRow) id() string      { return r.ID }
func (r *warehouseRow) setID(id string) { r.ID = id }
func (r *warehouseRow) key() string     { return companyKey(r.CompanyID, r.WarehouseCode) }

// WarehouseRepo bodegas en memoria.
type WarehouseRepo struct {
	scoped[entity.Warehouse, *warehouseRow]
}

// Warehouses devuelve el repositorio de bodegas del Store.
func (s *Store) Warehouses() *WarehouseRepo {
	return &WarehouseRepo{scoped[entity.Warehouse, *warehouseRow]{
		s: s, t: s.warehouses,
		wrap:    func(e entity.Warehouse) *warehouseRow { return &warehouseRow{e} },
		out:     func(r *warehouseRow) *entity.Warehouse { e := r.Warehouse; return &e },
		company: func(r *warehouseRow) string { return r.CompanyID },
		code:    func(r *warehouseRow) string { return r.WarehouseCode },
		active:  func(r *warehouseRow) bool { return r.IsActive },
		deactivate: func(r *warehouseRow) *warehouseRow {
			e := r.Warehouse
			e.IsActive, e.UpdatedAt = false, time.Now()
			return &warehouseRow{e}
		},
	}}
}
