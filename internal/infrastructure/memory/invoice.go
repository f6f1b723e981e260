package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/fiscal"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

type invoiceRow struct{ entity.Invoice }

func (r *invoiceRow) id() string      { return r.ID }
func (r *invoiceRow) setID(id string) { r.ID = id }
func (r *invoiceRow) key() string     { return companyKey(r.CompanyID, r.InvoiceNumber) }
func (r *invoiceRow) out() *entity.Invoice {
	inv := r.Invoice
	return &inv
}

// InvoiceRepo facturas en memoria. Dentro de RunSettlement (locked) no vuelve a tomar el mutex.
type InvoiceRepo struct {
	s      *Store
	locked bool
}

// Invoices devuelve el repositorio de facturas del Store.
func (s *Store) Invoices() *InvoiceRepo { return &InvoiceRepo{s: s} }

func (r *InvoiceRepo) rlock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.RLock()
	return r.s.mu.RUnlock
}

func (r *InvoiceRepo) lock() func() {
	if r.locked {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *InvoiceRepo) Create(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	row := &invoiceRow{*inv}
	if err := r.s.invoices.insert(row); err != nil {
		return err
	}
	inv.ID = row.ID
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	defer r.rlock()()
	if row, ok := r.s.invoices.get(id); ok {
		return row.out(), nil
	}
	return nil, nil
}

// GetByIDForUpdate igual que GetByID; el aislamiento lo da el lock de RunSettlement.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.GetByID(ctx, id)
}

func (r *InvoiceRepo) GetByCompanyAndNumber(_ context.Context, companyID, number string) (*entity.Invoice, error) {
	defer r.rlock()()
	if row, ok := r.s.invoices.find(func(x *invoiceRow) bool {
		return x.CompanyID == companyID && x.InvoiceNumber == number
	}); ok {
		return row.out(), nil
	}
	return nil, nil
}

func (r *InvoiceRepo) List(_ context.Context) ([]*entity.Invoice, error) {
	defer r.rlock()()
	return invoiceOut(r.s.invoices.filter(nil, byInvoiceDateDesc)), nil
}

func (r *InvoiceRepo) ListByCompany(_ context.Context, companyID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	defer r.rlock()()
	rows := r.s.invoices.filter(func(x *invoiceRow) bool {
		switch {
		case x.CompanyID != companyID:
			return false
		case f.Type != "" && x.InvoiceType != f.Type:
			return false
		case f.Status != "" && x.Status != f.Status:
			return false
		case f.From != nil && x.InvoiceDate.Before(*f.From):
			return false
		case f.To != nil && x.InvoiceDate.After(*f.To):
			return false
		}
		return true
	}, byInvoiceDateDesc)
	return invoiceOut(rows), nil
}

func (r *InvoiceRepo) ListByBusinessPartner(_ context.Context, businessPartnerID string) ([]*entity.Invoice, error) {
	defer r.rlock()()
	rows := r.s.invoices.filter(func(x *invoiceRow) bool { return x.BusinessPartnerID == businessPartnerID }, byInvoiceDateDesc)
	return invoiceOut(rows), nil
}

func (r *InvoiceRepo) ListOverdueByCompany(_ context.Context, companyID string, today time.Time) ([]*entity.Invoice, error) {
	defer r.rlock()()
	day := fiscal.DateOnly(today)
	rows := r.s.invoices.filter(func(x *invoiceRow) bool {
		return x.CompanyID == companyID &&
			x.DueDate.Before(day) &&
			x.Balance.IsPositive() &&
			x.Status != entity.InvoiceStatusPaid &&
			x.IsActive
	}, func(a, b *invoiceRow) bool { return a.DueDate.Before(b.DueDate) })
	return invoiceOut(rows), nil
}

func (r *InvoiceRepo) NumberExistsForCompany(_ context.Context, companyID, number, excludeID string) (bool, error) {
	defer r.rlock()()
	return r.s.invoices.keyTaken(companyKey(companyID, number), excludeID), nil
}

func (r *InvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	return r.s.invoices.update(&invoiceRow{*inv})
}

func (r *InvoiceRepo) UpdateSettlement(_ context.Context, inv *entity.Invoice) error {
	defer r.lock()()
	return r.modify(inv.ID, func(x *entity.Invoice) {
		x.PaidAmount = inv.PaidAmount
		x.Balance = inv.Balance
		x.Status = inv.Status
		x.UpdatedAt = inv.UpdatedAt
	})
}

func (r *InvoiceRepo) UpdateStatus(_ context.Context, id, status string) error {
	defer r.lock()()
	return r.modify(id, func(x *entity.Invoice) {
		x.Status = status
		x.UpdatedAt = time.Now()
	})
}

func (r *InvoiceRepo) SoftDelete(_ context.Context, id string) error {
	defer r.lock()()
	return r.modify(id, func(x *entity.Invoice) {
		x.IsActive = false
		x.UpdatedAt = time.Now()
	})
}

// modify aplica fn sobre una copia y la guarda; el llamador ya tiene el lock.
func (r *InvoiceRepo) modify(id string, fn func(*entity.Invoice)) error {
	cur, ok := r.s.invoices.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	next := cur.Invoice
	fn(&next)
	return r.s.invoices.update(&invoiceRow{next})
}

func byInvoiceDateDesc(a, b *invoiceRow) bool {
	if !a.InvoiceDate.Equal(b.InvoiceDate) {
		return a.InvoiceDate.After(b.InvoiceDate)
	}
	return a.InvoiceNumber > b.InvoiceNumber
}

func invoiceOut(rows []*invoiceRow) []*entity.Invoice {
	out := make([]*entity.Invoice, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.out())
	}
	return out
}
