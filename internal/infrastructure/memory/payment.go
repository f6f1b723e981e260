package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

type paymentRow struct{ entity.Payment }

func (r *paymentRow) id() string      { return r.ID }
func (r *paymentRow) setID(id string) { r.ID = id }
func (r *paymentRow) key() string     { return companyKey(r.CompanyID, r.PaymentNumber) }
func (r *paymentRow) out() *entity.Payment {
	p := r.Payment
	return &p
}

// PaymentRepo pagos en memoria.
type PaymentRepo struct{ s *Store }

// Payments devuelve el repositorio de pagos del Store.
func (s *Store) Payments() *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := &paymentRow{*p}
	if err := r.s.payments.insert(row); err != nil {
		return err
	}
	p.ID = row.ID
	return nil
}

func (r *PaymentRepo) GetByID(_ context.Context, id string) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.payments.get(id); ok {
		return row.out(), nil
	}
	return nil, nil
}

func (r *PaymentRepo) GetByCompanyAndNumber(_ context.Context, companyID, number string) (*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if row, ok := r.s.payments.find(func(x *paymentRow) bool {
		return x.CompanyID == companyID && x.PaymentNumber == number
	}); ok {
		return row.out(), nil
	}
	return nil, nil
}

func (r *PaymentRepo) List(_ context.Context) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return paymentOut(r.s.payments.filter(nil, byPaymentDateDesc)), nil
}

func (r *PaymentRepo) ListByCompany(_ context.Context, companyID string, f repository.PaymentFilter) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.payments.filter(func(x *paymentRow) bool {
		switch {
		case x.CompanyID != companyID:
			return false
		case f.Type != "" && x.PaymentType != f.Type:
			return false
		case f.Status != "" && x.Status != f.Status:
			return false
		case f.Method != "" && x.PaymentMethod != f.Method:
			return false
		case f.From != nil && x.PaymentDate.Before(*f.From):
			return false
		case f.To != nil && x.PaymentDate.After(*f.To):
			return false
		}
		return true
	}, byPaymentDateDesc)
	return paymentOut(rows), nil
}

func (r *PaymentRepo) ListByBusinessPartner(_ context.Context, businessPartnerID string) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.payments.filter(func(x *paymentRow) bool { return x.BusinessPartnerID == businessPartnerID }, byPaymentDateDesc)
	return paymentOut(rows), nil
}

func (r *PaymentRepo) ListByInvoice(_ context.Context, invoiceID string) ([]*entity.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rows := r.s.payments.filter(func(x *paymentRow) bool {
		return x.InvoiceID != nil && *x.InvoiceID == invoiceID
	}, func(a, b *paymentRow) bool { return a.PaymentDate.Before(b.PaymentDate) })
	return paymentOut(rows), nil
}

func (r *PaymentRepo) NumberExistsForCompany(_ context.Context, companyID, number, excludeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payments.keyTaken(companyKey(companyID, number), excludeID), nil
}

func (r *PaymentRepo) SumCompletedByCompanyAndType(_ context.Context, companyID, paymentType string) (decimal.Decimal, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	total := decimal.Zero
	for _, x := range r.s.payments.rows {
		if x.CompanyID == companyID && x.PaymentType == paymentType &&
			x.Status == entity.PaymentStatusCompleted && x.IsActive {
			total = total.Add(x.Amount)
		}
	}
	return total, nil
}

func (r *PaymentRepo) Update(_ context.Context, p *entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.payments.update(&paymentRow{*p})
}

func (r *PaymentRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.modify(id, func(x *entity.Payment) { x.Status = status })
}

func (r *PaymentRepo) SoftDelete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.modify(id, func(x *entity.Payment) { x.IsActive = false })
}

func (r *PaymentRepo) modify(id string, fn func(*entity.Payment)) error {
	cur, ok := r.s.payments.get(id)
	if !ok {
		return domain.ErrNotFound
	}
	next := cur.Payment
	fn(&next)
	next.UpdatedAt = time.Now()
	return r.s.payments.update(&paymentRow{next})
}

func byPaymentDateDesc(a, b *paymentRow) bool {
	if !a.PaymentDate.Equal(b.PaymentDate) {
		return a.PaymentDate.After(b.PaymentDate)
	}
	return a.PaymentNumber > b.PaymentNumber
}

func paymentOut(rows []*paymentRow) []*entity.Payment {
	out := make([]*entity.Payment, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.out())
	}
	return out
}
