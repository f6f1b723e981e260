package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación de PaymentRepository (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

const paymentColumns = `id, company_id, payment_number, payment_type, business_partner_id, invoice_id,
	payment_date, currency_id, exchange_rate, amount, payment_method, reference, notes, status,
	is_active, created_at, updated_at`

func scanPayment(row pgxScanner) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.PaymentNumber, &p.PaymentType, &p.BusinessPartnerID, &p.InvoiceID,
		&p.PaymentDate, &p.CurrencyID, &p.ExchangeRate, &p.Amount, &p.PaymentMethod, &p.Reference, &p.Notes, &p.Status,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.PaymentNumber, p.PaymentType, p.BusinessPartnerID, p.InvoiceID,
		p.PaymentDate, p.CurrencyID, p.ExchangeRate, p.Amount, p.PaymentMethod, p.Reference, p.Notes, p.Status,
		p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert payment", err)
	}
	return nil
}

func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	return r.getOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
}

func (r *PaymentRepo) GetByCompanyAndNumber(ctx context.Context, companyID, number string) (*entity.Payment, error) {
	return r.getOne(ctx, `SELECT `+paymentColumns+` FROM payments WHERE company_id = $1 AND payment_number = $2`, companyID, number)
}

func (r *PaymentRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Payment, error) {
	p, err := scanPayment(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepo) List(ctx context.Context) ([]*entity.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments ORDER BY payment_date DESC, payment_number DESC`)
}

func (r *PaymentRepo) ListByCompany(ctx context.Context, companyID string, f repository.PaymentFilter) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments
		WHERE company_id = $1
		  AND ($2 = '' OR payment_type = $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4 = '' OR payment_method = $4)
		  AND ($5::date IS NULL OR payment_date >= $5::date)
		  AND ($6::date IS NULL OR payment_date <= $6::date)
		ORDER BY payment_date DESC, payment_number DESC`
	return r.list(ctx, query, companyID, f.Type, f.Status, f.Method, f.From, f.To)
}

func (r *PaymentRepo) ListByBusinessPartner(ctx context.Context, businessPartnerID string) ([]*entity.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments
		WHERE business_partner_id = $1 ORDER BY payment_date DESC`, businessPartnerID)
}

func (r *PaymentRepo) ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error) {
	return r.list(ctx, `SELECT `+paymentColumns+` FROM payments
		WHERE invoice_id = $1 ORDER BY payment_date ASC`, invoiceID)
}

func (r *PaymentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Payment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	list, err := collect(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return list, nil
}

func (r *PaymentRepo) NumberExistsForCompany(ctx context.Context, companyID, number, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM payments WHERE company_id = $1 AND payment_number = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, number, excludeID)
	if err != nil {
		return false, fmt.Errorf("check payment number: %w", err)
	}
	return ok, nil
}

// SumCompletedByCompanyAndType suma los montos COMPLETED y activos; 0 si no hay ninguno.
func (r *PaymentRepo) SumCompletedByCompanyAndType(ctx context.Context, companyID, paymentType string) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE company_id = $1 AND payment_type = $2 AND status = 'COMPLETED' AND is_active = true`,
		companyID, paymentType).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}

func (r *PaymentRepo) Update(ctx context.Context, p *entity.Payment) error {
	query := `
		UPDATE payments
		SET payment_number = $2, payment_type = $3, business_partner_id = $4, invoice_id = $5,
		    payment_date = $6, currency_id = $7, exchange_rate = $8, amount = $9, payment_method = $10,
		    reference = $11, notes = $12, status = $13, is_active = $14, updated_at = $15
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.PaymentNumber, p.PaymentType, p.BusinessPartnerID, p.InvoiceID,
		p.PaymentDate, p.CurrencyID, p.ExchangeRate, p.Amount, p.PaymentMethod,
		p.Reference, p.Notes, p.Status, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("update payment", err)
	}
	return affectedOrNotFound(tag)
}

func (r *PaymentRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE payments SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	return affectedOrNotFound(tag)
}

func (r *PaymentRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE payments SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return affectedOrNotFound(tag)
}
