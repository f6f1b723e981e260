package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, company_id, invoice_number, invoice_type, business_partner_id,
	invoice_date, due_date, currency_id, exchange_rate, total_before_tax, total_tax, total_amount,
	paid_amount, balance, status, fiscal_year_id, notes, po_reference, is_active, created_at, updated_at`

func scanInvoice(row pgxScanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	var fiscalYearID *string
	err := row.Scan(
		&inv.ID, &inv.CompanyID, &inv.InvoiceNumber, &inv.InvoiceType, &inv.BusinessPartnerID,
		&inv.InvoiceDate, &inv.DueDate, &inv.CurrencyID, &inv.ExchangeRate, &inv.TotalBeforeTax, &inv.TotalTax, &inv.TotalAmount,
		&inv.PaidAmount, &inv.Balance, &inv.Status, &fiscalYearID, &inv.Notes, &inv.POReference, &inv.IsActive,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if fiscalYearID != nil {
		inv.FiscalYearID = *fiscalYearID
	}
	return &inv, nil
}

// Create persiste la cabecera de la factura con su saldo inicial.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CompanyID, inv.InvoiceNumber, inv.InvoiceType, inv.BusinessPartnerID,
		inv.InvoiceDate, inv.DueDate, inv.CurrencyID, inv.ExchangeRate, inv.TotalBeforeTax, inv.TotalTax, inv.TotalAmount,
		inv.PaidAmount, inv.Balance, inv.Status, nullIfEmpty(inv.FiscalYearID), inv.Notes, inv.POReference, inv.IsActive,
		inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert invoice", err)
	}
	return nil
}

// GetByID obtiene una factura por ID.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id)
}

// GetByIDForUpdate bloquea la fila hasta el fin de la transacción.
func (r *InvoiceRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1 FOR UPDATE`, id)
}

func (r *InvoiceRepo) GetByCompanyAndNumber(ctx context.Context, companyID, number string) (*entity.Invoice, error) {
	return r.getOne(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE company_id = $1 AND invoice_number = $2`, companyID, number)
}

func (r *InvoiceRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Invoice, error) {
	inv, err := scanInvoice(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices ORDER BY invoice_date DESC, invoice_number DESC`)
}

// ListByCompany aplica los filtros opcionales (tipo, estado, rango de fechas de factura).
func (r *InvoiceRepo) ListByCompany(ctx context.Context, companyID string, f repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE company_id = $1
		  AND ($2 = '' OR invoice_type = $2)
		  AND ($3 = '' OR status = $3)
		  AND ($4::date IS NULL OR invoice_date >= $4::date)
		  AND ($5::date IS NULL OR invoice_date <= $5::date)
		ORDER BY invoice_date DESC, invoice_number DESC`
	return r.list(ctx, query, companyID, f.Type, f.Status, f.From, f.To)
}

func (r *InvoiceRepo) ListByBusinessPartner(ctx context.Context, businessPartnerID string) ([]*entity.Invoice, error) {
	return r.list(ctx, `SELECT `+invoiceColumns+` FROM invoices
		WHERE business_partner_id = $1 ORDER BY invoice_date DESC`, businessPartnerID)
}

// ListOverdueByCompany ordena por vencimiento ascendente (la más atrasada primero).
func (r *InvoiceRepo) ListOverdueByCompany(ctx context.Context, companyID string, today time.Time) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices
		WHERE company_id = $1
		  AND due_date < $2::date
		  AND balance > 0
		  AND status <> 'PAID'
		  AND is_active = true
		ORDER BY due_date ASC`
	return r.list(ctx, query, companyID, today)
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Invoice, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list, err := collect(rows, scanInvoice)
	if err != nil {
		return nil, fmt.Errorf("scan invoice: %w", err)
	}
	return list, nil
}

func (r *InvoiceRepo) NumberExistsForCompany(ctx context.Context, companyID, number, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM invoices WHERE company_id = $1 AND invoice_number = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, number, excludeID)
	if err != nil {
		return false, fmt.Errorf("check invoice number: %w", err)
	}
	return ok, nil
}

// Update persiste la cabecera completa, incluidos los campos de saldo.
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	query := `
		UPDATE invoices
		SET invoice_number = $2, invoice_type = $3, business_partner_id = $4, invoice_date = $5,
		    due_date = $6, currency_id = $7, exchange_rate = $8, total_before_tax = $9, total_tax = $10,
		    total_amount = $11, paid_amount = $12, balance = $13, status = $14, fiscal_year_id = $15,
		    notes = $16, po_reference = $17, is_active = $18, updated_at = $19
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		inv.ID, inv.InvoiceNumber, inv.InvoiceType, inv.BusinessPartnerID, inv.InvoiceDate,
		inv.DueDate, inv.CurrencyID, inv.ExchangeRate, inv.TotalBeforeTax, inv.TotalTax,
		inv.TotalAmount, inv.PaidAmount, inv.Balance, inv.Status, nullIfEmpty(inv.FiscalYearID),
		inv.Notes, inv.POReference, inv.IsActive, inv.UpdatedAt,
	)
	if err != nil {
		return writeErr("update invoice", err)
	}
	return affectedOrNotFound(tag)
}

// UpdateSettlement escribe paid_amount, balance y status en un solo UPDATE.
func (r *InvoiceRepo) UpdateSettlement(ctx context.Context, inv *entity.Invoice) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE invoices SET paid_amount = $2, balance = $3, status = $4, updated_at = $5
		WHERE id = $1`,
		inv.ID, inv.PaidAmount, inv.Balance, inv.Status, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update invoice settlement: %w", err)
	}
	return affectedOrNotFound(tag)
}

// UpdateStatus asigna el estado sin derivarlo del saldo.
func (r *InvoiceRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.q.Exec(ctx, `UPDATE invoices SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update invoice status: %w", err)
	}
	return affectedOrNotFound(tag)
}

func (r *InvoiceRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE invoices SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return affectedOrNotFound(tag)
}
