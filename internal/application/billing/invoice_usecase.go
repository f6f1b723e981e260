// Package billing contiene los casos de uso de facturas y pagos: saldo, estado y exportación.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/internal/domain/settlement"
)

// InvoiceUseCase ciclo de vida de facturas y aplicación de pagos sobre su saldo.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
	tx   SettlementTxRunner
	log  zerolog.Logger
	now  func() time.Time
}

// Option configura los casos de uso de facturación.
type Option func(*InvoiceUseCase)

// WithClock reemplaza el reloj usado para vencidas y marcas de tiempo.
func WithClock(now func() time.Time) Option {
	return func(uc *InvoiceUseCase) { uc.now = now }
}

// NewInvoiceUseCase construye el caso de uso. tx abre la transacción de RecordPayment.
func NewInvoiceUseCase(repo repository.InvoiceRepository, tx SettlementTxRunner, log zerolog.Logger, opts ...Option) *InvoiceUseCase {
	uc := &InvoiceUseCase{repo: repo, tx: tx, log: log, now: time.Now}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// Create registra la factura en DRAFT con saldo = total y nada pagado.
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	invoiceDate, err := dto.ParseDate("invoice_date", in.InvoiceDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := dto.ParseDate("due_date", in.DueDate)
	if err != nil {
		return nil, err
	}
	if err := validateDueDate(invoiceDate, dueDate); err != nil {
		return nil, err
	}
	if err := validateAmounts(in.TotalBeforeTax, in.TotalTax, in.TotalAmount); err != nil {
		return nil, err
	}
	rate, err := exchangeRate(in.ExchangeRate)
	if err != nil {
		return nil, err
	}

	taken, err := uc.repo.NumberExistsForCompany(ctx, in.CompanyID, in.InvoiceNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, invoiceNumberTaken(in.InvoiceNumber)
	}

	tax := decimal.Zero
	if in.TotalTax != nil {
		tax = *in.TotalTax
	}
	now := uc.now()
	inv := &entity.Invoice{
		CompanyID:         in.CompanyID,
		InvoiceNumber:     in.InvoiceNumber,
		InvoiceType:       in.InvoiceType,
		BusinessPartnerID: in.BusinessPartnerID,
		InvoiceDate:       invoiceDate,
		DueDate:           dueDate,
		CurrencyID:        in.CurrencyID,
		ExchangeRate:      rate,
		TotalBeforeTax:    in.TotalBeforeTax,
		TotalTax:          tax,
		TotalAmount:       in.TotalAmount,
		FiscalYearID:      in.FiscalYearID,
		Notes:             in.Notes,
		POReference:       in.POReference,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	settlement.Seed(inv)
	if err := uc.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", inv.ID).Str("company_id", inv.CompanyID).
		Str("number", inv.InvoiceNumber).Str("total", inv.TotalAmount.String()).Msg("factura creada")
	return entityToInvoiceResponse(inv), nil
}

// GetByID devuelve la factura o domain.ErrNotFound.
func (uc *InvoiceUseCase) GetByID(ctx context.Context, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToInvoiceResponse(inv), nil
}

// GetByCompanyAndNumber busca por número dentro de la empresa.
func (uc *InvoiceUseCase) GetByCompanyAndNumber(ctx context.Context, companyID, number string) (*dto.InvoiceResponse, error) {
	inv, err := uc.repo.GetByCompanyAndNumber(ctx, companyID, number)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, number)
	}
	return entityToInvoiceResponse(inv), nil
}

// List todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// ListByCompany aplica los filtros opcionales de tipo, estado y rango de fechas.
func (uc *InvoiceUseCase) ListByCompany(ctx context.Context, companyID string, f dto.InvoiceFilterRequest) ([]dto.InvoiceResponse, error) {
	if err := dto.Validate(f); err != nil {
		return nil, err
	}
	from, err := dto.ParseOptionalDate("from", f.From)
	if err != nil {
		return nil, err
	}
	to, err := dto.ParseOptionalDate("to", f.To)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByCompany(ctx, companyID, repository.InvoiceFilter{
		Type: f.Type, Status: f.Status, From: from, To: to,
	})
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// ListByBusinessPartner facturas de un tercero.
func (uc *InvoiceUseCase) ListByBusinessPartner(ctx context.Context, partnerID string) ([]dto.InvoiceResponse, error) {
	list, err := uc.repo.ListByBusinessPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// ListOverdueByCompany facturas vencidas a la fecha de hoy con saldo pendiente.
func (uc *InvoiceUseCase) ListOverdueByCompany(ctx context.Context, companyID string) ([]dto.InvoiceResponse, error) {
	y, m, d := uc.now().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	list, err := uc.repo.ListOverdueByCompany(ctx, companyID, today)
	if err != nil {
		return nil, err
	}
	return toInvoiceResponses(list), nil
}

// Update aplica un patch parcial. Un nuevo total recalcula el saldo con lo ya pagado;
// el estado no se toca.
func (uc *InvoiceUseCase) Update(ctx context.Context, id string, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	if in.InvoiceNumber != nil && *in.InvoiceNumber != inv.InvoiceNumber {
		taken, err := uc.repo.NumberExistsForCompany(ctx, inv.CompanyID, *in.InvoiceNumber, inv.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, invoiceNumberTaken(*in.InvoiceNumber)
		}
		inv.InvoiceNumber = *in.InvoiceNumber
	}

	if in.InvoiceDate != nil || in.DueDate != nil {
		invoiceDate, dueDate := inv.InvoiceDate, inv.DueDate
		if in.InvoiceDate != nil {
			if invoiceDate, err = dto.ParseDate("invoice_date", *in.InvoiceDate); err != nil {
				return nil, err
			}
		}
		if in.DueDate != nil {
			if dueDate, err = dto.ParseDate("due_date", *in.DueDate); err != nil {
				return nil, err
			}
		}
		if err := validateDueDate(invoiceDate, dueDate); err != nil {
			return nil, err
		}
		inv.InvoiceDate, inv.DueDate = invoiceDate, dueDate
	}

	if in.ExchangeRate != nil {
		rate, err := exchangeRate(in.ExchangeRate)
		if err != nil {
			return nil, err
		}
		inv.ExchangeRate = rate
	}
	total := inv.TotalAmount
	if in.TotalAmount != nil {
		total = *in.TotalAmount
	}
	beforeTax := inv.TotalBeforeTax
	if in.TotalBeforeTax != nil {
		beforeTax = *in.TotalBeforeTax
	}
	if err := validateAmounts(beforeTax, in.TotalTax, total); err != nil {
		return nil, err
	}
	inv.TotalBeforeTax = beforeTax
	if in.TotalTax != nil {
		inv.TotalTax = *in.TotalTax
	}
	if in.TotalAmount != nil {
		settlement.RecalculateTotal(inv, *in.TotalAmount)
	}

	if in.InvoiceType != nil {
		inv.InvoiceType = *in.InvoiceType
	}
	if in.BusinessPartnerID != nil {
		inv.BusinessPartnerID = *in.BusinessPartnerID
	}
	if in.CurrencyID != nil {
		inv.CurrencyID = *in.CurrencyID
	}
	if in.FiscalYearID != nil {
		inv.FiscalYearID = *in.FiscalYearID
	}
	if in.Notes != nil {
		inv.Notes = *in.Notes
	}
	if in.POReference != nil {
		inv.POReference = *in.POReference
	}
	if in.IsActive != nil {
		inv.IsActive = *in.IsActive
	}
	inv.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return entityToInvoiceResponse(inv), nil
}

// UpdateStatus fija el estado sin derivarlo del saldo. Puede dejar estado y saldo
// desincronizados; queda registrado en el log.
func (uc *InvoiceUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.InvoiceResponse, error) {
	if !validInvoiceStatus(status) {
		return nil, fmt.Errorf("%w: estado de factura desconocido: %s", domain.ErrInvalidInput, status)
	}
	inv, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, inv.ID, status); err != nil {
		return nil, err
	}
	ev := uc.log.Info()
	if status == entity.InvoiceStatusPaid && inv.Balance.IsPositive() {
		ev = uc.log.Warn()
	}
	ev.Str("invoice_id", inv.ID).Str("from", inv.Status).Str("to", status).
		Str("balance", inv.Balance.String()).Msg("estado de factura fijado manualmente")
	return uc.GetByID(ctx, inv.ID)
}

// RecordPayment aplica un pago al saldo. Lectura con bloqueo, derivación y escritura
// ocurren en una sola transacción; luego se relee la factura.
func (uc *InvoiceUseCase) RecordPayment(ctx context.Context, id string, in dto.RecordPaymentRequest) (*dto.InvoiceResponse, error) {
	var from, to string
	var balance decimal.Decimal
	err := uc.tx.RunSettlement(ctx, func(invoices repository.InvoiceRepository) error {
		inv, err := invoices.GetByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
		}
		from = inv.Status
		if err := settlement.ApplyPayment(inv, in.Amount); err != nil {
			return err
		}
		inv.UpdatedAt = uc.now()
		to, balance = inv.Status, inv.Balance
		return invoices.UpdateSettlement(ctx, inv)
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("invoice_id", id).Str("amount", in.Amount.String()).
		Str("balance", balance.String()).Str("from", from).Str("to", to).
		Msg("pago aplicado a factura")
	return uc.GetByID(ctx, id)
}

// Remove baja lógica.
func (uc *InvoiceUseCase) Remove(ctx context.Context, id string) error {
	inv, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, inv.ID)
}

func (uc *InvoiceUseCase) load(ctx context.Context, id string) (*entity.Invoice, error) {
	inv, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, fmt.Errorf("%w: factura %s", domain.ErrNotFound, id)
	}
	return inv, nil
}

func validateDueDate(invoiceDate, dueDate time.Time) error {
	if dueDate.Before(invoiceDate) {
		return fmt.Errorf("%w: la fecha de vencimiento no puede ser anterior a la fecha de factura", domain.ErrInvalidInput)
	}
	return nil
}

func validateAmounts(beforeTax decimal.Decimal, tax *decimal.Decimal, total decimal.Decimal) error {
	if beforeTax.IsNegative() || total.IsNegative() || (tax != nil && tax.IsNegative()) {
		return fmt.Errorf("%w: los totales de la factura no pueden ser negativos", domain.ErrInvalidInput)
	}
	if err := settlement.ValidateScale("total_before_tax", beforeTax); err != nil {
		return err
	}
	if tax != nil {
		if err := settlement.ValidateScale("total_tax", *tax); err != nil {
			return err
		}
	}
	return settlement.ValidateScale("total_amount", total)
}

// exchangeRate: nil = 1; debe ser positiva.
func exchangeRate(r *decimal.Decimal) (decimal.Decimal, error) {
	if r == nil {
		return decimal.NewFromInt(1), nil
	}
	if !r.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: la tasa de cambio debe ser positiva", domain.ErrInvalidInput)
	}
	return *r, nil
}

func invoiceNumberTaken(number string) error {
	return fmt.Errorf("%w: ya existe una factura con número %s para esta empresa", domain.ErrConflict, number)
}

func validInvoiceStatus(s string) bool {
	switch s {
	case entity.InvoiceStatusDraft, entity.InvoiceStatusPosted, entity.InvoiceStatusPartiallyPaid,
		entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled:
		return true
	}
	return false
}

func toInvoiceResponses(list []*entity.Invoice) []dto.InvoiceResponse {
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *entityToInvoiceResponse(inv))
	}
	return items
}

func entityToInvoiceResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	if inv == nil {
		return nil
	}
	return &dto.InvoiceResponse{
		ID:                inv.ID,
		CompanyID:         inv.CompanyID,
		InvoiceNumber:     inv.InvoiceNumber,
		InvoiceType:       inv.InvoiceType,
		BusinessPartnerID: inv.BusinessPartnerID,
		InvoiceDate:       dto.FormatDate(inv.InvoiceDate),
		DueDate:           dto.FormatDate(inv.DueDate),
		CurrencyID:        inv.CurrencyID,
		ExchangeRate:      inv.ExchangeRate,
		TotalBeforeTax:    inv.TotalBeforeTax,
		TotalTax:          inv.TotalTax,
		TotalAmount:       inv.TotalAmount,
		PaidAmount:        inv.PaidAmount,
		Balance:           inv.Balance,
		Status:            inv.Status,
		FiscalYearID:      inv.FiscalYearID,
		Notes:             inv.Notes,
		POReference:       inv.POReference,
		IsActive:          inv.IsActive,
		CreatedAt:         inv.CreatedAt,
		UpdatedAt:         inv.UpdatedAt,
	}
}
