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

// PaymentUseCase registro de pagos recibidos y enviados.
// Crear un pago con invoice_id no toca el saldo de la factura: eso lo hace InvoiceUseCase.RecordPayment.
type PaymentUseCase struct {
	repo repository.PaymentRepository
	log  zerolog.Logger
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, log zerolog.Logger) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, log: log}
}

// Create registra el pago siempre en PENDING.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	date, err := dto.ParseDate("payment_date", in.PaymentDate)
	if err != nil {
		return nil, err
	}
	if err := validatePaymentAmount(in.Amount); err != nil {
		return nil, err
	}
	rate, err := exchangeRate(in.ExchangeRate)
	if err != nil {
		return nil, err
	}

	taken, err := uc.repo.NumberExistsForCompany(ctx, in.CompanyID, in.PaymentNumber, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, paymentNumberTaken(in.PaymentNumber)
	}

	now := time.Now()
	p := &entity.Payment{
		CompanyID:         in.CompanyID,
		PaymentNumber:     in.PaymentNumber,
		PaymentType:       in.PaymentType,
		BusinessPartnerID: in.BusinessPartnerID,
		InvoiceID:         in.InvoiceID,
		PaymentDate:       date,
		CurrencyID:        in.CurrencyID,
		ExchangeRate:      rate,
		Amount:            in.Amount,
		PaymentMethod:     in.PaymentMethod,
		Reference:         in.Reference,
		Notes:             in.Notes,
		Status:            entity.PaymentStatusPending,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("payment_id", p.ID).Str("company_id", p.CompanyID).
		Str("number", p.PaymentNumber).Str("amount", p.Amount.String()).Msg("pago registrado")
	return entityToPaymentResponse(p), nil
}

// GetByID devuelve el pago o domain.ErrNotFound.
func (uc *PaymentUseCase) GetByID(ctx context.Context, id string) (*dto.PaymentResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToPaymentResponse(p), nil
}

// GetByCompanyAndNumber busca por número dentro de la empresa.
func (uc *PaymentUseCase) GetByCompanyAndNumber(ctx context.Context, companyID, number string) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByCompanyAndNumber(ctx, companyID, number)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: pago %s", domain.ErrNotFound, number)
	}
	return entityToPaymentResponse(p), nil
}

// List todos los pagos.
func (uc *PaymentUseCase) List(ctx context.Context) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// ListByCompany aplica los filtros opcionales de tipo, estado, método y rango de fechas.
func (uc *PaymentUseCase) ListByCompany(ctx context.Context, companyID string, f dto.PaymentFilterRequest) ([]dto.PaymentResponse, error) {
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
	list, err := uc.repo.ListByCompany(ctx, companyID, repository.PaymentFilter{
		Type: f.Type, Status: f.Status, Method: f.Method, From: from, To: to,
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// ListByBusinessPartner pagos de un tercero.
func (uc *PaymentUseCase) ListByBusinessPartner(ctx context.Context, partnerID string) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByBusinessPartner(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// ListByInvoice pagos vinculados a una factura.
func (uc *PaymentUseCase) ListByInvoice(ctx context.Context, invoiceID string) ([]dto.PaymentResponse, error) {
	list, err := uc.repo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return toPaymentResponses(list), nil
}

// TotalByCompanyAndType suma de pagos COMPLETED y activos.
func (uc *PaymentUseCase) TotalByCompanyAndType(ctx context.Context, companyID, paymentType string) (*dto.PaymentTotalResponse, error) {
	if paymentType != entity.PaymentTypeReceived && paymentType != entity.PaymentTypeSent {
		return nil, fmt.Errorf("%w: tipo de pago desconocido: %s", domain.ErrInvalidInput, paymentType)
	}
	total, err := uc.repo.SumCompletedByCompanyAndType(ctx, companyID, paymentType)
	if err != nil {
		return nil, err
	}
	return &dto.PaymentTotalResponse{CompanyID: companyID, PaymentType: paymentType, Total: total}, nil
}

// Update aplica un patch parcial con número único (excluyéndose) y monto positivo.
func (uc *PaymentUseCase) Update(ctx context.Context, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.PaymentNumber != nil && *in.PaymentNumber != p.PaymentNumber {
		taken, err := uc.repo.NumberExistsForCompany(ctx, p.CompanyID, *in.PaymentNumber, p.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, paymentNumberTaken(*in.PaymentNumber)
		}
		p.PaymentNumber = *in.PaymentNumber
	}
	if in.Amount != nil {
		if err := validatePaymentAmount(*in.Amount); err != nil {
			return nil, err
		}
		p.Amount = *in.Amount
	}
	if in.ExchangeRate != nil {
		rate, err := exchangeRate(in.ExchangeRate)
		if err != nil {
			return nil, err
		}
		p.ExchangeRate = rate
	}
	if in.PaymentDate != nil {
		if p.PaymentDate, err = dto.ParseDate("payment_date", *in.PaymentDate); err != nil {
			return nil, err
		}
	}
	if in.PaymentType != nil {
		p.PaymentType = *in.PaymentType
	}
	if in.BusinessPartnerID != nil {
		p.BusinessPartnerID = *in.BusinessPartnerID
	}
	if in.InvoiceID != nil {
		p.InvoiceID = in.InvoiceID
	}
	if in.CurrencyID != nil {
		p.CurrencyID = *in.CurrencyID
	}
	if in.PaymentMethod != nil {
		p.PaymentMethod = *in.PaymentMethod
	}
	if in.Reference != nil {
		p.Reference = *in.Reference
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return entityToPaymentResponse(p), nil
}

// UpdateStatus fija el estado del pago.
func (uc *PaymentUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.PaymentResponse, error) {
	switch status {
	case entity.PaymentStatusPending, entity.PaymentStatusCompleted,
		entity.PaymentStatusFailed, entity.PaymentStatusCancelled:
	default:
		return nil, fmt.Errorf("%w: estado de pago desconocido: %s", domain.ErrInvalidInput, status)
	}
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, p.ID, status); err != nil {
		return nil, err
	}
	uc.log.Info().Str("payment_id", p.ID).Str("from", p.Status).Str("to", status).Msg("estado de pago actualizado")
	return uc.GetByID(ctx, p.ID)
}

// Remove baja lógica.
func (uc *PaymentUseCase) Remove(ctx context.Context, id string) error {
	p, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, p.ID)
}

func (uc *PaymentUseCase) load(ctx context.Context, id string) (*entity.Payment, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: pago %s", domain.ErrNotFound, id)
	}
	return p, nil
}

func validatePaymentAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: el monto del pago debe ser positivo", domain.ErrInvalidInput)
	}
	return settlement.ValidateScale("amount", amount)
}

func paymentNumberTaken(number string) error {
	return fmt.Errorf("%w: ya existe un pago con número %s para esta empresa", domain.ErrConflict, number)
}

func toPaymentResponses(list []*entity.Payment) []dto.PaymentResponse {
	items := make([]dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToPaymentResponse(p))
	}
	return items
}

func entityToPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	if p == nil {
		return nil
	}
	return &dto.PaymentResponse{
		ID:                p.ID,
		CompanyID:         p.CompanyID,
		PaymentNumber:     p.PaymentNumber,
		PaymentType:       p.PaymentType,
		BusinessPartnerID: p.BusinessPartnerID,
		InvoiceID:         p.InvoiceID,
		PaymentDate:       dto.FormatDate(p.PaymentDate),
		CurrencyID:        p.CurrencyID,
		ExchangeRate:      p.ExchangeRate,
		Amount:            p.Amount,
		PaymentMethod:     p.PaymentMethod,
		Reference:         p.Reference,
		Notes:             p.Notes,
		Status:            p.Status,
		IsActive:          p.IsActive,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}
