package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// PaymentFilter filtros de listado por empresa; los campos vacíos no filtran.
type PaymentFilter struct {
	Type   string
	Status string
	Method string
	From   *time.Time
	To     *time.Time
}

// PaymentRepository define el puerto de persistencia para pagos.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	GetByCompanyAndNumber(ctx context.Context, companyID, number string) (*entity.Payment, error)
	List(ctx context.Context) ([]*entity.Payment, error)
	ListByCompany(ctx context.Context, companyID string, filter PaymentFilter) ([]*entity.Payment, error)
	ListByBusinessPartner(ctx context.Context, businessPartnerID string) ([]*entity.Payment, error)
	ListByInvoice(ctx context.Context, invoiceID string) ([]*entity.Payment, error)
	NumberExistsForCompany(ctx context.Context, companyID, number, excludeID string) (bool, error)
	// SumCompletedByCompanyAndType suma los pagos COMPLETED y activos.
	SumCompletedByCompanyAndType(ctx context.Context, companyID, paymentType string) (decimal.Decimal, error)
	Update(ctx context.Context, payment *entity.Payment) error
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}
