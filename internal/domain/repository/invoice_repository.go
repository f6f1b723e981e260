package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// InvoiceFilter filtros de listado por empresa; los campos vacíos no filtran.
type InvoiceFilter struct {
	Type   string
	Status string
	From   *time.Time
	To     *time.Time
}

// InvoiceRepository define el puerto de persistencia para facturas.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	// GetByIDForUpdate bloquea la fila (SELECT ... FOR UPDATE); solo tiene efecto dentro de una tx.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Invoice, error)
	GetByCompanyAndNumber(ctx context.Context, companyID, number string) (*entity.Invoice, error)
	List(ctx context.Context) ([]*entity.Invoice, error)
	ListByCompany(ctx context.Context, companyID string, filter InvoiceFilter) ([]*entity.Invoice, error)
	ListByBusinessPartner(ctx context.Context, businessPartnerID string) ([]*entity.Invoice, error)
	// ListOverdueByCompany: vencidas antes de today, con saldo, no pagadas y activas.
	ListOverdueByCompany(ctx context.Context, companyID string, today time.Time) ([]*entity.Invoice, error)
	NumberExistsForCompany(ctx context.Context, companyID, number, excludeID string) (bool, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	// UpdateSettlement persiste paid_amount, balance y status en un solo UPDATE.
	UpdateSettlement(ctx context.Context, invoice *entity.Invoice) error
	UpdateStatus(ctx context.Context, id, status string) error
	SoftDelete(ctx context.Context, id string) error
}
