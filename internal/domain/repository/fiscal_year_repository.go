package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// FiscalYearFilter filtros para listar años fiscales de una empresa. Nil = sin filtro.
type FiscalYearFilter struct {
	ActiveOnly bool
	Closed     *bool
}

// FiscalYearRepository define el puerto de persistencia para años fiscales.
type FiscalYearRepository interface {
	Create(ctx context.Context, fy *entity.FiscalYear) error
	GetByID(ctx context.Context, id string) (*entity.FiscalYear, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.FiscalYear, error)
	// GetByCompanyAndDate devuelve el año que contiene date (extremos inclusivos).
	GetByCompanyAndDate(ctx context.Context, companyID string, date time.Time) (*entity.FiscalYear, error)
	List(ctx context.Context) ([]*entity.FiscalYear, error)
	// ListByCompany ordena por fecha de inicio descendente.
	ListByCompany(ctx context.Context, companyID string, filter FiscalYearFilter) ([]*entity.FiscalYear, error)
	CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error)
	// FindOverlapping devuelve los años de la empresa cuyo intervalo [start,end] se solapa
	// (extremos inclusivos) con el dado, excluyendo excludeID si no está vacío.
	// Orden: start_date ASC, code ASC.
	FindOverlapping(ctx context.Context, companyID string, start, end time.Time, excludeID string) ([]*entity.FiscalYear, error)
	Update(ctx context.Context, fy *entity.FiscalYear) error
	// SetClosed persiste solo is_closed y closed_date.
	SetClosed(ctx context.Context, id string, closed bool, closedDate *time.Time) error
	SoftDelete(ctx context.Context, id string) error
}
