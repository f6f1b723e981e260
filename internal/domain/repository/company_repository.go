package repository

import (
	"context"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. GetBy* devuelve (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	CodeExists(ctx context.Context, code, excludeID string) (bool, error)
	List(ctx context.Context, activeOnly bool, limit, offset int) ([]*entity.Company, error)
	Search(ctx context.Context, query string) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	SoftDelete(ctx context.Context, id string) error
}
