package repository

import (
	"context"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// CurrencyRepository puerto de persistencia del catálogo global de monedas.
type CurrencyRepository interface {
	Create(ctx context.Context, currency *entity.Currency) error
	GetByID(ctx context.Context, id string) (*entity.Currency, error)
	GetByCode(ctx context.Context, code string) (*entity.Currency, error)
	CodeExists(ctx context.Context, code, excludeID string) (bool, error)
	List(ctx context.Context, activeOnly bool) ([]*entity.Currency, error)
	ListByDecimalPlaces(ctx context.Context, decimalPlaces int) ([]*entity.Currency, error)
	Search(ctx context.Context, query string) ([]*entity.Currency, error)
	Update(ctx context.Context, currency *entity.Currency) error
	SoftDelete(ctx context.Context, id string) error
}
