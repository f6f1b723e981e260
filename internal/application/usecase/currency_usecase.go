package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/currency"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

const (
	defaultDecimalPlaces = 2
	maxDecimalPlaces     = 4
)

// CurrencyUseCase catálogo global de monedas ISO 4217.
type CurrencyUseCase struct {
	repo repository.CurrencyRepository
}

// NewCurrencyUseCase construye el caso de uso.
func NewCurrencyUseCase(repo repository.CurrencyRepository) *CurrencyUseCase {
	return &CurrencyUseCase{repo: repo}
}

// Create registra una moneda. El código se normaliza a mayúsculas y debe ser ISO 4217.
func (uc *CurrencyUseCase) Create(ctx context.Context, in dto.CreateCurrencyRequest) (*dto.CurrencyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	code, err := isoCode(in.Code)
	if err != nil {
		return nil, err
	}
	places := defaultDecimalPlaces
	if in.DecimalPlaces != nil {
		places = *in.DecimalPlaces
	}
	taken, err := uc.repo.CodeExists(ctx, code, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("una moneda", code)
	}
	now := time.Now()
	c := &entity.Currency{
		Code:          code,
		Name:          in.Name,
		Symbol:        in.Symbol,
		DecimalPlaces: places,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return entityToCurrencyResponse(c), nil
}

// GetByID obtiene una moneda por ID.
func (uc *CurrencyUseCase) GetByID(ctx context.Context, id string) (*dto.CurrencyResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToCurrencyResponse(c), nil
}

// GetByCode obtiene una moneda por código (sin distinguir mayúsculas).
func (uc *CurrencyUseCase) GetByCode(ctx context.Context, code string) (*dto.CurrencyResponse, error) {
	c, err := uc.repo.GetByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("moneda", code)
	}
	return entityToCurrencyResponse(c), nil
}

// List lista monedas por código.
func (uc *CurrencyUseCase) List(ctx context.Context, activeOnly bool) ([]dto.CurrencyResponse, error) {
	list, err := uc.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	return toCurrencyResponses(list), nil
}

// ListByDecimalPlaces monedas activas con n decimales (0..4).
func (uc *CurrencyUseCase) ListByDecimalPlaces(ctx context.Context, n int) ([]dto.CurrencyResponse, error) {
	if err := validateDecimalPlaces(n); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListByDecimalPlaces(ctx, n)
	if err != nil {
		return nil, err
	}
	return toCurrencyResponses(list), nil
}

// Search busca monedas activas por código o nombre.
func (uc *CurrencyUseCase) Search(ctx context.Context, q string) ([]dto.CurrencyResponse, error) {
	q, err := searchQuery(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return toCurrencyResponses(list), nil
}

// Update aplica los campos presentes del patch.
func (uc *CurrencyUseCase) Update(ctx context.Context, id string, in dto.UpdateCurrencyRequest) (*dto.CurrencyResponse, error) {
	c, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Code != nil {
		code, err := isoCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if code != c.Code {
			taken, err := uc.repo.CodeExists(ctx, code, c.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, codeTaken("una moneda", code)
			}
			c.Code = code
		}
	}
	if in.DecimalPlaces != nil {
		if err := validateDecimalPlaces(*in.DecimalPlaces); err != nil {
			return nil, err
		}
		c.DecimalPlaces = *in.DecimalPlaces
	}
	if in.Name != nil {
		c.Name = *in.Name
	}
	if in.Symbol != nil {
		c.Symbol = *in.Symbol
	}
	if in.IsActive != nil {
		c.IsActive = *in.IsActive
	}
	c.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return entityToCurrencyResponse(c), nil
}

// Remove baja lógica.
func (uc *CurrencyUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *CurrencyUseCase) load(ctx context.Context, id string) (*entity.Currency, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, notFound("moneda", id)
	}
	return c, nil
}

// isoCode normaliza a mayúsculas y verifica contra la tabla ISO 4217 de x/text.
func isoCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %s no es un código de moneda ISO 4217", domain.ErrInvalidInput, code)
	}
	return unit.String(), nil
}

func validateDecimalPlaces(n int) error {
	if n < 0 || n > maxDecimalPlaces {
		return fmt.Errorf("%w: los decimales deben estar entre 0 y %d", domain.ErrInvalidInput, maxDecimalPlaces)
	}
	return nil
}

func toCurrencyResponses(list []*entity.Currency) []dto.CurrencyResponse {
	items := make([]dto.CurrencyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCurrencyResponse(c))
	}
	return items
}

func entityToCurrencyResponse(c *entity.Currency) *dto.CurrencyResponse {
	if c == nil {
		return nil
	}
	return &dto.CurrencyResponse{
		ID:            c.ID,
		Code:          c.Code,
		Name:          c.Name,
		Symbol:        c.Symbol,
		DecimalPlaces: c.DecimalPlaces,
		IsActive:      c.IsActive,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
