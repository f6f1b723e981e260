package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var maxTaxRate = decimal.NewFromInt(100)

// TaxCodeUseCase códigos de impuesto por empresa.
type TaxCodeUseCase struct {
	repo repository.TaxCodeRepository
}

// NewTaxCodeUseCase construye el caso de uso.
func NewTaxCodeUseCase(repo repository.TaxCodeRepository) *TaxCodeUseCase {
	return &TaxCodeUseCase{repo: repo}
}

// Create registra un código de impuesto con tarifa entre 0 y 100.
func (uc *TaxCodeUseCase) Create(ctx context.Context, in dto.CreateTaxCodeRequest) (*dto.TaxCodeResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := validateTaxRate(in.TaxRate); err != nil {
		return nil, err
	}
	taken, err := uc.repo.CodeExistsForCompany(ctx, in.CompanyID, in.TaxCode, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("un impuesto", in.TaxCode)
	}
	now := time.Now()
	tc := &entity.TaxCode{
		CompanyID:      in.CompanyID,
		TaxCode:        in.TaxCode,
		TaxDescription: in.TaxDescription,
		TaxRate:        in.TaxRate,
		TaxType:        in.TaxType,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(ctx, tc); err != nil {
		return nil, err
	}
	return entityToTaxCodeResponse(tc), nil
}

func (uc *TaxCodeUseCase) GetByID(ctx context.Context, id string) (*dto.TaxCodeResponse, error) {
	tc, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToTaxCodeResponse(tc), nil
}

func (uc *TaxCodeUseCase) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*dto.TaxCodeResponse, error) {
	tc, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, notFound("impuesto", code)
	}
	return entityToTaxCodeResponse(tc), nil
}

func (uc *TaxCodeUseCase) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]dto.TaxCodeResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TaxCodeResponse, 0, len(list))
	for _, tc := range list {
		items = append(items, *entityToTaxCodeResponse(tc))
	}
	return items, nil
}

func (uc *TaxCodeUseCase) Update(ctx context.Context, id string, in dto.UpdateTaxCodeRequest) (*dto.TaxCodeResponse, error) {
	tc, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.TaxCode != nil && *in.TaxCode != tc.TaxCode {
		taken, err := uc.repo.CodeExistsForCompany(ctx, tc.CompanyID, *in.TaxCode, tc.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, codeTaken("un impuesto", *in.TaxCode)
		}
		tc.TaxCode = *in.TaxCode
	}
	if in.TaxRate != nil {
		if err := validateTaxRate(*in.TaxRate); err != nil {
			return nil, err
		}
		tc.TaxRate = *in.TaxRate
	}
	if in.TaxDescription != nil {
		tc.TaxDescription = *in.TaxDescription
	}
	if in.TaxType != nil {
		tc.TaxType = *in.TaxType
	}
	if in.IsActive != nil {
		tc.IsActive = *in.IsActive
	}
	tc.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, tc); err != nil {
		return nil, err
	}
	return entityToTaxCodeResponse(tc), nil
}

func (uc *TaxCodeUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *TaxCodeUseCase) load(ctx context.Context, id string) (*entity.TaxCode, error) {
	tc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tc == nil {
		return nil, notFound("impuesto", id)
	}
	return tc, nil
}

func validateTaxRate(rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(maxTaxRate) {
		return fmt.Errorf("%w: la tarifa debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	return nil
}

func entityToTaxCodeResponse(tc *entity.TaxCode) *dto.TaxCodeResponse {
	if tc == nil {
		return nil
	}
	return &dto.TaxCodeResponse{
		ID:             tc.ID,
		CompanyID:      tc.CompanyID,
		TaxCode:        tc.TaxCode,
		TaxDescription: tc.TaxDescription,
		TaxRate:        tc.TaxRate,
		TaxType:        tc.TaxType,
		IsActive:       tc.IsActive,
		CreatedAt:      tc.CreatedAt,
		UpdatedAt:      tc.UpdatedAt,
	}
}
