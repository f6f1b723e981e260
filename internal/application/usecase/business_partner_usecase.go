package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// BusinessPartnerUseCase clientes y proveedores por empresa.
type BusinessPartnerUseCase struct {
	repo repository.BusinessPartnerRepository
}

// NewBusinessPartnerUseCase construye el caso de uso.
func NewBusinessPartnerUseCase(repo repository.BusinessPartnerRepository) *BusinessPartnerUseCase {
	return &BusinessPartnerUseCase{repo: repo}
}

func (uc *BusinessPartnerUseCase) Create(ctx context.Context, in dto.CreateBusinessPartnerRequest) (*dto.BusinessPartnerResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	taken, err := uc.repo.CodeExistsForCompany(ctx, in.CompanyID, in.PartnerCode, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("un tercero", in.PartnerCode)
	}
	now := time.Now()
	p := &entity.BusinessPartner{
		CompanyID:   in.CompanyID,
		PartnerCode: in.PartnerCode,
		PartnerName: in.PartnerName,
		PartnerType: in.PartnerType,
		TaxID:       in.TaxID,
		Email:       strings.ToLower(in.Email),
		Phone:       in.Phone,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return entityToBusinessPartnerResponse(p), nil
}

func (uc *BusinessPartnerUseCase) GetByID(ctx context.Context, id string) (*dto.BusinessPartnerResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToBusinessPartnerResponse(p), nil
}

func (uc *BusinessPartnerUseCase) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*dto.BusinessPartnerResponse, error) {
	p, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("tercero", code)
	}
	return entityToBusinessPartnerResponse(p), nil
}

func (uc *BusinessPartnerUseCase) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]dto.BusinessPartnerResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BusinessPartnerResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *entityToBusinessPartnerResponse(p))
	}
	return items, nil
}

func (uc *BusinessPartnerUseCase) Update(ctx context.Context, id string, in dto.UpdateBusinessPartnerRequest) (*dto.BusinessPartnerResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.PartnerCode != nil && *in.PartnerCode != p.PartnerCode {
		taken, err := uc.repo.CodeExistsForCompany(ctx, p.CompanyID, *in.PartnerCode, p.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, codeTaken("un tercero", *in.PartnerCode)
		}
		p.PartnerCode = *in.PartnerCode
	}
	if in.PartnerName != nil {
		p.PartnerName = *in.PartnerName
	}
	if in.PartnerType != nil {
		p.PartnerType = *in.PartnerType
	}
	if in.TaxID != nil {
		p.TaxID = *in.TaxID
	}
	if in.Email != nil {
		p.Email = strings.ToLower(*in.Email)
	}
	if in.Phone != nil {
		p.Phone = *in.Phone
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return entityToBusinessPartnerResponse(p), nil
}

func (uc *BusinessPartnerUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *BusinessPartnerUseCase) load(ctx context.Context, id string) (*entity.BusinessPartner, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("tercero", id)
	}
	return p, nil
}

func entityToBusinessPartnerResponse(p *entity.BusinessPartner) *dto.BusinessPartnerResponse {
	if p == nil {
		return nil
	}
	return &dto.BusinessPartnerResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		PartnerCode: p.PartnerCode,
		PartnerName: p.PartnerName,
		PartnerType: p.PartnerType,
		TaxID:       p.TaxID,
		Email:       p.Email,
		Phone:       p.Phone,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
