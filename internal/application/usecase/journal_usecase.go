package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// JournalUseCase diarios contables por empresa.
type JournalUseCase struct {
	repo repository.JournalRepository
}

// NewJournalUseCase construye el caso de uso.
func NewJournalUseCase(repo repository.JournalRepository) *JournalUseCase {
	return &JournalUseCase{repo: repo}
}

func (uc *JournalUseCase) Create(ctx context.Context, in dto.CreateJournalRequest) (*dto.JournalResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	taken, err := uc.repo.CodeExistsForCompany(ctx, in.CompanyID, in.JournalCode, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("un diario", in.JournalCode)
	}
	now := time.Now()
	j := &entity.Journal{
		CompanyID:   in.CompanyID,
		JournalCode: in.JournalCode,
		JournalName: in.JournalName,
		JournalType: in.JournalType,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return entityToJournalResponse(j), nil
}

func (uc *JournalUseCase) GetByID(ctx context.Context, id string) (*dto.JournalResponse, error) {
	j, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToJournalResponse(j), nil
}

func (uc *JournalUseCase) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*dto.JournalResponse, error) {
	j, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, notFound("diario", code)
	}
	return entityToJournalResponse(j), nil
}

func (uc *JournalUseCase) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]dto.JournalResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.JournalResponse, 0, len(list))
	for _, j := range list {
		items = append(items, *entityToJournalResponse(j))
	}
	return items, nil
}

func (uc *JournalUseCase) Update(ctx context.Context, id string, in dto.UpdateJournalRequest) (*dto.JournalResponse, error) {
	j, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.JournalCode != nil && *in.JournalCode != j.JournalCode {
		taken, err := uc.repo.CodeExistsForCompany(ctx, j.CompanyID, *in.JournalCode, j.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, codeTaken("un diario", *in.JournalCode)
		}
		j.JournalCode = *in.JournalCode
	}
	if in.JournalName != nil {
		j.JournalName = *in.JournalName
	}
	if in.JournalType != nil {
		j.JournalType = *in.JournalType
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.IsActive != nil {
		j.IsActive = *in.IsActive
	}
	j.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, j); err != nil {
		return nil, err
	}
	return entityToJournalResponse(j), nil
}

func (uc *JournalUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *JournalUseCase) load(ctx context.Context, id string) (*entity.Journal, error) {
	j, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j == nil {
		return nil, notFound("diario", id)
	}
	return j, nil
}

func entityToJournalResponse(j *entity.Journal) *dto.JournalResponse {
	if j == nil {
		return nil
	}
	return &dto.JournalResponse{
		ID:          j.ID,
		CompanyID:   j.CompanyID,
		JournalCode: j.JournalCode,
		JournalName: j.JournalName,
		JournalType: j.JournalType,
		Description: j.Description,
		IsActive:    j.IsActive,
		CreatedAt:   j.CreatedAt,
		UpdatedAt:   j.UpdatedAt,
	}
}
