package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso para bodegas.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega para la empresa.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	taken, err := uc.repo.CodeExistsForCompany(ctx, in.CompanyID, in.WarehouseCode, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("una bodega", in.WarehouseCode)
	}
	now := time.Now()
	w := &entity.Warehouse{
		CompanyID:     in.CompanyID,
		WarehouseCode: in.WarehouseCode,
		WarehouseName: in.WarehouseName,
		Address:       in.Address,
		City:          in.City,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return entityToWarehouseResponse(w), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToWarehouseResponse(w), nil
}

func (uc *WarehouseUseCase) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*dto.WarehouseResponse, error) {
	w, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFound("bodega", code)
	}
	return entityToWarehouseResponse(w), nil
}

// ListByCompany lista las bodegas de una empresa.
func (uc *WarehouseUseCase) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]dto.WarehouseResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, w := range list {
		items = append(items, *entityToWarehouseResponse(w))
	}
	return items, nil
}

// Update actualiza una bodega.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	w, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.WarehouseCode != nil && *in.WarehouseCode != w.WarehouseCode {
		taken, err := uc.repo.CodeExistsForCompany(ctx, w.CompanyID, *in.WarehouseCode, w.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, codeTaken("una bodega", *in.WarehouseCode)
		}
		w.WarehouseCode = *in.WarehouseCode
	}
	if in.WarehouseName != nil {
		w.WarehouseName = *in.WarehouseName
	}
	if in.Address != nil {
		w.Address = *in.Address
	}
	if in.City != nil {
		w.City = *in.City
	}
	if in.IsActive != nil {
		w.IsActive = *in.IsActive
	}
	w.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return entityToWarehouseResponse(w), nil
}

// Remove baja lógica.
func (uc *WarehouseUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *WarehouseUseCase) load(ctx context.Context, id string) (*entity.Warehouse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, notFound("bodega", id)
	}
	return w, nil
}

func entityToWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:            w.ID,
		CompanyID:     w.CompanyID,
		WarehouseCode: w.WarehouseCode,
		WarehouseName: w.WarehouseName,
		Address:       w.Address,
		City:          w.City,
		IsActive:      w.IsActive,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
