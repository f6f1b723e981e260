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

// ProductUseCase casos de uso CRUD para productos y servicios.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Unidad de medida por defecto "UND".
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := validatePrices(in.UnitPrice, in.CostPrice); err != nil {
		return nil, err
	}
	taken, err := uc.repo.CodeExistsForCompany(ctx, in.CompanyID, in.ProductCode, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("un producto", in.ProductCode)
	}
	if in.UnitOfMeasure == "" {
		in.UnitOfMeasure = "UND"
	}
	now := time.Now()
	p := &entity.Product{
		CompanyID:       in.CompanyID,
		ProductCode:     in.ProductCode,
		ProductName:     in.ProductName,
		ProductType:     in.ProductType,
		ProductCategory: in.ProductCategory,
		UnitPrice:       in.UnitPrice,
		CostPrice:       in.CostPrice,
		UnitOfMeasure:   in.UnitOfMeasure,
		TrackInventory:  in.TrackInventory && in.ProductType == entity.ProductTypeGoods,
		Description:     in.Description,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

func (uc *ProductUseCase) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("producto", code)
	}
	return toProductResponse(p), nil
}

// ListByCompany lista productos por empresa ordenados por código.
func (uc *ProductUseCase) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]dto.ProductResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// Update actualiza un producto. Un servicio nunca controla inventario.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.ProductCode != nil && *in.ProductCode != p.ProductCode {
		taken, err := uc.repo.CodeExistsForCompany(ctx, p.CompanyID, *in.ProductCode, p.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, codeTaken("un producto", *in.ProductCode)
		}
		p.ProductCode = *in.ProductCode
	}
	price := p.UnitPrice
	if in.UnitPrice != nil {
		price = *in.UnitPrice
	}
	if err := validatePrices(price, in.CostPrice); err != nil {
		return nil, err
	}
	p.UnitPrice = price
	if in.CostPrice != nil {
		p.CostPrice = in.CostPrice
	}
	if in.ProductName != nil {
		p.ProductName = *in.ProductName
	}
	if in.ProductType != nil {
		p.ProductType = *in.ProductType
	}
	if in.ProductCategory != nil {
		p.ProductCategory = *in.ProductCategory
	}
	if in.UnitOfMeasure != nil {
		p.UnitOfMeasure = *in.UnitOfMeasure
	}
	if in.TrackInventory != nil {
		p.TrackInventory = *in.TrackInventory
	}
	p.TrackInventory = p.TrackInventory && p.ProductType == entity.ProductTypeGoods
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	p.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// Remove baja lógica.
func (uc *ProductUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *ProductUseCase) load(ctx context.Context, id string) (*entity.Product, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, notFound("producto", id)
	}
	return p, nil
}

func validatePrices(unit decimal.Decimal, cost *decimal.Decimal) error {
	if unit.IsNegative() || (cost != nil && cost.IsNegative()) {
		return fmt.Errorf("%w: los precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		CompanyID:       p.CompanyID,
		ProductCode:     p.ProductCode,
		ProductName:     p.ProductName,
		ProductType:     p.ProductType,
		ProductCategory: p.ProductCategory,
		UnitPrice:       p.UnitPrice,
		CostPrice:       p.CostPrice,
		UnitOfMeasure:   p.UnitOfMeasure,
		TrackInventory:  p.TrackInventory,
		Description:     p.Description,
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
