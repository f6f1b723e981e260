package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/pkg/taxid"
)

// CompanyUseCase aplica reglas de negocio para empresas (casos de uso).
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso con el puerto de persistencia.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// Create crea una nueva empresa activa. El código es único en todo el sistema.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if err := checkNIT(in.CountryCode, in.TaxID); err != nil {
		return nil, err
	}
	taken, err := uc.repo.CodeExists(ctx, in.Code, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("una empresa", in.Code)
	}
	now := time.Now()
	company := &entity.Company{
		Code:               in.Code,
		Name:               in.Name,
		LegalName:          in.LegalName,
		TaxID:              in.TaxID,
		RegistrationNumber: in.RegistrationNumber,
		AddressLine1:       in.AddressLine1,
		AddressLine2:       in.AddressLine2,
		City:               in.City,
		StateProvince:      in.StateProvince,
		PostalCode:         in.PostalCode,
		CountryCode:        strings.ToUpper(in.CountryCode),
		DefaultCurrencyID:  in.DefaultCurrencyID,
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.repo.Create(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtiene una empresa por ID.
func (uc *CompanyUseCase) GetByID(ctx context.Context, id string) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByCode obtiene una empresa por código.
func (uc *CompanyUseCase) GetByCode(ctx context.Context, code string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, notFound("empresa", code)
	}
	return entityToCompanyResponse(company), nil
}

// List lista empresas con paginación, ordenadas por código.
func (uc *CompanyUseCase) List(ctx context.Context, page dto.PageRequest, activeOnly bool) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(ctx, activeOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return &dto.CompanyListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Search busca empresas activas por código o nombre.
func (uc *CompanyUseCase) Search(ctx context.Context, q string) ([]dto.CompanyResponse, error) {
	q, err := searchQuery(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToCompanyResponse(c))
	}
	return items, nil
}

// Update aplica los campos presentes del patch.
func (uc *CompanyUseCase) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.Code != nil && *in.Code != company.Code {
		taken, err := uc.repo.CodeExists(ctx, *in.Code, company.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, codeTaken("una empresa", *in.Code)
		}
		company.Code = *in.Code
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.LegalName != nil {
		company.LegalName = *in.LegalName
	}
	if in.TaxID != nil {
		company.TaxID = *in.TaxID
	}
	if in.RegistrationNumber != nil {
		company.RegistrationNumber = *in.RegistrationNumber
	}
	if in.AddressLine1 != nil {
		company.AddressLine1 = *in.AddressLine1
	}
	if in.AddressLine2 != nil {
		company.AddressLine2 = *in.AddressLine2
	}
	if in.City != nil {
		company.City = *in.City
	}
	if in.StateProvince != nil {
		company.StateProvince = *in.StateProvince
	}
	if in.PostalCode != nil {
		company.PostalCode = *in.PostalCode
	}
	if in.CountryCode != nil {
		company.CountryCode = strings.ToUpper(*in.CountryCode)
	}
	if in.DefaultCurrencyID != nil {
		company.DefaultCurrencyID = in.DefaultCurrencyID
	}
	if in.IsActive != nil {
		company.IsActive = *in.IsActive
	}
	if in.TaxID != nil || in.CountryCode != nil {
		if err := checkNIT(company.CountryCode, company.TaxID); err != nil {
			return nil, err
		}
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// checkNIT valida el dígito de verificación de un NIT colombiano cuando viene incluido.
func checkNIT(countryCode, taxID string) error {
	if !strings.EqualFold(countryCode, "CO") || !strings.Contains(taxID, "-") {
		return nil
	}
	if err := taxid.ValidateNIT(taxID); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

// Remove baja lógica de la empresa.
func (uc *CompanyUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

func (uc *CompanyUseCase) load(ctx context.Context, id string) (*entity.Company, error) {
	company, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, notFound("empresa", id)
	}
	return company, nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:                 c.ID,
		Code:               c.Code,
		Name:               c.Name,
		LegalName:          c.LegalName,
		TaxID:              c.TaxID,
		RegistrationNumber: c.RegistrationNumber,
		AddressLine1:       c.AddressLine1,
		AddressLine2:       c.AddressLine2,
		City:               c.City,
		StateProvince:      c.StateProvince,
		PostalCode:         c.PostalCode,
		CountryCode:        c.CountryCode,
		DefaultCurrencyID:  c.DefaultCurrencyID,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}
