package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// AccountUseCase plan de cuentas por empresa.
type AccountUseCase struct {
	repo repository.AccountRepository
}

// NewAccountUseCase construye el caso de uso.
func NewAccountUseCase(repo repository.AccountRepository) *AccountUseCase {
	return &AccountUseCase{repo: repo}
}

// Create registra una cuenta. AllowPosting es true si no se indica.
func (uc *AccountUseCase) Create(ctx context.Context, in dto.CreateAccountRequest) (*dto.AccountResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	taken, err := uc.repo.CodeExistsForCompany(ctx, in.CompanyID, in.AccountCode, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, codeTaken("una cuenta", in.AccountCode)
	}
	if err := uc.checkParent(ctx, in.CompanyID, in.ParentAccountID, ""); err != nil {
		return nil, err
	}
	allowPosting := true
	if in.AllowPosting != nil {
		allowPosting = *in.AllowPosting
	}
	now := time.Now()
	a := &entity.Account{
		CompanyID:             in.CompanyID,
		AccountCode:           in.AccountCode,
		AccountName:           in.AccountName,
		AccountType:           in.AccountType,
		AccountCategory:       in.AccountCategory,
		ParentAccountID:       in.ParentAccountID,
		NormalBalance:         in.NormalBalance,
		IsControlAccount:      in.IsControlAccount,
		AllowPosting:          allowPosting,
		RequireReconciliation: in.RequireReconciliation,
		IsActive:              true,
		Description:           in.Description,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return entityToAccountResponse(a), nil
}

// GetByID obtiene una cuenta por ID.
func (uc *AccountUseCase) GetByID(ctx context.Context, id string) (*dto.AccountResponse, error) {
	a, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToAccountResponse(a), nil
}

// GetByCompanyAndCode obtiene una cuenta por su código dentro de la empresa.
func (uc *AccountUseCase) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*dto.AccountResponse, error) {
	a, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("cuenta", code)
	}
	return entityToAccountResponse(a), nil
}

// ListByCompany cuentas de la empresa por código.
func (uc *AccountUseCase) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]dto.AccountResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, activeOnly)
	if err != nil {
		return nil, err
	}
	return toAccountResponses(list), nil
}

// ListByType cuentas activas de un tipo.
func (uc *AccountUseCase) ListByType(ctx context.Context, companyID, accountType string) ([]dto.AccountResponse, error) {
	switch accountType {
	case entity.AccountTypeAsset, entity.AccountTypeLiability, entity.AccountTypeEquity,
		entity.AccountTypeRevenue, entity.AccountTypeExpense:
	default:
		return nil, fmt.Errorf("%w: tipo de cuenta desconocido: %s", domain.ErrInvalidInput, accountType)
	}
	list, err := uc.repo.ListByType(ctx, companyID, accountType)
	if err != nil {
		return nil, err
	}
	return toAccountResponses(list), nil
}

// Search busca cuentas activas de la empresa por código o nombre.
func (uc *AccountUseCase) Search(ctx context.Context, companyID, q string) ([]dto.AccountResponse, error) {
	q, err := searchQuery(q)
	if err != nil {
		return nil, err
	}
	list, err := uc.repo.Search(ctx, companyID, q)
	if err != nil {
		return nil, err
	}
	return toAccountResponses(list), nil
}

// Update aplica los campos presentes del patch.
func (uc *AccountUseCase) Update(ctx context.Context, id string, in dto.UpdateAccountRequest) (*dto.AccountResponse, error) {
	a, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	if in.AccountCode != nil && *in.AccountCode != a.AccountCode {
		taken, err := uc.repo.CodeExistsForCompany(ctx, a.CompanyID, *in.AccountCode, a.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, codeTaken("una cuenta", *in.AccountCode)
		}
		a.AccountCode = *in.AccountCode
	}
	if in.ParentAccountID != nil {
		if err := uc.checkParent(ctx, a.CompanyID, in.ParentAccountID, a.ID); err != nil {
			return nil, err
		}
		a.ParentAccountID = in.ParentAccountID
	}
	if in.AccountName != nil {
		a.AccountName = *in.AccountName
	}
	if in.AccountType != nil {
		a.AccountType = *in.AccountType
	}
	if in.AccountCategory != nil {
		a.AccountCategory = *in.AccountCategory
	}
	if in.NormalBalance != nil {
		a.NormalBalance = *in.NormalBalance
	}
	if in.IsControlAccount != nil {
		a.IsControlAccount = *in.IsControlAccount
	}
	if in.AllowPosting != nil {
		a.AllowPosting = *in.AllowPosting
	}
	if in.RequireReconciliation != nil {
		a.RequireReconciliation = *in.RequireReconciliation
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return entityToAccountResponse(a), nil
}

// Remove baja lógica.
func (uc *AccountUseCase) Remove(ctx context.Context, id string) error {
	if _, err := uc.load(ctx, id); err != nil {
		return err
	}
	return uc.repo.SoftDelete(ctx, id)
}

// checkParent exige que la cuenta padre exista en la misma empresa y no sea la propia cuenta.
func (uc *AccountUseCase) checkParent(ctx context.Context, companyID string, parentID *string, selfID string) error {
	if parentID == nil {
		return nil
	}
	if *parentID == selfID {
		return fmt.Errorf("%w: una cuenta no puede ser su propia cuenta padre", domain.ErrInvalidInput)
	}
	parent, err := uc.repo.GetByID(ctx, *parentID)
	if err != nil {
		return err
	}
	if parent == nil || parent.CompanyID != companyID {
		return fmt.Errorf("%w: la cuenta padre %s no existe en la empresa", domain.ErrInvalidInput, *parentID)
	}
	return nil
}

func (uc *AccountUseCase) load(ctx context.Context, id string) (*entity.Account, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, notFound("cuenta", id)
	}
	return a, nil
}

func toAccountResponses(list []*entity.Account) []dto.AccountResponse {
	items := make([]dto.AccountResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAccountResponse(a))
	}
	return items
}

func entityToAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:                    a.ID,
		CompanyID:             a.CompanyID,
		AccountCode:           a.AccountCode,
		AccountName:           a.AccountName,
		AccountType:           a.AccountType,
		AccountCategory:       a.AccountCategory,
		ParentAccountID:       a.ParentAccountID,
		NormalBalance:         a.NormalBalance,
		IsControlAccount:      a.IsControlAccount,
		AllowPosting:          a.AllowPosting,
		RequireReconciliation: a.RequireReconciliation,
		IsActive:              a.IsActive,
		Description:           a.Description,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}
