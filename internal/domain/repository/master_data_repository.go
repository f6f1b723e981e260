package repository

import (
	"context"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// Los datos maestros por empresa comparten el mismo contrato: código único por empresa,
// listados ordenados por código y baja lógica. GetBy* devuelve (nil, nil) si no existe.

// AccountRepository puerto de persistencia del plan de cuentas.
type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	GetByID(ctx context.Context, id string) (*entity.Account, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Account, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Account, error)
	ListByType(ctx context.Context, companyID, accountType string) ([]*entity.Account, error)
	Search(ctx context.Context, companyID, query string) ([]*entity.Account, error)
	CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error)
	Update(ctx context.Context, account *entity.Account) error
	SoftDelete(ctx context.Context, id string) error
}

// JournalRepository puerto de persistencia de diarios.
type JournalRepository interface {
	Create(ctx context.Context, journal *entity.Journal) error
	GetByID(ctx context.Context, id string) (*entity.Journal, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Journal, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Journal, error)
	CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error)
	Update(ctx context.Context, journal *entity.Journal) error
	SoftDelete(ctx context.Context, id string) error
}

// TaxCodeRepository puerto de persistencia de códigos de impuesto.
type TaxCodeRepository interface {
	Create(ctx context.Context, tax *entity.TaxCode) error
	GetByID(ctx context.Context, id string) (*entity.TaxCode, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.TaxCode, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.TaxCode, error)
	CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error)
	Update(ctx context.Context, tax *entity.TaxCode) error
	SoftDelete(ctx context.Context, id string) error
}

// BusinessPartnerRepository puerto de persistencia de terceros.
type BusinessPartnerRepository interface {
	Create(ctx context.Context, partner *entity.BusinessPartner) error
	GetByID(ctx context.Context, id string) (*entity.BusinessPartner, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.BusinessPartner, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.BusinessPartner, error)
	CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error)
	Update(ctx context.Context, partner *entity.BusinessPartner) error
	SoftDelete(ctx context.Context, id string) error
}

// ProductRepository puerto de persistencia de productos.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Product, error)
	CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error)
	Update(ctx context.Context, product *entity.Product) error
	SoftDelete(ctx context.Context, id string) error
}

// WarehouseRepository puerto de persistencia de bodegas.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Warehouse, error)
	ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Warehouse, error)
	CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	SoftDelete(ctx context.Context, id string) error
}
