package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/infrastructure/memory"
)

const (
	company1 = "00000000-0000-0000-0000-000000000001"
	company2 = "00000000-0000-0000-0000-000000000002"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Company
// ──────────────────────────────────────────────────────────────────────────────

func TestCompany_CodigoUnicoGlobal(t *testing.T) {
	uc := usecase.NewCompanyUseCase(memory.NewStore().Companies())
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CreateCompanyRequest{Code: "ACME", Name: "Acme", CountryCode: "CO"})
	require.NoError(t, err)
	assert.True(t, c.IsActive)

	_, err = uc.Create(ctx, dto.CreateCompanyRequest{Code: "ACME", Name: "Otra"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "ACME")
}

func TestCompany_BusquedaMinimoDosCaracteres(t *testing.T) {
	uc := usecase.NewCompanyUseCase(memory.NewStore().Companies())
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateCompanyRequest{Code: "ACME", Name: "Acme Ltda"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCompanyRequest{Code: "GLOBEX", Name: "Globex"})
	require.NoError(t, err)

	_, err = uc.Search(ctx, "  a ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := uc.Search(ctx, "  ltda ")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ACME", got[0].Code)
}

func TestCompany_ListPaginado(t *testing.T) {
	uc := usecase.NewCompanyUseCase(memory.NewStore().Companies())
	ctx := context.Background()
	for _, code := range []string{"C3", "C1", "C2"} {
		_, err := uc.Create(ctx, dto.CreateCompanyRequest{Code: code, Name: code})
		require.NoError(t, err)
	}

	page, err := uc.List(ctx, dto.PageRequest{Limit: 2, Offset: 1}, false)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "C2", page.Items[0].Code)
	assert.Equal(t, "C3", page.Items[1].Code)

	page, err = uc.List(ctx, dto.PageRequest{}, false)
	require.NoError(t, err)
	assert.Equal(t, 20, page.Page.Limit)
}

func TestCompany_BajaLogica(t *testing.T) {
	uc := usecase.NewCompanyUseCase(memory.NewStore().Companies())
	ctx := context.Background()
	c, err := uc.Create(ctx, dto.CreateCompanyRequest{Code: "ACME", Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(ctx, c.ID))
	got, err := uc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	active, err := uc.List(ctx, dto.PageRequest{}, true)
	require.NoError(t, err)
	assert.Empty(t, active.Items)

	_, err = uc.GetByID(ctx, "00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompany_NITColombianoValidaDigito(t *testing.T) {
	uc := usecase.NewCompanyUseCase(memory.NewStore().Companies())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCompanyRequest{Code: "MAL", Name: "Mal", CountryCode: "CO", TaxID: "800197268-5"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	c, err := uc.Create(ctx, dto.CreateCompanyRequest{Code: "BIEN", Name: "Bien", CountryCode: "CO", TaxID: "800.197.268-4"})
	require.NoError(t, err)

	// Sin DV o fuera de Colombia no se valida.
	_, err = uc.Create(ctx, dto.CreateCompanyRequest{Code: "SINDV", Name: "Sin DV", CountryCode: "CO", TaxID: "800197268"})
	assert.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCompanyRequest{Code: "MX", Name: "Mx", CountryCode: "MX", TaxID: "ABC-1"})
	assert.NoError(t, err)

	_, err = uc.Update(ctx, c.ID, dto.UpdateCompanyRequest{TaxID: strPtr("800197268-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Currency
// ──────────────────────────────────────────────────────────────────────────────

func TestCurrency_NormalizaYValidaISO(t *testing.T) {
	uc := usecase.NewCurrencyUseCase(memory.NewStore().Currencies())
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.CreateCurrencyRequest{Code: "cop", Name: "Peso colombiano"})
	require.NoError(t, err)
	assert.Equal(t, "COP", c.Code)
	assert.Equal(t, 2, c.DecimalPlaces)

	_, err = uc.Create(ctx, dto.CreateCurrencyRequest{Code: "ZZQ", Name: "Inventada"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateCurrencyRequest{Code: "COP", Name: "Repetida"})
	assert.ErrorIs(t, err, domain.ErrConflict)

	byCode, err := uc.GetByCode(ctx, "cop")
	require.NoError(t, err)
	assert.Equal(t, c.ID, byCode.ID)
}

func TestCurrency_Decimales(t *testing.T) {
	uc := usecase.NewCurrencyUseCase(memory.NewStore().Currencies())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateCurrencyRequest{Code: "JPY", Name: "Yen", DecimalPlaces: intPtr(0)})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCurrencyRequest{Code: "USD", Name: "Dólar"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", DecimalPlaces: intPtr(5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	zero, err := uc.ListByDecimalPlaces(ctx, 0)
	require.NoError(t, err)
	require.Len(t, zero, 1)
	assert.Equal(t, "JPY", zero[0].Code)

	_, err = uc.ListByDecimalPlaces(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Account
// ──────────────────────────────────────────────────────────────────────────────

func accountRequest(companyID, code, name, accountType string) dto.CreateAccountRequest {
	return dto.CreateAccountRequest{
		CompanyID: companyID, AccountCode: code, AccountName: name,
		AccountType: accountType, NormalBalance: entity.NormalBalanceDebit,
	}
}

func TestAccount_CodigoUnicoPorEmpresa(t *testing.T) {
	uc := usecase.NewAccountUseCase(memory.NewStore().Accounts())
	ctx := context.Background()

	a, err := uc.Create(ctx, accountRequest(company1, "1105", "Caja", entity.AccountTypeAsset))
	require.NoError(t, err)
	assert.True(t, a.AllowPosting)

	_, err = uc.Create(ctx, accountRequest(company1, "1105", "Caja bis", entity.AccountTypeAsset))
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Create(ctx, accountRequest(company2, "1105", "Caja", entity.AccountTypeAsset))
	assert.NoError(t, err, "otra empresa puede repetir código")
}

func TestAccount_CuentaPadre(t *testing.T) {
	uc := usecase.NewAccountUseCase(memory.NewStore().Accounts())
	ctx := context.Background()
	parent, err := uc.Create(ctx, accountRequest(company1, "11", "Disponible", entity.AccountTypeAsset))
	require.NoError(t, err)

	child := accountRequest(company1, "1105", "Caja", entity.AccountTypeAsset)
	child.ParentAccountID = &parent.ID
	got, err := uc.Create(ctx, child)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, *got.ParentAccountID)

	foreign := accountRequest(company2, "1105", "Caja", entity.AccountTypeAsset)
	foreign.ParentAccountID = &parent.ID
	_, err = uc.Create(ctx, foreign)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(ctx, parent.ID, dto.UpdateAccountRequest{ParentAccountID: &parent.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAccount_BusquedaYTipo(t *testing.T) {
	uc := usecase.NewAccountUseCase(memory.NewStore().Accounts())
	ctx := context.Background()
	_, err := uc.Create(ctx, accountRequest(company1, "1105", "Caja general", entity.AccountTypeAsset))
	require.NoError(t, err)
	_, err = uc.Create(ctx, accountRequest(company1, "4135", "Ventas", entity.AccountTypeRevenue))
	require.NoError(t, err)

	found, err := uc.Search(ctx, company1, "CAJA")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "1105", found[0].AccountCode)

	revenue, err := uc.ListByType(ctx, company1, entity.AccountTypeRevenue)
	require.NoError(t, err)
	require.Len(t, revenue, 1)

	_, err = uc.ListByType(ctx, company1, "INCOME")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Search(ctx, company1, "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tax code, product, journal, partner, warehouse
// ──────────────────────────────────────────────────────────────────────────────

func TestTaxCode_TarifaEntre0y100(t *testing.T) {
	uc := usecase.NewTaxCodeUseCase(memory.NewStore().TaxCodes())
	ctx := context.Background()
	req := dto.CreateTaxCodeRequest{
		CompanyID: company1, TaxCode: "IVA19", TaxDescription: "IVA 19%",
		TaxRate: decimal.NewFromInt(19), TaxType: entity.TaxTypeSales,
	}
	tc, err := uc.Create(ctx, req)
	require.NoError(t, err)

	over := decimal.NewFromInt(101)
	_, err = uc.Update(ctx, tc.ID, dto.UpdateTaxCodeRequest{TaxRate: &over})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req.TaxCode, req.TaxRate = "NEG", decimal.NewFromInt(-1)
	_, err = uc.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_ServicioNoControlaInventario(t *testing.T) {
	uc := usecase.NewProductUseCase(memory.NewStore().Products())
	p, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CompanyID: company1, ProductCode: "SRV-1", ProductName: "Asesoría",
		ProductType: entity.ProductTypeService, UnitPrice: decimal.NewFromInt(100), TrackInventory: true,
	})
	require.NoError(t, err)
	assert.False(t, p.TrackInventory)
	assert.Equal(t, "UND", p.UnitOfMeasure)
}

func TestJournal_ActualizaCodigo(t *testing.T) {
	uc := usecase.NewJournalUseCase(memory.NewStore().Journals())
	ctx := context.Background()
	sales, err := uc.Create(ctx, dto.CreateJournalRequest{
		CompanyID: company1, JournalCode: "VEN", JournalName: "Ventas", JournalType: entity.JournalTypeSales,
	})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.CreateJournalRequest{
		CompanyID: company1, JournalCode: "CAJ", JournalName: "Caja", JournalType: entity.JournalTypeCash,
	})
	require.NoError(t, err)

	_, err = uc.Update(ctx, sales.ID, dto.UpdateJournalRequest{JournalCode: strPtr("CAJ")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := uc.Update(ctx, sales.ID, dto.UpdateJournalRequest{JournalCode: strPtr("VTA")})
	require.NoError(t, err)
	assert.Equal(t, "VTA", got.JournalCode)

	list, err := uc.ListByCompany(ctx, company1, true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "CAJ", list[0].JournalCode, "orden por código")
}

func TestBusinessPartner_EmailInvalido(t *testing.T) {
	uc := usecase.NewBusinessPartnerUseCase(memory.NewStore().BusinessPartners())
	_, err := uc.Create(context.Background(), dto.CreateBusinessPartnerRequest{
		CompanyID: company1, PartnerCode: "CL-1", PartnerName: "Cliente",
		PartnerType: entity.PartnerTypeCustomer, Email: "no-es-email",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestWarehouse_BajaLogicaOcultaDeActivos(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(memory.NewStore().Warehouses())
	ctx := context.Background()
	w, err := uc.Create(ctx, dto.CreateWarehouseRequest{CompanyID: company1, WarehouseCode: "B1", WarehouseName: "Principal"})
	require.NoError(t, err)

	require.NoError(t, uc.Remove(ctx, w.ID))

	active, err := uc.ListByCompany(ctx, company1, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := uc.ListByCompany(ctx, company1, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	assert.ErrorIs(t, uc.Remove(ctx, "00000000-0000-0000-0000-00000000dead"), domain.ErrNotFound)
}
