package accounting_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/accounting"
	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	company1 = "00000000-0000-0000-0000-000000000001"
	company2 = "00000000-0000-0000-0000-000000000002"
)

var fixedNow = time.Date(2025, 3, 15, 17, 45, 0, 0, time.UTC)

func newUseCase() *accounting.FiscalYearUseCase {
	store := memory.NewStore()
	return accounting.NewFiscalYearUseCase(store.FiscalYears(), zerolog.Nop(),
		accounting.WithClock(func() time.Time { return fixedNow }))
}

func createYear(t *testing.T, uc *accounting.FiscalYearUseCase, companyID, code, start, end string) *dto.FiscalYearResponse {
	t.Helper()
	fy, err := uc.Create(context.Background(), dto.CreateFiscalYearRequest{
		CompanyID: companyID, Code: code, Name: "Ejercicio " + code,
		StartDate: start, EndDate: end,
	})
	require.NoError(t, err)
	return fy
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_ValoresIniciales(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	assert.NotEmpty(t, fy.ID)
	assert.Equal(t, "2024-01-01", fy.StartDate)
	assert.Equal(t, "2024-12-31", fy.EndDate)
	assert.False(t, fy.IsClosed)
	assert.Nil(t, fy.ClosedDate)
	assert.True(t, fy.IsActive)
	assert.Equal(t, 12, fy.NumberOfPeriods)
	assert.True(t, fixedNow.Equal(fy.CreatedAt), "marcas de tiempo del reloj inyectado")
	assert.True(t, fixedNow.Equal(fy.UpdatedAt))
}

func TestCreate_SolapamientoCitaAnioExistente(t *testing.T) {
	uc := newUseCase()
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	_, err := uc.Create(context.Background(), dto.CreateFiscalYearRequest{
		CompanyID: company1, Code: "FY2024B", Name: "B", StartDate: "2024-06-01", EndDate: "2025-05-31",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "FY2024")
}

func TestCreate_ExtremoCompartidoSeSolapa(t *testing.T) {
	uc := newUseCase()
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	_, err := uc.Create(context.Background(), dto.CreateFiscalYearRequest{
		CompanyID: company1, Code: "FY2025", Name: "2025", StartDate: "2024-12-31", EndDate: "2025-12-30",
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreate_AniosContiguosNoSeSolapan(t *testing.T) {
	uc := newUseCase()
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	createYear(t, uc, company1, "FY2025", "2025-01-01", "2025-12-31")
}

func TestCreate_OtraEmpresaNoEntraEnConflicto(t *testing.T) {
	uc := newUseCase()
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	createYear(t, uc, company2, "FY2024", "2024-01-01", "2024-12-31")
}

func TestCreate_CodigoDuplicado(t *testing.T) {
	uc := newUseCase()
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	_, err := uc.Create(context.Background(), dto.CreateFiscalYearRequest{
		CompanyID: company1, Code: "FY2024", Name: "otra vez", StartDate: "2030-01-01", EndDate: "2030-12-31",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "FY2024")
}

// start >= end falla como entrada inválida aunque también haya código repetido y solapamiento.
func TestCreate_RangoInvalidoAntesQueOtrosChequeos(t *testing.T) {
	uc := newUseCase()
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	for _, r := range [][2]string{{"2024-06-01", "2024-06-01"}, {"2024-12-31", "2024-01-01"}} {
		_, err := uc.Create(context.Background(), dto.CreateFiscalYearRequest{
			CompanyID: company1, Code: "FY2024", Name: "x", StartDate: r[0], EndDate: r[1],
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "rango %v", r)
		assert.NotErrorIs(t, err, domain.ErrConflict)
	}
}

func TestCreate_PeriodosFueraDeRango(t *testing.T) {
	uc := newUseCase()
	for _, n := range []int{0, 25} {
		n := n
		_, err := uc.Create(context.Background(), dto.CreateFiscalYearRequest{
			CompanyID: company1, Code: "FY", Name: "x", StartDate: "2024-01-01", EndDate: "2024-12-31",
			NumberOfPeriods: &n,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "períodos %d", n)
	}
}

func TestCreate_FechaMalFormada(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Create(context.Background(), dto.CreateFiscalYearRequest{
		CompanyID: company1, Code: "FY", Name: "x", StartDate: "01/01/2024", EndDate: "2024-12-31",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Close / Reopen
// ──────────────────────────────────────────────────────────────────────────────

func TestClose_FijaFechaDeHoy(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	closed, err := uc.Close(context.Background(), fy.ID)
	require.NoError(t, err)
	assert.True(t, closed.IsClosed)
	require.NotNil(t, closed.ClosedDate)
	assert.Equal(t, "2025-03-15", *closed.ClosedDate)
}

func TestClose_YaCerradoFalla(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	_, err := uc.Close(context.Background(), fy.ID)
	require.NoError(t, err)

	_, err = uc.Close(context.Background(), fy.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "ya está cerrado")
}

func TestReopen_LimpiaCierre(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	_, err := uc.Close(context.Background(), fy.ID)
	require.NoError(t, err)

	open, err := uc.Reopen(context.Background(), fy.ID)
	require.NoError(t, err)
	assert.False(t, open.IsClosed)
	assert.Nil(t, open.ClosedDate)

	_, err = uc.Reopen(context.Background(), fy.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no está cerrado")
}

func TestClose_NoExiste(t *testing.T) {
	uc := newUseCase()
	_, err := uc.Close(context.Background(), "00000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_CerradoRechazaPatch(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	_, err := uc.Close(context.Background(), fy.ID)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), fy.ID, dto.UpdateFiscalYearRequest{Name: strPtr("válido")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "cerrado")
}

// Con un año cerrado, el rechazo llega antes que la validación de fechas.
func TestUpdate_CerradoAntesQueValidarFechas(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	_, err := uc.Close(context.Background(), fy.ID)
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), fy.ID, dto.UpdateFiscalYearRequest{EndDate: strPtr("2023-01-01")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cerrado")
}

func TestUpdate_CerradoConPatchVacioDevuelveSinCambios(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	_, err := uc.Close(context.Background(), fy.ID)
	require.NoError(t, err)

	got, err := uc.Update(context.Background(), fy.ID, dto.UpdateFiscalYearRequest{})
	require.NoError(t, err)
	assert.True(t, got.IsClosed)
	assert.Equal(t, fy.Name, got.Name)
}

func TestUpdate_FechasCombinadas(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	_, err := uc.Update(context.Background(), fy.ID, dto.UpdateFiscalYearRequest{StartDate: strPtr("2025-01-01")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "start combinado con el end existente queda después")

	got, err := uc.Update(context.Background(), fy.ID, dto.UpdateFiscalYearRequest{EndDate: strPtr("2025-01-31")})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", got.StartDate)
	assert.Equal(t, "2025-01-31", got.EndDate)
}

func TestUpdate_SolapamientoExcluyeASiMismo(t *testing.T) {
	uc := newUseCase()
	fy24 := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	createYear(t, uc, company1, "FY2025", "2025-01-01", "2025-12-31")

	_, err := uc.Update(context.Background(), fy24.ID, dto.UpdateFiscalYearRequest{StartDate: strPtr("2024-02-01")})
	require.NoError(t, err)

	_, err = uc.Update(context.Background(), fy24.ID, dto.UpdateFiscalYearRequest{EndDate: strPtr("2025-02-01")})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Contains(t, err.Error(), "FY2025")
}

func TestUpdate_CodigoDeOtroAnio(t *testing.T) {
	uc := newUseCase()
	fy24 := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	createYear(t, uc, company1, "FY2025", "2025-01-01", "2025-12-31")

	_, err := uc.Update(context.Background(), fy24.ID, dto.UpdateFiscalYearRequest{Code: strPtr("FY2025")})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := uc.Update(context.Background(), fy24.ID, dto.UpdateFiscalYearRequest{Code: strPtr("FY2024")})
	require.NoError(t, err)
	assert.Equal(t, "FY2024", got.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Remove y consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_BajaLogica(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	require.NoError(t, uc.Remove(ctx, fy.ID))

	got, err := uc.GetByID(ctx, fy.ID)
	require.NoError(t, err, "la fila sigue existiendo")
	assert.False(t, got.IsActive)

	active, err := uc.ListActiveByCompany(ctx, company1)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := uc.ListByCompany(ctx, company1)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRemove_CerradoFalla(t *testing.T) {
	uc := newUseCase()
	fy := createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	_, err := uc.Close(context.Background(), fy.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, uc.Remove(context.Background(), fy.ID), domain.ErrInvalidInput)
}

func TestListas_AbiertosYCerrados(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	fy23 := createYear(t, uc, company1, "FY2023", "2023-01-01", "2023-12-31")
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")
	_, err := uc.Close(ctx, fy23.ID)
	require.NoError(t, err)

	open, err := uc.ListOpenByCompany(ctx, company1)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "FY2024", open[0].Code)

	closed, err := uc.ListClosedByCompany(ctx, company1)
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, "FY2023", closed[0].Code)

	all, err := uc.ListByCompany(ctx, company1)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "FY2024", all[0].Code, "orden por inicio descendente")
}

func TestGetByCompanyAndDate(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	createYear(t, uc, company1, "FY2024", "2024-01-01", "2024-12-31")

	got, err := uc.GetByCompanyAndDate(ctx, company1, "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, "FY2024", got.Code)

	_, err = uc.GetByCompanyAndDate(ctx, company1, "2025-01-01")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	byCode, err := uc.GetByCompanyAndCode(ctx, company1, "FY2024")
	require.NoError(t, err)
	assert.Equal(t, got.ID, byCode.ID)
}
