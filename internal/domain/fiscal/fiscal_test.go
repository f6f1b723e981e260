package fiscal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/fiscal"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func year(id, company, code, start, end string) *entity.FiscalYear {
	return &entity.FiscalYear{ID: id, CompanyID: company, Code: code, StartDate: day(start), EndDate: day(end)}
}

func TestOverlaps_ExtremosInclusivos(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"contenido", "2024-01-01", "2024-12-31", "2024-03-01", "2024-04-01", true},
		{"parcial", "2024-01-01", "2024-12-31", "2024-06-01", "2025-05-31", true},
		{"tocan en un día", "2024-01-01", "2024-12-31", "2024-12-31", "2025-12-31", true},
		{"consecutivos", "2024-01-01", "2024-12-31", "2025-01-01", "2025-12-31", false},
		{"anterior", "2024-01-01", "2024-12-31", "2023-01-01", "2023-12-31", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := fiscal.Overlaps(day(tc.s1), day(tc.e1), day(tc.s2), day(tc.e2))
			assert.Equal(t, tc.want, got)
			// simétrico
			assert.Equal(t, tc.want, fiscal.Overlaps(day(tc.s2), day(tc.e2), day(tc.s1), day(tc.e1)))
		})
	}
}

func TestFindOverlapping_FiltraEmpresaYExcluido(t *testing.T) {
	years := []*entity.FiscalYear{
		year("3", "c1", "FY2025", "2025-01-01", "2025-12-31"),
		year("1", "c1", "FY2024", "2024-01-01", "2024-12-31"),
		year("2", "c2", "OTRA", "2024-01-01", "2024-12-31"),
	}

	got := fiscal.FindOverlapping(years, "c1", day("2024-06-01"), day("2025-05-31"), "")
	require.Len(t, got, 2)
	assert.Equal(t, "FY2024", got[0].Code, "el primero es el de inicio más temprano")
	assert.Equal(t, "FY2025", got[1].Code)

	got = fiscal.FindOverlapping(years, "c1", day("2024-06-01"), day("2024-07-01"), "1")
	assert.Empty(t, got, "el propio año se excluye en una actualización")

	got = fiscal.FindOverlapping(years, "c3", day("2024-06-01"), day("2024-07-01"), "")
	assert.Empty(t, got)
}

func TestOverlapError_CitaPrimerCodigo(t *testing.T) {
	assert.NoError(t, fiscal.OverlapError(nil))

	err := fiscal.OverlapError([]*entity.FiscalYear{{Code: "FY2024"}, {Code: "FY2025"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.Contains(t, err.Error(), "FY2024")
}

func TestValidateRange_Estricto(t *testing.T) {
	assert.NoError(t, fiscal.ValidateRange(day("2024-01-01"), day("2024-12-31")))
	assert.ErrorIs(t, fiscal.ValidateRange(day("2024-01-01"), day("2024-01-01")), domain.ErrInvalidInput)
	assert.ErrorIs(t, fiscal.ValidateRange(day("2024-12-31"), day("2024-01-01")), domain.ErrInvalidInput)
}

func TestValidatePeriods(t *testing.T) {
	assert.NoError(t, fiscal.ValidatePeriods(1))
	assert.NoError(t, fiscal.ValidatePeriods(24))
	assert.ErrorIs(t, fiscal.ValidatePeriods(0), domain.ErrInvalidInput)
	assert.ErrorIs(t, fiscal.ValidatePeriods(25), domain.ErrInvalidInput)
}

func TestCloseReopen_Transiciones(t *testing.T) {
	fy := year("1", "c1", "FY2024", "2024-01-01", "2024-12-31")
	now := time.Date(2025, 1, 15, 17, 30, 0, 0, time.UTC)

	require.NoError(t, fiscal.Close(fy, now))
	assert.True(t, fy.IsClosed)
	require.NotNil(t, fy.ClosedDate)
	assert.Equal(t, day("2025-01-15"), *fy.ClosedDate)

	// cerrar dos veces falla, no es un no-op
	assert.ErrorIs(t, fiscal.Close(fy, now), domain.ErrInvalidInput)
	assert.ErrorIs(t, fiscal.EnsureEditable(fy), domain.ErrInvalidInput)
	assert.ErrorIs(t, fiscal.EnsureDeletable(fy), domain.ErrInvalidInput)

	require.NoError(t, fiscal.Reopen(fy))
	assert.False(t, fy.IsClosed)
	assert.Nil(t, fy.ClosedDate)
	assert.ErrorIs(t, fiscal.Reopen(fy), domain.ErrInvalidInput)
	assert.NoError(t, fiscal.EnsureEditable(fy))
}

func TestContains(t *testing.T) {
	fy := year("1", "c1", "FY2024", "2024-01-01", "2024-12-31")
	assert.True(t, fiscal.Contains(fy, day("2024-01-01")))
	assert.True(t, fiscal.Contains(fy, time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, fiscal.Contains(fy, day("2025-01-01")))
}
