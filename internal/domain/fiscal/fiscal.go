// Package fiscal contiene las reglas del ciclo de vida de los años fiscales:
// detección de solapamiento de fechas y transiciones abierto/cerrado.
//
// Todas las funciones son puras; los casos de uso las llaman antes de escribir.
package fiscal

import (
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// DateOnly trunca t al día (UTC). Las fechas de los años fiscales son columnas DATE.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps informa si [s1,e1] y [s2,e2] comparten al menos un día (extremos inclusivos).
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}

// FindOverlapping devuelve los años de companyID cuyo intervalo se solapa con [start,end],
// ignorando excludeID (vacío = no excluir). El orden es start_date ASC, code ASC,
// el mismo que usa la consulta SQL del repositorio.
func FindOverlapping(years []*entity.FiscalYear, companyID string, start, end time.Time, excludeID string) []*entity.FiscalYear {
	var out []*entity.FiscalYear
	for _, fy := range years {
		if fy.CompanyID != companyID {
			continue
		}
		if excludeID != "" && fy.ID == excludeID {
			continue
		}
		if Overlaps(fy.StartDate, fy.EndDate, start, end) {
			out = append(out, fy)
		}
	}
	SortByStart(out)
	return out
}

// SortByStart ordena por fecha de inicio y luego por código.
func SortByStart(years []*entity.FiscalYear) {
	sort.SliceStable(years, func(i, j int) bool {
		if !years[i].StartDate.Equal(years[j].StartDate) {
			return years[i].StartDate.Before(years[j].StartDate)
		}
		return years[i].Code < years[j].Code
	})
}

// ValidateRange exige start < end (estricto), más fuerte que el test de solapamiento.
func ValidateRange(start, end time.Time) error {
	if !start.Before(end) {
		return fmt.Errorf("%w: la fecha de inicio debe ser anterior a la fecha de fin", domain.ErrInvalidInput)
	}
	return nil
}

// ValidatePeriods valida el número de sub-períodos.
func ValidatePeriods(n int) error {
	if n < entity.MinFiscalPeriods || n > entity.MaxFiscalPeriods {
		return fmt.Errorf("%w: el número de períodos debe estar entre %d y %d",
			domain.ErrInvalidInput, entity.MinFiscalPeriods, entity.MaxFiscalPeriods)
	}
	return nil
}

// OverlapError construye el conflicto a partir del resultado del chequeo; nil si no hay solapamiento.
// Se reporta el primer año devuelto.
func OverlapError(conflicts []*entity.FiscalYear) error {
	if len(conflicts) == 0 {
		return nil
	}
	return fmt.Errorf("%w: las fechas se solapan con el año fiscal existente: %s",
		domain.ErrConflict, conflicts[0].Code)
}

// CodeTakenError conflicto por código repetido en la empresa.
func CodeTakenError(code string) error {
	return fmt.Errorf("%w: ya existe un año fiscal con código %s para esta empresa", domain.ErrConflict, code)
}

// EnsureEditable rechaza cualquier modificación de un año cerrado. Va antes de toda otra validación.
func EnsureEditable(fy *entity.FiscalYear) error {
	if fy.IsClosed {
		return fmt.Errorf("%w: no se puede modificar un año fiscal cerrado; reábralo primero", domain.ErrInvalidInput)
	}
	return nil
}

// EnsureDeletable solo permite la baja lógica de años abiertos.
func EnsureDeletable(fy *entity.FiscalYear) error {
	if fy.IsClosed {
		return fmt.Errorf("%w: no se puede eliminar un año fiscal cerrado", domain.ErrInvalidInput)
	}
	return nil
}

// Close transición OPEN -> CLOSED. Fecha de cierre = día de now.
func Close(fy *entity.FiscalYear, now time.Time) error {
	if fy.IsClosed {
		return fmt.Errorf("%w: el año fiscal ya está cerrado", domain.ErrInvalidInput)
	}
	closed := DateOnly(now)
	fy.IsClosed = true
	fy.ClosedDate = &closed
	return nil
}

// Reopen transición CLOSED -> OPEN.
func Reopen(fy *entity.FiscalYear) error {
	if !fy.IsClosed {
		return fmt.Errorf("%w: el año fiscal no está cerrado", domain.ErrInvalidInput)
	}
	fy.IsClosed = false
	fy.ClosedDate = nil
	return nil
}

// Contains informa si date cae dentro del año (extremos inclusivos).
func Contains(fy *entity.FiscalYear, date time.Time) bool {
	d := DateOnly(date)
	return !d.Before(fy.StartDate) && !d.After(fy.EndDate)
}
