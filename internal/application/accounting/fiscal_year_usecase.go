// Package accounting contiene los casos de uso contables: ciclo de vida de los años fiscales.
package accounting

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/fiscal"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

// FiscalYearUseCase aplica las reglas de solapamiento y cierre de años fiscales.
type FiscalYearUseCase struct {
	repo repository.FiscalYearRepository
	log  zerolog.Logger
	now  func() time.Time
}

// Option configura el caso de uso.
type Option func(*FiscalYearUseCase)

// WithClock reemplaza el reloj (fecha de cierre). Útil en tests.
func WithClock(now func() time.Time) Option {
	return func(uc *FiscalYearUseCase) { uc.now = now }
}

// NewFiscalYearUseCase construye el caso de uso con el puerto de persistencia.
func NewFiscalYearUseCase(repo repository.FiscalYearRepository, log zerolog.Logger, opts ...Option) *FiscalYearUseCase {
	uc := &FiscalYearUseCase{repo: repo, log: log, now: time.Now}
	for _, o := range opts {
		o(uc)
	}
	return uc
}

// Create registra un año fiscal abierto y activo.
// Orden de validación: formato, start < end, períodos, código único y por último solapamiento.
func (uc *FiscalYearUseCase) Create(ctx context.Context, in dto.CreateFiscalYearRequest) (*dto.FiscalYearResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	start, err := dto.ParseDate("start_date", in.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := dto.ParseDate("end_date", in.EndDate)
	if err != nil {
		return nil, err
	}
	if err := fiscal.ValidateRange(start, end); err != nil {
		return nil, err
	}
	periods := entity.DefaultFiscalPeriods
	if in.NumberOfPeriods != nil {
		periods = *in.NumberOfPeriods
	}
	if err := fiscal.ValidatePeriods(periods); err != nil {
		return nil, err
	}

	taken, err := uc.repo.CodeExistsForCompany(ctx, in.CompanyID, in.Code, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fiscal.CodeTakenError(in.Code)
	}
	if err := uc.checkOverlap(ctx, in.CompanyID, start, end, ""); err != nil {
		return nil, err
	}

	now := uc.now()
	fy := &entity.FiscalYear{
		CompanyID:       in.CompanyID,
		Code:            in.Code,
		Name:            in.Name,
		StartDate:       start,
		EndDate:         end,
		IsActive:        true,
		NumberOfPeriods: periods,
		Description:     in.Description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(ctx, fy); err != nil {
		return nil, err
	}
	uc.log.Info().Str("fiscal_year_id", fy.ID).Str("company_id", fy.CompanyID).Str("code", fy.Code).
		Msg("año fiscal creado")
	return entityToFiscalYearResponse(fy), nil
}

// GetByID devuelve el año o domain.ErrNotFound.
func (uc *FiscalYearUseCase) GetByID(ctx context.Context, id string) (*dto.FiscalYearResponse, error) {
	fy, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return entityToFiscalYearResponse(fy), nil
}

// GetByCompanyAndCode busca por código dentro de la empresa.
func (uc *FiscalYearUseCase) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*dto.FiscalYearResponse, error) {
	fy, err := uc.repo.GetByCompanyAndCode(ctx, companyID, code)
	if err != nil {
		return nil, err
	}
	if fy == nil {
		return nil, fmt.Errorf("%w: año fiscal %s", domain.ErrNotFound, code)
	}
	return entityToFiscalYearResponse(fy), nil
}

// GetByCompanyAndDate devuelve el año activo que contiene la fecha (YYYY-MM-DD).
func (uc *FiscalYearUseCase) GetByCompanyAndDate(ctx context.Context, companyID, date string) (*dto.FiscalYearResponse, error) {
	d, err := dto.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	fy, err := uc.repo.GetByCompanyAndDate(ctx, companyID, d)
	if err != nil {
		return nil, err
	}
	if fy == nil {
		return nil, fmt.Errorf("%w: no hay año fiscal para la fecha %s", domain.ErrNotFound, date)
	}
	return entityToFiscalYearResponse(fy), nil
}

// List todos los años fiscales de todas las empresas.
func (uc *FiscalYearUseCase) List(ctx context.Context) ([]dto.FiscalYearResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toFiscalYearResponses(list), nil
}

// ListByCompany incluye inactivos; orden start_date descendente.
func (uc *FiscalYearUseCase) ListByCompany(ctx context.Context, companyID string) ([]dto.FiscalYearResponse, error) {
	return uc.listByCompany(ctx, companyID, repository.FiscalYearFilter{})
}

// ListActiveByCompany solo activos.
func (uc *FiscalYearUseCase) ListActiveByCompany(ctx context.Context, companyID string) ([]dto.FiscalYearResponse, error) {
	return uc.listByCompany(ctx, companyID, repository.FiscalYearFilter{ActiveOnly: true})
}

// ListOpenByCompany activos y abiertos.
func (uc *FiscalYearUseCase) ListOpenByCompany(ctx context.Context, companyID string) ([]dto.FiscalYearResponse, error) {
	closed := false
	return uc.listByCompany(ctx, companyID, repository.FiscalYearFilter{ActiveOnly: true, Closed: &closed})
}

// ListClosedByCompany activos y cerrados.
func (uc *FiscalYearUseCase) ListClosedByCompany(ctx context.Context, companyID string) ([]dto.FiscalYearResponse, error) {
	closed := true
	return uc.listByCompany(ctx, companyID, repository.FiscalYearFilter{ActiveOnly: true, Closed: &closed})
}

func (uc *FiscalYearUseCase) listByCompany(ctx context.Context, companyID string, f repository.FiscalYearFilter) ([]dto.FiscalYearResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, f)
	if err != nil {
		return nil, err
	}
	return toFiscalYearResponses(list), nil
}

// Update aplica un patch parcial.
// Un año cerrado rechaza cualquier patch no vacío antes de otra validación; con patch vacío
// se devuelve sin cambios. Luego: código único (excluyéndose), start < end con los valores
// combinados y solapamiento excluyéndose a sí mismo.
func (uc *FiscalYearUseCase) Update(ctx context.Context, id string, in dto.UpdateFiscalYearRequest) (*dto.FiscalYearResponse, error) {
	fy, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.IsEmpty() {
		return entityToFiscalYearResponse(fy), nil
	}
	if err := fiscal.EnsureEditable(fy); err != nil {
		return nil, err
	}
	if err := dto.Validate(in); err != nil {
		return nil, err
	}

	if in.Code != nil && *in.Code != fy.Code {
		taken, err := uc.repo.CodeExistsForCompany(ctx, fy.CompanyID, *in.Code, fy.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fiscal.CodeTakenError(*in.Code)
		}
		fy.Code = *in.Code
	}

	if in.StartDate != nil || in.EndDate != nil {
		start, end := fy.StartDate, fy.EndDate
		if in.StartDate != nil {
			if start, err = dto.ParseDate("start_date", *in.StartDate); err != nil {
				return nil, err
			}
		}
		if in.EndDate != nil {
			if end, err = dto.ParseDate("end_date", *in.EndDate); err != nil {
				return nil, err
			}
		}
		if err := fiscal.ValidateRange(start, end); err != nil {
			return nil, err
		}
		if err := uc.checkOverlap(ctx, fy.CompanyID, start, end, fy.ID); err != nil {
			return nil, err
		}
		fy.StartDate, fy.EndDate = start, end
	}

	if in.NumberOfPeriods != nil {
		if err := fiscal.ValidatePeriods(*in.NumberOfPeriods); err != nil {
			return nil, err
		}
		fy.NumberOfPeriods = *in.NumberOfPeriods
	}
	if in.Name != nil {
		fy.Name = *in.Name
	}
	if in.Description != nil {
		fy.Description = *in.Description
	}
	if in.IsActive != nil {
		fy.IsActive = *in.IsActive
	}
	fy.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, fy); err != nil {
		return nil, err
	}
	return entityToFiscalYearResponse(fy), nil
}

// Close cierra el año con fecha de cierre = hoy.
func (uc *FiscalYearUseCase) Close(ctx context.Context, id string) (*dto.FiscalYearResponse, error) {
	fy, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fiscal.Close(fy, uc.now()); err != nil {
		return nil, err
	}
	if err := uc.repo.SetClosed(ctx, fy.ID, true, fy.ClosedDate); err != nil {
		return nil, err
	}
	uc.log.Info().Str("fiscal_year_id", fy.ID).Str("code", fy.Code).
		Time("closed_date", *fy.ClosedDate).Msg("año fiscal cerrado")
	return uc.GetByID(ctx, fy.ID)
}

// Reopen reabre un año cerrado y borra la fecha de cierre.
func (uc *FiscalYearUseCase) Reopen(ctx context.Context, id string) (*dto.FiscalYearResponse, error) {
	fy, err := uc.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fiscal.Reopen(fy); err != nil {
		return nil, err
	}
	if err := uc.repo.SetClosed(ctx, fy.ID, false, nil); err != nil {
		return nil, err
	}
	uc.log.Info().Str("fiscal_year_id", fy.ID).Str("code", fy.Code).Msg("año fiscal reabierto")
	return uc.GetByID(ctx, fy.ID)
}

// Remove baja lógica; un año cerrado no se puede eliminar.
func (uc *FiscalYearUseCase) Remove(ctx context.Context, id string) error {
	fy, err := uc.load(ctx, id)
	if err != nil {
		return err
	}
	if err := fiscal.EnsureDeletable(fy); err != nil {
		return err
	}
	if err := uc.repo.SoftDelete(ctx, fy.ID); err != nil {
		return err
	}
	uc.log.Info().Str("fiscal_year_id", fy.ID).Str("code", fy.Code).Msg("año fiscal dado de baja")
	return nil
}

func (uc *FiscalYearUseCase) load(ctx context.Context, id string) (*entity.FiscalYear, error) {
	fy, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fy == nil {
		return nil, fmt.Errorf("%w: año fiscal %s", domain.ErrNotFound, id)
	}
	return fy, nil
}

func (uc *FiscalYearUseCase) checkOverlap(ctx context.Context, companyID string, start, end time.Time, excludeID string) error {
	conflicts, err := uc.repo.FindOverlapping(ctx, companyID, start, end, excludeID)
	if err != nil {
		return err
	}
	return fiscal.OverlapError(conflicts)
}

func toFiscalYearResponses(list []*entity.FiscalYear) []dto.FiscalYearResponse {
	items := make([]dto.FiscalYearResponse, 0, len(list))
	for _, fy := range list {
		items = append(items, *entityToFiscalYearResponse(fy))
	}
	return items
}

func entityToFiscalYearResponse(fy *entity.FiscalYear) *dto.FiscalYearResponse {
	if fy == nil {
		return nil
	}
	return &dto.FiscalYearResponse{
		ID:              fy.ID,
		CompanyID:       fy.CompanyID,
		Code:            fy.Code,
		Name:            fy.Name,
		StartDate:       dto.FormatDate(fy.StartDate),
		EndDate:         dto.FormatDate(fy.EndDate),
		IsClosed:        fy.IsClosed,
		ClosedDate:      dto.FormatOptionalDate(fy.ClosedDate),
		IsActive:        fy.IsActive,
		NumberOfPeriods: fy.NumberOfPeriods,
		Description:     fy.Description,
		CreatedAt:       fy.CreatedAt,
		UpdatedAt:       fy.UpdatedAt,
	}
}
