package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain"
)

// DateLayout formato de fecha en el wire (columnas DATE).
const DateLayout = "2006-01-02"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ParseDate interpreta YYYY-MM-DD como fecha UTC sin hora.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}

// ParseOptionalDate igual que ParseDate pero admite vacío (nil).
func ParseOptionalDate(field, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(field, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate serializa una fecha DATE.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOptionalDate devuelve nil si t es nil.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := FormatDate(*t)
	return &s
}
