package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los envuelven con contexto: fmt.Errorf("%w: ...", domain.ErrConflict, ...).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	// ErrDuplicate lo devuelve la persistencia ante una violación de índice único;
	// se trata como un conflicto.
	ErrDuplicate = errors.New("recurso duplicado")
)

// IsConflict informa si err es un conflicto (incluye duplicados).
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrDuplicate)
}
