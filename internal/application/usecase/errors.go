package usecase

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Contable-api/internal/domain"
)

// minSearchLen longitud mínima de una búsqueda por código o nombre.
const minSearchLen = 2

func notFound(kind, id string) error {
	return fmt.Errorf("%w: %s %s", domain.ErrNotFound, kind, id)
}

func codeTaken(kind, code string) error {
	return fmt.Errorf("%w: ya existe %s con código %s", domain.ErrConflict, kind, code)
}

// searchQuery recorta q y exige al menos minSearchLen caracteres.
func searchQuery(q string) (string, error) {
	q = strings.TrimSpace(q)
	if len([]rune(q)) < minSearchLen {
		return "", fmt.Errorf("%w: la búsqueda debe tener al menos %d caracteres", domain.ErrInvalidInput, minSearchLen)
	}
	return q, nil
}
