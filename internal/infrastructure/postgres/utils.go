package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Contable-api/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02" // p. ej. un uuid mal formado
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	if code := pgCode(err); code != "" {
		return code == codeUniqueViolation
	}
	return strings.Contains(err.Error(), codeUniqueViolation)
}

// writeErr traduce el error de una escritura:
// unicidad -> domain.ErrDuplicate, FK inexistente -> domain.ErrInvalidInput,
// identificador mal formado -> domain.ErrNotFound.
func writeErr(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	}
	switch pgCode(err) {
	case codeForeignKeyViolation:
		var pgErr *pgconn.PgError
		errors.As(err, &pgErr)
		return fmt.Errorf("%s: %w: referencia inexistente (%s)", op, domain.ErrInvalidInput, pgErr.ConstraintName)
	case codeInvalidText:
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// affectedOrNotFound devuelve ErrNotFound si el UPDATE no tocó ninguna fila.
func affectedOrNotFound(tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// likePattern escapa los comodines de LIKE y envuelve con %.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}
