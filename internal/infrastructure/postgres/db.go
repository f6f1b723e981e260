package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier es lo común entre *pgxpool.Pool y pgx.Tx: los repositorios funcionan igual dentro o fuera de una transacción.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar las funciones scanX.
type pgxScanner interface {
	Scan(dest ...any) error
}

// isNoRows también cubre un identificador que no convierte al tipo de la columna:
// ninguna fila puede tenerlo.
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgCode(err) == codeInvalidText
}

// collect recorre rows aplicando scan a cada fila.
func collect[T any](rows pgx.Rows, scan func(pgxScanner) (*T, error)) ([]*T, error) {
	defer rows.Close()
	list := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// exists ejecuta una consulta SELECT EXISTS(...).
func exists(ctx context.Context, q Querier, query string, args ...any) (bool, error) {
	var ok bool
	if err := q.QueryRow(ctx, query, args...).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
