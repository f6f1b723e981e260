package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.CurrencyRepository = (*CurrencyRepo)(nil)

// CurrencyRepo implementación de CurrencyRepository sobre PostgreSQL.
type CurrencyRepo struct {
	q Querier
}

// NewCurrencyRepository construye el adaptador de monedas.
func NewCurrencyRepository(q Querier) *CurrencyRepo {
	return &CurrencyRepo{q: q}
}

const currencyColumns = `id, code, name, symbol, decimal_places, is_active, created_at, updated_at`

func scanCurrency(row pgxScanner) (*entity.Currency, error) {
	var c entity.Currency
	if err := row.Scan(&c.ID, &c.Code, &c.Name, &c.Symbol, &c.DecimalPlaces, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CurrencyRepo) Create(ctx context.Context, c *entity.Currency) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `INSERT INTO currencies (`+currencyColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Code, c.Name, c.Symbol, c.DecimalPlaces, c.IsActive, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return writeErr("insert currency", err)
	}
	return nil
}

func (r *CurrencyRepo) GetByID(ctx context.Context, id string) (*entity.Currency, error) {
	return r.getOne(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE id = $1`, id)
}

func (r *CurrencyRepo) GetByCode(ctx context.Context, code string) (*entity.Currency, error) {
	return r.getOne(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE code = $1`, code)
}

func (r *CurrencyRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Currency, error) {
	c, err := scanCurrency(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get currency: %w", err)
	}
	return c, nil
}

func (r *CurrencyRepo) CodeExists(ctx context.Context, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q,
		`SELECT EXISTS (SELECT 1 FROM currencies WHERE code = $1 AND ($2 = '' OR id::text <> $2))`,
		code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check currency code: %w", err)
	}
	return ok, nil
}

func (r *CurrencyRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Currency, error) {
	return r.list(ctx, `SELECT `+currencyColumns+` FROM currencies
		WHERE ($1 = false OR is_active = true) ORDER BY code ASC`, activeOnly)
}

func (r *CurrencyRepo) ListByDecimalPlaces(ctx context.Context, decimalPlaces int) ([]*entity.Currency, error) {
	return r.list(ctx, `SELECT `+currencyColumns+` FROM currencies
		WHERE decimal_places = $1 AND is_active = true ORDER BY code ASC`, decimalPlaces)
}

func (r *CurrencyRepo) Search(ctx context.Context, q string) ([]*entity.Currency, error) {
	return r.list(ctx, `SELECT `+currencyColumns+` FROM currencies
		WHERE is_active = true AND (code ILIKE $1 OR name ILIKE $1) ORDER BY code ASC`, likePattern(q))
}

func (r *CurrencyRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Currency, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	list, err := collect(rows, scanCurrency)
	if err != nil {
		return nil, fmt.Errorf("scan currency: %w", err)
	}
	return list, nil
}

func (r *CurrencyRepo) Update(ctx context.Context, c *entity.Currency) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE currencies
		SET code = $2, name = $3, symbol = $4, decimal_places = $5, is_active = $6, updated_at = $7
		WHERE id = $1`,
		c.ID, c.Code, c.Name, c.Symbol, c.DecimalPlaces, c.IsActive, c.UpdatedAt)
	if err != nil {
		return writeErr("update currency", err)
	}
	return affectedOrNotFound(tag)
}

func (r *CurrencyRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE currencies SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete currency: %w", err)
	}
	return affectedOrNotFound(tag)
}
