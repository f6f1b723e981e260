package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre PostgreSQL.
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository construye el adaptador de persistencia para bodegas.
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

const warehouseColumns = `id, company_id, warehouse_code, warehouse_name, address, city, is_active, created_at, updated_at`

func scanWarehouse(row pgxScanner) (*entity.Warehouse, error) {
	var w entity.Warehouse
	if err := row.Scan(&w.ID, &w.CompanyID, &w.WarehouseCode, &w.WarehouseName, &w.Address, &w.City,
		&w.IsActive, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}
	return &w, nil
}

// Create persiste una nueva bodega.
func (r *WarehouseRepo) Create(ctx context.Context, w *entity.Warehouse) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	_, err := r.q.Exec(ctx, `INSERT INTO warehouses (`+warehouseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		w.ID, w.CompanyID, w.WarehouseCode, w.WarehouseName, w.Address, w.City, w.IsActive, w.CreatedAt, w.UpdatedAt)
	if err != nil {
		return writeErr("insert warehouse", err)
	}
	return nil
}

// GetByID obtiene una bodega por ID.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	return r.getOne(ctx, `SELECT `+warehouseColumns+` FROM warehouses WHERE id = $1`, id)
}

func (r *WarehouseRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Warehouse, error) {
	return r.getOne(ctx, `SELECT `+warehouseColumns+` FROM warehouses WHERE company_id = $1 AND warehouse_code = $2`, companyID, code)
}

func (r *WarehouseRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Warehouse, error) {
	w, err := scanWarehouse(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return w, nil
}

// ListByCompany devuelve las bodegas de una empresa.
func (r *WarehouseRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Warehouse, error) {
	rows, err := r.q.Query(ctx, `SELECT `+warehouseColumns+` FROM warehouses
		WHERE company_id = $1 AND ($2 = false OR is_active = true) ORDER BY warehouse_code ASC`, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	list, err := collect(rows, scanWarehouse)
	if err != nil {
		return nil, fmt.Errorf("scan warehouse: %w", err)
	}
	return list, nil
}

func (r *WarehouseRepo) CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM warehouses WHERE company_id = $1 AND warehouse_code = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check warehouse code: %w", err)
	}
	return ok, nil
}

// Update actualiza una bodega existente.
func (r *WarehouseRepo) Update(ctx context.Context, w *entity.Warehouse) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE warehouses
		SET warehouse_code = $2, warehouse_name = $3, address = $4, city = $5, is_active = $6, updated_at = $7
		WHERE id = $1`,
		w.ID, w.WarehouseCode, w.WarehouseName, w.Address, w.City, w.IsActive, w.UpdatedAt)
	if err != nil {
		return writeErr("update warehouse", err)
	}
	return affectedOrNotFound(tag)
}

func (r *WarehouseRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE warehouses SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return affectedOrNotFound(tag)
}
