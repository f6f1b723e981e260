package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, company_id, product_code, product_name, product_type, product_category,
	unit_price, cost_price, unit_of_measure, track_inventory, description, is_active, created_at, updated_at`

func scanProduct(row pgxScanner) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.CompanyID, &p.ProductCode, &p.ProductName, &p.ProductType, &p.ProductCategory,
		&p.UnitPrice, &p.CostPrice, &p.UnitOfMeasure, &p.TrackInventory, &p.Description,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. cost_price puede ser NULL.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompanyID, p.ProductCode, p.ProductName, p.ProductType, p.ProductCategory,
		p.UnitPrice, p.CostPrice, p.UnitOfMeasure, p.TrackInventory, p.Description,
		p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

// GetByCompanyAndCode obtiene un producto por empresa y código.
func (r *ProductRepo) GetByCompanyAndCode(ctx context.Context, companyID, code string) (*entity.Product, error) {
	return r.getOne(ctx, `SELECT `+productColumns+` FROM products WHERE company_id = $1 AND product_code = $2`, companyID, code)
}

func (r *ProductRepo) getOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// ListByCompany lista los productos de la empresa ordenados por código.
func (r *ProductRepo) ListByCompany(ctx context.Context, companyID string, activeOnly bool) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM products
		WHERE company_id = $1 AND ($2 = false OR is_active = true) ORDER BY product_code ASC`, companyID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	list, err := collect(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("scan product: %w", err)
	}
	return list, nil
}

func (r *ProductRepo) CodeExistsForCompany(ctx context.Context, companyID, code, excludeID string) (bool, error) {
	ok, err := exists(ctx, r.q, `SELECT EXISTS (
		SELECT 1 FROM products WHERE company_id = $1 AND product_code = $2 AND ($3 = '' OR id::text <> $3))`,
		companyID, code, excludeID)
	if err != nil {
		return false, fmt.Errorf("check product code: %w", err)
	}
	return ok, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products
		SET product_code = $2, product_name = $3, product_type = $4, product_category = $5,
		    unit_price = $6, cost_price = $7, unit_of_measure = $8, track_inventory = $9,
		    description = $10, is_active = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.ProductCode, p.ProductName, p.ProductType, p.ProductCategory,
		p.UnitPrice, p.CostPrice, p.UnitOfMeasure, p.TrackInventory,
		p.Description, p.IsActive, p.UpdatedAt,
	)
	if err != nil {
		return writeErr("update product", err)
	}
	return affectedOrNotFound(tag)
}

func (r *ProductRepo) SoftDelete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `UPDATE products SET is_active = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return affectedOrNotFound(tag)
}
