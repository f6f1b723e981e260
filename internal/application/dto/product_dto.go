package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto o servicio.
type CreateProductRequest struct {
	CompanyID       string           `json:"company_id" validate:"required,uuid"`
	ProductCode     string           `json:"product_code" validate:"required,max=50"`
	ProductName     string           `json:"product_name" validate:"required,max=200"`
	ProductType     string           `json:"product_type" validate:"required,oneof=GOODS SERVICE"`
	ProductCategory string           `json:"product_category" validate:"max=100"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	UnitOfMeasure   string           `json:"unit_of_measure" validate:"max=20"`
	TrackInventory  bool             `json:"track_inventory"`
	Description     string           `json:"description"`
}

// UpdateProductRequest patch parcial de un producto.
type UpdateProductRequest struct {
	ProductCode     *string          `json:"product_code" validate:"omitempty,max=50"`
	ProductName     *string          `json:"product_name" validate:"omitempty,max=200"`
	ProductType     *string          `json:"product_type" validate:"omitempty,oneof=GOODS SERVICE"`
	ProductCategory *string          `json:"product_category" validate:"omitempty,max=100"`
	UnitPrice       *decimal.Decimal `json:"unit_price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	UnitOfMeasure   *string          `json:"unit_of_measure" validate:"omitempty,max=20"`
	TrackInventory  *bool            `json:"track_inventory"`
	Description     *string          `json:"description"`
	IsActive        *bool            `json:"is_active"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID              string           `json:"id"`
	CompanyID       string           `json:"company_id"`
	ProductCode     string           `json:"product_code"`
	ProductName     string           `json:"product_name"`
	ProductType     string           `json:"product_type"`
	ProductCategory string           `json:"product_category"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	UnitOfMeasure   string           `json:"unit_of_measure"`
	TrackInventory  bool             `json:"track_inventory"`
	Description     string           `json:"description"`
	IsActive        bool             `json:"is_active"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}
