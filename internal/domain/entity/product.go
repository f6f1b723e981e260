package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de producto.
const (
	ProductTypeGoods   = "GOODS"
	ProductTypeService = "SERVICE"
)

// Product producto o servicio del catálogo de una empresa.
type Product struct {
	ID              string
	CompanyID       string
	ProductCode     string
	ProductName     string
	ProductType     string
	ProductCategory string
	UnitPrice       decimal.Decimal
	CostPrice       *decimal.Decimal
	UnitOfMeasure   string
	TrackInventory  bool
	Description     string
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
