package entity

import "time"

// Warehouse representa una bodega o sucursal de la empresa.
type Warehouse struct {
	ID            string
	CompanyID     string
	WarehouseCode string
	WarehouseName string
	Address       string
	City          string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
