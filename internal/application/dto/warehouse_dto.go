package dto

import "time"

// CreateWarehouseRequest entrada para crear una bodega.
type CreateWarehouseRequest struct {
	CompanyID     string `json:"company_id" validate:"required,uuid"`
	WarehouseCode string `json:"warehouse_code" validate:"required,max=20"`
	WarehouseName string `json:"warehouse_name" validate:"required,min=1,max=200"`
	Address       string `json:"address" validate:"max=300"`
	City          string `json:"city" validate:"max=100"`
}

// UpdateWarehouseRequest entrada para actualizar una bodega.
type UpdateWarehouseRequest struct {
	WarehouseCode *string `json:"warehouse_code" validate:"omitempty,max=20"`
	WarehouseName *string `json:"warehouse_name" validate:"omitempty,min=1,max=200"`
	Address       *string `json:"address" validate:"omitempty,max=300"`
	City          *string `json:"city" validate:"omitempty,max=100"`
	IsActive      *bool   `json:"is_active"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID            string    `json:"id"`
	CompanyID     string    `json:"company_id"`
	WarehouseCode string    `json:"warehouse_code"`
	WarehouseName string    `json:"warehouse_name"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
