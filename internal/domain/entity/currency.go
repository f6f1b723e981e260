package entity

import "time"

// Currency moneda ISO 4217. Es un catálogo global (no pertenece a una empresa).
type Currency struct {
	ID            string
	Code          string // ISO 4217 en mayúsculas
	Name          string
	Symbol        string
	DecimalPlaces int // 0..4
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
