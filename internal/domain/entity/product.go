package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo. SKU es único global; CategoryID es opcional.
// CreatedAt se asigna una vez; UpdatedAt se refresca en cada escritura.
type Product struct {
	ID            int64
	Name          string
	SKU           string
	Price         decimal.Decimal
	StockQuantity int
	Active        bool
	CategoryID    *int64 // nil si no pertenece a ninguna categoría
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
