package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o actualizar un producto (reemplazo completo).
// StockQuantity y Active son punteros para distinguir "ausente" de cero/false.
// Price se valida aparte (positivo, máx 8 dígitos enteros y 2 decimales).
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,notblank,max=200"`
	SKU           string          `json:"sku" validate:"required,notblank,max=100"`
	Price         decimal.Decimal `json:"price" validate:"-"`
	StockQuantity *int            `json:"stockQuantity" validate:"required,gte=0"`
	Active        *bool           `json:"active" validate:"required"`
	CategoryID    *int64          `json:"categoryId"`
}

// ProductResponse vista externa de un producto, con la categoría denormalizada.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	Active        bool            `json:"active"`
	CategoryID    *int64          `json:"categoryId,omitempty"`
	CategoryName  *string         `json:"categoryName,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
