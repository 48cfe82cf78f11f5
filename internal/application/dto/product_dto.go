package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. El stock inicial es
// siempre cero: solo el ledger mueve la cantidad en mano.
type CreateProductRequest struct {
	SKU      string          `json:"sku" validate:"required,min=1,max=50"`
	Name     string          `json:"name" validate:"required,min=1,max=100"`
	Category string          `json:"category" validate:"omitempty,max=50"`
	Price    decimal.Decimal `json:"price"`
}

// UpdateProductRequest entrada para actualizar un producto. No permite tocar
// SKU ni QuantityOnHand (la caché pertenece al ledger).
type UpdateProductRequest struct {
	Name     string           `json:"name" validate:"omitempty,min=1,max=100"`
	Category string           `json:"category" validate:"omitempty,max=50"`
	Price    *decimal.Decimal `json:"price,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          decimal.Decimal `json:"price"`
	QuantityOnHand decimal.Decimal `json:"stock_quantity"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}
