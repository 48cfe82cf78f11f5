package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateMoveRequest body para POST /api/moves.
// La cantidad es magnitud (>= 0); la dirección la implican los roles de las
// ubicaciones origen y destino.
type CreateMoveRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	SourceID  string          `json:"source_id" validate:"required,uuid"`
	DestID    string          `json:"dest_id" validate:"required,uuid"`
	Quantity  decimal.Decimal `json:"qty"`
	Type      string          `json:"type" validate:"required,oneof=receipt delivery internal adjustment"`
}

// CreateMoveResponse respuesta de POST /api/moves.
type CreateMoveResponse struct {
	Message  string          `json:"message"`
	NewStock decimal.Decimal `json:"new_stock"`
}

// AdjustmentRequest body para POST /api/moves/adjustment: reconcilia la
// cantidad cacheada contra un conteo físico.
type AdjustmentRequest struct {
	ProductID  string          `json:"product_id" validate:"required,uuid"`
	LocationID string          `json:"location_id" validate:"required,uuid"`
	CountedQty decimal.Decimal `json:"counted_qty"`
}

// AdjustmentResponse respuesta de POST /api/moves/adjustment.
type AdjustmentResponse struct {
	CurrentStock decimal.Decimal `json:"current_stock"`
	CountedQty   decimal.Decimal `json:"counted_qty"`
	Difference   decimal.Decimal `json:"difference"`
	NewStock     decimal.Decimal `json:"new_stock"`
	MovementID   string          `json:"movement_id"`
}

// MoveHistoryItem movimiento desnormalizado para GET /api/moves/history.
type MoveHistoryItem struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSKU  string          `json:"product_sku"`
	SourceName  string          `json:"source_name"`
	DestName    string          `json:"dest_name"`
	Quantity    decimal.Decimal `json:"qty"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// MoveHistoryResponse respuesta paginada del historial (más recientes primero).
type MoveHistoryResponse struct {
	Moves  []MoveHistoryItem `json:"moves"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}
