package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MoveTypeReceipt    = "receipt"    // entrada desde proveedor
	MoveTypeDelivery   = "delivery"   // salida hacia cliente
	MoveTypeInternal   = "internal"   // transferencia entre ubicaciones internas
	MoveTypeAdjustment = "adjustment" // reconciliación contra conteo físico
)

// Estados de un movimiento. El motor aplica el efecto de forma eager y crea
// los movimientos en done; el resto de estados existe para los contadores
// del dashboard y para operaciones cargadas por el colaborador externo.
const (
	MoveStatusDraft    = "draft"
	MoveStatusWaiting  = "waiting"
	MoveStatusReady    = "ready"
	MoveStatusDone     = "done"
	MoveStatusCanceled = "canceled"
)

// StockMove es un registro inmutable y append-only del ledger: nunca se
// actualiza ni se borra (una corrección es siempre un movimiento nuevo).
// Quantity es magnitud (>= 0); la dirección la implican los roles de las
// ubicaciones. CreatedAt es la única clave de ordenamiento del historial.
type StockMove struct {
	ID        string
	ProductID string
	SourceID  string
	DestID    string
	Quantity  decimal.Decimal // magnitud, >= 0
	Type      string          // receipt, delivery, internal, adjustment
	Status    string          // draft, waiting, ready, done, canceled
	CreatedAt time.Time
	CreatedBy string // UserID, opcional
}

// ValidMoveType verifica que el tipo pertenezca a la enumeración.
func ValidMoveType(t string) bool {
	switch t {
	case MoveTypeReceipt, MoveTypeDelivery, MoveTypeInternal, MoveTypeAdjustment:
		return true
	}
	return false
}
