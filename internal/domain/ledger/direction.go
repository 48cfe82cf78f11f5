// Package ledger contiene la regla de negocio central del motor de
// movimientos: cómo un movimiento afecta la cantidad en mano cacheada,
// interpretando los roles de las ubicaciones origen y destino.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// QuantityEffect calcula el delta que un movimiento aplica sobre
// QuantityOnHand (servicio de dominio, puro):
//
//   - origen vendor/adjustment  → entrada:  +qty
//   - origen internal           → salida:   -qty; si el destino también es
//     internal, la transferencia no cambia el total global y el delta es 0
//     (la caché es un contador global, no un saldo por ubicación)
//   - origen customer/loss      → sin regla definida: ErrUnsupportedMovement
//
// qty es magnitud (>= 0). El chequeo de disponibilidad para salidas desde
// internal no vive aquí: requiere la fila bloqueada dentro de la transacción.
func QuantityEffect(sourceRole, destRole string, qty decimal.Decimal) (decimal.Decimal, error) {
	switch sourceRole {
	case entity.LocationRoleVendor, entity.LocationRoleAdjustment:
		return qty, nil
	case entity.LocationRoleInternal:
		if destRole == entity.LocationRoleInternal {
			return decimal.Zero, nil
		}
		return qty.Neg(), nil
	case entity.LocationRoleCustomer, entity.LocationRoleLoss:
		return decimal.Zero, domain.ErrUnsupportedMovement
	default:
		return decimal.Zero, domain.ErrInvalidInput
	}
}

// RequiresAvailability indica si el movimiento consume stock rastreado y por
// tanto exige verificar QuantityOnHand >= qty antes de aplicarse.
func RequiresAvailability(sourceRole string) bool {
	return sourceRole == entity.LocationRoleInternal
}
