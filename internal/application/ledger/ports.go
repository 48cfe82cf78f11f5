package ledger

import (
	"context"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza atomicidad para el motor del
// ledger: movimiento y caché de cantidad se confirman o revierten juntos.
//
// El contrato incluye el manejo de contención: ante un fallo de
// serialización o deadlock la implementación reintenta fn un número acotado
// de veces y, agotados los reintentos, retorna domain.ErrConflict. fn debe
// ser segura de reejecutar (cada intento relee el estado bajo lock).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		moveRepo repository.StockMoveRepository,
		productRepo repository.ProductRepository,
	) error) error
}
