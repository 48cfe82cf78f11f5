package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// StockMoveRepository define el puerto del log de movimientos.
// Solo Create: el log es append-only, nunca se actualiza ni se borra.
type StockMoveRepository interface {
	Create(move *entity.StockMove) error
	GetByID(id string) (*entity.StockMove, error)
	// ListByProduct devuelve los movimientos de un producto, más recientes
	// primero (ordenados por created_at).
	ListByProduct(productID string, limit, offset int) ([]*entity.StockMove, error)
}
