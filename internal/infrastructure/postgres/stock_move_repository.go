package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.StockMoveRepository = (*StockMoveRepo)(nil)

// StockMoveRepo implementación del puerto StockMoveRepository sobre
// PostgreSQL. Solo inserta: el log de movimientos es append-only y no hay
// UPDATE ni DELETE sobre la tabla.
type StockMoveRepo struct {
	q Querier
}

// NewStockMoveRepository construye el adaptador de persistencia para movimientos. Pasar pool o tx (Querier).
func NewStockMoveRepository(q Querier) *StockMoveRepo {
	return &StockMoveRepo{q: q}
}

const stockMoveColumns = `id, product_id, source_id, dest_id, quantity, type, status, created_at, created_by`

// Create registra un movimiento en el ledger.
func (r *StockMoveRepo) Create(move *entity.StockMove) error {
	query := `
		INSERT INTO stock_moves (id, product_id, source_id, dest_id, quantity, type, status, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		move.ID, move.ProductID, move.SourceID, move.DestID,
		move.Quantity, move.Type, move.Status, move.CreatedAt, nullIfEmpty(move.CreatedBy),
	)
	if err != nil {
		return fmt.Errorf("insert stock move: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *StockMoveRepo) GetByID(id string) (*entity.StockMove, error) {
	query := `SELECT ` + stockMoveColumns + ` FROM stock_moves WHERE id = $1`
	var m entity.StockMove
	var createdBy *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductID, &m.SourceID, &m.DestID,
		&m.Quantity, &m.Type, &m.Status, &m.CreatedAt, &createdBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock move: %w", err)
	}
	if createdBy != nil {
		m.CreatedBy = *createdBy
	}
	return &m, nil
}

// ListByProduct devuelve los movimientos de un producto, más recientes primero.
func (r *StockMoveRepo) ListByProduct(productID string, limit, offset int) ([]*entity.StockMove, error) {
	query := `SELECT ` + stockMoveColumns + ` FROM stock_moves
		WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, productID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock moves: %w", err)
	}
	defer rows.Close()

	var moves []*entity.StockMove
	for rows.Next() {
		var m entity.StockMove
		var createdBy *string
		if err := rows.Scan(
			&m.ID, &m.ProductID, &m.SourceID, &m.DestID,
			&m.Quantity, &m.Type, &m.Status, &m.CreatedAt, &createdBy,
		); err != nil {
			return nil, fmt.Errorf("scan stock move: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		moves = append(moves, &m)
	}
	return moves, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
