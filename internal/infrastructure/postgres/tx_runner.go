package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ ledger.TxRunner = (*TxRunner)(nil)

// maxTxAttempts intentos ante serialization failure / deadlock antes de
// rendirse con ErrConflict. El lock de fila (FOR UPDATE) hace estos fallos
// raros, pero acotados: nada se queda colgado reintentando.
const maxTxAttempts = 3

// TxRunner ejecuta callbacks del motor del ledger dentro de una transacción
// PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. Ante contención reintenta fn hasta maxTxAttempts veces
// (fn relee el estado bajo lock en cada intento) y después retorna
// domain.ErrConflict.
func (r *TxRunner) Run(ctx context.Context, fn func(
	moveRepo repository.StockMoveRepository,
	productRepo repository.ProductRepository,
) error) error {
	var lastErr error
	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.runOnce(ctx, fn)
		if err == nil {
			return nil
		}
		if !isRetryableTxError(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%w: %v", domain.ErrConflict, lastErr)
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(
	moveRepo repository.StockMoveRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockMoveRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
