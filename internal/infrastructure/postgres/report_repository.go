package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura sobre el ledger para dashboard e
// historial.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

const moveSummaryColumns = `
	m.id, m.product_id, p.name, p.sku,
	m.source_id, src.name, m.dest_id, dst.name,
	m.quantity, m.type, m.status, m.created_at`

const moveSummaryJoins = `
	FROM stock_moves m
	JOIN products  p   ON p.id   = m.product_id
	JOIN locations src ON src.id = m.source_id
	JOIN locations dst ON dst.id = m.dest_id`

// GetDashboard calcula todas las estadísticas del dashboard dentro de una
// única transacción REPEATABLE READ de solo lectura: todas las consultas ven
// el mismo snapshot, así los contadores y la lista de recientes nunca se
// contradicen entre sí.
func (r *ReportRepo) GetDashboard(
	ctx context.Context,
	lowStockThreshold decimal.Decimal,
	recentLimit int,
) (*repository.DashboardStats, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("reports.GetDashboard begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stats := &repository.DashboardStats{}

	const productQuery = `
	SELECT
	    COUNT(*)                                              AS total_products,
	    COUNT(*) FILTER (WHERE quantity_on_hand < $1)         AS low_stock
	FROM products`
	if err := tx.QueryRow(ctx, productQuery, lowStockThreshold).
		Scan(&stats.TotalProducts, &stats.LowStockCount); err != nil {
		return nil, fmt.Errorf("reports.GetDashboard products: %w", err)
	}

	// to_process = todo lo que no está cerrado; late = pendiente con más de
	// 7 días desde su creación.
	const counterQuery = `
	SELECT
	    m.type,
	    COUNT(*)                                                           AS total,
	    COUNT(*) FILTER (WHERE m.status NOT IN ('done', 'canceled'))       AS to_process,
	    COUNT(*) FILTER (WHERE m.status NOT IN ('done', 'canceled')
	                       AND m.created_at < now() - INTERVAL '7 days')    AS late,
	    COUNT(*) FILTER (WHERE m.status = 'waiting')                       AS waiting
	FROM stock_moves m
	WHERE m.type IN ($1, $2)
	GROUP BY m.type`
	rows, err := tx.Query(ctx, counterQuery, entity.MoveTypeReceipt, entity.MoveTypeDelivery)
	if err != nil {
		return nil, fmt.Errorf("reports.GetDashboard counters: %w", err)
	}
	for rows.Next() {
		var moveType string
		var c repository.TypeCounters
		if err := rows.Scan(&moveType, &c.Total, &c.ToProcess, &c.Late, &c.Waiting); err != nil {
			rows.Close()
			return nil, fmt.Errorf("reports.GetDashboard counters scan: %w", err)
		}
		switch moveType {
		case entity.MoveTypeReceipt:
			stats.Receipts = c
		case entity.MoveTypeDelivery:
			stats.Deliveries = c
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reports.GetDashboard counters rows: %w", err)
	}

	const internalQuery = `
	SELECT COUNT(*) FROM stock_moves WHERE type = $1 AND status <> $2`
	if err := tx.QueryRow(ctx, internalQuery, entity.MoveTypeInternal, entity.MoveStatusDone).
		Scan(&stats.InternalTransfersScheduled); err != nil {
		return nil, fmt.Errorf("reports.GetDashboard internal: %w", err)
	}

	recentQuery := `SELECT` + moveSummaryColumns + moveSummaryJoins + `
	ORDER BY m.created_at DESC LIMIT $1`
	recent, err := scanMoveSummaries(tx, ctx, recentQuery, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("reports.GetDashboard recent: %w", err)
	}
	stats.RecentMoves = recent

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("reports.GetDashboard commit: %w", err)
	}
	return stats, nil
}

// ListHistory devuelve el historial de movimientos desnormalizado, más
// recientes primero.
func (r *ReportRepo) ListHistory(ctx context.Context, limit, offset int) ([]repository.MoveSummary, error) {
	query := `SELECT` + moveSummaryColumns + moveSummaryJoins + `
	ORDER BY m.created_at DESC LIMIT $1 OFFSET $2`
	summaries, err := scanMoveSummaries(r.pool, ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("reports.ListHistory: %w", err)
	}
	return summaries, nil
}

func scanMoveSummaries(q Querier, ctx context.Context, query string, args ...any) ([]repository.MoveSummary, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []repository.MoveSummary
	for rows.Next() {
		var s repository.MoveSummary
		if err := rows.Scan(
			&s.ID, &s.ProductID, &s.ProductName, &s.ProductSKU,
			&s.SourceID, &s.SourceName, &s.DestID, &s.DestName,
			&s.Quantity, &s.Type, &s.Status, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
