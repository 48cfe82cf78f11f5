// Package reports contiene los casos de uso de solo lectura derivados del
// ledger: dashboard operativo e historial de movimientos. No tienen
// invariantes propios más allá de los que garantiza el motor; solo deben
// leer de un snapshot consistente.
package reports

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

const dashboardRecentMoves = 5 // movimientos en el widget del dashboard

// DashboardUseCase arma el resumen operativo del inventario.
//
// Fuente de datos: ReportRepository (consultas read-only). Todos los
// contadores de una respuesta provienen de un único snapshot; por eso las
// consultas NO se paralelizan aquí: el repositorio las ejecuta dentro de
// una misma transacción de solo lectura.
type DashboardUseCase struct {
	reportRepo        repository.ReportRepository
	lowStockThreshold decimal.Decimal
}

// NewDashboardUseCase construye el caso de uso. threshold es el umbral de
// stock bajo (10 por defecto vía configuración).
func NewDashboardUseCase(reportRepo repository.ReportRepository, threshold decimal.Decimal) *DashboardUseCase {
	return &DashboardUseCase{reportRepo: reportRepo, lowStockThreshold: threshold}
}

// GetDashboard construye el DashboardResponse.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	stats, err := uc.reportRepo.GetDashboard(ctx, uc.lowStockThreshold, dashboardRecentMoves)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &dto.DashboardResponse{
		TotalProducts: stats.TotalProducts,
		LowStock:      stats.LowStockCount,
		RecentMoves:   toHistoryItems(stats.RecentMoves),
		Receipts: dto.TypeCountersDTO{
			ToProcess: stats.Receipts.ToProcess,
			Total:     stats.Receipts.Total,
			Late:      stats.Receipts.Late,
		},
		Deliveries: dto.TypeCountersDTO{
			ToProcess: stats.Deliveries.ToProcess,
			Total:     stats.Deliveries.Total,
			Late:      stats.Deliveries.Late,
			Waiting:   stats.Deliveries.Waiting,
		},
		InternalTransfersScheduled: stats.InternalTransfersScheduled,
	}, nil
}

// GetHistory devuelve el historial paginado, más recientes primero, con
// resúmenes desnormalizados de producto y ubicaciones.
func (uc *DashboardUseCase) GetHistory(ctx context.Context, page dto.PageRequest) (*dto.MoveHistoryResponse, error) {
	page.DefaultPage()
	moves, err := uc.reportRepo.ListHistory(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("historial de movimientos: %w", err)
	}
	return &dto.MoveHistoryResponse{
		Moves:  toHistoryItems(moves),
		Limit:  page.Limit,
		Offset: page.Offset,
	}, nil
}

func toHistoryItems(moves []repository.MoveSummary) []dto.MoveHistoryItem {
	items := make([]dto.MoveHistoryItem, 0, len(moves))
	for _, m := range moves {
		items = append(items, dto.MoveHistoryItem{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			ProductSKU:  m.ProductSKU,
			SourceName:  m.SourceName,
			DestName:    m.DestName,
			Quantity:    m.Quantity,
			Type:        m.Type,
			Status:      m.Status,
			CreatedAt:   m.CreatedAt,
		})
	}
	return items
}
