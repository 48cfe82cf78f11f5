package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MoveSummary es un movimiento desnormalizado para historial y dashboard:
// incluye identidad de producto y ubicaciones para display, sin exponer las
// entidades completas.
type MoveSummary struct {
	ID          string
	ProductID   string
	ProductName string
	ProductSKU  string
	SourceID    string
	SourceName  string
	DestID      string
	DestName    string
	Quantity    decimal.Decimal
	Type        string
	Status      string
	CreatedAt   time.Time
}

// TypeCounters contadores por tipo de operación para el dashboard.
type TypeCounters struct {
	Total     int
	ToProcess int // status fuera de done/canceled
	Late      int // pendientes con más de 7 días
	Waiting   int // status = waiting
}

// DashboardStats es la foto consistente que consume el dashboard: todos los
// campos provienen de un único snapshot de lectura.
type DashboardStats struct {
	TotalProducts              int
	LowStockCount              int
	RecentMoves                []MoveSummary
	Receipts                   TypeCounters
	Deliveries                 TypeCounters
	InternalTransfersScheduled int
}

// ReportRepository define el puerto de consultas de solo lectura sobre el
// ledger. Las implementaciones no mutan estado y deben derivar cada
// resultado de un único snapshot. ctx permite cancelar consultas largas
// (ej. desconexión del cliente).
type ReportRepository interface {
	GetDashboard(ctx context.Context, lowStockThreshold decimal.Decimal, recentLimit int) (*DashboardStats, error)
	ListHistory(ctx context.Context, limit, offset int) ([]MoveSummary, error)
}
