package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake ReportRepository
// ──────────────────────────────────────────────────────────────────────────────

type fakeReportRepo struct {
	stats   *repository.DashboardStats
	history []repository.MoveSummary
	err     error

	lastThreshold decimal.Decimal
	lastRecent    int
	lastLimit     int
	lastOffset    int
}

func (f *fakeReportRepo) GetDashboard(_ context.Context, threshold decimal.Decimal, recentLimit int) (*repository.DashboardStats, error) {
	f.lastThreshold = threshold
	f.lastRecent = recentLimit
	return f.stats, f.err
}

func (f *fakeReportRepo) ListHistory(_ context.Context, limit, offset int) ([]repository.MoveSummary, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	return f.history, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// GetDashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestGetDashboard_MapeaSnapshot(t *testing.T) {
	repo := &fakeReportRepo{stats: &repository.DashboardStats{
		TotalProducts: 12,
		LowStockCount: 3,
		RecentMoves: []repository.MoveSummary{
			{ID: "m1", ProductName: "Tornillo", Quantity: decimal.NewFromInt(5), Type: "receipt", Status: "done", CreatedAt: time.Now()},
		},
		Receipts:                   repository.TypeCounters{Total: 10, ToProcess: 2, Late: 1},
		Deliveries:                 repository.TypeCounters{Total: 7, ToProcess: 3, Late: 2, Waiting: 1},
		InternalTransfersScheduled: 4,
	}}
	uc := NewDashboardUseCase(repo, decimal.NewFromInt(10))

	out, err := uc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, out.TotalProducts)
	assert.Equal(t, 3, out.LowStock)
	assert.Equal(t, 4, out.InternalTransfersScheduled)
	assert.Equal(t, dto.TypeCountersDTO{Total: 10, ToProcess: 2, Late: 1}, out.Receipts)
	assert.Equal(t, dto.TypeCountersDTO{Total: 7, ToProcess: 3, Late: 2, Waiting: 1}, out.Deliveries)
	require.Len(t, out.RecentMoves, 1)
	assert.Equal(t, "Tornillo", out.RecentMoves[0].ProductName)

	assert.True(t, repo.lastThreshold.Equal(decimal.NewFromInt(10)),
		"el umbral de stock bajo debe llegar al repositorio")
	assert.Equal(t, dashboardRecentMoves, repo.lastRecent)
}

func TestGetDashboard_ErrorDelRepositorio(t *testing.T) {
	repo := &fakeReportRepo{err: errors.New("conexión perdida")}
	uc := NewDashboardUseCase(repo, decimal.NewFromInt(10))

	_, err := uc.GetDashboard(context.Background())
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// GetHistory
// ──────────────────────────────────────────────────────────────────────────────

func TestGetHistory_PaginacionPorDefecto(t *testing.T) {
	repo := &fakeReportRepo{history: []repository.MoveSummary{
		{ID: "m1", ProductSKU: "SKU-1", SourceName: "WH/Stock", DestName: "Partners/Customers"},
	}}
	uc := NewDashboardUseCase(repo, decimal.NewFromInt(10))

	out, err := uc.GetHistory(context.Background(), dto.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, 20, repo.lastLimit, "límite por defecto 20")
	assert.Equal(t, 0, repo.lastOffset)
	assert.Equal(t, 20, out.Limit)
	require.Len(t, out.Moves, 1)
	assert.Equal(t, "SKU-1", out.Moves[0].ProductSKU)
}

func TestGetHistory_SinMovimientos_RetornaListaVacia(t *testing.T) {
	uc := NewDashboardUseCase(&fakeReportRepo{}, decimal.NewFromInt(10))

	out, err := uc.GetHistory(context.Background(), dto.PageRequest{Limit: 50})
	require.NoError(t, err)
	assert.NotNil(t, out.Moves, "la lista debe serializarse como [] y no como null")
	assert.Empty(t, out.Moves)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF del historial
// ──────────────────────────────────────────────────────────────────────────────

type fakePDFGenerator struct {
	lastMoves []repository.MoveSummary
	out       []byte
	err       error
}

func (f *fakePDFGenerator) GenerateHistoryPDF(_ context.Context, moves []repository.MoveSummary) ([]byte, error) {
	f.lastMoves = moves
	return f.out, f.err
}

func TestGenerateHistoryReport_UsaLimiteDeExportacion(t *testing.T) {
	repo := &fakeReportRepo{history: []repository.MoveSummary{{ID: "m1"}, {ID: "m2"}}}
	gen := &fakePDFGenerator{out: []byte("%PDF-1.4")}
	uc := NewPDFUseCase(repo, gen)

	out, err := uc.GenerateHistoryReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.4"), out)
	assert.Equal(t, historyPDFLimit, repo.lastLimit)
	assert.Len(t, gen.lastMoves, 2, "el generador debe recibir los movimientos consultados")
}

func TestGenerateHistoryReport_ErrorDelGenerador(t *testing.T) {
	repo := &fakeReportRepo{history: []repository.MoveSummary{{ID: "m1"}}}
	gen := &fakePDFGenerator{err: errors.New("fuente no encontrada")}
	uc := NewPDFUseCase(repo, gen)

	_, err := uc.GenerateHistoryReport(context.Background())
	assert.Error(t, err)
}
