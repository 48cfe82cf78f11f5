package reports

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// HistoryPDFGenerator es el puerto de generación del reporte PDF del
// historial (lo implementa infrastructure/pdf con Maroto).
type HistoryPDFGenerator interface {
	GenerateHistoryPDF(ctx context.Context, moves []repository.MoveSummary) ([]byte, error)
}

const historyPDFLimit = 200 // movimientos máximos en el reporte

// PDFUseCase exporta el historial de movimientos como PDF.
type PDFUseCase struct {
	reportRepo repository.ReportRepository
	generator  HistoryPDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(reportRepo repository.ReportRepository, generator HistoryPDFGenerator) *PDFUseCase {
	return &PDFUseCase{reportRepo: reportRepo, generator: generator}
}

// GenerateHistoryReport arma el PDF con los movimientos más recientes.
func (uc *PDFUseCase) GenerateHistoryReport(ctx context.Context) ([]byte, error) {
	moves, err := uc.reportRepo.ListHistory(ctx, historyPDFLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("reporte PDF: historial: %w", err)
	}
	pdf, err := uc.generator.GenerateHistoryPDF(ctx, moves)
	if err != nil {
		return nil, fmt.Errorf("reporte PDF: generación: %w", err)
	}
	return pdf, nil
}
