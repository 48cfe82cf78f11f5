package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
)

// dashboardProvider es el contrato mínimo del handler de dashboard.
// Lo implementa *reports.DashboardUseCase.
type dashboardProvider interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

// historyPDFExporter exporta el historial como PDF.
// Lo implementa *reports.PDFUseCase.
type historyPDFExporter interface {
	GenerateHistoryReport(ctx context.Context) ([]byte, error)
}

// DashboardHandler maneja las estadísticas agregadas y la exportación PDF.
type DashboardHandler struct {
	dashboard dashboardProvider
	exporter  historyPDFExporter
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard dashboardProvider, exporter historyPDFExporter) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, exporter: exporter}
}

// Get godoc
// @Summary      Estadísticas del dashboard
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	out, err := h.dashboard.GetDashboard(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// HistoryPDF godoc
// @Summary      Exportar historial de movimientos como PDF
// @Tags         dashboard
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /api/moves/history/pdf [get]
func (h *DashboardHandler) HistoryPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.exporter.GenerateHistoryReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="historial-movimientos.pdf"`)
	return c.Send(pdfBytes)
}
