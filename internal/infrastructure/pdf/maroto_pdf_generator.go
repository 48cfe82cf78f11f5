// Package pdf implementa la exportación del historial de movimientos como
// reporte PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte + fecha de generación            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Producto | Origen → Destino | Tipo | Cant    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de movimientos listados                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockmaster-api/internal/application/reports"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reports.HistoryPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa reports.HistoryPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateHistoryPDF genera el PDF del historial y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateHistoryPDF(
	_ context.Context,
	moves []repository.MoveSummary,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historial de Movimientos de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mv := range moves {
		m.AddRows(tableDetailRow(mv))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(moves)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("HISTORIAL DE MOVIMIENTOS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Ledger de inventario", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: encabezados de la tabla de movimientos.
func tableHeaderRow() core.Row {
	header := func(size int, label string) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		header(2, "Fecha"),
		header(3, "Producto"),
		header(4, "Origen → Destino"),
		header(1, "Tipo"),
		header(2, "Cantidad"),
	)
}

// tableDetailRow: una línea por movimiento.
func tableDetailRow(mv repository.MoveSummary) core.Row {
	cell := func(size int, value string, alignment align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 8, Align: alignment, Top: 1,
		}))
	}
	return row.New(6).Add(
		cell(2, mv.CreatedAt.Format("02/01/2006 15:04"), align.Left),
		cell(3, fmt.Sprintf("%s (%s)", mv.ProductName, mv.ProductSKU), align.Left),
		cell(4, mv.SourceName+" → "+mv.DestName, align.Left),
		cell(1, mv.Type, align.Left),
		cell(2, mv.Quantity.String(), align.Right),
	)
}

// footerRow: total de movimientos incluidos en el reporte.
func footerRow(count int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Total de movimientos listados: %d", count),
			props.Text{Size: 8, Color: colorGray, Top: 2},
		)),
	)
}
