// Package metrics expone contadores Prometheus del motor de inventario.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MovementsApplied cuenta movimientos aplicados al ledger, por tipo.
	MovementsApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stockmaster_movements_applied_total",
		Help: "Movimientos de stock aplicados, por tipo de operación.",
	}, []string{"type"})

	// StockRejections cuenta movimientos rechazados por stock insuficiente.
	StockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockmaster_stock_rejections_total",
		Help: "Movimientos rechazados por disponibilidad insuficiente.",
	})

	// Adjustments cuenta reconciliaciones contra conteo físico.
	Adjustments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stockmaster_adjustments_total",
		Help: "Ajustes de inventario aplicados.",
	})
)
