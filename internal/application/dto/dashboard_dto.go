package dto

// TypeCountersDTO contadores por tipo de operación.
type TypeCountersDTO struct {
	ToProcess int `json:"to_process"`
	Total     int `json:"total"`
	Late      int `json:"late"`
	Waiting   int `json:"waiting,omitempty"`
}

// DashboardResponse respuesta de GET /api/dashboard. Todos los contadores
// derivan de un único snapshot de lectura (ver ReportRepository).
type DashboardResponse struct {
	TotalProducts              int               `json:"total_products"`
	LowStock                   int               `json:"low_stock"`
	RecentMoves                []MoveHistoryItem `json:"recent_moves"`
	Receipts                   TypeCountersDTO   `json:"receipts"`
	Deliveries                 TypeCountersDTO   `json:"deliveries"`
	InternalTransfersScheduled int               `json:"internal_transfers_scheduled"`
}
