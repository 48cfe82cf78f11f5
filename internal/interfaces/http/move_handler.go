package http

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/application/dto"
	"github.com/jhoicas/stockmaster-api/internal/application/ledger"
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/infrastructure/metrics"
)

// movementApplier es el contrato mínimo que necesita el handler para aplicar
// movimientos. Lo implementa *ledger.UseCase; el uso de interfaz permite
// fakes en los tests del handler.
type movementApplier interface {
	ApplyMovement(ctx context.Context, input ledger.MovementInput) (decimal.Decimal, error)
	ApplyAdjustment(ctx context.Context, input ledger.AdjustmentInput) (*ledger.AdjustmentResult, error)
}

// historyLister es el contrato mínimo para consultar el historial.
// Lo implementa *reports.DashboardUseCase.
type historyLister interface {
	GetHistory(ctx context.Context, page dto.PageRequest) (*dto.MoveHistoryResponse, error)
}

// MoveHandler maneja el registro de movimientos de stock y el historial.
type MoveHandler struct {
	applier movementApplier
	history historyLister
}

// NewMoveHandler construye el handler.
func NewMoveHandler(applier movementApplier, history historyLister) *MoveHandler {
	return &MoveHandler{applier: applier, history: history}
}

// Create godoc
// @Summary      Registrar movimiento de stock
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMoveRequest  true  "Movimiento a aplicar"
// @Success      201   {object}  dto.CreateMoveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/moves [post]
func (h *MoveHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMoveRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}

	newStock, err := h.applier.ApplyMovement(c.Context(), ledger.MovementInput{
		ProductID: in.ProductID,
		SourceID:  in.SourceID,
		DestID:    in.DestID,
		Quantity:  in.Quantity,
		Type:      in.Type,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return h.mapMoveError(c, err)
	}

	metrics.MovementsApplied.WithLabelValues(in.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateMoveResponse{
		Message:  "movimiento registrado",
		NewStock: newStock,
	})
}

// Adjustment godoc
// @Summary      Reconciliar stock contra conteo físico
// @Tags         moves
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustmentRequest  true  "Conteo físico"
// @Success      200   {object}  dto.AdjustmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/moves/adjustment [post]
func (h *MoveHandler) Adjustment(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: validationMessage(err)})
	}

	result, err := h.applier.ApplyAdjustment(c.Context(), ledger.AdjustmentInput{
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		CountedQty: in.CountedQty,
		UserID:     GetUserID(c),
	})
	if err != nil {
		return h.mapMoveError(c, err)
	}

	metrics.Adjustments.Inc()
	return c.JSON(dto.AdjustmentResponse{
		CurrentStock: result.CurrentQty,
		CountedQty:   result.CountedQty,
		Difference:   result.Difference,
		NewStock:     result.NewQty,
		MovementID:   result.MovementID,
	})
}

// History godoc
// @Summary      Historial de movimientos
// @Tags         moves
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.MoveHistoryResponse
// @Router       /api/moves/history [get]
func (h *MoveHandler) History(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if page.Limit > 100 {
		page.Limit = 100
	}
	page.DefaultPage()
	out, err := h.history.GetHistory(c.Context(), page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// mapMoveError traduce los errores del motor a respuestas HTTP.
func (h *MoveHandler) mapMoveError(c *fiber.Ctx, err error) error {
	if stockErr, ok := domain.IsInsufficientStock(err); ok {
		metrics.StockRejections.Inc()
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INSUFFICIENT_STOCK",
			Message: fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s",
				stockErr.Available.String(), stockErr.Requested.String()),
		})
	}
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o ubicación no encontrada"})
	case errors.Is(err, domain.ErrUnsupportedMovement):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNSUPPORTED_MOVEMENT", Message: "el rol de la ubicación origen no admite extraer stock"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrMissingLossLocation):
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "MISSING_LOSS_LOCATION", Message: "no hay ubicación de pérdidas configurada"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "conflicto de concurrencia, reintente la operación"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
