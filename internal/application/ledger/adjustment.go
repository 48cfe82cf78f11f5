package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// AdjustmentInput entrada para ApplyAdjustment: un conteo físico contra la
// ubicación indicada.
type AdjustmentInput struct {
	ProductID  string
	LocationID string
	CountedQty decimal.Decimal
	UserID     string
}

// AdjustmentResult resultado de la reconciliación.
type AdjustmentResult struct {
	CurrentQty decimal.Decimal
	CountedQty decimal.Decimal
	Difference decimal.Decimal
	NewQty     decimal.Decimal
	MovementID string
}

// ApplyAdjustment reconcilia la caché contra una cantidad contada
// físicamente y deja un movimiento de auditoría contra la ubicación loss:
//
//   - diferencia > 0 → origen loss, destino la ubicación contada
//   - diferencia < 0 → origen la ubicación contada, destino loss
//   - diferencia = 0 → movimiento de cantidad cero (origen loss) para
//     continuidad de auditoría
//
// La caché se fija al valor contado de forma absoluta, sin pasar por la
// regla de dirección: el ajuste es un punto de reset, no un delta.
func (uc *UseCase) ApplyAdjustment(ctx context.Context, input AdjustmentInput) (*AdjustmentResult, error) {
	if input.ProductID == "" || input.LocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.CountedQty.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	location, err := uc.locationRepo.GetByID(input.LocationID)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}

	// El singleton loss lo provisiona el seed externo; sin él los ajustes
	// no pueden registrarse (error de configuración, no del caller).
	lossLoc, err := uc.locationRepo.GetByRole(entity.LocationRoleLoss)
	if err != nil {
		return nil, err
	}
	if lossLoc == nil {
		return nil, domain.ErrMissingLossLocation
	}

	now := time.Now()
	result := &AdjustmentResult{CountedQty: input.CountedQty}
	err = uc.txRunner.Run(ctx, func(
		moveRepo repository.StockMoveRepository,
		productRepo repository.ProductRepository,
	) error {
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		diff := input.CountedQty.Sub(product.QuantityOnHand)
		sourceID, destID := lossLoc.ID, input.LocationID
		if diff.IsNegative() {
			sourceID, destID = input.LocationID, lossLoc.ID
		}

		move := &entity.StockMove{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			SourceID:  sourceID,
			DestID:    destID,
			Quantity:  diff.Abs(),
			Type:      entity.MoveTypeAdjustment,
			Status:    entity.MoveStatusDone,
			CreatedAt: now,
			CreatedBy: input.UserID,
		}
		if err := productRepo.UpdateQuantity(product.ID, input.CountedQty); err != nil {
			return err
		}
		if err := moveRepo.Create(move); err != nil {
			return err
		}

		result.CurrentQty = product.QuantityOnHand
		result.Difference = diff
		result.NewQty = input.CountedQty
		result.MovementID = move.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
