package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	domledger "github.com/jhoicas/stockmaster-api/internal/domain/ledger"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

// UseCase es el motor del ledger de movimientos: valida y registra un
// movimiento de stock y actualiza la caché QuantityOnHand en la misma
// transacción (fila de producto bloqueada con SELECT FOR UPDATE).
type UseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
}

// NewUseCase construye el motor.
func NewUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
	}
}

// MovementInput entrada para ApplyMovement. Quantity es magnitud (>= 0).
type MovementInput struct {
	ProductID string
	SourceID  string
	DestID    string
	Quantity  decimal.Decimal
	Type      string
	UserID    string
}

// ApplyMovement registra exactamente un movimiento y la nueva cantidad en
// mano del producto, de forma atómica, y la retorna. En cualquier fallo no
// se escribe nada.
//
// Orden de validación: entrada → producto → ubicaciones → regla de
// dirección → disponibilidad (bajo lock, solo para origen internal).
func (uc *UseCase) ApplyMovement(ctx context.Context, input MovementInput) (decimal.Decimal, error) {
	if !entity.ValidMoveType(input.Type) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if input.Quantity.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	if input.ProductID == "" || input.SourceID == "" || input.DestID == "" {
		return decimal.Zero, domain.ErrInvalidInput
	}

	if product, err := uc.productRepo.GetByID(input.ProductID); err != nil {
		return decimal.Zero, err
	} else if product == nil {
		return decimal.Zero, domain.ErrNotFound
	}

	source, err := uc.locationRepo.GetByID(input.SourceID)
	if err != nil {
		return decimal.Zero, err
	}
	if source == nil {
		return decimal.Zero, domain.ErrNotFound
	}
	dest, err := uc.locationRepo.GetByID(input.DestID)
	if err != nil {
		return decimal.Zero, err
	}
	if dest == nil {
		return decimal.Zero, domain.ErrNotFound
	}

	// La regla de dirección solo depende de los roles: se evalúa antes de
	// abrir la transacción. customer/loss como origen se rechazan aquí.
	delta, err := domledger.QuantityEffect(source.Role, dest.Role, input.Quantity)
	if err != nil {
		return decimal.Zero, err
	}

	now := time.Now()
	var newQty decimal.Decimal
	err = uc.txRunner.Run(ctx, func(
		moveRepo repository.StockMoveRepository,
		productRepo repository.ProductRepository,
	) error {
		// Lock de fila: el chequeo de disponibilidad debe leer la cantidad
		// ya bloqueada, o dos salidas concurrentes podrían pasar ambas
		// contra un valor obsoleto.
		product, err := productRepo.GetForUpdate(input.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if domledger.RequiresAvailability(source.Role) && product.QuantityOnHand.LessThan(input.Quantity) {
			return &domain.InsufficientStockError{
				Available: product.QuantityOnHand,
				Requested: input.Quantity,
			}
		}

		newQty = product.QuantityOnHand.Add(delta)
		if err := productRepo.UpdateQuantity(product.ID, newQty); err != nil {
			return err
		}
		return moveRepo.Create(&entity.StockMove{
			ID:        uuid.New().String(),
			ProductID: input.ProductID,
			SourceID:  input.SourceID,
			DestID:    input.DestID,
			Quantity:  input.Quantity,
			Type:      input.Type,
			Status:    entity.MoveStatusDone, // efecto aplicado de forma eager
			CreatedAt: now,
			CreatedBy: input.UserID,
		})
	})
	if err != nil {
		return decimal.Zero, err
	}
	return newQty, nil
}
