package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// UpdateQuantity es exclusivo del motor del ledger: nadie más escribe la
// caché QuantityOnHand.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE)
	// para serializar actualizaciones concurrentes de la caché.
	GetForUpdate(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(productID string, qty decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
}
