package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del catálogo.
// QuantityOnHand es una caché derivada: el total global en mano, igual al
// fold del historial de movimientos. Solo el Movement Ledger la escribe;
// Catalog y Reporting la leen.
type Product struct {
	ID             string
	SKU            string // único
	Name           string
	Category       string
	Price          decimal.Decimal
	QuantityOnHand decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
