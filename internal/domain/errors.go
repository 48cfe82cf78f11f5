package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrUserNotFound         = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists   = errors.New("el email ya está registrado")
	ErrLoginIDAlreadyExists = errors.New("el login_id ya está registrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrDuplicate            = errors.New("recurso duplicado")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrForbidden            = errors.New("acceso denegado")
	ErrConflict             = errors.New("conflicto de concurrencia, reintentos agotados")
	ErrUnsupportedMovement  = errors.New("rol de ubicación origen no soportado para movimientos")
	ErrMissingLossLocation  = errors.New("no hay ubicación de tipo loss configurada")
	ErrInvalidOTP           = errors.New("código de recuperación inválido o expirado")
)

// InsufficientStockError se retorna cuando una salida desde stock interno
// excede la cantidad en mano. Lleva la cantidad disponible para que el
// caller pueda mostrarla (nunca se recorta la cantidad en silencio).
type InsufficientStockError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s",
		e.Available.String(), e.Requested.String())
}

// IsInsufficientStock verifica si err envuelve un InsufficientStockError.
func IsInsufficientStock(err error) (*InsufficientStockError, bool) {
	var ise *InsufficientStockError
	if errors.As(err, &ise) {
		return ise, true
	}
	return nil, false
}
