package entity

import "time"

// Roles semánticos de una ubicación. El motor del ledger interpreta la
// dirección del movimiento a partir de estos roles; el conjunto de roles es
// cerrado aunque se puedan agregar más ubicaciones.
const (
	LocationRoleVendor     = "vendor"     // proveedor: fuente inagotable
	LocationRoleInternal   = "internal"   // bodega propia: único rol con chequeo de disponibilidad
	LocationRoleCustomer   = "customer"   // cliente: sumidero
	LocationRoleLoss       = "loss"       // pérdida/merma: contrapartida de los ajustes
	LocationRoleAdjustment = "adjustment" // fuente inagotable (como vendor)
)

// Location representa una ubicación física o lógica del catálogo.
// Inmutable para el ledger: solo el colaborador de catálogo la administra.
type Location struct {
	ID        string
	Name      string
	Role      string // vendor, internal, customer, loss, adjustment
	CreatedAt time.Time
}

// ValidLocationRole verifica que el rol pertenezca a la enumeración cerrada.
func ValidLocationRole(role string) bool {
	switch role {
	case LocationRoleVendor, LocationRoleInternal, LocationRoleCustomer,
		LocationRoleLoss, LocationRoleAdjustment:
		return true
	}
	return false
}
