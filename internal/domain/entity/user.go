package entity

import "time"

// Roles válidos para User.
const (
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	LoginID      string // identificador de inicio de sesión, único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // manager, staff
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
