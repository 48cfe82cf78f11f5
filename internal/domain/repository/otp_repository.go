package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// OTPRepository define el puerto de persistencia para códigos de
// recuperación de contraseña.
type OTPRepository interface {
	Create(otp *entity.OTP) error
	// GetActive devuelve el código sin usar más reciente para el email
	// (nil si no hay).
	GetActive(email, code string) (*entity.OTP, error)
	MarkUsed(id string) error
}
