package entity

import "time"

// OTP es un código de un solo uso para recuperación de contraseña.
// Se entrega fuera de banda por el colaborador de notificaciones.
type OTP struct {
	ID        string
	Email     string
	Code      string // 6 dígitos
	CreatedAt time.Time
	ExpiresAt time.Time
	Used      bool
}

// Expired indica si el código ya no es válido en el instante dado.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
