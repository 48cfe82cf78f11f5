package auth

import "context"

// CodeSender entrega el código de recuperación fuera de banda (email, SMS).
// La implementación por defecto solo lo registra en el log: la entrega real
// pertenece al colaborador de notificaciones.
type CodeSender interface {
	SendResetCode(ctx context.Context, email, code string) error
}
