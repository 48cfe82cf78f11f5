// Package notify implementa la entrega fuera de banda de códigos de
// recuperación. En desarrollo el código se escribe al log; el envío real por
// email pertenece a un colaborador externo.
package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stockmaster-api/internal/application/auth"
)

var _ auth.CodeSender = (*LogNotifier)(nil)

// LogNotifier entrega códigos OTP escribiéndolos al log estructurado.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

// SendResetCode registra el código de recuperación para el email dado.
func (n *LogNotifier) SendResetCode(_ context.Context, email, code string) error {
	n.log.Info().
		Str("email", email).
		Str("code", code).
		Msg("código de recuperación generado")
	return nil
}
