package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate instancia compartida: los handlers validan los DTOs contra sus
// tags `validate` antes de invocar el caso de uso.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validationMessage convierte los errores del validador en un mensaje plano
// apto para ErrorResponse.
func validationMessage(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return "cuerpo inválido"
	}
	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" es requerido")
		case "email":
			msgs = append(msgs, field+" debe ser un email válido")
		case "uuid":
			msgs = append(msgs, field+" debe ser un UUID")
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s supera el máximo de %s", field, fe.Param()))
		default:
			msgs = append(msgs, field+" es inválido")
		}
	}
	return strings.Join(msgs, "; ")
}
