package http

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateBody valida un DTO con go-playground/validator y devuelve un
// mensaje legible campo: regla, o "" si es válido.
func validateBody(v interface{}) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "datos inválidos"
	}
	parts := make([]string, 0, len(verrs))
	for _, e := range verrs {
		parts = append(parts, e.Field()+": "+ruleMessage(e))
	}
	return strings.Join(parts, "; ")
}

func ruleMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "es requerido"
	case "gt":
		return "debe ser mayor que " + e.Param()
	case "min":
		return "mínimo " + e.Param()
	case "max":
		return "máximo " + e.Param()
	case "oneof":
		return "debe ser uno de: " + e.Param()
	case "uuid4":
		return "debe ser un UUID válido"
	default:
		return "valor inválido"
	}
}
