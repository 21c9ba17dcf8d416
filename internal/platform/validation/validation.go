package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve validator/v10 reportando los campos con su nombre JSON.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{v: v}
}

func (cv *Validator) Validate(i any) error {
	return cv.v.Struct(i)
}

// Var valida un valor suelto, p. ej. un campo de un patch.
func (cv *Validator) Var(field any, tag string) error {
	return cv.v.Var(field, tag)
}

// Messages traduce los errores de validación a "campo: motivo".
func (cv *Validator) Messages(err error) map[string]string {
	out := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return out
	}
	for _, e := range verrs {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "min":
			out[field] = field + " must be at least " + e.Param()
		case "max":
			out[field] = field + " must be at most " + e.Param()
		case "gt":
			out[field] = field + " must be greater than " + e.Param()
		case "gte":
			out[field] = field + " must be greater than or equal to " + e.Param()
		case "oneof":
			out[field] = field + " must be one of [" + e.Param() + "]"
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}

// Summary junta los mensajes en una sola línea estable (orden por campo).
func (cv *Validator) Summary(err error) string {
	msgs := cv.Messages(err)
	if len(msgs) == 0 {
		return fmt.Sprintf("invalid input: %v", err)
	}
	keys := make([]string, 0, len(msgs))
	for k := range msgs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, msgs[k])
	}
	return strings.Join(parts, "; ")
}
