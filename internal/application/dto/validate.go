package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/Contable-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Los errores reportan el nombre JSON del campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate aplica los tags `validate` de un request. Los errores se devuelven como domain.ErrInvalidInput.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " es obligatorio"
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de [%s]", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s excede el máximo de %s", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s es menor que el mínimo de %s", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("%s debe tener longitud %s", fe.Field(), fe.Param())
	case "datetime":
		return fe.Field() + " debe tener formato YYYY-MM-DD"
	case "uuid":
		return fe.Field() + " debe ser un UUID"
	case "email":
		return fe.Field() + " debe ser un email válido"
	default:
		return fmt.Sprintf("%s no cumple la regla %s", fe.Field(), fe.Tag())
	}
}
