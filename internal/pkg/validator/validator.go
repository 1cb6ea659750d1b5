package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Ошибки адресуются по json-имени поля (surface_bati, а не SurfaceBati)
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// FieldErrors converts a validation error into a field-keyed map of
// human-readable reasons. Only the first failing rule per field is kept.
// Errors that are not validator.ValidationErrors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	result := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := result[fe.Field()]; seen {
			continue
		}
		result[fe.Field()] = Reason(fe)
	}
	return result
}

// Reason - текст ошибки для одного правила
func Reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "min", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("Select a valid choice. %v is not one of the available choices.", fe.Value())
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
