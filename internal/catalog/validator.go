package catalog

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("booktag", validateBookTag)
}

func validateBookTag(fl validator.FieldLevel) bool {
	return ValidTags[fl.Field().String()]
}

func validateInput(in CreateInput) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fields []FieldError
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "gt":
			message = fmt.Sprintf("%s must be greater than %s", field, param)
		case "max":
			message = fmt.Sprintf("%s must have at most %s items", field, param)
		case "booktag":
			message = fmt.Sprintf("%s must be one of: science, history, biology", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		fields = append(fields, FieldError{
			Field:   fieldName,
			Message: message,
		})
	}

	return &ValidationError{Fields: fields}
}
