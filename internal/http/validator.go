package http

import (
	"fmt"
	"strings"

	"github.com/kobiowuquadri/book-traker/internal/httpx"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(s interface{}) []httpx.ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var details []httpx.ErrorDetail
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		tag := err.Tag()
		param := err.Param()

		var message string
		switch tag {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "email":
			message = fmt.Sprintf("%s must be a valid email address", field)
		case "min":
			message = fmt.Sprintf("%s must be at least %s characters", field, param)
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", field, param)
		case "oneof":
			message = fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(param, " ", ", "))
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		fieldName := strings.ToLower(field[:1]) + field[1:]
		details = append(details, httpx.ErrorDetail{
			Field:   fieldName,
			Message: message,
		})
	}

	return details
}
