// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Ayupanchal18/Renters-sub005/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("category", validateCategory)
	validate.RegisterValidation("listing_type", validateListingType)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateCategory(fl validator.FieldLevel) bool {
	return models.ValidCategory(fl.Field().String())
}

func validateListingType(fl validator.FieldLevel) bool {
	return models.ValidListingType(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()[:1]) + e.Field()[1:],
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	case "category":
		return e.Field() + " must be one of: room, flat, house, pg, hostel, commercial"
	case "listing_type":
		return e.Field() + " must be rent or buy"
	default:
		return e.Field() + " is invalid"
	}
}
