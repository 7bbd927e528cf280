package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct ตรวจ struct ตาม validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// ValidationFieldError รายละเอียด field ที่ validate ไม่ผ่าน
type ValidationFieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// GetValidationErrors แปลง validator error เป็นรายการที่อ่านง่ายสำหรับ client
func GetValidationErrors(err error) []ValidationFieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationFieldError{{Field: "", Message: err.Error()}}
	}

	errors := make([]ValidationFieldError, len(validationErrors))
	for i, fieldErr := range validationErrors {
		errors[i] = ValidationFieldError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: validationMessage(fieldErr),
		}
	}
	return errors
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters", fieldErr.Param())
	default:
		return fmt.Sprintf("Failed validation: %s", fieldErr.Tag())
	}
}
