package middleware

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/alshbh/storefront/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// SetupValidator makes validation errors report JSON (or query form) field
// names instead of Go struct field names
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})
}

// FormatValidationErrors builds the VALIDATION_ERROR response with one
// detail per failed field
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details = make([]dto.ValidationDetail, 0, len(validationErrors))
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	}

	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// HandleValidationError answers 400 with the formatted validation errors
func HandleValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, FormatValidationErrors(err, c.GetString(RequestIDKey)))
}

var validationMessages = map[string]func(e validator.FieldError) string{
	"required": func(validator.FieldError) string { return "This field is required" },
	"uuid":     func(validator.FieldError) string { return "Invalid UUID format" },
	"hexcolor": func(validator.FieldError) string { return "Must be a hex color such as #1A2B3C" },
	"url":      func(validator.FieldError) string { return "Invalid URL format" },
	"oneof": func(e validator.FieldError) string {
		return "Must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
	},
	"min": func(e validator.FieldError) string { return "Must be at least " + e.Param() + lengthUnit(e) },
	"max": func(e validator.FieldError) string { return "Must be at most " + e.Param() + lengthUnit(e) },
	"len": func(e validator.FieldError) string { return "Must be exactly " + e.Param() + lengthUnit(e) },
	"gte": func(e validator.FieldError) string { return "Must be greater than or equal to " + e.Param() },
	"lte": func(e validator.FieldError) string { return "Must be less than or equal to " + e.Param() },
	"gt":  func(e validator.FieldError) string { return "Must be greater than " + e.Param() },
	"lt":  func(e validator.FieldError) string { return "Must be less than " + e.Param() },
}

func validationMessage(e validator.FieldError) string {
	if msg, ok := validationMessages[e.Tag()]; ok {
		return msg(e)
	}
	return "Invalid value"
}

// lengthUnit names what min/max/len count for the field's kind
func lengthUnit(e validator.FieldError) string {
	switch e.Kind() {
	case reflect.String:
		return " characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return " items"
	default:
		return ""
	}
}
