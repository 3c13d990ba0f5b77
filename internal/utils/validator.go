package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// ValidationErrorData represents the data field in the validation error response.
type ValidationErrorData struct {
	Errors []ValidationErrorDetail `json:"errors"`
}

// BindAndValidate binds the request body to obj and validates it.
// On failure it writes a 400 envelope listing every offending field and returns false.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var validationErrors []ValidationErrorDetail

	var errs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &errs):
		for _, e := range errs {
			field := jsonFieldName(obj, e.StructField())
			detail := ValidationErrorDetail{
				Field:    field,
				Message:  fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", field, e.Tag()),
				Expected: e.Param(),
				Received: e.Value(),
			}

			if detail.Expected == "" {
				detail.Expected = e.Tag()
			}

			switch e.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Field '%s' is required", field)
				detail.Expected = "not null"
			case "min":
				detail.Message = fmt.Sprintf("Field '%s' must be at least %s", field, e.Param())
				detail.Expected = fmt.Sprintf("min %s", e.Param())
			case "max":
				detail.Message = fmt.Sprintf("Field '%s' must be at most %s", field, e.Param())
				detail.Expected = fmt.Sprintf("max %s", e.Param())
			case "oneof":
				detail.Message = fmt.Sprintf("Field '%s' must be one of [%s]", field, e.Param())
			case "gt":
				detail.Message = fmt.Sprintf("Field '%s' must be greater than %s", field, e.Param())
			}

			validationErrors = append(validationErrors, detail)
		}
	case errors.As(err, &typeErr):
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("Field '%s' has invalid type", typeErr.Field),
			Expected: typeErr.Type.String(),
			Received: typeErr.Value,
		})
	default:
		validationErrors = append(validationErrors, ValidationErrorDetail{
			Field:    "body",
			Message:  "Malformed JSON or invalid request body",
			Expected: "valid JSON",
			Received: "invalid",
		})
	}

	c.JSON(http.StatusBadRequest, Response{
		Code:    http.StatusBadRequest,
		Message: "Invalid request parameters",
		Data:    ValidationErrorData{Errors: validationErrors},
	})
	return false
}

// QueryUint reads a required unsigned integer query parameter.
func QueryUint(c *gin.Context, key string) (uint, bool) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		Fail(c, http.StatusBadRequest, fmt.Sprintf("Query parameter '%s' is required", key))
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		Fail(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", key))
		return 0, false
	}
	return uint(v), true
}

// ParamUint reads an unsigned integer path parameter.
func ParamUint(c *gin.Context, key string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil {
		Fail(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s", key))
		return 0, false
	}
	return uint(v), true
}

// jsonFieldName maps a struct field name to its json tag so messages match the payload keys.
func jsonFieldName(obj interface{}, fieldName string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fieldName
	}
	if f, ok := t.FieldByName(fieldName); ok {
		if tag := strings.Split(f.Tag.Get("json"), ",")[0]; tag != "" && tag != "-" {
			return tag
		}
	}
	return fieldName
}
