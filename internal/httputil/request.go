package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// BindData binds the JSON body of the request to data and runs the
// validations declared in its binding tags.
func BindData(c *gin.Context, data any) error {
	if err := c.ShouldBindJSON(data); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrRequestBodyEmpty
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			return ValidationErrorsToError(validationErrors)
		}

		var jsonUnmarshalTypeError *json.UnmarshalTypeError
		if errors.As(err, &jsonUnmarshalTypeError) {
			return fmt.Errorf("%w: %s must be of type %s", ErrInvalidBody, jsonUnmarshalTypeError.Field, jsonUnmarshalTypeError.Type)
		}

		log.Debug().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
		return ErrInvalidBody
	}

	return nil
}

// ValidationErrorsToError joins the messages of all failed validations.
func ValidationErrorsToError(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, ValidationErrorToText(e))
	}

	return fmt.Errorf("%w: %s", ErrInvalidBody, strings.Join(messages, ", "))
}

// ValidationErrorToText returns a human readable message for a failed validation.
func ValidationErrorToText(e validator.FieldError) string {
	field := jsonName(e)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s cannot be longer than %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.Join(strings.Fields(e.Param()), ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, e.Param())
	}
	return fmt.Sprintf("%s is not valid", field)
}

// jsonName lower cases the first letter of the struct field name, which
// matches the JSON name of all request fields.
func jsonName(e validator.FieldError) string {
	f := e.Field()
	if f == "" {
		return f
	}
	return strings.ToLower(f[:1]) + f[1:]
}

// GetURLFields checks which query parameters are set and which query
// parameters are set and can be used directly in a gorm query
//
// queryFields contains all field names that can be used directly
// in a gorm Where statement as argument to specify the fields filtered on.
//
// setFields returns a []string with all field names set in the query parameters.
// This can be useful to filter for zero values without defining them as pointer
// fields in gorm.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField is false for fields that are processed by explicit
		// logic instead of a plain equality filter
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}
