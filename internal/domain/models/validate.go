package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Decode unmarshals a wire payload into req, applies struct defaults and
// validates tagged fields. Failures come back as *ValidationError so callers
// can log and drop the one message without tearing down the connection.
func Decode(raw []byte, req interface{}) error {
	if err := json.Unmarshal(raw, req); err != nil {
		return &ValidationError{Message: fmt.Sprintf("malformed payload: %v", err)}
	}

	if err := defaults.Set(req); err != nil {
		return &ValidationError{Message: fmt.Sprintf("apply defaults: %v", err)}
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{Field: fe.Field(), Message: fieldErrorMessage(fe)}
		}
		return &ValidationError{Message: err.Error()}
	}

	return nil
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}
