package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var requestValidator = validator.New(validator.WithRequiredStructEnabled())

// ValidateRequest is the body of POST /validate. Value is left untyped so
// that non-string payloads reach the document validator and fail there.
type ValidateRequest struct {
	Type  string `json:"type" validate:"required,oneof=cep cpf cnpj"`
	Value any    `json:"value"`
}

// Validate checks the request envelope. It does not look at Value.
func (r ValidateRequest) Validate() error {
	if err := requestValidator.Struct(r); err != nil {
		return errors.New(errorMessage(err))
	}
	return nil
}

func errorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "invalid request body"
	}

	fe := validationErrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
