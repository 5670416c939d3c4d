// Package validator checks Brazilian document strings: postal codes (CEP),
// individual taxpayer numbers (CPF) and company taxpayer numbers (CNPJ).
//
// CPF and CNPJ are checked locally. A CEP that passes the format check is
// confirmed against a PostalLookup, and any error from that lookup is returned
// to the caller as is.
package validator

import (
	"context"
	"errors"

	"github.com/rodrigoasouza93/brdocs/internal/vo"
)

//go:generate mockgen -source=validator.go -destination=mocks/postal_lookup_mock.go -package=mocks PostalLookup

// DocumentType names one of the supported documents.
type DocumentType string

const (
	DocumentTypeCEP  DocumentType = "cep"
	DocumentTypeCPF  DocumentType = "cpf"
	DocumentTypeCNPJ DocumentType = "cnpj"
)

var (
	// ErrInvalidInputType is returned when a value that is not text reaches Validate.
	ErrInvalidInputType = errors.New("input must be a string")
	// ErrUnknownDocumentType is returned for a DocumentType outside cep, cpf and cnpj.
	ErrUnknownDocumentType = errors.New("unknown document type")
)

// PostalLookup confirms that an 8-digit postal code exists. Implementations
// return false for a code the directory reports as absent and an error when
// the directory could not be asked.
type PostalLookup interface {
	Exists(ctx context.Context, code string) (bool, error)
}

// DocumentValidator is stateless apart from its lookup and safe for concurrent use.
type DocumentValidator struct {
	lookup PostalLookup
}

func New(lookup PostalLookup) *DocumentValidator {
	return &DocumentValidator{lookup: lookup}
}

// ValidateCEP reports whether input is a well-formed postal code that the
// lookup confirms. Malformed input returns false without calling the lookup.
func (v *DocumentValidator) ValidateCEP(ctx context.Context, input string) (bool, error) {
	cep, err := vo.NewCep(input)
	if err != nil {
		return false, nil
	}
	return v.lookup.Exists(ctx, cep.Value())
}

func (v *DocumentValidator) ValidateCPF(input string) bool {
	return vo.IsValidCpf(input)
}

func (v *DocumentValidator) ValidateCNPJ(input string) bool {
	return vo.IsValidCnpj(input)
}

// Validate is the entry point for untyped values, e.g. decoded JSON. Anything
// other than a string fails with ErrInvalidInputType before format checks run.
func (v *DocumentValidator) Validate(ctx context.Context, kind DocumentType, value any) (bool, error) {
	input, ok := value.(string)
	if !ok {
		return false, ErrInvalidInputType
	}

	switch kind {
	case DocumentTypeCEP:
		return v.ValidateCEP(ctx, input)
	case DocumentTypeCPF:
		return v.ValidateCPF(input), nil
	case DocumentTypeCNPJ:
		return v.ValidateCNPJ(input), nil
	default:
		return false, ErrUnknownDocumentType
	}
}
