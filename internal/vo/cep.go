package vo

import (
	"errors"
	"regexp"
)

// Cep is a postal code normalized to its 8 digits.
type Cep struct {
	value string
}

var ErrInvalidCep = errors.New("invalid cep")

var cepFormat = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// NewCep accepts "NNNNN-NNN" or "NNNNNNNN". The hyphen is optional but only
// allowed in that one position.
func NewCep(raw string) (Cep, error) {
	if !IsValidCep(raw) {
		return Cep{}, ErrInvalidCep
	}
	return Cep{value: OnlyDigits(raw)}, nil
}

func (c Cep) Value() string {
	return c.value
}

func (c Cep) Masked() string {
	if c.value == "" {
		return ""
	}
	return c.value[:5] + "-" + c.value[5:]
}

// IsValidCep reports whether raw has an accepted postal code shape. It does
// not say anything about the code existing.
func IsValidCep(raw string) bool {
	return cepFormat.MatchString(raw)
}
