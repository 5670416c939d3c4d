package vo

import (
	"errors"
	"fmt"
	"regexp"
)

// Cnpj is a company taxpayer number normalized to its 14 digits.
type Cnpj struct {
	value string
}

var ErrInvalidCnpj = errors.New("invalid cnpj")

var (
	cnpjFormat = regexp.MustCompile(`^(\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}|\d{14})$`)

	cnpjFirstWeights  = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjSecondWeights = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func NewCnpj(raw string) (Cnpj, error) {
	if !IsValidCnpj(raw) {
		return Cnpj{}, ErrInvalidCnpj
	}
	return Cnpj{value: OnlyDigits(raw)}, nil
}

func (c Cnpj) Value() string {
	return c.value
}

// Masked renders the number as NN.NNN.NNN/NNNN-NN.
func (c Cnpj) Masked() string {
	if c.value == "" {
		return ""
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", c.value[:2], c.value[2:5], c.value[5:8], c.value[8:12], c.value[12:])
}

func IsValidCnpj(raw string) bool {
	if !cnpjFormat.MatchString(raw) {
		return false
	}
	return verifyCheckDigits(OnlyDigits(raw), cnpjFirstWeights, cnpjSecondWeights)
}
