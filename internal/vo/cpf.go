package vo

import (
	"errors"
	"fmt"
	"regexp"
)

// Cpf is an individual taxpayer number normalized to its 11 digits.
type Cpf struct {
	value string
}

var ErrInvalidCpf = errors.New("invalid cpf")

var (
	cpfFormat = regexp.MustCompile(`^(\d{3}\.\d{3}\.\d{3}-\d{2}|\d{11})$`)

	cpfFirstWeights  = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfSecondWeights = []int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
)

func NewCpf(raw string) (Cpf, error) {
	if !IsValidCpf(raw) {
		return Cpf{}, ErrInvalidCpf
	}
	return Cpf{value: OnlyDigits(raw)}, nil
}

func (c Cpf) Value() string {
	return c.value
}

// Masked renders the number as NNN.NNN.NNN-NN.
func (c Cpf) Masked() string {
	if c.value == "" {
		return ""
	}
	return fmt.Sprintf("%s.%s.%s-%s", c.value[:3], c.value[3:6], c.value[6:9], c.value[9:])
}

// IsValidCpf accepts the masked or bare 11-digit form, rejects numbers made of
// a single repeated digit and verifies both check digits.
func IsValidCpf(raw string) bool {
	if !cpfFormat.MatchString(raw) {
		return false
	}
	return verifyCheckDigits(OnlyDigits(raw), cpfFirstWeights, cpfSecondWeights)
}
