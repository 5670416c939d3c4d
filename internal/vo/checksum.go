package vo

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// CheckDigit computes a modulo-11 check digit over the leading digits, one
// weight per position. Only len(weights) digits are consumed.
func CheckDigit(digits []int, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += digits[i] * w
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

// OnlyDigits strips every non-digit character.
func OnlyDigits(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

func toDigits(s string) []int {
	digits := make([]int, len(s))
	for i, c := range s {
		digits[i] = int(c - '0')
	}
	return digits
}

func allEqual(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// verifyCheckDigits checks the two trailing check digits of a normalized
// taxpayer number against its weight tables.
func verifyCheckDigits(normalized string, first, second []int) bool {
	digits := toDigits(normalized)
	if allEqual(digits) {
		return false
	}
	if CheckDigit(digits, first) != digits[len(first)] {
		return false
	}
	return CheckDigit(digits, second) == digits[len(second)]
}
