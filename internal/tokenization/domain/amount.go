package domain

import "strings"

// ValidateAmount checks that amount is a plain positive decimal such as "49.99" or "10".
//
// Signs, exponents, thousands separators and surrounding whitespace are rejected.
// The value is never converted to a number.
func ValidateAmount(amount string) error {
	if amount == "" || len(amount) > MaxAmountLength {
		return ErrInvalidAmount
	}

	whole, frac, hasDot := strings.Cut(amount, ".")
	if whole == "" || !isDigits(whole) {
		return ErrInvalidAmount
	}
	if hasDot && (frac == "" || !isDigits(frac)) {
		return ErrInvalidAmount
	}

	if strings.Trim(whole+frac, "0") == "" {
		return ErrInvalidAmount
	}
	return nil
}
