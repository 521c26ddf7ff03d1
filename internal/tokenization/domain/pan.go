package domain

import "strings"

// ValidatePAN checks that pan is 13 to 19 ASCII digits.
func ValidatePAN(pan string) error {
	if len(pan) < MinPANLength || len(pan) > MaxPANLength {
		return ErrInvalidPAN
	}
	if !isDigits(pan) {
		return ErrInvalidPAN
	}
	return nil
}

// MaskPAN returns pan with everything except the first six and last four digits
// replaced by '*'. Inputs too short to keep ten digits are masked completely.
func MaskPAN(pan string) string {
	if len(pan) < MinPANLength {
		return strings.Repeat("*", len(pan))
	}
	return pan[:6] + strings.Repeat("*", len(pan)-10) + pan[len(pan)-4:]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
