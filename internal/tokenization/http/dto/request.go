// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/panvault/internal/validation"
)

// TokenizeRequest contains the card number to tokenize.
type TokenizeRequest struct {
	PAN *string `json:"pan"`
}

// Validate checks that the pan field was sent. Its content is checked by the vault.
func (r *TokenizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.PAN, customValidation.Present),
	)
}

// DetokenizeRequest contains the token to resolve.
type DetokenizeRequest struct {
	Token *string `json:"token"`
}

// Validate checks that the token field was sent.
func (r *DetokenizeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token, customValidation.Present),
	)
}

// ChargeRequest contains the token to charge and the decimal amount as a string.
type ChargeRequest struct {
	Token  *string `json:"token"`
	Amount *string `json:"amount"`
}

// Validate checks that both fields were sent.
func (r *ChargeRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Token, customValidation.Present),
		validation.Field(&r.Amount, customValidation.Present),
	)
}
