package money

import "errors"

// Common money package errors
var (
	// ErrInvalidCurrency is returned when a currency code is not 3 uppercase letters.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrNegativeAmount is returned when a badge amount is below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")
)
