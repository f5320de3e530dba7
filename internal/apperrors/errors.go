package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrCurrencyNotFound indicates that a supplied currency code is not part of
// the supported reference set.
var ErrCurrencyNotFound = errors.New("currency not found")

// ErrTransactionNotFound indicates that no transaction exists for the supplied id.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrInvalidAmount indicates a non-positive or non-numeric amount.
var ErrInvalidAmount = errors.New("invalid amount")
