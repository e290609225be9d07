// Package common defines shared constants and sentinel errors used across
// schoolinv layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Auth errors.
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorNotVerified        = errors.New("email is not verified")
	ErrorNoPendingUser      = errors.New("no pending registration for this email")
	ErrorWrongPassword      = errors.New("wrong password")
	ErrorPasswordMismatch   = errors.New("passwords do not match")
	ErrorPasswordTooShort   = errors.New("password is too short")

	// Validation errors for form submissions.
	ErrorValidation    = errors.New("validation error")
	ErrorPhotoRequired = errors.New("photo is required")
	ErrorBadQuantity   = errors.New("quantity must be a positive integer")

	// Import errors.
	ErrorImportEmpty = errors.New("file is empty or has an unexpected structure")
)
