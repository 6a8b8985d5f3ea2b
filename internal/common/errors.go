// Package common defines the sentinel errors shared by repositories, services
// and the HTTP boundary. Callers should use errors.Is to match these values;
// the boundary translates them to status codes and never exposes anything else.
package common

import "errors"

var (
	// Validation errors, detected before any store call.
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRange = errors.New("start date after end date")

	// Conflict errors.
	ErrEmailTaken    = errors.New("email already registered")
	ErrInquiryExists = errors.New("inquiry id already exists")

	// Repository-level errors.
	ErrUserNotFound    = errors.New("user not found")
	ErrInquiryNotFound = errors.New("inquiry not found")

	// Lifecycle errors.
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrForbidden         = errors.New("actor not permitted")

	// Auth errors. ErrInvalidCredentials covers both an unknown email and a
	// wrong password so that login failures do not reveal which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")

	// Transient persistence failure. Wraps the driver error internally; the
	// boundary reports only this kind.
	ErrStoreUnavailable = errors.New("store unavailable")
)
