// Package services defines the business logic for authentication, the
// activity/reputation ledger, code generation, and simulated deployments.
// This file centralizes common service-level error values so that they can be
// consistently returned by service methods and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Authentication-related errors.
var (
	// ErrEmptyUsername is returned when an authentication request carries an
	// empty or whitespace-only username.
	ErrEmptyUsername = errors.New("username is empty")

	// ErrInvalidUsername is returned when a username contains characters
	// outside the allowed set (letters, digits, '_' and '-') or exceeds the
	// maximum length.
	ErrInvalidUsername = errors.New("username must be alphanumeric (with _ or - allowed)")
)

// Ledger-related errors.
var (
	// ErrEmptyUser is returned when an event is logged without a user to
	// attribute it to.
	ErrEmptyUser = errors.New("user is empty")

	// ErrNegativeLimit is returned when a history read is requested with a
	// negative limit.
	ErrNegativeLimit = errors.New("limit must be >= 0")
)

// Code-generation and deployment errors.
var (
	// ErrEmptyAPIName is returned when a generation or deployment request
	// does not name the API it targets.
	ErrEmptyAPIName = errors.New("api name is empty")

	// ErrEmptyCode is returned when a deployment request carries no code.
	ErrEmptyCode = errors.New("code is empty")

	// ErrDeploymentNotFound indicates that the requested deployment does not
	// exist.
	ErrDeploymentNotFound = errors.New("deployment not found")
)
