package service

import "errors"

// Common service errors
var (
	// ErrNotFound is returned when a resource does not exist within the
	// caller's tenant. Cross-tenant lookups return it too; the response must
	// not reveal that the resource exists elsewhere.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrConflict is returned on a duplicate that cannot be upserted
	ErrConflict = errors.New("resource conflict")

	// ErrPermissionDenied is returned when a user may not perform an action
	ErrPermissionDenied = errors.New("permission denied")

	// ErrUnauthorized is returned when no authenticated user is present
	ErrUnauthorized = errors.New("unauthorized")

	// ErrTenantMismatch is returned when a referenced resource belongs to a
	// different tenant than the request
	ErrTenantMismatch = errors.New("resource belongs to a different tenant")
)
