// Package domain defines the core domain models for the platform service.
package domain

import "errors"

// Simulated failure modes served by the error endpoint. The messages
// are the wire-visible detail strings, so they keep their original
// casing.
var (
	// ErrNotFound reports a missing resource.
	ErrNotFound = errors.New("Resource not found")

	// ErrForbidden reports denied access.
	ErrForbidden = errors.New("Access forbidden")

	// ErrInternal reports a simulated server fault.
	ErrInternal = errors.New("Internal server error simulation")
)
