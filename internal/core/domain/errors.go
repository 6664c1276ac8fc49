package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoFilter indicates a search with every filter absent.
	// Callers must supply at least one of standard, directive code,
	// facility class, domain, or query.
	ErrNoFilter = errors.New("at least one search filter is required")

	// ErrNoStandards indicates a checklist request with a missing or
	// empty standards list.
	ErrNoStandards = errors.New("at least one standard is required")

	// ErrUnsupportedType indicates an unknown connector type.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrConnectorClosed indicates an operation on a closed connector.
	ErrConnectorClosed = errors.New("connector is closed")
)
