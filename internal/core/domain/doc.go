// Package domain defines the core business entities for the standards API.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Requirement: One atomic normalized unit of regulatory text
//   - ChecklistItem: A requirement reshaped for compliance checklists
//   - RawDocument: A parsed source document before extraction
//   - SchemaVariant: The closed set of recognised document shapes
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
