// Package domain defines the core business entities for fino.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: One disclosure filing in one specific file format
//   - DocumentID: The composite identifier {source, upstream id, format}
//   - TimeScope: A year/month/day collection window
//   - SearchCriteria: What to collect, passed opaquely to connectors
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
