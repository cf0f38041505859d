// Package domain defines the core business entities for the Notion assistant.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Page: One corpus unit fetched from the workspace
//   - Graph: The directed parent->child corpus graph
//   - IndexState: The durable hashes / processed-set / graph aggregate
//   - Chunk: A bounded window of page text submitted for embedding
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
