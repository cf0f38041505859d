// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The indexer is the heart of the package: a sequential
// depth-first traversal that fetches pages, detects content
// changes by fingerprint, embeds what changed, and keeps the
// corpus graph and durable index state current.
package services
