package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// ChangeKind classifies a page's content against the durable hash map.
type ChangeKind string

// Change decisions.
const (
	// ChangeUnseen means the page id has never been indexed.
	ChangeUnseen ChangeKind = "unseen"

	// ChangeModified means the page is known but its content fingerprint
	// differs from the stored one.
	ChangeModified ChangeKind = "modified"

	// ChangeUnchanged means the stored fingerprint matches the fresh one.
	ChangeUnchanged ChangeKind = "unchanged"
)

// String returns the string representation.
func (k ChangeKind) String() string {
	return string(k)
}

// NeedsIndexing returns true if the decision requires the page's content
// to be (re-)embedded.
func (k ChangeKind) NeedsIndexing() bool {
	return k == ChangeUnseen || k == ChangeModified
}

// Fingerprint computes the deterministic content fingerprint for a
// page's flattened text: SHA-256, lowercase hex, fixed width.
func Fingerprint(fullText string) string {
	sum := sha256.Sum256([]byte(fullText))
	return hex.EncodeToString(sum[:])
}
