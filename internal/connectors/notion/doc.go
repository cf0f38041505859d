// Package notion implements the page fetcher for Notion workspaces.
//
// The fetcher retrieves one page per call: its typed properties via the
// pages endpoint and its content blocks via the block children endpoint,
// following pagination cursors so callers always see one ordered block
// list. Blocks are rendered into a flat markdown-like text used for
// fingerprinting and chunking.
//
// # Block Rendering
//
// Paragraphs become plain lines, headings are prefixed by level with
// #/##/###, bulleted list items with "- " and numbered list items with
// "1. ". Child page blocks contribute a "- [title](id)" line and are
// reported as child references for the traversal. Any other block type
// renders as an opaque debug marker rather than being dropped, so the
// fingerprint still changes when such content changes.
//
// # Rate Limiting
//
// All requests pass through a token bucket limiter honouring Notion's
// documented budget of roughly three requests per second. The rate is
// configurable per workspace token.
//
// # Error Handling
//
// Any non-success API response surfaces as a *FetchError carrying the
// HTTP status and the response message. Fetch errors are fatal to an
// index run; the caller decides, the connector never retries on its own.
package notion
