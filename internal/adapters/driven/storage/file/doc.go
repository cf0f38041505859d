// Package file persists the index state as JSON blobs on disk:
// the content hash map, the processed-page set, and the corpus
// graph each live in their own file and are replaced atomically
// on save.
package file
