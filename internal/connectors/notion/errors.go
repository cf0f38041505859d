package notion

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jomei/notionapi"
)

// FetchError represents a non-success response from the Notion API.
// It carries the HTTP status and the response body so a failed run
// reports exactly what the source said.
type FetchError struct {
	Status int
	Body   string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("notion: status %d: %s", e.Status, e.Body)
}

// IsNotFound checks if the error indicates a missing or inaccessible page.
// Notion reports pages outside the integration's share scope as not found.
func IsNotFound(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Status == http.StatusNotFound
	}
	return false
}

// IsUnauthorized checks if the error indicates an invalid token.
func IsUnauthorized(err error) bool {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Status == http.StatusUnauthorized
	}
	return false
}

// wrapError converts notionapi errors to FetchError. Errors that did
// not come from an API response (transport failures, cancellation) are
// wrapped with the operation instead.
func wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		return &FetchError{
			Status: apiErr.Status,
			Body:   fmt.Sprintf("(%s) %s", apiErr.Code, apiErr.Message),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
