package catalog

import (
	"errors"
	"fmt"
)

// ErrAgentNotFound is returned when a lookup references an id that is not
// in the catalog.
var ErrAgentNotFound = errors.New("agent not found")

// InvalidReviewError reports a review rejected at the ingestion boundary.
// It is surfaced to the caller for correction and never retried.
type InvalidReviewError struct {
	Reason string
}

func (e *InvalidReviewError) Error() string {
	return fmt.Sprintf("invalid review: %s", e.Reason)
}
