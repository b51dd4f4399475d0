package extract

import "fmt"

// ExtractionError indicates that no usable job content could be derived from
// the page. It is terminal for the submitted URL; the caller must retry with
// a different one.
type ExtractionError struct {
	URL    string
	Reason string
	Cause  error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.URL, e.Reason, e.Cause)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.URL, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
