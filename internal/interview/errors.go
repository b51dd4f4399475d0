// Package interview adapts the text-generation collaborator into the
// question and feedback generators: it shapes prompts from a job posting and
// sanitizes the free-text responses. The generation itself is opaque.
package interview

import "fmt"

// GenerationError represents a text-generation collaborator failure. It is
// surfaced to the user as-is; session state is never mutated on its account.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generation error: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
