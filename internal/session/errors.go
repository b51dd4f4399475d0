// Package session owns the per-user interview state machine: it sequences
// question delivery, routes answers through feedback generation and drives
// report assembly on completion. The mapping from user id to session is
// owned exclusively by the engine's store; callers serialize per-user access
// externally.
package session

import "fmt"

// NoSessionError indicates no session exists for the user.
type NoSessionError struct {
	UserID int64
}

func (e *NoSessionError) Error() string {
	return fmt.Sprintf("no session for user %d", e.UserID)
}

// NoActiveQuestionError indicates an answer arrived while no question was
// pending: either no URL was submitted yet or the interview is already
// complete. It is user guidance, not a session-corrupting condition.
type NoActiveQuestionError struct {
	UserID int64
}

func (e *NoActiveQuestionError) Error() string {
	return fmt.Sprintf("no active question for user %d", e.UserID)
}

// NoContentError indicates a posting yielded too little detail to run an
// interview: extraction failed its invariants or question generation
// produced fewer usable questions than the configured minimum.
type NoContentError struct {
	Reason string
	Cause  error
}

func (e *NoContentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("insufficient job detail: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("insufficient job detail: %s", e.Reason)
}

func (e *NoContentError) Unwrap() error {
	return e.Cause
}

// NotCompletedError indicates finalize was called before every question was
// answered.
type NotCompletedError struct {
	Answered int
	Total    int
}

func (e *NotCompletedError) Error() string {
	return fmt.Sprintf("interview not complete: %d of %d questions answered", e.Answered, e.Total)
}
