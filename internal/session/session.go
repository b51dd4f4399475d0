package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/interview-coach/internal/extract"
)

// State is the lifecycle phase of a session, derived from its fields rather
// than stored.
type State int

const (
	// StateIdle means no posting has been accepted yet.
	StateIdle State = iota
	// StateQuestioning means questions exist and at least one is unanswered.
	StateQuestioning
	// StateCompleted means every question has been answered and the report
	// is pending.
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateQuestioning:
		return "questioning"
	case StateCompleted:
		return "completed"
	default:
		return "idle"
	}
}

// Answer is one recorded question/answer pair. Feedback is the text shown to
// the user when the answer was submitted, cached so the report matches what
// the user saw.
type Answer struct {
	Question string
	Answer   string
	Feedback string
}

// Session tracks one user's progress through a fixed question sequence.
// Invariants between transitions: len(Answers) == CurrentIdx, and
// CurrentIdx <= len(Questions) with equality marking completion.
type Session struct {
	ID         uuid.UUID
	UserID     int64
	JobPosting *extract.JobPosting
	Questions  []string
	CurrentIdx int
	Answers    []Answer
	LastActive time.Time
}

func newSession(userID int64) *Session {
	return &Session{
		ID:         uuid.New(),
		UserID:     userID,
		LastActive: time.Now(),
	}
}

// State derives the lifecycle phase from the session fields.
func (s *Session) State() State {
	switch {
	case len(s.Questions) == 0:
		return StateIdle
	case s.CurrentIdx < len(s.Questions):
		return StateQuestioning
	default:
		return StateCompleted
	}
}

func (s *Session) touch() {
	s.LastActive = time.Now()
}
