package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/interview-coach/internal/extract"
)

// Renderer produces final HTML for a URL, reflecting client-side rendering.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// Generator produces interview questions for a posting and feedback for one
// answer.
type Generator interface {
	Questions(ctx context.Context, posting *extract.JobPosting) ([]string, error)
	Feedback(ctx context.Context, question, answer string, posting *extract.JobPosting) (string, error)
}

// Report is a rendered performance report ready for delivery.
type Report struct {
	FileName string
	Data     []byte
}

// ReportBuilder assembles a completed interview into a rendered document.
type ReportBuilder interface {
	Build(ctx context.Context, posting *extract.JobPosting, answers []Answer) (*Report, error)
}

// Progress describes the active question, or completion when Done is set.
type Progress struct {
	Question string
	Number   int // 1-based
	Total    int
	Done     bool
}

// Engine drives the interview state machine. It is the sole owner of the
// session store; collaborator failures are converted to typed errors here
// and never leave a session half-mutated.
type Engine struct {
	store        *Store
	renderer     Renderer
	generator    Generator
	reports      ReportBuilder
	minQuestions int
	log          *zap.Logger
}

// NewEngine wires the engine to its collaborators. minQuestions is the
// smallest usable question count accepted from generation (at least 1).
func NewEngine(store *Store, renderer Renderer, generator Generator, reports ReportBuilder, minQuestions int, log *zap.Logger) *Engine {
	if minQuestions < 1 {
		minQuestions = 1
	}
	return &Engine{
		store:        store,
		renderer:     renderer,
		generator:    generator,
		reports:      reports,
		minQuestions: minQuestions,
		log:          log,
	}
}

// Start resets or creates a fresh session for the user. Idempotent per call.
func (e *Engine) Start(userID int64) *Session {
	sess := e.store.Reset(userID)
	e.log.Info("session started",
		zap.Int64("user_id", userID),
		zap.String("session_id", sess.ID.String()))
	return sess
}

// SubmitURL renders and extracts the posting, generates questions and
// transitions the session to questioning. On any failure the session is left
// exactly as it was.
func (e *Engine) SubmitURL(ctx context.Context, userID int64, url string) (*extract.JobPosting, error) {
	sess := e.store.GetOrCreate(userID)

	html, err := e.renderer.Render(ctx, url)
	if err != nil {
		return nil, &NoContentError{Reason: "page could not be rendered", Cause: err}
	}

	posting, err := extract.Extract(html, url)
	if err != nil {
		return nil, err
	}

	questions, err := e.generator.Questions(ctx, posting)
	if err != nil {
		return nil, err
	}
	if len(questions) < e.minQuestions {
		return nil, &NoContentError{Reason: "not enough detail to generate questions"}
	}

	sess.JobPosting = posting
	sess.Questions = questions
	sess.CurrentIdx = 0
	sess.Answers = nil
	sess.touch()

	e.log.Info("posting accepted",
		zap.Int64("user_id", userID),
		zap.String("title", posting.Title),
		zap.Int("questions", len(questions)))

	return posting, nil
}

// CurrentQuestion returns the question at the session pointer, or a
// completion signal once every question has been answered.
func (e *Engine) CurrentQuestion(userID int64) (*Progress, error) {
	sess, ok := e.store.Get(userID)
	if !ok {
		return nil, &NoSessionError{UserID: userID}
	}

	switch sess.State() {
	case StateIdle:
		return nil, &NoActiveQuestionError{UserID: userID}
	case StateCompleted:
		return &Progress{Total: len(sess.Questions), Done: true}, nil
	default:
		return &Progress{
			Question: sess.Questions[sess.CurrentIdx],
			Number:   sess.CurrentIdx + 1,
			Total:    len(sess.Questions),
		}, nil
	}
}

// SubmitAnswer records an answer for the active question and returns the
// generated feedback plus whether the interview is now complete. The answer
// is committed and the pointer advanced only after feedback generation
// succeeds, so a failed submission can be retried without duplicating
// entries.
func (e *Engine) SubmitAnswer(ctx context.Context, userID int64, answer string) (string, bool, error) {
	sess, ok := e.store.Get(userID)
	if !ok || sess.State() != StateQuestioning {
		return "", false, &NoActiveQuestionError{UserID: userID}
	}

	question := sess.Questions[sess.CurrentIdx]
	feedback, err := e.generator.Feedback(ctx, question, answer, sess.JobPosting)
	if err != nil {
		return "", false, err
	}

	sess.Answers = append(sess.Answers, Answer{
		Question: question,
		Answer:   answer,
		Feedback: feedback,
	})
	sess.CurrentIdx++
	sess.touch()

	done := sess.State() == StateCompleted
	e.log.Info("answer recorded",
		zap.Int64("user_id", userID),
		zap.Int("question", sess.CurrentIdx),
		zap.Int("total", len(sess.Questions)),
		zap.Bool("done", done))

	return feedback, done, nil
}

// Finalize assembles the report for a completed session and removes the
// session from the store. After a successful finalize the session is no
// longer addressable; on failure it stays intact for a retry.
func (e *Engine) Finalize(ctx context.Context, userID int64) (*Report, error) {
	sess, ok := e.store.Get(userID)
	if !ok {
		return nil, &NoSessionError{UserID: userID}
	}
	if sess.State() != StateCompleted {
		return nil, &NotCompletedError{Answered: len(sess.Answers), Total: len(sess.Questions)}
	}

	report, err := e.reports.Build(ctx, sess.JobPosting, sess.Answers)
	if err != nil {
		return nil, err
	}

	e.store.Delete(userID)
	e.log.Info("session finalized",
		zap.Int64("user_id", userID),
		zap.String("session_id", sess.ID.String()),
		zap.String("report", report.FileName))

	return report, nil
}
