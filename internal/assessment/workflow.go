// Package assessment drives the questionnaire lifecycle: answering the
// step wizard, submitting for estimation, and recording completed results
// into history. Progress persists across restarts via the draft repo.
package assessment

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vita/internal/catalog"
	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/store"
)

// Phase represents the current phase of the assessment.
type Phase int

const (
	PhaseAsking      Phase = iota // Stepping through the questionnaire
	PhaseSubmitting               // Estimation request in flight
	PhaseResultReady              // Estimation received, result available
	PhaseFailed                   // Estimation failed, answers retained
)

// Workflow tracks the runtime state of one assessment pass. It is not safe
// for concurrent use; the UI drives it from a single update loop.
type Workflow struct {
	drafts  store.DraftRepo
	history store.HistoryRepo

	step    int
	answers health.Answers
	phase   Phase

	result *health.HealthResult
	errMsg string
}

// New creates a Workflow, restoring any in-progress draft. A corrupt or
// missing draft yields a fresh assessment at step zero.
func New(ctx context.Context, drafts store.DraftRepo, history store.HistoryRepo) *Workflow {
	draft := drafts.Load(ctx)

	step := draft.Step
	if step < 0 || step >= len(catalog.Questions) {
		step = 0
	}

	answers := make(health.Answers, len(draft.Answers))
	for id, option := range draft.Answers {
		// Discard answers that no longer match the questionnaire.
		if catalog.HasOption(id, option) {
			answers[id] = option
		}
	}

	return &Workflow{
		drafts:  drafts,
		history: history,
		step:    step,
		answers: answers,
		phase:   PhaseAsking,
	}
}

// Phase returns the current phase.
func (w *Workflow) Phase() Phase { return w.phase }

// Step returns the zero-based index of the current question.
func (w *Workflow) Step() int { return w.step }

// Question returns the question at the current step.
func (w *Workflow) Question() catalog.Question {
	return catalog.Questions[w.step]
}

// Answers returns a snapshot of the answers given so far.
func (w *Workflow) Answers() health.Answers { return w.answers.Clone() }

// Result returns the estimation result, or nil before PhaseResultReady.
func (w *Workflow) Result() *health.HealthResult { return w.result }

// ErrMsg returns the failure message, or "" outside PhaseFailed.
func (w *Workflow) ErrMsg() string { return w.errMsg }

// CurrentAnswer returns the selected option for the current question,
// or "" if none is selected yet.
func (w *Workflow) CurrentAnswer() string {
	return w.answers[w.Question().ID]
}

// StepAnswered reports whether the current question has a selection.
func (w *Workflow) StepAnswered() bool {
	return w.CurrentAnswer() != ""
}

// IsLastStep reports whether the current question is the final one.
func (w *Workflow) IsLastStep() bool {
	return w.step == len(catalog.Questions)-1
}

// Answer records the selection for the current question. Unknown options
// are ignored.
func (w *Workflow) Answer(ctx context.Context, option string) {
	if w.phase != PhaseAsking {
		return
	}
	q := w.Question()
	if !catalog.HasOption(q.ID, option) {
		return
	}
	w.answers[q.ID] = option
	w.saveDraft(ctx)
}

// Next advances to the following question. It refuses to advance when the
// current question is unanswered or already at the last step.
func (w *Workflow) Next(ctx context.Context) bool {
	if w.phase != PhaseAsking || !w.StepAnswered() || w.IsLastStep() {
		return false
	}
	w.step++
	w.saveDraft(ctx)
	return true
}

// Back moves to the previous question. Selections are kept.
func (w *Workflow) Back(ctx context.Context) bool {
	if w.phase != PhaseAsking || w.step == 0 {
		return false
	}
	w.step--
	w.saveDraft(ctx)
	return true
}

// BeginSubmit transitions to PhaseSubmitting. It refuses unless the wizard
// is on the last step with an answer selected.
func (w *Workflow) BeginSubmit() error {
	if w.phase != PhaseAsking {
		return fmt.Errorf("cannot submit in phase %d", w.phase)
	}
	if !w.IsLastStep() || !w.StepAnswered() {
		return fmt.Errorf("questionnaire incomplete")
	}
	w.phase = PhaseSubmitting
	w.errMsg = ""
	return nil
}

// CompleteSubmit records a successful estimation: the result becomes a new
// history entry and the draft is cleared so the next run starts fresh.
func (w *Workflow) CompleteSubmit(ctx context.Context, result *health.HealthResult) *health.HistoricalEntry {
	if w.phase != PhaseSubmitting {
		return nil
	}

	now := time.Now()
	entry := health.HistoricalEntry{
		ID:      fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8]),
		Date:    now.Format("Jan 2"),
		Score:   result.OverallScore,
		Result:  *result,
		Answers: w.answers.Clone(),
	}

	if err := w.history.Append(ctx, entry); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record assessment in history: %v\n", err)
	}
	if err := w.drafts.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clear assessment draft: %v\n", err)
	}

	w.result = result
	w.phase = PhaseResultReady
	return &entry
}

// FailSubmit transitions to PhaseFailed. Answers and the draft are kept so
// the user can retry without re-answering.
func (w *Workflow) FailSubmit(msg string) {
	if w.phase != PhaseSubmitting {
		return
	}
	w.errMsg = msg
	w.phase = PhaseFailed
}

// Retry returns a failed assessment to PhaseAsking with answers intact.
func (w *Workflow) Retry() {
	if w.phase != PhaseFailed {
		return
	}
	w.errMsg = ""
	w.phase = PhaseAsking
}

// Reset discards all progress and returns to the first question. Calling
// it repeatedly is harmless.
func (w *Workflow) Reset(ctx context.Context) {
	w.step = 0
	w.answers = make(health.Answers)
	w.result = nil
	w.errMsg = ""
	w.phase = PhaseAsking
	if err := w.drafts.Clear(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to clear assessment draft: %v\n", err)
	}
}

// saveDraft persists the current step and answers. Persistence failures are
// reported but never interrupt the assessment.
func (w *Workflow) saveDraft(ctx context.Context) {
	draft := store.Draft{
		Step:    w.step,
		Answers: w.answers.Clone(),
	}
	if err := w.drafts.Save(ctx, draft); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to save assessment draft: %v\n", err)
	}
}
