package assessment

import (
	"context"
	"testing"

	"github.com/abhisek/vita/internal/catalog"
	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/store"
)

// fakeDraftRepo is an in-memory DraftRepo.
type fakeDraftRepo struct {
	draft    store.Draft
	hasDraft bool
	saves    int
}

func (f *fakeDraftRepo) Load(_ context.Context) store.Draft {
	if !f.hasDraft {
		return store.DefaultDraft()
	}
	return f.draft
}

func (f *fakeDraftRepo) Save(_ context.Context, d store.Draft) error {
	f.draft = d
	f.hasDraft = true
	f.saves++
	return nil
}

func (f *fakeDraftRepo) Clear(_ context.Context) error {
	f.draft = store.Draft{}
	f.hasDraft = false
	return nil
}

// fakeHistoryRepo is an in-memory HistoryRepo.
type fakeHistoryRepo struct {
	entries []health.HistoricalEntry
}

func (f *fakeHistoryRepo) Load(_ context.Context) []health.HistoricalEntry { return f.entries }

func (f *fakeHistoryRepo) Append(_ context.Context, entry health.HistoricalEntry) error {
	f.entries = append(f.entries, entry)
	if len(f.entries) > store.MaxHistoryEntries {
		f.entries = f.entries[len(f.entries)-store.MaxHistoryEntries:]
	}
	return nil
}

func (f *fakeHistoryRepo) Clear(_ context.Context) error {
	f.entries = nil
	return nil
}

func newTestWorkflow() (*Workflow, *fakeDraftRepo, *fakeHistoryRepo) {
	drafts := &fakeDraftRepo{}
	history := &fakeHistoryRepo{}
	return New(context.Background(), drafts, history), drafts, history
}

func sampleResult(score int) *health.HealthResult {
	return &health.HealthResult{
		OverallScore:        score,
		Summary:             "ok",
		PositivePoints:      []health.ResultPoint{{Point: "p", Category: "sleep"}},
		AreasForImprovement: []health.ResultPoint{{Point: "a", Category: "stress"}},
		HealthTips:          []health.HealthTip{{Category: "stress", Tip: "t"}},
		Disclaimer:          "d",
	}
}

// answerAll selects the first option for every question and advances to
// the last step.
func answerAll(t *testing.T, w *Workflow) {
	t.Helper()
	ctx := context.Background()
	for i := range catalog.Questions {
		w.Answer(ctx, catalog.Questions[i].Options[0])
		if i < len(catalog.Questions)-1 {
			if !w.Next(ctx) {
				t.Fatalf("Next failed at step %d", i)
			}
		}
	}
}

func TestWorkflow_StartsAtStepZero(t *testing.T) {
	w, _, _ := newTestWorkflow()
	if w.Step() != 0 {
		t.Fatalf("expected step 0, got %d", w.Step())
	}
	if w.Phase() != PhaseAsking {
		t.Fatalf("expected PhaseAsking, got %d", w.Phase())
	}
}

func TestWorkflow_NextRefusesUnanswered(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()

	if w.Next(ctx) {
		t.Fatal("Next should refuse when current question is unanswered")
	}
	if w.Step() != 0 {
		t.Fatalf("step moved to %d despite refusal", w.Step())
	}

	w.Answer(ctx, catalog.Questions[0].Options[1])
	if !w.Next(ctx) {
		t.Fatal("Next should advance after answering")
	}
	if w.Step() != 1 {
		t.Fatalf("expected step 1, got %d", w.Step())
	}
}

func TestWorkflow_BackKeepsSelections(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()

	if w.Back(ctx) {
		t.Fatal("Back should refuse at step 0")
	}

	chosen := catalog.Questions[0].Options[2]
	w.Answer(ctx, chosen)
	w.Next(ctx)
	if !w.Back(ctx) {
		t.Fatal("Back should work from step 1")
	}
	if w.CurrentAnswer() != chosen {
		t.Fatalf("expected retained answer %q, got %q", chosen, w.CurrentAnswer())
	}
}

func TestWorkflow_AnswerRejectsUnknownOption(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()

	w.Answer(ctx, "definitely not a real option")
	if w.StepAnswered() {
		t.Fatal("unknown option should not be recorded")
	}
}

func TestWorkflow_DraftPersistsProgress(t *testing.T) {
	drafts := &fakeDraftRepo{}
	history := &fakeHistoryRepo{}
	ctx := context.Background()

	w := New(ctx, drafts, history)
	w.Answer(ctx, catalog.Questions[0].Options[0])
	w.Next(ctx)
	w.Answer(ctx, catalog.Questions[1].Options[3])

	// A fresh workflow over the same repos resumes where the first left off.
	w2 := New(ctx, drafts, history)
	if w2.Step() != 1 {
		t.Fatalf("expected resumed step 1, got %d", w2.Step())
	}
	if w2.CurrentAnswer() != catalog.Questions[1].Options[3] {
		t.Fatalf("expected resumed answer, got %q", w2.CurrentAnswer())
	}
}

func TestWorkflow_ResumeDiscardsInvalidDraft(t *testing.T) {
	drafts := &fakeDraftRepo{
		draft: store.Draft{
			Step: 99,
			Answers: health.Answers{
				"exercise":              "Not an option anymore",
				"bogus-id":              "whatever",
				catalog.Questions[3].ID: catalog.Questions[3].Options[0],
			},
		},
		hasDraft: true,
	}
	w := New(context.Background(), drafts, &fakeHistoryRepo{})

	if w.Step() != 0 {
		t.Fatalf("out-of-range step should reset to 0, got %d", w.Step())
	}
	answers := w.Answers()
	if len(answers) != 1 {
		t.Fatalf("expected only the valid answer to survive, got %v", answers)
	}
	if answers[catalog.Questions[3].ID] != catalog.Questions[3].Options[0] {
		t.Fatalf("valid answer lost: %v", answers)
	}
}

func TestWorkflow_BeginSubmitGuards(t *testing.T) {
	w, _, _ := newTestWorkflow()
	ctx := context.Background()

	if err := w.BeginSubmit(); err == nil {
		t.Fatal("BeginSubmit should refuse on first step")
	}

	answerAll(t, w)
	// Clear the final answer: still incomplete.
	if !w.IsLastStep() {
		t.Fatal("expected to be on last step")
	}
	if err := w.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit should succeed when complete: %v", err)
	}
	if w.Phase() != PhaseSubmitting {
		t.Fatalf("expected PhaseSubmitting, got %d", w.Phase())
	}

	// No answering while a request is in flight.
	before := w.CurrentAnswer()
	w.Answer(ctx, catalog.Questions[len(catalog.Questions)-1].Options[1])
	if w.CurrentAnswer() != before {
		t.Fatal("Answer should be ignored during PhaseSubmitting")
	}
}

func TestWorkflow_CompleteSubmitRecordsHistoryAndClearsDraft(t *testing.T) {
	w, drafts, history := newTestWorkflow()
	ctx := context.Background()

	answerAll(t, w)
	if err := w.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}

	entry := w.CompleteSubmit(ctx, sampleResult(72))
	if entry == nil {
		t.Fatal("expected a history entry")
	}
	if entry.Score != 72 {
		t.Fatalf("expected entry score 72, got %d", entry.Score)
	}
	if entry.Date == "" || entry.ID == "" {
		t.Fatalf("entry missing id or date: %+v", entry)
	}
	if len(entry.Answers) != len(catalog.Questions) {
		t.Fatalf("expected full answer snapshot, got %d answers", len(entry.Answers))
	}

	if w.Phase() != PhaseResultReady {
		t.Fatalf("expected PhaseResultReady, got %d", w.Phase())
	}
	if len(history.entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history.entries))
	}
	if drafts.hasDraft {
		t.Fatal("draft should be cleared after a completed submit")
	}
}

func TestWorkflow_FailSubmitKeepsAnswers(t *testing.T) {
	w, drafts, history := newTestWorkflow()

	answerAll(t, w)
	if err := w.BeginSubmit(); err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}

	w.FailSubmit("failed to get health estimation from AI, please try again later")

	if w.Phase() != PhaseFailed {
		t.Fatalf("expected PhaseFailed, got %d", w.Phase())
	}
	if w.ErrMsg() == "" {
		t.Fatal("expected failure message")
	}
	if len(history.entries) != 0 {
		t.Fatal("failed submit must not touch history")
	}
	if !drafts.hasDraft {
		t.Fatal("draft must survive a failed submit")
	}

	// Retry returns to the questionnaire with everything intact.
	w.Retry()
	if w.Phase() != PhaseAsking {
		t.Fatalf("expected PhaseAsking after retry, got %d", w.Phase())
	}
	if !w.IsLastStep() || !w.StepAnswered() {
		t.Fatal("answers should be intact after retry")
	}
	if err := w.BeginSubmit(); err != nil {
		t.Fatalf("resubmit after retry should work: %v", err)
	}
}

func TestWorkflow_ResetIsIdempotent(t *testing.T) {
	w, drafts, _ := newTestWorkflow()
	ctx := context.Background()

	answerAll(t, w)
	w.Reset(ctx)
	w.Reset(ctx)

	if w.Step() != 0 {
		t.Fatalf("expected step 0 after reset, got %d", w.Step())
	}
	if len(w.Answers()) != 0 {
		t.Fatal("expected no answers after reset")
	}
	if w.Phase() != PhaseAsking {
		t.Fatalf("expected PhaseAsking after reset, got %d", w.Phase())
	}
	if drafts.hasDraft {
		t.Fatal("draft should be cleared by reset")
	}
}

func TestWorkflow_HistoryBounded(t *testing.T) {
	history := &fakeHistoryRepo{}
	ctx := context.Background()

	for i := 0; i < store.MaxHistoryEntries+3; i++ {
		drafts := &fakeDraftRepo{}
		w := New(ctx, drafts, history)
		answerAll(t, w)
		if err := w.BeginSubmit(); err != nil {
			t.Fatalf("run %d BeginSubmit: %v", i, err)
		}
		if w.CompleteSubmit(ctx, sampleResult(i)) == nil {
			t.Fatalf("run %d CompleteSubmit returned nil", i)
		}
	}

	if len(history.entries) != store.MaxHistoryEntries {
		t.Fatalf("expected %d entries, got %d", store.MaxHistoryEntries, len(history.entries))
	}
	// Oldest runs evicted, newest retained.
	if history.entries[len(history.entries)-1].Score != store.MaxHistoryEntries+2 {
		t.Fatalf("newest entry score = %d", history.entries[len(history.entries)-1].Score)
	}
}
