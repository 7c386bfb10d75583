package assess

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vita/internal/assessment"
	"github.com/abhisek/vita/internal/catalog"
	"github.com/abhisek/vita/internal/estimate"
	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/router"
	"github.com/abhisek/vita/internal/screen"
	"github.com/abhisek/vita/internal/screens/results"
	"github.com/abhisek/vita/internal/store"
)

type fakeDraftRepo struct {
	draft    store.Draft
	hasDraft bool
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
	return nil
}
func (f *fakeDraftRepo) Clear(_ context.Context) error {
	f.hasDraft = false
	return nil
}

type fakeHistoryRepo struct {
	entries []health.HistoricalEntry
}

func (f *fakeHistoryRepo) Load(_ context.Context) []health.HistoricalEntry { return f.entries }
func (f *fakeHistoryRepo) Append(_ context.Context, e health.HistoricalEntry) error {
	f.entries = append(f.entries, e)
	return nil
}
func (f *fakeHistoryRepo) Clear(_ context.Context) error {
	f.entries = nil
	return nil
}

// stubEstimator returns a fixed result.
type stubEstimator struct {
	result *health.HealthResult
	err    error
	calls  int
}

func (s *stubEstimator) Estimate(_ context.Context, _ health.Answers) (*health.HealthResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func fixedResult(score int) *health.HealthResult {
	return &health.HealthResult{
		OverallScore:        score,
		Summary:             "Looking good overall.",
		PositivePoints:      []health.ResultPoint{{Point: "Solid sleep", Category: "sleep"}},
		AreasForImprovement: []health.ResultPoint{{Point: "More exercise", Category: "exercise"}},
		HealthTips:          []health.HealthTip{{Category: "exercise", Tip: "Take a walk."}},
		Disclaimer:          estimate.Disclaimer,
	}
}

func testScreen(est estimate.Estimator, history *fakeHistoryRepo) (*AssessScreen, *assessment.Workflow) {
	wf := assessment.New(context.Background(), &fakeDraftRepo{}, history)
	s := New(wf, est, func(entry *health.HistoricalEntry) screen.Screen {
		return results.New(history, entry, func() screen.Screen { return nil })
	})
	return s, wf
}

// collectMsgs runs a command tree and gathers every produced message.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(t, c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// answerCurrent selects the option under the cursor on the current step.
func answerCurrent(t *testing.T, s *AssessScreen) *AssessScreen {
	t.Helper()
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	return scr.(*AssessScreen)
}

func TestAssessScreen_SelectionRecordsAnswer(t *testing.T) {
	s, wf := testScreen(&stubEstimator{result: fixedResult(60)}, &fakeHistoryRepo{})

	scr, _ := s.Update(specialKey(tea.KeyDown))
	s = scr.(*AssessScreen)
	s = answerCurrent(t, s)

	want := catalog.Questions[0].Options[1]
	if got := wf.CurrentAnswer(); got != want {
		t.Fatalf("expected answer %q, got %q", want, got)
	}
	if !s.choices.Flash {
		t.Fatal("expected selection highlight after choosing")
	}
}

func TestAssessScreen_FeedbackClearIgnoresStaleTimer(t *testing.T) {
	s, _ := testScreen(&stubEstimator{result: fixedResult(60)}, &fakeHistoryRepo{})

	s = answerCurrent(t, s)
	staleSeq := s.feedbackSeq

	// Moving to the next step invalidates the pending highlight timer.
	scr, _ := s.Update(specialKey(tea.KeyRight))
	s = scr.(*AssessScreen)
	s.choices.Flash = true

	scr, _ = s.Update(feedbackClearMsg{Seq: staleSeq})
	s = scr.(*AssessScreen)
	if !s.choices.Flash {
		t.Fatal("stale feedback timer must not clear a newer highlight")
	}
}

func TestAssessScreen_NextRefusedWithoutAnswer(t *testing.T) {
	s, wf := testScreen(&stubEstimator{result: fixedResult(60)}, &fakeHistoryRepo{})

	scr, _ := s.Update(specialKey(tea.KeyRight))
	s = scr.(*AssessScreen)

	if wf.Step() != 0 {
		t.Fatalf("expected to stay on step 0, got %d", wf.Step())
	}
}

func TestAssessScreen_FullRunRecordsResult(t *testing.T) {
	est := &stubEstimator{result: fixedResult(72)}
	history := &fakeHistoryRepo{}
	s, wf := testScreen(est, history)

	// Answer all questions, advancing between steps.
	for i := 0; i < len(catalog.Questions); i++ {
		s = answerCurrent(t, s)
		if i < len(catalog.Questions)-1 {
			scr, _ := s.Update(specialKey(tea.KeyRight))
			s = scr.(*AssessScreen)
		}
	}
	if !wf.IsLastStep() || !wf.StepAnswered() {
		t.Fatal("expected completed questionnaire")
	}

	// Final → starts the submission.
	scr, cmd := s.Update(specialKey(tea.KeyRight))
	s = scr.(*AssessScreen)
	if wf.Phase() != assessment.PhaseSubmitting {
		t.Fatalf("expected PhaseSubmitting, got %d", wf.Phase())
	}

	// Keys are ignored while the request is in flight.
	scr, _ = s.Update(specialKey(tea.KeyDown))
	s = scr.(*AssessScreen)

	// Run the submit command and feed the completion back in.
	var done *estimateDoneMsg
	for _, msg := range collectMsgs(t, cmd) {
		if m, ok := msg.(estimateDoneMsg); ok {
			done = &m
		}
	}
	if done == nil {
		t.Fatal("expected estimateDoneMsg from submit command")
	}
	if est.calls != 1 {
		t.Fatalf("expected exactly one estimation attempt, got %d", est.calls)
	}

	scr, cmd = s.Update(*done)
	s = scr.(*AssessScreen)

	if len(history.entries) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(history.entries))
	}
	if history.entries[0].Score != 72 {
		t.Fatalf("expected recorded score 72, got %d", history.entries[0].Score)
	}

	// The screen hands off to the results screen showing the new score.
	var replace *router.ReplaceScreenMsg
	for _, msg := range collectMsgs(t, cmd) {
		if m, ok := msg.(router.ReplaceScreenMsg); ok {
			replace = &m
		}
	}
	if replace == nil {
		t.Fatal("expected ReplaceScreenMsg after completion")
	}

	res := replace.Screen
	for _, msg := range collectMsgs(t, res.Init()) {
		res, _ = res.Update(msg)
	}
	if view := res.View(100, 40); !strings.Contains(view, "72") {
		t.Fatal("results view should display the new score")
	}
}

func TestAssessScreen_FailureKeepsAnswers(t *testing.T) {
	est := &stubEstimator{err: estimate.ErrEstimation}
	history := &fakeHistoryRepo{}
	s, wf := testScreen(est, history)

	for i := 0; i < len(catalog.Questions); i++ {
		s = answerCurrent(t, s)
		if i < len(catalog.Questions)-1 {
			scr, _ := s.Update(specialKey(tea.KeyRight))
			s = scr.(*AssessScreen)
		}
	}

	scr, cmd := s.Update(specialKey(tea.KeyRight))
	s = scr.(*AssessScreen)

	for _, msg := range collectMsgs(t, cmd) {
		if m, ok := msg.(estimateDoneMsg); ok {
			scr, _ = s.Update(m)
			s = scr.(*AssessScreen)
		}
	}

	if wf.Phase() != assessment.PhaseFailed {
		t.Fatalf("expected PhaseFailed, got %d", wf.Phase())
	}
	if len(history.entries) != 0 {
		t.Fatal("failed estimation must not record history")
	}

	// Any key returns to the questionnaire with answers intact.
	scr, _ = s.Update(specialKey(tea.KeyEnter))
	s = scr.(*AssessScreen)
	if wf.Phase() != assessment.PhaseAsking {
		t.Fatalf("expected PhaseAsking after dismissing failure, got %d", wf.Phase())
	}
	if !wf.IsLastStep() || !wf.StepAnswered() {
		t.Fatal("answers should survive a failed estimation")
	}
}

func TestAssessScreen_ViewShowsQuestion(t *testing.T) {
	s, _ := testScreen(&stubEstimator{result: fixedResult(60)}, &fakeHistoryRepo{})

	view := s.View(100, 40)
	if !strings.Contains(view, "Question 1 of 9") {
		t.Error("expected step tracker in view")
	}
	if !strings.Contains(view, catalog.Questions[0].Options[0]) {
		t.Error("expected first question options in view")
	}
}
