// Package assess implements the questionnaire wizard screen.
package assess

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vita/internal/assessment"
	"github.com/abhisek/vita/internal/catalog"
	"github.com/abhisek/vita/internal/estimate"
	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/router"
	"github.com/abhisek/vita/internal/screen"
	"github.com/abhisek/vita/internal/ui/components"
	"github.com/abhisek/vita/internal/ui/layout"
)

// feedbackDuration is how long a fresh selection stays highlighted.
const feedbackDuration = 500 * time.Millisecond

// ResultsFactory builds the screen shown after a successful estimation.
// Injected by the app so this package does not depend on the results screen.
type ResultsFactory func(entry *health.HistoricalEntry) screen.Screen

// AssessScreen drives the step wizard and the estimation submission.
type AssessScreen struct {
	workflow    *assessment.Workflow
	estimator   estimate.Estimator
	makeResults ResultsFactory

	choices     components.ChoiceList
	feedbackSeq int
	spinner     spinner.Model
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)

// New creates the wizard screen over an existing workflow. The workflow may
// carry restored draft state; the cursor lands on the saved answer.
func New(workflow *assessment.Workflow, estimator estimate.Estimator, makeResults ResultsFactory) *AssessScreen {
	s := &AssessScreen{
		workflow:    workflow,
		estimator:   estimator,
		makeResults: makeResults,
		spinner:     spinner.New(),
	}
	s.spinner.Spinner = spinner.MiniDot
	s.syncChoices()
	return s
}

func (s *AssessScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessScreen) Title() string {
	return "Assessment"
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	switch s.workflow.Phase() {
	case assessment.PhaseSubmitting:
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case assessment.PhaseFailed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to questions"},
			{Key: "R", Description: "Start over"},
		}
	}

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
	}
	if s.workflow.Step() > 0 {
		hints = append(hints, layout.KeyHint{Key: "←", Description: "Back"})
	}
	if s.workflow.IsLastStep() {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Get estimate"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "→", Description: "Next"})
	}
	return hints
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case estimateDoneMsg:
		return s.handleEstimateDone(msg)

	case feedbackClearMsg:
		if msg.Seq == s.feedbackSeq {
			s.choices.Flash = false
		}
		return s, nil

	case spinner.TickMsg:
		if s.workflow.Phase() != assessment.PhaseSubmitting {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *AssessScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	switch s.workflow.Phase() {
	case assessment.PhaseSubmitting:
		// Ignore everything while the request is in flight.
		return s, nil

	case assessment.PhaseFailed:
		switch msg.String() {
		case "r", "R":
			s.workflow.Reset(ctx)
			s.syncChoices()
			return s, nil
		default:
			s.workflow.Retry()
			s.syncChoices()
			return s, nil
		}
	}

	switch msg.String() {
	case "left", "h":
		if s.workflow.Back(ctx) {
			s.syncChoices()
		}
		return s, nil

	case "right", "l", "n":
		if s.workflow.IsLastStep() {
			return s.beginSubmit()
		}
		if s.workflow.Next(ctx) {
			s.syncChoices()
		}
		return s, nil
	}

	updated, chose := s.choices.Update(msg)
	s.choices = updated
	if chose {
		s.workflow.Answer(ctx, s.choices.ChosenOption())
		s.choices.Flash = true
		s.feedbackSeq++
		return s, s.feedbackTimer(s.feedbackSeq)
	}

	return s, nil
}

// beginSubmit starts the estimation request. The workflow refuses until the
// questionnaire is complete, so an early → on the last step is a no-op.
func (s *AssessScreen) beginSubmit() (screen.Screen, tea.Cmd) {
	if err := s.workflow.BeginSubmit(); err != nil {
		return s, nil
	}

	answers := s.workflow.Answers()
	estimator := s.estimator

	submit := func() tea.Msg {
		result, err := estimator.Estimate(context.Background(), answers)
		return estimateDoneMsg{Result: result, Err: err}
	}

	return s, tea.Batch(submit, s.spinner.Tick)
}

func (s *AssessScreen) handleEstimateDone(msg estimateDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.workflow.FailSubmit(msg.Err.Error())
		return s, nil
	}

	entry := s.workflow.CompleteSubmit(context.Background(), msg.Result)
	if entry == nil {
		return s, nil
	}

	results := s.makeResults(entry)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results}
	}
}

// syncChoices rebuilds the option list for the current step and invalidates
// any pending selection highlight from the previous step.
func (s *AssessScreen) syncChoices() {
	q := s.workflow.Question()
	s.choices = components.NewChoiceList(q.Options, s.workflow.CurrentAnswer())
	s.feedbackSeq++
}

func (s *AssessScreen) feedbackTimer(seq int) tea.Cmd {
	return tea.Tick(feedbackDuration, func(time.Time) tea.Msg {
		return feedbackClearMsg{Seq: seq}
	})
}

// totalSteps is the questionnaire length.
func totalSteps() int {
	return len(catalog.Questions)
}
