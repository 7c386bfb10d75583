package assess

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vita/internal/assessment"
	"github.com/abhisek/vita/internal/ui/components"
	"github.com/abhisek/vita/internal/ui/theme"
)

func (s *AssessScreen) View(width, height int) string {
	switch s.workflow.Phase() {
	case assessment.PhaseSubmitting:
		return s.renderSubmitting(width)
	case assessment.PhaseFailed:
		return s.renderFailed(width)
	}
	return s.renderQuestion(width)
}

func (s *AssessScreen) renderQuestion(width int) string {
	q := s.workflow.Question()

	var b strings.Builder
	b.WriteString("\n")

	tracker := components.StepTracker(s.workflow.Step(), totalSteps(), min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tracker))
	b.WriteString("\n\n")

	icon := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(q.Icon())
	questionText := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 70)).
		Render(q.Text)
	card := theme.Card.Render(icon + "  " + questionText)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))

	if s.workflow.IsLastStep() && s.workflow.StepAnswered() {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Press → to get your health estimate"))
	}

	return b.String()
}

func (s *AssessScreen) renderSubmitting(width int) string {
	frame := s.spinner.View()

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%s Analyzing your answers...", frame)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("This usually takes a few seconds."))

	return b.String()
}

func (s *AssessScreen) renderFailed(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Estimation failed"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(s.workflow.ErrMsg()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your answers are saved. Press any key to go back, or R to start over."))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
