package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vita/internal/catalog"
	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/ui/components"
	"github.com/abhisek/vita/internal/ui/theme"
)

func (s *ResultsScreen) View(width, height int) string {
	entry := s.viewedEntry()
	if entry == nil {
		if !s.loaded {
			return lipgloss.NewStyle().
				Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
				Render("\n\n  Loading results...")
		}
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No results yet. Press R to take the assessment.")
	}

	if s.confirmClear {
		return s.renderConfirmClear(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	// Entry cycling indicator.
	if len(s.entries) > 1 {
		pos := fmt.Sprintf("◂ %s ▸  (%d/%d)", entry.Date, s.viewing+1, len(s.entries))
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(pos))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(entry.Date))
		b.WriteString("\n")
	}

	gauge := components.NewScoreGauge(entry.Result.OverallScore, min(width-8, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, gauge.View()))
	b.WriteString("\n\n")

	summary := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(min(width-8, 70)).
		Render(entry.Result.Summary)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, summary))
	b.WriteString("\n\n")

	cols := s.renderPointColumns(entry, width)
	b.WriteString(cols)

	if len(entry.Result.HealthTips) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderTips(entry, width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.renderTrend(width))
	b.WriteString("\n")

	disclaimer := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(min(width-8, 70)).
		Render(entry.Result.Disclaimer)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, disclaimer))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Accent).Bold(true).
			Render(s.notice))
	}

	return b.String()
}

// renderPointColumns renders positives and improvements side by side when
// the terminal is wide enough, stacked otherwise.
func (s *ResultsScreen) renderPointColumns(entry *health.HistoricalEntry, width int) string {
	pos := s.renderPoints("What's going well", entry.Result.PositivePoints, theme.Success, width)
	imp := s.renderPoints("Areas for improvement", entry.Result.AreasForImprovement, theme.Accent, width)

	if width >= 100 {
		row := lipgloss.JoinHorizontal(lipgloss.Top, pos, "    ", imp)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, pos) + "\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, imp)
}

func (s *ResultsScreen) renderPoints(title string, points []health.ResultPoint, titleColor color.Color, width int) string {
	colWidth := min((width-12)/2, 44)
	if width < 100 {
		colWidth = min(width-8, 60)
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(titleColor).Bold(true).Render(title))
	b.WriteString("\n")
	if len(points) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("  Nothing noted."))
		b.WriteString("\n")
	}
	for _, p := range points {
		line := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(colWidth).
			Render(fmt.Sprintf("%s %s", catalog.IconFor(p.Category), p.Point))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ResultsScreen) renderTips(entry *health.HistoricalEntry, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Tips"))
	b.WriteString("\n")
	for _, t := range entry.Result.HealthTips {
		line := lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(min(width-8, 70)).
			Render(fmt.Sprintf("%s %s: %s", catalog.IconFor(t.Category), t.Category, t.Tip))
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// renderTrend shows the score history chart, or a placeholder until there
// are at least two results to compare.
func (s *ResultsScreen) renderTrend(width int) string {
	if len(s.entries) < 2 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Complete more assessments to see your trend.")
	}

	points := make([]components.TrendPoint, len(s.entries))
	for i, e := range s.entries {
		points[i] = components.TrendPoint{Label: e.Date, Value: e.Score}
	}

	chart := components.NewTrendChart(points, 4)
	title := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Score trend")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title+"\n"+chart.View())
}

func (s *ResultsScreen) renderConfirmClear(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render("Clear all assessment history?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render("This cannot be undone."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Error).
		Render("[Y] Yes, clear it"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).
		Render("[N] No, keep it"))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
