package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vita/internal/ui/theme"
)

// goodScoreThreshold splits the gauge color: green at or above, red below.
const goodScoreThreshold = 50

// ScoreGauge displays a 0-100 health score as a colored bar.
type ScoreGauge struct {
	Score int
	Width int
}

// NewScoreGauge creates a gauge for the given score, clamped to 0-100.
func NewScoreGauge(score, width int) ScoreGauge {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return ScoreGauge{Score: score, Width: width}
}

// View renders the gauge with the numeric score above it.
func (g ScoreGauge) View() string {
	barWidth := g.Width
	if barWidth < 10 {
		barWidth = 10
	}

	fillStyle := theme.GaugeGood
	numStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	if g.Score < goodScoreThreshold {
		fillStyle = theme.GaugeBad
		numStyle = lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	}

	filled := barWidth * g.Score / 100
	empty := barWidth - filled

	bar := fillStyle.Render(strings.Repeat(" ", filled)) +
		theme.GaugeEmpty.Render(strings.Repeat(" ", empty))

	num := numStyle.Render(fmt.Sprintf("%d", g.Score)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(" / 100")

	return num + "\n" + bar
}
