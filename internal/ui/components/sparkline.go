package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/vita/internal/ui/theme"
)

// sparkGlyphs are the vertical bar glyphs from shortest to tallest.
var sparkGlyphs = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// TrendPoint is one labeled value on a trend chart.
type TrendPoint struct {
	Label string
	Value int
}

// TrendChart renders a score trend as labeled bar columns, oldest first.
// Values are expected in the 0-100 range.
type TrendChart struct {
	Points []TrendPoint
	Height int // bar height in rows, minimum 1
}

// NewTrendChart creates a trend chart with the given row height.
func NewTrendChart(points []TrendPoint, height int) TrendChart {
	if height < 1 {
		height = 1
	}
	return TrendChart{Points: points, Height: height}
}

// View renders the chart. Each point becomes a two-cell column with its
// label underneath. Returns "" with fewer than two points; a single result
// is not a trend.
func (t TrendChart) View() string {
	if len(t.Points) < 2 {
		return ""
	}

	colWidth := 0
	for _, p := range t.Points {
		if len(p.Label) > colWidth {
			colWidth = len(p.Label)
		}
	}
	if colWidth < 2 {
		colWidth = 2
	}
	colWidth++ // gap between columns

	var rows []string
	for row := t.Height; row >= 1; row-- {
		var b strings.Builder
		for _, p := range t.Points {
			cell := t.cellFor(p.Value, row)
			style := theme.Good
			if p.Value < goodScoreThreshold {
				style = theme.Bad
			}
			b.WriteString(style.Render(cell))
			b.WriteString(strings.Repeat(" ", colWidth-len([]rune(cell))))
		}
		rows = append(rows, b.String())
	}

	var labels strings.Builder
	for _, p := range t.Points {
		labels.WriteString(p.Label)
		labels.WriteString(strings.Repeat(" ", colWidth-len(p.Label)))
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(theme.TextDim).Render(labels.String()))

	return strings.Join(rows, "\n")
}

// cellFor returns the two-glyph cell for value at the given row, where row 1
// is the bottom. Full rows get full blocks; the top partial row gets a glyph
// proportional to the remainder.
func (t TrendChart) cellFor(value, row int) string {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	// Total glyph steps available across all rows.
	steps := value * t.Height * len(sparkGlyphs) / 100
	rowBase := (row - 1) * len(sparkGlyphs)

	switch {
	case steps >= rowBase+len(sparkGlyphs):
		return string([]rune{sparkGlyphs[len(sparkGlyphs)-1], sparkGlyphs[len(sparkGlyphs)-1]})
	case steps <= rowBase:
		return "  "
	default:
		g := sparkGlyphs[steps-rowBase-1]
		return string([]rune{g, g})
	}
}
