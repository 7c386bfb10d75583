package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vita/internal/ui/theme"
)

// ChoiceList is a single-select option list. One option can be marked as
// chosen; moving the cursor never changes the chosen option until Enter.
type ChoiceList struct {
	Options []string
	Cursor  int
	Chosen  int  // index of the committed selection, -1 for none
	Flash   bool // highlight the chosen option briefly after selection
}

// NewChoiceList creates a ChoiceList. chosen is the committed option label,
// or "" for none; the cursor starts on the chosen option when present.
func NewChoiceList(options []string, chosen string) ChoiceList {
	c := ChoiceList{
		Options: options,
		Chosen:  -1,
	}
	for i, opt := range options {
		if opt == chosen {
			c.Chosen = i
			c.Cursor = i
			break
		}
	}
	return c
}

// Update handles keyboard navigation. Enter commits the cursor position and
// returns chose=true.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
		return c, true
	}

	return c, false
}

// ChosenOption returns the committed option label, or "".
func (c ChoiceList) ChosenOption() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the option list.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "( )"
		if i == c.Chosen {
			marker = "(•)"
		}

		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s", prefix, marker, opt)

		switch {
		case i == c.Chosen && c.Flash:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == c.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
