// Package app hosts the root Bubble Tea model: screen routing, the shared
// frame, and theme handling.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/vita/internal/assessment"
	"github.com/abhisek/vita/internal/estimate"
	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/router"
	"github.com/abhisek/vita/internal/screen"
	"github.com/abhisek/vita/internal/screens/assess"
	"github.com/abhisek/vita/internal/screens/results"
	"github.com/abhisek/vita/internal/store"
	"github.com/abhisek/vita/internal/ui/layout"
	"github.com/abhisek/vita/internal/ui/theme"
)

// Options carries the dependencies the app needs.
type Options struct {
	Drafts    store.DraftRepo
	History   store.HistoryRepo
	Prefs     store.PrefsRepo
	Estimator estimate.Estimator
}

// latestScoreMsg refreshes the header score from history.
type latestScoreMsg struct {
	Score int // -1 when no history exists
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	latestScore int
	// themePinned is true once an explicit preference exists; the ambient
	// terminal background no longer overrides it.
	themePinned bool
}

// newAppModel builds the screen graph. The wizard and results screens are
// wired through factories so neither package imports the other.
func newAppModel(opts Options) AppModel {
	ctx := context.Background()
	workflow := assessment.New(ctx, opts.Drafts, opts.History)

	var makeAssess func() screen.Screen
	makeResults := func(entry *health.HistoricalEntry) screen.Screen {
		return results.New(opts.History, entry, func() screen.Screen {
			workflow.Reset(context.Background())
			return makeAssess()
		})
	}
	makeAssess = func() screen.Screen {
		return assess.New(workflow, opts.Estimator, makeResults)
	}

	pinned := false
	switch opts.Prefs.LoadTheme(ctx) {
	case string(theme.ModeLight):
		theme.Apply(theme.ModeLight)
		pinned = true
	case string(theme.ModeDark):
		theme.Apply(theme.ModeDark)
		pinned = true
	}

	return AppModel{
		opts:        opts,
		router:      router.New(makeAssess()),
		latestScore: -1,
		themePinned: pinned,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshScore()}
	if active := m.router.Active(); active != nil {
		cmds = append(cmds, active.Init())
	}
	if !m.themePinned {
		cmds = append(cmds, tea.RequestBackgroundColor)
	}
	return tea.Batch(cmds...)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.BackgroundColorMsg:
		if !m.themePinned {
			if msg.IsDark() {
				theme.Apply(theme.ModeDark)
			} else {
				theme.Apply(theme.ModeLight)
			}
		}
		return m, nil

	case latestScoreMsg:
		m.latestScore = msg.Score
		return m, nil

	case router.ReplaceScreenMsg:
		// Screen handoffs follow completed assessments and retakes, so
		// refresh the header score alongside.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshScore())

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			return m, m.toggleTheme()
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.latestScore, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// refreshScore reads the most recent assessment score for the header.
func (m AppModel) refreshScore() tea.Cmd {
	history := m.opts.History
	return func() tea.Msg {
		entries := history.Load(context.Background())
		if len(entries) == 0 {
			return latestScoreMsg{Score: -1}
		}
		return latestScoreMsg{Score: entries[len(entries)-1].Score}
	}
}

// toggleTheme flips the palette and pins it as an explicit preference.
func (m *AppModel) toggleTheme() tea.Cmd {
	next := theme.ModeDark
	if theme.Current() == theme.ModeDark {
		next = theme.ModeLight
	}
	theme.Apply(next)
	m.themePinned = true

	prefs := m.opts.Prefs
	return func() tea.Msg {
		if err := prefs.SaveTheme(context.Background(), string(next)); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to save theme preference: %v\n", err)
		}
		return nil
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
