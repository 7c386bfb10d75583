// Package results displays an estimation result with the score trend and
// report actions.
package results

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/atotto/clipboard"

	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/router"
	"github.com/abhisek/vita/internal/screen"
	"github.com/abhisek/vita/internal/store"
	"github.com/abhisek/vita/internal/ui/layout"
)

// noticeDuration is how long transient action notices stay visible.
const noticeDuration = 2 * time.Second

type historyLoadedMsg struct {
	Entries []health.HistoricalEntry
}

type noticeClearMsg struct {
	Seq int
}

// RetakeFactory builds a fresh wizard screen. Injected by the app so this
// package does not depend on the wizard screen.
type RetakeFactory func() screen.Screen

// ResultsScreen shows one assessment result and the history around it.
type ResultsScreen struct {
	history    store.HistoryRepo
	makeRetake RetakeFactory

	// current is shown before history finishes loading, and anchors the
	// viewed index once it does.
	current *health.HistoricalEntry

	entries      []health.HistoricalEntry
	viewing      int
	loaded       bool
	confirmClear bool
	notice       string
	noticeSeq    int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen anchored on the given entry. Pass the entry
// just recorded after an assessment, or nil to simply browse history.
func New(history store.HistoryRepo, entry *health.HistoricalEntry, makeRetake RetakeFactory) *ResultsScreen {
	return &ResultsScreen{
		history:    history,
		makeRetake: makeRetake,
		current:    entry,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		entries := s.history.Load(context.Background())
		return historyLoadedMsg{Entries: entries}
	}
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.confirmClear {
		return []layout.KeyHint{
			{Key: "Y", Description: "Clear history"},
			{Key: "N", Description: "Keep it"},
		}
	}
	hints := []layout.KeyHint{}
	if len(s.entries) > 1 {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Past results"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "R", Description: "Retake"},
		layout.KeyHint{Key: "C", Description: "Copy"},
		layout.KeyHint{Key: "S", Description: "Save report"},
		layout.KeyHint{Key: "X", Description: "Clear history"},
	)
	return hints
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.entries = msg.Entries
		s.loaded = true
		s.viewing = len(s.entries) - 1
		if s.current != nil {
			for i := range s.entries {
				if s.entries[i].ID == s.current.ID {
					s.viewing = i
					break
				}
			}
		}
		return s, nil

	case noticeClearMsg:
		if msg.Seq == s.noticeSeq {
			s.notice = ""
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmClear {
		switch msg.String() {
		case "y", "Y":
			s.confirmClear = false
			if err := s.history.Clear(context.Background()); err != nil {
				return s, s.showNotice("Could not clear history")
			}
			s.entries = nil
			s.viewing = -1
			return s, s.showNotice("History cleared")
		case "n", "N", "esc":
			s.confirmClear = false
		}
		return s, nil
	}

	switch msg.String() {
	case "left", "h":
		if s.viewing > 0 {
			s.viewing--
		}
		return s, nil

	case "right", "l":
		if s.viewing < len(s.entries)-1 {
			s.viewing++
		}
		return s, nil

	case "r", "R":
		retake := s.makeRetake()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: retake}
		}

	case "c", "C":
		entry := s.viewedEntry()
		if entry == nil {
			return s, nil
		}
		if err := clipboard.WriteAll(buildReport(entry)); err != nil {
			return s, s.showNotice("Could not copy to clipboard")
		}
		return s, s.showNotice("Report copied to clipboard")

	case "s", "S":
		entry := s.viewedEntry()
		if entry == nil {
			return s, nil
		}
		path, err := saveReport(entry)
		if err != nil {
			return s, s.showNotice("Could not save report")
		}
		return s, s.showNotice("Saved " + path)

	case "x", "X":
		if len(s.entries) > 0 {
			s.confirmClear = true
		}
		return s, nil
	}

	return s, nil
}

// viewedEntry returns the entry under the cursor, falling back to the
// anchor entry before history has loaded.
func (s *ResultsScreen) viewedEntry() *health.HistoricalEntry {
	if s.viewing >= 0 && s.viewing < len(s.entries) {
		return &s.entries[s.viewing]
	}
	return s.current
}

func (s *ResultsScreen) showNotice(text string) tea.Cmd {
	s.notice = text
	s.noticeSeq++
	seq := s.noticeSeq
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg {
		return noticeClearMsg{Seq: seq}
	})
}

// buildReport renders an entry as a plain text report for copy and save.
func buildReport(entry *health.HistoricalEntry) string {
	var b strings.Builder
	sep := strings.Repeat("─", 52)

	fmt.Fprintf(&b, "Vita Health Report (%s)\n", entry.Date)
	b.WriteString(sep + "\n\n")
	fmt.Fprintf(&b, "Overall score: %d/100\n\n", entry.Result.OverallScore)
	b.WriteString(entry.Result.Summary + "\n\n")

	if len(entry.Result.PositivePoints) > 0 {
		b.WriteString("What's going well:\n")
		for _, p := range entry.Result.PositivePoints {
			fmt.Fprintf(&b, "  + %s\n", p.Point)
		}
		b.WriteString("\n")
	}

	if len(entry.Result.AreasForImprovement) > 0 {
		b.WriteString("Areas for improvement:\n")
		for _, a := range entry.Result.AreasForImprovement {
			fmt.Fprintf(&b, "  - %s\n", a.Point)
		}
		b.WriteString("\n")
	}

	if len(entry.Result.HealthTips) > 0 {
		b.WriteString("Tips:\n")
		for _, t := range entry.Result.HealthTips {
			fmt.Fprintf(&b, "  • %s: %s\n", t.Category, t.Tip)
		}
		b.WriteString("\n")
	}

	b.WriteString(sep + "\n")
	b.WriteString(entry.Result.Disclaimer + "\n")

	return b.String()
}

// saveReport writes the report to a timestamped file in the working
// directory and returns the file name.
func saveReport(entry *health.HistoricalEntry) (string, error) {
	name := fmt.Sprintf("vita-report-%s.txt", time.Now().Format("20060102-150405"))
	if err := os.WriteFile(name, []byte(buildReport(entry)), 0o644); err != nil {
		return "", err
	}
	return name, nil
}
