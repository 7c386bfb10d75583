package results

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/screen"
)

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

func entry(id, date string, score int) health.HistoricalEntry {
	return health.HistoricalEntry{
		ID:    id,
		Date:  date,
		Score: score,
		Result: health.HealthResult{
			OverallScore: score,
			Summary:      "Summary for " + id,
			Disclaimer:   "Not medical advice.",
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func loaded(t *testing.T, s *ResultsScreen) *ResultsScreen {
	t.Helper()
	msg := s.Init()()
	scr, _ := s.Update(msg)
	return scr.(*ResultsScreen)
}

func TestResultsScreen_AnchorsOnCurrentEntry(t *testing.T) {
	history := &fakeHistoryRepo{entries: []health.HistoricalEntry{
		entry("a", "Jul 1", 40),
		entry("b", "Jul 8", 55),
		entry("c", "Jul 15", 70),
	}}
	anchor := history.entries[1]

	s := loaded(t, New(history, &anchor, func() screen.Screen { return nil }))

	if s.viewing != 1 {
		t.Fatalf("expected viewing index 1, got %d", s.viewing)
	}
	if got := s.viewedEntry().ID; got != "b" {
		t.Fatalf("expected entry b, got %s", got)
	}
}

func TestResultsScreen_DefaultsToLatestEntry(t *testing.T) {
	history := &fakeHistoryRepo{entries: []health.HistoricalEntry{
		entry("a", "Jul 1", 40),
		entry("b", "Jul 8", 55),
	}}

	s := loaded(t, New(history, nil, func() screen.Screen { return nil }))

	if got := s.viewedEntry().ID; got != "b" {
		t.Fatalf("expected latest entry b, got %s", got)
	}
}

func TestResultsScreen_CyclesThroughHistory(t *testing.T) {
	history := &fakeHistoryRepo{entries: []health.HistoricalEntry{
		entry("a", "Jul 1", 40),
		entry("b", "Jul 8", 55),
	}}

	s := loaded(t, New(history, nil, func() screen.Screen { return nil }))

	scr, _ := s.Update(keyPress('h'))
	s = scr.(*ResultsScreen)
	if got := s.viewedEntry().ID; got != "a" {
		t.Fatalf("expected entry a after left, got %s", got)
	}

	// Left at the oldest entry stays put.
	scr, _ = s.Update(keyPress('h'))
	s = scr.(*ResultsScreen)
	if got := s.viewedEntry().ID; got != "a" {
		t.Fatalf("expected to stay on entry a, got %s", got)
	}

	scr, _ = s.Update(keyPress('l'))
	s = scr.(*ResultsScreen)
	if got := s.viewedEntry().ID; got != "b" {
		t.Fatalf("expected entry b after right, got %s", got)
	}
}

func TestResultsScreen_ClearHistoryNeedsConfirmation(t *testing.T) {
	history := &fakeHistoryRepo{entries: []health.HistoricalEntry{
		entry("a", "Jul 1", 40),
	}}

	s := loaded(t, New(history, nil, func() screen.Screen { return nil }))

	scr, _ := s.Update(keyPress('x'))
	s = scr.(*ResultsScreen)
	if !s.confirmClear {
		t.Fatal("expected confirmation prompt")
	}
	if len(history.entries) != 1 {
		t.Fatal("history must survive until confirmed")
	}

	// Declining keeps everything.
	scr, _ = s.Update(keyPress('n'))
	s = scr.(*ResultsScreen)
	if s.confirmClear || len(history.entries) != 1 {
		t.Fatal("declining must keep history")
	}

	scr, _ = s.Update(keyPress('x'))
	s = scr.(*ResultsScreen)
	scr, _ = s.Update(keyPress('y'))
	s = scr.(*ResultsScreen)
	if len(history.entries) != 0 {
		t.Fatal("confirming must clear history")
	}
	if s.viewedEntry() != nil {
		t.Fatal("no entry should remain after clearing")
	}
}

func TestResultsScreen_StaleNoticeTimerIgnored(t *testing.T) {
	history := &fakeHistoryRepo{entries: []health.HistoricalEntry{
		entry("a", "Jul 1", 40),
	}}

	s := loaded(t, New(history, nil, func() screen.Screen { return nil }))
	s.notice = "second notice"
	s.noticeSeq = 2

	scr, _ := s.Update(noticeClearMsg{Seq: 1})
	s = scr.(*ResultsScreen)
	if s.notice != "second notice" {
		t.Fatal("stale notice timer must not clear a newer notice")
	}
}

func TestBuildReport(t *testing.T) {
	e := entry("a", "Jul 20", 64)
	e.Result.PositivePoints = []health.ResultPoint{{Point: "Good sleep", Category: "sleep"}}
	e.Result.AreasForImprovement = []health.ResultPoint{{Point: "Cut back on alcohol", Category: "alcohol"}}
	e.Result.HealthTips = []health.HealthTip{{Category: "alcohol", Tip: "Try alcohol-free days."}}

	report := buildReport(&e)

	for _, want := range []string{
		"Jul 20",
		"64/100",
		"Good sleep",
		"Cut back on alcohol",
		"Try alcohol-free days.",
		"Not medical advice.",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestResultsScreen_ViewEmptyHistory(t *testing.T) {
	s := loaded(t, New(&fakeHistoryRepo{}, nil, func() screen.Screen { return nil }))

	view := s.View(100, 40)
	if !strings.Contains(view, "No results yet") {
		t.Error("expected empty history placeholder")
	}
}
