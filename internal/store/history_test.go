package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/abhisek/vita/internal/health"
)

func testEntry(i int) health.HistoricalEntry {
	return health.HistoricalEntry{
		ID:    fmt.Sprintf("entry-%d", i),
		Date:  "Jul 20",
		Score: 50 + i,
		Result: health.HealthResult{
			OverallScore: 50 + i,
			Summary:      "ok",
		},
		Answers: health.Answers{"exercise": "More than 150 minutes"},
	}
}

func TestHistoryAppendAndLoad(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	if got := repo.Load(ctx); len(got) != 0 {
		t.Fatalf("expected empty history, got %d entries", len(got))
	}

	for i := range 3 {
		if err := repo.Append(ctx, testEntry(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got := repo.Load(ctx)
	if len(got) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got))
	}
	// Oldest first.
	for i, e := range got {
		if e.ID != fmt.Sprintf("entry-%d", i) {
			t.Errorf("entry %d id = %q", i, e.ID)
		}
	}
	if got[2].Result.OverallScore != 52 {
		t.Errorf("score = %d, want 52", got[2].Result.OverallScore)
	}
}

func TestHistoryBoundEvictsOldest(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	for i := range MaxHistoryEntries + 1 {
		if err := repo.Append(ctx, testEntry(i)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got := repo.Load(ctx)
	if len(got) != MaxHistoryEntries {
		t.Fatalf("expected %d entries, got %d", MaxHistoryEntries, len(got))
	}
	// entry-0 evicted, order otherwise preserved.
	if got[0].ID != "entry-1" {
		t.Errorf("first entry = %q, want entry-1", got[0].ID)
	}
	if got[len(got)-1].ID != fmt.Sprintf("entry-%d", MaxHistoryEntries) {
		t.Errorf("last entry = %q", got[len(got)-1].ID)
	}
}

func TestHistoryCorruptReturnsEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	if err := saveRecord(ctx, s.Client(), keyHistory, json.RawMessage(`{"not":"a list"}`)); err != nil {
		t.Fatalf("seed corrupt record: %v", err)
	}

	if got := s.HistoryRepo().Load(ctx); len(got) != 0 {
		t.Errorf("expected empty history, got %d entries", len(got))
	}
}

func TestHistoryClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.HistoryRepo()
	ctx := context.Background()

	if err := repo.Append(ctx, testEntry(0)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := repo.Load(ctx); len(got) != 0 {
		t.Errorf("expected empty history after clear, got %d", len(got))
	}
}

func TestThemeDefaultUnset(t *testing.T) {
	s := openTestStore(t)
	repo := s.PrefsRepo()
	ctx := context.Background()

	if got := repo.LoadTheme(ctx); got != "" {
		t.Errorf("theme = %q, want empty", got)
	}

	if err := repo.SaveTheme(ctx, "dark"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := repo.LoadTheme(ctx); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}

	if err := repo.SaveTheme(ctx, "blue"); err == nil {
		t.Error("expected error for invalid theme")
	}
}
