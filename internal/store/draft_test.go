package store

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhisek/vita/internal/health"
)

func TestDraftRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.DraftRepo()
	ctx := context.Background()

	want := Draft{
		Step: 3,
		Answers: health.Answers{
			"exercise": "30-75 minutes",
			"diet":     "Mostly whole foods",
		},
	}
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := repo.Load(ctx)
	if got.Step != want.Step {
		t.Errorf("step = %d, want %d", got.Step, want.Step)
	}
	if len(got.Answers) != len(want.Answers) {
		t.Fatalf("answers = %v, want %v", got.Answers, want.Answers)
	}
	for k, v := range want.Answers {
		if got.Answers[k] != v {
			t.Errorf("answers[%q] = %q, want %q", k, got.Answers[k], v)
		}
	}
}

func TestDraftLoadMissingReturnsDefault(t *testing.T) {
	s := openTestStore(t)
	repo := s.DraftRepo()

	got := repo.Load(context.Background())
	if got.Step != 0 {
		t.Errorf("step = %d, want 0", got.Step)
	}
	if got.Answers == nil || len(got.Answers) != 0 {
		t.Errorf("answers = %v, want empty map", got.Answers)
	}
}

func TestDraftLoadCorruptReturnsDefault(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{{{`},
		{"step not a number", `{"step":"two","answers":{}}`},
		{"answers null", `{"step":1,"answers":null}`},
		{"missing fields", `{}`},
		{"negative step", `{"step":-1,"answers":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openTestStore(t)
			ctx := context.Background()
			if err := saveRecord(ctx, s.Client(), keyProgress, json.RawMessage(tt.raw)); err != nil {
				t.Fatalf("seed corrupt record: %v", err)
			}

			got := s.DraftRepo().Load(ctx)
			if got.Step != 0 || len(got.Answers) != 0 {
				t.Errorf("got %+v, want default draft", got)
			}

			// The corrupt record must be discarded, not kept around.
			raw, err := loadRecord(ctx, s.Client(), keyProgress)
			if err != nil {
				t.Fatalf("reload record: %v", err)
			}
			if raw != nil {
				t.Errorf("corrupt record still present: %s", raw)
			}
		})
	}
}

func TestDraftSaveOverwrites(t *testing.T) {
	s := openTestStore(t)
	repo := s.DraftRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, Draft{Step: 1, Answers: health.Answers{"sleep": "7-8 hours"}}); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, Draft{Step: 2, Answers: health.Answers{"sleep": "7-8 hours", "stress": "Low"}}); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got := repo.Load(ctx)
	if got.Step != 2 || len(got.Answers) != 2 {
		t.Errorf("got %+v, want step 2 with 2 answers", got)
	}
}

func TestDraftClear(t *testing.T) {
	s := openTestStore(t)
	repo := s.DraftRepo()
	ctx := context.Background()

	if err := repo.Save(ctx, Draft{Step: 5, Answers: health.Answers{"mental": "Mostly positive"}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	got := repo.Load(ctx)
	if got.Step != 0 || len(got.Answers) != 0 {
		t.Errorf("got %+v after clear, want default", got)
	}

	// Clearing again is a no-op.
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
