package catalog

import "testing"

func TestCatalogShape(t *testing.T) {
	if len(Questions) != 9 {
		t.Fatalf("expected 9 questions, got %d", len(Questions))
	}

	seen := make(map[string]bool)
	for _, q := range Questions {
		if q.ID == "" {
			t.Error("question with empty id")
		}
		if seen[q.ID] {
			t.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true

		if q.Text == "" {
			t.Errorf("question %q has no text", q.ID)
		}
		if len(q.Options) < 2 {
			t.Errorf("question %q has %d options", q.ID, len(q.Options))
		}
		if q.Icon() == "" {
			t.Errorf("question %q has no icon", q.ID)
		}
	}
}

func TestByID(t *testing.T) {
	q := ByID("sleep")
	if q == nil {
		t.Fatal("sleep question not found")
	}
	if q.Category != CategorySleep {
		t.Errorf("category = %q", q.Category)
	}

	if ByID("nope") != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestIconFor(t *testing.T) {
	tests := []struct {
		category     string
		wantFallback bool
	}{
		{"exercise", false},
		{"Sleep", false},   // case-insensitive
		{"SMOKING", false}, // case-insensitive
		{"Diet", false},
		{"cardio", true},
		{"", true},
	}

	for _, tt := range tests {
		got := IconFor(tt.category)
		if got == "" {
			t.Errorf("IconFor(%q) returned empty glyph", tt.category)
		}
		isFallback := got == FallbackIcon
		if isFallback != tt.wantFallback {
			t.Errorf("IconFor(%q) = %q, fallback = %v, want %v", tt.category, got, isFallback, tt.wantFallback)
		}
	}
}

func TestHasOption(t *testing.T) {
	if !HasOption("stress", "Low") {
		t.Error("expected Low to be a stress option")
	}
	if HasOption("stress", "Extremely chill") {
		t.Error("unexpected option accepted")
	}
	if HasOption("nope", "Low") {
		t.Error("unknown question accepted")
	}
}
