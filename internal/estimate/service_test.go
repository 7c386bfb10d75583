package estimate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/llm"
)

var validResultJSON = `{
	"overallScore": 72,
	"summary": "You are doing well overall.",
	"positivePoints": [
		{"point": "Regular exercise", "category": "exercise"},
		{"point": "Good sleep habits", "category": "sleep"}
	],
	"areasForImprovement": [
		{"point": "Reduce stress", "category": "stress"}
	],
	"healthTips": [
		{"category": "Stress Management", "tip": "Try a short daily walk."}
	],
	"disclaimer": "` + Disclaimer + `"
}`

func testAnswers() health.Answers {
	return health.Answers{
		"exercise": "3-4 times a week",
		"sleep":    "7-8 hours",
	}
}

func TestEstimate_Success(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validResultJSON)},
	)
	svc := New(mock)

	result, err := svc.Estimate(context.Background(), testAnswers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OverallScore != 72 {
		t.Errorf("expected score 72, got %d", result.OverallScore)
	}
	if len(result.PositivePoints) != 2 {
		t.Errorf("expected 2 positive points, got %d", len(result.PositivePoints))
	}
	if result.Disclaimer != Disclaimer {
		t.Errorf("disclaimer mismatch: %q", result.Disclaimer)
	}
}

func TestEstimate_SingleAttemptWithSchema(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(validResultJSON)},
	)
	svc := New(mock)

	if _, err := svc.Estimate(context.Background(), testAnswers()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected exactly 1 provider call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "health-estimate" {
		t.Errorf("expected health-estimate schema on request")
	}
	if !strings.Contains(req.Messages[0].Content, `"exercise"`) {
		t.Errorf("user message should embed answers JSON, got: %s", req.Messages[0].Content)
	}
}

func TestEstimate_ProviderErrorCollapses(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{}},
	)
	svc := New(mock)

	_, err := svc.Estimate(context.Background(), testAnswers())
	if !errors.Is(err, ErrEstimation) {
		t.Fatalf("expected ErrEstimation, got: %v", err)
	}
	// No second attempt after a failure.
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestEstimate_MalformedJSONCollapses(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
	)
	svc := New(mock)

	_, err := svc.Estimate(context.Background(), testAnswers())
	if !errors.Is(err, ErrEstimation) {
		t.Fatalf("expected ErrEstimation, got: %v", err)
	}
}

func TestParseResult_ShapeChecks(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"score out of range", `{"overallScore":140,"summary":"s","positivePoints":[],"areasForImprovement":[],"healthTips":[],"disclaimer":"d"}`},
		{"missing summary", `{"overallScore":50,"positivePoints":[],"areasForImprovement":[],"healthTips":[],"disclaimer":"d"}`},
		{"missing positivePoints", `{"overallScore":50,"summary":"s","areasForImprovement":[],"healthTips":[],"disclaimer":"d"}`},
		{"incomplete point", `{"overallScore":50,"summary":"s","positivePoints":[{"point":"x"}],"areasForImprovement":[],"healthTips":[],"disclaimer":"d"}`},
		{"incomplete tip", `{"overallScore":50,"summary":"s","positivePoints":[],"areasForImprovement":[],"healthTips":[{"category":"diet"}],"disclaimer":"d"}`},
		{"missing disclaimer", `{"overallScore":50,"summary":"s","positivePoints":[],"areasForImprovement":[],"healthTips":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseResult(json.RawMessage(tt.raw)); err == nil {
				t.Fatal("expected shape check to fail")
			}
		})
	}
}

func TestParseResult_EmptyListsAreValid(t *testing.T) {
	raw := `{"overallScore":50,"summary":"s","positivePoints":[],"areasForImprovement":[],"healthTips":[],"disclaimer":"d"}`
	result, err := parseResult(json.RawMessage(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.PositivePoints) != 0 {
		t.Errorf("expected empty positive points")
	}
}
