// Package estimate turns a completed answer set into a structured health
// estimation via the configured LLM provider.
package estimate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/vita/internal/health"
	"github.com/abhisek/vita/internal/llm"
)

// ErrEstimation is the single user-facing failure. Provider errors, malformed
// JSON, and shape violations all collapse into it so the UI never surfaces
// transport details.
var ErrEstimation = errors.New("failed to get health estimation from AI, please try again later")

// Estimator produces a health estimation from a completed answer set.
type Estimator interface {
	Estimate(ctx context.Context, answers health.Answers) (*health.HealthResult, error)
}

// Service implements Estimator on top of an llm.Provider. Each call makes
// exactly one provider attempt; retrying is left to the user.
type Service struct {
	provider llm.Provider
}

// New creates a Service with the given provider.
func New(provider llm.Provider) *Service {
	return &Service{provider: provider}
}

// Estimate requests a structured estimation for the given answers.
func (s *Service) Estimate(ctx context.Context, answers health.Answers) (*health.HealthResult, error) {
	ctx = llm.WithPurpose(ctx, "health-estimate")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(answers)},
		},
		Schema:    EstimateSchema,
		MaxTokens: 4096,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: health estimation request failed: %v\n", err)
		return nil, ErrEstimation
	}

	result, err := parseResult(resp.Content)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: health estimation response rejected: %v\n", err)
		return nil, ErrEstimation
	}

	return result, nil
}

// parseResult decodes and shape-checks the provider response. The checks
// mirror the schema's required fields so a provider that ignores the schema
// still cannot hand the UI a partial result.
func parseResult(raw json.RawMessage) (*health.HealthResult, error) {
	var result health.HealthResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	if result.OverallScore < 0 || result.OverallScore > 100 {
		return nil, fmt.Errorf("overallScore %d out of range", result.OverallScore)
	}
	if result.Summary == "" {
		return nil, fmt.Errorf("missing summary")
	}
	if result.PositivePoints == nil {
		return nil, fmt.Errorf("missing positivePoints")
	}
	for i, p := range result.PositivePoints {
		if p.Point == "" || p.Category == "" {
			return nil, fmt.Errorf("positivePoints[%d] incomplete", i)
		}
	}
	if result.AreasForImprovement == nil {
		return nil, fmt.Errorf("missing areasForImprovement")
	}
	for i, a := range result.AreasForImprovement {
		if a.Point == "" || a.Category == "" {
			return nil, fmt.Errorf("areasForImprovement[%d] incomplete", i)
		}
	}
	if result.HealthTips == nil {
		return nil, fmt.Errorf("missing healthTips")
	}
	for i, t := range result.HealthTips {
		if t.Category == "" || t.Tip == "" {
			return nil, fmt.Errorf("healthTips[%d] incomplete", i)
		}
	}
	if result.Disclaimer == "" {
		return nil, fmt.Errorf("missing disclaimer")
	}

	return &result, nil
}
