package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-estimate",
	Description: "test schema",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 100,
			},
			"summary": map[string]any{
				"type": "string",
			},
		},
		"required": []any{"score", "summary"},
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"score":72,"summary":"ok"}`, false},
		{"missing required", `{"score":72}`, true},
		{"wrong type", `{"score":"high","summary":"ok"}`, true},
		{"out of range", `{"score":140,"summary":"ok"}`, true},
		{"not json", `score: 72`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %T", err)
				}
			}
		})
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestSchemaCacheReuse(t *testing.T) {
	// Two validations against the same named schema must not recompile.
	if err := validateResponse(testSchema, json.RawMessage(`{"score":1,"summary":"a"}`)); err != nil {
		t.Fatalf("first validate: %v", err)
	}
	if _, ok := schemaCache.Load(testSchema.Name); !ok {
		t.Fatal("schema not cached after validation")
	}
	if err := validateResponse(testSchema, json.RawMessage(`{"score":2,"summary":"b"}`)); err != nil {
		t.Fatalf("second validate: %v", err)
	}
}
