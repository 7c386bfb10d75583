package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LLMRequestEvent records one request to the AI provider: what was sent,
// what came back, and how long it took. Inspectable via `vita llm`.
type LLMRequestEvent struct {
	ent.Schema
}

func (LLMRequestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.Time("timestamp").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the request"),
		field.String("provider").
			NotEmpty().
			Comment("Provider name: gemini, anthropic, openai, mock"),
		field.String("model").
			Comment("Model that served the request"),
		field.String("purpose").
			Comment("What the request was for, e.g. health-estimate"),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Int64("latency_ms").
			Default(0),
		field.Bool("success").
			Default(false),
		field.Text("error_message").
			Optional(),
		field.Text("request_body").
			Optional().
			Comment("Serialized prompt and schema"),
		field.Text("response_body").
			Optional().
			Comment("Raw provider reply"),
	}
}

func (LLMRequestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("purpose"),
	}
}
