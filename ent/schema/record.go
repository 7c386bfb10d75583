package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Record is a single keyed JSON document. The persistence layer stores the
// in-progress draft, the bounded history log, and UI preferences as
// independent records under well-known keys.
type Record struct {
	ent.Schema
}

func (Record) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			NotEmpty().
			Comment("Well-known record name: progress, history, theme"),
		field.JSON("data", json.RawMessage{}).
			Comment("Opaque JSON payload; only the store serializes it"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}
