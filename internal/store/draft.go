package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/vita/ent"
)

// draftRepo implements DraftRepo over the keyed records table.
type draftRepo struct {
	client *ent.Client
}

// rawDraft mirrors Draft with loose types so shape can be checked before use.
type rawDraft struct {
	Step    *int               `json:"step"`
	Answers *map[string]string `json:"answers"`
}

func (r *draftRepo) Load(ctx context.Context) Draft {
	raw, err := loadRecord(ctx, r.client, keyProgress)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load draft: %v\n", err)
		return DefaultDraft()
	}
	if raw == nil {
		return DefaultDraft()
	}

	// A corrupt draft is discarded, not surfaced: the user simply starts over.
	var rd rawDraft
	if err := json.Unmarshal(raw, &rd); err != nil || rd.Step == nil || *rd.Step < 0 || rd.Answers == nil {
		_ = deleteRecord(ctx, r.client, keyProgress)
		return DefaultDraft()
	}

	d := Draft{Step: *rd.Step, Answers: *rd.Answers}
	if d.Answers == nil {
		d.Answers = map[string]string{}
	}
	return d
}

func (r *draftRepo) Save(ctx context.Context, d Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return saveRecord(ctx, r.client, keyProgress, data)
}

func (r *draftRepo) Clear(ctx context.Context) error {
	return deleteRecord(ctx, r.client, keyProgress)
}
