package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/vita/ent"
	"github.com/abhisek/vita/internal/health"
)

// historyRepo implements HistoryRepo over the keyed records table.
type historyRepo struct {
	client *ent.Client
}

func (r *historyRepo) Load(ctx context.Context) []health.HistoricalEntry {
	raw, err := loadRecord(ctx, r.client, keyHistory)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load history: %v\n", err)
		return nil
	}
	if raw == nil {
		return nil
	}

	var entries []health.HistoricalEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Corrupt history is unrecoverable; drop it rather than error forever.
		_ = deleteRecord(ctx, r.client, keyHistory)
		return nil
	}
	return entries
}

func (r *historyRepo) Append(ctx context.Context, entry health.HistoricalEntry) error {
	entries := append(r.Load(ctx), entry)
	if len(entries) > MaxHistoryEntries {
		entries = entries[len(entries)-MaxHistoryEntries:]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	return saveRecord(ctx, r.client, keyHistory, data)
}

func (r *historyRepo) Clear(ctx context.Context) error {
	return deleteRecord(ctx, r.client, keyHistory)
}
