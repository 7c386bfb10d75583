package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/vita/ent"
	"github.com/abhisek/vita/ent/record"
)

// loadRecord reads the raw payload for key. Returns (nil, nil) when the
// record does not exist.
func loadRecord(ctx context.Context, client *ent.Client, key string) (json.RawMessage, error) {
	r, err := client.Record.Query().
		Where(record.Key(key)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query record %q: %w", key, err)
	}
	return r.Data, nil
}

// saveRecord overwrites the payload for key, creating the record if needed.
// Single-threaded callers make the query-then-write race-free.
func saveRecord(ctx context.Context, client *ent.Client, key string, data json.RawMessage) error {
	r, err := client.Record.Query().
		Where(record.Key(key)).
		Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			return fmt.Errorf("query record %q: %w", key, err)
		}
		_, err = client.Record.Create().
			SetKey(key).
			SetData(data).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create record %q: %w", key, err)
		}
		return nil
	}

	_, err = r.Update().SetData(data).Save(ctx)
	if err != nil {
		return fmt.Errorf("update record %q: %w", key, err)
	}
	return nil
}

// deleteRecord removes the record for key. Deleting a missing record is a no-op.
func deleteRecord(ctx context.Context, client *ent.Client, key string) error {
	_, err := client.Record.Delete().
		Where(record.Key(key)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete record %q: %w", key, err)
	}
	return nil
}
