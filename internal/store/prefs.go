package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/vita/ent"
)

// prefsRepo implements PrefsRepo over the keyed records table.
type prefsRepo struct {
	client *ent.Client
}

func (r *prefsRepo) LoadTheme(ctx context.Context) string {
	raw, err := loadRecord(ctx, r.client, keyTheme)
	if err != nil || raw == nil {
		return ""
	}

	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return ""
	}
	if theme != "light" && theme != "dark" {
		return ""
	}
	return theme
}

func (r *prefsRepo) SaveTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return fmt.Errorf("invalid theme %q", theme)
	}
	data, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}
	return saveRecord(ctx, r.client, keyTheme, data)
}
