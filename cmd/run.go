package cmd

import (
	"fmt"

	"github.com/abhisek/vita/internal/app"
	"github.com/abhisek/vita/internal/estimate"
	"github.com/abhisek/vita/internal/llm"
	"github.com/abhisek/vita/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("LLM provider not configured: %w\n\nSet VITA_GEMINI_API_KEY (or another provider's key) and try again", err)
	}

	return app.Run(app.Options{
		Drafts:    st.DraftRepo(),
		History:   st.HistoryRepo(),
		Prefs:     st.PrefsRepo(),
		Estimator: estimate.New(provider),
	})
}
