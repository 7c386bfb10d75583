package store

import (
	"context"
	"time"

	"github.com/abhisek/vita/internal/health"
)

// Record keys. Each is an independent JSON document in the records table.
const (
	keyProgress = "progress"
	keyHistory  = "history"
	keyTheme    = "theme"
)

// MaxHistoryEntries bounds the history log. Appending beyond the cap
// evicts the oldest entry first.
const MaxHistoryEntries = 10

// Draft is the resumable in-progress assessment state.
type Draft struct {
	Step    int            `json:"step"`
	Answers health.Answers `json:"answers"`
}

// DefaultDraft returns the empty starting state.
func DefaultDraft() Draft {
	return Draft{Step: 0, Answers: health.Answers{}}
}

// DraftRepo persists the in-progress assessment.
//
// Load never fails: a missing or corrupt record yields the default draft.
type DraftRepo interface {
	Load(ctx context.Context) Draft
	Save(ctx context.Context, d Draft) error
	Clear(ctx context.Context) error
}

// HistoryRepo persists the bounded log of past results, oldest first.
type HistoryRepo interface {
	// Load returns all entries, oldest first. Missing or corrupt data
	// yields an empty list, never an error.
	Load(ctx context.Context) []health.HistoricalEntry

	// Append adds an entry and truncates to the MaxHistoryEntries most
	// recent, dropping from the front.
	Append(ctx context.Context, entry health.HistoricalEntry) error

	// Clear deletes the history record entirely.
	Clear(ctx context.Context) error
}

// PrefsRepo persists UI preferences.
type PrefsRepo interface {
	// LoadTheme returns "light", "dark", or "" when no preference is stored.
	LoadTheme(ctx context.Context) string
	SaveTheme(ctx context.Context, theme string) error
}

// LLMRequestEventData captures one provider request for the event log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored event as read back from the log.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMUsageStats aggregates token usage per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model, for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo records and queries LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
