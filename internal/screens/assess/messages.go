package assess

import (
	"github.com/abhisek/vita/internal/health"
)

// estimateDoneMsg is sent when the estimation request completes.
type estimateDoneMsg struct {
	Result *health.HealthResult
	Err    error
}

// feedbackClearMsg ends the brief selection highlight. Seq guards against
// stale timers: a highlight scheduled on one step must not clear a newer one.
type feedbackClearMsg struct {
	Seq int
}
