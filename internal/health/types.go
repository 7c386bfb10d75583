// Package health holds the shared domain types for the assessment:
// the answers a user gives, the estimation the AI returns, and the
// historical log entries derived from it.
package health

// Answers maps a question id to the single selected option label.
type Answers map[string]string

// Clone returns an independent copy of the answer set.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// ResultPoint is a single observation tied to a question category.
type ResultPoint struct {
	Point    string `json:"point"`
	Category string `json:"category"`
}

// HealthTip is an actionable suggestion for one area of improvement.
type HealthTip struct {
	Category string `json:"category"`
	Tip      string `json:"tip"`
}

// HealthResult is the structured estimation returned by the AI provider.
// It is created once from a validated provider response and never mutated.
type HealthResult struct {
	OverallScore        int           `json:"overallScore"`
	Summary             string        `json:"summary"`
	PositivePoints      []ResultPoint `json:"positivePoints"`
	AreasForImprovement []ResultPoint `json:"areasForImprovement"`
	HealthTips          []HealthTip   `json:"healthTips"`
	Disclaimer          string        `json:"disclaimer"`
}

// HistoricalEntry is one completed assessment in the append-only history log.
type HistoricalEntry struct {
	ID      string       `json:"id"`
	Date    string       `json:"date"`
	Score   int          `json:"score"`
	Result  HealthResult `json:"result"`
	Answers Answers      `json:"answers"`
}
