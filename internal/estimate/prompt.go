package estimate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/vita/internal/health"
)

const systemPrompt = `You are a supportive health coach producing an estimation from self-reported lifestyle answers.

Rules:
- Your response must be a JSON object that conforms to the provided schema.
- For 'positivePoints' and 'areasForImprovement', provide a 'point' (the text) and a 'category' that matches one of the question IDs from the user answers.
- The valid categories are: 'exercise', 'diet', 'nutrition', 'sleep', 'stress', 'mental', 'smoking', 'alcohol', 'social'.
- Analyze the data to generate a score, a summary, positive points, areas for improvement, and actionable health tips for each area of improvement.
- The tone should be encouraging and supportive, not alarming.
- Always include the provided disclaimer verbatim.`

// buildUserMessage embeds the answer set as indented JSON so the model sees
// question ids alongside the chosen option labels.
func buildUserMessage(answers health.Answers) string {
	encoded, err := json.MarshalIndent(answers, "", "  ")
	if err != nil {
		// Answers is map[string]string, marshaling cannot fail in practice.
		encoded = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("Based on the following self-reported lifestyle information, please provide a health estimation.\n")
	fmt.Fprintf(&b, "User answers: %s\n", encoded)
	return b.String()
}
