package estimate

import "github.com/abhisek/vita/internal/llm"

// Disclaimer is the mandatory notice every estimation must carry verbatim.
const Disclaimer = "This is an AI-generated estimation and not a substitute for professional medical advice. Consult a healthcare provider for any health concerns."

// EstimateSchema defines the JSON schema for LLM health estimation responses.
var EstimateSchema = &llm.Schema{
	Name:        "health-estimate",
	Description: "A structured health estimation derived from self-reported lifestyle answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"overallScore": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "A score from 0 to 100 representing the user's overall health based on their answers. Higher is better.",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "A brief, one-paragraph summary of the user's health condition in an encouraging tone.",
			},
			"positivePoints": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"point": map[string]any{
							"type":        "string",
							"description": "The text of the positive point.",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "The category this point relates to. Must be one of: 'exercise', 'diet', 'nutrition', 'sleep', 'stress', 'mental', 'smoking', 'alcohol', 'social'.",
						},
					},
					"required":             []any{"point", "category"},
					"additionalProperties": false,
				},
				"description": "A list of 2-3 positive aspects of the user's lifestyle based on their answers, each with a corresponding category.",
			},
			"areasForImprovement": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"point": map[string]any{
							"type":        "string",
							"description": "The text of the area for improvement.",
						},
						"category": map[string]any{
							"type":        "string",
							"description": "The category this point relates to. Must be one of: 'exercise', 'diet', 'nutrition', 'sleep', 'stress', 'mental', 'smoking', 'alcohol', 'social'.",
						},
					},
					"required":             []any{"point", "category"},
					"additionalProperties": false,
				},
				"description": "A list of 2-3 actionable suggestions for improvement, phrased constructively, each with a corresponding category.",
			},
			"healthTips": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"category": map[string]any{
							"type":        "string",
							"description": "The area of improvement this tip relates to (e.g., 'Diet', 'Stress Management').",
						},
						"tip": map[string]any{
							"type":        "string",
							"description": "A concise, actionable health tip related to the category.",
						},
					},
					"required":             []any{"category", "tip"},
					"additionalProperties": false,
				},
				"description": "A list of health tips, each corresponding to an identified area for improvement.",
			},
			"disclaimer": map[string]any{
				"type":        "string",
				"description": "The mandatory disclaimer: '" + Disclaimer + "'",
			},
		},
		"required": []any{"overallScore", "summary", "positivePoints", "areasForImprovement", "healthTips", "disclaimer"},
	},
}
