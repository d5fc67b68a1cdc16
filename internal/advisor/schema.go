package advisor

import "github.com/abhisek/careerfit/internal/llm"

// AdviceSchema is the structured output requested from the model.
var AdviceSchema = &llm.Schema{
	Name:        "career-advice",
	Description: "Personalised next steps for a reverse logistics career candidate",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence read of the candidate's readiness, addressed to them",
			},
			"strengths": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "1-3 strengths grounded in the highest scores (5-12 words each)",
			},
			"next_steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "2-4 concrete actions for the next 90 days, most important first",
			},
			"suggested_role": map[string]any{
				"type":        "string",
				"description": "The single best starting role from the career matches",
			},
		},
		"required":             []any{"summary", "strengths", "next_steps", "suggested_role"},
		"additionalProperties": false,
	},
}
