package llm

import (
	"context"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	schema := geminiSchema(adviceTestSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("type = %s, want OBJECT", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("properties = %d, want 4", len(schema.Properties))
	}
	if schema.Properties["summary"].Type != genai.TypeString {
		t.Errorf("summary type = %s", schema.Properties["summary"].Type)
	}
	if schema.Properties["confidence"].Type != genai.TypeInteger {
		t.Errorf("confidence type = %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["tier"].Enum) != 3 {
		t.Errorf("tier enum = %v", schema.Properties["tier"].Enum)
	}
	steps := schema.Properties["steps"]
	if steps.Type != genai.TypeArray || steps.Items.Type != genai.TypeString {
		t.Errorf("steps = %+v", steps)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestGeminiSchema_DecodedJSONAndUnknownType(t *testing.T) {
	schema := geminiSchema(map[string]any{
		"type":     "object",
		"required": []any{"a"},
		"properties": map[string]any{
			"a": map[string]any{"type": "null"},
		},
	})
	if len(schema.Required) != 1 || schema.Required[0] != "a" {
		t.Errorf("required = %v", schema.Required)
	}
	if schema.Properties["a"].Type != genai.TypeString {
		t.Errorf("unknown type should map to STRING, got %s", schema.Properties["a"].Type)
	}
}

func TestGeminiProvider_Identity(t *testing.T) {
	p, err := NewGeminiProvider(context.Background(), Config{APIKey: "g-test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != ProviderGemini || p.ModelID() != "gemini-2.0-flash" {
		t.Fatalf("got %s/%s", p.Name(), p.ModelID())
	}
	if _, err := NewGeminiProvider(context.Background(), Config{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
