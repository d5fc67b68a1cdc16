package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/careerfit/internal/llm"
	"github.com/abhisek/careerfit/internal/scoring"
)

func sampleResults() scoring.Results {
	return scoring.Results{
		PsychologicalFit:   80,
		TechnicalReadiness: 60,
		WISCAR:             scoring.WISCAR{Will: 70, Interest: 85, Skill: 60, Cognitive: 80, Ability: 70, RealWorld: 75},
		OverallConfidence:  71,
		Recommendation:     scoring.ExploreMore,
		SkillGaps:          []string{"Excel/Data Analysis Skills", "Reverse Logistics Knowledge"},
		LearningPath:       []string{"Excel for Logistics Analytics", "Introduction to Reverse Logistics"},
		CareerMatches:      scoring.DefaultConfig().CareerMatches,
	}
}

const goodAdvice = `{
	"summary": "You have the curiosity the role needs; your data skills are the gap.",
	"strengths": ["High interest in sustainability-driven logistics"],
	"next_steps": ["Complete an Excel analytics course", "Read an RMA process guide"],
	"suggested_role": "Returns & Warranty Coordinator"
}`

func TestAdvise(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodAdvice)})
	a := New(mock, DefaultConfig(), zaptest.NewLogger(t))
	require.True(t, a.Available())

	adv, err := a.Advise(context.Background(), sampleResults())
	require.NoError(t, err)

	assert.Equal(t, SourceLLM, adv.Source)
	assert.Equal(t, "mock", adv.Model)
	assert.Equal(t, "Returns & Warranty Coordinator", adv.SuggestedRole)
	assert.Len(t, adv.NextSteps, 2)

	require.Equal(t, 1, mock.CallCount())
	req := mock.Calls[0]
	assert.Equal(t, AdviceSchema, req.Schema)
	assert.Equal(t, DefaultConfig().MaxTokens, req.MaxTokens)
	msg := req.Messages[0].Content
	for _, want := range []string{
		"Overall confidence: 71%",
		"Promising Potential - Explore More (explore-more)",
		"- Skill: 60",
		"- Excel for Logistics Analytics",
		"- Sustainability Logistics Specialist",
	} {
		assert.Contains(t, msg, want)
	}
}

func TestAdvise_PurposeIsLogged(t *testing.T) {
	var purpose string
	spy := purposeSpy{inner: llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(goodAdvice)}), seen: &purpose}
	_, err := New(spy, DefaultConfig(), nil).Advise(context.Background(), sampleResults())
	require.NoError(t, err)
	assert.Equal(t, Purpose, purpose)
}

func TestAdvise_Errors(t *testing.T) {
	_, err := New(nil, DefaultConfig(), nil).Advise(context.Background(), sampleResults())
	assert.ErrorIs(t, err, ErrNoProvider)

	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}})
	_, err = New(mock, DefaultConfig(), nil).Advise(context.Background(), sampleResults())
	var rl *llm.ErrRateLimit
	assert.ErrorAs(t, err, &rl)

	// Missing next_steps violates the schema.
	mock = llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"summary":"x","strengths":[],"suggested_role":"y"}`)})
	_, err = New(mock, DefaultConfig(), nil).Advise(context.Background(), sampleResults())
	var inv *llm.ErrInvalidResponse
	assert.ErrorAs(t, err, &inv)
}

func TestOffline(t *testing.T) {
	adv := Offline(sampleResults())

	assert.Equal(t, SourceOffline, adv.Source)
	assert.True(t, strings.HasPrefix(adv.Summary, "Overall confidence 71%. You show curiosity"), adv.Summary)
	assert.Equal(t, []string{"Interest (85)", "Psychological fit (80)"}, adv.Strengths)
	assert.Equal(t, []string{"Take Excel for Logistics Analytics", "Take Introduction to Reverse Logistics"}, adv.NextSteps)
	assert.Equal(t, "Reverse Logistics Planner", adv.SuggestedRole)
}

func TestOffline_NoGaps(t *testing.T) {
	r := sampleResults()
	r.LearningPath, r.CareerMatches = nil, nil
	adv := Offline(r)
	assert.Len(t, adv.NextSteps, 1)
	assert.Empty(t, adv.SuggestedRole)
}

type purposeSpy struct {
	inner llm.Provider
	seen  *string
}

func (p purposeSpy) Generate(ctx context.Context, req llm.Request) (*llm.Response, error) {
	*p.seen = llm.PurposeFrom(ctx)
	return p.inner.Generate(ctx, req)
}
func (p purposeSpy) Name() string    { return p.inner.Name() }
func (p purposeSpy) ModelID() string { return p.inner.ModelID() }
