// Package advisor turns scored results into short, personalised career
// advice, either from an LLM or from the scores alone.
package advisor

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/llm"
	"github.com/abhisek/careerfit/internal/scoring"
)

// Purpose labels advice requests in the LLM event log.
const Purpose = "advice"

// ErrNoProvider is returned by Advise when no LLM is configured.
var ErrNoProvider = errors.New("advice requires an LLM provider")

// Source says where a piece of advice came from.
type Source string

const (
	SourceLLM     Source = "llm"
	SourceOffline Source = "offline"
)

// Advice is the coaching shown under the results.
type Advice struct {
	Summary       string   `json:"summary"`
	Strengths     []string `json:"strengths"`
	NextSteps     []string `json:"nextSteps"`
	SuggestedRole string   `json:"suggestedRole"`
	Source        Source   `json:"source"`
	Model         string   `json:"model,omitempty"`
}

// Config holds advice generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns defaults for advice generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   600,
		Temperature: 0.4,
	}
}

// Advisor generates advice. A nil provider makes every Advise call fail
// with ErrNoProvider; Offline always works.
type Advisor struct {
	provider llm.Provider
	cfg      Config
	log      *zap.Logger
}

// New creates an Advisor.
func New(provider llm.Provider, cfg Config, log *zap.Logger) *Advisor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Advisor{provider: provider, cfg: cfg, log: log}
}

// Available reports whether LLM advice can be requested.
func (a *Advisor) Available() bool {
	return a != nil && a.provider != nil
}

type adviceOutput struct {
	Summary       string   `json:"summary"`
	Strengths     []string `json:"strengths"`
	NextSteps     []string `json:"next_steps"`
	SuggestedRole string   `json:"suggested_role"`
}

// Advise asks the LLM for advice on r.
func (a *Advisor) Advise(ctx context.Context, r scoring.Results) (*Advice, error) {
	if !a.Available() {
		return nil, ErrNoProvider
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(r)}},
		Schema:      AdviceSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	})
	if err != nil {
		a.log.Warn("advice generation failed", zap.Error(err))
		return nil, fmt.Errorf("advice generation: %w", err)
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse advice response: %w", err)
	}

	a.log.Info("advice generated",
		zap.String("model", resp.Model),
		zap.Int("overall", r.OverallConfidence),
		zap.Int("next_steps", len(out.NextSteps)))

	return &Advice{
		Summary:       out.Summary,
		Strengths:     out.Strengths,
		NextSteps:     out.NextSteps,
		SuggestedRole: out.SuggestedRole,
		Source:        SourceLLM,
		Model:         resp.Model,
	}, nil
}

// Offline derives advice from the scores without a model: the verdict
// description, the strongest dimensions and the learning path.
func Offline(r scoring.Results) Advice {
	adv := Advice{
		Summary:   fmt.Sprintf("Overall confidence %d%%. %s", r.OverallConfidence, r.Recommendation.Description()),
		Strengths: topDimensions(r, 2),
		Source:    SourceOffline,
	}
	for _, course := range r.LearningPath {
		adv.NextSteps = append(adv.NextSteps, "Take "+course)
	}
	if len(adv.NextSteps) == 0 {
		adv.NextSteps = []string{"Shadow a returns or warranty team to see the work day to day"}
	}
	if len(r.CareerMatches) > 0 {
		adv.SuggestedRole = r.CareerMatches[0]
	}
	return adv
}

var dimensionLabels = []struct {
	dim   scoring.Dimension
	label string
}{
	{scoring.DimPsychologicalFit, "Psychological fit"},
	{scoring.DimTechnicalReadiness, "Technical readiness"},
	{scoring.DimWill, "Will"},
	{scoring.DimInterest, "Interest"},
	{scoring.DimSkill, "Skill"},
	{scoring.DimCognitive, "Cognitive readiness"},
	{scoring.DimAbility, "Ability to learn"},
	{scoring.DimRealWorld, "Real-world alignment"},
}

// topDimensions returns the n highest-scoring dimensions, ties broken by
// declaration order.
func topDimensions(r scoring.Results, n int) []string {
	type scored struct {
		label string
		score int
	}
	all := make([]scored, 0, len(dimensionLabels))
	for _, d := range dimensionLabels {
		s, _ := r.Score(d.dim)
		all = append(all, scored{d.label, s})
	}
	slices.SortStableFunc(all, func(a, b scored) int { return cmp.Compare(b.score, a.score) })

	out := make([]string, 0, n)
	for _, s := range all[:min(n, len(all))] {
		out = append(out, fmt.Sprintf("%s (%d)", s.label, s.score))
	}
	return out
}
