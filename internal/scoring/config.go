package scoring

import (
	"fmt"
	"slices"

	"github.com/abhisek/careerfit/internal/assessment"
)

// AnswerKey decides which technical answers count as correct.
type AnswerKey struct {
	// Correct maps a question id to its accepted answers.
	Correct map[string][]string `yaml:"correct" json:"correct"`
	// AcceptZero also counts any answer whose numeric value is 0, i.e. the
	// first option when options are submitted by index.
	AcceptZero bool `yaml:"accept_zero" json:"acceptZero"`
}

// IsCorrect reports whether v is an accepted answer to questionID.
func (k AnswerKey) IsCorrect(questionID string, v assessment.Value) bool {
	if k.AcceptZero {
		if f, ok := v.Numeric(); ok && f == 0 {
			return true
		}
	}
	s, ok := v.AsText()
	if !ok {
		return false
	}
	return slices.Contains(k.Correct[questionID], s)
}

// LegacyAnswerKey grades the way the first release of the quiz did: only
// the RMA question has a text key, and a numeric 0 is accepted anywhere.
func LegacyAnswerKey() AnswerKey {
	return AnswerKey{
		Correct: map[string][]string{
			"knowledge_1": {"Return Merchandise Authorization"},
		},
		AcceptZero: true,
	}
}

// FullAnswerKey has the correct option for every technical question in the
// built-in bank.
func FullAnswerKey() AnswerKey {
	return AnswerKey{
		Correct: map[string][]string{
			"aptitude_1":  {"150"},
			"knowledge_1": {"Return Merchandise Authorization"},
			"knowledge_2": {"Initial product manufacturing"},
			"scenario_1":  {"Check warranty status and return policy"},
			"domain_1":    {"To maximize recovery value from returned products"},
		},
	}
}

// AnswerKeyByName resolves "legacy" or "full".
func AnswerKeyByName(name string) (AnswerKey, error) {
	switch name {
	case "", "legacy":
		return LegacyAnswerKey(), nil
	case "full":
		return FullAnswerKey(), nil
	default:
		return AnswerKey{}, fmt.Errorf("unknown answer key %q (want legacy or full)", name)
	}
}

// Dimension names a score a gap rule can test.
type Dimension string

const (
	DimPsychologicalFit   Dimension = "psychologicalFit"
	DimTechnicalReadiness Dimension = "technicalReadiness"
	DimWill               Dimension = "will"
	DimInterest           Dimension = "interest"
	DimSkill              Dimension = "skill"
	DimCognitive          Dimension = "cognitive"
	DimAbility            Dimension = "ability"
	DimRealWorld          Dimension = "realWorld"
)

// GapRule appends Gap to the skill gaps and Course to the learning path
// when the Dimension score is below Below.
type GapRule struct {
	Dimension Dimension
	Below     int
	Gap       string
	Course    string
}

// Weights are the contributions to overall confidence.
type Weights struct {
	PsychologicalFit   float64
	TechnicalReadiness float64
	WISCAR             float64
}

// FixedScores are WISCAR dimensions reported as constants rather than
// computed from answers.
type FixedScores struct {
	Interest  int
	Cognitive int
	RealWorld int
}

// Config parameterises Compute.
type Config struct {
	// LikertMax is the per-answer maximum used when normalizing likert
	// buckets. It is applied to every question regardless of its own scale.
	LikertMax int

	Weights     Weights
	Fixed       FixedScores
	AnswerKey   AnswerKey
	StrongFitAt int
	ExploreAt   int

	// GapRules are evaluated in order; output order follows rule order.
	GapRules      []GapRule
	CareerMatches []string
}

// DefaultConfig reproduces the published scoring rules.
func DefaultConfig() Config {
	return Config{
		LikertMax: 5,
		Weights: Weights{
			PsychologicalFit:   0.3,
			TechnicalReadiness: 0.3,
			WISCAR:             0.4,
		},
		Fixed: FixedScores{
			Interest:  85,
			Cognitive: 80,
			RealWorld: 75,
		},
		AnswerKey:   LegacyAnswerKey(),
		StrongFitAt: 85,
		ExploreAt:   70,
		GapRules: []GapRule{
			{Dimension: DimSkill, Below: 70, Gap: "Excel/Data Analysis Skills", Course: "Excel for Logistics Analytics"},
			{Dimension: DimTechnicalReadiness, Below: 70, Gap: "Reverse Logistics Knowledge", Course: "Introduction to Reverse Logistics"},
			// Never fires while Fixed.Cognitive is 80.
			{Dimension: DimCognitive, Below: 70, Gap: "Problem-solving Approach", Course: "Analytical Thinking for Supply Chain"},
		},
		CareerMatches: []string{
			"Reverse Logistics Planner",
			"Returns & Warranty Coordinator",
			"Sustainability Logistics Specialist",
		},
	}
}
