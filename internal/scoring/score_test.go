package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/questionbank"
)

func answersFor(likert int, choices map[string]string) []assessment.Answer {
	var out []assessment.Answer
	bank := questionbank.Default()
	for _, s := range bank.Sections() {
		for _, q := range s.Questions {
			v := assessment.Int(likert)
			if q.Type != questionbank.TypeLikert {
				v = assessment.Text(choices[q.ID])
			}
			out = append(out, assessment.Answer{QuestionID: q.ID, Value: v, Section: s.ID})
		}
	}
	return out
}

var bestChoices = map[string]string{
	"cognitive_1":  "Breaking them into systematic, repeatable steps",
	"aptitude_1":   "150",
	"knowledge_1":  "Return Merchandise Authorization",
	"knowledge_2":  "Initial product manufacturing",
	"scenario_1":   "Check warranty status and return policy",
	"domain_1":     "To maximize recovery value from returned products",
	"interest_3":   "Analyzing return patterns and trends",
	"cognitive_2":  "Analyze data by product, date, and return reason",
	"real_world_1": "Desk work with data analysis and system coordination",
}

var worstChoices = map[string]string{
	"cognitive_1":  "Adapting based on each unique situation",
	"aptitude_1":   "250",
	"knowledge_1":  "Reverse Material Assessment",
	"knowledge_2":  "Warranty repairs",
	"scenario_1":   "Refuse the return due to damage",
	"domain_1":     "To increase shipping costs",
	"interest_3":   "Managing inventory tracking systems",
	"cognitive_2":  "Ignore it until next month",
	"real_world_1": "Independent work with minimal supervision",
}

func likertAnswers(id string, values ...int) []assessment.Answer {
	out := make([]assessment.Answer, len(values))
	for i, v := range values {
		out[i] = assessment.Answer{QuestionID: id, Value: assessment.Int(v)}
	}
	return out
}

func TestNormalizeLikert(t *testing.T) {
	assert.Equal(t, 100, NormalizeLikert(likertAnswers("will_1", 5, 5, 5), 5))
	assert.Equal(t, 20, NormalizeLikert(likertAnswers("will_1", 1, 1, 1), 5))
	assert.Equal(t, 60, NormalizeLikert(likertAnswers("will_1", 3), 5))
	assert.Equal(t, 0, NormalizeLikert(nil, 5), "empty bucket scores 0")
}

func TestNormalizeLikert_NonNumericContributesZero(t *testing.T) {
	answers := []assessment.Answer{
		{QuestionID: "skill_1", Value: assessment.Int(5)},
		{QuestionID: "skill_2", Value: assessment.Text("Expert")},
	}
	assert.Equal(t, 50, NormalizeLikert(answers, 5))
}

func TestNormalizeLikert_RoundsHalfUp(t *testing.T) {
	// 3 / 40 * 100 = 7.5
	answers := append(likertAnswers("interest_1", 1, 1, 1), likertAnswers("x", 0, 0, 0, 0, 0)...)
	assert.Equal(t, 8, NormalizeLikert(answers, 5))
}

func TestRound(t *testing.T) {
	tests := map[float64]int{0.4: 0, 0.5: 1, 64.5: 65, 71.333: 71, -2.5: -2, 99.99: 100}
	for in, want := range tests {
		assert.Equal(t, want, Round(in), "Round(%v)", in)
	}
}

func TestLegacyAnswerKey(t *testing.T) {
	key := LegacyAnswerKey()
	tests := []struct {
		id   string
		v    assessment.Value
		want bool
	}{
		{"knowledge_1", assessment.Text("Return Merchandise Authorization"), true},
		{"knowledge_1", assessment.Text("Retail Management Application"), false},
		{"aptitude_1", assessment.Int(0), true},
		{"aptitude_1", assessment.Text("0"), true},
		{"aptitude_1", assessment.Text(""), true},
		{"aptitude_1", assessment.Text("150"), false},
		{"aptitude_1", assessment.Text("0x0"), true},
		{"aptitude_1", assessment.Text("-0"), true},
		{"aptitude_1", assessment.Text("Infinity"), false},
		{"domain_1", assessment.Int(1), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, key.IsCorrect(tt.id, tt.v), "%s=%v", tt.id, tt.v)
	}
}

func TestAnswerKeyByName(t *testing.T) {
	k, err := AnswerKeyByName("full")
	require.NoError(t, err)
	assert.False(t, k.AcceptZero)
	assert.Len(t, k.Correct, 5)

	k, err = AnswerKeyByName("")
	require.NoError(t, err)
	assert.True(t, k.AcceptZero)

	_, err = AnswerKeyByName("lenient")
	assert.Error(t, err)
}

func TestFullAnswerKey_CoversEveryTechnicalQuestion(t *testing.T) {
	key := FullAnswerKey()
	for _, s := range questionbank.Default().Sections() {
		for _, q := range s.Questions {
			if !q.HasCategory(questionbank.CategoryAptitude) && !q.HasCategory(questionbank.CategoryKnowledge) &&
				!q.HasCategory(questionbank.CategoryScenario) && !q.HasCategory(questionbank.CategoryDomain) {
				continue
			}
			accepted := key.Correct[q.ID]
			require.NotEmpty(t, accepted, "no key for %s", q.ID)
			for _, a := range accepted {
				assert.Contains(t, q.Options, a, "key for %s is not an option", q.ID)
			}
		}
	}
}

func TestOverall_WorkedExample(t *testing.T) {
	w := WISCAR{Will: 70, Interest: 85, Skill: 60, Cognitive: 80, Ability: 70, RealWorld: 75}
	overall := Overall(80, 60, w, DefaultConfig().Weights)
	assert.Equal(t, 71, overall)
	assert.Equal(t, ExploreMore, Tier(overall, DefaultConfig()))
}

func TestTier_Boundaries(t *testing.T) {
	cfg := DefaultConfig()
	tests := map[int]Recommendation{
		100: StrongFit,
		90:  StrongFit,
		85:  StrongFit,
		84:  ExploreMore,
		70:  ExploreMore,
		69:  NotFitYet,
		0:   NotFitYet,
	}
	for overall, want := range tests {
		assert.Equal(t, want, Tier(overall, cfg), "Tier(%d)", overall)
	}
}

func TestGaps_Order(t *testing.T) {
	rules := DefaultConfig().GapRules

	gaps, path := Gaps(Results{TechnicalReadiness: 90, WISCAR: WISCAR{Skill: 65, Cognitive: 80}}, rules)
	require.Len(t, gaps, 1)
	assert.Equal(t, "Excel/Data Analysis Skills", gaps[0])
	assert.Equal(t, "Excel for Logistics Analytics", path[0])

	gaps, path = Gaps(Results{TechnicalReadiness: 10, WISCAR: WISCAR{Skill: 10, Cognitive: 10}}, rules)
	assert.Equal(t, []string{"Excel/Data Analysis Skills", "Reverse Logistics Knowledge", "Problem-solving Approach"}, gaps)
	assert.Equal(t, []string{"Excel for Logistics Analytics", "Introduction to Reverse Logistics", "Analytical Thinking for Supply Chain"}, path)

	gaps, path = Gaps(Results{TechnicalReadiness: 70, WISCAR: WISCAR{Skill: 70, Cognitive: 70}}, rules)
	assert.Empty(t, gaps)
	assert.Empty(t, path)
	assert.NotNil(t, gaps)
}

func TestCompute_BestAnswersLegacyKey(t *testing.T) {
	r := Compute(answersFor(5, bestChoices), questionbank.Default(), DefaultConfig())

	// Eight psychometric answers, five of them likert at 5 and three option
	// texts counting 0: 25/40.
	assert.Equal(t, 63, r.PsychologicalFit)
	// Only the RMA answer matches the legacy key.
	assert.Equal(t, 20, r.TechnicalReadiness)
	assert.Equal(t, WISCAR{Will: 100, Interest: 85, Skill: 100, Cognitive: 80, Ability: 100, RealWorld: 75}, r.WISCAR)
	// 63*0.3 + 20*0.3 + 90*0.4 = 60.9
	assert.Equal(t, 61, r.OverallConfidence)
	assert.Equal(t, NotFitYet, r.Recommendation)
	assert.Equal(t, []string{"Reverse Logistics Knowledge"}, r.SkillGaps)
	assert.Equal(t, []string{"Introduction to Reverse Logistics"}, r.LearningPath)
	assert.Equal(t, []string{
		"Reverse Logistics Planner",
		"Returns & Warranty Coordinator",
		"Sustainability Logistics Specialist",
	}, r.CareerMatches)
}

func TestCompute_BestAnswersFullKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AnswerKey = FullAnswerKey()
	r := Compute(answersFor(5, bestChoices), questionbank.Default(), cfg)

	assert.Equal(t, 100, r.TechnicalReadiness)
	// 63*0.3 + 100*0.3 + 90*0.4 = 84.9
	assert.Equal(t, 85, r.OverallConfidence)
	assert.Equal(t, StrongFit, r.Recommendation)
	assert.Empty(t, r.SkillGaps)
}

func TestCompute_WorstAnswers(t *testing.T) {
	r := Compute(answersFor(1, worstChoices), questionbank.Default(), DefaultConfig())

	// 5/40
	assert.Equal(t, 13, r.PsychologicalFit)
	assert.Equal(t, 0, r.TechnicalReadiness)
	assert.Equal(t, 20, r.WISCAR.Will)
	assert.Equal(t, 20, r.WISCAR.Skill)
	assert.Equal(t, 20, r.WISCAR.Ability)
	// 13*0.3 + 0 + 50*0.4 = 23.9
	assert.Equal(t, 24, r.OverallConfidence)
	assert.Equal(t, NotFitYet, r.Recommendation)
	assert.Equal(t, []string{"Excel/Data Analysis Skills", "Reverse Logistics Knowledge"}, r.SkillGaps)
}

func TestCompute_EmptyAnswersScoreZero(t *testing.T) {
	r := Compute(nil, questionbank.Default(), DefaultConfig())

	assert.Equal(t, 0, r.PsychologicalFit)
	assert.Equal(t, 0, r.TechnicalReadiness)
	assert.Equal(t, 0, r.WISCAR.Will)
	assert.Equal(t, 85, r.WISCAR.Interest)
	assert.Equal(t, 16, r.OverallConfidence)
	assert.Equal(t, NotFitYet, r.Recommendation)
	assert.Len(t, r.SkillGaps, 2)
}

func TestCompute_NilBankInfersFromIDs(t *testing.T) {
	answers := answersFor(5, bestChoices)
	withBank := Compute(answers, questionbank.Default(), DefaultConfig())
	withoutBank := Compute(answers, nil, DefaultConfig())
	assert.Equal(t, withBank, withoutBank)
}

func TestCompute_IsPureAndRepeatable(t *testing.T) {
	answers := answersFor(4, bestChoices)
	before := append([]assessment.Answer(nil), answers...)

	first := Compute(answers, questionbank.Default(), DefaultConfig())
	second := Compute(answers, questionbank.Default(), DefaultConfig())

	assert.Equal(t, first, second)
	assert.Equal(t, before, answers)

	first.CareerMatches[0] = "changed"
	assert.Equal(t, "Reverse Logistics Planner", DefaultConfig().CareerMatches[0])
}

func TestCompute_TaggedBucketsFollowBankNotID(t *testing.T) {
	// A question whose id says nothing about its category.
	bank, err := questionbank.New([]questionbank.Section{{ID: "s", Questions: []questionbank.Question{
		{ID: "q1", Text: "Rate your spreadsheet skills", Type: questionbank.TypeLikert,
			Scale: &questionbank.Scale{Min: 1, Max: 5}, Categories: []questionbank.Category{questionbank.CategorySkill}},
	}}})
	require.NoError(t, err)

	r := Compute([]assessment.Answer{{QuestionID: "q1", Value: assessment.Int(2)}}, bank, DefaultConfig())
	assert.Equal(t, 40, r.WISCAR.Skill)
}

func TestRecommendation_Text(t *testing.T) {
	for _, r := range []Recommendation{StrongFit, ExploreMore, NotFitYet} {
		assert.NotEmpty(t, r.Title())
		assert.NotEmpty(t, r.Description())
	}
	assert.Equal(t, "Strong Fit - Ready to Begin!", StrongFit.Title())
}
