// Package scoring turns a completed set of answers into readiness scores,
// a recommendation tier and follow-up suggestions.
//
// Compute is pure: it reads its inputs, never mutates them, and returns the
// same Results for the same arguments. An empty bucket scores 0.
package scoring

import (
	"math"
	"slices"

	"github.com/abhisek/careerfit/internal/assessment"
	qb "github.com/abhisek/careerfit/internal/questionbank"
)

var (
	psychometricCategories = []qb.Category{qb.CategoryInterest, qb.CategoryPersonality, qb.CategoryCognitive, qb.CategoryMotivation}
	technicalCategories    = []qb.Category{qb.CategoryAptitude, qb.CategoryKnowledge, qb.CategoryScenario, qb.CategoryDomain}
)

// buckets partitions answers by category. An answer lands in every bucket
// one of its categories selects, but only once per bucket.
type buckets struct {
	psychometric []assessment.Answer
	technical    []assessment.Answer
	will         []assessment.Answer
	skill        []assessment.Answer
	ability      []assessment.Answer
}

func bucketAnswers(answers []assessment.Answer, bank *qb.Bank) buckets {
	var b buckets
	for _, a := range answers {
		var cats []qb.Category
		if bank != nil {
			cats = bank.CategoriesFor(a.QuestionID)
		} else {
			cats = qb.InferCategories(a.QuestionID)
		}
		has := func(want ...qb.Category) bool {
			for _, c := range cats {
				if slices.Contains(want, c) {
					return true
				}
			}
			return false
		}

		if has(psychometricCategories...) {
			b.psychometric = append(b.psychometric, a)
		}
		if has(technicalCategories...) {
			b.technical = append(b.technical, a)
		}
		if has(qb.CategoryWill) {
			b.will = append(b.will, a)
		}
		if has(qb.CategorySkill) {
			b.skill = append(b.skill, a)
		}
		if has(qb.CategoryAbility) {
			b.ability = append(b.ability, a)
		}
	}
	return b
}

// Round rounds halves up, so 2.5 -> 3 and -2.5 -> -2.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// NormalizeLikert returns round(sum / (n * likertMax) * 100). Non-numeric values
// contribute 0 and an empty bucket scores 0.
func NormalizeLikert(answers []assessment.Answer, likertMax int) int {
	if len(answers) == 0 || likertMax <= 0 {
		return 0
	}
	var sum float64
	for _, a := range answers {
		sum += a.Value.Number()
	}
	return Round(sum / float64(len(answers)*likertMax) * 100)
}

// Readiness returns the percentage of answers key accepts, rounded. An
// empty bucket scores 0.
func Readiness(answers []assessment.Answer, key AnswerKey) int {
	if len(answers) == 0 {
		return 0
	}
	correct := 0
	for _, a := range answers {
		if key.IsCorrect(a.QuestionID, a.Value) {
			correct++
		}
	}
	return Round(float64(correct) / float64(len(answers)) * 100)
}

// Overall combines the component scores into overall confidence.
func Overall(fit, readiness int, w WISCAR, weights Weights) int {
	return Round(float64(fit)*weights.PsychologicalFit +
		float64(readiness)*weights.TechnicalReadiness +
		w.Average()*weights.WISCAR)
}

// Tier maps an overall confidence score to a recommendation. Each tier
// includes its lower bound.
func Tier(overall int, cfg Config) Recommendation {
	switch {
	case overall >= cfg.StrongFitAt:
		return StrongFit
	case overall >= cfg.ExploreAt:
		return ExploreMore
	default:
		return NotFitYet
	}
}

// Gaps evaluates cfg.GapRules against r in order and returns the matching
// gap labels with their paired courses.
func Gaps(r Results, rules []GapRule) (gaps, path []string) {
	gaps, path = []string{}, []string{}
	for _, rule := range rules {
		score, ok := r.Score(rule.Dimension)
		if ok && score < rule.Below {
			gaps = append(gaps, rule.Gap)
			path = append(path, rule.Course)
		}
	}
	return gaps, path
}

// Compute scores answers against bank. A nil bank falls back to inferring
// categories from question ids.
func Compute(answers []assessment.Answer, bank *qb.Bank, cfg Config) Results {
	b := bucketAnswers(answers, bank)

	r := Results{
		PsychologicalFit:   NormalizeLikert(b.psychometric, cfg.LikertMax),
		TechnicalReadiness: Readiness(b.technical, cfg.AnswerKey),
		WISCAR: WISCAR{
			Will:      NormalizeLikert(b.will, cfg.LikertMax),
			Interest:  cfg.Fixed.Interest,
			Skill:     NormalizeLikert(b.skill, cfg.LikertMax),
			Cognitive: cfg.Fixed.Cognitive,
			Ability:   NormalizeLikert(b.ability, cfg.LikertMax),
			RealWorld: cfg.Fixed.RealWorld,
		},
	}
	r.OverallConfidence = Overall(r.PsychologicalFit, r.TechnicalReadiness, r.WISCAR, cfg.Weights)
	r.Recommendation = Tier(r.OverallConfidence, cfg)
	r.SkillGaps, r.LearningPath = Gaps(r, cfg.GapRules)
	r.CareerMatches = slices.Clone(cfg.CareerMatches)
	if r.CareerMatches == nil {
		r.CareerMatches = []string{}
	}
	return r
}
