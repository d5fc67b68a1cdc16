package questionbank

import "strconv"

// QuestionType identifies how a question is presented and answered.
type QuestionType string

const (
	TypeLikert         QuestionType = "likert"
	TypeMultipleChoice QuestionType = "multiple-choice"
	TypeRanking        QuestionType = "ranking"
	TypeScenario       QuestionType = "scenario"
)

// Valid reports whether t is a known question type.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeLikert, TypeMultipleChoice, TypeRanking, TypeScenario:
		return true
	}
	return false
}

// HasOptions reports whether questions of this type select from a fixed list.
func (t QuestionType) HasOptions() bool {
	return t == TypeMultipleChoice || t == TypeRanking
}

// Category tags a question with the scoring buckets it contributes to.
type Category string

const (
	CategoryInterest    Category = "interest"
	CategoryPersonality Category = "personality"
	CategoryCognitive   Category = "cognitive"
	CategoryMotivation  Category = "motivation"
	CategoryAptitude    Category = "aptitude"
	CategoryKnowledge   Category = "knowledge"
	CategoryScenario    Category = "scenario"
	CategoryDomain      Category = "domain"
	CategoryWill        Category = "will"
	CategorySkill       Category = "skill"
	CategoryAbility     Category = "ability"
	CategoryRealWorld   Category = "real_world"
)

// AllCategories returns every category in a stable order. The order doubles
// as the substring probe order used by InferCategories.
func AllCategories() []Category {
	return []Category{
		CategoryInterest,
		CategoryPersonality,
		CategoryCognitive,
		CategoryMotivation,
		CategoryAptitude,
		CategoryKnowledge,
		CategoryScenario,
		CategoryDomain,
		CategoryWill,
		CategorySkill,
		CategoryAbility,
		CategoryRealWorld,
	}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// Scale describes the numeric range and endpoint labels of a likert question.
type Scale struct {
	Min      int    `yaml:"min" json:"min"`
	Max      int    `yaml:"max" json:"max"`
	MinLabel string `yaml:"min_label" json:"minLabel"`
	MaxLabel string `yaml:"max_label" json:"maxLabel"`
}

// Points returns every value on the scale from Min to Max inclusive.
func (s Scale) Points() []int {
	if s.Max < s.Min {
		return nil
	}
	out := make([]int, 0, s.Max-s.Min+1)
	for v := s.Min; v <= s.Max; v++ {
		out = append(out, v)
	}
	return out
}

// Label returns the display label for value v: the endpoint labels at the
// ends of the scale and the bare number in between.
func (s Scale) Label(v int) string {
	switch v {
	case s.Min:
		if s.MinLabel != "" {
			return s.MinLabel
		}
	case s.Max:
		if s.MaxLabel != "" {
			return s.MaxLabel
		}
	}
	return strconv.Itoa(v)
}

// Question is a single prompt in the assessment.
type Question struct {
	ID         string       `yaml:"id" json:"id"`
	Text       string       `yaml:"text" json:"text"`
	Type       QuestionType `yaml:"type" json:"type"`
	Options    []string     `yaml:"options,omitempty" json:"options,omitempty"`
	Scale      *Scale       `yaml:"scale,omitempty" json:"scale,omitempty"`
	Categories []Category   `yaml:"categories,omitempty" json:"categories,omitempty"`
}

// HasCategory reports whether the question is tagged with c.
func (q Question) HasCategory(c Category) bool {
	for _, qc := range q.Categories {
		if qc == c {
			return true
		}
	}
	return false
}

// Section groups an ordered run of questions under a heading.
type Section struct {
	ID          string     `yaml:"id" json:"id"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Questions   []Question `yaml:"questions" json:"questions"`
}
