package scoring

// Recommendation is the overall verdict tier.
type Recommendation string

const (
	StrongFit   Recommendation = "strong-fit"
	ExploreMore Recommendation = "explore-more"
	NotFitYet   Recommendation = "not-fit-yet"
)

// Title is the headline shown for the tier.
func (r Recommendation) Title() string {
	switch r {
	case StrongFit:
		return "Strong Fit - Ready to Begin!"
	case ExploreMore:
		return "Promising Potential - Explore More"
	case NotFitYet:
		return "Consider Alternative Paths"
	default:
		return string(r)
	}
}

// Description is the advice paragraph shown for the tier.
func (r Recommendation) Description() string {
	switch r {
	case StrongFit:
		return "You are well-positioned to enter this field. Start learning with reverse logistics software or KPI frameworks."
	case ExploreMore:
		return "You show curiosity and moderate ability. Try a foundational course in logistics and inventory flow."
	case NotFitYet:
		return "This domain may not be your natural fit. Explore supply chain visualization or customer logistics roles instead."
	default:
		return ""
	}
}

// WISCAR holds the six readiness dimensions, each 0-100.
type WISCAR struct {
	Will      int `json:"will"`
	Interest  int `json:"interest"`
	Skill     int `json:"skill"`
	Cognitive int `json:"cognitive"`
	Ability   int `json:"ability"`
	RealWorld int `json:"realWorld"`
}

// Average returns the unrounded mean of the six dimensions.
func (w WISCAR) Average() float64 {
	return float64(w.Will+w.Interest+w.Skill+w.Cognitive+w.Ability+w.RealWorld) / 6
}

// Results is the outcome of scoring one completed assessment.
type Results struct {
	PsychologicalFit   int            `json:"psychologicalFit"`
	TechnicalReadiness int            `json:"technicalReadiness"`
	WISCAR             WISCAR         `json:"wiscar"`
	OverallConfidence  int            `json:"overallConfidence"`
	Recommendation     Recommendation `json:"recommendation"`
	SkillGaps          []string       `json:"skillGaps"`
	LearningPath       []string       `json:"learningPath"`
	CareerMatches      []string       `json:"careerMatches"`
}

// Score returns the value of dimension d.
func (r Results) Score(d Dimension) (int, bool) {
	switch d {
	case DimPsychologicalFit:
		return r.PsychologicalFit, true
	case DimTechnicalReadiness:
		return r.TechnicalReadiness, true
	case DimWill:
		return r.WISCAR.Will, true
	case DimInterest:
		return r.WISCAR.Interest, true
	case DimSkill:
		return r.WISCAR.Skill, true
	case DimCognitive:
		return r.WISCAR.Cognitive, true
	case DimAbility:
		return r.WISCAR.Ability, true
	case DimRealWorld:
		return r.WISCAR.RealWorld, true
	}
	return 0, false
}
