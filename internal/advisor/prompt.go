package advisor

import (
	"fmt"
	"strings"

	"github.com/abhisek/careerfit/internal/scoring"
)

const systemPrompt = `You are a pragmatic careers coach specialising in supply chain and reverse logistics. A candidate has just finished a readiness assessment for the Reverse Logistics Planner role. Use only the scores you are given. Be direct and encouraging, never invent qualifications, and keep every item short.`

func buildUserMessage(r scoring.Results) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Overall confidence: %d%%\n", r.OverallConfidence)
	fmt.Fprintf(&b, "Verdict: %s (%s)\n", r.Recommendation.Title(), r.Recommendation)
	fmt.Fprintf(&b, "Psychological fit: %d\n", r.PsychologicalFit)
	fmt.Fprintf(&b, "Technical readiness: %d\n", r.TechnicalReadiness)

	b.WriteString("\nWISCAR:\n")
	w := r.WISCAR
	for _, d := range []struct {
		name  string
		score int
	}{
		{"Will", w.Will},
		{"Interest", w.Interest},
		{"Skill", w.Skill},
		{"Cognitive", w.Cognitive},
		{"Ability to learn", w.Ability},
		{"Real-world alignment", w.RealWorld},
	} {
		fmt.Fprintf(&b, "- %s: %d\n", d.name, d.score)
	}

	b.WriteString("\nSkill gaps:\n")
	writeList(&b, r.SkillGaps)
	b.WriteString("\nSuggested courses:\n")
	writeList(&b, r.LearningPath)
	b.WriteString("\nCareer matches:\n")
	writeList(&b, r.CareerMatches)

	return b.String()
}

func writeList(b *strings.Builder, items []string) {
	if len(items) == 0 {
		b.WriteString("None\n")
		return
	}
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
}
