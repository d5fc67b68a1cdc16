package results

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/advisor"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const barLabelWidth = 22

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	res := s.results

	var b strings.Builder
	b.WriteString("\n")

	// Verdict card.
	verdict := lipgloss.NewStyle().Foreground(components.TierColor(res.Recommendation)).Bold(true).Render(res.Recommendation.Title()) +
		"\n\n" +
		theme.Body.Render(fmt.Sprintf("Overall confidence: %d%%", res.OverallConfidence)) +
		"\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw-6).Render(res.Recommendation.Description())
	b.WriteString(components.AccentPanel(verdict, cw, components.TierColor(res.Recommendation)))
	b.WriteString("\n\n")

	b.WriteString(renderScores(res, cw))
	b.WriteString("\n")
	b.WriteString(renderGaps(res))
	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("Career matches"))
	b.WriteString("\n")
	for _, c := range res.CareerMatches {
		b.WriteString(theme.Body.Render("  • " + c))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.renderAdvice(cw))

	if s.showShare {
		b.WriteString("\n")
		b.WriteString(components.Panel(theme.Body.Width(cw-6).Render(report.ShareText(res)), cw))
		b.WriteString("\n")
	}
	if s.status != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.saving {
		b.WriteString(theme.Body.Render("Save report as:"))
		b.WriteString("\n")
		b.WriteString(s.input.View())
	} else {
		b.WriteString(s.menu.View())
	}

	body := lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
	return s.clip(body, height)
}

// clip shows height lines starting at the scroll offset.
func (s *ResultsScreen) clip(body string, height int) string {
	lines := strings.Split(body, "\n")
	if height <= 0 || len(lines) <= height {
		s.scroll = 0
		return body
	}
	maxScroll := len(lines) - height
	s.scroll = min(s.scroll, maxScroll)
	return strings.Join(lines[s.scroll:s.scroll+height], "\n")
}

func renderScores(res scoring.Results, cw int) string {
	w := res.WISCAR
	rows := []struct {
		label string
		score int
	}{
		{"Psychological Fit", res.PsychologicalFit},
		{"Technical Readiness", res.TechnicalReadiness},
		{"Will", w.Will},
		{"Interest", w.Interest},
		{"Skill", w.Skill},
		{"Cognitive Readiness", w.Cognitive},
		{"Ability to Learn", w.Ability},
		{"Real-World Alignment", w.RealWorld},
	}

	var b strings.Builder
	b.WriteString(theme.Heading.Render("Scores"))
	b.WriteString("\n")
	for i, r := range rows {
		if i == 2 {
			b.WriteString(theme.Subtitle.Render("WISCAR"))
			b.WriteString("\n")
		}
		b.WriteString(components.NewScoreBar(r.label, r.score, barLabelWidth, cw).View())
		b.WriteString("\n")
	}
	return b.String()
}

func renderGaps(res scoring.Results) string {
	var b strings.Builder
	b.WriteString(theme.Heading.Render("Skill gaps and learning path"))
	b.WriteString("\n")
	if len(res.SkillGaps) == 0 {
		b.WriteString(theme.Hint.Render("  No major gaps found"))
		b.WriteString("\n")
		return b.String()
	}
	for i, gap := range res.SkillGaps {
		line := "  • " + gap
		if i < len(res.LearningPath) {
			line += " → " + res.LearningPath[i]
		}
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *ResultsScreen) renderAdvice(cw int) string {
	var b strings.Builder
	title := "Advice"
	if s.advice.Source == advisor.SourceLLM && s.advice.Model != "" {
		title += " (" + s.advice.Model + ")"
	}
	b.WriteString(theme.Heading.Render(title))
	b.WriteString("\n")

	switch {
	case s.adviceLoading:
		b.WriteString(theme.Hint.Render("  Asking the coach..."))
		b.WriteString("\n")
	case s.adviceErr != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  Advice unavailable: " + s.adviceErr))
		b.WriteString("\n")
	}

	adv := s.advice
	b.WriteString(theme.Body.Width(cw).Render(adv.Summary))
	b.WriteString("\n")
	if len(adv.Strengths) > 0 {
		b.WriteString(theme.Subtitle.Render("Strengths"))
		b.WriteString("\n")
		for _, st := range adv.Strengths {
			b.WriteString(theme.Body.Render("  + " + st))
			b.WriteString("\n")
		}
	}
	if len(adv.NextSteps) > 0 {
		b.WriteString(theme.Subtitle.Render("Next steps"))
		b.WriteString("\n")
		for i, st := range adv.NextSteps {
			b.WriteString(theme.Body.Render(fmt.Sprintf("  %d. %s", i+1, st)))
			b.WriteString("\n")
		}
	}
	if adv.SuggestedRole != "" {
		b.WriteString(theme.Subtitle.Render("Suggested first role: "))
		b.WriteString(theme.Body.Render(adv.SuggestedRole))
		b.WriteString("\n")
	}
	return b.String()
}
