package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/questionbank"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	p := s.nav.Progress()

	var b strings.Builder
	b.WriteString("\n")

	// Section heading and progress.
	b.WriteString(theme.Heading.Render(s.section.Title))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render(s.section.Description))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Section %d of %d", p.SectionIndex+1, p.SectionCount)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", p.Fraction(), true, cw).View())
	b.WriteString("\n\n")

	// Question card.
	var q strings.Builder
	q.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 6).Render(s.question.Text))
	q.WriteString("\n\n")
	switch {
	case s.isScenario():
		q.WriteString(s.input.View())
	default:
		if s.question.Type == questionbank.TypeRanking {
			q.WriteString(theme.Hint.Render("Pick the one you find most appealing"))
			q.WriteString("\n")
		}
		q.WriteString(strings.TrimRight(s.choice.View(), "\n"))
	}
	b.WriteString(components.Panel(q.String(), cw))
	b.WriteString("\n")

	if s.hint != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.hint))
		b.WriteString("\n")
	}

	if height >= 28 {
		b.WriteString("\n")
		b.WriteString(renderSections(p.Sections))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderSections lists each section with its state and answered count.
func renderSections(sections []assessment.SectionProgress) string {
	var b strings.Builder
	for _, sp := range sections {
		var (
			icon  string
			style lipgloss.Style
		)
		switch {
		case sp.Completed:
			icon = "✓"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		case sp.Current:
			icon = "▸"
			style = theme.Selected
		default:
			icon = "○"
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(fmt.Sprintf("%s %s  %d/%d", icon, sp.Title, sp.Answered, sp.Questions)))
		b.WriteString("\n")
	}
	return b.String()
}
