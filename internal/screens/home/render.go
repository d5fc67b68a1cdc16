package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/careerfit/internal/screens"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

const titleFull = `╦═╗┌─┐┬  ┬┌─┐┬─┐┌─┐┌─┐  ╦  ┌─┐┌─┐┬┌─┐┌┬┐┬┌─┐┌─┐
╠╦╝├┤ └┐┌┘├┤ ├┬┘└─┐├┤   ║  │ ││ ┬│└─┐ │ ││  └─┐
╩╚═└─┘ └┘ └─┘┴└─└─┘└─┘  ╩═╝└─┘└─┘┴└─┘ ┴ ┴└─┘└─┘`

const titleCompact = "REVERSE LOGISTICS"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	title := titleFull
	if compact || cw < lipgloss.Width(titleFull) {
		title = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + theme.Subtitle.Render("Planner career readiness assessment"))
}

// renderIntro lists the sections of the bank in a card.
func renderIntro(deps screens.Deps, cw int, compact bool) string {
	bank := deps.Bank
	var b strings.Builder
	b.WriteString(theme.Body.Render(fmt.Sprintf("%d questions in %d sections, about 10 minutes.", bank.Total(), bank.SectionCount())))
	if !compact {
		b.WriteString("\n")
		for i, sec := range bank.Sections() {
			b.WriteString("\n")
			b.WriteString(theme.Selected.Render(fmt.Sprintf("%d. %s", i+1, sec.Title)))
			b.WriteString("\n")
			b.WriteString(theme.Subtitle.Render("   " + sec.Description))
		}
	}
	return components.Panel(b.String(), cw)
}

func renderProgressNote(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("In progress: " + text)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(m components.Menu, cw int) string {
	base := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	selectedBtn := base.
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		BorderForeground(theme.Primary)
	normalBtn := base.
		Foreground(theme.Text).
		BorderForeground(theme.Border)
	disabledBtn := base.
		Foreground(theme.TextDim).
		BorderForeground(theme.Border)

	buttons := make([]string, 0, len(m.Items))
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			buttons = append(buttons, disabledBtn.Render(item.Label))
		case i == m.Selected:
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		default:
			buttons = append(buttons, normalBtn.Render(item.Label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as plain lines for small terminals
// where bordered buttons would overflow.
func renderMenuCompact(m components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.TrimRight(m.View(), "\n"))
}

// renderLLMBanner notes that advice falls back to the offline summary.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Set an LLM API key for AI career advice (see careerfit --help)")
}

// renderFrame wraps content in a double border, centred in the given area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
