package components

import (
	"image/color"

	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// ContentWidth returns the column width screens lay their content out in:
// the frame width less a margin, capped so text stays readable on wide
// terminals.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 30), 76)
}

// Panel wraps content in a rounded card of content width cw.
func Panel(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// AccentPanel is Panel with a coloured border.
func AccentPanel(content string, cw int, border color.Color) string {
	return theme.Card.BorderForeground(border).Width(cw).Render(content)
}

// TierColor is the colour a verdict tier is drawn in.
func TierColor(r scoring.Recommendation) color.Color {
	switch r {
	case scoring.StrongFit:
		return theme.Success
	case scoring.ExploreMore:
		return theme.Warning
	default:
		return theme.Error
	}
}
