package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/ui/theme"
)

// NoChoice is the Chosen value of a ChoiceList nothing has been picked from.
const NoChoice = -1

// ChoiceList is a single-select list. The cursor moves with the arrow keys;
// space or the option's number picks it. Picking is separate from moving so
// that a screen can refuse to continue until something has been chosen.
type ChoiceList struct {
	Options  []string
	Cursor   int
	Chosen   int
	Numbered bool
}

// NewChoiceList creates a numbered list with nothing chosen.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options, Chosen: NoChoice, Numbered: true}
}

// Choose marks option i as chosen and moves the cursor to it. Out of range
// indices are ignored.
func (c *ChoiceList) Choose(i int) {
	if i < 0 || i >= len(c.Options) {
		return
	}
	c.Chosen = i
	c.Cursor = i
}

// HasChoice reports whether an option has been chosen.
func (c ChoiceList) HasChoice() bool {
	return c.Chosen >= 0 && c.Chosen < len(c.Options)
}

// Update handles cursor movement and picking.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "space":
		c.Choose(c.Cursor)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			c.Choose(int(key[0] - '1'))
		}
	}
	return c, nil
}

// View renders the options, numbered from 1 when Numbered is set.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		mark := "( )"
		if i == c.Chosen {
			mark = "(•)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, mark, opt)
		if c.Numbered {
			line = fmt.Sprintf("%s%s %d. %s", prefix, mark, i+1, opt)
		}

		switch {
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
