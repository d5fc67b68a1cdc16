package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens"
	"github.com/abhisek/careerfit/internal/screens/history"
	"github.com/abhisek/careerfit/internal/screens/quiz"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

const (
	labelStart  = "START ASSESSMENT"
	labelResume = "RESUME ASSESSMENT"
)

// HomeScreen is the landing screen. It owns the navigator so that leaving
// the quiz with Esc and coming back resumes the same run.
type HomeScreen struct {
	deps screens.Deps
	nav  *assessment.Navigator
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps screens.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps, nav: assessment.New(deps.Bank)}

	items := []components.MenuItem{
		{Label: labelStart, Action: func() tea.Cmd {
			if h.nav.IsComplete() {
				h.nav.Reset()
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: quiz.New(h.deps, h.nav)}
			}
		}},
		{Label: "HISTORY", Disabled: deps.Reports == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(h.deps.Reports, h.deps.Logger())}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// inProgress reports whether a run was left part way through.
func (h *HomeScreen) inProgress() bool {
	return !h.nav.IsComplete() && len(h.nav.Answers()) > 0
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactHeight(height+6) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	h.menu.Items[0].Label = labelStart
	if h.inProgress() {
		h.menu.Items[0].Label = labelResume
	}

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderIntro(h.deps, cw, compact))
	if h.inProgress() {
		p := h.nav.Progress()
		sections = append(sections, renderProgressNote(fmt.Sprintf("%d of %d answered", p.Answered, p.Total), cw))
	}
	if compact {
		sections = append(sections, renderMenuCompact(h.menu, cw))
	} else {
		sections = append(sections, renderMenu(h.menu, cw))
	}
	if !h.deps.Advisor.Available() {
		sections = append(sections, renderLLMBanner(cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}
