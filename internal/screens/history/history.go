// Package history lists archived assessment results.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
	"github.com/abhisek/careerfit/internal/ui/theme"
)

// listLimit caps how many archived reports are loaded.
const listLimit = 50

type historyLoadedMsg struct {
	Reports []store.ArchivedReport
	Err     error
}

type reportDeletedMsg struct {
	ID  string
	Err error
}

// HistoryScreen displays past results, newest first.
type HistoryScreen struct {
	reports  store.ReportRepo
	log      *zap.Logger
	items    []store.ArchivedReport
	selected int
	expanded map[string]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(reports store.ReportRepo, log *zap.Logger) *HistoryScreen {
	if log == nil {
		log = zap.NewNop()
	}
	return &HistoryScreen{
		reports:  reports,
		log:      log,
		expanded: make(map[string]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	reports := s.reports
	return func() tea.Msg {
		items, err := reports.List(context.Background(), store.QueryOpts{Limit: listLimit})
		return historyLoadedMsg{Reports: items, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "d", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.log.Error("failed to load history", zap.Error(msg.Err))
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Reports
		}
		s.loaded = true
		return s, nil

	case reportDeletedMsg:
		if msg.Err != nil {
			s.log.Error("failed to delete report", zap.String("id", msg.ID), zap.Error(msg.Err))
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.log.Info("report deleted", zap.String("id", msg.ID))
		for i, r := range s.items {
			if r.ID == msg.ID {
				s.items = append(s.items[:i], s.items[i+1:]...)
				break
			}
		}
		s.selected = min(s.selected, max(len(s.items)-1, 0))
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
		case "enter":
			if r, ok := s.current(); ok {
				s.expanded[r.ID] = !s.expanded[r.ID]
			}
		case "d":
			if r, ok := s.current(); ok {
				return s, s.deleteCmd(r.ID)
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) current() (store.ArchivedReport, bool) {
	if s.selected < 0 || s.selected >= len(s.items) {
		return store.ArchivedReport{}, false
	}
	return s.items[s.selected], true
}

func (s *HistoryScreen) deleteCmd(id string) tea.Cmd {
	reports := s.reports
	return func() tea.Msg {
		return reportDeletedMsg{ID: id, Err: reports.Delete(context.Background(), id)}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	if s.errMsg != "" {
		return center.Foreground(theme.Error).Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return center.Foreground(theme.TextDim).Render("\n\n  Loading history...")
	}
	if len(s.items) == 0 {
		return center.Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No finished assessments yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, r := range s.items {
		rep := r.Report
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %3d%%  %s",
			prefix, r.CreatedAt.Local().Format("Jan 02, 2006 15:04"), rep.OverallConfidence, rep.Recommendation.Title())

		style := lipgloss.NewStyle().Foreground(components.TierColor(rep.Recommendation))
		if i == s.selected {
			style = style.Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[r.ID] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(details(r))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// details renders the expanded block for one report.
func details(r store.ArchivedReport) string {
	rep := r.Report
	w := rep.Scores.WISCAR
	lines := []string{
		fmt.Sprintf("    Fit %d  Technical %d", rep.Scores.PsychologicalFit, rep.Scores.TechnicalReadiness),
		fmt.Sprintf("    WISCAR  W %d  I %d  S %d  C %d  A %d  R %d",
			w.Will, w.Interest, w.Skill, w.Cognitive, w.Ability, w.RealWorld),
	}
	if len(rep.SkillGaps) == 0 {
		lines = append(lines, "    No gaps")
	} else {
		lines = append(lines, "    Gaps: "+strings.Join(rep.SkillGaps, ", "))
	}
	lines = append(lines, fmt.Sprintf("    %d answers, key %s, id %s", len(r.Answers), r.AnswerKey, r.ID))
	return strings.Join(lines, "\n")
}

