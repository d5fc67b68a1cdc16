// Package results shows the scored outcome of a finished assessment and
// the follow-up actions: saving the report, advice, sharing and retaking.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/advisor"
	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/report"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/store"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

type archivedMsg struct {
	ID     string
	Pruned int64
	Err    error
}

type adviceMsg struct {
	Advice *advisor.Advice
	Err    error
}

type savedMsg struct {
	Path string
	Err  error
}

// RetakeFunc builds the screen a reset navigator continues on.
type RetakeFunc func(nav *assessment.Navigator) screen.Screen

// ResultsScreen displays scores, gaps, careers and advice.
type ResultsScreen struct {
	deps   screens.Deps
	nav    *assessment.Navigator
	retake RetakeFunc

	results scoring.Results
	report  report.Report

	menu          components.Menu
	advice        advisor.Advice
	adviceLoading bool
	adviceErr     string

	saving bool
	input  components.TextInput

	showShare bool
	status    string
	scroll    int
}

var (
	_ screen.Screen          = (*ResultsScreen)(nil)
	_ screen.KeyHintProvider = (*ResultsScreen)(nil)
	_ screen.InputCapturer   = (*ResultsScreen)(nil)
)

// New scores nav and builds the results screen. retake may be nil, which
// disables the retake action.
func New(deps screens.Deps, nav *assessment.Navigator, retake RetakeFunc) *ResultsScreen {
	res := scoring.Compute(nav.Answers(), nav.Bank(), deps.Scoring)
	s := &ResultsScreen{
		deps:    deps,
		nav:     nav,
		retake:  retake,
		results: res,
		report:  report.New(res, deps.Clock()),
		advice:  advisor.Offline(res),
	}
	s.menu = components.NewMenu(s.menuItems())
	return s
}

func (s *ResultsScreen) menuItems() []components.MenuItem {
	return []components.MenuItem{
		{Label: "Save report", Action: func() tea.Cmd {
			s.saving = true
			s.input = components.NewTextInput(report.DefaultFileName, report.DefaultFileName, 255)
			return s.input.Init()
		}},
		{Label: "Get AI advice", Disabled: !s.deps.Advisor.Available(), Action: func() tea.Cmd {
			if s.adviceLoading {
				return nil
			}
			s.adviceLoading = true
			s.adviceErr = ""
			return s.adviseCmd()
		}},
		{Label: "Share", Action: func() tea.Cmd {
			s.showShare = !s.showShare
			return nil
		}},
		{Label: "Retake assessment", Disabled: s.retake == nil, Action: func() tea.Cmd {
			s.nav.Reset()
			s.deps.Logger().Info("assessment reset", zap.String("run_id", s.nav.ID()))
			next := s.retake(s.nav)
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}},
		{Label: "Back to home", Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}},
	}
}

// Results returns the computed results.
func (s *ResultsScreen) Results() scoring.Results {
	return s.results
}

func (s *ResultsScreen) Init() tea.Cmd {
	s.deps.Logger().Info("assessment scored",
		zap.String("run_id", s.nav.ID()),
		zap.Int("overall", s.results.OverallConfidence),
		zap.String("recommendation", string(s.results.Recommendation)))

	if !s.deps.Archive || s.deps.Reports == nil || !s.nav.IsComplete() {
		return nil
	}
	return s.archiveCmd()
}

func (s *ResultsScreen) Title() string {
	return "Your Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	if s.saving {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) CapturingInput() bool {
	return s.saving
}

func (s *ResultsScreen) archiveCmd() tea.Cmd {
	reports := s.deps.Reports
	keep := s.deps.ArchiveKeep
	rec := &store.ArchivedReport{
		RunID:     s.nav.ID(),
		AnswerKey: s.deps.AnswerKeyName,
		Answers:   s.nav.Answers(),
		Report:    s.report,
	}
	return func() tea.Msg {
		ctx := context.Background()
		if err := reports.Save(ctx, rec); err != nil {
			return archivedMsg{Err: err}
		}
		var pruned int64
		if keep > 0 {
			n, err := reports.Prune(ctx, keep)
			if err != nil {
				return archivedMsg{ID: rec.ID, Err: fmt.Errorf("prune archive: %w", err)}
			}
			pruned = n
		}
		return archivedMsg{ID: rec.ID, Pruned: pruned}
	}
}

func (s *ResultsScreen) adviseCmd() tea.Cmd {
	adv := s.deps.Advisor
	res := s.results
	return func() tea.Msg {
		a, err := adv.Advise(context.Background(), res)
		return adviceMsg{Advice: a, Err: err}
	}
}

func saveCmd(r report.Report, path string) tea.Cmd {
	return func() tea.Msg {
		return savedMsg{Path: path, Err: r.WriteFile(path)}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	log := s.deps.Logger()

	switch msg := msg.(type) {
	case archivedMsg:
		if msg.Err != nil {
			log.Error("failed to archive report", zap.Error(msg.Err))
			s.status = "Could not archive this result: " + msg.Err.Error()
			return s, nil
		}
		log.Info("report archived", zap.String("id", msg.ID), zap.Int64("pruned", msg.Pruned))
		s.status = "Saved to history"
		return s, nil

	case adviceMsg:
		s.adviceLoading = false
		if msg.Err != nil {
			s.adviceErr = msg.Err.Error()
			return s, nil
		}
		s.advice = *msg.Advice
		return s, nil

	case savedMsg:
		if msg.Err != nil {
			log.Warn("failed to save report", zap.String("path", msg.Path), zap.Error(msg.Err))
			s.input.Submit(false)
			s.status = "Save failed: " + msg.Err.Error()
			return s, nil
		}
		log.Info("report saved", zap.String("path", msg.Path))
		s.saving = false
		s.status = "Report saved to " + msg.Path
		return s, nil

	case tea.KeyPressMsg:
		if s.saving {
			return s, s.updateSaving(msg)
		}
		switch msg.String() {
		case "pgdown":
			s.scroll += 5
			return s, nil
		case "pgup":
			s.scroll = max(s.scroll-5, 0)
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	if s.saving {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultsScreen) updateSaving(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.saving = false
		return nil
	case "enter":
		path := strings.TrimSpace(s.input.Value())
		if path == "" {
			path = report.DefaultFileName
		}
		return saveCmd(s.report, path)
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}
