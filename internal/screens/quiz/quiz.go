// Package quiz is the screen that walks a candidate through the question
// bank one question at a time.
package quiz

import (
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/questionbank"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens"
	"github.com/abhisek/careerfit/internal/screens/results"
	"github.com/abhisek/careerfit/internal/ui/components"
	"github.com/abhisek/careerfit/internal/ui/layout"
)

const hintNeedAnswer = "Choose an answer to continue"

// QuizScreen drives an assessment.Navigator.
type QuizScreen struct {
	deps screens.Deps
	nav  *assessment.Navigator

	question questionbank.Question
	section  questionbank.Section
	points   []int // likert values, parallel to choice options
	choice   components.ChoiceList
	input    components.TextInput
	hint     string
}

var (
	_ screen.Screen          = (*QuizScreen)(nil)
	_ screen.KeyHintProvider = (*QuizScreen)(nil)
	_ screen.StatusProvider  = (*QuizScreen)(nil)
	_ screen.InputCapturer   = (*QuizScreen)(nil)
)

// New creates a QuizScreen for nav, positioned wherever nav is.
func New(deps screens.Deps, nav *assessment.Navigator) *QuizScreen {
	s := &QuizScreen{deps: deps, nav: nav}
	s.load()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	s.deps.Logger().Info("assessment started",
		zap.String("run_id", s.nav.ID()),
		zap.Int("questions", s.nav.Bank().Total()))
	return nil
}

func (s *QuizScreen) Title() string {
	return "Assessment"
}

func (s *QuizScreen) Status() string {
	p := s.nav.Progress()
	return "Question " + strconv.Itoa(p.QuestionNumber()) + " of " + strconv.Itoa(p.Total)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.isScenario() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "PgUp", Description: "Back"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Space/1-9", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
		{Key: "←/b", Description: "Back"},
		{Key: "Esc", Description: "Leave"},
	}
}

// CapturingInput keeps Esc from leaving mid-sentence on written answers.
func (s *QuizScreen) CapturingInput() bool {
	return s.isScenario() && s.input.Value() != ""
}

// Navigator returns the navigator being driven.
func (s *QuizScreen) Navigator() *assessment.Navigator {
	return s.nav
}

func (s *QuizScreen) isScenario() bool {
	return s.question.Type == questionbank.TypeScenario
}

// load prepares the widget for the current question, pre-filled with any
// earlier answer to it.
func (s *QuizScreen) load() {
	s.hint = ""
	s.points = nil
	s.section, _ = s.nav.CurrentSection()
	q, ok := s.nav.CurrentQuestion()
	if !ok {
		s.question = questionbank.Question{}
		return
	}
	s.question = q
	prev, answered := s.nav.AnswerFor(q.ID)

	switch {
	case q.Type == questionbank.TypeLikert && q.Scale != nil:
		s.points = q.Scale.Points()
		labels := make([]string, len(s.points))
		for i, v := range s.points {
			labels[i] = likertLabel(*q.Scale, v)
		}
		s.choice = components.NewChoiceList(labels)
		s.choice.Numbered = false
		if answered {
			if n, ok := prev.Value.AsInt(); ok {
				s.choice.Choose(slices.Index(s.points, n))
			}
		}
	case q.Type == questionbank.TypeScenario:
		value := ""
		if answered {
			value = prev.Value.String()
		}
		s.input = components.NewTextInput("Type your answer", value, 500)
	default:
		s.choice = components.NewChoiceList(q.Options)
		if answered {
			if text, ok := prev.Value.AsText(); ok {
				s.choice.Choose(slices.Index(q.Options, text))
			}
		}
	}
}

// likertLabel shows the number with the endpoint label where there is one.
func likertLabel(scale questionbank.Scale, v int) string {
	num := strconv.Itoa(v)
	if label := scale.Label(v); label != num {
		return num + " · " + label
	}
	return num
}

// currentValue returns the answer the widget holds, if any.
func (s *QuizScreen) currentValue() (assessment.Value, bool) {
	switch {
	case s.points != nil:
		if !s.choice.HasChoice() {
			return assessment.Value{}, false
		}
		return assessment.Int(s.points[s.choice.Chosen]), true
	case s.isScenario():
		text := strings.TrimSpace(s.input.Value())
		if text == "" {
			return assessment.Value{}, false
		}
		return assessment.Text(text), true
	default:
		if !s.choice.HasChoice() {
			return assessment.Value{}, false
		}
		return assessment.Text(s.choice.Options[s.choice.Chosen]), true
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.isScenario() {
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		return s, s.next()
	case "pgup":
		s.back()
		return s, nil
	case "esc":
		if s.isScenario() {
			s.input.Model.SetValue("")
		}
		return s, nil
	}

	if s.isScenario() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(kmsg)
		return s, cmd
	}

	switch kmsg.String() {
	case "left", "b", "backspace":
		s.back()
		return s, nil
	}
	s.choice, _ = s.choice.Update(kmsg)
	if s.choice.HasChoice() {
		s.hint = ""
		s.record()
	}
	return s, nil
}

// next records the current answer and moves on. Without an answer it only
// shows a hint. After the last question it hands over to the results.
func (s *QuizScreen) next() tea.Cmd {
	if !s.record() {
		s.hint = hintNeedAnswer
		return nil
	}
	s.nav.Advance()

	if s.nav.IsComplete() {
		s.deps.Logger().Info("assessment completed",
			zap.String("run_id", s.nav.ID()),
			zap.Int("answers", len(s.nav.Answers())))
		res := results.New(s.deps, s.nav, func(n *assessment.Navigator) screen.Screen {
			return New(s.deps, n)
		})
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: res} }
	}
	s.load()
	return nil
}

// record stores whatever the widget holds, reporting false when it holds
// nothing.
func (s *QuizScreen) record() bool {
	v, ok := s.currentValue()
	if !ok {
		return false
	}
	s.nav.Record(s.question.ID, v, s.section.ID)
	return true
}

// back keeps the current selection before moving to the previous question.
func (s *QuizScreen) back() {
	if !s.nav.CanRetreat() {
		return
	}
	s.record()
	s.nav.Retreat()
	s.load()
}
