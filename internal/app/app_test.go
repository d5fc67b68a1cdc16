package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/questionbank"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screens"
	"github.com/abhisek/careerfit/internal/scoring"
)

func testModel() AppModel {
	m := newAppModel(screens.Deps{Bank: questionbank.Default(), Scoring: scoring.DefaultConfig()})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

// pump runs cmd and feeds the resulting message back into the model.
func pump(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	updated, _ := m.Update(cmd())
	return updated.(AppModel)
}

func TestApp_StartAndLeaveQuiz(t *testing.T) {
	m := testModel()
	updated, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = pump(t, updated.(AppModel), cmd)

	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}
	if !strings.Contains(m.render(), "Question 1 of 19") {
		t.Error("expected the question counter in the header")
	}

	updated, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = pump(t, updated.(AppModel), cmd)
	if m.router.Depth() != 1 {
		t.Errorf("depth after Esc = %d, want 1", m.router.Depth())
	}
}

func TestApp_EscAtRootIsNoop(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Error("Esc at the root should not pop")
		}
	}
}

func TestApp_TooSmall(t *testing.T) {
	m := testModel()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	if !strings.Contains(updated.(AppModel).render(), "Terminal too small") {
		t.Error("expected size warning")
	}
}
