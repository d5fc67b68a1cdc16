package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerfit/internal/assessment"
	"github.com/abhisek/careerfit/internal/questionbank"
	"github.com/abhisek/careerfit/internal/router"
	"github.com/abhisek/careerfit/internal/screens"
	"github.com/abhisek/careerfit/internal/screens/results"
	"github.com/abhisek/careerfit/internal/scoring"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testDeps(bank *questionbank.Bank) screens.Deps {
	return screens.Deps{Bank: bank, Scoring: scoring.DefaultConfig()}
}

func testQuiz() *QuizScreen {
	bank := questionbank.Default()
	return New(testDeps(bank), assessment.New(bank))
}

func TestQuiz_EnterNeedsAnswer(t *testing.T) {
	s := testQuiz()
	_, cmd := s.Update(specialKey(tea.KeyEnter))

	if cmd != nil {
		t.Error("expected no command without an answer")
	}
	if s.hint != hintNeedAnswer {
		t.Errorf("hint = %q, want %q", s.hint, hintNeedAnswer)
	}
	if got := s.nav.Position(); got != (questionbank.Position{}) {
		t.Errorf("position moved to %+v", got)
	}
	if s.Status() != "Question 1 of 19" {
		t.Errorf("Status = %q", s.Status())
	}

	// Moving the cursor alone is not an answer.
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	if len(s.nav.Answers()) != 0 {
		t.Error("cursor movement should not record an answer")
	}
}

func TestQuiz_RecordsLikertAndAdvances(t *testing.T) {
	s := testQuiz()
	s.Update(keyPress('5'))
	s.Update(specialKey(tea.KeyEnter))

	answers := s.nav.Answers()
	if len(answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(answers))
	}
	a := answers[0]
	if a.QuestionID != "interest_1" || a.Section != "psychometric" || !a.Value.Equal(assessment.Int(5)) {
		t.Errorf("unexpected answer %+v", a)
	}
	if q, _ := s.nav.CurrentQuestion(); q.ID != "interest_2" {
		t.Errorf("current question = %q, want interest_2", q.ID)
	}
	if s.Status() != "Question 2 of 19" {
		t.Errorf("Status = %q", s.Status())
	}
}

func TestQuiz_BackRestoresChoice(t *testing.T) {
	s := testQuiz()
	s.Update(keyPress('4'))
	s.Update(specialKey(tea.KeyEnter))

	s.Update(keyPress('b'))
	if s.nav.CanRetreat() {
		t.Fatal("expected to be back at the first question")
	}
	if s.choice.Chosen != 3 {
		t.Errorf("Chosen = %d, want earlier answer at index 3", s.choice.Chosen)
	}

	// Back at the very first question is a no-op.
	s.Update(specialKey(tea.KeyLeft))
	if q, _ := s.nav.CurrentQuestion(); q.ID != "interest_1" {
		t.Errorf("current question = %q", q.ID)
	}
}

func TestQuiz_SelectionRecordedBeforeEnter(t *testing.T) {
	s := testQuiz()
	s.Update(keyPress('4'))
	s.Update(specialKey(tea.KeyEnter))

	// Choose on interest_2 and go back without pressing Enter.
	s.Update(keyPress('2'))
	if a, ok := s.nav.AnswerFor("interest_2"); !ok || !a.Value.Equal(assessment.Int(2)) {
		t.Fatalf("selection not recorded: %+v, %v", a, ok)
	}
	s.Update(keyPress('b'))
	if q, _ := s.nav.CurrentQuestion(); q.ID != "interest_1" {
		t.Fatalf("current question = %q, want interest_1", q.ID)
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.choice.Chosen != 1 {
		t.Errorf("Chosen = %d, want the kept selection at index 1", s.choice.Chosen)
	}
	if got := s.nav.Progress().Answered; got != 2 {
		t.Errorf("Answered = %d, want 2", got)
	}
}

func TestQuiz_BackKeepsScenarioText(t *testing.T) {
	bank := questionbank.MustNew([]questionbank.Section{{
		ID:    "open",
		Title: "Open",
		Questions: []questionbank.Question{
			{ID: "choice_1", Text: "Pick", Type: questionbank.TypeMultipleChoice, Options: []string{"a", "b"}},
			{ID: "scenario_open", Text: "Explain", Type: questionbank.TypeScenario},
		},
	}})
	s := New(testDeps(bank), assessment.New(bank))
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEnter))

	for _, r := range "grading" {
		s.Update(keyPress(r))
	}
	s.Update(specialKey(tea.KeyPgUp))

	a, ok := s.nav.AnswerFor("scenario_open")
	if !ok || !a.Value.Equal(assessment.Text("grading")) {
		t.Errorf("scenario text lost on back: %+v, %v", a, ok)
	}
}

func TestQuiz_MultipleChoiceRecordsOptionText(t *testing.T) {
	s := testQuiz()
	for range 4 {
		s.Update(keyPress('3'))
		s.Update(specialKey(tea.KeyEnter))
	}
	// cognitive_1 is the fifth question.
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyEnter))

	a, ok := s.nav.AnswerFor("cognitive_1")
	if !ok {
		t.Fatal("cognitive_1 not recorded")
	}
	if !a.Value.Equal(assessment.Text("Breaking them into systematic, repeatable steps")) {
		t.Errorf("recorded %q", a.Value.String())
	}
}

func TestQuiz_CompletionHandsOverToResults(t *testing.T) {
	s := testQuiz()
	total := s.nav.Bank().Total()

	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		s.Update(keyPress('1'))
		_, cmd = s.Update(specialKey(tea.KeyEnter))
		if i < total-1 && cmd != nil {
			t.Fatalf("unexpected command after question %d", i+1)
		}
	}

	if !s.nav.IsComplete() {
		t.Fatal("expected navigator to be complete")
	}
	if cmd == nil {
		t.Fatal("expected a command on completion")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
}

func TestQuiz_ScenarioInput(t *testing.T) {
	bank := questionbank.MustNew([]questionbank.Section{{
		ID:    "open",
		Title: "Open",
		Questions: []questionbank.Question{
			{ID: "scenario_9", Text: "Describe a return you handled", Type: questionbank.TypeScenario},
		},
	}})
	s := New(testDeps(bank), assessment.New(bank))

	if s.CapturingInput() {
		t.Error("empty input should not capture Esc")
	}
	for _, r := range "refund" {
		s.Update(keyPress(r))
	}
	if !s.CapturingInput() {
		t.Error("typed input should capture Esc")
	}
	// b is text here, not back.
	s.Update(keyPress('b'))
	if s.input.Value() != "refundb" {
		t.Errorf("input = %q", s.input.Value())
	}

	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected completion command")
	}
	a, _ := s.nav.AnswerFor("scenario_9")
	if !a.Value.Equal(assessment.Text("refundb")) {
		t.Errorf("recorded %q", a.Value.String())
	}
}

func TestQuiz_View(t *testing.T) {
	s := testQuiz()
	view := s.View(100, 40)
	for _, want := range []string{
		"Psychometric Evaluation",
		"Section 1 of 3",
		"I enjoy solving logistical issues",
		"Strongly Disagree",
		"Technical & Aptitude Assessment",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
