// Package assessment tracks a single run through a question bank: the
// current position, the answers given so far and whether the run is done.
package assessment

import (
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/careerfit/internal/questionbank"
)

// State is a snapshot of a Navigator. The zero value is the initial state.
type State struct {
	CurrentSection  int      `json:"currentSection"`
	CurrentQuestion int      `json:"currentQuestion"`
	Answers         []Answer `json:"answers"`
	IsComplete      bool     `json:"isComplete"`
}

// Navigator walks the sections and questions of a bank in order and
// collects answers. It is owned by one caller and is not safe for
// concurrent use; independent runs use independent Navigators.
type Navigator struct {
	bank  *questionbank.Bank
	id    string
	state State
}

// New creates a Navigator positioned at the first question of bank.
func New(bank *questionbank.Bank) *Navigator {
	return &Navigator{bank: bank, id: uuid.NewString()}
}

// ID identifies this run. It changes on Reset.
func (n *Navigator) ID() string { return n.id }

// Bank returns the question bank being navigated.
func (n *Navigator) Bank() *questionbank.Bank { return n.bank }

// State returns a copy of the current state.
func (n *Navigator) State() State {
	s := n.state
	s.Answers = slices.Clone(n.state.Answers)
	return s
}

// RecordAnswer stores a, replacing any earlier answer to the same question
// in place. Values are not checked against the question.
func (n *Navigator) RecordAnswer(a Answer) {
	for i := range n.state.Answers {
		if n.state.Answers[i].QuestionID == a.QuestionID {
			n.state.Answers[i] = a
			return
		}
	}
	n.state.Answers = append(n.state.Answers, a)
}

// Record is RecordAnswer for callers holding the parts separately.
func (n *Navigator) Record(questionID string, v Value, sectionID string) {
	n.RecordAnswer(Answer{QuestionID: questionID, Value: v, Section: sectionID})
}

// Advance moves to the next question, rolling into the next section at a
// boundary. On the last question of the last section it marks the run
// complete instead. It does nothing once complete.
func (n *Navigator) Advance() {
	if n.state.IsComplete {
		return
	}
	lastInSection := n.state.CurrentQuestion >= n.bank.QuestionCount(n.state.CurrentSection)-1
	lastSection := n.state.CurrentSection >= n.bank.SectionCount()-1

	switch {
	case lastInSection && lastSection:
		n.state.IsComplete = true
	case lastInSection:
		n.state.CurrentSection++
		n.state.CurrentQuestion = 0
	default:
		n.state.CurrentQuestion++
	}
}

// Retreat moves to the previous question, rolling back into the previous
// section's last question at a boundary. It does nothing at the very
// first question or once complete.
func (n *Navigator) Retreat() {
	if n.state.IsComplete {
		return
	}
	switch {
	case n.state.CurrentQuestion > 0:
		n.state.CurrentQuestion--
	case n.state.CurrentSection > 0:
		n.state.CurrentSection--
		n.state.CurrentQuestion = n.bank.QuestionCount(n.state.CurrentSection) - 1
	}
}

// CanRetreat reports whether the position is past the very first question.
func (n *Navigator) CanRetreat() bool {
	return n.state.CurrentSection > 0 || n.state.CurrentQuestion > 0
}

// MarkComplete ends the run regardless of position.
func (n *Navigator) MarkComplete() {
	n.state.IsComplete = true
}

// Reset discards all answers and returns to the initial state.
func (n *Navigator) Reset() {
	n.state = State{}
	n.id = uuid.NewString()
}

// IsComplete reports whether the run has ended.
func (n *Navigator) IsComplete() bool { return n.state.IsComplete }

// IsLast reports whether the position is the last question of the bank.
func (n *Navigator) IsLast() bool {
	return n.state.CurrentSection == n.bank.SectionCount()-1 &&
		n.state.CurrentQuestion == n.bank.QuestionCount(n.state.CurrentSection)-1
}

// Position returns the current section and question indices.
func (n *Navigator) Position() questionbank.Position {
	return questionbank.Position{Section: n.state.CurrentSection, Question: n.state.CurrentQuestion}
}

// CurrentSection returns the section at the current position.
func (n *Navigator) CurrentSection() (questionbank.Section, bool) {
	return n.bank.Section(n.state.CurrentSection)
}

// CurrentQuestion returns the question at the current position.
func (n *Navigator) CurrentQuestion() (questionbank.Question, bool) {
	return n.bank.At(n.Position())
}

// Answers returns a copy of the recorded answers in recording order.
func (n *Navigator) Answers() []Answer {
	return slices.Clone(n.state.Answers)
}

// AnswerFor returns the answer recorded for questionID.
func (n *Navigator) AnswerFor(questionID string) (Answer, bool) {
	for _, a := range n.state.Answers {
		if a.QuestionID == questionID {
			return a, true
		}
	}
	return Answer{}, false
}
