package assessment

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/abhisek/careerfit/internal/questionbank"
)

// Answer is one recorded response. Section is the id of the section that
// owned the question when it was answered.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      Value  `json:"answer"`
	Section    string `json:"section"`
}

// ErrInvalidAnswer is wrapped by CheckAnswer failures.
var ErrInvalidAnswer = errors.New("invalid answer")

// ParseValue converts raw display-layer input for q into a Value. Likert
// input that parses as an integer becomes Int; everything else is kept as
// Text so that scoring can degrade it to a zero contribution.
func ParseValue(q questionbank.Question, raw string) Value {
	if q.Type == questionbank.TypeLikert {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return Int(n)
		}
	}
	return Text(raw)
}

// CheckAnswer verifies that v has the shape q expects. Recording never
// calls it; callers that want strict input run it themselves.
func CheckAnswer(q questionbank.Question, v Value) error {
	switch q.Type {
	case questionbank.TypeLikert:
		n, ok := v.AsInt()
		if !ok {
			return fmt.Errorf("%w: %s expects an integer rating, got %q", ErrInvalidAnswer, q.ID, v.String())
		}
		if q.Scale != nil && (n < q.Scale.Min || n > q.Scale.Max) {
			return fmt.Errorf("%w: %s rating %d outside %d..%d", ErrInvalidAnswer, q.ID, n, q.Scale.Min, q.Scale.Max)
		}
	case questionbank.TypeMultipleChoice, questionbank.TypeRanking:
		s, ok := v.AsText()
		if !ok {
			return fmt.Errorf("%w: %s expects one of its options, got %d", ErrInvalidAnswer, q.ID, v.num)
		}
		if !slices.Contains(q.Options, s) {
			return fmt.Errorf("%w: %s has no option %q", ErrInvalidAnswer, q.ID, s)
		}
	case questionbank.TypeScenario:
		if s, ok := v.AsText(); !ok || strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: %s expects a written response", ErrInvalidAnswer, q.ID)
		}
	}
	return nil
}
