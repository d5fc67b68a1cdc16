package questionbank

import (
	"fmt"
	"slices"
)

// Position locates a question within a bank.
type Position struct {
	Section  int
	Question int
}

// Bank is an immutable, validated set of sections with lookup indices.
type Bank struct {
	sections []Section
	byID     map[string]Position
	offsets  []int // flat index of each section's first question
	total    int
}

// New validates sections and builds a Bank from them. Questions without
// explicit category tags get tags inferred from their id.
func New(sections []Section) (*Bank, error) {
	cloned := make([]Section, len(sections))
	for i, s := range sections {
		cloned[i] = s
		cloned[i].Questions = make([]Question, len(s.Questions))
		for j, q := range s.Questions {
			q.Options = slices.Clone(q.Options)
			q.Categories = slices.Clone(q.Categories)
			if q.Scale != nil {
				sc := *q.Scale
				q.Scale = &sc
			}
			if len(q.Categories) == 0 {
				q.Categories = InferCategories(q.ID)
			}
			cloned[i].Questions[j] = q
		}
	}

	if err := validateSections(cloned); err != nil {
		return nil, err
	}

	b := &Bank{
		sections: cloned,
		byID:     make(map[string]Position),
		offsets:  make([]int, len(cloned)),
	}
	for si, s := range cloned {
		b.offsets[si] = b.total
		for qi, q := range s.Questions {
			b.byID[q.ID] = Position{Section: si, Question: qi}
		}
		b.total += len(s.Questions)
	}
	return b, nil
}

// MustNew is like New but panics on an invalid bank.
func MustNew(sections []Section) *Bank {
	b, err := New(sections)
	if err != nil {
		panic(fmt.Sprintf("questionbank: %v", err))
	}
	return b
}

// Sections returns the bank's sections in order.
func (b *Bank) Sections() []Section {
	return b.sections
}

// SectionCount returns the number of sections.
func (b *Bank) SectionCount() int {
	return len(b.sections)
}

// Section returns the section at index i.
func (b *Bank) Section(i int) (Section, bool) {
	if i < 0 || i >= len(b.sections) {
		return Section{}, false
	}
	return b.sections[i], true
}

// QuestionCount returns the number of questions in section i, or 0 when
// i is out of range.
func (b *Bank) QuestionCount(i int) int {
	if i < 0 || i >= len(b.sections) {
		return 0
	}
	return len(b.sections[i].Questions)
}

// Total returns the number of questions across all sections.
func (b *Bank) Total() int {
	return b.total
}

// At returns the question at the given position.
func (b *Bank) At(p Position) (Question, bool) {
	if p.Section < 0 || p.Section >= len(b.sections) {
		return Question{}, false
	}
	qs := b.sections[p.Section].Questions
	if p.Question < 0 || p.Question >= len(qs) {
		return Question{}, false
	}
	return qs[p.Question], true
}

// FlatIndex returns the zero-based position of p across the whole bank.
func (b *Bank) FlatIndex(p Position) int {
	if p.Section < 0 || p.Section >= len(b.offsets) {
		return -1
	}
	return b.offsets[p.Section] + p.Question
}

// Lookup returns the question with the given id.
func (b *Bank) Lookup(id string) (Question, bool) {
	p, ok := b.byID[id]
	if !ok {
		return Question{}, false
	}
	return b.At(p)
}

// PositionOf returns where the question with the given id lives.
func (b *Bank) PositionOf(id string) (Position, bool) {
	p, ok := b.byID[id]
	return p, ok
}

// SectionID returns the id of the section that owns question id.
func (b *Bank) SectionID(id string) string {
	p, ok := b.byID[id]
	if !ok {
		return ""
	}
	return b.sections[p.Section].ID
}

// CategoriesFor returns the category tags of question id. Ids unknown to
// the bank fall back to InferCategories.
func (b *Bank) CategoriesFor(id string) []Category {
	if q, ok := b.Lookup(id); ok {
		return q.Categories
	}
	return InferCategories(id)
}
