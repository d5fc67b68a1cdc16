package assessment

// SectionProgress summarises one section for a progress listing.
type SectionProgress struct {
	ID        string
	Title     string
	Answered  int
	Questions int
	Current   bool
	Completed bool
}

// Progress summarises how far a run has got.
type Progress struct {
	Answered     int
	Total        int
	SectionIndex int
	SectionCount int
	Sections     []SectionProgress
}

// Fraction returns answered/total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	f := float64(p.Answered) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// QuestionNumber is the one-based number shown as "Question N of T".
// It counts answers given, so revisiting earlier questions does not move it.
func (p Progress) QuestionNumber() int {
	if p.Answered >= p.Total {
		return p.Total
	}
	return p.Answered + 1
}

// Progress reports answered counts overall and per section. Sections
// before the current one are completed; per-section counts use the
// section each answer was recorded against.
func (n *Navigator) Progress() Progress {
	bySection := make(map[string]int)
	for _, a := range n.state.Answers {
		bySection[a.Section]++
	}

	p := Progress{
		Answered:     len(n.state.Answers),
		Total:        n.bank.Total(),
		SectionIndex: n.state.CurrentSection,
		SectionCount: n.bank.SectionCount(),
	}
	for i, s := range n.bank.Sections() {
		p.Sections = append(p.Sections, SectionProgress{
			ID:        s.ID,
			Title:     s.Title,
			Answered:  bySection[s.ID],
			Questions: len(s.Questions),
			Current:   i == n.state.CurrentSection && !n.state.IsComplete,
			Completed: i < n.state.CurrentSection || n.state.IsComplete,
		})
	}
	return p
}
