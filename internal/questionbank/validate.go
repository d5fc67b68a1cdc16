package questionbank

import (
	"fmt"
	"strings"
)

// Validate checks the built-in bank.
func Validate() error {
	return validateSections(seedSections())
}

// validateSections performs all structural checks on a bank.
// Returns a combined error describing all problems found, or nil if valid.
func validateSections(sections []Section) error {
	var errs []string

	if len(sections) == 0 {
		errs = append(errs, "bank has no sections")
	}

	sectionIDs := make(map[string]bool, len(sections))
	questionIDs := make(map[string]bool)

	for si, s := range sections {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("section %d has no id", si))
		} else if sectionIDs[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", s.ID))
		}
		sectionIDs[s.ID] = true

		if len(s.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", s.ID))
		}

		for _, q := range s.Questions {
			errs = append(errs, validateQuestion(q, questionIDs)...)
			questionIDs[q.ID] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateQuestion(q Question, seen map[string]bool) []string {
	var errs []string

	if q.ID == "" {
		errs = append(errs, fmt.Sprintf("question %q has no id", q.Text))
	} else if seen[q.ID] {
		errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
	}
	if strings.TrimSpace(q.Text) == "" {
		errs = append(errs, fmt.Sprintf("question %q has no text", q.ID))
	}

	if !q.Type.Valid() {
		errs = append(errs, fmt.Sprintf("question %q has unknown type %q", q.ID, q.Type))
	}
	if q.Type == TypeLikert {
		switch {
		case q.Scale == nil:
			errs = append(errs, fmt.Sprintf("likert question %q has no scale", q.ID))
		case q.Scale.Min >= q.Scale.Max:
			errs = append(errs, fmt.Sprintf("likert question %q has empty scale %d..%d", q.ID, q.Scale.Min, q.Scale.Max))
		}
	}
	if q.Type.HasOptions() && len(q.Options) == 0 {
		errs = append(errs, fmt.Sprintf("%s question %q has no options", q.Type, q.ID))
	}

	for _, c := range q.Categories {
		if !c.Valid() {
			errs = append(errs, fmt.Sprintf("question %q has unknown category %q", q.ID, c))
		}
	}
	return errs
}
