// Package report builds the exportable summary of a scored assessment.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/careerfit/internal/scoring"
)

// DefaultFileName is the suggested name for an exported report.
const DefaultFileName = "reverse-logistics-assessment-results.json"

// TimestampLayout formats report timestamps as UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ErrIncomplete is returned when a report is requested for an assessment
// that has not been finished.
var ErrIncomplete = errors.New("assessment is not complete")

// Scores groups the component scores of a report.
type Scores struct {
	PsychologicalFit   int            `json:"psychologicalFit"`
	TechnicalReadiness int            `json:"technicalReadiness"`
	WISCAR             scoring.WISCAR `json:"wiscar"`
}

// Report is the exported JSON document.
type Report struct {
	Timestamp         string                 `json:"timestamp"`
	OverallConfidence int                    `json:"overallConfidence"`
	Recommendation    scoring.Recommendation `json:"recommendation"`
	Scores            Scores                 `json:"scores"`
	SkillGaps         []string               `json:"skillGaps"`
	LearningPath      []string               `json:"learningPath"`
	CareerMatches     []string               `json:"careerMatches"`
}

// New builds a report for r stamped with at.
func New(r scoring.Results, at time.Time) Report {
	return Report{
		Timestamp:         at.UTC().Format(TimestampLayout),
		OverallConfidence: r.OverallConfidence,
		Recommendation:    r.Recommendation,
		Scores: Scores{
			PsychologicalFit:   r.PsychologicalFit,
			TechnicalReadiness: r.TechnicalReadiness,
			WISCAR:             r.WISCAR,
		},
		SkillGaps:     nonNil(r.SkillGaps),
		LearningPath:  nonNil(r.LearningPath),
		CareerMatches: nonNil(r.CareerMatches),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

// Results reconstructs the scoring results a report was built from.
func (r Report) Results() scoring.Results {
	return scoring.Results{
		PsychologicalFit:   r.Scores.PsychologicalFit,
		TechnicalReadiness: r.Scores.TechnicalReadiness,
		WISCAR:             r.Scores.WISCAR,
		OverallConfidence:  r.OverallConfidence,
		Recommendation:     r.Recommendation,
		SkillGaps:          r.SkillGaps,
		LearningPath:       r.LearningPath,
		CareerMatches:      r.CareerMatches,
	}
}

// Marshal encodes the report as two-space indented JSON.
func (r Report) Marshal() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// WriteFile validates the report and writes it to path, creating parent
// directories as needed.
func (r Report) WriteFile(path string) error {
	data, err := r.Marshal()
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := Validate(data); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Parse decodes and validates a report document.
func Parse(data []byte) (Report, error) {
	if err := Validate(data); err != nil {
		return Report{}, err
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return r, nil
}

// ShareText is the one-line summary offered for sharing.
func ShareText(r scoring.Results) string {
	return fmt.Sprintf("I just completed the Reverse Logistics Planner Assessment! My overall confidence score is %d%%. Check it out!", r.OverallConfidence)
}
