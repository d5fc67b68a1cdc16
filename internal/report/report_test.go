package report

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/scoring"
)

func sampleResults() scoring.Results {
	return scoring.Results{
		PsychologicalFit:   80,
		TechnicalReadiness: 60,
		WISCAR:             scoring.WISCAR{Will: 70, Interest: 85, Skill: 60, Cognitive: 80, Ability: 70, RealWorld: 75},
		OverallConfidence:  71,
		Recommendation:     scoring.ExploreMore,
		SkillGaps:          []string{"Excel/Data Analysis Skills", "Reverse Logistics Knowledge"},
		LearningPath:       []string{"Excel for Logistics Analytics", "Introduction to Reverse Logistics"},
		CareerMatches:      scoring.DefaultConfig().CareerMatches,
	}
}

func TestNew_Layout(t *testing.T) {
	at := time.Date(2025, 3, 9, 14, 5, 7, 123_000_000, time.FixedZone("IST", 5*3600+1800))
	data, err := New(sampleResults(), at).Marshal()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "2025-03-09T08:35:07.123Z", doc["timestamp"])
	assert.EqualValues(t, 71, doc["overallConfidence"])
	assert.Equal(t, "explore-more", doc["recommendation"])

	scores := doc["scores"].(map[string]any)
	assert.EqualValues(t, 80, scores["psychologicalFit"])
	assert.EqualValues(t, 60, scores["technicalReadiness"])
	wiscar := scores["wiscar"].(map[string]any)
	assert.EqualValues(t, 75, wiscar["realWorld"])
	assert.Len(t, wiscar, 6)

	assert.Len(t, doc, 7)
	assert.True(t, strings.HasPrefix(string(data), "{\n  \"timestamp\""), "expected two-space indent, got %s", data)
}

func TestNew_EmptyListsEncodeAsArrays(t *testing.T) {
	r := sampleResults()
	r.SkillGaps, r.LearningPath = nil, nil
	data, err := New(r, time.Now()).Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"skillGaps": []`)
	assert.NoError(t, Validate(data))
}

func TestValidate_Rejects(t *testing.T) {
	good, err := New(sampleResults(), time.Now()).Marshal()
	require.NoError(t, err)
	require.NoError(t, Validate(good))

	tests := map[string]string{
		"not json":        `{`,
		"missing field":   strings.Replace(string(good), `"recommendation"`, `"verdict"`, 1),
		"bad tier":        strings.Replace(string(good), `"explore-more"`, `"maybe"`, 1),
		"out of range":    strings.Replace(string(good), `"overallConfidence": 71`, `"overallConfidence": 171`, 1),
		"bad timestamp":   strings.Replace(string(good), `"timestamp": "`, `"timestamp": "yesterday`, 1),
		"wrong type list": strings.Replace(string(good), `"careerMatches": [`, `"careerMatches": [1, `, 1),
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			err := Validate([]byte(doc))
			require.Error(t, err)
			var inv *InvalidError
			assert.True(t, errors.As(err, &inv), "want *InvalidError, got %T", err)
		})
	}
}

func TestWriteFileAndParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", DefaultFileName)
	rep := New(sampleResults(), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, rep.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, rep, back)
	assert.Equal(t, sampleResults(), back.Results())
}

func TestShareText(t *testing.T) {
	assert.Equal(t,
		"I just completed the Reverse Logistics Planner Assessment! My overall confidence score is 71%. Check it out!",
		ShareText(sampleResults()))
}
