package questionbank

import (
	"slices"
	"strings"
	"testing"
)

func TestValidate_SeedBankPasses(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("seed bank validation failed: %v", err)
	}
}

func TestDefault_Shape(t *testing.T) {
	b := Default()
	if b.SectionCount() != 3 {
		t.Fatalf("SectionCount = %d, want 3", b.SectionCount())
	}
	wantCounts := []int{6, 5, 8}
	for i, want := range wantCounts {
		if got := b.QuestionCount(i); got != want {
			t.Errorf("QuestionCount(%d) = %d, want %d", i, got, want)
		}
	}
	if b.Total() != 19 {
		t.Errorf("Total = %d, want 19", b.Total())
	}
	if b.QuestionCount(3) != 0 || b.QuestionCount(-1) != 0 {
		t.Error("out-of-range sections should report 0 questions")
	}
}

func TestDefault_TagsMatchIDInference(t *testing.T) {
	for _, s := range Default().Sections() {
		for _, q := range s.Questions {
			inferred := InferCategories(q.ID)
			if !slices.Equal(q.Categories, inferred) {
				t.Errorf("%s: tags %v, inferred %v", q.ID, q.Categories, inferred)
			}
		}
	}
}

func TestDefault_CrossSectionTags(t *testing.T) {
	b := Default()

	q, ok := b.Lookup("interest_3")
	if !ok {
		t.Fatal("interest_3 not found")
	}
	if !q.HasCategory(CategoryInterest) {
		t.Error("interest_3 should carry the interest tag")
	}
	if got := b.SectionID("interest_3"); got != "wiscar" {
		t.Errorf("SectionID(interest_3) = %q, want wiscar", got)
	}

	q, _ = b.Lookup("cognitive_2")
	if !q.HasCategory(CategoryCognitive) {
		t.Error("cognitive_2 should carry the cognitive tag")
	}
}

func TestInferCategories(t *testing.T) {
	tests := []struct {
		id   string
		want []Category
	}{
		{"interest_1", []Category{CategoryInterest}},
		{"real_world_1", []Category{CategoryRealWorld}},
		{"skill_2", []Category{CategorySkill}},
		{"domain_1", []Category{CategoryDomain}},
		{"knowledge_skill", []Category{CategoryKnowledge, CategorySkill}},
		{"unrelated", nil},
	}
	for _, tt := range tests {
		got := InferCategories(tt.id)
		if !slices.Equal(got, tt.want) {
			t.Errorf("InferCategories(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestBank_Positions(t *testing.T) {
	b := Default()

	p, ok := b.PositionOf("aptitude_1")
	if !ok {
		t.Fatal("aptitude_1 not found")
	}
	if p != (Position{Section: 1, Question: 0}) {
		t.Errorf("PositionOf(aptitude_1) = %+v", p)
	}
	if got := b.FlatIndex(p); got != 6 {
		t.Errorf("FlatIndex = %d, want 6", got)
	}

	if _, ok := b.At(Position{Section: 2, Question: 8}); ok {
		t.Error("At past end of section should fail")
	}
	if _, ok := b.Lookup("missing"); ok {
		t.Error("Lookup of unknown id should fail")
	}
}

func TestBank_CategoriesForUnknownIDFallsBack(t *testing.T) {
	got := Default().CategoriesFor("will_9")
	if !slices.Equal(got, []Category{CategoryWill}) {
		t.Errorf("CategoriesFor(will_9) = %v", got)
	}
}

func TestNew_InfersMissingTags(t *testing.T) {
	b, err := New([]Section{{
		ID: "s",
		Questions: []Question{
			{ID: "skill_a", Text: "Rate yourself", Type: TypeLikert, Scale: &Scale{Min: 1, Max: 5}},
		},
	}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	q, _ := b.Lookup("skill_a")
	if !slices.Equal(q.Categories, []Category{CategorySkill}) {
		t.Errorf("Categories = %v, want [skill]", q.Categories)
	}
}

func TestValidateSections_Errors(t *testing.T) {
	tests := []struct {
		name     string
		sections []Section
		want     string
	}{
		{"no sections", nil, "no sections"},
		{"empty section", []Section{{ID: "a"}}, "has no questions"},
		{"duplicate question", []Section{{ID: "a", Questions: []Question{
			{ID: "q", Text: "x", Type: TypeScenario},
			{ID: "q", Text: "y", Type: TypeScenario},
		}}}, "duplicate question ID"},
		{"duplicate section", []Section{
			{ID: "a", Questions: []Question{{ID: "q1", Text: "x", Type: TypeScenario}}},
			{ID: "a", Questions: []Question{{ID: "q2", Text: "x", Type: TypeScenario}}},
		}, "duplicate section ID"},
		{"likert without scale", []Section{{ID: "a", Questions: []Question{
			{ID: "q", Text: "x", Type: TypeLikert},
		}}}, "has no scale"},
		{"inverted scale", []Section{{ID: "a", Questions: []Question{
			{ID: "q", Text: "x", Type: TypeLikert, Scale: &Scale{Min: 5, Max: 1}},
		}}}, "empty scale"},
		{"choice without options", []Section{{ID: "a", Questions: []Question{
			{ID: "q", Text: "x", Type: TypeMultipleChoice},
		}}}, "has no options"},
		{"unknown type", []Section{{ID: "a", Questions: []Question{
			{ID: "q", Text: "x", Type: "essay"},
		}}}, "unknown type"},
		{"unknown category", []Section{{ID: "a", Questions: []Question{
			{ID: "q", Text: "x", Type: TypeScenario, Categories: []Category{"vibes"}},
		}}}, "unknown category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSections(tt.sections)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error should mention %q, got: %v", tt.want, err)
			}
		})
	}
}

func TestValidateSections_CollectsAllProblems(t *testing.T) {
	err := validateSections([]Section{{ID: "a", Questions: []Question{
		{ID: "q", Text: "x", Type: TypeLikert},
		{ID: "q", Text: "y", Type: TypeRanking},
	}}})
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"has no scale", "duplicate question ID", "has no options"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestScale_Label(t *testing.T) {
	s := Scale{Min: 1, Max: 5, MinLabel: "Beginner", MaxLabel: "Expert"}
	tests := map[int]string{1: "Beginner", 3: "3", 5: "Expert"}
	for v, want := range tests {
		if got := s.Label(v); got != want {
			t.Errorf("Label(%d) = %q, want %q", v, got, want)
		}
	}
	if got := (Scale{Min: 1, Max: 3}).Label(1); got != "1" {
		t.Errorf("unlabelled endpoint = %q, want 1", got)
	}
	if got := len(s.Points()); got != 5 {
		t.Errorf("len(Points) = %d, want 5", got)
	}
}
