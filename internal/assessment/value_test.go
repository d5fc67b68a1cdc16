package assessment

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/abhisek/careerfit/internal/questionbank"
)

func TestValue_Numeric(t *testing.T) {
	tests := []struct {
		v      Value
		want   float64
		wantOK bool
	}{
		{Int(4), 4, true},
		{Int(0), 0, true},
		{Text("3"), 3, true},
		{Text(" 2.5 "), 2.5, true},
		{Text(""), 0, true},
		{Text("  "), 0, true},
		{Text("150"), 150, true},
		{Text("Return Merchandise Authorization"), 0, false},
		{Text(".5"), 0.5, true},
		{Text("1e3"), 1000, true},
		{Text("0x10"), 16, true},
		{Text("0X0"), 0, true},
		{Text("0o17"), 15, true},
		{Text("0b101"), 5, true},
		{Text("0x"), 0, false},
		{Text("-0x10"), 0, false},
		{Text("0x1p-2"), 0, false},
		{Text("1_000"), 0, false},
		{Text("Infinity"), math.Inf(1), true},
		{Text("-Infinity"), math.Inf(-1), true},
		{Text("1e400"), math.Inf(1), true},
		{Text("inf"), 0, false},
		{Text("NaN"), 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.v.Numeric()
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Numeric(%v) = %v, %v; want %v, %v", tt.v, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestValue_NumberCollapsesToZero(t *testing.T) {
	if got := Text("Strongly Agree").Number(); got != 0 {
		t.Errorf("Number = %v, want 0", got)
	}
	if got := Int(5).Number(); got != 5 {
		t.Errorf("Number = %v, want 5", got)
	}
	if got := Text("Infinity").Number(); got != 0 {
		t.Errorf("Number(Infinity) = %v, want 0", got)
	}
}

func TestValue_JSON(t *testing.T) {
	data, err := json.Marshal([]Answer{
		{QuestionID: "will_1", Value: Int(4), Section: "wiscar"},
		{QuestionID: "knowledge_1", Value: Text("Return Merchandise Authorization"), Section: "technical"},
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `[{"questionId":"will_1","answer":4,"section":"wiscar"},` +
		`{"questionId":"knowledge_1","answer":"Return Merchandise Authorization","section":"technical"}]`
	if string(data) != want {
		t.Errorf("json = %s\nwant %s", data, want)
	}

	var back []Answer
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back[0].Value != Int(4) || back[1].Value != Text("Return Merchandise Authorization") {
		t.Errorf("decoded = %+v", back)
	}
}

func TestValue_UnmarshalRejects(t *testing.T) {
	for _, in := range []string{`2.5`, `true`, `{}`} {
		var v Value
		if err := json.Unmarshal([]byte(in), &v); err == nil {
			t.Errorf("Unmarshal(%s) should fail, got %v", in, v)
		}
	}
}

func TestParseValue(t *testing.T) {
	bank := questionbank.Default()
	likert, _ := bank.Lookup("will_1")
	mc, _ := bank.Lookup("aptitude_1")

	if got := ParseValue(likert, "4"); got != Int(4) {
		t.Errorf("likert 4 = %v", got)
	}
	if got := ParseValue(likert, "lots"); got != Text("lots") {
		t.Errorf("likert junk = %v, want text", got)
	}
	if got := ParseValue(mc, "150"); got != Text("150") {
		t.Errorf("choice = %v, want text 150", got)
	}
}

func TestCheckAnswer(t *testing.T) {
	bank := questionbank.Default()
	will, _ := bank.Lookup("will_1")
	rank, _ := bank.Lookup("interest_3")

	tests := []struct {
		name    string
		q       questionbank.Question
		v       Value
		wantErr bool
	}{
		{"likert in range", will, Int(3), false},
		{"likert too high", will, Int(6), true},
		{"likert text", will, Text("3"), true},
		{"ranking option", rank, Text("Developing process improvements"), false},
		{"ranking unknown", rank, Text("Napping"), true},
		{"ranking int", rank, Int(0), true},
		{"scenario text", questionbank.Question{ID: "scenario_x", Type: questionbank.TypeScenario}, Text("call them"), false},
		{"scenario blank", questionbank.Question{ID: "scenario_x", Type: questionbank.TypeScenario}, Text(" "), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckAnswer(tt.q, tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidAnswer) {
				t.Errorf("error should wrap ErrInvalidAnswer: %v", err)
			}
		})
	}
}
