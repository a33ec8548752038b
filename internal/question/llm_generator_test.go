package question

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fairpersona/skillcert/internal/llm"
	"github.com/fairpersona/skillcert/internal/skills"
)

func testSkill(t *testing.T) skills.Skill {
	t.Helper()
	s, err := skills.GetSkill("react-dev")
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}
	return s
}

func TestLLMGeneratorParsesBatch(t *testing.T) {
	batch := `{"questions":[
		{"type":"mcq","question":"Which hook memoizes a value?","options":["useMemo","useRef","useState","useId"],"correct_answer":0,"difficulty":"easy"},
		{"type":"short_text","question":"Explain reconciliation.","difficulty":"medium"},
		{"type":"scenario","question":"A list rerenders on every keystroke. What do you change?","difficulty":"hard"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	gen := NewLLMGenerator(mock, DefaultLLMConfig())

	qs, err := gen.GenerateQuestions(context.Background(), testSkill(t), 3)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}

	if qs[0].Type != TypeMultipleChoice || qs[0].CorrectOption != 0 || len(qs[0].Options) != 4 {
		t.Errorf("mcq not preserved: %+v", qs[0])
	}
	if qs[1].CorrectOption != -1 {
		t.Errorf("free-form CorrectOption = %d, want -1", qs[1].CorrectOption)
	}

	// Points come from the local difficulty table, not the model.
	for _, q := range qs {
		if q.Points != PointsFor(q.Difficulty) {
			t.Errorf("question %q: points %d, want %d", q.Prompt, q.Points, PointsFor(q.Difficulty))
		}
		if q.SkillID != "react-dev" {
			t.Errorf("question %q: SkillID %q", q.Prompt, q.SkillID)
		}
	}
}

func TestLLMGeneratorDropsMalformedMCQ(t *testing.T) {
	batch := `{"questions":[
		{"type":"mcq","question":"No options at all","correct_answer":0,"difficulty":"easy"},
		{"type":"mcq","question":"Index out of range","options":["A","B"],"correct_answer":5,"difficulty":"easy"},
		{"type":"short_text","question":"Still usable.","difficulty":"medium"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	gen := NewLLMGenerator(mock, DefaultLLMConfig())

	qs, err := gen.GenerateQuestions(context.Background(), testSkill(t), 3)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1 (malformed mcqs dropped)", len(qs))
	}
	if qs[0].Prompt != "Still usable." {
		t.Errorf("kept question = %q", qs[0].Prompt)
	}
}

func TestLLMGeneratorTruncatesToCount(t *testing.T) {
	batch := `{"questions":[
		{"type":"short_text","question":"one","difficulty":"easy"},
		{"type":"short_text","question":"two","difficulty":"easy"},
		{"type":"short_text","question":"three","difficulty":"easy"}
	]}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(batch)})
	gen := NewLLMGenerator(mock, DefaultLLMConfig())

	qs, err := gen.GenerateQuestions(context.Background(), testSkill(t), 2)
	if err != nil {
		t.Fatalf("GenerateQuestions: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}
}

func TestLLMGeneratorEmptyBatchFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	gen := NewLLMGenerator(mock, DefaultLLMConfig())

	if _, err := gen.GenerateQuestions(context.Background(), testSkill(t), 3); err == nil {
		t.Fatal("expected error for empty batch")
	}
}

func TestLLMGeneratorProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue -> provider unavailable
	gen := NewLLMGenerator(mock, DefaultLLMConfig())

	if _, err := gen.GenerateQuestions(context.Background(), testSkill(t), 3); err == nil {
		t.Fatal("expected provider error to surface")
	}
	if mock.CallCount() != 1 {
		t.Errorf("CallCount = %d, want 1", mock.CallCount())
	}
}
