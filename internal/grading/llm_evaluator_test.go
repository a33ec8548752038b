package grading

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fairpersona/skillcert/internal/llm"
	"github.com/fairpersona/skillcert/internal/question"
)

func scenarioQuestion() question.Question {
	return question.Question{
		ID:            "q-scenario",
		Type:          question.TypeScenario,
		Prompt:        "A deployed contract leaks funds. Walk through your response.",
		CorrectOption: -1,
		Points:        20,
		Difficulty:    question.DifficultyHard,
	}
}

func TestLLMEvaluatorParsesScoreAndFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":85,"feedback":"Solid incident response, missing postmortem."}`),
	})
	e := NewLLMEvaluator(mock)

	res, err := e.Evaluate(context.Background(), scenarioQuestion(), "Pause the contract, then...")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Score != 85 {
		t.Errorf("Score = %d, want 85", res.Score)
	}
	if !strings.Contains(res.Feedback, "postmortem") {
		t.Errorf("Feedback = %q", res.Feedback)
	}
}

func TestLLMEvaluatorClampsScore(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{`{"score":240,"feedback":"x"}`, 100},
		{`{"score":-5,"feedback":"x"}`, 0},
	}
	for _, tt := range tests {
		mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tt.raw)})
		e := NewLLMEvaluator(mock)

		res, err := e.Evaluate(context.Background(), scenarioQuestion(), "answer")
		if err != nil {
			t.Fatalf("Evaluate(%s): %v", tt.raw, err)
		}
		if res.Score != tt.want {
			t.Errorf("Score for %s = %d, want %d", tt.raw, res.Score, tt.want)
		}
	}
}

func TestLLMEvaluatorDefaultsEmptyFeedback(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"score":50,"feedback":""}`)})
	e := NewLLMEvaluator(mock)

	res, err := e.Evaluate(context.Background(), scenarioQuestion(), "answer")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Feedback == "" {
		t.Error("expected non-empty default feedback")
	}
}

func TestLLMEvaluatorSendsQuestionContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"score":70,"feedback":"ok"}`)})
	e := NewLLMEvaluator(mock)

	q := scenarioQuestion()
	if _, err := e.Evaluate(context.Background(), q, "my answer"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("Calls = %d, want 1", len(mock.Calls))
	}
	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, q.Prompt) || !strings.Contains(sent, "my answer") {
		t.Errorf("request missing question or answer: %q", sent)
	}
	if mock.Calls[0].Schema != EvalSchema {
		t.Error("request did not carry the evaluation schema")
	}
}

func TestLLMEvaluatorProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue
	e := NewLLMEvaluator(mock)

	if _, err := e.Evaluate(context.Background(), scenarioQuestion(), "answer"); err == nil {
		t.Fatal("expected provider error to surface")
	}
}
