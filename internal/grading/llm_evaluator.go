package grading

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fairpersona/skillcert/internal/llm"
	"github.com/fairpersona/skillcert/internal/question"
)

const evalSystemPrompt = `You are an expert evaluator. Provide fair, constructive assessment of answers.`

// EvalSchema defines the JSON schema for model evaluation responses.
var EvalSchema = &llm.Schema{
	Name:        "answer-evaluation",
	Description: "Score and feedback for one free-form test answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"score": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     100,
				"description": "Credit for the answer, 0-100",
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "Constructive feedback for the candidate",
			},
		},
		"required":             []any{"score", "feedback"},
		"additionalProperties": false,
	},
}

// LLMEvaluator scores free-form answers with an LLM provider. It is the
// primary tier; callers compose it with HeuristicEvaluator via Fallback.
// Model scoring is not deterministic, which the grading contract permits
// for free-form question types only.
type LLMEvaluator struct {
	provider llm.Provider

	// MaxTokens bounds the evaluation response. Default 500.
	MaxTokens int
}

// NewLLMEvaluator creates the model-backed evaluator.
func NewLLMEvaluator(provider llm.Provider) *LLMEvaluator {
	return &LLMEvaluator{provider: provider, MaxTokens: 500}
}

type evalOutput struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Evaluate asks the model for a 0-100 credit and feedback line.
func (e *LLMEvaluator) Evaluate(ctx context.Context, q question.Question, answer string) (EvalResult, error) {
	ctx = llm.WithPurpose(ctx, "answer-eval")

	req := llm.Request{
		System: evalSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildEvalMessage(q, answer)},
		},
		Schema:    EvalSchema,
		MaxTokens: e.MaxTokens,
	}

	resp, err := e.provider.Generate(ctx, req)
	if err != nil {
		return EvalResult{}, fmt.Errorf("evaluate answer: %w", err)
	}

	var out evalOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return EvalResult{}, fmt.Errorf("parse evaluation: %w", err)
	}

	if out.Score < 0 {
		out.Score = 0
	}
	if out.Score > 100 {
		out.Score = 100
	}
	if out.Feedback == "" {
		out.Feedback = "Evaluated."
	}

	return EvalResult{Score: out.Score, Feedback: out.Feedback}, nil
}

func buildEvalMessage(q question.Question, answer string) string {
	return fmt.Sprintf(`Evaluate this answer for a %s question:

Question: %s
Answer: %s
Points: %d
Difficulty: %s

Provide a score (0-100) and constructive feedback. Consider:
- Accuracy and completeness
- Practical understanding
- Real-world applicability`,
		q.Type, q.Prompt, answer, q.Points, q.Difficulty)
}
