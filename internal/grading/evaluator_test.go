package grading

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fairpersona/skillcert/internal/question"
)

func TestFallbackUsesPrimary(t *testing.T) {
	f := NewFallback(
		fixedEvaluator{score: 90, feedback: "primary"},
		fixedEvaluator{score: 10, feedback: "secondary"},
	)

	res, err := f.Evaluate(context.Background(), shortText(10), "answer")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Score != 90 || res.Feedback != "primary" {
		t.Errorf("got %+v, want primary result", res)
	}
}

func TestFallbackPromotesSecondaryOnError(t *testing.T) {
	f := NewFallback(
		fixedEvaluator{err: errors.New("rate limited")},
		fixedEvaluator{score: 55, feedback: "secondary"},
	)

	res, err := f.Evaluate(context.Background(), shortText(10), "answer")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Score != 55 || res.Feedback != "secondary" {
		t.Errorf("got %+v, want secondary result", res)
	}
}

func TestFallbackNilPrimary(t *testing.T) {
	f := NewFallback(nil, fixedEvaluator{score: 40, feedback: "only"})

	res, err := f.Evaluate(context.Background(), shortText(10), "answer")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Score != 40 {
		t.Errorf("Score = %d, want 40", res.Score)
	}
}

func TestHeuristicEmptyAnswer(t *testing.T) {
	res, err := HeuristicEvaluator{}.Evaluate(context.Background(), shortText(10), "   ")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if res.Score != 0 {
		t.Errorf("Score = %d, want 0 for blank answer", res.Score)
	}
}

func TestHeuristicRewardsDetailAndOverlap(t *testing.T) {
	q := question.Question{
		Type:          question.TypeScenario,
		Prompt:        "Describe how component rendering performance problems are diagnosed",
		CorrectOption: -1,
		Points:        20,
	}

	short := "profile it"
	long := strings.Repeat("First inspect the component rendering profile carefully and measure performance before changing anything. ", 5)

	lo, _ := HeuristicEvaluator{}.Evaluate(context.Background(), q, short)
	hi, _ := HeuristicEvaluator{}.Evaluate(context.Background(), q, long)

	if hi.Score <= lo.Score {
		t.Errorf("detailed on-topic answer scored %d, terse answer %d; want higher", hi.Score, lo.Score)
	}
	if hi.Score > 85 {
		t.Errorf("Score = %d, heuristic must cap at 85", hi.Score)
	}
}

func TestHeuristicDeterministic(t *testing.T) {
	q := shortText(10)
	q.Prompt = "Explain database indexing strategies for large tables"
	ans := "Use covering indexes on hot query columns and review the planner output."

	a, _ := HeuristicEvaluator{}.Evaluate(context.Background(), q, ans)
	b, _ := HeuristicEvaluator{}.Evaluate(context.Background(), q, ans)
	if a.Score != b.Score {
		t.Errorf("same input scored %d then %d", a.Score, b.Score)
	}
}
