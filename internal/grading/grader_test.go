package grading

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fairpersona/skillcert/internal/question"
)

// fixedEvaluator returns the same result for every answer.
type fixedEvaluator struct {
	score    int
	feedback string
	err      error
}

func (f fixedEvaluator) Evaluate(_ context.Context, _ question.Question, _ string) (EvalResult, error) {
	if f.err != nil {
		return EvalResult{}, f.err
	}
	return EvalResult{Score: f.score, Feedback: f.feedback}, nil
}

func mcq(points, correct int) question.Question {
	return question.Question{
		ID:            "q-" + string(rune('a'+points%26)),
		Type:          question.TypeMultipleChoice,
		Prompt:        "pick one",
		Options:       []string{"A", "B", "C", "D"},
		CorrectOption: correct,
		Points:        points,
	}
}

func shortText(points int) question.Question {
	return question.Question{
		ID:            "q-text",
		Type:          question.TypeShortText,
		Prompt:        "explain",
		CorrectOption: -1,
		Points:        points,
	}
}

func TestGradeAllCorrectMCQ(t *testing.T) {
	g := NewGrader(HeuristicEvaluator{})
	qs := []question.Question{mcq(10, 2), mcq(20, 0)}
	answers := []Answer{
		{Answered: true, Option: 2},
		{Answered: true, Option: 0},
	}

	res, err := g.Grade(context.Background(), qs, answers, 70)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 100 {
		t.Errorf("Score = %d, want 100", res.Score)
	}
	if res.EarnedPoints != 30 || res.TotalPoints != 30 {
		t.Errorf("points = %d/%d, want 30/30", res.EarnedPoints, res.TotalPoints)
	}
	if !res.Passed {
		t.Error("expected pass at threshold 70")
	}
}

func TestGradePartialMCQFailsThreshold(t *testing.T) {
	g := NewGrader(HeuristicEvaluator{})
	qs := []question.Question{mcq(10, 2), mcq(20, 0)}
	answers := []Answer{
		{Answered: true, Option: 2}, // correct, 10 pts
		{Answered: true, Option: 3}, // wrong
	}

	res, err := g.Grade(context.Background(), qs, answers, 70)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 33 {
		t.Errorf("Score = %d, want 33 (floor of 10/30)", res.Score)
	}
	if res.Passed {
		t.Error("33 must not pass at threshold 70")
	}
}

func TestGradeUnansweredScoresZero(t *testing.T) {
	g := NewGrader(HeuristicEvaluator{})
	qs := []question.Question{mcq(10, 1), shortText(15)}
	answers := []Answer{
		{Answered: false, Option: -1},
		{Answered: false, Option: -1},
	}

	res, err := g.Grade(context.Background(), qs, answers, 70)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.Score != 0 || res.EarnedPoints != 0 {
		t.Errorf("got score=%d earned=%d, want zeros", res.Score, res.EarnedPoints)
	}
	if len(res.Feedback) != 2 {
		t.Fatalf("feedback lines = %d, want 2", len(res.Feedback))
	}
	for i, line := range res.Feedback {
		if !strings.Contains(line, "Not answered") {
			t.Errorf("feedback[%d] = %q, want not-answered wording", i, line)
		}
	}
}

func TestGradeFreeFormUsesEvaluator(t *testing.T) {
	g := NewGrader(fixedEvaluator{score: 80, feedback: "Solid answer."})
	qs := []question.Question{shortText(15)}
	answers := []Answer{{Answered: true, Option: -1, Text: "some explanation"}}

	res, err := g.Grade(context.Background(), qs, answers, 70)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	// floor(15 * 80 / 100) = 12, floor(100 * 12 / 15) = 80
	if res.EarnedPoints != 12 {
		t.Errorf("earned = %d, want 12", res.EarnedPoints)
	}
	if res.Score != 80 {
		t.Errorf("Score = %d, want 80", res.Score)
	}
	if !strings.Contains(res.Feedback[0], "Solid answer.") {
		t.Errorf("feedback = %q, want evaluator feedback embedded", res.Feedback[0])
	}
}

func TestGradeEvaluatorErrorScoresZero(t *testing.T) {
	g := NewGrader(fixedEvaluator{err: errors.New("provider down")})
	qs := []question.Question{shortText(20)}
	answers := []Answer{{Answered: true, Option: -1, Text: "attempt"}}

	res, err := g.Grade(context.Background(), qs, answers, 70)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	if res.EarnedPoints != 0 {
		t.Errorf("earned = %d, want 0 when evaluation fails", res.EarnedPoints)
	}
	if !strings.Contains(res.Feedback[0], "Evaluation unavailable") {
		t.Errorf("feedback = %q, want unavailable wording", res.Feedback[0])
	}
}

func TestGradeSlotCountMismatch(t *testing.T) {
	g := NewGrader(HeuristicEvaluator{})
	qs := []question.Question{mcq(10, 0)}

	if _, err := g.Grade(context.Background(), qs, nil, 70); err == nil {
		t.Fatal("expected error for mismatched slot count")
	}
}

func TestGradeFeedbackOrderMatchesQuestions(t *testing.T) {
	g := NewGrader(HeuristicEvaluator{})
	qs := []question.Question{mcq(10, 0), mcq(15, 1), mcq(20, 2)}
	answers := []Answer{
		{Answered: true, Option: 0},
		{Answered: true, Option: 0},
		{Answered: false, Option: -1},
	}

	res, err := g.Grade(context.Background(), qs, answers, 50)
	if err != nil {
		t.Fatalf("Grade: %v", err)
	}
	for i, line := range res.Feedback {
		want := "Question " + string(rune('1'+i))
		if !strings.HasPrefix(line, want) {
			t.Errorf("feedback[%d] = %q, want prefix %q", i, line, want)
		}
	}
	if !res.PerQuestion[0].Correct || res.PerQuestion[1].Correct {
		t.Error("per-question correctness flags wrong")
	}
}
