package grading

import (
	"context"
	"fmt"

	"github.com/fairpersona/skillcert/internal/question"
)

// Answer is one response slot as seen by the grader. Answered=false
// marks an empty slot; empty slots always score zero.
type Answer struct {
	Answered bool

	// Option is the selected index for multiple choice; -1 otherwise.
	Option int

	// Text is the raw free-form response.
	Text string
}

// QuestionResult is the per-question grading outcome.
type QuestionResult struct {
	QuestionID     string
	PointsEarned   int
	PointsPossible int
	Correct        bool // deterministic questions only
	Feedback       string
}

// Result is a derived grade for one submission: a fresh Result is
// produced per grading call and never mutated afterwards.
type Result struct {
	// Score is floor(100 * earned / total), clamped to [0,100].
	Score int

	EarnedPoints int
	TotalPoints  int

	// Passed is Score >= the skill's own pass threshold.
	Passed bool

	// Feedback holds one line per question, in question order,
	// produced regardless of correctness.
	Feedback []string

	PerQuestion []QuestionResult
}

// Grader maps a completed question and answer set to a score and
// pass/fail verdict. Multiple-choice scoring is deterministic; free-form
// types go through the configured evaluator.
type Grader struct {
	evaluator Evaluator
}

// NewGrader creates a Grader. evaluator must not be nil; compose
// NewFallback(llm, HeuristicEvaluator{}) for the standard two-tier setup
// or pass HeuristicEvaluator{} alone for fully local grading.
func NewGrader(evaluator Evaluator) *Grader {
	return &Grader{evaluator: evaluator}
}

// Grade scores answers against questions. answers must have one slot
// per question, in question order. passThreshold is the owning skill's
// threshold; the pass decision is made here so every caller applies the
// same rule.
func (g *Grader) Grade(ctx context.Context, questions []question.Question, answers []Answer, passThreshold int) (*Result, error) {
	if len(answers) != len(questions) {
		return nil, fmt.Errorf("answer slots (%d) do not match questions (%d)", len(answers), len(questions))
	}

	res := &Result{
		TotalPoints: question.TotalPoints(questions),
		Feedback:    make([]string, 0, len(questions)),
		PerQuestion: make([]QuestionResult, 0, len(questions)),
	}

	for i, q := range questions {
		qr := g.gradeQuestion(ctx, i, q, answers[i])
		res.EarnedPoints += qr.PointsEarned
		res.Feedback = append(res.Feedback, qr.Feedback)
		res.PerQuestion = append(res.PerQuestion, qr)
	}

	if res.TotalPoints > 0 {
		res.Score = 100 * res.EarnedPoints / res.TotalPoints
	}
	if res.Score < 0 {
		res.Score = 0
	}
	if res.Score > 100 {
		res.Score = 100
	}
	res.Passed = res.Score >= passThreshold

	return res, nil
}

// gradeQuestion scores a single question. Evaluation of one question
// never depends on another question's answer.
func (g *Grader) gradeQuestion(ctx context.Context, idx int, q question.Question, ans Answer) QuestionResult {
	qr := QuestionResult{
		QuestionID:     q.ID,
		PointsPossible: q.Points,
	}

	if !ans.Answered {
		qr.Feedback = fmt.Sprintf("Question %d: Not answered (0/%d points)", idx+1, q.Points)
		return qr
	}

	if q.Type == question.TypeMultipleChoice {
		if ans.Option == q.CorrectOption {
			qr.PointsEarned = q.Points
			qr.Correct = true
			qr.Feedback = fmt.Sprintf("Question %d: Correct! (+%d points)", idx+1, q.Points)
		} else {
			qr.Feedback = fmt.Sprintf("Question %d: Incorrect. The correct answer was option %d.", idx+1, q.CorrectOption+1)
		}
		return qr
	}

	eval, err := g.evaluator.Evaluate(ctx, q, ans.Text)
	if err != nil {
		// Evaluator chains end in an infallible local tier; an error
		// here means the grader was built without one. Score zero but
		// keep the per-question feedback contract.
		qr.Feedback = fmt.Sprintf("Question %d: Evaluation unavailable (0/%d points)", idx+1, q.Points)
		return qr
	}

	qr.PointsEarned = q.Points * eval.Score / 100
	qr.Feedback = fmt.Sprintf("Question %d: %s (%d/%d points)", idx+1, eval.Feedback, qr.PointsEarned, q.Points)
	return qr
}
