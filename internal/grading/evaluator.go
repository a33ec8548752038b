package grading

import (
	"context"

	"github.com/fairpersona/skillcert/internal/question"
)

// EvalResult is a fractional credit for one free-form answer.
type EvalResult struct {
	// Score is the credit in [0,100]; the grader multiplies it into
	// the question's point value.
	Score int

	// Feedback is a human-readable assessment, always non-empty.
	Feedback string
}

// Evaluator scores a single free-form answer. Implementations receive
// the full question and the raw answer, and must not depend on any other
// question's answer. Multiple-choice questions never reach an Evaluator;
// the grader scores them deterministically.
type Evaluator interface {
	Evaluate(ctx context.Context, q question.Question, answer string) (EvalResult, error)
}

// Fallback is a two-tier evaluator: it tries the primary and, on any
// error, recovers with the fallback. Wiring the fallback policy as an
// explicit evaluator keeps it testable on its own.
type Fallback struct {
	Primary   Evaluator
	Secondary Evaluator
}

// NewFallback composes a primary evaluator with a recovery tier.
func NewFallback(primary, secondary Evaluator) *Fallback {
	return &Fallback{Primary: primary, Secondary: secondary}
}

// Evaluate delegates to the primary evaluator and falls back on error.
func (f *Fallback) Evaluate(ctx context.Context, q question.Question, answer string) (EvalResult, error) {
	if f.Primary != nil {
		res, err := f.Primary.Evaluate(ctx, q, answer)
		if err == nil {
			return res, nil
		}
	}
	return f.Secondary.Evaluate(ctx, q, answer)
}
