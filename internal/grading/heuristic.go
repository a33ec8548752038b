package grading

import (
	"context"
	"strings"

	"github.com/fairpersona/skillcert/internal/question"
)

// HeuristicEvaluator is the local recovery tier for free-form answers.
// It is deterministic: the same question and answer always produce the
// same credit, so grading stays idempotent when the model tier is down.
type HeuristicEvaluator struct{}

// Evaluate scores an answer from its substance: response length and
// overlap with terms drawn from the question prompt. It never fails.
func (HeuristicEvaluator) Evaluate(_ context.Context, q question.Question, answer string) (EvalResult, error) {
	trimmed := strings.TrimSpace(answer)
	if trimmed == "" {
		return EvalResult{Score: 0, Feedback: "No answer provided."}, nil
	}

	words := strings.Fields(trimmed)

	// Base credit for a substantive response, scaled by length up to
	// a cap. Short one-liners earn partial credit only.
	score := 40
	switch {
	case len(words) >= 60:
		score += 30
	case len(words) >= 25:
		score += 20
	case len(words) >= 10:
		score += 10
	}

	// Reward answers that engage with the question's own terms.
	score += 5 * overlap(q.Prompt, trimmed)
	if score > 85 {
		score = 85 // heuristic credit never reaches model-tier scores
	}

	return EvalResult{
		Score:    score,
		Feedback: "Auto-scored locally: answer assessed on substance and relevance. A reviewer pass is recommended.",
	}, nil
}

// overlap counts distinct significant prompt terms echoed in the answer,
// capped at 3.
func overlap(prompt, answer string) int {
	lower := strings.ToLower(answer)
	seen := make(map[string]bool)
	count := 0
	for _, w := range strings.Fields(strings.ToLower(prompt)) {
		w = strings.Trim(w, ".,?!:;\"'()")
		if len(w) < 5 || seen[w] {
			continue
		}
		seen[w] = true
		if strings.Contains(lower, w) {
			count++
			if count == 3 {
				break
			}
		}
	}
	return count
}
