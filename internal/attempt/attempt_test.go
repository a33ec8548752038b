package attempt

import (
	"errors"
	"testing"

	"github.com/fairpersona/skillcert/internal/question"
	"github.com/fairpersona/skillcert/internal/skills"
)

func testSkill(t *testing.T) skills.Skill {
	t.Helper()
	sk, err := skills.GetSkill("react-dev")
	if err != nil {
		t.Fatalf("get skill: %v", err)
	}
	return sk
}

func testQuestions() []question.Question {
	return []question.Question{
		{
			ID:            "q1",
			Type:          question.TypeMultipleChoice,
			Prompt:        "pick",
			Options:       []string{"A", "B", "C", "D"},
			CorrectOption: 1,
			Points:        10,
		},
		{
			ID:            "q2",
			Type:          question.TypeShortText,
			Prompt:        "explain",
			CorrectOption: -1,
			Points:        15,
		},
		{
			ID:            "q3",
			Type:          question.TypeCode,
			Prompt:        "write",
			CorrectOption: -1,
			Points:        20,
		},
	}
}

func TestNewAttemptInitialState(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())

	if a.Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress", a.Status)
	}
	if a.RemainingSecs != 1500 {
		t.Errorf("remaining = %d, want 1500", a.RemainingSecs)
	}
	if a.Current != 0 {
		t.Errorf("cursor = %d, want 0", a.Current)
	}
	if a.AnsweredCount() != 0 {
		t.Errorf("answered = %d, want 0", a.AnsweredCount())
	}
	if a.ID == "" {
		t.Error("expected generated attempt ID")
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	sk := testSkill(t)

	tests := []struct {
		name   string
		cursor int
		ans    Answer
		ok     bool
	}{
		{"mcq valid option", 0, Answer{Option: 2}, true},
		{"mcq option too high", 0, Answer{Option: 4}, false},
		{"mcq negative option", 0, Answer{Option: -1}, false},
		{"text valid", 1, Answer{Option: -1, Text: "hooks manage state"}, true},
		{"text empty", 1, Answer{Option: -1}, false},
		{"text with option index", 1, Answer{Option: 0, Text: "hooks"}, false},
		{"code valid", 2, Answer{Option: -1, Text: "func main() {}"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newAttempt("u1", sk, testQuestions())
			a.Current = tt.cursor
			err := a.RecordAnswer(tt.ans)
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, ErrValidation) {
					t.Errorf("error = %v, want ErrValidation", err)
				}
			}
		})
	}
}

func TestReAnswerAccumulatesTime(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())

	if err := a.RecordAnswer(Answer{Option: 0, TimeSpentSecs: 30}); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	if err := a.RecordAnswer(Answer{Option: 2, TimeSpentSecs: 10}); err != nil {
		t.Fatalf("re-answer: %v", err)
	}

	ans := a.Answers[0]
	if ans.Option != 2 {
		t.Errorf("option = %d, want 2 (latest wins)", ans.Option)
	}
	if ans.TimeSpentSecs != 40 {
		t.Errorf("time = %d, want 40 (accumulated)", ans.TimeSpentSecs)
	}
}

func TestCursorClampedAtBounds(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())

	a.Prev()
	if a.Current != 0 {
		t.Errorf("cursor = %d after Prev at start, want 0", a.Current)
	}

	for i := 0; i < 10; i++ {
		a.Next()
	}
	if a.Current != 2 {
		t.Errorf("cursor = %d after repeated Next, want 2", a.Current)
	}
}

func TestTickCountsDownToExpiry(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())

	expired := false
	for i := 0; i < 1500; i++ {
		expired = a.Tick()
	}
	if !expired {
		t.Fatal("expected expiry after 1500 ticks")
	}
	if a.RemainingSecs != 0 {
		t.Errorf("remaining = %d, want 0", a.RemainingSecs)
	}
	if a.TimeSpentSecs != 1500 {
		t.Errorf("spent = %d, want 1500", a.TimeSpentSecs)
	}

	// Still in progress: expiry forces submission, it is not itself a
	// terminal transition.
	if a.Status != StatusInProgress {
		t.Errorf("status = %s, want in_progress", a.Status)
	}
}

func TestTickStopsAfterTerminal(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())

	if err := a.abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	spent := a.TimeSpentSecs
	if a.Tick() {
		t.Error("tick on terminal attempt reported expiry")
	}
	if a.TimeSpentSecs != spent {
		t.Error("tick mutated a terminal attempt")
	}
}

func TestAbandonLeavesScoreUnset(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())
	a.Current = 0
	if err := a.RecordAnswer(Answer{Option: 1}); err != nil {
		t.Fatalf("answer: %v", err)
	}

	if err := a.abandon(); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if a.Status != StatusAbandoned {
		t.Errorf("status = %s, want abandoned", a.Status)
	}
	if a.Score != 0 || a.Passed {
		t.Errorf("score/passed = %d/%v, want unset", a.Score, a.Passed)
	}
	if a.CompletedAt.IsZero() {
		t.Error("expected CompletedAt to be set")
	}

	// Terminal attempts reject further mutation.
	if err := a.RecordAnswer(Answer{Option: 1}); !errors.Is(err, ErrInvalidState) {
		t.Errorf("RecordAnswer after abandon = %v, want ErrInvalidState", err)
	}
	if err := a.abandon(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second abandon = %v, want ErrInvalidState", err)
	}
}

func TestBeginSubmitGuardsDuplicates(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())

	if err := a.beginSubmit(); err != nil {
		t.Fatalf("first beginSubmit: %v", err)
	}
	if err := a.beginSubmit(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second beginSubmit = %v, want ErrInvalidState", err)
	}

	a.finalize(85, true)
	if a.Status != StatusCompleted {
		t.Errorf("status = %s, want completed", a.Status)
	}
	if err := a.beginSubmit(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("beginSubmit after finalize = %v, want ErrInvalidState", err)
	}
}

func TestFinalizeFailedBelowThreshold(t *testing.T) {
	sk := testSkill(t)
	a := newAttempt("u1", sk, testQuestions())

	if err := a.beginSubmit(); err != nil {
		t.Fatalf("beginSubmit: %v", err)
	}
	a.finalize(33, false)
	if a.Status != StatusFailed {
		t.Errorf("status = %s, want failed", a.Status)
	}
	if a.Score != 33 {
		t.Errorf("score = %d, want 33", a.Score)
	}
}
