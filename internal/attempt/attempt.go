package attempt

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fairpersona/skillcert/internal/question"
	"github.com/fairpersona/skillcert/internal/skills"
)

// ErrInvalidState is returned when an operation is attempted in the
// wrong attempt state, e.g. answering after submission.
var ErrInvalidState = errors.New("invalid attempt state")

// ErrValidation is returned for answers malformed for their question type.
var ErrValidation = errors.New("invalid answer")

// Status is the lifecycle state of an attempt.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
	StatusExpired    Status = "expired"
	StatusAbandoned  Status = "abandoned"
)

// Terminal reports whether a status is final. Terminal attempts are
// immutable.
func (s Status) Terminal() bool {
	return s != StatusInProgress
}

// Answer is one recorded response. At most one per question; the slot
// is nil until the question is answered.
type Answer struct {
	// QuestionID references a question in the owning attempt.
	QuestionID string

	// Option is the selected option index for multiple choice; -1 for
	// other question types.
	Option int

	// Text is the free-form response: written answer, code, or an
	// uploaded-file reference, depending on the question type.
	Text string

	// TimeSpentSecs is how long the candidate spent on this question.
	TimeSpentSecs int
}

// Attempt is one user's timed run through a generated question set.
// Created via Service.Start; mutated only through its methods; immutable
// once Status leaves in_progress.
type Attempt struct {
	ID      string
	SkillID string
	UserID  string

	// Questions is the ordered set fixed at creation.
	Questions []question.Question

	StartedAt   time.Time
	CompletedAt time.Time
	Status      Status

	// TimeSpentSecs accumulates monotonically from start to terminal
	// state, one tick per elapsed second.
	TimeSpentSecs int

	// RemainingSecs counts down from the skill time limit; zero forces
	// submission with whatever answers are recorded.
	RemainingSecs int

	// Current is the cursor into Questions, always within bounds.
	Current int

	// Answers has one slot per question, nil until answered.
	Answers []*Answer

	// Score and Passed are set exactly once when the attempt is graded.
	Score  int
	Passed bool

	// submitting guards against a duplicate Submit transition.
	submitting bool
}

// newAttempt creates an in-progress attempt for a generated question set.
func newAttempt(userID string, skill skills.Skill, questions []question.Question) *Attempt {
	return &Attempt{
		ID:            uuid.New().String(),
		SkillID:       skill.ID,
		UserID:        userID,
		Questions:     questions,
		StartedAt:     time.Now(),
		Status:        StatusInProgress,
		RemainingSecs: skill.TimeLimitSecs(),
		Answers:       make([]*Answer, len(questions)),
	}
}

// CurrentQuestion returns the question under the cursor.
func (a *Attempt) CurrentQuestion() question.Question {
	return a.Questions[a.Current]
}

// AnsweredCount returns the number of non-nil answer slots.
func (a *Attempt) AnsweredCount() int {
	n := 0
	for _, ans := range a.Answers {
		if ans != nil {
			n++
		}
	}
	return n
}

// RecordAnswer records or overwrites the answer for the question under
// the cursor. The answer is validated against the question type.
func (a *Attempt) RecordAnswer(ans Answer) error {
	if a.Status.Terminal() || a.submitting {
		return fmt.Errorf("%w: attempt is %s", ErrInvalidState, a.Status)
	}

	q := a.CurrentQuestion()
	if err := validateAnswer(q, ans); err != nil {
		return err
	}

	ans.QuestionID = q.ID
	if prev := a.Answers[a.Current]; prev != nil {
		// Re-answering accumulates question time; it never rewinds.
		ans.TimeSpentSecs += prev.TimeSpentSecs
	}
	a.Answers[a.Current] = &ans
	return nil
}

// Next moves the cursor forward. No-op at the last question.
func (a *Attempt) Next() {
	if a.Status.Terminal() {
		return
	}
	if a.Current < len(a.Questions)-1 {
		a.Current++
	}
}

// Prev moves the cursor backward. No-op at the first question.
func (a *Attempt) Prev() {
	if a.Status.Terminal() {
		return
	}
	if a.Current > 0 {
		a.Current--
	}
}

// Tick advances the countdown by one second. It returns true when the
// timer has reached zero, at which point the owner must submit the
// attempt with the answers recorded so far.
func (a *Attempt) Tick() (expired bool) {
	if a.Status.Terminal() || a.submitting {
		return false
	}
	a.TimeSpentSecs++
	if a.RemainingSecs > 0 {
		a.RemainingSecs--
	}
	return a.RemainingSecs == 0
}

// Deadline returns the wall-clock time at which the attempt expires.
func (a *Attempt) Deadline() time.Time {
	return a.StartedAt.Add(time.Duration(a.TimeSpentSecs+a.RemainingSecs) * time.Second)
}

// beginSubmit moves in_progress → submitting. It fails on a terminal
// attempt and on a duplicate submission, so a double-triggered submit
// transitions state at most once.
func (a *Attempt) beginSubmit() error {
	if a.Status.Terminal() {
		return fmt.Errorf("%w: attempt is %s", ErrInvalidState, a.Status)
	}
	if a.submitting {
		return fmt.Errorf("%w: submission already in flight", ErrInvalidState)
	}
	a.submitting = true
	return nil
}

// finalize settles the attempt into a graded terminal state. Called
// exactly once, after grading completes.
func (a *Attempt) finalize(score int, passed bool) {
	a.Score = score
	a.Passed = passed
	a.CompletedAt = time.Now()
	if passed {
		a.Status = StatusCompleted
	} else {
		a.Status = StatusFailed
	}
	a.submitting = false
}

// abandon settles the attempt as abandoned: no grading, score unset,
// record retained for history.
func (a *Attempt) abandon() error {
	if a.Status.Terminal() || a.submitting {
		return fmt.Errorf("%w: attempt is %s", ErrInvalidState, a.Status)
	}
	a.Status = StatusAbandoned
	a.CompletedAt = time.Now()
	return nil
}

// validateAnswer checks an answer's shape against its question type.
func validateAnswer(q question.Question, ans Answer) error {
	switch q.Type {
	case question.TypeMultipleChoice:
		if ans.Option < 0 || ans.Option >= len(q.Options) {
			return fmt.Errorf("%w: option %d out of range for %d choices", ErrValidation, ans.Option, len(q.Options))
		}
	case question.TypeShortText, question.TypeScenario, question.TypeCode, question.TypeFileUpload:
		if ans.Text == "" {
			return fmt.Errorf("%w: empty response for %s question", ErrValidation, q.Type)
		}
		if ans.Option >= 0 {
			return fmt.Errorf("%w: option index given for %s question", ErrValidation, q.Type)
		}
	default:
		return fmt.Errorf("%w: unknown question type %q", ErrValidation, q.Type)
	}
	return nil
}
