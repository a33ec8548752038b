package attempt

import (
	"context"
	"fmt"
	"time"

	"github.com/fairpersona/skillcert/internal/grading"
	"github.com/fairpersona/skillcert/internal/question"
	"github.com/fairpersona/skillcert/internal/skills"
	"github.com/fairpersona/skillcert/internal/store"
)

// Generator produces the question set for a new attempt.
type Generator interface {
	GenerateTest(ctx context.Context, skillID, userID string) ([]question.Question, error)
}

// Service drives the attempt lifecycle: start or resume, record
// answers, submit for grading, abandon. Every transition is appended to
// the event log; the in-memory Attempt is the working copy.
type Service struct {
	gen       Generator
	grader    *grading.Grader
	events    store.EventRepo
	snapshots store.SnapshotRepo
}

// NewService creates an attempt service. snapshots may be nil to skip
// the aggregate stats cache.
func NewService(gen Generator, grader *grading.Grader, events store.EventRepo, snapshots store.SnapshotRepo) *Service {
	return &Service{gen: gen, grader: grader, events: events, snapshots: snapshots}
}

// Start begins an attempt for the user on a skill. If the user already
// has an in-progress attempt on this skill it is resumed with its
// original question set and recorded answers; an in-progress attempt
// found past its deadline is marked expired and a fresh one started.
func (s *Service) Start(ctx context.Context, userID, skillID string) (*Attempt, error) {
	skill, err := skills.GetSkill(skillID)
	if err != nil {
		return nil, err
	}

	latest, err := s.events.LatestAttemptEvent(ctx, userID, skillID)
	if err != nil {
		return nil, fmt.Errorf("look up previous attempt: %w", err)
	}

	if latest != nil && inProgressAction(latest.Action) {
		a, err := s.resume(ctx, latest, skill)
		if err != nil {
			return nil, err
		}
		if a != nil {
			return a, nil
		}
		// The stale attempt was expired; fall through to a fresh one.
	}

	questions, err := s.gen.GenerateTest(ctx, skillID, userID)
	if err != nil {
		return nil, fmt.Errorf("generate test: %w", err)
	}

	a := newAttempt(userID, skill, questions)
	if err := s.events.AppendAttemptEvent(ctx, store.AttemptEventData{
		AttemptID:     a.ID,
		UserID:        userID,
		SkillID:       skillID,
		Action:        "started",
		QuestionCount: len(questions),
		TimeLimitSecs: skill.TimeLimitSecs(),
		Questions:     questionSnapshots(questions),
	}); err != nil {
		return nil, fmt.Errorf("record attempt start: %w", err)
	}
	return a, nil
}

// resume reconstructs an in-progress attempt from the event log. It
// returns (nil, nil) after expiring an attempt found past its deadline.
func (s *Service) resume(ctx context.Context, latest *store.AttemptEventRecord, skill skills.Skill) (*Attempt, error) {
	start, err := s.events.AttemptStartEvent(ctx, latest.AttemptID)
	if err != nil {
		return nil, fmt.Errorf("look up attempt start: %w", err)
	}
	if start == nil || len(start.Questions) == 0 {
		// No reconstructable question set; treat as expired.
		start = latest
	}

	elapsed := int(time.Since(start.Timestamp) / time.Second)
	if elapsed >= start.TimeLimitSecs || len(start.Questions) == 0 {
		if err := s.events.AppendAttemptEvent(ctx, store.AttemptEventData{
			AttemptID:     latest.AttemptID,
			UserID:        latest.UserID,
			SkillID:       latest.SkillID,
			Action:        "expired",
			QuestionCount: start.QuestionCount,
			TimeLimitSecs: start.TimeLimitSecs,
			TimeSpentSecs: start.TimeLimitSecs,
		}); err != nil {
			return nil, fmt.Errorf("record attempt expiry: %w", err)
		}
		return nil, nil
	}

	questions := snapshotQuestions(start.Questions, skill.ID)
	a := &Attempt{
		ID:            start.AttemptID,
		SkillID:       skill.ID,
		UserID:        start.UserID,
		Questions:     questions,
		StartedAt:     start.Timestamp,
		Status:        StatusInProgress,
		TimeSpentSecs: elapsed,
		RemainingSecs: start.TimeLimitSecs - elapsed,
		Answers:       make([]*Answer, len(questions)),
	}

	answers, err := s.events.AnswersForAttempt(ctx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("replay answers: %w", err)
	}
	slot := make(map[string]int, len(questions))
	for i, q := range questions {
		slot[q.ID] = i
	}
	for _, rec := range answers {
		i, ok := slot[rec.QuestionID]
		if !ok {
			continue
		}
		// Events are in append order, so the last write per question wins.
		a.Answers[i] = &Answer{
			QuestionID:    rec.QuestionID,
			Option:        rec.SelectedOption,
			Text:          rec.AnswerText,
			TimeSpentSecs: rec.TimeSpentSecs,
		}
	}

	if err := s.events.AppendAttemptEvent(ctx, store.AttemptEventData{
		AttemptID:     a.ID,
		UserID:        a.UserID,
		SkillID:       a.SkillID,
		Action:        "resumed",
		QuestionCount: len(questions),
		TimeLimitSecs: start.TimeLimitSecs,
		TimeSpentSecs: elapsed,
	}); err != nil {
		return nil, fmt.Errorf("record attempt resume: %w", err)
	}
	return a, nil
}

// RecordAnswer records or overwrites the answer for the question under
// the attempt's cursor and persists it to the event log, so a resumed
// attempt replays it. Re-answering appends another event; replay takes
// the last write per question.
func (s *Service) RecordAnswer(ctx context.Context, a *Attempt, ans Answer) error {
	if err := a.RecordAnswer(ans); err != nil {
		return err
	}

	q := a.CurrentQuestion()
	recorded := a.Answers[a.Current]
	if err := s.events.AppendAnswerEvent(ctx, store.AnswerEventData{
		AttemptID:      a.ID,
		QuestionID:     recorded.QuestionID,
		QuestionType:   string(q.Type),
		Prompt:         q.Prompt,
		SelectedOption: recorded.Option,
		AnswerText:     recorded.Text,
		TimeSpentSecs:  recorded.TimeSpentSecs,
	}); err != nil {
		return fmt.Errorf("record answer: %w", err)
	}
	return nil
}

// Submit grades the attempt with whatever answers are recorded and
// settles it into completed or failed. Safe against double submission:
// the second call returns ErrInvalidState without re-grading.
func (s *Service) Submit(ctx context.Context, a *Attempt) (*grading.Result, error) {
	if err := a.beginSubmit(); err != nil {
		return nil, err
	}

	skill, err := skills.GetSkill(a.SkillID)
	if err != nil {
		a.submitting = false
		return nil, err
	}

	slots := make([]grading.Answer, len(a.Questions))
	for i, ans := range a.Answers {
		if ans == nil {
			slots[i] = grading.Answer{Option: -1}
			continue
		}
		slots[i] = grading.Answer{Answered: true, Option: ans.Option, Text: ans.Text}
	}

	result, err := s.grader.Grade(ctx, a.Questions, slots, skill.PassThreshold)
	if err != nil {
		a.submitting = false
		return nil, fmt.Errorf("grade attempt: %w", err)
	}

	a.finalize(result.Score, result.Passed)

	if err := s.events.AppendGradeEvent(ctx, store.GradeEventData{
		AttemptID:     a.ID,
		UserID:        a.UserID,
		SkillID:       a.SkillID,
		Score:         result.Score,
		EarnedPoints:  result.EarnedPoints,
		TotalPoints:   result.TotalPoints,
		PassThreshold: skill.PassThreshold,
		Passed:        result.Passed,
		Feedback:      result.Feedback,
	}); err != nil {
		return nil, fmt.Errorf("record grade: %w", err)
	}

	if err := s.events.AppendAttemptEvent(ctx, store.AttemptEventData{
		AttemptID:     a.ID,
		UserID:        a.UserID,
		SkillID:       a.SkillID,
		Action:        "submitted",
		QuestionCount: len(a.Questions),
		TimeLimitSecs: skill.TimeLimitSecs(),
		TimeSpentSecs: a.TimeSpentSecs,
	}); err != nil {
		return nil, fmt.Errorf("record attempt submit: %w", err)
	}

	s.refreshSnapshot(ctx)

	return result, nil
}

// Abandon settles the attempt as abandoned without grading.
func (s *Service) Abandon(ctx context.Context, a *Attempt) error {
	if err := a.abandon(); err != nil {
		return err
	}
	if err := s.events.AppendAttemptEvent(ctx, store.AttemptEventData{
		AttemptID:     a.ID,
		UserID:        a.UserID,
		SkillID:       a.SkillID,
		Action:        "abandoned",
		QuestionCount: len(a.Questions),
		TimeSpentSecs: a.TimeSpentSecs,
	}); err != nil {
		return fmt.Errorf("record attempt abandon: %w", err)
	}
	return nil
}

// refreshSnapshot recomputes the aggregate stats cache. Best effort:
// a snapshot failure never fails the submission that triggered it.
func (s *Service) refreshSnapshot(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	stats, err := s.events.GradeStatsBySkill(ctx)
	if err != nil {
		return
	}
	certs, err := s.events.LatestCertifications(ctx)
	if err != nil {
		return
	}

	data := store.SnapshotData{
		Version:    1,
		CertCount:  len(certs),
		BestScores: make(map[string]int, len(stats)),
	}
	var seq int64
	for _, st := range stats {
		data.Attempts += st.Attempts
		data.Passes += st.Passes
		data.BestScores[st.SkillID] = st.BestScore
	}
	for _, c := range certs {
		if c.Sequence > seq {
			seq = c.Sequence
		}
	}

	_ = s.snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
	_ = s.snapshots.Prune(ctx, 10)
}

func inProgressAction(action string) bool {
	return action == "started" || action == "resumed"
}

func questionSnapshots(qs []question.Question) []store.QuestionSnapshot {
	snaps := make([]store.QuestionSnapshot, len(qs))
	for i, q := range qs {
		snaps[i] = store.QuestionSnapshot{
			ID:            q.ID,
			Type:          string(q.Type),
			Prompt:        q.Prompt,
			Options:       q.Options,
			CorrectOption: q.CorrectOption,
			Points:        q.Points,
			Difficulty:    string(q.Difficulty),
		}
	}
	return snaps
}

func snapshotQuestions(snaps []store.QuestionSnapshot, skillID string) []question.Question {
	qs := make([]question.Question, len(snaps))
	for i, sn := range snaps {
		qs[i] = question.Question{
			ID:            sn.ID,
			Type:          question.Type(sn.Type),
			Prompt:        sn.Prompt,
			Options:       sn.Options,
			CorrectOption: sn.CorrectOption,
			Points:        sn.Points,
			Difficulty:    question.Difficulty(sn.Difficulty),
			SkillID:       skillID,
		}
	}
	return qs
}
