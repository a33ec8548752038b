package attempt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fairpersona/skillcert/internal/grading"
	"github.com/fairpersona/skillcert/internal/question"
	"github.com/fairpersona/skillcert/internal/store"
)

// mockEventRepo implements store.EventRepo for attempt tests.
type mockEventRepo struct {
	attemptEvents []store.AttemptEventData
	answerEvents  []store.AnswerEventData
	gradeEvents   []store.GradeEventData
	latest        *store.AttemptEventRecord
	startEvent    *store.AttemptEventRecord
	priorAnswers  []store.AnswerEventRecord
}

func (m *mockEventRepo) AppendAttemptEvent(_ context.Context, data store.AttemptEventData) error {
	m.attemptEvents = append(m.attemptEvents, data)
	return nil
}
func (m *mockEventRepo) LatestAttemptEvent(_ context.Context, _, _ string) (*store.AttemptEventRecord, error) {
	return m.latest, nil
}
func (m *mockEventRepo) AttemptStartEvent(_ context.Context, _ string) (*store.AttemptEventRecord, error) {
	return m.startEvent, nil
}
func (m *mockEventRepo) QueryAttemptEvents(_ context.Context, _ store.QueryOpts) ([]store.AttemptEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AnswersForAttempt(_ context.Context, attemptID string) ([]store.AnswerEventRecord, error) {
	records := m.priorAnswers
	for _, data := range m.answerEvents {
		if data.AttemptID != attemptID {
			continue
		}
		records = append(records, store.AnswerEventRecord{
			AttemptID:      data.AttemptID,
			QuestionID:     data.QuestionID,
			QuestionType:   data.QuestionType,
			SelectedOption: data.SelectedOption,
			AnswerText:     data.AnswerText,
			TimeSpentSecs:  data.TimeSpentSecs,
		})
	}
	return records, nil
}
func (m *mockEventRepo) AppendGradeEvent(_ context.Context, data store.GradeEventData) error {
	m.gradeEvents = append(m.gradeEvents, data)
	return nil
}
func (m *mockEventRepo) GradeForAttempt(_ context.Context, _ string) (*store.GradeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryGradeEvents(_ context.Context, _ store.QueryOpts) ([]store.GradeEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GradeStatsBySkill(_ context.Context) ([]store.SkillGradeStats, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendCertificationEvent(_ context.Context, _ store.CertificationEventData) error {
	return nil
}
func (m *mockEventRepo) QueryCertificationEvents(_ context.Context, _ store.QueryOpts) ([]store.CertificationRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LatestCertifications(_ context.Context) ([]store.CertificationRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// fixedGenerator returns a canned question set.
type fixedGenerator struct {
	questions []question.Question
	err       error
}

func (g *fixedGenerator) GenerateTest(_ context.Context, _, _ string) ([]question.Question, error) {
	return g.questions, g.err
}

func newTestService(repo *mockEventRepo) *Service {
	gen := &fixedGenerator{questions: testQuestions()}
	grader := grading.NewGrader(grading.HeuristicEvaluator{})
	return NewService(gen, grader, repo, nil)
}

func lastAction(repo *mockEventRepo) string {
	if len(repo.attemptEvents) == 0 {
		return ""
	}
	return repo.attemptEvents[len(repo.attemptEvents)-1].Action
}

func TestStartNewAttempt(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestService(repo)

	a, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if a.Status != StatusInProgress {
		t.Errorf("status = %s", a.Status)
	}
	if lastAction(repo) != "started" {
		t.Errorf("last event = %s, want started", lastAction(repo))
	}
	started := repo.attemptEvents[0]
	if len(started.Questions) != 3 {
		t.Errorf("stored questions = %d, want 3", len(started.Questions))
	}
	if started.TimeLimitSecs != 1500 {
		t.Errorf("time limit = %d, want 1500", started.TimeLimitSecs)
	}
}

func TestStartUnknownSkill(t *testing.T) {
	svc := newTestService(&mockEventRepo{})

	_, err := svc.Start(context.Background(), "u1", "basket-weaving")
	if err == nil {
		t.Fatal("expected error for unknown skill")
	}
}

func TestStartResumesInProgressAttempt(t *testing.T) {
	qs := testQuestions()
	start := &store.AttemptEventRecord{
		AttemptID:     "a1",
		UserID:        "u1",
		SkillID:       "react-dev",
		Action:        "started",
		QuestionCount: len(qs),
		TimeLimitSecs: 1500,
		Questions:     snapshotsOf(qs),
		Timestamp:     time.Now().Add(-2 * time.Minute),
	}
	repo := &mockEventRepo{
		latest:     start,
		startEvent: start,
		priorAnswers: []store.AnswerEventRecord{
			{AttemptID: "a1", QuestionID: "q1", QuestionType: "mcq", SelectedOption: 0},
			{AttemptID: "a1", QuestionID: "q1", QuestionType: "mcq", SelectedOption: 2},
		},
	}
	svc := newTestService(repo)

	a, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if a.ID != "a1" {
		t.Errorf("attempt ID = %s, want resumed a1", a.ID)
	}
	if a.RemainingSecs > 1500-110 || a.RemainingSecs < 1200 {
		t.Errorf("remaining = %d, want roughly 1380", a.RemainingSecs)
	}
	if a.Answers[0] == nil || a.Answers[0].Option != 2 {
		t.Errorf("replayed answer = %+v, want latest option 2", a.Answers[0])
	}
	if lastAction(repo) != "resumed" {
		t.Errorf("last event = %s, want resumed", lastAction(repo))
	}
}

func TestRecordAnswerPersistsForResume(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestService(repo)

	a, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.RecordAnswer(context.Background(), a, Answer{Option: 1, TimeSpentSecs: 15}); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want answer persisted at record time", len(repo.answerEvents))
	}

	// Simulate a restart: the next Start finds the in-progress attempt
	// in the log and must replay the recorded answer.
	started := repo.attemptEvents[0]
	record := &store.AttemptEventRecord{
		AttemptID:     started.AttemptID,
		UserID:        started.UserID,
		SkillID:       started.SkillID,
		Action:        started.Action,
		QuestionCount: started.QuestionCount,
		TimeLimitSecs: started.TimeLimitSecs,
		Questions:     started.Questions,
		Timestamp:     time.Now().Add(-time.Minute),
	}
	repo.latest = record
	repo.startEvent = record

	resumed, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if resumed.ID != a.ID {
		t.Fatalf("attempt ID = %s, want resumed %s", resumed.ID, a.ID)
	}
	if resumed.AnsweredCount() != 1 {
		t.Errorf("AnsweredCount = %d, want 1", resumed.AnsweredCount())
	}
	if resumed.Answers[0] == nil || resumed.Answers[0].Option != 1 {
		t.Errorf("replayed answer = %+v, want option 1", resumed.Answers[0])
	}
}

func TestStartExpiresStaleAttempt(t *testing.T) {
	qs := testQuestions()
	start := &store.AttemptEventRecord{
		AttemptID:     "a1",
		UserID:        "u1",
		SkillID:       "react-dev",
		Action:        "started",
		QuestionCount: len(qs),
		TimeLimitSecs: 1500,
		Questions:     snapshotsOf(qs),
		Timestamp:     time.Now().Add(-1 * time.Hour),
	}
	repo := &mockEventRepo{latest: start, startEvent: start}
	svc := newTestService(repo)

	a, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if a.ID == "a1" {
		t.Error("stale attempt was resumed, want fresh attempt")
	}
	if len(repo.attemptEvents) != 2 {
		t.Fatalf("events = %d, want expired + started", len(repo.attemptEvents))
	}
	if repo.attemptEvents[0].Action != "expired" {
		t.Errorf("first event = %s, want expired", repo.attemptEvents[0].Action)
	}
	if lastAction(repo) != "started" {
		t.Errorf("last event = %s, want started", lastAction(repo))
	}
}

func TestSubmitGradesAndPersists(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestService(repo)

	a, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// Answer the multiple choice question correctly, skip the rest.
	if err := svc.RecordAnswer(context.Background(), a, Answer{Option: 1, TimeSpentSecs: 20}); err != nil {
		t.Fatalf("answer: %v", err)
	}

	result, err := svc.Submit(context.Background(), a)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	// 10 of 45 points.
	if result.Score != 22 {
		t.Errorf("score = %d, want 22", result.Score)
	}
	if a.Status != StatusFailed {
		t.Errorf("status = %s, want failed at threshold 70", a.Status)
	}
	if len(repo.answerEvents) != 1 {
		t.Errorf("answer events = %d, want 1", len(repo.answerEvents))
	}
	if len(repo.gradeEvents) != 1 {
		t.Fatalf("grade events = %d, want 1", len(repo.gradeEvents))
	}
	g := repo.gradeEvents[0]
	if g.Score != 22 || g.Passed || g.PassThreshold != 70 {
		t.Errorf("grade event = %+v", g)
	}
	if len(g.Feedback) != 3 {
		t.Errorf("feedback lines = %d, want 3", len(g.Feedback))
	}
	if lastAction(repo) != "submitted" {
		t.Errorf("last event = %s, want submitted", lastAction(repo))
	}
}

func TestSubmitTwiceRejected(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestService(repo)

	a, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := svc.Submit(context.Background(), a); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := svc.Submit(context.Background(), a); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second submit = %v, want ErrInvalidState", err)
	}
	if len(repo.gradeEvents) != 1 {
		t.Errorf("grade events = %d, want exactly 1", len(repo.gradeEvents))
	}
}

func TestAbandonRecordsEventWithoutGrade(t *testing.T) {
	repo := &mockEventRepo{}
	svc := newTestService(repo)

	a, err := svc.Start(context.Background(), "u1", "react-dev")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := svc.Abandon(context.Background(), a); err != nil {
		t.Fatalf("abandon: %v", err)
	}
	if a.Status != StatusAbandoned {
		t.Errorf("status = %s", a.Status)
	}
	if len(repo.gradeEvents) != 0 {
		t.Errorf("grade events = %d, want 0", len(repo.gradeEvents))
	}
	if lastAction(repo) != "abandoned" {
		t.Errorf("last event = %s, want abandoned", lastAction(repo))
	}
}

func snapshotsOf(qs []question.Question) []store.QuestionSnapshot {
	return questionSnapshots(qs)
}
