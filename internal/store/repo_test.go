package store

import (
	"context"
	"testing"
)

func TestAttemptEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	none, err := repo.LatestAttemptEvent(ctx, "u1", "react-dev")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if none != nil {
		t.Fatal("expected nil record when no attempts exist")
	}

	events := []AttemptEventData{
		{AttemptID: "a1", UserID: "u1", SkillID: "react-dev", Action: "started", QuestionCount: 8, TimeLimitSecs: 1500},
		{AttemptID: "a1", UserID: "u1", SkillID: "react-dev", Action: "submitted", QuestionCount: 8, TimeLimitSecs: 1500, TimeSpentSecs: 900},
		{AttemptID: "a2", UserID: "u1", SkillID: "plumber", Action: "started", QuestionCount: 8, TimeLimitSecs: 1500},
	}
	for _, e := range events {
		if err := repo.AppendAttemptEvent(ctx, e); err != nil {
			t.Fatalf("append %s/%s: %v", e.AttemptID, e.Action, err)
		}
	}

	latest, err := repo.LatestAttemptEvent(ctx, "u1", "react-dev")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest == nil || latest.Action != "submitted" {
		t.Fatalf("latest = %+v, want submitted event", latest)
	}
	if latest.TimeSpentSecs != 900 {
		t.Errorf("time spent = %d, want 900", latest.TimeSpentSecs)
	}

	all, err := repo.QueryAttemptEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("events = %d, want 3", len(all))
	}
	// Newest first.
	if all[0].AttemptID != "a2" {
		t.Errorf("first record = %s, want a2", all[0].AttemptID)
	}
}

func TestAnswersForAttemptOrdered(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{AttemptID: "a1", QuestionID: "q1", QuestionType: "mcq", Prompt: "p1", SelectedOption: 2},
		{AttemptID: "a1", QuestionID: "q2", QuestionType: "short_text", Prompt: "p2", SelectedOption: -1, AnswerText: "hooks"},
		{AttemptID: "other", QuestionID: "q9", QuestionType: "mcq", Prompt: "p9", SelectedOption: 0},
		{AttemptID: "a1", QuestionID: "q1", QuestionType: "mcq", Prompt: "p1", SelectedOption: 3},
	}
	for _, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.AnswersForAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("answers for attempt: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("answers = %d, want 3", len(got))
	}
	// Append order: the re-answer of q1 comes last.
	if got[2].QuestionID != "q1" || got[2].SelectedOption != 3 {
		t.Errorf("last answer = %+v, want re-answered q1 with option 3", got[2])
	}
}

func TestGradeForAttempt(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	missing, err := repo.GradeForAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("grade (none): %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil grade for ungraded attempt")
	}

	data := GradeEventData{
		AttemptID:     "a1",
		UserID:        "u1",
		SkillID:       "react-dev",
		Score:         85,
		EarnedPoints:  102,
		TotalPoints:   120,
		PassThreshold: 70,
		Passed:        true,
		Feedback:      []string{"Question 1: Correct! (+10 points)"},
	}
	if err := repo.AppendGradeEvent(ctx, data); err != nil {
		t.Fatalf("append grade: %v", err)
	}

	got, err := repo.GradeForAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if got == nil || got.Score != 85 || !got.Passed {
		t.Fatalf("grade = %+v, want score 85 passed", got)
	}
	if len(got.Feedback) != 1 {
		t.Errorf("feedback lines = %d, want 1", len(got.Feedback))
	}
}

func TestGradeStatsBySkill(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	grades := []GradeEventData{
		{AttemptID: "a1", UserID: "u1", SkillID: "react-dev", Score: 60, PassThreshold: 70, Passed: false},
		{AttemptID: "a2", UserID: "u1", SkillID: "react-dev", Score: 80, PassThreshold: 70, Passed: true},
		{AttemptID: "a3", UserID: "u1", SkillID: "plumber", Score: 90, PassThreshold: 75, Passed: true},
	}
	for _, g := range grades {
		if err := repo.AppendGradeEvent(ctx, g); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.GradeStatsBySkill(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("skills = %d, want 2", len(stats))
	}

	byID := make(map[string]SkillGradeStats)
	for _, st := range stats {
		byID[st.SkillID] = st
	}
	react := byID["react-dev"]
	if react.Attempts != 2 || react.Passes != 1 || react.BestScore != 80 {
		t.Errorf("react-dev stats = %+v", react)
	}
	if react.AvgScore != 70 {
		t.Errorf("react-dev avg = %v, want 70", react.AvgScore)
	}
}

func TestLatestCertificationsDedupes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []CertificationEventData{
		{CertID: "c1", AttemptID: "a1", UserID: "u1", SkillID: "react-dev", SkillName: "React Developer", Score: 85, Action: "issued"},
		{CertID: "c2", AttemptID: "a3", UserID: "u1", SkillID: "plumber", SkillName: "Plumber", Score: 90, Action: "issued"},
		{CertID: "c1", AttemptID: "a1", UserID: "u1", SkillID: "react-dev", SkillName: "React Developer", Score: 85, Action: "confirmed", MetadataCID: "QmX", TokenID: "7", TxHash: "0xabc", Verified: true},
	}
	for _, e := range events {
		if err := repo.AppendCertificationEvent(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	certs, err := repo.LatestCertifications(ctx)
	if err != nil {
		t.Fatalf("latest certifications: %v", err)
	}
	if len(certs) != 2 {
		t.Fatalf("certs = %d, want 2", len(certs))
	}
	// Newest first: the c1 confirmation leads.
	if certs[0].CertID != "c1" || !certs[0].Verified || certs[0].TokenID != "7" {
		t.Errorf("certs[0] = %+v, want confirmed c1", certs[0])
	}
	if certs[1].CertID != "c2" || certs[1].Verified {
		t.Errorf("certs[1] = %+v, want unconfirmed c2", certs[1])
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProfileRepo()
	ctx := context.Background()

	none, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if none != nil {
		t.Fatal("expected nil profile before first save")
	}

	p := &Profile{UserID: "u1", DisplayName: "Sam", Specialty: "React Developer"}
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Get(ctx)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.DisplayName != "Sam" {
		t.Fatalf("profile = %+v", got)
	}

	p.WalletAddress = "0x1234"
	if err := repo.Save(ctx, p); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.Get(ctx)
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.WalletAddress != "0x1234" {
		t.Errorf("wallet = %q, want 0x1234", got.WalletAddress)
	}
}

func TestCrossTypeSequenceOrdering(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendAttemptEvent(ctx, AttemptEventData{
		AttemptID: "a1", UserID: "u1", SkillID: "react-dev", Action: "started",
	}); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		AttemptID: "a1", QuestionID: "q1", QuestionType: "mcq", Prompt: "p", SelectedOption: 1,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	attempts, err := repo.QueryAttemptEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	answers, err := repo.AnswersForAttempt(ctx, "a1")
	if err != nil {
		t.Fatalf("query answers: %v", err)
	}
	if attempts[0].Sequence >= answers[0].Sequence {
		t.Errorf("attempt seq %d not before answer seq %d",
			attempts[0].Sequence, answers[0].Sequence)
	}
}
