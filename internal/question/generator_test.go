package question

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/fairpersona/skillcert/internal/skills"
)

// fakeAI returns a canned question set or an error.
type fakeAI struct {
	questions []Question
	err       error
	calls     int
}

func (f *fakeAI) GenerateQuestions(_ context.Context, _ skills.Skill, count int) ([]Question, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if len(f.questions) > count {
		return f.questions[:count], nil
	}
	return f.questions, nil
}

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestGenerateTestUnknownSkill(t *testing.T) {
	g := NewGenerator(seeded(1), nil)
	_, err := g.GenerateTest(context.Background(), "no-such-skill", "u1")
	if !errors.Is(err, skills.ErrNotFound) {
		t.Fatalf("err = %v, want skills.ErrNotFound", err)
	}
}

func TestGenerateTestSizeBounds(t *testing.T) {
	g := NewGenerator(seeded(1), nil)
	for _, id := range []string{"react-dev", "plumber", "data-scientist"} {
		qs, err := g.GenerateTest(context.Background(), id, "u1")
		if err != nil {
			t.Fatalf("GenerateTest(%s): %v", id, err)
		}
		if len(qs) < MinQuestions || len(qs) > MaxQuestions {
			t.Errorf("%s: got %d questions, want %d-%d", id, len(qs), MinQuestions, MaxQuestions)
		}
	}
}

func TestGenerateTestFreshIDs(t *testing.T) {
	g := NewGenerator(seeded(1), nil)

	first, err := g.GenerateTest(context.Background(), "react-dev", "u1")
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}
	second, err := g.GenerateTest(context.Background(), "react-dev", "u1")
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}

	seen := make(map[string]bool)
	for _, q := range first {
		if q.ID == "" {
			t.Fatal("question with empty ID")
		}
		seen[q.ID] = true
	}
	for _, q := range second {
		if seen[q.ID] {
			t.Errorf("ID %s reused across tests", q.ID)
		}
	}
}

func TestGenerateTestEveryQuestionTagged(t *testing.T) {
	g := NewGenerator(seeded(7), nil)
	qs, err := g.GenerateTest(context.Background(), "solidity-dev", "u1")
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}
	for _, q := range qs {
		if q.SkillID != "solidity-dev" {
			t.Errorf("question %s has SkillID %q", q.ID, q.SkillID)
		}
		if q.Points <= 0 {
			t.Errorf("question %s has non-positive points", q.ID)
		}
		if q.Type == TypeMultipleChoice {
			if len(q.Options) == 0 || q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
				t.Errorf("question %s has invalid option set", q.ID)
			}
		} else if q.CorrectOption != -1 {
			t.Errorf("free-form question %s has CorrectOption %d", q.ID, q.CorrectOption)
		}
	}
}

func TestGenerateTestDeterministicWithFixedSeed(t *testing.T) {
	a := NewGenerator(seeded(42), nil)
	b := NewGenerator(seeded(42), nil)

	qa, err := a.GenerateTest(context.Background(), "react-dev", "u1")
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}
	qb, err := b.GenerateTest(context.Background(), "react-dev", "u2")
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}

	if len(qa) != len(qb) {
		t.Fatalf("lengths differ: %d vs %d", len(qa), len(qb))
	}
	for i := range qa {
		if qa[i].Prompt != qb[i].Prompt {
			t.Errorf("position %d: prompt %q vs %q", i, qa[i].Prompt, qb[i].Prompt)
		}
	}
}

func TestSupplementUsesAIQuestions(t *testing.T) {
	ai := &fakeAI{questions: []Question{
		{Type: TypeShortText, Prompt: "model question 1", CorrectOption: -1, Points: 10, Difficulty: DifficultyMedium},
		{Type: TypeShortText, Prompt: "model question 2", CorrectOption: -1, Points: 10, Difficulty: DifficultyHard},
	}}
	g := NewGenerator(seeded(3), ai)

	// The plumber pool is small, so supplement always runs.
	qs, err := g.GenerateTest(context.Background(), "plumber", "u1")
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}
	if ai.calls == 0 {
		t.Fatal("AI generator never called")
	}

	found := 0
	for _, q := range qs {
		if q.Prompt == "model question 1" || q.Prompt == "model question 2" {
			found++
			if q.ID == "" {
				t.Error("model question emitted without fresh ID")
			}
			if q.SkillID != "plumber" {
				t.Errorf("model question has SkillID %q", q.SkillID)
			}
		}
	}
	if found != 2 {
		t.Errorf("found %d model questions, want 2", found)
	}
	if len(qs) < MinQuestions {
		t.Errorf("got %d questions, want at least %d", len(qs), MinQuestions)
	}
}

func TestSupplementRecoversFromAIFailure(t *testing.T) {
	ai := &fakeAI{err: errors.New("model unavailable")}
	g := NewGenerator(seeded(3), ai)

	qs, err := g.GenerateTest(context.Background(), "yoga-teacher", "u1")
	if err != nil {
		t.Fatalf("GenerateTest: %v", err)
	}
	if ai.calls == 0 {
		t.Fatal("AI generator never called")
	}
	if len(qs) < MinQuestions {
		t.Errorf("got %d questions after AI failure, want at least %d", len(qs), MinQuestions)
	}
}

func TestSynthesizeDifficultyRamp(t *testing.T) {
	g := NewGenerator(seeded(9), nil)
	skill, err := skills.GetSkill("data-scientist")
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}

	qs := g.synthesize(skill, 9, 0)
	want := []Difficulty{
		DifficultyEasy, DifficultyEasy, DifficultyEasy,
		DifficultyMedium, DifficultyMedium, DifficultyMedium,
		DifficultyHard, DifficultyHard, DifficultyHard,
	}
	for i, q := range qs {
		if q.Difficulty != want[i] {
			t.Errorf("position %d: difficulty %s, want %s", i, q.Difficulty, want[i])
		}
		if q.Points != PointsFor(q.Difficulty) {
			t.Errorf("position %d: points %d, want %d", i, q.Points, PointsFor(q.Difficulty))
		}
	}
}

func TestSynthesizeOffsetContinuesRamp(t *testing.T) {
	g := NewGenerator(seeded(9), nil)
	skill, err := skills.GetSkill("data-scientist")
	if err != nil {
		t.Fatalf("GetSkill: %v", err)
	}

	qs := g.synthesize(skill, 3, 6)
	for i, q := range qs {
		if q.Difficulty != DifficultyHard {
			t.Errorf("position %d: difficulty %s, want %s", i, q.Difficulty, DifficultyHard)
		}
	}
}
