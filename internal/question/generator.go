package question

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/fairpersona/skillcert/internal/skills"
)

const (
	// MinQuestions and MaxQuestions bound the size of every generated test.
	MinQuestions = 8
	MaxQuestions = 10
)

// AIGenerator produces supplemental questions from an external model.
// Implementations must return at most count questions; failures are
// recovered by local synthesis and never surface to the caller.
type AIGenerator interface {
	GenerateQuestions(ctx context.Context, skill skills.Skill, count int) ([]Question, error)
}

// Generator builds randomized, difficulty-balanced test question sets.
// The random source is injected so tests can substitute a fixed seed.
type Generator struct {
	rng *rand.Rand
	ai  AIGenerator
}

// NewGenerator creates a Generator. rng may be nil, in which case an
// unseeded source is used. ai may be nil to disable model-backed
// question synthesis.
func NewGenerator(rng *rand.Rand, ai AIGenerator) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng, ai: ai}
}

// GenerateTest produces an ordered set of MinQuestions-MaxQuestions
// questions for the given skill. userID is opaque and recorded only for
// traceability; it does not influence content. Every emitted question
// carries a fresh unique ID even when its content comes from a shared
// pool. Unknown skill IDs fail with skills.ErrNotFound.
func (g *Generator) GenerateTest(ctx context.Context, skillID, userID string) ([]Question, error) {
	skill, err := skills.GetSkill(skillID)
	if err != nil {
		return nil, err
	}

	var set []Question
	for _, e := range poolFor(skill.ID) {
		set = append(set, g.emit(skill.ID, e))
	}

	if shortfall := MinQuestions - len(set); shortfall > 0 {
		set = append(set, g.supplement(ctx, skill, shortfall)...)
	}

	g.rng.Shuffle(len(set), func(i, j int) {
		set[i], set[j] = set[j], set[i]
	})

	if len(set) > MaxQuestions {
		set = set[:MaxQuestions]
	}

	if len(set) == 0 {
		return nil, fmt.Errorf("empty question set for skill %q", skill.ID)
	}

	return set, nil
}

// emit instantiates a pool entry with a fresh ID.
func (g *Generator) emit(skillID string, e poolEntry) Question {
	return Question{
		ID:            uuid.New().String(),
		Type:          e.Type,
		Prompt:        e.Prompt,
		Options:       e.Options,
		CorrectOption: e.CorrectOption,
		Points:        e.Points,
		Difficulty:    e.Difficulty,
		SkillID:       skillID,
	}
}

// supplement fills a shortfall with AI-generated questions when a model
// is configured, falling back to local synthesis on any failure.
func (g *Generator) supplement(ctx context.Context, skill skills.Skill, count int) []Question {
	if g.ai != nil {
		generated, err := g.ai.GenerateQuestions(ctx, skill, count)
		if err == nil && len(generated) > 0 {
			for i := range generated {
				generated[i].ID = uuid.New().String()
				generated[i].SkillID = skill.ID
			}
			if len(generated) >= count {
				return generated[:count]
			}
			return append(generated, g.synthesize(skill, count-len(generated), len(generated))...)
		}
	}
	return g.synthesize(skill, count, 0)
}

// synthesize builds placeholder questions with a difficulty ramp: the
// first ~30% easy, the next ~30% medium, the remainder hard.
func (g *Generator) synthesize(skill skills.Skill, count, offset int) []Question {
	types := []Type{TypeMultipleChoice, TypeShortText, TypeScenario}

	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		n := offset + i
		var difficulty Difficulty
		switch {
		case n < 3:
			difficulty = DifficultyEasy
		case n < 6:
			difficulty = DifficultyMedium
		default:
			difficulty = DifficultyHard
		}

		qt := types[g.rng.IntN(len(types))]
		q := Question{
			ID:            uuid.New().String(),
			Type:          qt,
			Prompt:        fmt.Sprintf("Advanced %s question %d - %s level", skill.Name, n+1, difficulty),
			CorrectOption: -1,
			Points:        PointsFor(difficulty),
			Difficulty:    difficulty,
			SkillID:       skill.ID,
		}
		if qt == TypeMultipleChoice {
			q.Options = []string{"Option A", "Option B", "Option C", "Option D"}
			q.CorrectOption = g.rng.IntN(len(q.Options))
		}
		out = append(out, q)
	}
	return out
}
