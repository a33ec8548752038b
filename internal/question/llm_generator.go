package question

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fairpersona/skillcert/internal/llm"
	"github.com/fairpersona/skillcert/internal/skills"
)

const generateSystemPrompt = `You are an expert assessment author creating skill certification questions.

Rules:
- Generate diverse questions that test practical knowledge and real-world application of the given skill.
- Mix question formats: roughly 60% multiple choice, 25% short text, 15% scenario-based.
- For multiple choice, provide exactly 4 options where exactly one is correct. Distractors should reflect common misconceptions, not random noise.
- Assign each question a difficulty tier: easy, medium, or hard. Spread tiers so the set leans toward more difficult items.
- Questions must be self-contained. Do not reference external material the candidate cannot see.`

// LLMGenerator implements AIGenerator using an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   LLMConfig
}

// LLMConfig controls model-backed question generation.
type LLMConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultLLMConfig returns the recommended generation settings.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		MaxTokens:   2000,
		Temperature: 0.7,
	}
}

// NewLLMGenerator creates a model-backed question generator.
func NewLLMGenerator(provider llm.Provider, cfg LLMConfig) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionsOutput is the raw LLM response before conversion.
type questionsOutput struct {
	Questions []struct {
		Type          string   `json:"type"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correct_answer"`
		Difficulty    string   `json:"difficulty"`
	} `json:"questions"`
}

// GenerateQuestions asks the model for up to count questions for a skill.
// Point values are assigned locally from the reported difficulty so a
// drifting model cannot skew scoring.
func (g *LLMGenerator) GenerateQuestions(ctx context.Context, skill skills.Skill, count int) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: generateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerateMessage(skill, count)},
		},
		Schema:      TestQuestionsSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var raw questionsOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse question batch: %w", err)
	}

	out := make([]Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		difficulty := Difficulty(rq.Difficulty)
		q := Question{
			Type:          Type(rq.Type),
			Prompt:        rq.Question,
			CorrectOption: -1,
			Points:        PointsFor(difficulty),
			Difficulty:    difficulty,
			SkillID:       skill.ID,
		}
		if q.Type == TypeMultipleChoice {
			if len(rq.Options) == 0 || rq.CorrectAnswer < 0 || rq.CorrectAnswer >= len(rq.Options) {
				continue // drop malformed mcq rather than fail the batch
			}
			q.Options = rq.Options
			q.CorrectOption = rq.CorrectAnswer
		}
		out = append(out, q)
		if len(out) == count {
			break
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("model returned no usable questions")
	}
	return out, nil
}

// buildGenerateMessage constructs the user message describing the skill.
func buildGenerateMessage(skill skills.Skill, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d test questions for a %s skill assessment.\n\n", count, skill.Name)
	fmt.Fprintf(&b, "Skill: %s\n", skill.Name)
	fmt.Fprintf(&b, "Category: %s\n", skill.Category)
	fmt.Fprintf(&b, "Description: %s\n", skill.Description)
	fmt.Fprintf(&b, "Overall difficulty: %s\n", skill.Difficulty)
	if len(skill.Tags) > 0 {
		fmt.Fprintf(&b, "Topics: %s\n", strings.Join(skill.Tags, ", "))
	}
	return b.String()
}
