package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a lifecycle transition of a test attempt:
// started, resumed, submitted, abandoned, or expired.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links events of one attempt together"),
		field.String("user_id").
			NotEmpty().
			Comment("Owner of the attempt"),
		field.String("skill_id").
			NotEmpty().
			Comment("Skill under test"),
		field.String("action").
			NotEmpty().
			Comment("started, resumed, submitted, abandoned, or expired"),
		field.Int("question_count").
			Default(0).
			Comment("Questions in the generated test"),
		field.Int("time_limit_secs").
			Default(0).
			Comment("Allowed duration at start"),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Accumulated active time at this transition"),
		field.JSON("questions", []QuestionSnapshot{}).
			Optional().
			Comment("Generated question set; present on started events only"),
	}
}

// QuestionSnapshot is the stored form of one generated question,
// embedded in the started event so an interrupted attempt can be
// resumed with the identical question set.
type QuestionSnapshot struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectOption int      `json:"correct_option"`
	Points        int      `json:"points"`
	Difficulty    string   `json:"difficulty"`
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("user_id", "skill_id"),
		index.Fields("action"),
	}
}
