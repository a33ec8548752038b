package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single recorded answer within an attempt.
// Re-answering a question appends a new event; the latest one wins.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Comment("Links to AttemptEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question instance this answers"),
		field.String("question_type").
			NotEmpty().
			Comment("mcq, short_text, scenario, code, or file_upload"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.Int("selected_option").
			Default(-1).
			Comment("Chosen option index for multiple choice; -1 otherwise"),
		field.String("answer_text").
			Default("").
			Comment("Free-form response text"),
		field.Int("time_spent_secs").
			Default(0).
			Comment("Seconds spent on this question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("attempt_id"),
		index.Fields("question_id"),
	}
}
