package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GradeEvent records the grading outcome of a submitted attempt.
// Exactly one GradeEvent exists per graded attempt.
type GradeEvent struct {
	ent.Schema
}

func (GradeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (GradeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("attempt_id").
			NotEmpty().
			Unique().
			Comment("The attempt this grade belongs to"),
		field.String("user_id").
			NotEmpty(),
		field.String("skill_id").
			NotEmpty(),
		field.Int("score").
			Comment("Percentage score 0-100"),
		field.Int("earned_points").
			Default(0),
		field.Int("total_points").
			Default(0),
		field.Int("pass_threshold").
			Comment("Threshold applied at grading time"),
		field.Bool("passed"),
		field.JSON("feedback", []string{}).
			Optional().
			Comment("One line per question, in question order"),
	}
}

func (GradeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "skill_id"),
		index.Fields("passed"),
	}
}
