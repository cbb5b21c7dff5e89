package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records quiz run lifecycle events (start/finish).
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("UUID grouping events in a quiz run"),
		field.String("quiz_slug").
			NotEmpty().
			Comment("Which quiz was taken"),
		field.String("action").
			NotEmpty().
			Comment("start or finish"),
		field.Int("questions_delivered").
			Default(0).
			Comment("Questions presented in the run"),
		field.Int("correct_answers").
			Default(0).
			Comment("Correct answers (on finish only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Run duration in seconds (on finish only)"),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("quiz_slug"),
		index.Fields("action"),
	}
}
