package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single submitted answer within a quiz run.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Links to QuizEvent"),
		field.String("quiz_slug").
			NotEmpty(),
		field.String("question_id").
			NotEmpty(),
		field.String("question_type").
			NotEmpty().
			Comment("single or multi"),
		field.JSON("chosen", []int{}).
			Comment("Selected option indices in shuffled order"),
		field.Bool("correct").
			Comment("Whether the selection matched the answer set"),
		field.JSON("skill_keys", []string{}).
			Optional().
			Comment("Competencies the question scores against"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds spent on the question"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("question_id"),
		index.Fields("correct"),
	}
}
