package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HelpEvent records that the learner asked the AI assistant for help
// on a question.
type HelpEvent struct {
	ent.Schema
}

func (HelpEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (HelpEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").NotEmpty(),
		field.String("question_id").NotEmpty(),
		field.String("request").
			NotEmpty().
			Comment("What the learner asked for"),
		field.Bool("success").
			Comment("Whether the assistant produced a response"),
	}
}

func (HelpEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("question_id"),
	}
}
