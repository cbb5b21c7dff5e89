// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureiq/procureiq/ent/predicate"
	"github.com/procureiq/procureiq/ent/quizevent"
)

// QuizEventUpdate is the builder for updating QuizEvent entities.
type QuizEventUpdate struct {
	config
	hooks    []Hook
	mutation *QuizEventMutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdate) Where(ps ...predicate.QuizEvent) *QuizEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *QuizEventUpdate) SetRunID(v string) *QuizEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableRunID(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuizSlug sets the "quiz_slug" field.
func (_u *QuizEventUpdate) SetQuizSlug(v string) *QuizEventUpdate {
	_u.mutation.SetQuizSlug(v)
	return _u
}

// SetNillableQuizSlug sets the "quiz_slug" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuizSlug(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetQuizSlug(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizEventUpdate) SetAction(v string) *QuizEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableAction(v *string) *QuizEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestionsDelivered sets the "questions_delivered" field.
func (_u *QuizEventUpdate) SetQuestionsDelivered(v int) *QuizEventUpdate {
	_u.mutation.ResetQuestionsDelivered()
	_u.mutation.SetQuestionsDelivered(v)
	return _u
}

// SetNillableQuestionsDelivered sets the "questions_delivered" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableQuestionsDelivered(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetQuestionsDelivered(*v)
	}
	return _u
}

// AddQuestionsDelivered adds value to the "questions_delivered" field.
func (_u *QuizEventUpdate) AddQuestionsDelivered(v int) *QuizEventUpdate {
	_u.mutation.AddQuestionsDelivered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizEventUpdate) SetCorrectAnswers(v int) *QuizEventUpdate {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableCorrectAnswers(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizEventUpdate) AddCorrectAnswers(v int) *QuizEventUpdate {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizEventUpdate) SetDurationSecs(v int) *QuizEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizEventUpdate) SetNillableDurationSecs(v *int) *QuizEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizEventUpdate) AddDurationSecs(v int) *QuizEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdate) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := quizevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizSlug(); ok {
		if err := quizevent.QuizSlugValidator(v); err != nil {
			return &ValidationError{Name: "quiz_slug", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(quizevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizSlug(); ok {
		_spec.SetField(quizevent.FieldQuizSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsDelivered(); ok {
		_spec.SetField(quizevent.FieldQuestionsDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsDelivered(); ok {
		_spec.AddField(quizevent.FieldQuestionsDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizEventUpdateOne is the builder for updating a single QuizEvent entity.
type QuizEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *QuizEventUpdateOne) SetRunID(v string) *QuizEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableRunID(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuizSlug sets the "quiz_slug" field.
func (_u *QuizEventUpdateOne) SetQuizSlug(v string) *QuizEventUpdateOne {
	_u.mutation.SetQuizSlug(v)
	return _u
}

// SetNillableQuizSlug sets the "quiz_slug" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuizSlug(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuizSlug(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *QuizEventUpdateOne) SetAction(v string) *QuizEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableAction(v *string) *QuizEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetQuestionsDelivered sets the "questions_delivered" field.
func (_u *QuizEventUpdateOne) SetQuestionsDelivered(v int) *QuizEventUpdateOne {
	_u.mutation.ResetQuestionsDelivered()
	_u.mutation.SetQuestionsDelivered(v)
	return _u
}

// SetNillableQuestionsDelivered sets the "questions_delivered" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableQuestionsDelivered(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetQuestionsDelivered(*v)
	}
	return _u
}

// AddQuestionsDelivered adds value to the "questions_delivered" field.
func (_u *QuizEventUpdateOne) AddQuestionsDelivered(v int) *QuizEventUpdateOne {
	_u.mutation.AddQuestionsDelivered(v)
	return _u
}

// SetCorrectAnswers sets the "correct_answers" field.
func (_u *QuizEventUpdateOne) SetCorrectAnswers(v int) *QuizEventUpdateOne {
	_u.mutation.ResetCorrectAnswers()
	_u.mutation.SetCorrectAnswers(v)
	return _u
}

// SetNillableCorrectAnswers sets the "correct_answers" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableCorrectAnswers(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswers(*v)
	}
	return _u
}

// AddCorrectAnswers adds value to the "correct_answers" field.
func (_u *QuizEventUpdateOne) AddCorrectAnswers(v int) *QuizEventUpdateOne {
	_u.mutation.AddCorrectAnswers(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *QuizEventUpdateOne) SetDurationSecs(v int) *QuizEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *QuizEventUpdateOne) SetNillableDurationSecs(v *int) *QuizEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *QuizEventUpdateOne) AddDurationSecs(v int) *QuizEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the QuizEventMutation object of the builder.
func (_u *QuizEventUpdateOne) Mutation() *QuizEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizEventUpdate builder.
func (_u *QuizEventUpdateOne) Where(ps ...predicate.QuizEvent) *QuizEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizEventUpdateOne) Select(field string, fields ...string) *QuizEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizEvent entity.
func (_u *QuizEventUpdateOne) Save(ctx context.Context) (*QuizEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizEventUpdateOne) SaveX(ctx context.Context) *QuizEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := quizevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizSlug(); ok {
		if err := quizevent.QuizSlugValidator(v); err != nil {
			return &ValidationError{Name: "quiz_slug", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.quiz_slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := quizevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "QuizEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizEventUpdateOne) sqlSave(ctx context.Context) (_node *QuizEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizevent.Table, quizevent.Columns, sqlgraph.NewFieldSpec(quizevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizevent.FieldID)
		for _, f := range fields {
			if !quizevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(quizevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizSlug(); ok {
		_spec.SetField(quizevent.FieldQuizSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(quizevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionsDelivered(); ok {
		_spec.SetField(quizevent.FieldQuestionsDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuestionsDelivered(); ok {
		_spec.AddField(quizevent.FieldQuestionsDelivered, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectAnswers(); ok {
		_spec.SetField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectAnswers(); ok {
		_spec.AddField(quizevent.FieldCorrectAnswers, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(quizevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &QuizEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
