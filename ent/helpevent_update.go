// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureiq/procureiq/ent/helpevent"
	"github.com/procureiq/procureiq/ent/predicate"
)

// HelpEventUpdate is the builder for updating HelpEvent entities.
type HelpEventUpdate struct {
	config
	hooks    []Hook
	mutation *HelpEventMutation
}

// Where appends a list predicates to the HelpEventUpdate builder.
func (_u *HelpEventUpdate) Where(ps ...predicate.HelpEvent) *HelpEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *HelpEventUpdate) SetRunID(v string) *HelpEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *HelpEventUpdate) SetNillableRunID(v *string) *HelpEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *HelpEventUpdate) SetQuestionID(v string) *HelpEventUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *HelpEventUpdate) SetNillableQuestionID(v *string) *HelpEventUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *HelpEventUpdate) SetRequest(v string) *HelpEventUpdate {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *HelpEventUpdate) SetNillableRequest(v *string) *HelpEventUpdate {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *HelpEventUpdate) SetSuccess(v bool) *HelpEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *HelpEventUpdate) SetNillableSuccess(v *bool) *HelpEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the HelpEventMutation object of the builder.
func (_u *HelpEventUpdate) Mutation() *HelpEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HelpEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HelpEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HelpEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HelpEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HelpEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := helpevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := helpevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Request(); ok {
		if err := helpevent.RequestValidator(v); err != nil {
			return &ValidationError{Name: "request", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.request": %w`, err)}
		}
	}
	return nil
}

func (_u *HelpEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(helpevent.Table, helpevent.Columns, sqlgraph.NewFieldSpec(helpevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(helpevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(helpevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(helpevent.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(helpevent.FieldSuccess, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{helpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HelpEventUpdateOne is the builder for updating a single HelpEvent entity.
type HelpEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HelpEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *HelpEventUpdateOne) SetRunID(v string) *HelpEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *HelpEventUpdateOne) SetNillableRunID(v *string) *HelpEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *HelpEventUpdateOne) SetQuestionID(v string) *HelpEventUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *HelpEventUpdateOne) SetNillableQuestionID(v *string) *HelpEventUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetRequest sets the "request" field.
func (_u *HelpEventUpdateOne) SetRequest(v string) *HelpEventUpdateOne {
	_u.mutation.SetRequest(v)
	return _u
}

// SetNillableRequest sets the "request" field if the given value is not nil.
func (_u *HelpEventUpdateOne) SetNillableRequest(v *string) *HelpEventUpdateOne {
	if v != nil {
		_u.SetRequest(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *HelpEventUpdateOne) SetSuccess(v bool) *HelpEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *HelpEventUpdateOne) SetNillableSuccess(v *bool) *HelpEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// Mutation returns the HelpEventMutation object of the builder.
func (_u *HelpEventUpdateOne) Mutation() *HelpEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the HelpEventUpdate builder.
func (_u *HelpEventUpdateOne) Where(ps ...predicate.HelpEvent) *HelpEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HelpEventUpdateOne) Select(field string, fields ...string) *HelpEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HelpEvent entity.
func (_u *HelpEventUpdateOne) Save(ctx context.Context) (*HelpEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HelpEventUpdateOne) SaveX(ctx context.Context) *HelpEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HelpEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HelpEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HelpEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := helpevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionID(); ok {
		if err := helpevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.question_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Request(); ok {
		if err := helpevent.RequestValidator(v); err != nil {
			return &ValidationError{Name: "request", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.request": %w`, err)}
		}
	}
	return nil
}

func (_u *HelpEventUpdateOne) sqlSave(ctx context.Context) (_node *HelpEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(helpevent.Table, helpevent.Columns, sqlgraph.NewFieldSpec(helpevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HelpEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, helpevent.FieldID)
		for _, f := range fields {
			if !helpevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != helpevent.FieldID {
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
		_spec.SetField(helpevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(helpevent.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Request(); ok {
		_spec.SetField(helpevent.FieldRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(helpevent.FieldSuccess, field.TypeBool, value)
	}
	_node = &HelpEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{helpevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
