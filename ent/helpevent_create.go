// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/procureiq/procureiq/ent/helpevent"
)

// HelpEventCreate is the builder for creating a HelpEvent entity.
type HelpEventCreate struct {
	config
	mutation *HelpEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *HelpEventCreate) SetSequence(v int64) *HelpEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *HelpEventCreate) SetTimestamp(v time.Time) *HelpEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *HelpEventCreate) SetNillableTimestamp(v *time.Time) *HelpEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *HelpEventCreate) SetRunID(v string) *HelpEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *HelpEventCreate) SetQuestionID(v string) *HelpEventCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetRequest sets the "request" field.
func (_c *HelpEventCreate) SetRequest(v string) *HelpEventCreate {
	_c.mutation.SetRequest(v)
	return _c
}

// SetSuccess sets the "success" field.
func (_c *HelpEventCreate) SetSuccess(v bool) *HelpEventCreate {
	_c.mutation.SetSuccess(v)
	return _c
}

// Mutation returns the HelpEventMutation object of the builder.
func (_c *HelpEventCreate) Mutation() *HelpEventMutation {
	return _c.mutation
}

// Save creates the HelpEvent in the database.
func (_c *HelpEventCreate) Save(ctx context.Context) (*HelpEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HelpEventCreate) SaveX(ctx context.Context) *HelpEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HelpEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HelpEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HelpEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := helpevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HelpEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "HelpEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "HelpEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "HelpEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := helpevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "HelpEvent.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := helpevent.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Request(); !ok {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required field "HelpEvent.request"`)}
	}
	if v, ok := _c.mutation.Request(); ok {
		if err := helpevent.RequestValidator(v); err != nil {
			return &ValidationError{Name: "request", err: fmt.Errorf(`ent: validator failed for field "HelpEvent.request": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Success(); !ok {
		return &ValidationError{Name: "success", err: errors.New(`ent: missing required field "HelpEvent.success"`)}
	}
	return nil
}

func (_c *HelpEventCreate) sqlSave(ctx context.Context) (*HelpEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HelpEventCreate) createSpec() (*HelpEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &HelpEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(helpevent.Table, sqlgraph.NewFieldSpec(helpevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(helpevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(helpevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(helpevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(helpevent.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Request(); ok {
		_spec.SetField(helpevent.FieldRequest, field.TypeString, value)
		_node.Request = value
	}
	if value, ok := _c.mutation.Success(); ok {
		_spec.SetField(helpevent.FieldSuccess, field.TypeBool, value)
		_node.Success = value
	}
	return _node, _spec
}

// HelpEventCreateBulk is the builder for creating many HelpEvent entities in bulk.
type HelpEventCreateBulk struct {
	config
	err      error
	builders []*HelpEventCreate
}

// Save creates the HelpEvent entities in the database.
func (_c *HelpEventCreateBulk) Save(ctx context.Context) ([]*HelpEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HelpEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HelpEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HelpEventCreateBulk) SaveX(ctx context.Context) []*HelpEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HelpEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HelpEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
