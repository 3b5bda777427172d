// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jtrask/stagehand/ent/checkevent"
)

// CheckEventCreate is the builder for creating a CheckEvent entity.
type CheckEventCreate struct {
	config
	mutation *CheckEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *CheckEventCreate) SetSequence(v int64) *CheckEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *CheckEventCreate) SetTimestamp(v time.Time) *CheckEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableTimestamp(v *time.Time) *CheckEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *CheckEventCreate) SetSessionID(v string) *CheckEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *CheckEventCreate) SetActivityID(v string) *CheckEventCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *CheckEventCreate) SetOutcome(v string) *CheckEventCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *CheckEventCreate) SetCorrect(v bool) *CheckEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetMutationCount sets the "mutation_count" field.
func (_c *CheckEventCreate) SetMutationCount(v int) *CheckEventCreate {
	_c.mutation.SetMutationCount(v)
	return _c
}

// SetNillableMutationCount sets the "mutation_count" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableMutationCount(v *int) *CheckEventCreate {
	if v != nil {
		_c.SetMutationCount(*v)
	}
	return _c
}

// SetErrorCount sets the "error_count" field.
func (_c *CheckEventCreate) SetErrorCount(v int) *CheckEventCreate {
	_c.mutation.SetErrorCount(v)
	return _c
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableErrorCount(v *int) *CheckEventCreate {
	if v != nil {
		_c.SetErrorCount(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *CheckEventCreate) SetScore(v float64) *CheckEventCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *CheckEventCreate) SetNillableScore(v *float64) *CheckEventCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// Mutation returns the CheckEventMutation object of the builder.
func (_c *CheckEventCreate) Mutation() *CheckEventMutation {
	return _c.mutation
}

// Save creates the CheckEvent in the database.
func (_c *CheckEventCreate) Save(ctx context.Context) (*CheckEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CheckEventCreate) SaveX(ctx context.Context) *CheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CheckEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := checkevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.MutationCount(); !ok {
		v := checkevent.DefaultMutationCount
		_c.mutation.SetMutationCount(v)
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		v := checkevent.DefaultErrorCount
		_c.mutation.SetErrorCount(v)
	}
	if _, ok := _c.mutation.Score(); !ok {
		v := checkevent.DefaultScore
		_c.mutation.SetScore(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CheckEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "CheckEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "CheckEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "CheckEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := checkevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "CheckEvent.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := checkevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "CheckEvent.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := checkevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "CheckEvent.correct"`)}
	}
	if _, ok := _c.mutation.MutationCount(); !ok {
		return &ValidationError{Name: "mutation_count", err: errors.New(`ent: missing required field "CheckEvent.mutation_count"`)}
	}
	if _, ok := _c.mutation.ErrorCount(); !ok {
		return &ValidationError{Name: "error_count", err: errors.New(`ent: missing required field "CheckEvent.error_count"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CheckEvent.score"`)}
	}
	return nil
}

func (_c *CheckEventCreate) sqlSave(ctx context.Context) (*CheckEvent, error) {
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

func (_c *CheckEventCreate) createSpec() (*CheckEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &CheckEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(checkevent.Table, sqlgraph.NewFieldSpec(checkevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(checkevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(checkevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(checkevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(checkevent.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(checkevent.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(checkevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.MutationCount(); ok {
		_spec.SetField(checkevent.FieldMutationCount, field.TypeInt, value)
		_node.MutationCount = value
	}
	if value, ok := _c.mutation.ErrorCount(); ok {
		_spec.SetField(checkevent.FieldErrorCount, field.TypeInt, value)
		_node.ErrorCount = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(checkevent.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	return _node, _spec
}

// CheckEventCreateBulk is the builder for creating many CheckEvent entities in bulk.
type CheckEventCreateBulk struct {
	config
	err      error
	builders []*CheckEventCreate
}

// Save creates the CheckEvent entities in the database.
func (_c *CheckEventCreateBulk) Save(ctx context.Context) ([]*CheckEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CheckEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CheckEventMutation)
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
func (_c *CheckEventCreateBulk) SaveX(ctx context.Context) []*CheckEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CheckEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CheckEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
