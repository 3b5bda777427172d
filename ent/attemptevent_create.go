// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jtrask/stagehand/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetActivityID sets the "activity_id" field.
func (_c *AttemptEventCreate) SetActivityID(v string) *AttemptEventCreate {
	_c.mutation.SetActivityID(v)
	return _c
}

// SetPartID sets the "part_id" field.
func (_c *AttemptEventCreate) SetPartID(v string) *AttemptEventCreate {
	_c.mutation.SetPartID(v)
	return _c
}

// SetAttemptGUID sets the "attempt_guid" field.
func (_c *AttemptEventCreate) SetAttemptGUID(v string) *AttemptEventCreate {
	_c.mutation.SetAttemptGUID(v)
	return _c
}

// SetPartAttemptGUID sets the "part_attempt_guid" field.
func (_c *AttemptEventCreate) SetPartAttemptGUID(v string) *AttemptEventCreate {
	_c.mutation.SetPartAttemptGUID(v)
	return _c
}

// SetFinalize sets the "finalize" field.
func (_c *AttemptEventCreate) SetFinalize(v bool) *AttemptEventCreate {
	_c.mutation.SetFinalize(v)
	return _c
}

// SetNillableFinalize sets the "finalize" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableFinalize(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetFinalize(*v)
	}
	return _c
}

// SetKeyCount sets the "key_count" field.
func (_c *AttemptEventCreate) SetKeyCount(v int) *AttemptEventCreate {
	_c.mutation.SetKeyCount(v)
	return _c
}

// SetNillableKeyCount sets the "key_count" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableKeyCount(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetKeyCount(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Finalize(); !ok {
		v := attemptevent.DefaultFinalize
		_c.mutation.SetFinalize(v)
	}
	if _, ok := _c.mutation.KeyCount(); !ok {
		v := attemptevent.DefaultKeyCount
		_c.mutation.SetKeyCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AttemptEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ActivityID(); !ok {
		return &ValidationError{Name: "activity_id", err: errors.New(`ent: missing required field "AttemptEvent.activity_id"`)}
	}
	if v, ok := _c.mutation.ActivityID(); ok {
		if err := attemptevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.activity_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PartID(); !ok {
		return &ValidationError{Name: "part_id", err: errors.New(`ent: missing required field "AttemptEvent.part_id"`)}
	}
	if v, ok := _c.mutation.PartID(); ok {
		if err := attemptevent.PartIDValidator(v); err != nil {
			return &ValidationError{Name: "part_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.part_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptGUID(); !ok {
		return &ValidationError{Name: "attempt_guid", err: errors.New(`ent: missing required field "AttemptEvent.attempt_guid"`)}
	}
	if v, ok := _c.mutation.AttemptGUID(); ok {
		if err := attemptevent.AttemptGUIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_guid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_guid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PartAttemptGUID(); !ok {
		return &ValidationError{Name: "part_attempt_guid", err: errors.New(`ent: missing required field "AttemptEvent.part_attempt_guid"`)}
	}
	if v, ok := _c.mutation.PartAttemptGUID(); ok {
		if err := attemptevent.PartAttemptGUIDValidator(v); err != nil {
			return &ValidationError{Name: "part_attempt_guid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.part_attempt_guid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Finalize(); !ok {
		return &ValidationError{Name: "finalize", err: errors.New(`ent: missing required field "AttemptEvent.finalize"`)}
	}
	if _, ok := _c.mutation.KeyCount(); !ok {
		return &ValidationError{Name: "key_count", err: errors.New(`ent: missing required field "AttemptEvent.key_count"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ActivityID(); ok {
		_spec.SetField(attemptevent.FieldActivityID, field.TypeString, value)
		_node.ActivityID = value
	}
	if value, ok := _c.mutation.PartID(); ok {
		_spec.SetField(attemptevent.FieldPartID, field.TypeString, value)
		_node.PartID = value
	}
	if value, ok := _c.mutation.AttemptGUID(); ok {
		_spec.SetField(attemptevent.FieldAttemptGUID, field.TypeString, value)
		_node.AttemptGUID = value
	}
	if value, ok := _c.mutation.PartAttemptGUID(); ok {
		_spec.SetField(attemptevent.FieldPartAttemptGUID, field.TypeString, value)
		_node.PartAttemptGUID = value
	}
	if value, ok := _c.mutation.Finalize(); ok {
		_spec.SetField(attemptevent.FieldFinalize, field.TypeBool, value)
		_node.Finalize = value
	}
	if value, ok := _c.mutation.KeyCount(); ok {
		_spec.SetField(attemptevent.FieldKeyCount, field.TypeInt, value)
		_node.KeyCount = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
