// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jtrask/stagehand/ent/navigationevent"
)

// NavigationEventCreate is the builder for creating a NavigationEvent entity.
type NavigationEventCreate struct {
	config
	mutation *NavigationEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *NavigationEventCreate) SetSequence(v int64) *NavigationEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *NavigationEventCreate) SetTimestamp(v time.Time) *NavigationEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *NavigationEventCreate) SetNillableTimestamp(v *time.Time) *NavigationEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *NavigationEventCreate) SetSessionID(v string) *NavigationEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetFromActivity sets the "from_activity" field.
func (_c *NavigationEventCreate) SetFromActivity(v string) *NavigationEventCreate {
	_c.mutation.SetFromActivity(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *NavigationEventCreate) SetKind(v string) *NavigationEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *NavigationEventCreate) SetTarget(v string) *NavigationEventCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_c *NavigationEventCreate) SetNillableTarget(v *string) *NavigationEventCreate {
	if v != nil {
		_c.SetTarget(*v)
	}
	return _c
}

// SetPending sets the "pending" field.
func (_c *NavigationEventCreate) SetPending(v bool) *NavigationEventCreate {
	_c.mutation.SetPending(v)
	return _c
}

// SetNillablePending sets the "pending" field if the given value is not nil.
func (_c *NavigationEventCreate) SetNillablePending(v *bool) *NavigationEventCreate {
	if v != nil {
		_c.SetPending(*v)
	}
	return _c
}

// Mutation returns the NavigationEventMutation object of the builder.
func (_c *NavigationEventCreate) Mutation() *NavigationEventMutation {
	return _c.mutation
}

// Save creates the NavigationEvent in the database.
func (_c *NavigationEventCreate) Save(ctx context.Context) (*NavigationEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NavigationEventCreate) SaveX(ctx context.Context) *NavigationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NavigationEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NavigationEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NavigationEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := navigationevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Pending(); !ok {
		v := navigationevent.DefaultPending
		_c.mutation.SetPending(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NavigationEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "NavigationEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "NavigationEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "NavigationEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := navigationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FromActivity(); !ok {
		return &ValidationError{Name: "from_activity", err: errors.New(`ent: missing required field "NavigationEvent.from_activity"`)}
	}
	if v, ok := _c.mutation.FromActivity(); ok {
		if err := navigationevent.FromActivityValidator(v); err != nil {
			return &ValidationError{Name: "from_activity", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.from_activity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "NavigationEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := navigationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Pending(); !ok {
		return &ValidationError{Name: "pending", err: errors.New(`ent: missing required field "NavigationEvent.pending"`)}
	}
	return nil
}

func (_c *NavigationEventCreate) sqlSave(ctx context.Context) (*NavigationEvent, error) {
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

func (_c *NavigationEventCreate) createSpec() (*NavigationEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &NavigationEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(navigationevent.Table, sqlgraph.NewFieldSpec(navigationevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(navigationevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(navigationevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(navigationevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.FromActivity(); ok {
		_spec.SetField(navigationevent.FieldFromActivity, field.TypeString, value)
		_node.FromActivity = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(navigationevent.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(navigationevent.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.Pending(); ok {
		_spec.SetField(navigationevent.FieldPending, field.TypeBool, value)
		_node.Pending = value
	}
	return _node, _spec
}

// NavigationEventCreateBulk is the builder for creating many NavigationEvent entities in bulk.
type NavigationEventCreateBulk struct {
	config
	err      error
	builders []*NavigationEventCreate
}

// Save creates the NavigationEvent entities in the database.
func (_c *NavigationEventCreateBulk) Save(ctx context.Context) ([]*NavigationEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*NavigationEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NavigationEventMutation)
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
func (_c *NavigationEventCreateBulk) SaveX(ctx context.Context) []*NavigationEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NavigationEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NavigationEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
