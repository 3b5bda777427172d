// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jtrask/stagehand/ent/navigationevent"
	"github.com/jtrask/stagehand/ent/predicate"
)

// NavigationEventUpdate is the builder for updating NavigationEvent entities.
type NavigationEventUpdate struct {
	config
	hooks    []Hook
	mutation *NavigationEventMutation
}

// Where appends a list predicates to the NavigationEventUpdate builder.
func (_u *NavigationEventUpdate) Where(ps ...predicate.NavigationEvent) *NavigationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *NavigationEventUpdate) SetSessionID(v string) *NavigationEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NavigationEventUpdate) SetNillableSessionID(v *string) *NavigationEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFromActivity sets the "from_activity" field.
func (_u *NavigationEventUpdate) SetFromActivity(v string) *NavigationEventUpdate {
	_u.mutation.SetFromActivity(v)
	return _u
}

// SetNillableFromActivity sets the "from_activity" field if the given value is not nil.
func (_u *NavigationEventUpdate) SetNillableFromActivity(v *string) *NavigationEventUpdate {
	if v != nil {
		_u.SetFromActivity(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *NavigationEventUpdate) SetKind(v string) *NavigationEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *NavigationEventUpdate) SetNillableKind(v *string) *NavigationEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *NavigationEventUpdate) SetTarget(v string) *NavigationEventUpdate {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *NavigationEventUpdate) SetNillableTarget(v *string) *NavigationEventUpdate {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// ClearTarget clears the value of the "target" field.
func (_u *NavigationEventUpdate) ClearTarget() *NavigationEventUpdate {
	_u.mutation.ClearTarget()
	return _u
}

// SetPending sets the "pending" field.
func (_u *NavigationEventUpdate) SetPending(v bool) *NavigationEventUpdate {
	_u.mutation.SetPending(v)
	return _u
}

// SetNillablePending sets the "pending" field if the given value is not nil.
func (_u *NavigationEventUpdate) SetNillablePending(v *bool) *NavigationEventUpdate {
	if v != nil {
		_u.SetPending(*v)
	}
	return _u
}

// Mutation returns the NavigationEventMutation object of the builder.
func (_u *NavigationEventUpdate) Mutation() *NavigationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NavigationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NavigationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NavigationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NavigationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NavigationEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := navigationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromActivity(); ok {
		if err := navigationevent.FromActivityValidator(v); err != nil {
			return &ValidationError{Name: "from_activity", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.from_activity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := navigationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *NavigationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(navigationevent.Table, navigationevent.Columns, sqlgraph.NewFieldSpec(navigationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(navigationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromActivity(); ok {
		_spec.SetField(navigationevent.FieldFromActivity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(navigationevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(navigationevent.FieldTarget, field.TypeString, value)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(navigationevent.FieldTarget, field.TypeString)
	}
	if value, ok := _u.mutation.Pending(); ok {
		_spec.SetField(navigationevent.FieldPending, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{navigationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NavigationEventUpdateOne is the builder for updating a single NavigationEvent entity.
type NavigationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NavigationEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *NavigationEventUpdateOne) SetSessionID(v string) *NavigationEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *NavigationEventUpdateOne) SetNillableSessionID(v *string) *NavigationEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetFromActivity sets the "from_activity" field.
func (_u *NavigationEventUpdateOne) SetFromActivity(v string) *NavigationEventUpdateOne {
	_u.mutation.SetFromActivity(v)
	return _u
}

// SetNillableFromActivity sets the "from_activity" field if the given value is not nil.
func (_u *NavigationEventUpdateOne) SetNillableFromActivity(v *string) *NavigationEventUpdateOne {
	if v != nil {
		_u.SetFromActivity(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *NavigationEventUpdateOne) SetKind(v string) *NavigationEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *NavigationEventUpdateOne) SetNillableKind(v *string) *NavigationEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetTarget sets the "target" field.
func (_u *NavigationEventUpdateOne) SetTarget(v string) *NavigationEventUpdateOne {
	_u.mutation.SetTarget(v)
	return _u
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_u *NavigationEventUpdateOne) SetNillableTarget(v *string) *NavigationEventUpdateOne {
	if v != nil {
		_u.SetTarget(*v)
	}
	return _u
}

// ClearTarget clears the value of the "target" field.
func (_u *NavigationEventUpdateOne) ClearTarget() *NavigationEventUpdateOne {
	_u.mutation.ClearTarget()
	return _u
}

// SetPending sets the "pending" field.
func (_u *NavigationEventUpdateOne) SetPending(v bool) *NavigationEventUpdateOne {
	_u.mutation.SetPending(v)
	return _u
}

// SetNillablePending sets the "pending" field if the given value is not nil.
func (_u *NavigationEventUpdateOne) SetNillablePending(v *bool) *NavigationEventUpdateOne {
	if v != nil {
		_u.SetPending(*v)
	}
	return _u
}

// Mutation returns the NavigationEventMutation object of the builder.
func (_u *NavigationEventUpdateOne) Mutation() *NavigationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the NavigationEventUpdate builder.
func (_u *NavigationEventUpdateOne) Where(ps ...predicate.NavigationEvent) *NavigationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NavigationEventUpdateOne) Select(field string, fields ...string) *NavigationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated NavigationEvent entity.
func (_u *NavigationEventUpdateOne) Save(ctx context.Context) (*NavigationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NavigationEventUpdateOne) SaveX(ctx context.Context) *NavigationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NavigationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NavigationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NavigationEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := navigationevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FromActivity(); ok {
		if err := navigationevent.FromActivityValidator(v); err != nil {
			return &ValidationError{Name: "from_activity", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.from_activity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := navigationevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "NavigationEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *NavigationEventUpdateOne) sqlSave(ctx context.Context) (_node *NavigationEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(navigationevent.Table, navigationevent.Columns, sqlgraph.NewFieldSpec(navigationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "NavigationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, navigationevent.FieldID)
		for _, f := range fields {
			if !navigationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != navigationevent.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(navigationevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FromActivity(); ok {
		_spec.SetField(navigationevent.FieldFromActivity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(navigationevent.FieldKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Target(); ok {
		_spec.SetField(navigationevent.FieldTarget, field.TypeString, value)
	}
	if _u.mutation.TargetCleared() {
		_spec.ClearField(navigationevent.FieldTarget, field.TypeString)
	}
	if value, ok := _u.mutation.Pending(); ok {
		_spec.SetField(navigationevent.FieldPending, field.TypeBool, value)
	}
	_node = &NavigationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{navigationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
