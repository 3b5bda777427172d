// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jtrask/stagehand/ent/attemptevent"
	"github.com/jtrask/stagehand/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *AttemptEventUpdate) SetActivityID(v string) *AttemptEventUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableActivityID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetPartID sets the "part_id" field.
func (_u *AttemptEventUpdate) SetPartID(v string) *AttemptEventUpdate {
	_u.mutation.SetPartID(v)
	return _u
}

// SetNillablePartID sets the "part_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePartID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPartID(*v)
	}
	return _u
}

// SetAttemptGUID sets the "attempt_guid" field.
func (_u *AttemptEventUpdate) SetAttemptGUID(v string) *AttemptEventUpdate {
	_u.mutation.SetAttemptGUID(v)
	return _u
}

// SetNillableAttemptGUID sets the "attempt_guid" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableAttemptGUID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetAttemptGUID(*v)
	}
	return _u
}

// SetPartAttemptGUID sets the "part_attempt_guid" field.
func (_u *AttemptEventUpdate) SetPartAttemptGUID(v string) *AttemptEventUpdate {
	_u.mutation.SetPartAttemptGUID(v)
	return _u
}

// SetNillablePartAttemptGUID sets the "part_attempt_guid" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillablePartAttemptGUID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetPartAttemptGUID(*v)
	}
	return _u
}

// SetFinalize sets the "finalize" field.
func (_u *AttemptEventUpdate) SetFinalize(v bool) *AttemptEventUpdate {
	_u.mutation.SetFinalize(v)
	return _u
}

// SetNillableFinalize sets the "finalize" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableFinalize(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetFinalize(*v)
	}
	return _u
}

// SetKeyCount sets the "key_count" field.
func (_u *AttemptEventUpdate) SetKeyCount(v int) *AttemptEventUpdate {
	_u.mutation.ResetKeyCount()
	_u.mutation.SetKeyCount(v)
	return _u
}

// SetNillableKeyCount sets the "key_count" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableKeyCount(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetKeyCount(*v)
	}
	return _u
}

// AddKeyCount adds value to the "key_count" field.
func (_u *AttemptEventUpdate) AddKeyCount(v int) *AttemptEventUpdate {
	_u.mutation.AddKeyCount(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := attemptevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartID(); ok {
		if err := attemptevent.PartIDValidator(v); err != nil {
			return &ValidationError{Name: "part_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.part_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptGUID(); ok {
		if err := attemptevent.AttemptGUIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_guid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_guid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartAttemptGUID(); ok {
		if err := attemptevent.PartAttemptGUIDValidator(v); err != nil {
			return &ValidationError{Name: "part_attempt_guid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.part_attempt_guid": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(attemptevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartID(); ok {
		_spec.SetField(attemptevent.FieldPartID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptGUID(); ok {
		_spec.SetField(attemptevent.FieldAttemptGUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartAttemptGUID(); ok {
		_spec.SetField(attemptevent.FieldPartAttemptGUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Finalize(); ok {
		_spec.SetField(attemptevent.FieldFinalize, field.TypeBool, value)
	}
	if value, ok := _u.mutation.KeyCount(); ok {
		_spec.SetField(attemptevent.FieldKeyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKeyCount(); ok {
		_spec.AddField(attemptevent.FieldKeyCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *AttemptEventUpdateOne) SetActivityID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableActivityID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetPartID sets the "part_id" field.
func (_u *AttemptEventUpdateOne) SetPartID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPartID(v)
	return _u
}

// SetNillablePartID sets the "part_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePartID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPartID(*v)
	}
	return _u
}

// SetAttemptGUID sets the "attempt_guid" field.
func (_u *AttemptEventUpdateOne) SetAttemptGUID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetAttemptGUID(v)
	return _u
}

// SetNillableAttemptGUID sets the "attempt_guid" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableAttemptGUID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetAttemptGUID(*v)
	}
	return _u
}

// SetPartAttemptGUID sets the "part_attempt_guid" field.
func (_u *AttemptEventUpdateOne) SetPartAttemptGUID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetPartAttemptGUID(v)
	return _u
}

// SetNillablePartAttemptGUID sets the "part_attempt_guid" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillablePartAttemptGUID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetPartAttemptGUID(*v)
	}
	return _u
}

// SetFinalize sets the "finalize" field.
func (_u *AttemptEventUpdateOne) SetFinalize(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetFinalize(v)
	return _u
}

// SetNillableFinalize sets the "finalize" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableFinalize(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetFinalize(*v)
	}
	return _u
}

// SetKeyCount sets the "key_count" field.
func (_u *AttemptEventUpdateOne) SetKeyCount(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetKeyCount()
	_u.mutation.SetKeyCount(v)
	return _u
}

// SetNillableKeyCount sets the "key_count" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableKeyCount(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetKeyCount(*v)
	}
	return _u
}

// AddKeyCount adds value to the "key_count" field.
func (_u *AttemptEventUpdateOne) AddKeyCount(v int) *AttemptEventUpdateOne {
	_u.mutation.AddKeyCount(v)
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := attemptevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := attemptevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartID(); ok {
		if err := attemptevent.PartIDValidator(v); err != nil {
			return &ValidationError{Name: "part_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.part_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttemptGUID(); ok {
		if err := attemptevent.AttemptGUIDValidator(v); err != nil {
			return &ValidationError{Name: "attempt_guid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.attempt_guid": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PartAttemptGUID(); ok {
		if err := attemptevent.PartAttemptGUIDValidator(v); err != nil {
			return &ValidationError{Name: "part_attempt_guid", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.part_attempt_guid": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(attemptevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartID(); ok {
		_spec.SetField(attemptevent.FieldPartID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptGUID(); ok {
		_spec.SetField(attemptevent.FieldAttemptGUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PartAttemptGUID(); ok {
		_spec.SetField(attemptevent.FieldPartAttemptGUID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Finalize(); ok {
		_spec.SetField(attemptevent.FieldFinalize, field.TypeBool, value)
	}
	if value, ok := _u.mutation.KeyCount(); ok {
		_spec.SetField(attemptevent.FieldKeyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedKeyCount(); ok {
		_spec.AddField(attemptevent.FieldKeyCount, field.TypeInt, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
