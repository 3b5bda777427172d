// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/jtrask/stagehand/ent/checkevent"
	"github.com/jtrask/stagehand/ent/predicate"
)

// CheckEventUpdate is the builder for updating CheckEvent entities.
type CheckEventUpdate struct {
	config
	hooks    []Hook
	mutation *CheckEventMutation
}

// Where appends a list predicates to the CheckEventUpdate builder.
func (_u *CheckEventUpdate) Where(ps ...predicate.CheckEvent) *CheckEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *CheckEventUpdate) SetSessionID(v string) *CheckEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableSessionID(v *string) *CheckEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *CheckEventUpdate) SetActivityID(v string) *CheckEventUpdate {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableActivityID(v *string) *CheckEventUpdate {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *CheckEventUpdate) SetOutcome(v string) *CheckEventUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableOutcome(v *string) *CheckEventUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CheckEventUpdate) SetCorrect(v bool) *CheckEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableCorrect(v *bool) *CheckEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMutationCount sets the "mutation_count" field.
func (_u *CheckEventUpdate) SetMutationCount(v int) *CheckEventUpdate {
	_u.mutation.ResetMutationCount()
	_u.mutation.SetMutationCount(v)
	return _u
}

// SetNillableMutationCount sets the "mutation_count" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableMutationCount(v *int) *CheckEventUpdate {
	if v != nil {
		_u.SetMutationCount(*v)
	}
	return _u
}

// AddMutationCount adds value to the "mutation_count" field.
func (_u *CheckEventUpdate) AddMutationCount(v int) *CheckEventUpdate {
	_u.mutation.AddMutationCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *CheckEventUpdate) SetErrorCount(v int) *CheckEventUpdate {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableErrorCount(v *int) *CheckEventUpdate {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *CheckEventUpdate) AddErrorCount(v int) *CheckEventUpdate {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CheckEventUpdate) SetScore(v float64) *CheckEventUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CheckEventUpdate) SetNillableScore(v *float64) *CheckEventUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CheckEventUpdate) AddScore(v float64) *CheckEventUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the CheckEventMutation object of the builder.
func (_u *CheckEventUpdate) Mutation() *CheckEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CheckEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CheckEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := checkevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := checkevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkevent.Table, checkevent.Columns, sqlgraph.NewFieldSpec(checkevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(checkevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(checkevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(checkevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(checkevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MutationCount(); ok {
		_spec.SetField(checkevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMutationCount(); ok {
		_spec.AddField(checkevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(checkevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(checkevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(checkevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(checkevent.FieldScore, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CheckEventUpdateOne is the builder for updating a single CheckEvent entity.
type CheckEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CheckEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *CheckEventUpdateOne) SetSessionID(v string) *CheckEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableSessionID(v *string) *CheckEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetActivityID sets the "activity_id" field.
func (_u *CheckEventUpdateOne) SetActivityID(v string) *CheckEventUpdateOne {
	_u.mutation.SetActivityID(v)
	return _u
}

// SetNillableActivityID sets the "activity_id" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableActivityID(v *string) *CheckEventUpdateOne {
	if v != nil {
		_u.SetActivityID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *CheckEventUpdateOne) SetOutcome(v string) *CheckEventUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableOutcome(v *string) *CheckEventUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CheckEventUpdateOne) SetCorrect(v bool) *CheckEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableCorrect(v *bool) *CheckEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMutationCount sets the "mutation_count" field.
func (_u *CheckEventUpdateOne) SetMutationCount(v int) *CheckEventUpdateOne {
	_u.mutation.ResetMutationCount()
	_u.mutation.SetMutationCount(v)
	return _u
}

// SetNillableMutationCount sets the "mutation_count" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableMutationCount(v *int) *CheckEventUpdateOne {
	if v != nil {
		_u.SetMutationCount(*v)
	}
	return _u
}

// AddMutationCount adds value to the "mutation_count" field.
func (_u *CheckEventUpdateOne) AddMutationCount(v int) *CheckEventUpdateOne {
	_u.mutation.AddMutationCount(v)
	return _u
}

// SetErrorCount sets the "error_count" field.
func (_u *CheckEventUpdateOne) SetErrorCount(v int) *CheckEventUpdateOne {
	_u.mutation.ResetErrorCount()
	_u.mutation.SetErrorCount(v)
	return _u
}

// SetNillableErrorCount sets the "error_count" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableErrorCount(v *int) *CheckEventUpdateOne {
	if v != nil {
		_u.SetErrorCount(*v)
	}
	return _u
}

// AddErrorCount adds value to the "error_count" field.
func (_u *CheckEventUpdateOne) AddErrorCount(v int) *CheckEventUpdateOne {
	_u.mutation.AddErrorCount(v)
	return _u
}

// SetScore sets the "score" field.
func (_u *CheckEventUpdateOne) SetScore(v float64) *CheckEventUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CheckEventUpdateOne) SetNillableScore(v *float64) *CheckEventUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *CheckEventUpdateOne) AddScore(v float64) *CheckEventUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// Mutation returns the CheckEventMutation object of the builder.
func (_u *CheckEventUpdateOne) Mutation() *CheckEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CheckEventUpdate builder.
func (_u *CheckEventUpdateOne) Where(ps ...predicate.CheckEvent) *CheckEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CheckEventUpdateOne) Select(field string, fields ...string) *CheckEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CheckEvent entity.
func (_u *CheckEventUpdateOne) Save(ctx context.Context) (*CheckEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CheckEventUpdateOne) SaveX(ctx context.Context) *CheckEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CheckEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CheckEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CheckEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := checkevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ActivityID(); ok {
		if err := checkevent.ActivityIDValidator(v); err != nil {
			return &ValidationError{Name: "activity_id", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.activity_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := checkevent.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "CheckEvent.outcome": %w`, err)}
		}
	}
	return nil
}

func (_u *CheckEventUpdateOne) sqlSave(ctx context.Context) (_node *CheckEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(checkevent.Table, checkevent.Columns, sqlgraph.NewFieldSpec(checkevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CheckEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkevent.FieldID)
		for _, f := range fields {
			if !checkevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != checkevent.FieldID {
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
		_spec.SetField(checkevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ActivityID(); ok {
		_spec.SetField(checkevent.FieldActivityID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(checkevent.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(checkevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MutationCount(); ok {
		_spec.SetField(checkevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMutationCount(); ok {
		_spec.AddField(checkevent.FieldMutationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ErrorCount(); ok {
		_spec.SetField(checkevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedErrorCount(); ok {
		_spec.AddField(checkevent.FieldErrorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(checkevent.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(checkevent.FieldScore, field.TypeFloat64, value)
	}
	_node = &CheckEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{checkevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
