// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/optipix/imagesync/gen/ent/predicate"
	"github.com/optipix/imagesync/gen/ent/tokenreservation"
)

// TokenReservationUpdate is the builder for updating TokenReservation entities.
type TokenReservationUpdate struct {
	config
	hooks    []Hook
	mutation *TokenReservationMutation
}

// Where appends a list predicates to the TokenReservationUpdate builder.
func (_u *TokenReservationUpdate) Where(ps ...predicate.TokenReservation) *TokenReservationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAmountConsumed sets the "amount_consumed" field.
func (_u *TokenReservationUpdate) SetAmountConsumed(v int64) *TokenReservationUpdate {
	_u.mutation.ResetAmountConsumed()
	_u.mutation.SetAmountConsumed(v)
	return _u
}

// SetNillableAmountConsumed sets the "amount_consumed" field if the given value is not nil.
func (_u *TokenReservationUpdate) SetNillableAmountConsumed(v *int64) *TokenReservationUpdate {
	if v != nil {
		_u.SetAmountConsumed(*v)
	}
	return _u
}

// AddAmountConsumed adds value to the "amount_consumed" field.
func (_u *TokenReservationUpdate) AddAmountConsumed(v int64) *TokenReservationUpdate {
	_u.mutation.AddAmountConsumed(v)
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *TokenReservationUpdate) SetReleasedAt(v time.Time) *TokenReservationUpdate {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *TokenReservationUpdate) SetNillableReleasedAt(v *time.Time) *TokenReservationUpdate {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *TokenReservationUpdate) ClearReleasedAt() *TokenReservationUpdate {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the TokenReservationMutation object of the builder.
func (_u *TokenReservationUpdate) Mutation() *TokenReservationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenReservationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenReservationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenReservationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenReservationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenReservationUpdate) check() error {
	if v, ok := _u.mutation.AmountConsumed(); ok {
		if err := tokenreservation.AmountConsumedValidator(v); err != nil {
			return &ValidationError{Name: "amount_consumed", err: fmt.Errorf(`ent: validator failed for field "TokenReservation.amount_consumed": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenReservationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenreservation.Table, tokenreservation.Columns, sqlgraph.NewFieldSpec(tokenreservation.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AmountConsumed(); ok {
		_spec.SetField(tokenreservation.FieldAmountConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountConsumed(); ok {
		_spec.AddField(tokenreservation.FieldAmountConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(tokenreservation.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(tokenreservation.FieldReleasedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenreservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenReservationUpdateOne is the builder for updating a single TokenReservation entity.
type TokenReservationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenReservationMutation
}

// SetAmountConsumed sets the "amount_consumed" field.
func (_u *TokenReservationUpdateOne) SetAmountConsumed(v int64) *TokenReservationUpdateOne {
	_u.mutation.ResetAmountConsumed()
	_u.mutation.SetAmountConsumed(v)
	return _u
}

// SetNillableAmountConsumed sets the "amount_consumed" field if the given value is not nil.
func (_u *TokenReservationUpdateOne) SetNillableAmountConsumed(v *int64) *TokenReservationUpdateOne {
	if v != nil {
		_u.SetAmountConsumed(*v)
	}
	return _u
}

// AddAmountConsumed adds value to the "amount_consumed" field.
func (_u *TokenReservationUpdateOne) AddAmountConsumed(v int64) *TokenReservationUpdateOne {
	_u.mutation.AddAmountConsumed(v)
	return _u
}

// SetReleasedAt sets the "released_at" field.
func (_u *TokenReservationUpdateOne) SetReleasedAt(v time.Time) *TokenReservationUpdateOne {
	_u.mutation.SetReleasedAt(v)
	return _u
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_u *TokenReservationUpdateOne) SetNillableReleasedAt(v *time.Time) *TokenReservationUpdateOne {
	if v != nil {
		_u.SetReleasedAt(*v)
	}
	return _u
}

// ClearReleasedAt clears the value of the "released_at" field.
func (_u *TokenReservationUpdateOne) ClearReleasedAt() *TokenReservationUpdateOne {
	_u.mutation.ClearReleasedAt()
	return _u
}

// Mutation returns the TokenReservationMutation object of the builder.
func (_u *TokenReservationUpdateOne) Mutation() *TokenReservationMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenReservationUpdate builder.
func (_u *TokenReservationUpdateOne) Where(ps ...predicate.TokenReservation) *TokenReservationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenReservationUpdateOne) Select(field string, fields ...string) *TokenReservationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenReservation entity.
func (_u *TokenReservationUpdateOne) Save(ctx context.Context) (*TokenReservation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenReservationUpdateOne) SaveX(ctx context.Context) *TokenReservation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenReservationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenReservationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenReservationUpdateOne) check() error {
	if v, ok := _u.mutation.AmountConsumed(); ok {
		if err := tokenreservation.AmountConsumedValidator(v); err != nil {
			return &ValidationError{Name: "amount_consumed", err: fmt.Errorf(`ent: validator failed for field "TokenReservation.amount_consumed": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenReservationUpdateOne) sqlSave(ctx context.Context) (_node *TokenReservation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenreservation.Table, tokenreservation.Columns, sqlgraph.NewFieldSpec(tokenreservation.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenReservation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenreservation.FieldID)
		for _, f := range fields {
			if !tokenreservation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenreservation.FieldID {
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
	if value, ok := _u.mutation.AmountConsumed(); ok {
		_spec.SetField(tokenreservation.FieldAmountConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedAmountConsumed(); ok {
		_spec.AddField(tokenreservation.FieldAmountConsumed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ReleasedAt(); ok {
		_spec.SetField(tokenreservation.FieldReleasedAt, field.TypeTime, value)
	}
	if _u.mutation.ReleasedAtCleared() {
		_spec.ClearField(tokenreservation.FieldReleasedAt, field.TypeTime)
	}
	_node = &TokenReservation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenreservation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
