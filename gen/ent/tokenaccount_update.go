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
	"github.com/optipix/imagesync/gen/ent/tokenaccount"
)

// TokenAccountUpdate is the builder for updating TokenAccount entities.
type TokenAccountUpdate struct {
	config
	hooks    []Hook
	mutation *TokenAccountMutation
}

// Where appends a list predicates to the TokenAccountUpdate builder.
func (_u *TokenAccountUpdate) Where(ps ...predicate.TokenAccount) *TokenAccountUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBalance sets the "balance" field.
func (_u *TokenAccountUpdate) SetBalance(v int64) *TokenAccountUpdate {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *TokenAccountUpdate) SetNillableBalance(v *int64) *TokenAccountUpdate {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *TokenAccountUpdate) AddBalance(v int64) *TokenAccountUpdate {
	_u.mutation.AddBalance(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TokenAccountUpdate) SetUpdatedAt(v time.Time) *TokenAccountUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TokenAccountMutation object of the builder.
func (_u *TokenAccountUpdate) Mutation() *TokenAccountMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TokenAccountUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenAccountUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TokenAccountUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenAccountUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TokenAccountUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tokenaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenAccountUpdate) check() error {
	if v, ok := _u.mutation.Balance(); ok {
		if err := tokenaccount.BalanceValidator(v); err != nil {
			return &ValidationError{Name: "balance", err: fmt.Errorf(`ent: validator failed for field "TokenAccount.balance": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenAccountUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenaccount.Table, tokenaccount.Columns, sqlgraph.NewFieldSpec(tokenaccount.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(tokenaccount.FieldBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(tokenaccount.FieldBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tokenaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TokenAccountUpdateOne is the builder for updating a single TokenAccount entity.
type TokenAccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TokenAccountMutation
}

// SetBalance sets the "balance" field.
func (_u *TokenAccountUpdateOne) SetBalance(v int64) *TokenAccountUpdateOne {
	_u.mutation.ResetBalance()
	_u.mutation.SetBalance(v)
	return _u
}

// SetNillableBalance sets the "balance" field if the given value is not nil.
func (_u *TokenAccountUpdateOne) SetNillableBalance(v *int64) *TokenAccountUpdateOne {
	if v != nil {
		_u.SetBalance(*v)
	}
	return _u
}

// AddBalance adds value to the "balance" field.
func (_u *TokenAccountUpdateOne) AddBalance(v int64) *TokenAccountUpdateOne {
	_u.mutation.AddBalance(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TokenAccountUpdateOne) SetUpdatedAt(v time.Time) *TokenAccountUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TokenAccountMutation object of the builder.
func (_u *TokenAccountUpdateOne) Mutation() *TokenAccountMutation {
	return _u.mutation
}

// Where appends a list predicates to the TokenAccountUpdate builder.
func (_u *TokenAccountUpdateOne) Where(ps ...predicate.TokenAccount) *TokenAccountUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TokenAccountUpdateOne) Select(field string, fields ...string) *TokenAccountUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TokenAccount entity.
func (_u *TokenAccountUpdateOne) Save(ctx context.Context) (*TokenAccount, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TokenAccountUpdateOne) SaveX(ctx context.Context) *TokenAccount {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TokenAccountUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TokenAccountUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TokenAccountUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tokenaccount.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TokenAccountUpdateOne) check() error {
	if v, ok := _u.mutation.Balance(); ok {
		if err := tokenaccount.BalanceValidator(v); err != nil {
			return &ValidationError{Name: "balance", err: fmt.Errorf(`ent: validator failed for field "TokenAccount.balance": %w`, err)}
		}
	}
	return nil
}

func (_u *TokenAccountUpdateOne) sqlSave(ctx context.Context) (_node *TokenAccount, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tokenaccount.Table, tokenaccount.Columns, sqlgraph.NewFieldSpec(tokenaccount.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TokenAccount.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tokenaccount.FieldID)
		for _, f := range fields {
			if !tokenaccount.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tokenaccount.FieldID {
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
	if value, ok := _u.mutation.Balance(); ok {
		_spec.SetField(tokenaccount.FieldBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedBalance(); ok {
		_spec.AddField(tokenaccount.FieldBalance, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tokenaccount.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TokenAccount{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tokenaccount.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
