// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/tokenreservation"
)

// TokenReservationCreate is the builder for creating a TokenReservation entity.
type TokenReservationCreate struct {
	config
	mutation *TokenReservationMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *TokenReservationCreate) SetOwnerID(v uuid.UUID) *TokenReservationCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetJobID sets the "job_id" field.
func (_c *TokenReservationCreate) SetJobID(v uuid.UUID) *TokenReservationCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetAmountReserved sets the "amount_reserved" field.
func (_c *TokenReservationCreate) SetAmountReserved(v int64) *TokenReservationCreate {
	_c.mutation.SetAmountReserved(v)
	return _c
}

// SetAmountConsumed sets the "amount_consumed" field.
func (_c *TokenReservationCreate) SetAmountConsumed(v int64) *TokenReservationCreate {
	_c.mutation.SetAmountConsumed(v)
	return _c
}

// SetNillableAmountConsumed sets the "amount_consumed" field if the given value is not nil.
func (_c *TokenReservationCreate) SetNillableAmountConsumed(v *int64) *TokenReservationCreate {
	if v != nil {
		_c.SetAmountConsumed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TokenReservationCreate) SetCreatedAt(v time.Time) *TokenReservationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TokenReservationCreate) SetNillableCreatedAt(v *time.Time) *TokenReservationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetReleasedAt sets the "released_at" field.
func (_c *TokenReservationCreate) SetReleasedAt(v time.Time) *TokenReservationCreate {
	_c.mutation.SetReleasedAt(v)
	return _c
}

// SetNillableReleasedAt sets the "released_at" field if the given value is not nil.
func (_c *TokenReservationCreate) SetNillableReleasedAt(v *time.Time) *TokenReservationCreate {
	if v != nil {
		_c.SetReleasedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TokenReservationCreate) SetID(v uuid.UUID) *TokenReservationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TokenReservationCreate) SetNillableID(v *uuid.UUID) *TokenReservationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the TokenReservationMutation object of the builder.
func (_c *TokenReservationCreate) Mutation() *TokenReservationMutation {
	return _c.mutation
}

// Save creates the TokenReservation in the database.
func (_c *TokenReservationCreate) Save(ctx context.Context) (*TokenReservation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TokenReservationCreate) SaveX(ctx context.Context) *TokenReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenReservationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenReservationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TokenReservationCreate) defaults() {
	if _, ok := _c.mutation.AmountConsumed(); !ok {
		v := tokenreservation.DefaultAmountConsumed
		_c.mutation.SetAmountConsumed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tokenreservation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := tokenreservation.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TokenReservationCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "TokenReservation.owner_id"`)}
	}
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "TokenReservation.job_id"`)}
	}
	if _, ok := _c.mutation.AmountReserved(); !ok {
		return &ValidationError{Name: "amount_reserved", err: errors.New(`ent: missing required field "TokenReservation.amount_reserved"`)}
	}
	if v, ok := _c.mutation.AmountReserved(); ok {
		if err := tokenreservation.AmountReservedValidator(v); err != nil {
			return &ValidationError{Name: "amount_reserved", err: fmt.Errorf(`ent: validator failed for field "TokenReservation.amount_reserved": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AmountConsumed(); !ok {
		return &ValidationError{Name: "amount_consumed", err: errors.New(`ent: missing required field "TokenReservation.amount_consumed"`)}
	}
	if v, ok := _c.mutation.AmountConsumed(); ok {
		if err := tokenreservation.AmountConsumedValidator(v); err != nil {
			return &ValidationError{Name: "amount_consumed", err: fmt.Errorf(`ent: validator failed for field "TokenReservation.amount_consumed": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TokenReservation.created_at"`)}
	}
	return nil
}

func (_c *TokenReservationCreate) sqlSave(ctx context.Context) (*TokenReservation, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TokenReservationCreate) createSpec() (*TokenReservation, *sqlgraph.CreateSpec) {
	var (
		_node = &TokenReservation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tokenreservation.Table, sqlgraph.NewFieldSpec(tokenreservation.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(tokenreservation.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(tokenreservation.FieldJobID, field.TypeUUID, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.AmountReserved(); ok {
		_spec.SetField(tokenreservation.FieldAmountReserved, field.TypeInt64, value)
		_node.AmountReserved = value
	}
	if value, ok := _c.mutation.AmountConsumed(); ok {
		_spec.SetField(tokenreservation.FieldAmountConsumed, field.TypeInt64, value)
		_node.AmountConsumed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tokenreservation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ReleasedAt(); ok {
		_spec.SetField(tokenreservation.FieldReleasedAt, field.TypeTime, value)
		_node.ReleasedAt = &value
	}
	return _node, _spec
}

// TokenReservationCreateBulk is the builder for creating many TokenReservation entities in bulk.
type TokenReservationCreateBulk struct {
	config
	err      error
	builders []*TokenReservationCreate
}

// Save creates the TokenReservation entities in the database.
func (_c *TokenReservationCreateBulk) Save(ctx context.Context) ([]*TokenReservation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TokenReservation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TokenReservationMutation)
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
func (_c *TokenReservationCreateBulk) SaveX(ctx context.Context) []*TokenReservation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TokenReservationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TokenReservationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
