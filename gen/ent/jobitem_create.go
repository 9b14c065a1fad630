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
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/gen/ent/syncjob"
)

// JobItemCreate is the builder for creating a JobItem entity.
type JobItemCreate struct {
	config
	mutation *JobItemMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobItemCreate) SetJobID(v uuid.UUID) *JobItemCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetExternalProductID sets the "external_product_id" field.
func (_c *JobItemCreate) SetExternalProductID(v string) *JobItemCreate {
	_c.mutation.SetExternalProductID(v)
	return _c
}

// SetExternalImageID sets the "external_image_id" field.
func (_c *JobItemCreate) SetExternalImageID(v string) *JobItemCreate {
	_c.mutation.SetExternalImageID(v)
	return _c
}

// SetOriginalURL sets the "original_url" field.
func (_c *JobItemCreate) SetOriginalURL(v string) *JobItemCreate {
	_c.mutation.SetOriginalURL(v)
	return _c
}

// SetOptimizedURL sets the "optimized_url" field.
func (_c *JobItemCreate) SetOptimizedURL(v string) *JobItemCreate {
	_c.mutation.SetOptimizedURL(v)
	return _c
}

// SetNillableOptimizedURL sets the "optimized_url" field if the given value is not nil.
func (_c *JobItemCreate) SetNillableOptimizedURL(v *string) *JobItemCreate {
	if v != nil {
		_c.SetOptimizedURL(*v)
	}
	return _c
}

// SetOptimizedStoragePath sets the "optimized_storage_path" field.
func (_c *JobItemCreate) SetOptimizedStoragePath(v string) *JobItemCreate {
	_c.mutation.SetOptimizedStoragePath(v)
	return _c
}

// SetNillableOptimizedStoragePath sets the "optimized_storage_path" field if the given value is not nil.
func (_c *JobItemCreate) SetNillableOptimizedStoragePath(v *string) *JobItemCreate {
	if v != nil {
		_c.SetOptimizedStoragePath(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobItemCreate) SetStatus(v string) *JobItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetPushAttempts sets the "push_attempts" field.
func (_c *JobItemCreate) SetPushAttempts(v int) *JobItemCreate {
	_c.mutation.SetPushAttempts(v)
	return _c
}

// SetNillablePushAttempts sets the "push_attempts" field if the given value is not nil.
func (_c *JobItemCreate) SetNillablePushAttempts(v *int) *JobItemCreate {
	if v != nil {
		_c.SetPushAttempts(*v)
	}
	return _c
}

// SetLastPushError sets the "last_push_error" field.
func (_c *JobItemCreate) SetLastPushError(v string) *JobItemCreate {
	_c.mutation.SetLastPushError(v)
	return _c
}

// SetNillableLastPushError sets the "last_push_error" field if the given value is not nil.
func (_c *JobItemCreate) SetNillableLastPushError(v *string) *JobItemCreate {
	if v != nil {
		_c.SetLastPushError(*v)
	}
	return _c
}

// SetPushRetryable sets the "push_retryable" field.
func (_c *JobItemCreate) SetPushRetryable(v bool) *JobItemCreate {
	_c.mutation.SetPushRetryable(v)
	return _c
}

// SetNillablePushRetryable sets the "push_retryable" field if the given value is not nil.
func (_c *JobItemCreate) SetNillablePushRetryable(v *bool) *JobItemCreate {
	if v != nil {
		_c.SetPushRetryable(*v)
	}
	return _c
}

// SetPushedAt sets the "pushed_at" field.
func (_c *JobItemCreate) SetPushedAt(v time.Time) *JobItemCreate {
	_c.mutation.SetPushedAt(v)
	return _c
}

// SetNillablePushedAt sets the "pushed_at" field if the given value is not nil.
func (_c *JobItemCreate) SetNillablePushedAt(v *time.Time) *JobItemCreate {
	if v != nil {
		_c.SetPushedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobItemCreate) SetCreatedAt(v time.Time) *JobItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobItemCreate) SetNillableCreatedAt(v *time.Time) *JobItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobItemCreate) SetUpdatedAt(v time.Time) *JobItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobItemCreate) SetNillableUpdatedAt(v *time.Time) *JobItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobItemCreate) SetID(v uuid.UUID) *JobItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobItemCreate) SetNillableID(v *uuid.UUID) *JobItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the SyncJob entity.
func (_c *JobItemCreate) SetJob(v *SyncJob) *JobItemCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobItemMutation object of the builder.
func (_c *JobItemCreate) Mutation() *JobItemMutation {
	return _c.mutation
}

// Save creates the JobItem in the database.
func (_c *JobItemCreate) Save(ctx context.Context) (*JobItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobItemCreate) SaveX(ctx context.Context) *JobItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobItemCreate) defaults() {
	if _, ok := _c.mutation.PushAttempts(); !ok {
		v := jobitem.DefaultPushAttempts
		_c.mutation.SetPushAttempts(v)
	}
	if _, ok := _c.mutation.PushRetryable(); !ok {
		v := jobitem.DefaultPushRetryable
		_c.mutation.SetPushRetryable(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := jobitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := jobitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobItemCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobItem.job_id"`)}
	}
	if _, ok := _c.mutation.ExternalProductID(); !ok {
		return &ValidationError{Name: "external_product_id", err: errors.New(`ent: missing required field "JobItem.external_product_id"`)}
	}
	if v, ok := _c.mutation.ExternalProductID(); ok {
		if err := jobitem.ExternalProductIDValidator(v); err != nil {
			return &ValidationError{Name: "external_product_id", err: fmt.Errorf(`ent: validator failed for field "JobItem.external_product_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExternalImageID(); !ok {
		return &ValidationError{Name: "external_image_id", err: errors.New(`ent: missing required field "JobItem.external_image_id"`)}
	}
	if v, ok := _c.mutation.ExternalImageID(); ok {
		if err := jobitem.ExternalImageIDValidator(v); err != nil {
			return &ValidationError{Name: "external_image_id", err: fmt.Errorf(`ent: validator failed for field "JobItem.external_image_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OriginalURL(); !ok {
		return &ValidationError{Name: "original_url", err: errors.New(`ent: missing required field "JobItem.original_url"`)}
	}
	if v, ok := _c.mutation.OriginalURL(); ok {
		if err := jobitem.OriginalURLValidator(v); err != nil {
			return &ValidationError{Name: "original_url", err: fmt.Errorf(`ent: validator failed for field "JobItem.original_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobItem.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobItem.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PushAttempts(); !ok {
		return &ValidationError{Name: "push_attempts", err: errors.New(`ent: missing required field "JobItem.push_attempts"`)}
	}
	if v, ok := _c.mutation.PushAttempts(); ok {
		if err := jobitem.PushAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "push_attempts", err: fmt.Errorf(`ent: validator failed for field "JobItem.push_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PushRetryable(); !ok {
		return &ValidationError{Name: "push_retryable", err: errors.New(`ent: missing required field "JobItem.push_retryable"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "JobItem.updated_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobItem.job"`)}
	}
	return nil
}

func (_c *JobItemCreate) sqlSave(ctx context.Context) (*JobItem, error) {
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

func (_c *JobItemCreate) createSpec() (*JobItem, *sqlgraph.CreateSpec) {
	var (
		_node = &JobItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobitem.Table, sqlgraph.NewFieldSpec(jobitem.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ExternalProductID(); ok {
		_spec.SetField(jobitem.FieldExternalProductID, field.TypeString, value)
		_node.ExternalProductID = value
	}
	if value, ok := _c.mutation.ExternalImageID(); ok {
		_spec.SetField(jobitem.FieldExternalImageID, field.TypeString, value)
		_node.ExternalImageID = value
	}
	if value, ok := _c.mutation.OriginalURL(); ok {
		_spec.SetField(jobitem.FieldOriginalURL, field.TypeString, value)
		_node.OriginalURL = value
	}
	if value, ok := _c.mutation.OptimizedURL(); ok {
		_spec.SetField(jobitem.FieldOptimizedURL, field.TypeString, value)
		_node.OptimizedURL = &value
	}
	if value, ok := _c.mutation.OptimizedStoragePath(); ok {
		_spec.SetField(jobitem.FieldOptimizedStoragePath, field.TypeString, value)
		_node.OptimizedStoragePath = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PushAttempts(); ok {
		_spec.SetField(jobitem.FieldPushAttempts, field.TypeInt, value)
		_node.PushAttempts = value
	}
	if value, ok := _c.mutation.LastPushError(); ok {
		_spec.SetField(jobitem.FieldLastPushError, field.TypeString, value)
		_node.LastPushError = &value
	}
	if value, ok := _c.mutation.PushRetryable(); ok {
		_spec.SetField(jobitem.FieldPushRetryable, field.TypeBool, value)
		_node.PushRetryable = value
	}
	if value, ok := _c.mutation.PushedAt(); ok {
		_spec.SetField(jobitem.FieldPushedAt, field.TypeTime, value)
		_node.PushedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(jobitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(jobitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobitem.JobTable,
			Columns: []string{jobitem.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(syncjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobItemCreateBulk is the builder for creating many JobItem entities in bulk.
type JobItemCreateBulk struct {
	config
	err      error
	builders []*JobItemCreate
}

// Save creates the JobItem entities in the database.
func (_c *JobItemCreateBulk) Save(ctx context.Context) ([]*JobItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobItemMutation)
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
func (_c *JobItemCreateBulk) SaveX(ctx context.Context) []*JobItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
