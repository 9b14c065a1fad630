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

// SyncJobCreate is the builder for creating a SyncJob entity.
type SyncJobCreate struct {
	config
	mutation *SyncJobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *SyncJobCreate) SetOwnerID(v uuid.UUID) *SyncJobCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStoreID sets the "store_id" field.
func (_c *SyncJobCreate) SetStoreID(v uuid.UUID) *SyncJobCreate {
	_c.mutation.SetStoreID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *SyncJobCreate) SetName(v string) *SyncJobCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetStoreDomain sets the "store_domain" field.
func (_c *SyncJobCreate) SetStoreDomain(v string) *SyncJobCreate {
	_c.mutation.SetStoreDomain(v)
	return _c
}

// SetNillableStoreDomain sets the "store_domain" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableStoreDomain(v *string) *SyncJobCreate {
	if v != nil {
		_c.SetStoreDomain(*v)
	}
	return _c
}

// SetFolder sets the "folder" field.
func (_c *SyncJobCreate) SetFolder(v string) *SyncJobCreate {
	_c.mutation.SetFolder(v)
	return _c
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableFolder(v *string) *SyncJobCreate {
	if v != nil {
		_c.SetFolder(*v)
	}
	return _c
}

// SetTriggerType sets the "trigger_type" field.
func (_c *SyncJobCreate) SetTriggerType(v string) *SyncJobCreate {
	_c.mutation.SetTriggerType(v)
	return _c
}

// SetPresetType sets the "preset_type" field.
func (_c *SyncJobCreate) SetPresetType(v string) *SyncJobCreate {
	_c.mutation.SetPresetType(v)
	return _c
}

// SetPresetID sets the "preset_id" field.
func (_c *SyncJobCreate) SetPresetID(v uuid.UUID) *SyncJobCreate {
	_c.mutation.SetPresetID(v)
	return _c
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillablePresetID(v *uuid.UUID) *SyncJobCreate {
	if v != nil {
		_c.SetPresetID(*v)
	}
	return _c
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_c *SyncJobCreate) SetCustomPrompt(v string) *SyncJobCreate {
	_c.mutation.SetCustomPrompt(v)
	return _c
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableCustomPrompt(v *string) *SyncJobCreate {
	if v != nil {
		_c.SetCustomPrompt(*v)
	}
	return _c
}

// SetProductCount sets the "product_count" field.
func (_c *SyncJobCreate) SetProductCount(v int) *SyncJobCreate {
	_c.mutation.SetProductCount(v)
	return _c
}

// SetImageCount sets the "image_count" field.
func (_c *SyncJobCreate) SetImageCount(v int) *SyncJobCreate {
	_c.mutation.SetImageCount(v)
	return _c
}

// SetProcessedCount sets the "processed_count" field.
func (_c *SyncJobCreate) SetProcessedCount(v int) *SyncJobCreate {
	_c.mutation.SetProcessedCount(v)
	return _c
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableProcessedCount(v *int) *SyncJobCreate {
	if v != nil {
		_c.SetProcessedCount(*v)
	}
	return _c
}

// SetPushedCount sets the "pushed_count" field.
func (_c *SyncJobCreate) SetPushedCount(v int) *SyncJobCreate {
	_c.mutation.SetPushedCount(v)
	return _c
}

// SetNillablePushedCount sets the "pushed_count" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillablePushedCount(v *int) *SyncJobCreate {
	if v != nil {
		_c.SetPushedCount(*v)
	}
	return _c
}

// SetFailedCount sets the "failed_count" field.
func (_c *SyncJobCreate) SetFailedCount(v int) *SyncJobCreate {
	_c.mutation.SetFailedCount(v)
	return _c
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableFailedCount(v *int) *SyncJobCreate {
	if v != nil {
		_c.SetFailedCount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SyncJobCreate) SetStatus(v string) *SyncJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *SyncJobCreate) SetRetryCount(v int) *SyncJobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableRetryCount(v *int) *SyncJobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *SyncJobCreate) SetMaxRetries(v int) *SyncJobCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableMaxRetries(v *int) *SyncJobCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *SyncJobCreate) SetLastError(v string) *SyncJobCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableLastError(v *string) *SyncJobCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *SyncJobCreate) SetTokensUsed(v int64) *SyncJobCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableTokensUsed(v *int64) *SyncJobCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_c *SyncJobCreate) SetNextRetryAt(v time.Time) *SyncJobCreate {
	_c.mutation.SetNextRetryAt(v)
	return _c
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableNextRetryAt(v *time.Time) *SyncJobCreate {
	if v != nil {
		_c.SetNextRetryAt(*v)
	}
	return _c
}

// SetApprovedAt sets the "approved_at" field.
func (_c *SyncJobCreate) SetApprovedAt(v time.Time) *SyncJobCreate {
	_c.mutation.SetApprovedAt(v)
	return _c
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableApprovedAt(v *time.Time) *SyncJobCreate {
	if v != nil {
		_c.SetApprovedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *SyncJobCreate) SetCompletedAt(v time.Time) *SyncJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableCompletedAt(v *time.Time) *SyncJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *SyncJobCreate) SetExpiresAt(v time.Time) *SyncJobCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SyncJobCreate) SetCreatedAt(v time.Time) *SyncJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableCreatedAt(v *time.Time) *SyncJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SyncJobCreate) SetUpdatedAt(v time.Time) *SyncJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableUpdatedAt(v *time.Time) *SyncJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SyncJobCreate) SetID(v uuid.UUID) *SyncJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SyncJobCreate) SetNillableID(v *uuid.UUID) *SyncJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddItemIDs adds the "items" edge to the JobItem entity by IDs.
func (_c *SyncJobCreate) AddItemIDs(ids ...uuid.UUID) *SyncJobCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the JobItem entity.
func (_c *SyncJobCreate) AddItems(v ...*JobItem) *SyncJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// Mutation returns the SyncJobMutation object of the builder.
func (_c *SyncJobCreate) Mutation() *SyncJobMutation {
	return _c.mutation
}

// Save creates the SyncJob in the database.
func (_c *SyncJobCreate) Save(ctx context.Context) (*SyncJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncJobCreate) SaveX(ctx context.Context) *SyncJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncJobCreate) defaults() {
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		v := syncjob.DefaultProcessedCount
		_c.mutation.SetProcessedCount(v)
	}
	if _, ok := _c.mutation.PushedCount(); !ok {
		v := syncjob.DefaultPushedCount
		_c.mutation.SetPushedCount(v)
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		v := syncjob.DefaultFailedCount
		_c.mutation.SetFailedCount(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := syncjob.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := syncjob.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := syncjob.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := syncjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := syncjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := syncjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncJobCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "SyncJob.owner_id"`)}
	}
	if _, ok := _c.mutation.StoreID(); !ok {
		return &ValidationError{Name: "store_id", err: errors.New(`ent: missing required field "SyncJob.store_id"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "SyncJob.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := syncjob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SyncJob.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TriggerType(); !ok {
		return &ValidationError{Name: "trigger_type", err: errors.New(`ent: missing required field "SyncJob.trigger_type"`)}
	}
	if v, ok := _c.mutation.TriggerType(); ok {
		if err := syncjob.TriggerTypeValidator(v); err != nil {
			return &ValidationError{Name: "trigger_type", err: fmt.Errorf(`ent: validator failed for field "SyncJob.trigger_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PresetType(); !ok {
		return &ValidationError{Name: "preset_type", err: errors.New(`ent: missing required field "SyncJob.preset_type"`)}
	}
	if v, ok := _c.mutation.PresetType(); ok {
		if err := syncjob.PresetTypeValidator(v); err != nil {
			return &ValidationError{Name: "preset_type", err: fmt.Errorf(`ent: validator failed for field "SyncJob.preset_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProductCount(); !ok {
		return &ValidationError{Name: "product_count", err: errors.New(`ent: missing required field "SyncJob.product_count"`)}
	}
	if v, ok := _c.mutation.ProductCount(); ok {
		if err := syncjob.ProductCountValidator(v); err != nil {
			return &ValidationError{Name: "product_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.product_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ImageCount(); !ok {
		return &ValidationError{Name: "image_count", err: errors.New(`ent: missing required field "SyncJob.image_count"`)}
	}
	if v, ok := _c.mutation.ImageCount(); ok {
		if err := syncjob.ImageCountValidator(v); err != nil {
			return &ValidationError{Name: "image_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.image_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		return &ValidationError{Name: "processed_count", err: errors.New(`ent: missing required field "SyncJob.processed_count"`)}
	}
	if v, ok := _c.mutation.ProcessedCount(); ok {
		if err := syncjob.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.processed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PushedCount(); !ok {
		return &ValidationError{Name: "pushed_count", err: errors.New(`ent: missing required field "SyncJob.pushed_count"`)}
	}
	if v, ok := _c.mutation.PushedCount(); ok {
		if err := syncjob.PushedCountValidator(v); err != nil {
			return &ValidationError{Name: "pushed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.pushed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedCount(); !ok {
		return &ValidationError{Name: "failed_count", err: errors.New(`ent: missing required field "SyncJob.failed_count"`)}
	}
	if v, ok := _c.mutation.FailedCount(); ok {
		if err := syncjob.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.failed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := syncjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "SyncJob.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := syncjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "SyncJob.max_retries"`)}
	}
	if v, ok := _c.mutation.MaxRetries(); ok {
		if err := syncjob.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "SyncJob.max_retries": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "SyncJob.tokens_used"`)}
	}
	if v, ok := _c.mutation.TokensUsed(); ok {
		if err := syncjob.TokensUsedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_used", err: fmt.Errorf(`ent: validator failed for field "SyncJob.tokens_used": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "SyncJob.expires_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SyncJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SyncJob.updated_at"`)}
	}
	return nil
}

func (_c *SyncJobCreate) sqlSave(ctx context.Context) (*SyncJob, error) {
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

func (_c *SyncJobCreate) createSpec() (*SyncJob, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncjob.Table, sqlgraph.NewFieldSpec(syncjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(syncjob.FieldOwnerID, field.TypeUUID, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.StoreID(); ok {
		_spec.SetField(syncjob.FieldStoreID, field.TypeUUID, value)
		_node.StoreID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(syncjob.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.StoreDomain(); ok {
		_spec.SetField(syncjob.FieldStoreDomain, field.TypeString, value)
		_node.StoreDomain = value
	}
	if value, ok := _c.mutation.Folder(); ok {
		_spec.SetField(syncjob.FieldFolder, field.TypeString, value)
		_node.Folder = value
	}
	if value, ok := _c.mutation.TriggerType(); ok {
		_spec.SetField(syncjob.FieldTriggerType, field.TypeString, value)
		_node.TriggerType = value
	}
	if value, ok := _c.mutation.PresetType(); ok {
		_spec.SetField(syncjob.FieldPresetType, field.TypeString, value)
		_node.PresetType = value
	}
	if value, ok := _c.mutation.PresetID(); ok {
		_spec.SetField(syncjob.FieldPresetID, field.TypeUUID, value)
		_node.PresetID = &value
	}
	if value, ok := _c.mutation.CustomPrompt(); ok {
		_spec.SetField(syncjob.FieldCustomPrompt, field.TypeString, value)
		_node.CustomPrompt = &value
	}
	if value, ok := _c.mutation.ProductCount(); ok {
		_spec.SetField(syncjob.FieldProductCount, field.TypeInt, value)
		_node.ProductCount = value
	}
	if value, ok := _c.mutation.ImageCount(); ok {
		_spec.SetField(syncjob.FieldImageCount, field.TypeInt, value)
		_node.ImageCount = value
	}
	if value, ok := _c.mutation.ProcessedCount(); ok {
		_spec.SetField(syncjob.FieldProcessedCount, field.TypeInt, value)
		_node.ProcessedCount = value
	}
	if value, ok := _c.mutation.PushedCount(); ok {
		_spec.SetField(syncjob.FieldPushedCount, field.TypeInt, value)
		_node.PushedCount = value
	}
	if value, ok := _c.mutation.FailedCount(); ok {
		_spec.SetField(syncjob.FieldFailedCount, field.TypeInt, value)
		_node.FailedCount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(syncjob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(syncjob.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(syncjob.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(syncjob.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(syncjob.FieldTokensUsed, field.TypeInt64, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.NextRetryAt(); ok {
		_spec.SetField(syncjob.FieldNextRetryAt, field.TypeTime, value)
		_node.NextRetryAt = &value
	}
	if value, ok := _c.mutation.ApprovedAt(); ok {
		_spec.SetField(syncjob.FieldApprovedAt, field.TypeTime, value)
		_node.ApprovedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(syncjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(syncjob.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(syncjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(syncjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   syncjob.ItemsTable,
			Columns: []string{syncjob.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SyncJobCreateBulk is the builder for creating many SyncJob entities in bulk.
type SyncJobCreateBulk struct {
	config
	err      error
	builders []*SyncJobCreate
}

// Save creates the SyncJob entities in the database.
func (_c *SyncJobCreateBulk) Save(ctx context.Context) ([]*SyncJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncJobMutation)
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
func (_c *SyncJobCreateBulk) SaveX(ctx context.Context) []*SyncJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
