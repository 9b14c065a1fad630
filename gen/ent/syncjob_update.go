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
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/gen/ent/predicate"
	"github.com/optipix/imagesync/gen/ent/syncjob"
)

// SyncJobUpdate is the builder for updating SyncJob entities.
type SyncJobUpdate struct {
	config
	hooks    []Hook
	mutation *SyncJobMutation
}

// Where appends a list predicates to the SyncJobUpdate builder.
func (_u *SyncJobUpdate) Where(ps ...predicate.SyncJob) *SyncJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *SyncJobUpdate) SetName(v string) *SyncJobUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableName(v *string) *SyncJobUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStoreDomain sets the "store_domain" field.
func (_u *SyncJobUpdate) SetStoreDomain(v string) *SyncJobUpdate {
	_u.mutation.SetStoreDomain(v)
	return _u
}

// SetNillableStoreDomain sets the "store_domain" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableStoreDomain(v *string) *SyncJobUpdate {
	if v != nil {
		_u.SetStoreDomain(*v)
	}
	return _u
}

// ClearStoreDomain clears the value of the "store_domain" field.
func (_u *SyncJobUpdate) ClearStoreDomain() *SyncJobUpdate {
	_u.mutation.ClearStoreDomain()
	return _u
}

// SetFolder sets the "folder" field.
func (_u *SyncJobUpdate) SetFolder(v string) *SyncJobUpdate {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableFolder(v *string) *SyncJobUpdate {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *SyncJobUpdate) ClearFolder() *SyncJobUpdate {
	_u.mutation.ClearFolder()
	return _u
}

// SetPresetType sets the "preset_type" field.
func (_u *SyncJobUpdate) SetPresetType(v string) *SyncJobUpdate {
	_u.mutation.SetPresetType(v)
	return _u
}

// SetNillablePresetType sets the "preset_type" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillablePresetType(v *string) *SyncJobUpdate {
	if v != nil {
		_u.SetPresetType(*v)
	}
	return _u
}

// SetPresetID sets the "preset_id" field.
func (_u *SyncJobUpdate) SetPresetID(v uuid.UUID) *SyncJobUpdate {
	_u.mutation.SetPresetID(v)
	return _u
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillablePresetID(v *uuid.UUID) *SyncJobUpdate {
	if v != nil {
		_u.SetPresetID(*v)
	}
	return _u
}

// ClearPresetID clears the value of the "preset_id" field.
func (_u *SyncJobUpdate) ClearPresetID() *SyncJobUpdate {
	_u.mutation.ClearPresetID()
	return _u
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_u *SyncJobUpdate) SetCustomPrompt(v string) *SyncJobUpdate {
	_u.mutation.SetCustomPrompt(v)
	return _u
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableCustomPrompt(v *string) *SyncJobUpdate {
	if v != nil {
		_u.SetCustomPrompt(*v)
	}
	return _u
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (_u *SyncJobUpdate) ClearCustomPrompt() *SyncJobUpdate {
	_u.mutation.ClearCustomPrompt()
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *SyncJobUpdate) SetProcessedCount(v int) *SyncJobUpdate {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableProcessedCount(v *int) *SyncJobUpdate {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *SyncJobUpdate) AddProcessedCount(v int) *SyncJobUpdate {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetPushedCount sets the "pushed_count" field.
func (_u *SyncJobUpdate) SetPushedCount(v int) *SyncJobUpdate {
	_u.mutation.ResetPushedCount()
	_u.mutation.SetPushedCount(v)
	return _u
}

// SetNillablePushedCount sets the "pushed_count" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillablePushedCount(v *int) *SyncJobUpdate {
	if v != nil {
		_u.SetPushedCount(*v)
	}
	return _u
}

// AddPushedCount adds value to the "pushed_count" field.
func (_u *SyncJobUpdate) AddPushedCount(v int) *SyncJobUpdate {
	_u.mutation.AddPushedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *SyncJobUpdate) SetFailedCount(v int) *SyncJobUpdate {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableFailedCount(v *int) *SyncJobUpdate {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *SyncJobUpdate) AddFailedCount(v int) *SyncJobUpdate {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncJobUpdate) SetStatus(v string) *SyncJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableStatus(v *string) *SyncJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SyncJobUpdate) SetRetryCount(v int) *SyncJobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableRetryCount(v *int) *SyncJobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SyncJobUpdate) AddRetryCount(v int) *SyncJobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *SyncJobUpdate) SetMaxRetries(v int) *SyncJobUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableMaxRetries(v *int) *SyncJobUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *SyncJobUpdate) AddMaxRetries(v int) *SyncJobUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SyncJobUpdate) SetLastError(v string) *SyncJobUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableLastError(v *string) *SyncJobUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SyncJobUpdate) ClearLastError() *SyncJobUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *SyncJobUpdate) SetTokensUsed(v int64) *SyncJobUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableTokensUsed(v *int64) *SyncJobUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *SyncJobUpdate) AddTokensUsed(v int64) *SyncJobUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *SyncJobUpdate) SetNextRetryAt(v time.Time) *SyncJobUpdate {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableNextRetryAt(v *time.Time) *SyncJobUpdate {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *SyncJobUpdate) ClearNextRetryAt() *SyncJobUpdate {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SyncJobUpdate) SetApprovedAt(v time.Time) *SyncJobUpdate {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableApprovedAt(v *time.Time) *SyncJobUpdate {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SyncJobUpdate) ClearApprovedAt() *SyncJobUpdate {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncJobUpdate) SetCompletedAt(v time.Time) *SyncJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableCompletedAt(v *time.Time) *SyncJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncJobUpdate) ClearCompletedAt() *SyncJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SyncJobUpdate) SetExpiresAt(v time.Time) *SyncJobUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SyncJobUpdate) SetNillableExpiresAt(v *time.Time) *SyncJobUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncJobUpdate) SetUpdatedAt(v time.Time) *SyncJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the JobItem entity by IDs.
func (_u *SyncJobUpdate) AddItemIDs(ids ...uuid.UUID) *SyncJobUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the JobItem entity.
func (_u *SyncJobUpdate) AddItems(v ...*JobItem) *SyncJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the SyncJobMutation object of the builder.
func (_u *SyncJobUpdate) Mutation() *SyncJobMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the JobItem entity.
func (_u *SyncJobUpdate) ClearItems() *SyncJobUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to JobItem entities by IDs.
func (_u *SyncJobUpdate) RemoveItemIDs(ids ...uuid.UUID) *SyncJobUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to JobItem entities.
func (_u *SyncJobUpdate) RemoveItems(v ...*JobItem) *SyncJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncJobUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := syncjob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SyncJob.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PresetType(); ok {
		if err := syncjob.PresetTypeValidator(v); err != nil {
			return &ValidationError{Name: "preset_type", err: fmt.Errorf(`ent: validator failed for field "SyncJob.preset_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := syncjob.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PushedCount(); ok {
		if err := syncjob.PushedCountValidator(v); err != nil {
			return &ValidationError{Name: "pushed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.pushed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := syncjob.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := syncjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := syncjob.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "SyncJob.max_retries": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensUsed(); ok {
		if err := syncjob.TokensUsedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_used", err: fmt.Errorf(`ent: validator failed for field "SyncJob.tokens_used": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncjob.Table, syncjob.Columns, sqlgraph.NewFieldSpec(syncjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(syncjob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoreDomain(); ok {
		_spec.SetField(syncjob.FieldStoreDomain, field.TypeString, value)
	}
	if _u.mutation.StoreDomainCleared() {
		_spec.ClearField(syncjob.FieldStoreDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(syncjob.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(syncjob.FieldFolder, field.TypeString)
	}
	if value, ok := _u.mutation.PresetType(); ok {
		_spec.SetField(syncjob.FieldPresetType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PresetID(); ok {
		_spec.SetField(syncjob.FieldPresetID, field.TypeUUID, value)
	}
	if _u.mutation.PresetIDCleared() {
		_spec.ClearField(syncjob.FieldPresetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CustomPrompt(); ok {
		_spec.SetField(syncjob.FieldCustomPrompt, field.TypeString, value)
	}
	if _u.mutation.CustomPromptCleared() {
		_spec.ClearField(syncjob.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(syncjob.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(syncjob.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushedCount(); ok {
		_spec.SetField(syncjob.FieldPushedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPushedCount(); ok {
		_spec.AddField(syncjob.FieldPushedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(syncjob.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(syncjob.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(syncjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(syncjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(syncjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(syncjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(syncjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(syncjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(syncjob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(syncjob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(syncjob.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(syncjob.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(syncjob.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(syncjob.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(syncjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(syncjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(syncjob.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncJobUpdateOne is the builder for updating a single SyncJob entity.
type SyncJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncJobMutation
}

// SetName sets the "name" field.
func (_u *SyncJobUpdateOne) SetName(v string) *SyncJobUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableName(v *string) *SyncJobUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStoreDomain sets the "store_domain" field.
func (_u *SyncJobUpdateOne) SetStoreDomain(v string) *SyncJobUpdateOne {
	_u.mutation.SetStoreDomain(v)
	return _u
}

// SetNillableStoreDomain sets the "store_domain" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableStoreDomain(v *string) *SyncJobUpdateOne {
	if v != nil {
		_u.SetStoreDomain(*v)
	}
	return _u
}

// ClearStoreDomain clears the value of the "store_domain" field.
func (_u *SyncJobUpdateOne) ClearStoreDomain() *SyncJobUpdateOne {
	_u.mutation.ClearStoreDomain()
	return _u
}

// SetFolder sets the "folder" field.
func (_u *SyncJobUpdateOne) SetFolder(v string) *SyncJobUpdateOne {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableFolder(v *string) *SyncJobUpdateOne {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// ClearFolder clears the value of the "folder" field.
func (_u *SyncJobUpdateOne) ClearFolder() *SyncJobUpdateOne {
	_u.mutation.ClearFolder()
	return _u
}

// SetPresetType sets the "preset_type" field.
func (_u *SyncJobUpdateOne) SetPresetType(v string) *SyncJobUpdateOne {
	_u.mutation.SetPresetType(v)
	return _u
}

// SetNillablePresetType sets the "preset_type" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillablePresetType(v *string) *SyncJobUpdateOne {
	if v != nil {
		_u.SetPresetType(*v)
	}
	return _u
}

// SetPresetID sets the "preset_id" field.
func (_u *SyncJobUpdateOne) SetPresetID(v uuid.UUID) *SyncJobUpdateOne {
	_u.mutation.SetPresetID(v)
	return _u
}

// SetNillablePresetID sets the "preset_id" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillablePresetID(v *uuid.UUID) *SyncJobUpdateOne {
	if v != nil {
		_u.SetPresetID(*v)
	}
	return _u
}

// ClearPresetID clears the value of the "preset_id" field.
func (_u *SyncJobUpdateOne) ClearPresetID() *SyncJobUpdateOne {
	_u.mutation.ClearPresetID()
	return _u
}

// SetCustomPrompt sets the "custom_prompt" field.
func (_u *SyncJobUpdateOne) SetCustomPrompt(v string) *SyncJobUpdateOne {
	_u.mutation.SetCustomPrompt(v)
	return _u
}

// SetNillableCustomPrompt sets the "custom_prompt" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableCustomPrompt(v *string) *SyncJobUpdateOne {
	if v != nil {
		_u.SetCustomPrompt(*v)
	}
	return _u
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (_u *SyncJobUpdateOne) ClearCustomPrompt() *SyncJobUpdateOne {
	_u.mutation.ClearCustomPrompt()
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *SyncJobUpdateOne) SetProcessedCount(v int) *SyncJobUpdateOne {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableProcessedCount(v *int) *SyncJobUpdateOne {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *SyncJobUpdateOne) AddProcessedCount(v int) *SyncJobUpdateOne {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// SetPushedCount sets the "pushed_count" field.
func (_u *SyncJobUpdateOne) SetPushedCount(v int) *SyncJobUpdateOne {
	_u.mutation.ResetPushedCount()
	_u.mutation.SetPushedCount(v)
	return _u
}

// SetNillablePushedCount sets the "pushed_count" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillablePushedCount(v *int) *SyncJobUpdateOne {
	if v != nil {
		_u.SetPushedCount(*v)
	}
	return _u
}

// AddPushedCount adds value to the "pushed_count" field.
func (_u *SyncJobUpdateOne) AddPushedCount(v int) *SyncJobUpdateOne {
	_u.mutation.AddPushedCount(v)
	return _u
}

// SetFailedCount sets the "failed_count" field.
func (_u *SyncJobUpdateOne) SetFailedCount(v int) *SyncJobUpdateOne {
	_u.mutation.ResetFailedCount()
	_u.mutation.SetFailedCount(v)
	return _u
}

// SetNillableFailedCount sets the "failed_count" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableFailedCount(v *int) *SyncJobUpdateOne {
	if v != nil {
		_u.SetFailedCount(*v)
	}
	return _u
}

// AddFailedCount adds value to the "failed_count" field.
func (_u *SyncJobUpdateOne) AddFailedCount(v int) *SyncJobUpdateOne {
	_u.mutation.AddFailedCount(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncJobUpdateOne) SetStatus(v string) *SyncJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableStatus(v *string) *SyncJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *SyncJobUpdateOne) SetRetryCount(v int) *SyncJobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableRetryCount(v *int) *SyncJobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *SyncJobUpdateOne) AddRetryCount(v int) *SyncJobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *SyncJobUpdateOne) SetMaxRetries(v int) *SyncJobUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableMaxRetries(v *int) *SyncJobUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *SyncJobUpdateOne) AddMaxRetries(v int) *SyncJobUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *SyncJobUpdateOne) SetLastError(v string) *SyncJobUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableLastError(v *string) *SyncJobUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *SyncJobUpdateOne) ClearLastError() *SyncJobUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *SyncJobUpdateOne) SetTokensUsed(v int64) *SyncJobUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableTokensUsed(v *int64) *SyncJobUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *SyncJobUpdateOne) AddTokensUsed(v int64) *SyncJobUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetNextRetryAt sets the "next_retry_at" field.
func (_u *SyncJobUpdateOne) SetNextRetryAt(v time.Time) *SyncJobUpdateOne {
	_u.mutation.SetNextRetryAt(v)
	return _u
}

// SetNillableNextRetryAt sets the "next_retry_at" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableNextRetryAt(v *time.Time) *SyncJobUpdateOne {
	if v != nil {
		_u.SetNextRetryAt(*v)
	}
	return _u
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (_u *SyncJobUpdateOne) ClearNextRetryAt() *SyncJobUpdateOne {
	_u.mutation.ClearNextRetryAt()
	return _u
}

// SetApprovedAt sets the "approved_at" field.
func (_u *SyncJobUpdateOne) SetApprovedAt(v time.Time) *SyncJobUpdateOne {
	_u.mutation.SetApprovedAt(v)
	return _u
}

// SetNillableApprovedAt sets the "approved_at" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableApprovedAt(v *time.Time) *SyncJobUpdateOne {
	if v != nil {
		_u.SetApprovedAt(*v)
	}
	return _u
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (_u *SyncJobUpdateOne) ClearApprovedAt() *SyncJobUpdateOne {
	_u.mutation.ClearApprovedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *SyncJobUpdateOne) SetCompletedAt(v time.Time) *SyncJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableCompletedAt(v *time.Time) *SyncJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *SyncJobUpdateOne) ClearCompletedAt() *SyncJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *SyncJobUpdateOne) SetExpiresAt(v time.Time) *SyncJobUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *SyncJobUpdateOne) SetNillableExpiresAt(v *time.Time) *SyncJobUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SyncJobUpdateOne) SetUpdatedAt(v time.Time) *SyncJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddItemIDs adds the "items" edge to the JobItem entity by IDs.
func (_u *SyncJobUpdateOne) AddItemIDs(ids ...uuid.UUID) *SyncJobUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the JobItem entity.
func (_u *SyncJobUpdateOne) AddItems(v ...*JobItem) *SyncJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// Mutation returns the SyncJobMutation object of the builder.
func (_u *SyncJobUpdateOne) Mutation() *SyncJobMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the JobItem entity.
func (_u *SyncJobUpdateOne) ClearItems() *SyncJobUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to JobItem entities by IDs.
func (_u *SyncJobUpdateOne) RemoveItemIDs(ids ...uuid.UUID) *SyncJobUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to JobItem entities.
func (_u *SyncJobUpdateOne) RemoveItems(v ...*JobItem) *SyncJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// Where appends a list predicates to the SyncJobUpdate builder.
func (_u *SyncJobUpdateOne) Where(ps ...predicate.SyncJob) *SyncJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncJobUpdateOne) Select(field string, fields ...string) *SyncJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncJob entity.
func (_u *SyncJobUpdateOne) Save(ctx context.Context) (*SyncJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncJobUpdateOne) SaveX(ctx context.Context) *SyncJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SyncJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := syncjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncJobUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := syncjob.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "SyncJob.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PresetType(); ok {
		if err := syncjob.PresetTypeValidator(v); err != nil {
			return &ValidationError{Name: "preset_type", err: fmt.Errorf(`ent: validator failed for field "SyncJob.preset_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := syncjob.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.processed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PushedCount(); ok {
		if err := syncjob.PushedCountValidator(v); err != nil {
			return &ValidationError{Name: "pushed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.pushed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedCount(); ok {
		if err := syncjob.FailedCountValidator(v); err != nil {
			return &ValidationError{Name: "failed_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.failed_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncJob.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := syncjob.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "SyncJob.retry_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxRetries(); ok {
		if err := syncjob.MaxRetriesValidator(v); err != nil {
			return &ValidationError{Name: "max_retries", err: fmt.Errorf(`ent: validator failed for field "SyncJob.max_retries": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TokensUsed(); ok {
		if err := syncjob.TokensUsedValidator(v); err != nil {
			return &ValidationError{Name: "tokens_used", err: fmt.Errorf(`ent: validator failed for field "SyncJob.tokens_used": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncJobUpdateOne) sqlSave(ctx context.Context) (_node *SyncJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncjob.Table, syncjob.Columns, sqlgraph.NewFieldSpec(syncjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncjob.FieldID)
		for _, f := range fields {
			if !syncjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncjob.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(syncjob.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StoreDomain(); ok {
		_spec.SetField(syncjob.FieldStoreDomain, field.TypeString, value)
	}
	if _u.mutation.StoreDomainCleared() {
		_spec.ClearField(syncjob.FieldStoreDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(syncjob.FieldFolder, field.TypeString, value)
	}
	if _u.mutation.FolderCleared() {
		_spec.ClearField(syncjob.FieldFolder, field.TypeString)
	}
	if value, ok := _u.mutation.PresetType(); ok {
		_spec.SetField(syncjob.FieldPresetType, field.TypeString, value)
	}
	if value, ok := _u.mutation.PresetID(); ok {
		_spec.SetField(syncjob.FieldPresetID, field.TypeUUID, value)
	}
	if _u.mutation.PresetIDCleared() {
		_spec.ClearField(syncjob.FieldPresetID, field.TypeUUID)
	}
	if value, ok := _u.mutation.CustomPrompt(); ok {
		_spec.SetField(syncjob.FieldCustomPrompt, field.TypeString, value)
	}
	if _u.mutation.CustomPromptCleared() {
		_spec.ClearField(syncjob.FieldCustomPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(syncjob.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(syncjob.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PushedCount(); ok {
		_spec.SetField(syncjob.FieldPushedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPushedCount(); ok {
		_spec.AddField(syncjob.FieldPushedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FailedCount(); ok {
		_spec.SetField(syncjob.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedCount(); ok {
		_spec.AddField(syncjob.FieldFailedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(syncjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(syncjob.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(syncjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(syncjob.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(syncjob.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(syncjob.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(syncjob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(syncjob.FieldTokensUsed, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NextRetryAt(); ok {
		_spec.SetField(syncjob.FieldNextRetryAt, field.TypeTime, value)
	}
	if _u.mutation.NextRetryAtCleared() {
		_spec.ClearField(syncjob.FieldNextRetryAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ApprovedAt(); ok {
		_spec.SetField(syncjob.FieldApprovedAt, field.TypeTime, value)
	}
	if _u.mutation.ApprovedAtCleared() {
		_spec.ClearField(syncjob.FieldApprovedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(syncjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(syncjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(syncjob.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(syncjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SyncJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
