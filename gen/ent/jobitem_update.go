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
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/gen/ent/predicate"
)

// JobItemUpdate is the builder for updating JobItem entities.
type JobItemUpdate struct {
	config
	hooks    []Hook
	mutation *JobItemMutation
}

// Where appends a list predicates to the JobItemUpdate builder.
func (_u *JobItemUpdate) Where(ps ...predicate.JobItem) *JobItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOptimizedURL sets the "optimized_url" field.
func (_u *JobItemUpdate) SetOptimizedURL(v string) *JobItemUpdate {
	_u.mutation.SetOptimizedURL(v)
	return _u
}

// SetNillableOptimizedURL sets the "optimized_url" field if the given value is not nil.
func (_u *JobItemUpdate) SetNillableOptimizedURL(v *string) *JobItemUpdate {
	if v != nil {
		_u.SetOptimizedURL(*v)
	}
	return _u
}

// ClearOptimizedURL clears the value of the "optimized_url" field.
func (_u *JobItemUpdate) ClearOptimizedURL() *JobItemUpdate {
	_u.mutation.ClearOptimizedURL()
	return _u
}

// SetOptimizedStoragePath sets the "optimized_storage_path" field.
func (_u *JobItemUpdate) SetOptimizedStoragePath(v string) *JobItemUpdate {
	_u.mutation.SetOptimizedStoragePath(v)
	return _u
}

// SetNillableOptimizedStoragePath sets the "optimized_storage_path" field if the given value is not nil.
func (_u *JobItemUpdate) SetNillableOptimizedStoragePath(v *string) *JobItemUpdate {
	if v != nil {
		_u.SetOptimizedStoragePath(*v)
	}
	return _u
}

// ClearOptimizedStoragePath clears the value of the "optimized_storage_path" field.
func (_u *JobItemUpdate) ClearOptimizedStoragePath() *JobItemUpdate {
	_u.mutation.ClearOptimizedStoragePath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobItemUpdate) SetStatus(v string) *JobItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobItemUpdate) SetNillableStatus(v *string) *JobItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPushAttempts sets the "push_attempts" field.
func (_u *JobItemUpdate) SetPushAttempts(v int) *JobItemUpdate {
	_u.mutation.ResetPushAttempts()
	_u.mutation.SetPushAttempts(v)
	return _u
}

// SetNillablePushAttempts sets the "push_attempts" field if the given value is not nil.
func (_u *JobItemUpdate) SetNillablePushAttempts(v *int) *JobItemUpdate {
	if v != nil {
		_u.SetPushAttempts(*v)
	}
	return _u
}

// AddPushAttempts adds value to the "push_attempts" field.
func (_u *JobItemUpdate) AddPushAttempts(v int) *JobItemUpdate {
	_u.mutation.AddPushAttempts(v)
	return _u
}

// SetLastPushError sets the "last_push_error" field.
func (_u *JobItemUpdate) SetLastPushError(v string) *JobItemUpdate {
	_u.mutation.SetLastPushError(v)
	return _u
}

// SetNillableLastPushError sets the "last_push_error" field if the given value is not nil.
func (_u *JobItemUpdate) SetNillableLastPushError(v *string) *JobItemUpdate {
	if v != nil {
		_u.SetLastPushError(*v)
	}
	return _u
}

// ClearLastPushError clears the value of the "last_push_error" field.
func (_u *JobItemUpdate) ClearLastPushError() *JobItemUpdate {
	_u.mutation.ClearLastPushError()
	return _u
}

// SetPushRetryable sets the "push_retryable" field.
func (_u *JobItemUpdate) SetPushRetryable(v bool) *JobItemUpdate {
	_u.mutation.SetPushRetryable(v)
	return _u
}

// SetNillablePushRetryable sets the "push_retryable" field if the given value is not nil.
func (_u *JobItemUpdate) SetNillablePushRetryable(v *bool) *JobItemUpdate {
	if v != nil {
		_u.SetPushRetryable(*v)
	}
	return _u
}

// SetPushedAt sets the "pushed_at" field.
func (_u *JobItemUpdate) SetPushedAt(v time.Time) *JobItemUpdate {
	_u.mutation.SetPushedAt(v)
	return _u
}

// SetNillablePushedAt sets the "pushed_at" field if the given value is not nil.
func (_u *JobItemUpdate) SetNillablePushedAt(v *time.Time) *JobItemUpdate {
	if v != nil {
		_u.SetPushedAt(*v)
	}
	return _u
}

// ClearPushedAt clears the value of the "pushed_at" field.
func (_u *JobItemUpdate) ClearPushedAt() *JobItemUpdate {
	_u.mutation.ClearPushedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobItemUpdate) SetUpdatedAt(v time.Time) *JobItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobItemMutation object of the builder.
func (_u *JobItemUpdate) Mutation() *JobItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobItemUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PushAttempts(); ok {
		if err := jobitem.PushAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "push_attempts", err: fmt.Errorf(`ent: validator failed for field "JobItem.push_attempts": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobItem.job"`)
	}
	return nil
}

func (_u *JobItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobitem.Table, jobitem.Columns, sqlgraph.NewFieldSpec(jobitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OptimizedURL(); ok {
		_spec.SetField(jobitem.FieldOptimizedURL, field.TypeString, value)
	}
	if _u.mutation.OptimizedURLCleared() {
		_spec.ClearField(jobitem.FieldOptimizedURL, field.TypeString)
	}
	if value, ok := _u.mutation.OptimizedStoragePath(); ok {
		_spec.SetField(jobitem.FieldOptimizedStoragePath, field.TypeString, value)
	}
	if _u.mutation.OptimizedStoragePathCleared() {
		_spec.ClearField(jobitem.FieldOptimizedStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PushAttempts(); ok {
		_spec.SetField(jobitem.FieldPushAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPushAttempts(); ok {
		_spec.AddField(jobitem.FieldPushAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPushError(); ok {
		_spec.SetField(jobitem.FieldLastPushError, field.TypeString, value)
	}
	if _u.mutation.LastPushErrorCleared() {
		_spec.ClearField(jobitem.FieldLastPushError, field.TypeString)
	}
	if value, ok := _u.mutation.PushRetryable(); ok {
		_spec.SetField(jobitem.FieldPushRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushedAt(); ok {
		_spec.SetField(jobitem.FieldPushedAt, field.TypeTime, value)
	}
	if _u.mutation.PushedAtCleared() {
		_spec.ClearField(jobitem.FieldPushedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobItemUpdateOne is the builder for updating a single JobItem entity.
type JobItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobItemMutation
}

// SetOptimizedURL sets the "optimized_url" field.
func (_u *JobItemUpdateOne) SetOptimizedURL(v string) *JobItemUpdateOne {
	_u.mutation.SetOptimizedURL(v)
	return _u
}

// SetNillableOptimizedURL sets the "optimized_url" field if the given value is not nil.
func (_u *JobItemUpdateOne) SetNillableOptimizedURL(v *string) *JobItemUpdateOne {
	if v != nil {
		_u.SetOptimizedURL(*v)
	}
	return _u
}

// ClearOptimizedURL clears the value of the "optimized_url" field.
func (_u *JobItemUpdateOne) ClearOptimizedURL() *JobItemUpdateOne {
	_u.mutation.ClearOptimizedURL()
	return _u
}

// SetOptimizedStoragePath sets the "optimized_storage_path" field.
func (_u *JobItemUpdateOne) SetOptimizedStoragePath(v string) *JobItemUpdateOne {
	_u.mutation.SetOptimizedStoragePath(v)
	return _u
}

// SetNillableOptimizedStoragePath sets the "optimized_storage_path" field if the given value is not nil.
func (_u *JobItemUpdateOne) SetNillableOptimizedStoragePath(v *string) *JobItemUpdateOne {
	if v != nil {
		_u.SetOptimizedStoragePath(*v)
	}
	return _u
}

// ClearOptimizedStoragePath clears the value of the "optimized_storage_path" field.
func (_u *JobItemUpdateOne) ClearOptimizedStoragePath() *JobItemUpdateOne {
	_u.mutation.ClearOptimizedStoragePath()
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobItemUpdateOne) SetStatus(v string) *JobItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobItemUpdateOne) SetNillableStatus(v *string) *JobItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPushAttempts sets the "push_attempts" field.
func (_u *JobItemUpdateOne) SetPushAttempts(v int) *JobItemUpdateOne {
	_u.mutation.ResetPushAttempts()
	_u.mutation.SetPushAttempts(v)
	return _u
}

// SetNillablePushAttempts sets the "push_attempts" field if the given value is not nil.
func (_u *JobItemUpdateOne) SetNillablePushAttempts(v *int) *JobItemUpdateOne {
	if v != nil {
		_u.SetPushAttempts(*v)
	}
	return _u
}

// AddPushAttempts adds value to the "push_attempts" field.
func (_u *JobItemUpdateOne) AddPushAttempts(v int) *JobItemUpdateOne {
	_u.mutation.AddPushAttempts(v)
	return _u
}

// SetLastPushError sets the "last_push_error" field.
func (_u *JobItemUpdateOne) SetLastPushError(v string) *JobItemUpdateOne {
	_u.mutation.SetLastPushError(v)
	return _u
}

// SetNillableLastPushError sets the "last_push_error" field if the given value is not nil.
func (_u *JobItemUpdateOne) SetNillableLastPushError(v *string) *JobItemUpdateOne {
	if v != nil {
		_u.SetLastPushError(*v)
	}
	return _u
}

// ClearLastPushError clears the value of the "last_push_error" field.
func (_u *JobItemUpdateOne) ClearLastPushError() *JobItemUpdateOne {
	_u.mutation.ClearLastPushError()
	return _u
}

// SetPushRetryable sets the "push_retryable" field.
func (_u *JobItemUpdateOne) SetPushRetryable(v bool) *JobItemUpdateOne {
	_u.mutation.SetPushRetryable(v)
	return _u
}

// SetNillablePushRetryable sets the "push_retryable" field if the given value is not nil.
func (_u *JobItemUpdateOne) SetNillablePushRetryable(v *bool) *JobItemUpdateOne {
	if v != nil {
		_u.SetPushRetryable(*v)
	}
	return _u
}

// SetPushedAt sets the "pushed_at" field.
func (_u *JobItemUpdateOne) SetPushedAt(v time.Time) *JobItemUpdateOne {
	_u.mutation.SetPushedAt(v)
	return _u
}

// SetNillablePushedAt sets the "pushed_at" field if the given value is not nil.
func (_u *JobItemUpdateOne) SetNillablePushedAt(v *time.Time) *JobItemUpdateOne {
	if v != nil {
		_u.SetPushedAt(*v)
	}
	return _u
}

// ClearPushedAt clears the value of the "pushed_at" field.
func (_u *JobItemUpdateOne) ClearPushedAt() *JobItemUpdateOne {
	_u.mutation.ClearPushedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobItemUpdateOne) SetUpdatedAt(v time.Time) *JobItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the JobItemMutation object of the builder.
func (_u *JobItemUpdateOne) Mutation() *JobItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the JobItemUpdate builder.
func (_u *JobItemUpdateOne) Where(ps ...predicate.JobItem) *JobItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobItemUpdateOne) Select(field string, fields ...string) *JobItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobItem entity.
func (_u *JobItemUpdateOne) Save(ctx context.Context) (*JobItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobItemUpdateOne) SaveX(ctx context.Context) *JobItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *JobItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := jobitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobItemUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := jobitem.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobItem.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PushAttempts(); ok {
		if err := jobitem.PushAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "push_attempts", err: fmt.Errorf(`ent: validator failed for field "JobItem.push_attempts": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobItem.job"`)
	}
	return nil
}

func (_u *JobItemUpdateOne) sqlSave(ctx context.Context) (_node *JobItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobitem.Table, jobitem.Columns, sqlgraph.NewFieldSpec(jobitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobitem.FieldID)
		for _, f := range fields {
			if !jobitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobitem.FieldID {
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
	if value, ok := _u.mutation.OptimizedURL(); ok {
		_spec.SetField(jobitem.FieldOptimizedURL, field.TypeString, value)
	}
	if _u.mutation.OptimizedURLCleared() {
		_spec.ClearField(jobitem.FieldOptimizedURL, field.TypeString)
	}
	if value, ok := _u.mutation.OptimizedStoragePath(); ok {
		_spec.SetField(jobitem.FieldOptimizedStoragePath, field.TypeString, value)
	}
	if _u.mutation.OptimizedStoragePathCleared() {
		_spec.ClearField(jobitem.FieldOptimizedStoragePath, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.PushAttempts(); ok {
		_spec.SetField(jobitem.FieldPushAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPushAttempts(); ok {
		_spec.AddField(jobitem.FieldPushAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastPushError(); ok {
		_spec.SetField(jobitem.FieldLastPushError, field.TypeString, value)
	}
	if _u.mutation.LastPushErrorCleared() {
		_spec.ClearField(jobitem.FieldLastPushError, field.TypeString)
	}
	if value, ok := _u.mutation.PushRetryable(); ok {
		_spec.SetField(jobitem.FieldPushRetryable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PushedAt(); ok {
		_spec.SetField(jobitem.FieldPushedAt, field.TypeTime, value)
	}
	if _u.mutation.PushedAtCleared() {
		_spec.ClearField(jobitem.FieldPushedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(jobitem.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &JobItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
