// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/gen/ent/predicate"
	"github.com/optipix/imagesync/gen/ent/syncjob"
	"github.com/optipix/imagesync/gen/ent/tokenaccount"
	"github.com/optipix/imagesync/gen/ent/tokenreservation"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJobItem          = "JobItem"
	TypeSyncJob          = "SyncJob"
	TypeTokenAccount     = "TokenAccount"
	TypeTokenReservation = "TokenReservation"
)

// JobItemMutation represents an operation that mutates the JobItem nodes in the graph.
type JobItemMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uuid.UUID
	external_product_id    *string
	external_image_id      *string
	original_url           *string
	optimized_url          *string
	optimized_storage_path *string
	status                 *string
	push_attempts          *int
	addpush_attempts       *int
	last_push_error        *string
	push_retryable         *bool
	pushed_at              *time.Time
	created_at             *time.Time
	updated_at             *time.Time
	clearedFields          map[string]struct{}
	job                    *uuid.UUID
	clearedjob             bool
	done                   bool
	oldValue               func(context.Context) (*JobItem, error)
	predicates             []predicate.JobItem
}

var _ ent.Mutation = (*JobItemMutation)(nil)

// jobitemOption allows management of the mutation configuration using functional options.
type jobitemOption func(*JobItemMutation)

// newJobItemMutation creates new mutation for the JobItem entity.
func newJobItemMutation(c config, op Op, opts ...jobitemOption) *JobItemMutation {
	m := &JobItemMutation{
		config:        c,
		op:            op,
		typ:           TypeJobItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobItemID sets the ID field of the mutation.
func withJobItemID(id uuid.UUID) jobitemOption {
	return func(m *JobItemMutation) {
		var (
			err   error
			once  sync.Once
			value *JobItem
		)
		m.oldValue = func(ctx context.Context) (*JobItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobItem sets the old JobItem of the mutation.
func withJobItem(node *JobItem) jobitemOption {
	return func(m *JobItemMutation) {
		m.oldValue = func(context.Context) (*JobItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobItem entities.
func (m *JobItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobItemMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobItemMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobItemMutation) ResetJobID() {
	m.job = nil
}

// SetExternalProductID sets the "external_product_id" field.
func (m *JobItemMutation) SetExternalProductID(s string) {
	m.external_product_id = &s
}

// ExternalProductID returns the value of the "external_product_id" field in the mutation.
func (m *JobItemMutation) ExternalProductID() (r string, exists bool) {
	v := m.external_product_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalProductID returns the old "external_product_id" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldExternalProductID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalProductID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalProductID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalProductID: %w", err)
	}
	return oldValue.ExternalProductID, nil
}

// ResetExternalProductID resets all changes to the "external_product_id" field.
func (m *JobItemMutation) ResetExternalProductID() {
	m.external_product_id = nil
}

// SetExternalImageID sets the "external_image_id" field.
func (m *JobItemMutation) SetExternalImageID(s string) {
	m.external_image_id = &s
}

// ExternalImageID returns the value of the "external_image_id" field in the mutation.
func (m *JobItemMutation) ExternalImageID() (r string, exists bool) {
	v := m.external_image_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalImageID returns the old "external_image_id" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldExternalImageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalImageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalImageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalImageID: %w", err)
	}
	return oldValue.ExternalImageID, nil
}

// ResetExternalImageID resets all changes to the "external_image_id" field.
func (m *JobItemMutation) ResetExternalImageID() {
	m.external_image_id = nil
}

// SetOriginalURL sets the "original_url" field.
func (m *JobItemMutation) SetOriginalURL(s string) {
	m.original_url = &s
}

// OriginalURL returns the value of the "original_url" field in the mutation.
func (m *JobItemMutation) OriginalURL() (r string, exists bool) {
	v := m.original_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalURL returns the old "original_url" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldOriginalURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalURL: %w", err)
	}
	return oldValue.OriginalURL, nil
}

// ResetOriginalURL resets all changes to the "original_url" field.
func (m *JobItemMutation) ResetOriginalURL() {
	m.original_url = nil
}

// SetOptimizedURL sets the "optimized_url" field.
func (m *JobItemMutation) SetOptimizedURL(s string) {
	m.optimized_url = &s
}

// OptimizedURL returns the value of the "optimized_url" field in the mutation.
func (m *JobItemMutation) OptimizedURL() (r string, exists bool) {
	v := m.optimized_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedURL returns the old "optimized_url" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldOptimizedURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedURL: %w", err)
	}
	return oldValue.OptimizedURL, nil
}

// ClearOptimizedURL clears the value of the "optimized_url" field.
func (m *JobItemMutation) ClearOptimizedURL() {
	m.optimized_url = nil
	m.clearedFields[jobitem.FieldOptimizedURL] = struct{}{}
}

// OptimizedURLCleared returns if the "optimized_url" field was cleared in this mutation.
func (m *JobItemMutation) OptimizedURLCleared() bool {
	_, ok := m.clearedFields[jobitem.FieldOptimizedURL]
	return ok
}

// ResetOptimizedURL resets all changes to the "optimized_url" field.
func (m *JobItemMutation) ResetOptimizedURL() {
	m.optimized_url = nil
	delete(m.clearedFields, jobitem.FieldOptimizedURL)
}

// SetOptimizedStoragePath sets the "optimized_storage_path" field.
func (m *JobItemMutation) SetOptimizedStoragePath(s string) {
	m.optimized_storage_path = &s
}

// OptimizedStoragePath returns the value of the "optimized_storage_path" field in the mutation.
func (m *JobItemMutation) OptimizedStoragePath() (r string, exists bool) {
	v := m.optimized_storage_path
	if v == nil {
		return
	}
	return *v, true
}

// OldOptimizedStoragePath returns the old "optimized_storage_path" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldOptimizedStoragePath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOptimizedStoragePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOptimizedStoragePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOptimizedStoragePath: %w", err)
	}
	return oldValue.OptimizedStoragePath, nil
}

// ClearOptimizedStoragePath clears the value of the "optimized_storage_path" field.
func (m *JobItemMutation) ClearOptimizedStoragePath() {
	m.optimized_storage_path = nil
	m.clearedFields[jobitem.FieldOptimizedStoragePath] = struct{}{}
}

// OptimizedStoragePathCleared returns if the "optimized_storage_path" field was cleared in this mutation.
func (m *JobItemMutation) OptimizedStoragePathCleared() bool {
	_, ok := m.clearedFields[jobitem.FieldOptimizedStoragePath]
	return ok
}

// ResetOptimizedStoragePath resets all changes to the "optimized_storage_path" field.
func (m *JobItemMutation) ResetOptimizedStoragePath() {
	m.optimized_storage_path = nil
	delete(m.clearedFields, jobitem.FieldOptimizedStoragePath)
}

// SetStatus sets the "status" field.
func (m *JobItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobItemMutation) ResetStatus() {
	m.status = nil
}

// SetPushAttempts sets the "push_attempts" field.
func (m *JobItemMutation) SetPushAttempts(i int) {
	m.push_attempts = &i
	m.addpush_attempts = nil
}

// PushAttempts returns the value of the "push_attempts" field in the mutation.
func (m *JobItemMutation) PushAttempts() (r int, exists bool) {
	v := m.push_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldPushAttempts returns the old "push_attempts" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldPushAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushAttempts: %w", err)
	}
	return oldValue.PushAttempts, nil
}

// AddPushAttempts adds i to the "push_attempts" field.
func (m *JobItemMutation) AddPushAttempts(i int) {
	if m.addpush_attempts != nil {
		*m.addpush_attempts += i
	} else {
		m.addpush_attempts = &i
	}
}

// AddedPushAttempts returns the value that was added to the "push_attempts" field in this mutation.
func (m *JobItemMutation) AddedPushAttempts() (r int, exists bool) {
	v := m.addpush_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetPushAttempts resets all changes to the "push_attempts" field.
func (m *JobItemMutation) ResetPushAttempts() {
	m.push_attempts = nil
	m.addpush_attempts = nil
}

// SetLastPushError sets the "last_push_error" field.
func (m *JobItemMutation) SetLastPushError(s string) {
	m.last_push_error = &s
}

// LastPushError returns the value of the "last_push_error" field in the mutation.
func (m *JobItemMutation) LastPushError() (r string, exists bool) {
	v := m.last_push_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPushError returns the old "last_push_error" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldLastPushError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPushError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPushError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPushError: %w", err)
	}
	return oldValue.LastPushError, nil
}

// ClearLastPushError clears the value of the "last_push_error" field.
func (m *JobItemMutation) ClearLastPushError() {
	m.last_push_error = nil
	m.clearedFields[jobitem.FieldLastPushError] = struct{}{}
}

// LastPushErrorCleared returns if the "last_push_error" field was cleared in this mutation.
func (m *JobItemMutation) LastPushErrorCleared() bool {
	_, ok := m.clearedFields[jobitem.FieldLastPushError]
	return ok
}

// ResetLastPushError resets all changes to the "last_push_error" field.
func (m *JobItemMutation) ResetLastPushError() {
	m.last_push_error = nil
	delete(m.clearedFields, jobitem.FieldLastPushError)
}

// SetPushRetryable sets the "push_retryable" field.
func (m *JobItemMutation) SetPushRetryable(b bool) {
	m.push_retryable = &b
}

// PushRetryable returns the value of the "push_retryable" field in the mutation.
func (m *JobItemMutation) PushRetryable() (r bool, exists bool) {
	v := m.push_retryable
	if v == nil {
		return
	}
	return *v, true
}

// OldPushRetryable returns the old "push_retryable" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldPushRetryable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushRetryable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushRetryable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushRetryable: %w", err)
	}
	return oldValue.PushRetryable, nil
}

// ResetPushRetryable resets all changes to the "push_retryable" field.
func (m *JobItemMutation) ResetPushRetryable() {
	m.push_retryable = nil
}

// SetPushedAt sets the "pushed_at" field.
func (m *JobItemMutation) SetPushedAt(t time.Time) {
	m.pushed_at = &t
}

// PushedAt returns the value of the "pushed_at" field in the mutation.
func (m *JobItemMutation) PushedAt() (r time.Time, exists bool) {
	v := m.pushed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPushedAt returns the old "pushed_at" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldPushedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushedAt: %w", err)
	}
	return oldValue.PushedAt, nil
}

// ClearPushedAt clears the value of the "pushed_at" field.
func (m *JobItemMutation) ClearPushedAt() {
	m.pushed_at = nil
	m.clearedFields[jobitem.FieldPushedAt] = struct{}{}
}

// PushedAtCleared returns if the "pushed_at" field was cleared in this mutation.
func (m *JobItemMutation) PushedAtCleared() bool {
	_, ok := m.clearedFields[jobitem.FieldPushedAt]
	return ok
}

// ResetPushedAt resets all changes to the "pushed_at" field.
func (m *JobItemMutation) ResetPushedAt() {
	m.pushed_at = nil
	delete(m.clearedFields, jobitem.FieldPushedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobItem entity.
// If the JobItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearJob clears the "job" edge to the SyncJob entity.
func (m *JobItemMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobitem.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the SyncJob entity was cleared.
func (m *JobItemMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobItemMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobItemMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobItemMutation builder.
func (m *JobItemMutation) Where(ps ...predicate.JobItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobItem).
func (m *JobItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobItemMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.job != nil {
		fields = append(fields, jobitem.FieldJobID)
	}
	if m.external_product_id != nil {
		fields = append(fields, jobitem.FieldExternalProductID)
	}
	if m.external_image_id != nil {
		fields = append(fields, jobitem.FieldExternalImageID)
	}
	if m.original_url != nil {
		fields = append(fields, jobitem.FieldOriginalURL)
	}
	if m.optimized_url != nil {
		fields = append(fields, jobitem.FieldOptimizedURL)
	}
	if m.optimized_storage_path != nil {
		fields = append(fields, jobitem.FieldOptimizedStoragePath)
	}
	if m.status != nil {
		fields = append(fields, jobitem.FieldStatus)
	}
	if m.push_attempts != nil {
		fields = append(fields, jobitem.FieldPushAttempts)
	}
	if m.last_push_error != nil {
		fields = append(fields, jobitem.FieldLastPushError)
	}
	if m.push_retryable != nil {
		fields = append(fields, jobitem.FieldPushRetryable)
	}
	if m.pushed_at != nil {
		fields = append(fields, jobitem.FieldPushedAt)
	}
	if m.created_at != nil {
		fields = append(fields, jobitem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobitem.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobitem.FieldJobID:
		return m.JobID()
	case jobitem.FieldExternalProductID:
		return m.ExternalProductID()
	case jobitem.FieldExternalImageID:
		return m.ExternalImageID()
	case jobitem.FieldOriginalURL:
		return m.OriginalURL()
	case jobitem.FieldOptimizedURL:
		return m.OptimizedURL()
	case jobitem.FieldOptimizedStoragePath:
		return m.OptimizedStoragePath()
	case jobitem.FieldStatus:
		return m.Status()
	case jobitem.FieldPushAttempts:
		return m.PushAttempts()
	case jobitem.FieldLastPushError:
		return m.LastPushError()
	case jobitem.FieldPushRetryable:
		return m.PushRetryable()
	case jobitem.FieldPushedAt:
		return m.PushedAt()
	case jobitem.FieldCreatedAt:
		return m.CreatedAt()
	case jobitem.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobitem.FieldJobID:
		return m.OldJobID(ctx)
	case jobitem.FieldExternalProductID:
		return m.OldExternalProductID(ctx)
	case jobitem.FieldExternalImageID:
		return m.OldExternalImageID(ctx)
	case jobitem.FieldOriginalURL:
		return m.OldOriginalURL(ctx)
	case jobitem.FieldOptimizedURL:
		return m.OldOptimizedURL(ctx)
	case jobitem.FieldOptimizedStoragePath:
		return m.OldOptimizedStoragePath(ctx)
	case jobitem.FieldStatus:
		return m.OldStatus(ctx)
	case jobitem.FieldPushAttempts:
		return m.OldPushAttempts(ctx)
	case jobitem.FieldLastPushError:
		return m.OldLastPushError(ctx)
	case jobitem.FieldPushRetryable:
		return m.OldPushRetryable(ctx)
	case jobitem.FieldPushedAt:
		return m.OldPushedAt(ctx)
	case jobitem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobitem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobitem.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobitem.FieldExternalProductID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalProductID(v)
		return nil
	case jobitem.FieldExternalImageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalImageID(v)
		return nil
	case jobitem.FieldOriginalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalURL(v)
		return nil
	case jobitem.FieldOptimizedURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedURL(v)
		return nil
	case jobitem.FieldOptimizedStoragePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOptimizedStoragePath(v)
		return nil
	case jobitem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobitem.FieldPushAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushAttempts(v)
		return nil
	case jobitem.FieldLastPushError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPushError(v)
		return nil
	case jobitem.FieldPushRetryable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushRetryable(v)
		return nil
	case jobitem.FieldPushedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushedAt(v)
		return nil
	case jobitem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobitem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobItemMutation) AddedFields() []string {
	var fields []string
	if m.addpush_attempts != nil {
		fields = append(fields, jobitem.FieldPushAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobitem.FieldPushAttempts:
		return m.AddedPushAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobitem.FieldPushAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPushAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown JobItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobitem.FieldOptimizedURL) {
		fields = append(fields, jobitem.FieldOptimizedURL)
	}
	if m.FieldCleared(jobitem.FieldOptimizedStoragePath) {
		fields = append(fields, jobitem.FieldOptimizedStoragePath)
	}
	if m.FieldCleared(jobitem.FieldLastPushError) {
		fields = append(fields, jobitem.FieldLastPushError)
	}
	if m.FieldCleared(jobitem.FieldPushedAt) {
		fields = append(fields, jobitem.FieldPushedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobItemMutation) ClearField(name string) error {
	switch name {
	case jobitem.FieldOptimizedURL:
		m.ClearOptimizedURL()
		return nil
	case jobitem.FieldOptimizedStoragePath:
		m.ClearOptimizedStoragePath()
		return nil
	case jobitem.FieldLastPushError:
		m.ClearLastPushError()
		return nil
	case jobitem.FieldPushedAt:
		m.ClearPushedAt()
		return nil
	}
	return fmt.Errorf("unknown JobItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobItemMutation) ResetField(name string) error {
	switch name {
	case jobitem.FieldJobID:
		m.ResetJobID()
		return nil
	case jobitem.FieldExternalProductID:
		m.ResetExternalProductID()
		return nil
	case jobitem.FieldExternalImageID:
		m.ResetExternalImageID()
		return nil
	case jobitem.FieldOriginalURL:
		m.ResetOriginalURL()
		return nil
	case jobitem.FieldOptimizedURL:
		m.ResetOptimizedURL()
		return nil
	case jobitem.FieldOptimizedStoragePath:
		m.ResetOptimizedStoragePath()
		return nil
	case jobitem.FieldStatus:
		m.ResetStatus()
		return nil
	case jobitem.FieldPushAttempts:
		m.ResetPushAttempts()
		return nil
	case jobitem.FieldLastPushError:
		m.ResetLastPushError()
		return nil
	case jobitem.FieldPushRetryable:
		m.ResetPushRetryable()
		return nil
	case jobitem.FieldPushedAt:
		m.ResetPushedAt()
		return nil
	case jobitem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobitem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobitem.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobItemMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobitem.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobitem.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobItemMutation) EdgeCleared(name string) bool {
	switch name {
	case jobitem.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobItemMutation) ClearEdge(name string) error {
	switch name {
	case jobitem.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobItemMutation) ResetEdge(name string) error {
	switch name {
	case jobitem.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobItem edge %s", name)
}

// SyncJobMutation represents an operation that mutates the SyncJob nodes in the graph.
type SyncJobMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	owner_id           *uuid.UUID
	store_id           *uuid.UUID
	name               *string
	store_domain       *string
	folder             *string
	trigger_type       *string
	preset_type        *string
	preset_id          *uuid.UUID
	custom_prompt      *string
	product_count      *int
	addproduct_count   *int
	image_count        *int
	addimage_count     *int
	processed_count    *int
	addprocessed_count *int
	pushed_count       *int
	addpushed_count    *int
	failed_count       *int
	addfailed_count    *int
	status             *string
	retry_count        *int
	addretry_count     *int
	max_retries        *int
	addmax_retries     *int
	last_error         *string
	tokens_used        *int64
	addtokens_used     *int64
	next_retry_at      *time.Time
	approved_at        *time.Time
	completed_at       *time.Time
	expires_at         *time.Time
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	items              map[uuid.UUID]struct{}
	removeditems       map[uuid.UUID]struct{}
	cleareditems       bool
	done               bool
	oldValue           func(context.Context) (*SyncJob, error)
	predicates         []predicate.SyncJob
}

var _ ent.Mutation = (*SyncJobMutation)(nil)

// syncjobOption allows management of the mutation configuration using functional options.
type syncjobOption func(*SyncJobMutation)

// newSyncJobMutation creates new mutation for the SyncJob entity.
func newSyncJobMutation(c config, op Op, opts ...syncjobOption) *SyncJobMutation {
	m := &SyncJobMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncJobID sets the ID field of the mutation.
func withSyncJobID(id uuid.UUID) syncjobOption {
	return func(m *SyncJobMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncJob
		)
		m.oldValue = func(ctx context.Context) (*SyncJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncJob sets the old SyncJob of the mutation.
func withSyncJob(node *SyncJob) syncjobOption {
	return func(m *SyncJobMutation) {
		m.oldValue = func(context.Context) (*SyncJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SyncJob entities.
func (m *SyncJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *SyncJobMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *SyncJobMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *SyncJobMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetStoreID sets the "store_id" field.
func (m *SyncJobMutation) SetStoreID(u uuid.UUID) {
	m.store_id = &u
}

// StoreID returns the value of the "store_id" field in the mutation.
func (m *SyncJobMutation) StoreID() (r uuid.UUID, exists bool) {
	v := m.store_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreID returns the old "store_id" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldStoreID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreID: %w", err)
	}
	return oldValue.StoreID, nil
}

// ResetStoreID resets all changes to the "store_id" field.
func (m *SyncJobMutation) ResetStoreID() {
	m.store_id = nil
}

// SetName sets the "name" field.
func (m *SyncJobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *SyncJobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *SyncJobMutation) ResetName() {
	m.name = nil
}

// SetStoreDomain sets the "store_domain" field.
func (m *SyncJobMutation) SetStoreDomain(s string) {
	m.store_domain = &s
}

// StoreDomain returns the value of the "store_domain" field in the mutation.
func (m *SyncJobMutation) StoreDomain() (r string, exists bool) {
	v := m.store_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldStoreDomain returns the old "store_domain" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldStoreDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStoreDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStoreDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStoreDomain: %w", err)
	}
	return oldValue.StoreDomain, nil
}

// ClearStoreDomain clears the value of the "store_domain" field.
func (m *SyncJobMutation) ClearStoreDomain() {
	m.store_domain = nil
	m.clearedFields[syncjob.FieldStoreDomain] = struct{}{}
}

// StoreDomainCleared returns if the "store_domain" field was cleared in this mutation.
func (m *SyncJobMutation) StoreDomainCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldStoreDomain]
	return ok
}

// ResetStoreDomain resets all changes to the "store_domain" field.
func (m *SyncJobMutation) ResetStoreDomain() {
	m.store_domain = nil
	delete(m.clearedFields, syncjob.FieldStoreDomain)
}

// SetFolder sets the "folder" field.
func (m *SyncJobMutation) SetFolder(s string) {
	m.folder = &s
}

// Folder returns the value of the "folder" field in the mutation.
func (m *SyncJobMutation) Folder() (r string, exists bool) {
	v := m.folder
	if v == nil {
		return
	}
	return *v, true
}

// OldFolder returns the old "folder" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldFolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolder: %w", err)
	}
	return oldValue.Folder, nil
}

// ClearFolder clears the value of the "folder" field.
func (m *SyncJobMutation) ClearFolder() {
	m.folder = nil
	m.clearedFields[syncjob.FieldFolder] = struct{}{}
}

// FolderCleared returns if the "folder" field was cleared in this mutation.
func (m *SyncJobMutation) FolderCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldFolder]
	return ok
}

// ResetFolder resets all changes to the "folder" field.
func (m *SyncJobMutation) ResetFolder() {
	m.folder = nil
	delete(m.clearedFields, syncjob.FieldFolder)
}

// SetTriggerType sets the "trigger_type" field.
func (m *SyncJobMutation) SetTriggerType(s string) {
	m.trigger_type = &s
}

// TriggerType returns the value of the "trigger_type" field in the mutation.
func (m *SyncJobMutation) TriggerType() (r string, exists bool) {
	v := m.trigger_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTriggerType returns the old "trigger_type" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldTriggerType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTriggerType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTriggerType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTriggerType: %w", err)
	}
	return oldValue.TriggerType, nil
}

// ResetTriggerType resets all changes to the "trigger_type" field.
func (m *SyncJobMutation) ResetTriggerType() {
	m.trigger_type = nil
}

// SetPresetType sets the "preset_type" field.
func (m *SyncJobMutation) SetPresetType(s string) {
	m.preset_type = &s
}

// PresetType returns the value of the "preset_type" field in the mutation.
func (m *SyncJobMutation) PresetType() (r string, exists bool) {
	v := m.preset_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPresetType returns the old "preset_type" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldPresetType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresetType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresetType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresetType: %w", err)
	}
	return oldValue.PresetType, nil
}

// ResetPresetType resets all changes to the "preset_type" field.
func (m *SyncJobMutation) ResetPresetType() {
	m.preset_type = nil
}

// SetPresetID sets the "preset_id" field.
func (m *SyncJobMutation) SetPresetID(u uuid.UUID) {
	m.preset_id = &u
}

// PresetID returns the value of the "preset_id" field in the mutation.
func (m *SyncJobMutation) PresetID() (r uuid.UUID, exists bool) {
	v := m.preset_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPresetID returns the old "preset_id" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldPresetID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPresetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPresetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPresetID: %w", err)
	}
	return oldValue.PresetID, nil
}

// ClearPresetID clears the value of the "preset_id" field.
func (m *SyncJobMutation) ClearPresetID() {
	m.preset_id = nil
	m.clearedFields[syncjob.FieldPresetID] = struct{}{}
}

// PresetIDCleared returns if the "preset_id" field was cleared in this mutation.
func (m *SyncJobMutation) PresetIDCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldPresetID]
	return ok
}

// ResetPresetID resets all changes to the "preset_id" field.
func (m *SyncJobMutation) ResetPresetID() {
	m.preset_id = nil
	delete(m.clearedFields, syncjob.FieldPresetID)
}

// SetCustomPrompt sets the "custom_prompt" field.
func (m *SyncJobMutation) SetCustomPrompt(s string) {
	m.custom_prompt = &s
}

// CustomPrompt returns the value of the "custom_prompt" field in the mutation.
func (m *SyncJobMutation) CustomPrompt() (r string, exists bool) {
	v := m.custom_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldCustomPrompt returns the old "custom_prompt" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldCustomPrompt(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCustomPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCustomPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCustomPrompt: %w", err)
	}
	return oldValue.CustomPrompt, nil
}

// ClearCustomPrompt clears the value of the "custom_prompt" field.
func (m *SyncJobMutation) ClearCustomPrompt() {
	m.custom_prompt = nil
	m.clearedFields[syncjob.FieldCustomPrompt] = struct{}{}
}

// CustomPromptCleared returns if the "custom_prompt" field was cleared in this mutation.
func (m *SyncJobMutation) CustomPromptCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldCustomPrompt]
	return ok
}

// ResetCustomPrompt resets all changes to the "custom_prompt" field.
func (m *SyncJobMutation) ResetCustomPrompt() {
	m.custom_prompt = nil
	delete(m.clearedFields, syncjob.FieldCustomPrompt)
}

// SetProductCount sets the "product_count" field.
func (m *SyncJobMutation) SetProductCount(i int) {
	m.product_count = &i
	m.addproduct_count = nil
}

// ProductCount returns the value of the "product_count" field in the mutation.
func (m *SyncJobMutation) ProductCount() (r int, exists bool) {
	v := m.product_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProductCount returns the old "product_count" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldProductCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductCount: %w", err)
	}
	return oldValue.ProductCount, nil
}

// AddProductCount adds i to the "product_count" field.
func (m *SyncJobMutation) AddProductCount(i int) {
	if m.addproduct_count != nil {
		*m.addproduct_count += i
	} else {
		m.addproduct_count = &i
	}
}

// AddedProductCount returns the value that was added to the "product_count" field in this mutation.
func (m *SyncJobMutation) AddedProductCount() (r int, exists bool) {
	v := m.addproduct_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetProductCount resets all changes to the "product_count" field.
func (m *SyncJobMutation) ResetProductCount() {
	m.product_count = nil
	m.addproduct_count = nil
}

// SetImageCount sets the "image_count" field.
func (m *SyncJobMutation) SetImageCount(i int) {
	m.image_count = &i
	m.addimage_count = nil
}

// ImageCount returns the value of the "image_count" field in the mutation.
func (m *SyncJobMutation) ImageCount() (r int, exists bool) {
	v := m.image_count
	if v == nil {
		return
	}
	return *v, true
}

// OldImageCount returns the old "image_count" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldImageCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageCount: %w", err)
	}
	return oldValue.ImageCount, nil
}

// AddImageCount adds i to the "image_count" field.
func (m *SyncJobMutation) AddImageCount(i int) {
	if m.addimage_count != nil {
		*m.addimage_count += i
	} else {
		m.addimage_count = &i
	}
}

// AddedImageCount returns the value that was added to the "image_count" field in this mutation.
func (m *SyncJobMutation) AddedImageCount() (r int, exists bool) {
	v := m.addimage_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetImageCount resets all changes to the "image_count" field.
func (m *SyncJobMutation) ResetImageCount() {
	m.image_count = nil
	m.addimage_count = nil
}

// SetProcessedCount sets the "processed_count" field.
func (m *SyncJobMutation) SetProcessedCount(i int) {
	m.processed_count = &i
	m.addprocessed_count = nil
}

// ProcessedCount returns the value of the "processed_count" field in the mutation.
func (m *SyncJobMutation) ProcessedCount() (r int, exists bool) {
	v := m.processed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedCount returns the old "processed_count" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldProcessedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedCount: %w", err)
	}
	return oldValue.ProcessedCount, nil
}

// AddProcessedCount adds i to the "processed_count" field.
func (m *SyncJobMutation) AddProcessedCount(i int) {
	if m.addprocessed_count != nil {
		*m.addprocessed_count += i
	} else {
		m.addprocessed_count = &i
	}
}

// AddedProcessedCount returns the value that was added to the "processed_count" field in this mutation.
func (m *SyncJobMutation) AddedProcessedCount() (r int, exists bool) {
	v := m.addprocessed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedCount resets all changes to the "processed_count" field.
func (m *SyncJobMutation) ResetProcessedCount() {
	m.processed_count = nil
	m.addprocessed_count = nil
}

// SetPushedCount sets the "pushed_count" field.
func (m *SyncJobMutation) SetPushedCount(i int) {
	m.pushed_count = &i
	m.addpushed_count = nil
}

// PushedCount returns the value of the "pushed_count" field in the mutation.
func (m *SyncJobMutation) PushedCount() (r int, exists bool) {
	v := m.pushed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPushedCount returns the old "pushed_count" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldPushedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPushedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPushedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPushedCount: %w", err)
	}
	return oldValue.PushedCount, nil
}

// AddPushedCount adds i to the "pushed_count" field.
func (m *SyncJobMutation) AddPushedCount(i int) {
	if m.addpushed_count != nil {
		*m.addpushed_count += i
	} else {
		m.addpushed_count = &i
	}
}

// AddedPushedCount returns the value that was added to the "pushed_count" field in this mutation.
func (m *SyncJobMutation) AddedPushedCount() (r int, exists bool) {
	v := m.addpushed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPushedCount resets all changes to the "pushed_count" field.
func (m *SyncJobMutation) ResetPushedCount() {
	m.pushed_count = nil
	m.addpushed_count = nil
}

// SetFailedCount sets the "failed_count" field.
func (m *SyncJobMutation) SetFailedCount(i int) {
	m.failed_count = &i
	m.addfailed_count = nil
}

// FailedCount returns the value of the "failed_count" field in the mutation.
func (m *SyncJobMutation) FailedCount() (r int, exists bool) {
	v := m.failed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedCount returns the old "failed_count" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldFailedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedCount: %w", err)
	}
	return oldValue.FailedCount, nil
}

// AddFailedCount adds i to the "failed_count" field.
func (m *SyncJobMutation) AddFailedCount(i int) {
	if m.addfailed_count != nil {
		*m.addfailed_count += i
	} else {
		m.addfailed_count = &i
	}
}

// AddedFailedCount returns the value that was added to the "failed_count" field in this mutation.
func (m *SyncJobMutation) AddedFailedCount() (r int, exists bool) {
	v := m.addfailed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedCount resets all changes to the "failed_count" field.
func (m *SyncJobMutation) ResetFailedCount() {
	m.failed_count = nil
	m.addfailed_count = nil
}

// SetStatus sets the "status" field.
func (m *SyncJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SyncJobMutation) ResetStatus() {
	m.status = nil
}

// SetRetryCount sets the "retry_count" field.
func (m *SyncJobMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *SyncJobMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *SyncJobMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *SyncJobMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *SyncJobMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetMaxRetries sets the "max_retries" field.
func (m *SyncJobMutation) SetMaxRetries(i int) {
	m.max_retries = &i
	m.addmax_retries = nil
}

// MaxRetries returns the value of the "max_retries" field in the mutation.
func (m *SyncJobMutation) MaxRetries() (r int, exists bool) {
	v := m.max_retries
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxRetries returns the old "max_retries" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldMaxRetries(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxRetries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxRetries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxRetries: %w", err)
	}
	return oldValue.MaxRetries, nil
}

// AddMaxRetries adds i to the "max_retries" field.
func (m *SyncJobMutation) AddMaxRetries(i int) {
	if m.addmax_retries != nil {
		*m.addmax_retries += i
	} else {
		m.addmax_retries = &i
	}
}

// AddedMaxRetries returns the value that was added to the "max_retries" field in this mutation.
func (m *SyncJobMutation) AddedMaxRetries() (r int, exists bool) {
	v := m.addmax_retries
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxRetries resets all changes to the "max_retries" field.
func (m *SyncJobMutation) ResetMaxRetries() {
	m.max_retries = nil
	m.addmax_retries = nil
}

// SetLastError sets the "last_error" field.
func (m *SyncJobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *SyncJobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *SyncJobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[syncjob.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *SyncJobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *SyncJobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, syncjob.FieldLastError)
}

// SetTokensUsed sets the "tokens_used" field.
func (m *SyncJobMutation) SetTokensUsed(i int64) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *SyncJobMutation) TokensUsed() (r int64, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldTokensUsed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *SyncJobMutation) AddTokensUsed(i int64) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *SyncJobMutation) AddedTokensUsed() (r int64, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *SyncJobMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetNextRetryAt sets the "next_retry_at" field.
func (m *SyncJobMutation) SetNextRetryAt(t time.Time) {
	m.next_retry_at = &t
}

// NextRetryAt returns the value of the "next_retry_at" field in the mutation.
func (m *SyncJobMutation) NextRetryAt() (r time.Time, exists bool) {
	v := m.next_retry_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRetryAt returns the old "next_retry_at" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldNextRetryAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRetryAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRetryAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRetryAt: %w", err)
	}
	return oldValue.NextRetryAt, nil
}

// ClearNextRetryAt clears the value of the "next_retry_at" field.
func (m *SyncJobMutation) ClearNextRetryAt() {
	m.next_retry_at = nil
	m.clearedFields[syncjob.FieldNextRetryAt] = struct{}{}
}

// NextRetryAtCleared returns if the "next_retry_at" field was cleared in this mutation.
func (m *SyncJobMutation) NextRetryAtCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldNextRetryAt]
	return ok
}

// ResetNextRetryAt resets all changes to the "next_retry_at" field.
func (m *SyncJobMutation) ResetNextRetryAt() {
	m.next_retry_at = nil
	delete(m.clearedFields, syncjob.FieldNextRetryAt)
}

// SetApprovedAt sets the "approved_at" field.
func (m *SyncJobMutation) SetApprovedAt(t time.Time) {
	m.approved_at = &t
}

// ApprovedAt returns the value of the "approved_at" field in the mutation.
func (m *SyncJobMutation) ApprovedAt() (r time.Time, exists bool) {
	v := m.approved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldApprovedAt returns the old "approved_at" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldApprovedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApprovedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApprovedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApprovedAt: %w", err)
	}
	return oldValue.ApprovedAt, nil
}

// ClearApprovedAt clears the value of the "approved_at" field.
func (m *SyncJobMutation) ClearApprovedAt() {
	m.approved_at = nil
	m.clearedFields[syncjob.FieldApprovedAt] = struct{}{}
}

// ApprovedAtCleared returns if the "approved_at" field was cleared in this mutation.
func (m *SyncJobMutation) ApprovedAtCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldApprovedAt]
	return ok
}

// ResetApprovedAt resets all changes to the "approved_at" field.
func (m *SyncJobMutation) ResetApprovedAt() {
	m.approved_at = nil
	delete(m.clearedFields, syncjob.FieldApprovedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *SyncJobMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *SyncJobMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *SyncJobMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[syncjob.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *SyncJobMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[syncjob.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *SyncJobMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, syncjob.FieldCompletedAt)
}

// SetExpiresAt sets the "expires_at" field.
func (m *SyncJobMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *SyncJobMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *SyncJobMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SyncJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SyncJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SyncJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SyncJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SyncJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SyncJob entity.
// If the SyncJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SyncJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddItemIDs adds the "items" edge to the JobItem entity by ids.
func (m *SyncJobMutation) AddItemIDs(ids ...uuid.UUID) {
	if m.items == nil {
		m.items = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.items[ids[i]] = struct{}{}
	}
}

// ClearItems clears the "items" edge to the JobItem entity.
func (m *SyncJobMutation) ClearItems() {
	m.cleareditems = true
}

// ItemsCleared reports if the "items" edge to the JobItem entity was cleared.
func (m *SyncJobMutation) ItemsCleared() bool {
	return m.cleareditems
}

// RemoveItemIDs removes the "items" edge to the JobItem entity by IDs.
func (m *SyncJobMutation) RemoveItemIDs(ids ...uuid.UUID) {
	if m.removeditems == nil {
		m.removeditems = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.items, ids[i])
		m.removeditems[ids[i]] = struct{}{}
	}
}

// RemovedItems returns the removed IDs of the "items" edge to the JobItem entity.
func (m *SyncJobMutation) RemovedItemsIDs() (ids []uuid.UUID) {
	for id := range m.removeditems {
		ids = append(ids, id)
	}
	return
}

// ItemsIDs returns the "items" edge IDs in the mutation.
func (m *SyncJobMutation) ItemsIDs() (ids []uuid.UUID) {
	for id := range m.items {
		ids = append(ids, id)
	}
	return
}

// ResetItems resets all changes to the "items" edge.
func (m *SyncJobMutation) ResetItems() {
	m.items = nil
	m.cleareditems = false
	m.removeditems = nil
}

// Where appends a list predicates to the SyncJobMutation builder.
func (m *SyncJobMutation) Where(ps ...predicate.SyncJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncJob).
func (m *SyncJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncJobMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.owner_id != nil {
		fields = append(fields, syncjob.FieldOwnerID)
	}
	if m.store_id != nil {
		fields = append(fields, syncjob.FieldStoreID)
	}
	if m.name != nil {
		fields = append(fields, syncjob.FieldName)
	}
	if m.store_domain != nil {
		fields = append(fields, syncjob.FieldStoreDomain)
	}
	if m.folder != nil {
		fields = append(fields, syncjob.FieldFolder)
	}
	if m.trigger_type != nil {
		fields = append(fields, syncjob.FieldTriggerType)
	}
	if m.preset_type != nil {
		fields = append(fields, syncjob.FieldPresetType)
	}
	if m.preset_id != nil {
		fields = append(fields, syncjob.FieldPresetID)
	}
	if m.custom_prompt != nil {
		fields = append(fields, syncjob.FieldCustomPrompt)
	}
	if m.product_count != nil {
		fields = append(fields, syncjob.FieldProductCount)
	}
	if m.image_count != nil {
		fields = append(fields, syncjob.FieldImageCount)
	}
	if m.processed_count != nil {
		fields = append(fields, syncjob.FieldProcessedCount)
	}
	if m.pushed_count != nil {
		fields = append(fields, syncjob.FieldPushedCount)
	}
	if m.failed_count != nil {
		fields = append(fields, syncjob.FieldFailedCount)
	}
	if m.status != nil {
		fields = append(fields, syncjob.FieldStatus)
	}
	if m.retry_count != nil {
		fields = append(fields, syncjob.FieldRetryCount)
	}
	if m.max_retries != nil {
		fields = append(fields, syncjob.FieldMaxRetries)
	}
	if m.last_error != nil {
		fields = append(fields, syncjob.FieldLastError)
	}
	if m.tokens_used != nil {
		fields = append(fields, syncjob.FieldTokensUsed)
	}
	if m.next_retry_at != nil {
		fields = append(fields, syncjob.FieldNextRetryAt)
	}
	if m.approved_at != nil {
		fields = append(fields, syncjob.FieldApprovedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, syncjob.FieldCompletedAt)
	}
	if m.expires_at != nil {
		fields = append(fields, syncjob.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, syncjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, syncjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncjob.FieldOwnerID:
		return m.OwnerID()
	case syncjob.FieldStoreID:
		return m.StoreID()
	case syncjob.FieldName:
		return m.Name()
	case syncjob.FieldStoreDomain:
		return m.StoreDomain()
	case syncjob.FieldFolder:
		return m.Folder()
	case syncjob.FieldTriggerType:
		return m.TriggerType()
	case syncjob.FieldPresetType:
		return m.PresetType()
	case syncjob.FieldPresetID:
		return m.PresetID()
	case syncjob.FieldCustomPrompt:
		return m.CustomPrompt()
	case syncjob.FieldProductCount:
		return m.ProductCount()
	case syncjob.FieldImageCount:
		return m.ImageCount()
	case syncjob.FieldProcessedCount:
		return m.ProcessedCount()
	case syncjob.FieldPushedCount:
		return m.PushedCount()
	case syncjob.FieldFailedCount:
		return m.FailedCount()
	case syncjob.FieldStatus:
		return m.Status()
	case syncjob.FieldRetryCount:
		return m.RetryCount()
	case syncjob.FieldMaxRetries:
		return m.MaxRetries()
	case syncjob.FieldLastError:
		return m.LastError()
	case syncjob.FieldTokensUsed:
		return m.TokensUsed()
	case syncjob.FieldNextRetryAt:
		return m.NextRetryAt()
	case syncjob.FieldApprovedAt:
		return m.ApprovedAt()
	case syncjob.FieldCompletedAt:
		return m.CompletedAt()
	case syncjob.FieldExpiresAt:
		return m.ExpiresAt()
	case syncjob.FieldCreatedAt:
		return m.CreatedAt()
	case syncjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncjob.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case syncjob.FieldStoreID:
		return m.OldStoreID(ctx)
	case syncjob.FieldName:
		return m.OldName(ctx)
	case syncjob.FieldStoreDomain:
		return m.OldStoreDomain(ctx)
	case syncjob.FieldFolder:
		return m.OldFolder(ctx)
	case syncjob.FieldTriggerType:
		return m.OldTriggerType(ctx)
	case syncjob.FieldPresetType:
		return m.OldPresetType(ctx)
	case syncjob.FieldPresetID:
		return m.OldPresetID(ctx)
	case syncjob.FieldCustomPrompt:
		return m.OldCustomPrompt(ctx)
	case syncjob.FieldProductCount:
		return m.OldProductCount(ctx)
	case syncjob.FieldImageCount:
		return m.OldImageCount(ctx)
	case syncjob.FieldProcessedCount:
		return m.OldProcessedCount(ctx)
	case syncjob.FieldPushedCount:
		return m.OldPushedCount(ctx)
	case syncjob.FieldFailedCount:
		return m.OldFailedCount(ctx)
	case syncjob.FieldStatus:
		return m.OldStatus(ctx)
	case syncjob.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case syncjob.FieldMaxRetries:
		return m.OldMaxRetries(ctx)
	case syncjob.FieldLastError:
		return m.OldLastError(ctx)
	case syncjob.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case syncjob.FieldNextRetryAt:
		return m.OldNextRetryAt(ctx)
	case syncjob.FieldApprovedAt:
		return m.OldApprovedAt(ctx)
	case syncjob.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case syncjob.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case syncjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case syncjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncjob.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case syncjob.FieldStoreID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreID(v)
		return nil
	case syncjob.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case syncjob.FieldStoreDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStoreDomain(v)
		return nil
	case syncjob.FieldFolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolder(v)
		return nil
	case syncjob.FieldTriggerType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTriggerType(v)
		return nil
	case syncjob.FieldPresetType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresetType(v)
		return nil
	case syncjob.FieldPresetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPresetID(v)
		return nil
	case syncjob.FieldCustomPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCustomPrompt(v)
		return nil
	case syncjob.FieldProductCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductCount(v)
		return nil
	case syncjob.FieldImageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageCount(v)
		return nil
	case syncjob.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedCount(v)
		return nil
	case syncjob.FieldPushedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPushedCount(v)
		return nil
	case syncjob.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedCount(v)
		return nil
	case syncjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case syncjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case syncjob.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxRetries(v)
		return nil
	case syncjob.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case syncjob.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case syncjob.FieldNextRetryAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRetryAt(v)
		return nil
	case syncjob.FieldApprovedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApprovedAt(v)
		return nil
	case syncjob.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case syncjob.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case syncjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case syncjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncJobMutation) AddedFields() []string {
	var fields []string
	if m.addproduct_count != nil {
		fields = append(fields, syncjob.FieldProductCount)
	}
	if m.addimage_count != nil {
		fields = append(fields, syncjob.FieldImageCount)
	}
	if m.addprocessed_count != nil {
		fields = append(fields, syncjob.FieldProcessedCount)
	}
	if m.addpushed_count != nil {
		fields = append(fields, syncjob.FieldPushedCount)
	}
	if m.addfailed_count != nil {
		fields = append(fields, syncjob.FieldFailedCount)
	}
	if m.addretry_count != nil {
		fields = append(fields, syncjob.FieldRetryCount)
	}
	if m.addmax_retries != nil {
		fields = append(fields, syncjob.FieldMaxRetries)
	}
	if m.addtokens_used != nil {
		fields = append(fields, syncjob.FieldTokensUsed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case syncjob.FieldProductCount:
		return m.AddedProductCount()
	case syncjob.FieldImageCount:
		return m.AddedImageCount()
	case syncjob.FieldProcessedCount:
		return m.AddedProcessedCount()
	case syncjob.FieldPushedCount:
		return m.AddedPushedCount()
	case syncjob.FieldFailedCount:
		return m.AddedFailedCount()
	case syncjob.FieldRetryCount:
		return m.AddedRetryCount()
	case syncjob.FieldMaxRetries:
		return m.AddedMaxRetries()
	case syncjob.FieldTokensUsed:
		return m.AddedTokensUsed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case syncjob.FieldProductCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProductCount(v)
		return nil
	case syncjob.FieldImageCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddImageCount(v)
		return nil
	case syncjob.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedCount(v)
		return nil
	case syncjob.FieldPushedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPushedCount(v)
		return nil
	case syncjob.FieldFailedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedCount(v)
		return nil
	case syncjob.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	case syncjob.FieldMaxRetries:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxRetries(v)
		return nil
	case syncjob.FieldTokensUsed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	}
	return fmt.Errorf("unknown SyncJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncjob.FieldStoreDomain) {
		fields = append(fields, syncjob.FieldStoreDomain)
	}
	if m.FieldCleared(syncjob.FieldFolder) {
		fields = append(fields, syncjob.FieldFolder)
	}
	if m.FieldCleared(syncjob.FieldPresetID) {
		fields = append(fields, syncjob.FieldPresetID)
	}
	if m.FieldCleared(syncjob.FieldCustomPrompt) {
		fields = append(fields, syncjob.FieldCustomPrompt)
	}
	if m.FieldCleared(syncjob.FieldLastError) {
		fields = append(fields, syncjob.FieldLastError)
	}
	if m.FieldCleared(syncjob.FieldNextRetryAt) {
		fields = append(fields, syncjob.FieldNextRetryAt)
	}
	if m.FieldCleared(syncjob.FieldApprovedAt) {
		fields = append(fields, syncjob.FieldApprovedAt)
	}
	if m.FieldCleared(syncjob.FieldCompletedAt) {
		fields = append(fields, syncjob.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncJobMutation) ClearField(name string) error {
	switch name {
	case syncjob.FieldStoreDomain:
		m.ClearStoreDomain()
		return nil
	case syncjob.FieldFolder:
		m.ClearFolder()
		return nil
	case syncjob.FieldPresetID:
		m.ClearPresetID()
		return nil
	case syncjob.FieldCustomPrompt:
		m.ClearCustomPrompt()
		return nil
	case syncjob.FieldLastError:
		m.ClearLastError()
		return nil
	case syncjob.FieldNextRetryAt:
		m.ClearNextRetryAt()
		return nil
	case syncjob.FieldApprovedAt:
		m.ClearApprovedAt()
		return nil
	case syncjob.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncJobMutation) ResetField(name string) error {
	switch name {
	case syncjob.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case syncjob.FieldStoreID:
		m.ResetStoreID()
		return nil
	case syncjob.FieldName:
		m.ResetName()
		return nil
	case syncjob.FieldStoreDomain:
		m.ResetStoreDomain()
		return nil
	case syncjob.FieldFolder:
		m.ResetFolder()
		return nil
	case syncjob.FieldTriggerType:
		m.ResetTriggerType()
		return nil
	case syncjob.FieldPresetType:
		m.ResetPresetType()
		return nil
	case syncjob.FieldPresetID:
		m.ResetPresetID()
		return nil
	case syncjob.FieldCustomPrompt:
		m.ResetCustomPrompt()
		return nil
	case syncjob.FieldProductCount:
		m.ResetProductCount()
		return nil
	case syncjob.FieldImageCount:
		m.ResetImageCount()
		return nil
	case syncjob.FieldProcessedCount:
		m.ResetProcessedCount()
		return nil
	case syncjob.FieldPushedCount:
		m.ResetPushedCount()
		return nil
	case syncjob.FieldFailedCount:
		m.ResetFailedCount()
		return nil
	case syncjob.FieldStatus:
		m.ResetStatus()
		return nil
	case syncjob.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case syncjob.FieldMaxRetries:
		m.ResetMaxRetries()
		return nil
	case syncjob.FieldLastError:
		m.ResetLastError()
		return nil
	case syncjob.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case syncjob.FieldNextRetryAt:
		m.ResetNextRetryAt()
		return nil
	case syncjob.FieldApprovedAt:
		m.ResetApprovedAt()
		return nil
	case syncjob.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case syncjob.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case syncjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case syncjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.items != nil {
		edges = append(edges, syncjob.EdgeItems)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case syncjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.items))
		for id := range m.items {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removeditems != nil {
		edges = append(edges, syncjob.EdgeItems)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case syncjob.EdgeItems:
		ids := make([]ent.Value, 0, len(m.removeditems))
		for id := range m.removeditems {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareditems {
		edges = append(edges, syncjob.EdgeItems)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncJobMutation) EdgeCleared(name string) bool {
	switch name {
	case syncjob.EdgeItems:
		return m.cleareditems
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncJobMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SyncJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncJobMutation) ResetEdge(name string) error {
	switch name {
	case syncjob.EdgeItems:
		m.ResetItems()
		return nil
	}
	return fmt.Errorf("unknown SyncJob edge %s", name)
}

// TokenAccountMutation represents an operation that mutates the TokenAccount nodes in the graph.
type TokenAccountMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	owner_id      *uuid.UUID
	balance       *int64
	addbalance    *int64
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*TokenAccount, error)
	predicates    []predicate.TokenAccount
}

var _ ent.Mutation = (*TokenAccountMutation)(nil)

// tokenaccountOption allows management of the mutation configuration using functional options.
type tokenaccountOption func(*TokenAccountMutation)

// newTokenAccountMutation creates new mutation for the TokenAccount entity.
func newTokenAccountMutation(c config, op Op, opts ...tokenaccountOption) *TokenAccountMutation {
	m := &TokenAccountMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenAccountID sets the ID field of the mutation.
func withTokenAccountID(id uuid.UUID) tokenaccountOption {
	return func(m *TokenAccountMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenAccount
		)
		m.oldValue = func(ctx context.Context) (*TokenAccount, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenAccount.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenAccount sets the old TokenAccount of the mutation.
func withTokenAccount(node *TokenAccount) tokenaccountOption {
	return func(m *TokenAccountMutation) {
		m.oldValue = func(context.Context) (*TokenAccount, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenAccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenAccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenAccount entities.
func (m *TokenAccountMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenAccountMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenAccountMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenAccount.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *TokenAccountMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TokenAccountMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the TokenAccount entity.
// If the TokenAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAccountMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TokenAccountMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetBalance sets the "balance" field.
func (m *TokenAccountMutation) SetBalance(i int64) {
	m.balance = &i
	m.addbalance = nil
}

// Balance returns the value of the "balance" field in the mutation.
func (m *TokenAccountMutation) Balance() (r int64, exists bool) {
	v := m.balance
	if v == nil {
		return
	}
	return *v, true
}

// OldBalance returns the old "balance" field's value of the TokenAccount entity.
// If the TokenAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAccountMutation) OldBalance(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBalance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBalance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBalance: %w", err)
	}
	return oldValue.Balance, nil
}

// AddBalance adds i to the "balance" field.
func (m *TokenAccountMutation) AddBalance(i int64) {
	if m.addbalance != nil {
		*m.addbalance += i
	} else {
		m.addbalance = &i
	}
}

// AddedBalance returns the value that was added to the "balance" field in this mutation.
func (m *TokenAccountMutation) AddedBalance() (r int64, exists bool) {
	v := m.addbalance
	if v == nil {
		return
	}
	return *v, true
}

// ResetBalance resets all changes to the "balance" field.
func (m *TokenAccountMutation) ResetBalance() {
	m.balance = nil
	m.addbalance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenAccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenAccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenAccount entity.
// If the TokenAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenAccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TokenAccountMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TokenAccountMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TokenAccount entity.
// If the TokenAccount object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenAccountMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TokenAccountMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TokenAccountMutation builder.
func (m *TokenAccountMutation) Where(ps ...predicate.TokenAccount) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenAccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenAccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenAccount, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenAccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenAccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenAccount).
func (m *TokenAccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenAccountMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.owner_id != nil {
		fields = append(fields, tokenaccount.FieldOwnerID)
	}
	if m.balance != nil {
		fields = append(fields, tokenaccount.FieldBalance)
	}
	if m.created_at != nil {
		fields = append(fields, tokenaccount.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tokenaccount.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenAccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenaccount.FieldOwnerID:
		return m.OwnerID()
	case tokenaccount.FieldBalance:
		return m.Balance()
	case tokenaccount.FieldCreatedAt:
		return m.CreatedAt()
	case tokenaccount.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenAccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenaccount.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case tokenaccount.FieldBalance:
		return m.OldBalance(ctx)
	case tokenaccount.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tokenaccount.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenAccount field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenAccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenaccount.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case tokenaccount.FieldBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBalance(v)
		return nil
	case tokenaccount.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tokenaccount.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenAccount field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenAccountMutation) AddedFields() []string {
	var fields []string
	if m.addbalance != nil {
		fields = append(fields, tokenaccount.FieldBalance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenAccountMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokenaccount.FieldBalance:
		return m.AddedBalance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenAccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokenaccount.FieldBalance:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBalance(v)
		return nil
	}
	return fmt.Errorf("unknown TokenAccount numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenAccountMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenAccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenAccountMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TokenAccount nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenAccountMutation) ResetField(name string) error {
	switch name {
	case tokenaccount.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case tokenaccount.FieldBalance:
		m.ResetBalance()
		return nil
	case tokenaccount.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tokenaccount.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenAccount field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenAccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenAccountMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenAccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenAccountMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenAccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenAccountMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenAccountMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenAccount unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenAccountMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenAccount edge %s", name)
}

// TokenReservationMutation represents an operation that mutates the TokenReservation nodes in the graph.
type TokenReservationMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	owner_id           *uuid.UUID
	job_id             *uuid.UUID
	amount_reserved    *int64
	addamount_reserved *int64
	amount_consumed    *int64
	addamount_consumed *int64
	created_at         *time.Time
	released_at        *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TokenReservation, error)
	predicates         []predicate.TokenReservation
}

var _ ent.Mutation = (*TokenReservationMutation)(nil)

// tokenreservationOption allows management of the mutation configuration using functional options.
type tokenreservationOption func(*TokenReservationMutation)

// newTokenReservationMutation creates new mutation for the TokenReservation entity.
func newTokenReservationMutation(c config, op Op, opts ...tokenreservationOption) *TokenReservationMutation {
	m := &TokenReservationMutation{
		config:        c,
		op:            op,
		typ:           TypeTokenReservation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTokenReservationID sets the ID field of the mutation.
func withTokenReservationID(id uuid.UUID) tokenreservationOption {
	return func(m *TokenReservationMutation) {
		var (
			err   error
			once  sync.Once
			value *TokenReservation
		)
		m.oldValue = func(ctx context.Context) (*TokenReservation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TokenReservation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTokenReservation sets the old TokenReservation of the mutation.
func withTokenReservation(node *TokenReservation) tokenreservationOption {
	return func(m *TokenReservationMutation) {
		m.oldValue = func(context.Context) (*TokenReservation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TokenReservationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TokenReservationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TokenReservation entities.
func (m *TokenReservationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TokenReservationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TokenReservationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TokenReservation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOwnerID sets the "owner_id" field.
func (m *TokenReservationMutation) SetOwnerID(u uuid.UUID) {
	m.owner_id = &u
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *TokenReservationMutation) OwnerID() (r uuid.UUID, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the TokenReservation entity.
// If the TokenReservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenReservationMutation) OldOwnerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *TokenReservationMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetJobID sets the "job_id" field.
func (m *TokenReservationMutation) SetJobID(u uuid.UUID) {
	m.job_id = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *TokenReservationMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the TokenReservation entity.
// If the TokenReservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenReservationMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *TokenReservationMutation) ResetJobID() {
	m.job_id = nil
}

// SetAmountReserved sets the "amount_reserved" field.
func (m *TokenReservationMutation) SetAmountReserved(i int64) {
	m.amount_reserved = &i
	m.addamount_reserved = nil
}

// AmountReserved returns the value of the "amount_reserved" field in the mutation.
func (m *TokenReservationMutation) AmountReserved() (r int64, exists bool) {
	v := m.amount_reserved
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountReserved returns the old "amount_reserved" field's value of the TokenReservation entity.
// If the TokenReservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenReservationMutation) OldAmountReserved(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountReserved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountReserved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountReserved: %w", err)
	}
	return oldValue.AmountReserved, nil
}

// AddAmountReserved adds i to the "amount_reserved" field.
func (m *TokenReservationMutation) AddAmountReserved(i int64) {
	if m.addamount_reserved != nil {
		*m.addamount_reserved += i
	} else {
		m.addamount_reserved = &i
	}
}

// AddedAmountReserved returns the value that was added to the "amount_reserved" field in this mutation.
func (m *TokenReservationMutation) AddedAmountReserved() (r int64, exists bool) {
	v := m.addamount_reserved
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountReserved resets all changes to the "amount_reserved" field.
func (m *TokenReservationMutation) ResetAmountReserved() {
	m.amount_reserved = nil
	m.addamount_reserved = nil
}

// SetAmountConsumed sets the "amount_consumed" field.
func (m *TokenReservationMutation) SetAmountConsumed(i int64) {
	m.amount_consumed = &i
	m.addamount_consumed = nil
}

// AmountConsumed returns the value of the "amount_consumed" field in the mutation.
func (m *TokenReservationMutation) AmountConsumed() (r int64, exists bool) {
	v := m.amount_consumed
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountConsumed returns the old "amount_consumed" field's value of the TokenReservation entity.
// If the TokenReservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenReservationMutation) OldAmountConsumed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountConsumed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountConsumed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountConsumed: %w", err)
	}
	return oldValue.AmountConsumed, nil
}

// AddAmountConsumed adds i to the "amount_consumed" field.
func (m *TokenReservationMutation) AddAmountConsumed(i int64) {
	if m.addamount_consumed != nil {
		*m.addamount_consumed += i
	} else {
		m.addamount_consumed = &i
	}
}

// AddedAmountConsumed returns the value that was added to the "amount_consumed" field in this mutation.
func (m *TokenReservationMutation) AddedAmountConsumed() (r int64, exists bool) {
	v := m.addamount_consumed
	if v == nil {
		return
	}
	return *v, true
}

// ResetAmountConsumed resets all changes to the "amount_consumed" field.
func (m *TokenReservationMutation) ResetAmountConsumed() {
	m.amount_consumed = nil
	m.addamount_consumed = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TokenReservationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TokenReservationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TokenReservation entity.
// If the TokenReservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenReservationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TokenReservationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetReleasedAt sets the "released_at" field.
func (m *TokenReservationMutation) SetReleasedAt(t time.Time) {
	m.released_at = &t
}

// ReleasedAt returns the value of the "released_at" field in the mutation.
func (m *TokenReservationMutation) ReleasedAt() (r time.Time, exists bool) {
	v := m.released_at
	if v == nil {
		return
	}
	return *v, true
}

// OldReleasedAt returns the old "released_at" field's value of the TokenReservation entity.
// If the TokenReservation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TokenReservationMutation) OldReleasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReleasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReleasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReleasedAt: %w", err)
	}
	return oldValue.ReleasedAt, nil
}

// ClearReleasedAt clears the value of the "released_at" field.
func (m *TokenReservationMutation) ClearReleasedAt() {
	m.released_at = nil
	m.clearedFields[tokenreservation.FieldReleasedAt] = struct{}{}
}

// ReleasedAtCleared returns if the "released_at" field was cleared in this mutation.
func (m *TokenReservationMutation) ReleasedAtCleared() bool {
	_, ok := m.clearedFields[tokenreservation.FieldReleasedAt]
	return ok
}

// ResetReleasedAt resets all changes to the "released_at" field.
func (m *TokenReservationMutation) ResetReleasedAt() {
	m.released_at = nil
	delete(m.clearedFields, tokenreservation.FieldReleasedAt)
}

// Where appends a list predicates to the TokenReservationMutation builder.
func (m *TokenReservationMutation) Where(ps ...predicate.TokenReservation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TokenReservationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TokenReservationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TokenReservation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TokenReservationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TokenReservationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TokenReservation).
func (m *TokenReservationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TokenReservationMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.owner_id != nil {
		fields = append(fields, tokenreservation.FieldOwnerID)
	}
	if m.job_id != nil {
		fields = append(fields, tokenreservation.FieldJobID)
	}
	if m.amount_reserved != nil {
		fields = append(fields, tokenreservation.FieldAmountReserved)
	}
	if m.amount_consumed != nil {
		fields = append(fields, tokenreservation.FieldAmountConsumed)
	}
	if m.created_at != nil {
		fields = append(fields, tokenreservation.FieldCreatedAt)
	}
	if m.released_at != nil {
		fields = append(fields, tokenreservation.FieldReleasedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TokenReservationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tokenreservation.FieldOwnerID:
		return m.OwnerID()
	case tokenreservation.FieldJobID:
		return m.JobID()
	case tokenreservation.FieldAmountReserved:
		return m.AmountReserved()
	case tokenreservation.FieldAmountConsumed:
		return m.AmountConsumed()
	case tokenreservation.FieldCreatedAt:
		return m.CreatedAt()
	case tokenreservation.FieldReleasedAt:
		return m.ReleasedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TokenReservationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tokenreservation.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case tokenreservation.FieldJobID:
		return m.OldJobID(ctx)
	case tokenreservation.FieldAmountReserved:
		return m.OldAmountReserved(ctx)
	case tokenreservation.FieldAmountConsumed:
		return m.OldAmountConsumed(ctx)
	case tokenreservation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tokenreservation.FieldReleasedAt:
		return m.OldReleasedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TokenReservation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenReservationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tokenreservation.FieldOwnerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case tokenreservation.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case tokenreservation.FieldAmountReserved:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountReserved(v)
		return nil
	case tokenreservation.FieldAmountConsumed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountConsumed(v)
		return nil
	case tokenreservation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tokenreservation.FieldReleasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReleasedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TokenReservation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TokenReservationMutation) AddedFields() []string {
	var fields []string
	if m.addamount_reserved != nil {
		fields = append(fields, tokenreservation.FieldAmountReserved)
	}
	if m.addamount_consumed != nil {
		fields = append(fields, tokenreservation.FieldAmountConsumed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TokenReservationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tokenreservation.FieldAmountReserved:
		return m.AddedAmountReserved()
	case tokenreservation.FieldAmountConsumed:
		return m.AddedAmountConsumed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TokenReservationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tokenreservation.FieldAmountReserved:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountReserved(v)
		return nil
	case tokenreservation.FieldAmountConsumed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAmountConsumed(v)
		return nil
	}
	return fmt.Errorf("unknown TokenReservation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TokenReservationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tokenreservation.FieldReleasedAt) {
		fields = append(fields, tokenreservation.FieldReleasedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TokenReservationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TokenReservationMutation) ClearField(name string) error {
	switch name {
	case tokenreservation.FieldReleasedAt:
		m.ClearReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenReservation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TokenReservationMutation) ResetField(name string) error {
	switch name {
	case tokenreservation.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case tokenreservation.FieldJobID:
		m.ResetJobID()
		return nil
	case tokenreservation.FieldAmountReserved:
		m.ResetAmountReserved()
		return nil
	case tokenreservation.FieldAmountConsumed:
		m.ResetAmountConsumed()
		return nil
	case tokenreservation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tokenreservation.FieldReleasedAt:
		m.ResetReleasedAt()
		return nil
	}
	return fmt.Errorf("unknown TokenReservation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TokenReservationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TokenReservationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TokenReservationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TokenReservationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TokenReservationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TokenReservationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TokenReservationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TokenReservation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TokenReservationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TokenReservation edge %s", name)
}
