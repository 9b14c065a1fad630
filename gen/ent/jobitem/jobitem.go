// Code generated by ent, DO NOT EDIT.

package jobitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobitem type in the database.
	Label = "job_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldExternalProductID holds the string denoting the external_product_id field in the database.
	FieldExternalProductID = "external_product_id"
	// FieldExternalImageID holds the string denoting the external_image_id field in the database.
	FieldExternalImageID = "external_image_id"
	// FieldOriginalURL holds the string denoting the original_url field in the database.
	FieldOriginalURL = "original_url"
	// FieldOptimizedURL holds the string denoting the optimized_url field in the database.
	FieldOptimizedURL = "optimized_url"
	// FieldOptimizedStoragePath holds the string denoting the optimized_storage_path field in the database.
	FieldOptimizedStoragePath = "optimized_storage_path"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldPushAttempts holds the string denoting the push_attempts field in the database.
	FieldPushAttempts = "push_attempts"
	// FieldLastPushError holds the string denoting the last_push_error field in the database.
	FieldLastPushError = "last_push_error"
	// FieldPushRetryable holds the string denoting the push_retryable field in the database.
	FieldPushRetryable = "push_retryable"
	// FieldPushedAt holds the string denoting the pushed_at field in the database.
	FieldPushedAt = "pushed_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// Table holds the table name of the jobitem in the database.
	Table = "job_item"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_item"
	// JobInverseTable is the table name for the SyncJob entity.
	// It exists in this package in order to avoid circular dependency with the "syncjob" package.
	JobInverseTable = "sync_job"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
)

// Columns holds all SQL columns for jobitem fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldExternalProductID,
	FieldExternalImageID,
	FieldOriginalURL,
	FieldOptimizedURL,
	FieldOptimizedStoragePath,
	FieldStatus,
	FieldPushAttempts,
	FieldLastPushError,
	FieldPushRetryable,
	FieldPushedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// ExternalProductIDValidator is a validator for the "external_product_id" field. It is called by the builders before save.
	ExternalProductIDValidator func(string) error
	// ExternalImageIDValidator is a validator for the "external_image_id" field. It is called by the builders before save.
	ExternalImageIDValidator func(string) error
	// OriginalURLValidator is a validator for the "original_url" field. It is called by the builders before save.
	OriginalURLValidator func(string) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultPushAttempts holds the default value on creation for the "push_attempts" field.
	DefaultPushAttempts int
	// PushAttemptsValidator is a validator for the "push_attempts" field. It is called by the builders before save.
	PushAttemptsValidator func(int) error
	// DefaultPushRetryable holds the default value on creation for the "push_retryable" field.
	DefaultPushRetryable bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByExternalProductID orders the results by the external_product_id field.
func ByExternalProductID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalProductID, opts...).ToFunc()
}

// ByExternalImageID orders the results by the external_image_id field.
func ByExternalImageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalImageID, opts...).ToFunc()
}

// ByOriginalURL orders the results by the original_url field.
func ByOriginalURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalURL, opts...).ToFunc()
}

// ByOptimizedURL orders the results by the optimized_url field.
func ByOptimizedURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimizedURL, opts...).ToFunc()
}

// ByOptimizedStoragePath orders the results by the optimized_storage_path field.
func ByOptimizedStoragePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimizedStoragePath, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByPushAttempts orders the results by the push_attempts field.
func ByPushAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushAttempts, opts...).ToFunc()
}

// ByLastPushError orders the results by the last_push_error field.
func ByLastPushError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPushError, opts...).ToFunc()
}

// ByPushRetryable orders the results by the push_retryable field.
func ByPushRetryable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushRetryable, opts...).ToFunc()
}

// ByPushedAt orders the results by the pushed_at field.
func ByPushedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
