// Code generated by ent, DO NOT EDIT.

package syncjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the syncjob type in the database.
	Label = "sync_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldOwnerID holds the string denoting the owner_id field in the database.
	FieldOwnerID = "owner_id"
	// FieldStoreID holds the string denoting the store_id field in the database.
	FieldStoreID = "store_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStoreDomain holds the string denoting the store_domain field in the database.
	FieldStoreDomain = "store_domain"
	// FieldFolder holds the string denoting the folder field in the database.
	FieldFolder = "folder"
	// FieldTriggerType holds the string denoting the trigger_type field in the database.
	FieldTriggerType = "trigger_type"
	// FieldPresetType holds the string denoting the preset_type field in the database.
	FieldPresetType = "preset_type"
	// FieldPresetID holds the string denoting the preset_id field in the database.
	FieldPresetID = "preset_id"
	// FieldCustomPrompt holds the string denoting the custom_prompt field in the database.
	FieldCustomPrompt = "custom_prompt"
	// FieldProductCount holds the string denoting the product_count field in the database.
	FieldProductCount = "product_count"
	// FieldImageCount holds the string denoting the image_count field in the database.
	FieldImageCount = "image_count"
	// FieldProcessedCount holds the string denoting the processed_count field in the database.
	FieldProcessedCount = "processed_count"
	// FieldPushedCount holds the string denoting the pushed_count field in the database.
	FieldPushedCount = "pushed_count"
	// FieldFailedCount holds the string denoting the failed_count field in the database.
	FieldFailedCount = "failed_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldRetryCount holds the string denoting the retry_count field in the database.
	FieldRetryCount = "retry_count"
	// FieldMaxRetries holds the string denoting the max_retries field in the database.
	FieldMaxRetries = "max_retries"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldTokensUsed holds the string denoting the tokens_used field in the database.
	FieldTokensUsed = "tokens_used"
	// FieldNextRetryAt holds the string denoting the next_retry_at field in the database.
	FieldNextRetryAt = "next_retry_at"
	// FieldApprovedAt holds the string denoting the approved_at field in the database.
	FieldApprovedAt = "approved_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldExpiresAt holds the string denoting the expires_at field in the database.
	FieldExpiresAt = "expires_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeItems holds the string denoting the items edge name in mutations.
	EdgeItems = "items"
	// Table holds the table name of the syncjob in the database.
	Table = "sync_job"
	// ItemsTable is the table that holds the items relation/edge.
	ItemsTable = "job_item"
	// ItemsInverseTable is the table name for the JobItem entity.
	// It exists in this package in order to avoid circular dependency with the "jobitem" package.
	ItemsInverseTable = "job_item"
	// ItemsColumn is the table column denoting the items relation/edge.
	ItemsColumn = "job_id"
)

// Columns holds all SQL columns for syncjob fields.
var Columns = []string{
	FieldID,
	FieldOwnerID,
	FieldStoreID,
	FieldName,
	FieldStoreDomain,
	FieldFolder,
	FieldTriggerType,
	FieldPresetType,
	FieldPresetID,
	FieldCustomPrompt,
	FieldProductCount,
	FieldImageCount,
	FieldProcessedCount,
	FieldPushedCount,
	FieldFailedCount,
	FieldStatus,
	FieldRetryCount,
	FieldMaxRetries,
	FieldLastError,
	FieldTokensUsed,
	FieldNextRetryAt,
	FieldApprovedAt,
	FieldCompletedAt,
	FieldExpiresAt,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// TriggerTypeValidator is a validator for the "trigger_type" field. It is called by the builders before save.
	TriggerTypeValidator func(string) error
	// PresetTypeValidator is a validator for the "preset_type" field. It is called by the builders before save.
	PresetTypeValidator func(string) error
	// ProductCountValidator is a validator for the "product_count" field. It is called by the builders before save.
	ProductCountValidator func(int) error
	// ImageCountValidator is a validator for the "image_count" field. It is called by the builders before save.
	ImageCountValidator func(int) error
	// DefaultProcessedCount holds the default value on creation for the "processed_count" field.
	DefaultProcessedCount int
	// ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	ProcessedCountValidator func(int) error
	// DefaultPushedCount holds the default value on creation for the "pushed_count" field.
	DefaultPushedCount int
	// PushedCountValidator is a validator for the "pushed_count" field. It is called by the builders before save.
	PushedCountValidator func(int) error
	// DefaultFailedCount holds the default value on creation for the "failed_count" field.
	DefaultFailedCount int
	// FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	FailedCountValidator func(int) error
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultRetryCount holds the default value on creation for the "retry_count" field.
	DefaultRetryCount int
	// RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	RetryCountValidator func(int) error
	// DefaultMaxRetries holds the default value on creation for the "max_retries" field.
	DefaultMaxRetries int
	// MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	MaxRetriesValidator func(int) error
	// DefaultTokensUsed holds the default value on creation for the "tokens_used" field.
	DefaultTokensUsed int64
	// TokensUsedValidator is a validator for the "tokens_used" field. It is called by the builders before save.
	TokensUsedValidator func(int64) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the SyncJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOwnerID orders the results by the owner_id field.
func ByOwnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOwnerID, opts...).ToFunc()
}

// ByStoreID orders the results by the store_id field.
func ByStoreID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStoreDomain orders the results by the store_domain field.
func ByStoreDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStoreDomain, opts...).ToFunc()
}

// ByFolder orders the results by the folder field.
func ByFolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFolder, opts...).ToFunc()
}

// ByTriggerType orders the results by the trigger_type field.
func ByTriggerType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTriggerType, opts...).ToFunc()
}

// ByPresetType orders the results by the preset_type field.
func ByPresetType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresetType, opts...).ToFunc()
}

// ByPresetID orders the results by the preset_id field.
func ByPresetID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPresetID, opts...).ToFunc()
}

// ByCustomPrompt orders the results by the custom_prompt field.
func ByCustomPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomPrompt, opts...).ToFunc()
}

// ByProductCount orders the results by the product_count field.
func ByProductCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProductCount, opts...).ToFunc()
}

// ByImageCount orders the results by the image_count field.
func ByImageCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldImageCount, opts...).ToFunc()
}

// ByProcessedCount orders the results by the processed_count field.
func ByProcessedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedCount, opts...).ToFunc()
}

// ByPushedCount orders the results by the pushed_count field.
func ByPushedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPushedCount, opts...).ToFunc()
}

// ByFailedCount orders the results by the failed_count field.
func ByFailedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailedCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByRetryCount orders the results by the retry_count field.
func ByRetryCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryCount, opts...).ToFunc()
}

// ByMaxRetries orders the results by the max_retries field.
func ByMaxRetries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxRetries, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByTokensUsed orders the results by the tokens_used field.
func ByTokensUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensUsed, opts...).ToFunc()
}

// ByNextRetryAt orders the results by the next_retry_at field.
func ByNextRetryAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextRetryAt, opts...).ToFunc()
}

// ByApprovedAt orders the results by the approved_at field.
func ByApprovedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldApprovedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByExpiresAt orders the results by the expires_at field.
func ByExpiresAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExpiresAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByItemsCount orders the results by items count.
func ByItemsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newItemsStep(), opts...)
	}
}

// ByItems orders the results by items terms.
func ByItems(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newItemsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newItemsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ItemsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
	)
}
