// Code generated by ent, DO NOT EDIT.

package jobitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldJobID, v))
}

// ExternalProductID applies equality check predicate on the "external_product_id" field. It's identical to ExternalProductIDEQ.
func ExternalProductID(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldExternalProductID, v))
}

// ExternalImageID applies equality check predicate on the "external_image_id" field. It's identical to ExternalImageIDEQ.
func ExternalImageID(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldExternalImageID, v))
}

// OriginalURL applies equality check predicate on the "original_url" field. It's identical to OriginalURLEQ.
func OriginalURL(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldOriginalURL, v))
}

// OptimizedURL applies equality check predicate on the "optimized_url" field. It's identical to OptimizedURLEQ.
func OptimizedURL(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldOptimizedURL, v))
}

// OptimizedStoragePath applies equality check predicate on the "optimized_storage_path" field. It's identical to OptimizedStoragePathEQ.
func OptimizedStoragePath(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldOptimizedStoragePath, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldStatus, v))
}

// PushAttempts applies equality check predicate on the "push_attempts" field. It's identical to PushAttemptsEQ.
func PushAttempts(v int) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldPushAttempts, v))
}

// LastPushError applies equality check predicate on the "last_push_error" field. It's identical to LastPushErrorEQ.
func LastPushError(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldLastPushError, v))
}

// PushRetryable applies equality check predicate on the "push_retryable" field. It's identical to PushRetryableEQ.
func PushRetryable(v bool) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldPushRetryable, v))
}

// PushedAt applies equality check predicate on the "pushed_at" field. It's identical to PushedAtEQ.
func PushedAt(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldPushedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldJobID, vs...))
}

// ExternalProductIDEQ applies the EQ predicate on the "external_product_id" field.
func ExternalProductIDEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldExternalProductID, v))
}

// ExternalProductIDNEQ applies the NEQ predicate on the "external_product_id" field.
func ExternalProductIDNEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldExternalProductID, v))
}

// ExternalProductIDIn applies the In predicate on the "external_product_id" field.
func ExternalProductIDIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldExternalProductID, vs...))
}

// ExternalProductIDNotIn applies the NotIn predicate on the "external_product_id" field.
func ExternalProductIDNotIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldExternalProductID, vs...))
}

// ExternalProductIDGT applies the GT predicate on the "external_product_id" field.
func ExternalProductIDGT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldExternalProductID, v))
}

// ExternalProductIDGTE applies the GTE predicate on the "external_product_id" field.
func ExternalProductIDGTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldExternalProductID, v))
}

// ExternalProductIDLT applies the LT predicate on the "external_product_id" field.
func ExternalProductIDLT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldExternalProductID, v))
}

// ExternalProductIDLTE applies the LTE predicate on the "external_product_id" field.
func ExternalProductIDLTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldExternalProductID, v))
}

// ExternalProductIDContains applies the Contains predicate on the "external_product_id" field.
func ExternalProductIDContains(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContains(FieldExternalProductID, v))
}

// ExternalProductIDHasPrefix applies the HasPrefix predicate on the "external_product_id" field.
func ExternalProductIDHasPrefix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasPrefix(FieldExternalProductID, v))
}

// ExternalProductIDHasSuffix applies the HasSuffix predicate on the "external_product_id" field.
func ExternalProductIDHasSuffix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasSuffix(FieldExternalProductID, v))
}

// ExternalProductIDEqualFold applies the EqualFold predicate on the "external_product_id" field.
func ExternalProductIDEqualFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEqualFold(FieldExternalProductID, v))
}

// ExternalProductIDContainsFold applies the ContainsFold predicate on the "external_product_id" field.
func ExternalProductIDContainsFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContainsFold(FieldExternalProductID, v))
}

// ExternalImageIDEQ applies the EQ predicate on the "external_image_id" field.
func ExternalImageIDEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldExternalImageID, v))
}

// ExternalImageIDNEQ applies the NEQ predicate on the "external_image_id" field.
func ExternalImageIDNEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldExternalImageID, v))
}

// ExternalImageIDIn applies the In predicate on the "external_image_id" field.
func ExternalImageIDIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldExternalImageID, vs...))
}

// ExternalImageIDNotIn applies the NotIn predicate on the "external_image_id" field.
func ExternalImageIDNotIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldExternalImageID, vs...))
}

// ExternalImageIDGT applies the GT predicate on the "external_image_id" field.
func ExternalImageIDGT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldExternalImageID, v))
}

// ExternalImageIDGTE applies the GTE predicate on the "external_image_id" field.
func ExternalImageIDGTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldExternalImageID, v))
}

// ExternalImageIDLT applies the LT predicate on the "external_image_id" field.
func ExternalImageIDLT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldExternalImageID, v))
}

// ExternalImageIDLTE applies the LTE predicate on the "external_image_id" field.
func ExternalImageIDLTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldExternalImageID, v))
}

// ExternalImageIDContains applies the Contains predicate on the "external_image_id" field.
func ExternalImageIDContains(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContains(FieldExternalImageID, v))
}

// ExternalImageIDHasPrefix applies the HasPrefix predicate on the "external_image_id" field.
func ExternalImageIDHasPrefix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasPrefix(FieldExternalImageID, v))
}

// ExternalImageIDHasSuffix applies the HasSuffix predicate on the "external_image_id" field.
func ExternalImageIDHasSuffix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasSuffix(FieldExternalImageID, v))
}

// ExternalImageIDEqualFold applies the EqualFold predicate on the "external_image_id" field.
func ExternalImageIDEqualFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEqualFold(FieldExternalImageID, v))
}

// ExternalImageIDContainsFold applies the ContainsFold predicate on the "external_image_id" field.
func ExternalImageIDContainsFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContainsFold(FieldExternalImageID, v))
}

// OriginalURLEQ applies the EQ predicate on the "original_url" field.
func OriginalURLEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldOriginalURL, v))
}

// OriginalURLNEQ applies the NEQ predicate on the "original_url" field.
func OriginalURLNEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldOriginalURL, v))
}

// OriginalURLIn applies the In predicate on the "original_url" field.
func OriginalURLIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldOriginalURL, vs...))
}

// OriginalURLNotIn applies the NotIn predicate on the "original_url" field.
func OriginalURLNotIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldOriginalURL, vs...))
}

// OriginalURLGT applies the GT predicate on the "original_url" field.
func OriginalURLGT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldOriginalURL, v))
}

// OriginalURLGTE applies the GTE predicate on the "original_url" field.
func OriginalURLGTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldOriginalURL, v))
}

// OriginalURLLT applies the LT predicate on the "original_url" field.
func OriginalURLLT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldOriginalURL, v))
}

// OriginalURLLTE applies the LTE predicate on the "original_url" field.
func OriginalURLLTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldOriginalURL, v))
}

// OriginalURLContains applies the Contains predicate on the "original_url" field.
func OriginalURLContains(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContains(FieldOriginalURL, v))
}

// OriginalURLHasPrefix applies the HasPrefix predicate on the "original_url" field.
func OriginalURLHasPrefix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasPrefix(FieldOriginalURL, v))
}

// OriginalURLHasSuffix applies the HasSuffix predicate on the "original_url" field.
func OriginalURLHasSuffix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasSuffix(FieldOriginalURL, v))
}

// OriginalURLEqualFold applies the EqualFold predicate on the "original_url" field.
func OriginalURLEqualFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEqualFold(FieldOriginalURL, v))
}

// OriginalURLContainsFold applies the ContainsFold predicate on the "original_url" field.
func OriginalURLContainsFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContainsFold(FieldOriginalURL, v))
}

// OptimizedURLEQ applies the EQ predicate on the "optimized_url" field.
func OptimizedURLEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldOptimizedURL, v))
}

// OptimizedURLNEQ applies the NEQ predicate on the "optimized_url" field.
func OptimizedURLNEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldOptimizedURL, v))
}

// OptimizedURLIn applies the In predicate on the "optimized_url" field.
func OptimizedURLIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldOptimizedURL, vs...))
}

// OptimizedURLNotIn applies the NotIn predicate on the "optimized_url" field.
func OptimizedURLNotIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldOptimizedURL, vs...))
}

// OptimizedURLGT applies the GT predicate on the "optimized_url" field.
func OptimizedURLGT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldOptimizedURL, v))
}

// OptimizedURLGTE applies the GTE predicate on the "optimized_url" field.
func OptimizedURLGTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldOptimizedURL, v))
}

// OptimizedURLLT applies the LT predicate on the "optimized_url" field.
func OptimizedURLLT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldOptimizedURL, v))
}

// OptimizedURLLTE applies the LTE predicate on the "optimized_url" field.
func OptimizedURLLTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldOptimizedURL, v))
}

// OptimizedURLContains applies the Contains predicate on the "optimized_url" field.
func OptimizedURLContains(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContains(FieldOptimizedURL, v))
}

// OptimizedURLHasPrefix applies the HasPrefix predicate on the "optimized_url" field.
func OptimizedURLHasPrefix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasPrefix(FieldOptimizedURL, v))
}

// OptimizedURLHasSuffix applies the HasSuffix predicate on the "optimized_url" field.
func OptimizedURLHasSuffix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasSuffix(FieldOptimizedURL, v))
}

// OptimizedURLIsNil applies the IsNil predicate on the "optimized_url" field.
func OptimizedURLIsNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldIsNull(FieldOptimizedURL))
}

// OptimizedURLNotNil applies the NotNil predicate on the "optimized_url" field.
func OptimizedURLNotNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldNotNull(FieldOptimizedURL))
}

// OptimizedURLEqualFold applies the EqualFold predicate on the "optimized_url" field.
func OptimizedURLEqualFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEqualFold(FieldOptimizedURL, v))
}

// OptimizedURLContainsFold applies the ContainsFold predicate on the "optimized_url" field.
func OptimizedURLContainsFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContainsFold(FieldOptimizedURL, v))
}

// OptimizedStoragePathEQ applies the EQ predicate on the "optimized_storage_path" field.
func OptimizedStoragePathEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathNEQ applies the NEQ predicate on the "optimized_storage_path" field.
func OptimizedStoragePathNEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathIn applies the In predicate on the "optimized_storage_path" field.
func OptimizedStoragePathIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldOptimizedStoragePath, vs...))
}

// OptimizedStoragePathNotIn applies the NotIn predicate on the "optimized_storage_path" field.
func OptimizedStoragePathNotIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldOptimizedStoragePath, vs...))
}

// OptimizedStoragePathGT applies the GT predicate on the "optimized_storage_path" field.
func OptimizedStoragePathGT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathGTE applies the GTE predicate on the "optimized_storage_path" field.
func OptimizedStoragePathGTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathLT applies the LT predicate on the "optimized_storage_path" field.
func OptimizedStoragePathLT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathLTE applies the LTE predicate on the "optimized_storage_path" field.
func OptimizedStoragePathLTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathContains applies the Contains predicate on the "optimized_storage_path" field.
func OptimizedStoragePathContains(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContains(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathHasPrefix applies the HasPrefix predicate on the "optimized_storage_path" field.
func OptimizedStoragePathHasPrefix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasPrefix(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathHasSuffix applies the HasSuffix predicate on the "optimized_storage_path" field.
func OptimizedStoragePathHasSuffix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasSuffix(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathIsNil applies the IsNil predicate on the "optimized_storage_path" field.
func OptimizedStoragePathIsNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldIsNull(FieldOptimizedStoragePath))
}

// OptimizedStoragePathNotNil applies the NotNil predicate on the "optimized_storage_path" field.
func OptimizedStoragePathNotNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldNotNull(FieldOptimizedStoragePath))
}

// OptimizedStoragePathEqualFold applies the EqualFold predicate on the "optimized_storage_path" field.
func OptimizedStoragePathEqualFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEqualFold(FieldOptimizedStoragePath, v))
}

// OptimizedStoragePathContainsFold applies the ContainsFold predicate on the "optimized_storage_path" field.
func OptimizedStoragePathContainsFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContainsFold(FieldOptimizedStoragePath, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContainsFold(FieldStatus, v))
}

// PushAttemptsEQ applies the EQ predicate on the "push_attempts" field.
func PushAttemptsEQ(v int) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldPushAttempts, v))
}

// PushAttemptsNEQ applies the NEQ predicate on the "push_attempts" field.
func PushAttemptsNEQ(v int) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldPushAttempts, v))
}

// PushAttemptsIn applies the In predicate on the "push_attempts" field.
func PushAttemptsIn(vs ...int) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldPushAttempts, vs...))
}

// PushAttemptsNotIn applies the NotIn predicate on the "push_attempts" field.
func PushAttemptsNotIn(vs ...int) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldPushAttempts, vs...))
}

// PushAttemptsGT applies the GT predicate on the "push_attempts" field.
func PushAttemptsGT(v int) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldPushAttempts, v))
}

// PushAttemptsGTE applies the GTE predicate on the "push_attempts" field.
func PushAttemptsGTE(v int) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldPushAttempts, v))
}

// PushAttemptsLT applies the LT predicate on the "push_attempts" field.
func PushAttemptsLT(v int) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldPushAttempts, v))
}

// PushAttemptsLTE applies the LTE predicate on the "push_attempts" field.
func PushAttemptsLTE(v int) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldPushAttempts, v))
}

// LastPushErrorEQ applies the EQ predicate on the "last_push_error" field.
func LastPushErrorEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldLastPushError, v))
}

// LastPushErrorNEQ applies the NEQ predicate on the "last_push_error" field.
func LastPushErrorNEQ(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldLastPushError, v))
}

// LastPushErrorIn applies the In predicate on the "last_push_error" field.
func LastPushErrorIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldLastPushError, vs...))
}

// LastPushErrorNotIn applies the NotIn predicate on the "last_push_error" field.
func LastPushErrorNotIn(vs ...string) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldLastPushError, vs...))
}

// LastPushErrorGT applies the GT predicate on the "last_push_error" field.
func LastPushErrorGT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldLastPushError, v))
}

// LastPushErrorGTE applies the GTE predicate on the "last_push_error" field.
func LastPushErrorGTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldLastPushError, v))
}

// LastPushErrorLT applies the LT predicate on the "last_push_error" field.
func LastPushErrorLT(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldLastPushError, v))
}

// LastPushErrorLTE applies the LTE predicate on the "last_push_error" field.
func LastPushErrorLTE(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldLastPushError, v))
}

// LastPushErrorContains applies the Contains predicate on the "last_push_error" field.
func LastPushErrorContains(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContains(FieldLastPushError, v))
}

// LastPushErrorHasPrefix applies the HasPrefix predicate on the "last_push_error" field.
func LastPushErrorHasPrefix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasPrefix(FieldLastPushError, v))
}

// LastPushErrorHasSuffix applies the HasSuffix predicate on the "last_push_error" field.
func LastPushErrorHasSuffix(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldHasSuffix(FieldLastPushError, v))
}

// LastPushErrorIsNil applies the IsNil predicate on the "last_push_error" field.
func LastPushErrorIsNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldIsNull(FieldLastPushError))
}

// LastPushErrorNotNil applies the NotNil predicate on the "last_push_error" field.
func LastPushErrorNotNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldNotNull(FieldLastPushError))
}

// LastPushErrorEqualFold applies the EqualFold predicate on the "last_push_error" field.
func LastPushErrorEqualFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldEqualFold(FieldLastPushError, v))
}

// LastPushErrorContainsFold applies the ContainsFold predicate on the "last_push_error" field.
func LastPushErrorContainsFold(v string) predicate.JobItem {
	return predicate.JobItem(sql.FieldContainsFold(FieldLastPushError, v))
}

// PushRetryableEQ applies the EQ predicate on the "push_retryable" field.
func PushRetryableEQ(v bool) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldPushRetryable, v))
}

// PushRetryableNEQ applies the NEQ predicate on the "push_retryable" field.
func PushRetryableNEQ(v bool) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldPushRetryable, v))
}

// PushedAtEQ applies the EQ predicate on the "pushed_at" field.
func PushedAtEQ(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldPushedAt, v))
}

// PushedAtNEQ applies the NEQ predicate on the "pushed_at" field.
func PushedAtNEQ(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldPushedAt, v))
}

// PushedAtIn applies the In predicate on the "pushed_at" field.
func PushedAtIn(vs ...time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldPushedAt, vs...))
}

// PushedAtNotIn applies the NotIn predicate on the "pushed_at" field.
func PushedAtNotIn(vs ...time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldPushedAt, vs...))
}

// PushedAtGT applies the GT predicate on the "pushed_at" field.
func PushedAtGT(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldPushedAt, v))
}

// PushedAtGTE applies the GTE predicate on the "pushed_at" field.
func PushedAtGTE(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldPushedAt, v))
}

// PushedAtLT applies the LT predicate on the "pushed_at" field.
func PushedAtLT(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldPushedAt, v))
}

// PushedAtLTE applies the LTE predicate on the "pushed_at" field.
func PushedAtLTE(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldPushedAt, v))
}

// PushedAtIsNil applies the IsNil predicate on the "pushed_at" field.
func PushedAtIsNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldIsNull(FieldPushedAt))
}

// PushedAtNotNil applies the NotNil predicate on the "pushed_at" field.
func PushedAtNotNil() predicate.JobItem {
	return predicate.JobItem(sql.FieldNotNull(FieldPushedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.JobItem {
	return predicate.JobItem(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobItem {
	return predicate.JobItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.SyncJob) predicate.JobItem {
	return predicate.JobItem(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobItem) predicate.JobItem {
	return predicate.JobItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobItem) predicate.JobItem {
	return predicate.JobItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobItem) predicate.JobItem {
	return predicate.JobItem(sql.NotPredicates(p))
}
