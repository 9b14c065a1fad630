// Code generated by ent, DO NOT EDIT.

package syncjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/optipix/imagesync/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldOwnerID, v))
}

// StoreID applies equality check predicate on the "store_id" field. It's identical to StoreIDEQ.
func StoreID(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldStoreID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldName, v))
}

// StoreDomain applies equality check predicate on the "store_domain" field. It's identical to StoreDomainEQ.
func StoreDomain(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldStoreDomain, v))
}

// Folder applies equality check predicate on the "folder" field. It's identical to FolderEQ.
func Folder(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldFolder, v))
}

// TriggerType applies equality check predicate on the "trigger_type" field. It's identical to TriggerTypeEQ.
func TriggerType(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldTriggerType, v))
}

// PresetType applies equality check predicate on the "preset_type" field. It's identical to PresetTypeEQ.
func PresetType(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldPresetType, v))
}

// PresetID applies equality check predicate on the "preset_id" field. It's identical to PresetIDEQ.
func PresetID(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldPresetID, v))
}

// CustomPrompt applies equality check predicate on the "custom_prompt" field. It's identical to CustomPromptEQ.
func CustomPrompt(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldCustomPrompt, v))
}

// ProductCount applies equality check predicate on the "product_count" field. It's identical to ProductCountEQ.
func ProductCount(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldProductCount, v))
}

// ImageCount applies equality check predicate on the "image_count" field. It's identical to ImageCountEQ.
func ImageCount(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldImageCount, v))
}

// ProcessedCount applies equality check predicate on the "processed_count" field. It's identical to ProcessedCountEQ.
func ProcessedCount(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldProcessedCount, v))
}

// PushedCount applies equality check predicate on the "pushed_count" field. It's identical to PushedCountEQ.
func PushedCount(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldPushedCount, v))
}

// FailedCount applies equality check predicate on the "failed_count" field. It's identical to FailedCountEQ.
func FailedCount(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldFailedCount, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldStatus, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldRetryCount, v))
}

// MaxRetries applies equality check predicate on the "max_retries" field. It's identical to MaxRetriesEQ.
func MaxRetries(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldMaxRetries, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldLastError, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldTokensUsed, v))
}

// NextRetryAt applies equality check predicate on the "next_retry_at" field. It's identical to NextRetryAtEQ.
func NextRetryAt(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldNextRetryAt, v))
}

// ApprovedAt applies equality check predicate on the "approved_at" field. It's identical to ApprovedAtEQ.
func ApprovedAt(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldApprovedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldCompletedAt, v))
}

// ExpiresAt applies equality check predicate on the "expires_at" field. It's identical to ExpiresAtEQ.
func ExpiresAt(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldExpiresAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldOwnerID, v))
}

// StoreIDEQ applies the EQ predicate on the "store_id" field.
func StoreIDEQ(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldStoreID, v))
}

// StoreIDNEQ applies the NEQ predicate on the "store_id" field.
func StoreIDNEQ(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldStoreID, v))
}

// StoreIDIn applies the In predicate on the "store_id" field.
func StoreIDIn(vs ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldStoreID, vs...))
}

// StoreIDNotIn applies the NotIn predicate on the "store_id" field.
func StoreIDNotIn(vs ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldStoreID, vs...))
}

// StoreIDGT applies the GT predicate on the "store_id" field.
func StoreIDGT(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldStoreID, v))
}

// StoreIDGTE applies the GTE predicate on the "store_id" field.
func StoreIDGTE(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldStoreID, v))
}

// StoreIDLT applies the LT predicate on the "store_id" field.
func StoreIDLT(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldStoreID, v))
}

// StoreIDLTE applies the LTE predicate on the "store_id" field.
func StoreIDLTE(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldStoreID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldName, v))
}

// StoreDomainEQ applies the EQ predicate on the "store_domain" field.
func StoreDomainEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldStoreDomain, v))
}

// StoreDomainNEQ applies the NEQ predicate on the "store_domain" field.
func StoreDomainNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldStoreDomain, v))
}

// StoreDomainIn applies the In predicate on the "store_domain" field.
func StoreDomainIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldStoreDomain, vs...))
}

// StoreDomainNotIn applies the NotIn predicate on the "store_domain" field.
func StoreDomainNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldStoreDomain, vs...))
}

// StoreDomainGT applies the GT predicate on the "store_domain" field.
func StoreDomainGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldStoreDomain, v))
}

// StoreDomainGTE applies the GTE predicate on the "store_domain" field.
func StoreDomainGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldStoreDomain, v))
}

// StoreDomainLT applies the LT predicate on the "store_domain" field.
func StoreDomainLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldStoreDomain, v))
}

// StoreDomainLTE applies the LTE predicate on the "store_domain" field.
func StoreDomainLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldStoreDomain, v))
}

// StoreDomainContains applies the Contains predicate on the "store_domain" field.
func StoreDomainContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldStoreDomain, v))
}

// StoreDomainHasPrefix applies the HasPrefix predicate on the "store_domain" field.
func StoreDomainHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldStoreDomain, v))
}

// StoreDomainHasSuffix applies the HasSuffix predicate on the "store_domain" field.
func StoreDomainHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldStoreDomain, v))
}

// StoreDomainIsNil applies the IsNil predicate on the "store_domain" field.
func StoreDomainIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldStoreDomain))
}

// StoreDomainNotNil applies the NotNil predicate on the "store_domain" field.
func StoreDomainNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldStoreDomain))
}

// StoreDomainEqualFold applies the EqualFold predicate on the "store_domain" field.
func StoreDomainEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldStoreDomain, v))
}

// StoreDomainContainsFold applies the ContainsFold predicate on the "store_domain" field.
func StoreDomainContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldStoreDomain, v))
}

// FolderEQ applies the EQ predicate on the "folder" field.
func FolderEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldFolder, v))
}

// FolderNEQ applies the NEQ predicate on the "folder" field.
func FolderNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldFolder, v))
}

// FolderIn applies the In predicate on the "folder" field.
func FolderIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldFolder, vs...))
}

// FolderNotIn applies the NotIn predicate on the "folder" field.
func FolderNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldFolder, vs...))
}

// FolderGT applies the GT predicate on the "folder" field.
func FolderGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldFolder, v))
}

// FolderGTE applies the GTE predicate on the "folder" field.
func FolderGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldFolder, v))
}

// FolderLT applies the LT predicate on the "folder" field.
func FolderLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldFolder, v))
}

// FolderLTE applies the LTE predicate on the "folder" field.
func FolderLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldFolder, v))
}

// FolderContains applies the Contains predicate on the "folder" field.
func FolderContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldFolder, v))
}

// FolderHasPrefix applies the HasPrefix predicate on the "folder" field.
func FolderHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldFolder, v))
}

// FolderHasSuffix applies the HasSuffix predicate on the "folder" field.
func FolderHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldFolder, v))
}

// FolderIsNil applies the IsNil predicate on the "folder" field.
func FolderIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldFolder))
}

// FolderNotNil applies the NotNil predicate on the "folder" field.
func FolderNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldFolder))
}

// FolderEqualFold applies the EqualFold predicate on the "folder" field.
func FolderEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldFolder, v))
}

// FolderContainsFold applies the ContainsFold predicate on the "folder" field.
func FolderContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldFolder, v))
}

// TriggerTypeEQ applies the EQ predicate on the "trigger_type" field.
func TriggerTypeEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldTriggerType, v))
}

// TriggerTypeNEQ applies the NEQ predicate on the "trigger_type" field.
func TriggerTypeNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldTriggerType, v))
}

// TriggerTypeIn applies the In predicate on the "trigger_type" field.
func TriggerTypeIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldTriggerType, vs...))
}

// TriggerTypeNotIn applies the NotIn predicate on the "trigger_type" field.
func TriggerTypeNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldTriggerType, vs...))
}

// TriggerTypeGT applies the GT predicate on the "trigger_type" field.
func TriggerTypeGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldTriggerType, v))
}

// TriggerTypeGTE applies the GTE predicate on the "trigger_type" field.
func TriggerTypeGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldTriggerType, v))
}

// TriggerTypeLT applies the LT predicate on the "trigger_type" field.
func TriggerTypeLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldTriggerType, v))
}

// TriggerTypeLTE applies the LTE predicate on the "trigger_type" field.
func TriggerTypeLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldTriggerType, v))
}

// TriggerTypeContains applies the Contains predicate on the "trigger_type" field.
func TriggerTypeContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldTriggerType, v))
}

// TriggerTypeHasPrefix applies the HasPrefix predicate on the "trigger_type" field.
func TriggerTypeHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldTriggerType, v))
}

// TriggerTypeHasSuffix applies the HasSuffix predicate on the "trigger_type" field.
func TriggerTypeHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldTriggerType, v))
}

// TriggerTypeEqualFold applies the EqualFold predicate on the "trigger_type" field.
func TriggerTypeEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldTriggerType, v))
}

// TriggerTypeContainsFold applies the ContainsFold predicate on the "trigger_type" field.
func TriggerTypeContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldTriggerType, v))
}

// PresetTypeEQ applies the EQ predicate on the "preset_type" field.
func PresetTypeEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldPresetType, v))
}

// PresetTypeNEQ applies the NEQ predicate on the "preset_type" field.
func PresetTypeNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldPresetType, v))
}

// PresetTypeIn applies the In predicate on the "preset_type" field.
func PresetTypeIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldPresetType, vs...))
}

// PresetTypeNotIn applies the NotIn predicate on the "preset_type" field.
func PresetTypeNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldPresetType, vs...))
}

// PresetTypeGT applies the GT predicate on the "preset_type" field.
func PresetTypeGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldPresetType, v))
}

// PresetTypeGTE applies the GTE predicate on the "preset_type" field.
func PresetTypeGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldPresetType, v))
}

// PresetTypeLT applies the LT predicate on the "preset_type" field.
func PresetTypeLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldPresetType, v))
}

// PresetTypeLTE applies the LTE predicate on the "preset_type" field.
func PresetTypeLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldPresetType, v))
}

// PresetTypeContains applies the Contains predicate on the "preset_type" field.
func PresetTypeContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldPresetType, v))
}

// PresetTypeHasPrefix applies the HasPrefix predicate on the "preset_type" field.
func PresetTypeHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldPresetType, v))
}

// PresetTypeHasSuffix applies the HasSuffix predicate on the "preset_type" field.
func PresetTypeHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldPresetType, v))
}

// PresetTypeEqualFold applies the EqualFold predicate on the "preset_type" field.
func PresetTypeEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldPresetType, v))
}

// PresetTypeContainsFold applies the ContainsFold predicate on the "preset_type" field.
func PresetTypeContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldPresetType, v))
}

// PresetIDEQ applies the EQ predicate on the "preset_id" field.
func PresetIDEQ(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldPresetID, v))
}

// PresetIDNEQ applies the NEQ predicate on the "preset_id" field.
func PresetIDNEQ(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldPresetID, v))
}

// PresetIDIn applies the In predicate on the "preset_id" field.
func PresetIDIn(vs ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldPresetID, vs...))
}

// PresetIDNotIn applies the NotIn predicate on the "preset_id" field.
func PresetIDNotIn(vs ...uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldPresetID, vs...))
}

// PresetIDGT applies the GT predicate on the "preset_id" field.
func PresetIDGT(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldPresetID, v))
}

// PresetIDGTE applies the GTE predicate on the "preset_id" field.
func PresetIDGTE(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldPresetID, v))
}

// PresetIDLT applies the LT predicate on the "preset_id" field.
func PresetIDLT(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldPresetID, v))
}

// PresetIDLTE applies the LTE predicate on the "preset_id" field.
func PresetIDLTE(v uuid.UUID) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldPresetID, v))
}

// PresetIDIsNil applies the IsNil predicate on the "preset_id" field.
func PresetIDIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldPresetID))
}

// PresetIDNotNil applies the NotNil predicate on the "preset_id" field.
func PresetIDNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldPresetID))
}

// CustomPromptEQ applies the EQ predicate on the "custom_prompt" field.
func CustomPromptEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldCustomPrompt, v))
}

// CustomPromptNEQ applies the NEQ predicate on the "custom_prompt" field.
func CustomPromptNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldCustomPrompt, v))
}

// CustomPromptIn applies the In predicate on the "custom_prompt" field.
func CustomPromptIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldCustomPrompt, vs...))
}

// CustomPromptNotIn applies the NotIn predicate on the "custom_prompt" field.
func CustomPromptNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldCustomPrompt, vs...))
}

// CustomPromptGT applies the GT predicate on the "custom_prompt" field.
func CustomPromptGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldCustomPrompt, v))
}

// CustomPromptGTE applies the GTE predicate on the "custom_prompt" field.
func CustomPromptGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldCustomPrompt, v))
}

// CustomPromptLT applies the LT predicate on the "custom_prompt" field.
func CustomPromptLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldCustomPrompt, v))
}

// CustomPromptLTE applies the LTE predicate on the "custom_prompt" field.
func CustomPromptLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldCustomPrompt, v))
}

// CustomPromptContains applies the Contains predicate on the "custom_prompt" field.
func CustomPromptContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldCustomPrompt, v))
}

// CustomPromptHasPrefix applies the HasPrefix predicate on the "custom_prompt" field.
func CustomPromptHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldCustomPrompt, v))
}

// CustomPromptHasSuffix applies the HasSuffix predicate on the "custom_prompt" field.
func CustomPromptHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldCustomPrompt, v))
}

// CustomPromptIsNil applies the IsNil predicate on the "custom_prompt" field.
func CustomPromptIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldCustomPrompt))
}

// CustomPromptNotNil applies the NotNil predicate on the "custom_prompt" field.
func CustomPromptNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldCustomPrompt))
}

// CustomPromptEqualFold applies the EqualFold predicate on the "custom_prompt" field.
func CustomPromptEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldCustomPrompt, v))
}

// CustomPromptContainsFold applies the ContainsFold predicate on the "custom_prompt" field.
func CustomPromptContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldCustomPrompt, v))
}

// ProductCountEQ applies the EQ predicate on the "product_count" field.
func ProductCountEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldProductCount, v))
}

// ProductCountNEQ applies the NEQ predicate on the "product_count" field.
func ProductCountNEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldProductCount, v))
}

// ProductCountIn applies the In predicate on the "product_count" field.
func ProductCountIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldProductCount, vs...))
}

// ProductCountNotIn applies the NotIn predicate on the "product_count" field.
func ProductCountNotIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldProductCount, vs...))
}

// ProductCountGT applies the GT predicate on the "product_count" field.
func ProductCountGT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldProductCount, v))
}

// ProductCountGTE applies the GTE predicate on the "product_count" field.
func ProductCountGTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldProductCount, v))
}

// ProductCountLT applies the LT predicate on the "product_count" field.
func ProductCountLT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldProductCount, v))
}

// ProductCountLTE applies the LTE predicate on the "product_count" field.
func ProductCountLTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldProductCount, v))
}

// ImageCountEQ applies the EQ predicate on the "image_count" field.
func ImageCountEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldImageCount, v))
}

// ImageCountNEQ applies the NEQ predicate on the "image_count" field.
func ImageCountNEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldImageCount, v))
}

// ImageCountIn applies the In predicate on the "image_count" field.
func ImageCountIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldImageCount, vs...))
}

// ImageCountNotIn applies the NotIn predicate on the "image_count" field.
func ImageCountNotIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldImageCount, vs...))
}

// ImageCountGT applies the GT predicate on the "image_count" field.
func ImageCountGT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldImageCount, v))
}

// ImageCountGTE applies the GTE predicate on the "image_count" field.
func ImageCountGTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldImageCount, v))
}

// ImageCountLT applies the LT predicate on the "image_count" field.
func ImageCountLT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldImageCount, v))
}

// ImageCountLTE applies the LTE predicate on the "image_count" field.
func ImageCountLTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldImageCount, v))
}

// ProcessedCountEQ applies the EQ predicate on the "processed_count" field.
func ProcessedCountEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldProcessedCount, v))
}

// ProcessedCountNEQ applies the NEQ predicate on the "processed_count" field.
func ProcessedCountNEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldProcessedCount, v))
}

// ProcessedCountIn applies the In predicate on the "processed_count" field.
func ProcessedCountIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldProcessedCount, vs...))
}

// ProcessedCountNotIn applies the NotIn predicate on the "processed_count" field.
func ProcessedCountNotIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldProcessedCount, vs...))
}

// ProcessedCountGT applies the GT predicate on the "processed_count" field.
func ProcessedCountGT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldProcessedCount, v))
}

// ProcessedCountGTE applies the GTE predicate on the "processed_count" field.
func ProcessedCountGTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldProcessedCount, v))
}

// ProcessedCountLT applies the LT predicate on the "processed_count" field.
func ProcessedCountLT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldProcessedCount, v))
}

// ProcessedCountLTE applies the LTE predicate on the "processed_count" field.
func ProcessedCountLTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldProcessedCount, v))
}

// PushedCountEQ applies the EQ predicate on the "pushed_count" field.
func PushedCountEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldPushedCount, v))
}

// PushedCountNEQ applies the NEQ predicate on the "pushed_count" field.
func PushedCountNEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldPushedCount, v))
}

// PushedCountIn applies the In predicate on the "pushed_count" field.
func PushedCountIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldPushedCount, vs...))
}

// PushedCountNotIn applies the NotIn predicate on the "pushed_count" field.
func PushedCountNotIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldPushedCount, vs...))
}

// PushedCountGT applies the GT predicate on the "pushed_count" field.
func PushedCountGT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldPushedCount, v))
}

// PushedCountGTE applies the GTE predicate on the "pushed_count" field.
func PushedCountGTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldPushedCount, v))
}

// PushedCountLT applies the LT predicate on the "pushed_count" field.
func PushedCountLT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldPushedCount, v))
}

// PushedCountLTE applies the LTE predicate on the "pushed_count" field.
func PushedCountLTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldPushedCount, v))
}

// FailedCountEQ applies the EQ predicate on the "failed_count" field.
func FailedCountEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldFailedCount, v))
}

// FailedCountNEQ applies the NEQ predicate on the "failed_count" field.
func FailedCountNEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldFailedCount, v))
}

// FailedCountIn applies the In predicate on the "failed_count" field.
func FailedCountIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldFailedCount, vs...))
}

// FailedCountNotIn applies the NotIn predicate on the "failed_count" field.
func FailedCountNotIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldFailedCount, vs...))
}

// FailedCountGT applies the GT predicate on the "failed_count" field.
func FailedCountGT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldFailedCount, v))
}

// FailedCountGTE applies the GTE predicate on the "failed_count" field.
func FailedCountGTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldFailedCount, v))
}

// FailedCountLT applies the LT predicate on the "failed_count" field.
func FailedCountLT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldFailedCount, v))
}

// FailedCountLTE applies the LTE predicate on the "failed_count" field.
func FailedCountLTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldFailedCount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldStatus, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldRetryCount, v))
}

// MaxRetriesEQ applies the EQ predicate on the "max_retries" field.
func MaxRetriesEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldMaxRetries, v))
}

// MaxRetriesNEQ applies the NEQ predicate on the "max_retries" field.
func MaxRetriesNEQ(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldMaxRetries, v))
}

// MaxRetriesIn applies the In predicate on the "max_retries" field.
func MaxRetriesIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldMaxRetries, vs...))
}

// MaxRetriesNotIn applies the NotIn predicate on the "max_retries" field.
func MaxRetriesNotIn(vs ...int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldMaxRetries, vs...))
}

// MaxRetriesGT applies the GT predicate on the "max_retries" field.
func MaxRetriesGT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldMaxRetries, v))
}

// MaxRetriesGTE applies the GTE predicate on the "max_retries" field.
func MaxRetriesGTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldMaxRetries, v))
}

// MaxRetriesLT applies the LT predicate on the "max_retries" field.
func MaxRetriesLT(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldMaxRetries, v))
}

// MaxRetriesLTE applies the LTE predicate on the "max_retries" field.
func MaxRetriesLTE(v int) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldMaxRetries, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorIsNil applies the IsNil predicate on the "last_error" field.
func LastErrorIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldLastError))
}

// LastErrorNotNil applies the NotNil predicate on the "last_error" field.
func LastErrorNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldLastError))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldContainsFold(FieldLastError, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int64) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldTokensUsed, v))
}

// NextRetryAtEQ applies the EQ predicate on the "next_retry_at" field.
func NextRetryAtEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldNextRetryAt, v))
}

// NextRetryAtNEQ applies the NEQ predicate on the "next_retry_at" field.
func NextRetryAtNEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldNextRetryAt, v))
}

// NextRetryAtIn applies the In predicate on the "next_retry_at" field.
func NextRetryAtIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldNextRetryAt, vs...))
}

// NextRetryAtNotIn applies the NotIn predicate on the "next_retry_at" field.
func NextRetryAtNotIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldNextRetryAt, vs...))
}

// NextRetryAtGT applies the GT predicate on the "next_retry_at" field.
func NextRetryAtGT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldNextRetryAt, v))
}

// NextRetryAtGTE applies the GTE predicate on the "next_retry_at" field.
func NextRetryAtGTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldNextRetryAt, v))
}

// NextRetryAtLT applies the LT predicate on the "next_retry_at" field.
func NextRetryAtLT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldNextRetryAt, v))
}

// NextRetryAtLTE applies the LTE predicate on the "next_retry_at" field.
func NextRetryAtLTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldNextRetryAt, v))
}

// NextRetryAtIsNil applies the IsNil predicate on the "next_retry_at" field.
func NextRetryAtIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldNextRetryAt))
}

// NextRetryAtNotNil applies the NotNil predicate on the "next_retry_at" field.
func NextRetryAtNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldNextRetryAt))
}

// ApprovedAtEQ applies the EQ predicate on the "approved_at" field.
func ApprovedAtEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldApprovedAt, v))
}

// ApprovedAtNEQ applies the NEQ predicate on the "approved_at" field.
func ApprovedAtNEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldApprovedAt, v))
}

// ApprovedAtIn applies the In predicate on the "approved_at" field.
func ApprovedAtIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldApprovedAt, vs...))
}

// ApprovedAtNotIn applies the NotIn predicate on the "approved_at" field.
func ApprovedAtNotIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldApprovedAt, vs...))
}

// ApprovedAtGT applies the GT predicate on the "approved_at" field.
func ApprovedAtGT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldApprovedAt, v))
}

// ApprovedAtGTE applies the GTE predicate on the "approved_at" field.
func ApprovedAtGTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldApprovedAt, v))
}

// ApprovedAtLT applies the LT predicate on the "approved_at" field.
func ApprovedAtLT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldApprovedAt, v))
}

// ApprovedAtLTE applies the LTE predicate on the "approved_at" field.
func ApprovedAtLTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldApprovedAt, v))
}

// ApprovedAtIsNil applies the IsNil predicate on the "approved_at" field.
func ApprovedAtIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldApprovedAt))
}

// ApprovedAtNotNil applies the NotNil predicate on the "approved_at" field.
func ApprovedAtNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldApprovedAt))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotNull(FieldCompletedAt))
}

// ExpiresAtEQ applies the EQ predicate on the "expires_at" field.
func ExpiresAtEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldExpiresAt, v))
}

// ExpiresAtNEQ applies the NEQ predicate on the "expires_at" field.
func ExpiresAtNEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldExpiresAt, v))
}

// ExpiresAtIn applies the In predicate on the "expires_at" field.
func ExpiresAtIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldExpiresAt, vs...))
}

// ExpiresAtNotIn applies the NotIn predicate on the "expires_at" field.
func ExpiresAtNotIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldExpiresAt, vs...))
}

// ExpiresAtGT applies the GT predicate on the "expires_at" field.
func ExpiresAtGT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldExpiresAt, v))
}

// ExpiresAtGTE applies the GTE predicate on the "expires_at" field.
func ExpiresAtGTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldExpiresAt, v))
}

// ExpiresAtLT applies the LT predicate on the "expires_at" field.
func ExpiresAtLT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldExpiresAt, v))
}

// ExpiresAtLTE applies the LTE predicate on the "expires_at" field.
func ExpiresAtLTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldExpiresAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SyncJob {
	return predicate.SyncJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.SyncJob {
	return predicate.SyncJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.JobItem) predicate.SyncJob {
	return predicate.SyncJob(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SyncJob) predicate.SyncJob {
	return predicate.SyncJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SyncJob) predicate.SyncJob {
	return predicate.SyncJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SyncJob) predicate.SyncJob {
	return predicate.SyncJob(sql.NotPredicates(p))
}
