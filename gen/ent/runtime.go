// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/optipix/imagesync/db/ent/schema"
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/gen/ent/syncjob"
	"github.com/optipix/imagesync/gen/ent/tokenaccount"
	"github.com/optipix/imagesync/gen/ent/tokenreservation"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobitemFields := schema.JobItem{}.Fields()
	_ = jobitemFields
	// jobitemDescExternalProductID is the schema descriptor for external_product_id field.
	jobitemDescExternalProductID := jobitemFields[2].Descriptor()
	// jobitem.ExternalProductIDValidator is a validator for the "external_product_id" field. It is called by the builders before save.
	jobitem.ExternalProductIDValidator = jobitemDescExternalProductID.Validators[0].(func(string) error)
	// jobitemDescExternalImageID is the schema descriptor for external_image_id field.
	jobitemDescExternalImageID := jobitemFields[3].Descriptor()
	// jobitem.ExternalImageIDValidator is a validator for the "external_image_id" field. It is called by the builders before save.
	jobitem.ExternalImageIDValidator = jobitemDescExternalImageID.Validators[0].(func(string) error)
	// jobitemDescOriginalURL is the schema descriptor for original_url field.
	jobitemDescOriginalURL := jobitemFields[4].Descriptor()
	// jobitem.OriginalURLValidator is a validator for the "original_url" field. It is called by the builders before save.
	jobitem.OriginalURLValidator = jobitemDescOriginalURL.Validators[0].(func(string) error)
	// jobitemDescStatus is the schema descriptor for status field.
	jobitemDescStatus := jobitemFields[7].Descriptor()
	// jobitem.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	jobitem.StatusValidator = func() func(string) error {
		validators := jobitemDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// jobitemDescPushAttempts is the schema descriptor for push_attempts field.
	jobitemDescPushAttempts := jobitemFields[8].Descriptor()
	// jobitem.DefaultPushAttempts holds the default value on creation for the push_attempts field.
	jobitem.DefaultPushAttempts = jobitemDescPushAttempts.Default.(int)
	// jobitem.PushAttemptsValidator is a validator for the "push_attempts" field. It is called by the builders before save.
	jobitem.PushAttemptsValidator = jobitemDescPushAttempts.Validators[0].(func(int) error)
	// jobitemDescPushRetryable is the schema descriptor for push_retryable field.
	jobitemDescPushRetryable := jobitemFields[10].Descriptor()
	// jobitem.DefaultPushRetryable holds the default value on creation for the push_retryable field.
	jobitem.DefaultPushRetryable = jobitemDescPushRetryable.Default.(bool)
	// jobitemDescCreatedAt is the schema descriptor for created_at field.
	jobitemDescCreatedAt := jobitemFields[12].Descriptor()
	// jobitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobitem.DefaultCreatedAt = jobitemDescCreatedAt.Default.(func() time.Time)
	// jobitemDescUpdatedAt is the schema descriptor for updated_at field.
	jobitemDescUpdatedAt := jobitemFields[13].Descriptor()
	// jobitem.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobitem.DefaultUpdatedAt = jobitemDescUpdatedAt.Default.(func() time.Time)
	// jobitem.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobitem.UpdateDefaultUpdatedAt = jobitemDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobitemDescID is the schema descriptor for id field.
	jobitemDescID := jobitemFields[0].Descriptor()
	// jobitem.DefaultID holds the default value on creation for the id field.
	jobitem.DefaultID = jobitemDescID.Default.(func() uuid.UUID)
	syncjobFields := schema.SyncJob{}.Fields()
	_ = syncjobFields
	// syncjobDescName is the schema descriptor for name field.
	syncjobDescName := syncjobFields[3].Descriptor()
	// syncjob.NameValidator is a validator for the "name" field. It is called by the builders before save.
	syncjob.NameValidator = syncjobDescName.Validators[0].(func(string) error)
	// syncjobDescTriggerType is the schema descriptor for trigger_type field.
	syncjobDescTriggerType := syncjobFields[6].Descriptor()
	// syncjob.TriggerTypeValidator is a validator for the "trigger_type" field. It is called by the builders before save.
	syncjob.TriggerTypeValidator = func() func(string) error {
		validators := syncjobDescTriggerType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(trigger_type string) error {
			for _, fn := range fns {
				if err := fn(trigger_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// syncjobDescPresetType is the schema descriptor for preset_type field.
	syncjobDescPresetType := syncjobFields[7].Descriptor()
	// syncjob.PresetTypeValidator is a validator for the "preset_type" field. It is called by the builders before save.
	syncjob.PresetTypeValidator = func() func(string) error {
		validators := syncjobDescPresetType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(preset_type string) error {
			for _, fn := range fns {
				if err := fn(preset_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// syncjobDescProductCount is the schema descriptor for product_count field.
	syncjobDescProductCount := syncjobFields[10].Descriptor()
	// syncjob.ProductCountValidator is a validator for the "product_count" field. It is called by the builders before save.
	syncjob.ProductCountValidator = syncjobDescProductCount.Validators[0].(func(int) error)
	// syncjobDescImageCount is the schema descriptor for image_count field.
	syncjobDescImageCount := syncjobFields[11].Descriptor()
	// syncjob.ImageCountValidator is a validator for the "image_count" field. It is called by the builders before save.
	syncjob.ImageCountValidator = syncjobDescImageCount.Validators[0].(func(int) error)
	// syncjobDescProcessedCount is the schema descriptor for processed_count field.
	syncjobDescProcessedCount := syncjobFields[12].Descriptor()
	// syncjob.DefaultProcessedCount holds the default value on creation for the processed_count field.
	syncjob.DefaultProcessedCount = syncjobDescProcessedCount.Default.(int)
	// syncjob.ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	syncjob.ProcessedCountValidator = syncjobDescProcessedCount.Validators[0].(func(int) error)
	// syncjobDescPushedCount is the schema descriptor for pushed_count field.
	syncjobDescPushedCount := syncjobFields[13].Descriptor()
	// syncjob.DefaultPushedCount holds the default value on creation for the pushed_count field.
	syncjob.DefaultPushedCount = syncjobDescPushedCount.Default.(int)
	// syncjob.PushedCountValidator is a validator for the "pushed_count" field. It is called by the builders before save.
	syncjob.PushedCountValidator = syncjobDescPushedCount.Validators[0].(func(int) error)
	// syncjobDescFailedCount is the schema descriptor for failed_count field.
	syncjobDescFailedCount := syncjobFields[14].Descriptor()
	// syncjob.DefaultFailedCount holds the default value on creation for the failed_count field.
	syncjob.DefaultFailedCount = syncjobDescFailedCount.Default.(int)
	// syncjob.FailedCountValidator is a validator for the "failed_count" field. It is called by the builders before save.
	syncjob.FailedCountValidator = syncjobDescFailedCount.Validators[0].(func(int) error)
	// syncjobDescStatus is the schema descriptor for status field.
	syncjobDescStatus := syncjobFields[15].Descriptor()
	// syncjob.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	syncjob.StatusValidator = func() func(string) error {
		validators := syncjobDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// syncjobDescRetryCount is the schema descriptor for retry_count field.
	syncjobDescRetryCount := syncjobFields[16].Descriptor()
	// syncjob.DefaultRetryCount holds the default value on creation for the retry_count field.
	syncjob.DefaultRetryCount = syncjobDescRetryCount.Default.(int)
	// syncjob.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	syncjob.RetryCountValidator = syncjobDescRetryCount.Validators[0].(func(int) error)
	// syncjobDescMaxRetries is the schema descriptor for max_retries field.
	syncjobDescMaxRetries := syncjobFields[17].Descriptor()
	// syncjob.DefaultMaxRetries holds the default value on creation for the max_retries field.
	syncjob.DefaultMaxRetries = syncjobDescMaxRetries.Default.(int)
	// syncjob.MaxRetriesValidator is a validator for the "max_retries" field. It is called by the builders before save.
	syncjob.MaxRetriesValidator = syncjobDescMaxRetries.Validators[0].(func(int) error)
	// syncjobDescTokensUsed is the schema descriptor for tokens_used field.
	syncjobDescTokensUsed := syncjobFields[19].Descriptor()
	// syncjob.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	syncjob.DefaultTokensUsed = syncjobDescTokensUsed.Default.(int64)
	// syncjob.TokensUsedValidator is a validator for the "tokens_used" field. It is called by the builders before save.
	syncjob.TokensUsedValidator = syncjobDescTokensUsed.Validators[0].(func(int64) error)
	// syncjobDescCreatedAt is the schema descriptor for created_at field.
	syncjobDescCreatedAt := syncjobFields[24].Descriptor()
	// syncjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	syncjob.DefaultCreatedAt = syncjobDescCreatedAt.Default.(func() time.Time)
	// syncjobDescUpdatedAt is the schema descriptor for updated_at field.
	syncjobDescUpdatedAt := syncjobFields[25].Descriptor()
	// syncjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	syncjob.DefaultUpdatedAt = syncjobDescUpdatedAt.Default.(func() time.Time)
	// syncjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	syncjob.UpdateDefaultUpdatedAt = syncjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// syncjobDescID is the schema descriptor for id field.
	syncjobDescID := syncjobFields[0].Descriptor()
	// syncjob.DefaultID holds the default value on creation for the id field.
	syncjob.DefaultID = syncjobDescID.Default.(func() uuid.UUID)
	tokenaccountFields := schema.TokenAccount{}.Fields()
	_ = tokenaccountFields
	// tokenaccountDescBalance is the schema descriptor for balance field.
	tokenaccountDescBalance := tokenaccountFields[2].Descriptor()
	// tokenaccount.DefaultBalance holds the default value on creation for the balance field.
	tokenaccount.DefaultBalance = tokenaccountDescBalance.Default.(int64)
	// tokenaccount.BalanceValidator is a validator for the "balance" field. It is called by the builders before save.
	tokenaccount.BalanceValidator = tokenaccountDescBalance.Validators[0].(func(int64) error)
	// tokenaccountDescCreatedAt is the schema descriptor for created_at field.
	tokenaccountDescCreatedAt := tokenaccountFields[3].Descriptor()
	// tokenaccount.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenaccount.DefaultCreatedAt = tokenaccountDescCreatedAt.Default.(func() time.Time)
	// tokenaccountDescUpdatedAt is the schema descriptor for updated_at field.
	tokenaccountDescUpdatedAt := tokenaccountFields[4].Descriptor()
	// tokenaccount.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tokenaccount.DefaultUpdatedAt = tokenaccountDescUpdatedAt.Default.(func() time.Time)
	// tokenaccount.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tokenaccount.UpdateDefaultUpdatedAt = tokenaccountDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tokenaccountDescID is the schema descriptor for id field.
	tokenaccountDescID := tokenaccountFields[0].Descriptor()
	// tokenaccount.DefaultID holds the default value on creation for the id field.
	tokenaccount.DefaultID = tokenaccountDescID.Default.(func() uuid.UUID)
	tokenreservationFields := schema.TokenReservation{}.Fields()
	_ = tokenreservationFields
	// tokenreservationDescAmountReserved is the schema descriptor for amount_reserved field.
	tokenreservationDescAmountReserved := tokenreservationFields[3].Descriptor()
	// tokenreservation.AmountReservedValidator is a validator for the "amount_reserved" field. It is called by the builders before save.
	tokenreservation.AmountReservedValidator = tokenreservationDescAmountReserved.Validators[0].(func(int64) error)
	// tokenreservationDescAmountConsumed is the schema descriptor for amount_consumed field.
	tokenreservationDescAmountConsumed := tokenreservationFields[4].Descriptor()
	// tokenreservation.DefaultAmountConsumed holds the default value on creation for the amount_consumed field.
	tokenreservation.DefaultAmountConsumed = tokenreservationDescAmountConsumed.Default.(int64)
	// tokenreservation.AmountConsumedValidator is a validator for the "amount_consumed" field. It is called by the builders before save.
	tokenreservation.AmountConsumedValidator = tokenreservationDescAmountConsumed.Validators[0].(func(int64) error)
	// tokenreservationDescCreatedAt is the schema descriptor for created_at field.
	tokenreservationDescCreatedAt := tokenreservationFields[5].Descriptor()
	// tokenreservation.DefaultCreatedAt holds the default value on creation for the created_at field.
	tokenreservation.DefaultCreatedAt = tokenreservationDescCreatedAt.Default.(func() time.Time)
	// tokenreservationDescID is the schema descriptor for id field.
	tokenreservationDescID := tokenreservationFields[0].Descriptor()
	// tokenreservation.DefaultID holds the default value on creation for the id field.
	tokenreservation.DefaultID = tokenreservationDescID.Default.(func() uuid.UUID)
}
