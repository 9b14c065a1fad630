package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/gen/ent"
	"github.com/optipix/imagesync/gen/ent/syncjob"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/utils"
)

// CreateItemParams is one target image enumerated at job creation.
type CreateItemParams struct {
	ExternalProductID string
	ExternalImageID   string
	OriginalURL       string
}

// CreateJobParams wraps parameters for creating a job with its full item set.
type CreateJobParams struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	StoreID      uuid.UUID
	Name         string
	StoreDomain  string
	Folder       string
	TriggerType  constants.TriggerType
	PresetType   constants.PresetType
	PresetID     *uuid.UUID
	CustomPrompt *string
	ProductCount int
	MaxRetries   int
	ExpiresAt    time.Time
	Items        []CreateItemParams
}

// SyncJobRepository persists jobs and performs the atomic conditional
// transitions the state machine is built on. Every transition method
// returns false when the job was not in the expected state; callers treat
// that as a lost race or an invalid command.
type SyncJobRepository interface {
	Create(ctx context.Context, params CreateJobParams) (*entity.SyncJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SyncJob, error)
	List(ctx context.Context, storeID *uuid.UUID, limit int) ([]*entity.SyncJob, error)
	ListClaimable(ctx context.Context, now time.Time, limit int) ([]*entity.SyncJob, error)
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*entity.SyncJob, error)
	Delete(ctx context.Context, id uuid.UUID) error

	ClaimProcessing(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	ClaimPushing(ctx context.Context, id uuid.UUID, now time.Time) (bool, error)
	MarkAwaitingApproval(ctx context.Context, id uuid.UUID) (bool, error)
	Approve(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Complete(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	Fail(ctx context.Context, id uuid.UUID, lastError string) (bool, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (bool, error)
	ScheduleRetry(ctx context.Context, id uuid.UUID, nextRetryAt time.Time, lastError string) (bool, error)
	Requeue(ctx context.Context, id uuid.UUID) (bool, error)

	AddProgress(ctx context.Context, id uuid.UUID, processedDelta, failedDelta int, tokensDelta int64) error
	AddPushed(ctx context.Context, id uuid.UUID, delta int) error
}

type syncJobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewSyncJobRepository(entc *ent.Client, log *slog.Logger) SyncJobRepository {
	return &syncJobRepo{ent: entc, log: log}
}

func (r *syncJobRepo) Create(ctx context.Context, params CreateJobParams) (*entity.SyncJob, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return nil, err
	}

	builder := tx.SyncJob.Create().
		SetID(params.ID).
		SetOwnerID(params.OwnerID).
		SetStoreID(params.StoreID).
		SetName(params.Name).
		SetStoreDomain(params.StoreDomain).
		SetFolder(params.Folder).
		SetTriggerType(string(params.TriggerType)).
		SetPresetType(string(params.PresetType)).
		SetNillablePresetID(params.PresetID).
		SetNillableCustomPrompt(params.CustomPrompt).
		SetProductCount(params.ProductCount).
		SetImageCount(len(params.Items)).
		SetStatus(string(constants.JobStatusPending)).
		SetMaxRetries(params.MaxRetries).
		SetExpiresAt(params.ExpiresAt)

	job, err := builder.Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		r.log.Error("sync_job create failed", "job_id", params.ID, "error", err)
		return nil, err
	}

	itemBuilders := make([]*ent.JobItemCreate, len(params.Items))
	for i, it := range params.Items {
		itemBuilders[i] = tx.JobItem.Create().
			SetJobID(job.ID).
			SetExternalProductID(it.ExternalProductID).
			SetExternalImageID(it.ExternalImageID).
			SetOriginalURL(it.OriginalURL).
			SetStatus(string(constants.ItemStatusQueued))
	}
	if _, err := tx.JobItem.CreateBulk(itemBuilders...).Save(ctx); err != nil {
		_ = tx.Rollback()
		r.log.Error("job_item bulk create failed", "job_id", job.ID, "error", err)
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	r.log.Info("sync_job created", "job_id", job.ID, "store_id", params.StoreID,
		"image_count", len(params.Items), "trigger", params.TriggerType)
	return utils.ToSyncJob(job), nil
}

func (r *syncJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.SyncJob, error) {
	job, err := r.ent.SyncJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return utils.ToSyncJob(job), nil
}

func (r *syncJobRepo) List(ctx context.Context, storeID *uuid.UUID, limit int) ([]*entity.SyncJob, error) {
	q := r.ent.SyncJob.Query()
	if storeID != nil {
		q = q.Where(syncjob.StoreID(*storeID))
	}
	rows, err := q.
		Order(ent.Desc(syncjob.FieldCreatedAt), ent.Asc(syncjob.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list sync jobs", "error", err)
		return nil, err
	}
	return utils.ToSyncJobs(rows), nil
}

// ListClaimable returns jobs a worker may try to claim: PENDING jobs whose
// backoff window has passed, and APPROVED jobs waiting for their push phase.
// next_retry_at is a hint; enforcement is this query plus the conditional
// claim update, not a scheduler.
func (r *syncJobRepo) ListClaimable(ctx context.Context, now time.Time, limit int) ([]*entity.SyncJob, error) {
	rows, err := r.ent.SyncJob.Query().
		Where(
			syncjob.Or(
				syncjob.And(
					syncjob.StatusEQ(string(constants.JobStatusPending)),
					syncjob.Or(syncjob.NextRetryAtIsNil(), syncjob.NextRetryAtLTE(now)),
				),
				syncjob.StatusEQ(string(constants.JobStatusApproved)),
			),
		).
		Order(ent.Asc(syncjob.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list claimable jobs", "error", err)
		return nil, err
	}
	return utils.ToSyncJobs(rows), nil
}

func (r *syncJobRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]*entity.SyncJob, error) {
	rows, err := r.ent.SyncJob.Query().
		Where(
			syncjob.StatusEQ(string(constants.JobStatusAwaitingApproval)),
			syncjob.ExpiresAtLTE(now),
		).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToSyncJobs(rows), nil
}

// Delete removes a job; its items go with it (exclusive ownership, cascade).
func (r *syncJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.ent.SyncJob.DeleteOneID(id).Exec(ctx)
	if err != nil && ent.IsNotFound(err) {
		return common.ErrNotFound
	}
	return err
}

// conditional transition helpers; n==0 means the WHERE clause did not match

func (r *syncJobRepo) ClaimProcessing(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusEQ(string(constants.JobStatusPending)),
			syncjob.ApprovedAtIsNil(),
			syncjob.Or(syncjob.NextRetryAtIsNil(), syncjob.NextRetryAtLTE(now)),
		).
		SetStatus(string(constants.JobStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("claim for processing failed", "job_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

// ClaimPushing moves an approved job (or a pending push-retry) into PUSHING.
func (r *syncJobRepo) ClaimPushing(ctx context.Context, id uuid.UUID, now time.Time) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusIn(string(constants.JobStatusApproved), string(constants.JobStatusPending)),
			syncjob.ApprovedAtNotNil(),
			syncjob.Or(syncjob.NextRetryAtIsNil(), syncjob.NextRetryAtLTE(now)),
		).
		SetStatus(string(constants.JobStatusPushing)).
		Save(ctx)
	if err != nil {
		r.log.Error("claim for pushing failed", "job_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *syncJobRepo) MarkAwaitingApproval(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusEQ(string(constants.JobStatusProcessing)),
		).
		SetStatus(string(constants.JobStatusAwaitingApproval)).
		Save(ctx)
	if err != nil {
		r.log.Error("mark awaiting_approval failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("sync_job awaiting approval", "job_id", id)
	}
	return n > 0, nil
}

// Approve requires the approval window to still be open; expired jobs are
// handled by the lazy-expiry pass instead.
func (r *syncJobRepo) Approve(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusEQ(string(constants.JobStatusAwaitingApproval)),
			syncjob.ExpiresAtGT(at),
		).
		SetStatus(string(constants.JobStatusApproved)).
		SetApprovedAt(at).
		Save(ctx)
	if err != nil {
		r.log.Error("approve failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("sync_job approved", "job_id", id)
	}
	return n > 0, nil
}

func (r *syncJobRepo) Complete(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusEQ(string(constants.JobStatusPushing)),
		).
		SetStatus(string(constants.JobStatusCompleted)).
		SetCompletedAt(at).
		ClearNextRetryAt().
		ClearLastError().
		Save(ctx)
	if err != nil {
		r.log.Error("complete failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("sync_job completed", "job_id", id)
	}
	return n > 0, nil
}

func (r *syncJobRepo) Fail(ctx context.Context, id uuid.UUID, lastError string) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusNotIn(
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
				string(constants.JobStatusCancelled),
			),
		).
		SetStatus(string(constants.JobStatusFailed)).
		SetLastError(lastError).
		ClearNextRetryAt().
		Save(ctx)
	if err != nil {
		r.log.Error("fail transition failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Warn("sync_job failed", "job_id", id, "last_error", lastError)
	}
	return n > 0, nil
}

func (r *syncJobRepo) Cancel(ctx context.Context, id uuid.UUID, reason string) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusNotIn(
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
				string(constants.JobStatusCancelled),
			),
		).
		SetStatus(string(constants.JobStatusCancelled)).
		SetLastError(reason).
		ClearNextRetryAt().
		Save(ctx)
	if err != nil {
		r.log.Error("cancel transition failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("sync_job cancelled", "job_id", id, "reason", reason)
	}
	return n > 0, nil
}

// ScheduleRetry loops a pushing job back to PENDING with an incremented
// retry_count and an advisory next_retry_at.
func (r *syncJobRepo) ScheduleRetry(ctx context.Context, id uuid.UUID, nextRetryAt time.Time, lastError string) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusEQ(string(constants.JobStatusPushing)),
		).
		SetStatus(string(constants.JobStatusPending)).
		AddRetryCount(1).
		SetNextRetryAt(nextRetryAt).
		SetLastError(lastError).
		Save(ctx)
	if err != nil {
		r.log.Error("schedule retry failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("sync_job retry scheduled", "job_id", id, "next_retry_at", nextRetryAt)
	}
	return n > 0, nil
}

// Requeue is the operator-facing retry of a job that failed its push phase:
// back to PENDING with a fresh retry budget.
func (r *syncJobRepo) Requeue(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.SyncJob.Update().
		Where(
			syncjob.ID(id),
			syncjob.StatusEQ(string(constants.JobStatusFailed)),
			syncjob.ApprovedAtNotNil(),
		).
		SetStatus(string(constants.JobStatusPending)).
		SetRetryCount(0).
		ClearNextRetryAt().
		ClearLastError().
		Save(ctx)
	if err != nil {
		r.log.Error("requeue failed", "job_id", id, "error", err)
		return false, err
	}
	if n > 0 {
		r.log.Info("sync_job requeued", "job_id", id)
	}
	return n > 0, nil
}

func (r *syncJobRepo) AddProgress(ctx context.Context, id uuid.UUID, processedDelta, failedDelta int, tokensDelta int64) error {
	upd := r.ent.SyncJob.Update().Where(syncjob.ID(id))
	if processedDelta != 0 {
		upd = upd.AddProcessedCount(processedDelta)
	}
	if failedDelta != 0 {
		upd = upd.AddFailedCount(failedDelta)
	}
	if tokensDelta != 0 {
		upd = upd.AddTokensUsed(tokensDelta)
	}
	_, err := upd.Save(ctx)
	if err != nil {
		r.log.Error("progress update failed", "job_id", id, "error", err)
	}
	return err
}

func (r *syncJobRepo) AddPushed(ctx context.Context, id uuid.UUID, delta int) error {
	_, err := r.ent.SyncJob.Update().
		Where(syncjob.ID(id)).
		AddPushedCount(delta).
		Save(ctx)
	if err != nil {
		r.log.Error("pushed count update failed", "job_id", id, "error", err)
	}
	return err
}
