package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/gen/ent"
	"github.com/optipix/imagesync/gen/ent/jobitem"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/utils"
)

// JobItemRepository tracks per-item state within a job. Item transitions are
// conditional updates like the job-level ones, so two workers racing on the
// same item cannot both win.
type JobItemRepository interface {
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobItem, error)
	ListByStatus(ctx context.Context, jobID uuid.UUID, statuses ...constants.ItemStatus) ([]*entity.JobItem, error)
	ListPushable(ctx context.Context, jobID uuid.UUID, maxAttempts int) ([]*entity.JobItem, error)
	CountUnprocessed(ctx context.Context, jobID uuid.UUID) (int, error)

	MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkReady(ctx context.Context, id uuid.UUID, optimizedURL, storagePath string) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, message string) (bool, error)
	MarkSkipped(ctx context.Context, id uuid.UUID) (bool, error)
	MarkPushing(ctx context.Context, id uuid.UUID) (bool, error)
	MarkPushed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	MarkPushFailed(ctx context.Context, id uuid.UUID, message string, retryable bool) (bool, error)
}

type jobItemRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobItemRepository(entc *ent.Client, log *slog.Logger) JobItemRepository {
	return &jobItemRepo{ent: entc, log: log}
}

func (r *jobItemRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]*entity.JobItem, error) {
	rows, err := r.ent.JobItem.Query().
		Where(jobitem.JobID(jobID)).
		Order(ent.Asc(jobitem.FieldCreatedAt), ent.Asc(jobitem.FieldID)).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list job items", "job_id", jobID, "error", err)
		return nil, err
	}
	return utils.ToJobItems(rows), nil
}

func (r *jobItemRepo) ListByStatus(ctx context.Context, jobID uuid.UUID, statuses ...constants.ItemStatus) ([]*entity.JobItem, error) {
	ss := make([]string, len(statuses))
	for i, s := range statuses {
		ss[i] = string(s)
	}
	rows, err := r.ent.JobItem.Query().
		Where(jobitem.JobID(jobID), jobitem.StatusIn(ss...)).
		Order(ent.Asc(jobitem.FieldCreatedAt), ent.Asc(jobitem.FieldID)).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list job items by status", "job_id", jobID, "error", err)
		return nil, err
	}
	return utils.ToJobItems(rows), nil
}

// ListPushable returns the items a push phase should attempt: READY items
// plus previously failed pushes that are retryable and under their own
// attempt budget. Items that exhausted their budget stay FAILED even while
// the job keeps retrying others.
func (r *jobItemRepo) ListPushable(ctx context.Context, jobID uuid.UUID, maxAttempts int) ([]*entity.JobItem, error) {
	rows, err := r.ent.JobItem.Query().
		Where(
			jobitem.JobID(jobID),
			jobitem.Or(
				jobitem.StatusEQ(string(constants.ItemStatusReady)),
				jobitem.And(
					jobitem.StatusEQ(string(constants.ItemStatusFailed)),
					jobitem.PushRetryable(true),
					jobitem.PushAttemptsLT(maxAttempts),
				),
			),
		).
		Order(ent.Asc(jobitem.FieldCreatedAt), ent.Asc(jobitem.FieldID)).
		All(ctx)
	if err != nil {
		r.log.Error("failed to list pushable items", "job_id", jobID, "error", err)
		return nil, err
	}
	return utils.ToJobItems(rows), nil
}

// CountUnprocessed is the barrier check for processing -> awaiting_approval:
// anything still QUEUED or PROCESSING keeps the job in its processing phase.
func (r *jobItemRepo) CountUnprocessed(ctx context.Context, jobID uuid.UUID) (int, error) {
	n, err := r.ent.JobItem.Query().
		Where(
			jobitem.JobID(jobID),
			jobitem.StatusIn(
				string(constants.ItemStatusQueued),
				string(constants.ItemStatusProcessing),
			),
		).
		Count(ctx)
	if err != nil {
		r.log.Error("failed to count unprocessed items", "job_id", jobID, "error", err)
		return 0, err
	}
	return n, nil
}

func (r *jobItemRepo) MarkProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.JobItem.Update().
		Where(jobitem.ID(id), jobitem.StatusEQ(string(constants.ItemStatusQueued))).
		SetStatus(string(constants.ItemStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.log.Error("item mark processing failed", "item_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobItemRepo) MarkReady(ctx context.Context, id uuid.UUID, optimizedURL, storagePath string) (bool, error) {
	n, err := r.ent.JobItem.Update().
		Where(jobitem.ID(id), jobitem.StatusEQ(string(constants.ItemStatusProcessing))).
		SetStatus(string(constants.ItemStatusReady)).
		SetOptimizedURL(optimizedURL).
		SetOptimizedStoragePath(storagePath).
		Save(ctx)
	if err != nil {
		r.log.Error("item mark ready failed", "item_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobItemRepo) MarkFailed(ctx context.Context, id uuid.UUID, message string) (bool, error) {
	n, err := r.ent.JobItem.Update().
		Where(jobitem.ID(id), jobitem.StatusIn(
			string(constants.ItemStatusQueued),
			string(constants.ItemStatusProcessing),
		)).
		SetStatus(string(constants.ItemStatusFailed)).
		SetLastPushError(message).
		SetPushRetryable(false).
		Save(ctx)
	if err != nil {
		r.log.Error("item mark failed failed", "item_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobItemRepo) MarkSkipped(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.JobItem.Update().
		Where(jobitem.ID(id), jobitem.StatusIn(
			string(constants.ItemStatusQueued),
			string(constants.ItemStatusProcessing),
			string(constants.ItemStatusReady),
		)).
		SetStatus(string(constants.ItemStatusSkipped)).
		Save(ctx)
	if err != nil {
		r.log.Error("item mark skipped failed", "item_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

// MarkPushing also charges the attempt against the item's own budget.
func (r *jobItemRepo) MarkPushing(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.ent.JobItem.Update().
		Where(jobitem.ID(id), jobitem.StatusIn(
			string(constants.ItemStatusReady),
			string(constants.ItemStatusFailed),
		)).
		SetStatus(string(constants.ItemStatusPushing)).
		AddPushAttempts(1).
		Save(ctx)
	if err != nil {
		r.log.Error("item mark pushing failed", "item_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobItemRepo) MarkPushed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	n, err := r.ent.JobItem.Update().
		Where(jobitem.ID(id), jobitem.StatusEQ(string(constants.ItemStatusPushing))).
		SetStatus(string(constants.ItemStatusPushed)).
		SetPushedAt(at).
		ClearLastPushError().
		Save(ctx)
	if err != nil {
		r.log.Error("item mark pushed failed", "item_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}

func (r *jobItemRepo) MarkPushFailed(ctx context.Context, id uuid.UUID, message string, retryable bool) (bool, error) {
	n, err := r.ent.JobItem.Update().
		Where(jobitem.ID(id), jobitem.StatusEQ(string(constants.ItemStatusPushing))).
		SetStatus(string(constants.ItemStatusFailed)).
		SetLastPushError(message).
		SetPushRetryable(retryable).
		Save(ctx)
	if err != nil {
		r.log.Error("item mark push failed failed", "item_id", id, "error", err)
		return false, err
	}
	return n > 0, nil
}
