package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/gen/ent"
	"github.com/optipix/imagesync/gen/ent/predicate"
	"github.com/optipix/imagesync/gen/ent/syncjob"
	"github.com/optipix/imagesync/internal/entity"
)

// QueueFilter constrains the queue projection. Statuses are the already
// expanded set (group expansion is the projection service's job); nil means
// no status filter.
type QueueFilter struct {
	Statuses []constants.JobStatus
	StoreID  *uuid.UUID
	Folder   string
	Search   string
}

// QueueRepository serves the read-optimized projection over jobs. The page
// query pushes filtering, ordering and windowing down to the database so
// clients never load the full collection.
type QueueRepository interface {
	ListPage(ctx context.Context, ownerID uuid.UUID, f QueueFilter, offset, limit int) ([]entity.QueueRow, int, error)
	Stats(ctx context.Context, ownerID uuid.UUID) (entity.QueueStats, error)
	FolderStats(ctx context.Context, ownerID uuid.UUID) ([]entity.FolderStats, error)
}

type queueRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewQueueRepository(entc *ent.Client, log *slog.Logger) QueueRepository {
	return &queueRepo{ent: entc, log: log}
}

func (r *queueRepo) baseQuery(ownerID uuid.UUID, f QueueFilter) *ent.SyncJobQuery {
	q := r.ent.SyncJob.Query().Where(syncjob.OwnerID(ownerID))

	if len(f.Statuses) > 0 {
		ss := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			ss[i] = string(s)
		}
		q = q.Where(syncjob.StatusIn(ss...))
	}
	if f.StoreID != nil {
		q = q.Where(syncjob.StoreID(*f.StoreID))
	}
	if f.Folder != "" {
		q = q.Where(syncjob.FolderHasPrefix(f.Folder))
	}
	if f.Search != "" {
		preds := []predicate.SyncJob{
			syncjob.NameContainsFold(f.Search),
			syncjob.StoreDomainContainsFold(f.Search),
		}
		if id, err := uuid.Parse(f.Search); err == nil {
			preds = append(preds, syncjob.ID(id))
		}
		q = q.Where(syncjob.Or(preds...))
	}
	return q
}

func (r *queueRepo) ListPage(ctx context.Context, ownerID uuid.UUID, f QueueFilter, offset, limit int) ([]entity.QueueRow, int, error) {
	total, err := r.baseQuery(ownerID, f).Count(ctx)
	if err != nil {
		r.log.Error("queue count failed", "owner_id", ownerID, "error", err)
		return nil, 0, err
	}

	// newest first, id as tiebreak: stable across identical calls
	rows, err := r.baseQuery(ownerID, f).
		Order(ent.Desc(syncjob.FieldCreatedAt), ent.Asc(syncjob.FieldID)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		r.log.Error("queue page failed", "owner_id", ownerID, "error", err)
		return nil, 0, err
	}

	items := make([]entity.QueueRow, len(rows))
	for i, j := range rows {
		items[i] = entity.QueueRow{
			JobID:          j.ID,
			StoreID:        j.StoreID,
			Name:           j.Name,
			StoreDomain:    j.StoreDomain,
			Folder:         j.Folder,
			Status:         constants.JobStatus(j.Status),
			ImageCount:     j.ImageCount,
			ProcessedCount: j.ProcessedCount,
			PushedCount:    j.PushedCount,
			FailedCount:    j.FailedCount,
			TokensUsed:     j.TokensUsed,
			CreatedAt:      j.CreatedAt,
		}
	}
	return items, total, nil
}

func (r *queueRepo) Stats(ctx context.Context, ownerID uuid.UUID) (entity.QueueStats, error) {
	var out entity.QueueStats

	counts, err := r.statusCounts(ctx, ownerID)
	if err != nil {
		return out, err
	}
	for status, n := range counts {
		out.TotalCount += n
		switch {
		case status == constants.JobStatusPending:
			out.QueuedCount += n
		case status == constants.JobStatusFailed:
			out.FailedCount += n
		case status.IsActive():
			out.ProcessingCount += n
		}
	}
	return out, nil
}

func (r *queueRepo) FolderStats(ctx context.Context, ownerID uuid.UUID) ([]entity.FolderStats, error) {
	var rows []struct {
		Folder string `json:"folder"`
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.ent.SyncJob.Query().
		Where(syncjob.OwnerID(ownerID)).
		GroupBy(syncjob.FieldFolder, syncjob.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.log.Error("folder stats failed", "owner_id", ownerID, "error", err)
		return nil, err
	}

	byFolder := make(map[string]*entity.FolderStats)
	order := make([]string, 0)
	for _, row := range rows {
		fs, ok := byFolder[row.Folder]
		if !ok {
			fs = &entity.FolderStats{Folder: row.Folder}
			byFolder[row.Folder] = fs
			order = append(order, row.Folder)
		}
		fs.TotalCount += row.Count
		status := constants.JobStatus(row.Status)
		switch {
		case status == constants.JobStatusPending:
			fs.QueuedCount += row.Count
		case status == constants.JobStatusFailed:
			fs.FailedCount += row.Count
		case status.IsActive():
			fs.ProcessingCount += row.Count
		}
	}

	out := make([]entity.FolderStats, 0, len(order))
	for _, folder := range order {
		fs := byFolder[folder]
		if fs.TotalCount > 0 {
			done := fs.TotalCount - fs.QueuedCount - fs.ProcessingCount - fs.FailedCount
			fs.CompletedPct = float64(done) / float64(fs.TotalCount)
		}
		out = append(out, *fs)
	}
	return out, nil
}

func (r *queueRepo) statusCounts(ctx context.Context, ownerID uuid.UUID) (map[constants.JobStatus]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := r.ent.SyncJob.Query().
		Where(syncjob.OwnerID(ownerID)).
		GroupBy(syncjob.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		r.log.Error("status counts failed", "owner_id", ownerID, "error", err)
		return nil, err
	}
	out := make(map[constants.JobStatus]int, len(rows))
	for _, row := range rows {
		out[constants.JobStatus(row.Status)] = row.Count
	}
	return out, nil
}
