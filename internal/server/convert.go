package server

import (
	"time"

	syncv1 "github.com/optipix/imagesync/gen/proto/sync/v1"
	"github.com/optipix/imagesync/internal/entity"
)

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func fmtTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmtTime(*t)
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toPBJob(j *entity.SyncJob) *syncv1.Job {
	if j == nil {
		return nil
	}
	pb := &syncv1.Job{
		Id:             j.ID.String(),
		OwnerId:        j.OwnerID.String(),
		StoreId:        j.StoreID.String(),
		Name:           j.Name,
		StoreDomain:    j.StoreDomain,
		Folder:         j.Folder,
		TriggerType:    string(j.TriggerType),
		PresetType:     string(j.PresetType),
		CustomPrompt:   strVal(j.CustomPrompt),
		ProductCount:   int32(j.ProductCount),
		ImageCount:     int32(j.ImageCount),
		ProcessedCount: int32(j.ProcessedCount),
		PushedCount:    int32(j.PushedCount),
		FailedCount:    int32(j.FailedCount),
		Status:         string(j.Status),
		RetryCount:     int32(j.RetryCount),
		MaxRetries:     int32(j.MaxRetries),
		LastError:      strVal(j.LastError),
		TokensUsed:     j.TokensUsed,
		NextRetryAt:    fmtTimePtr(j.NextRetryAt),
		ApprovedAt:     fmtTimePtr(j.ApprovedAt),
		CompletedAt:    fmtTimePtr(j.CompletedAt),
		ExpiresAt:      fmtTime(j.ExpiresAt),
		CreatedAt:      fmtTime(j.CreatedAt),
		UpdatedAt:      fmtTime(j.UpdatedAt),
	}
	if j.PresetID != nil {
		pb.PresetId = j.PresetID.String()
	}
	return pb
}

func toPBJobs(rows []*entity.SyncJob) []*syncv1.Job {
	out := make([]*syncv1.Job, 0, len(rows))
	for _, j := range rows {
		out = append(out, toPBJob(j))
	}
	return out
}

func toPBJobItem(it *entity.JobItem) *syncv1.JobItem {
	if it == nil {
		return nil
	}
	return &syncv1.JobItem{
		Id:                it.ID.String(),
		JobId:             it.JobID.String(),
		ExternalProductId: it.ExternalProductID,
		ExternalImageId:   it.ExternalImageID,
		OriginalUrl:       it.OriginalURL,
		OptimizedUrl:      strVal(it.OptimizedURL),
		Status:            string(it.Status),
		PushAttempts:      int32(it.PushAttempts),
		LastPushError:     strVal(it.LastPushError),
		PushRetryable:     it.PushRetryable,
		PushedAt:          fmtTimePtr(it.PushedAt),
	}
}

func toPBQueueRow(r entity.QueueRow) *syncv1.QueueRow {
	return &syncv1.QueueRow{
		JobId:          r.JobID.String(),
		StoreId:        r.StoreID.String(),
		Name:           r.Name,
		StoreDomain:    r.StoreDomain,
		Folder:         r.Folder,
		Status:         string(r.Status),
		ImageCount:     int32(r.ImageCount),
		ProcessedCount: int32(r.ProcessedCount),
		PushedCount:    int32(r.PushedCount),
		FailedCount:    int32(r.FailedCount),
		TokensUsed:     r.TokensUsed,
		CreatedAt:      fmtTime(r.CreatedAt),
	}
}
