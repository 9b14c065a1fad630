package utils

import (
	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/gen/ent"
	"github.com/optipix/imagesync/internal/entity"
)

// ToSyncJob maps a generated row to the transfer struct used across layers.
func ToSyncJob(j *ent.SyncJob) *entity.SyncJob {
	if j == nil {
		return nil
	}
	return &entity.SyncJob{
		ID:             j.ID,
		OwnerID:        j.OwnerID,
		StoreID:        j.StoreID,
		Name:           j.Name,
		StoreDomain:    j.StoreDomain,
		Folder:         j.Folder,
		TriggerType:    constants.TriggerType(j.TriggerType),
		PresetType:     constants.PresetType(j.PresetType),
		PresetID:       j.PresetID,
		CustomPrompt:   j.CustomPrompt,
		ProductCount:   j.ProductCount,
		ImageCount:     j.ImageCount,
		ProcessedCount: j.ProcessedCount,
		PushedCount:    j.PushedCount,
		FailedCount:    j.FailedCount,
		Status:         constants.JobStatus(j.Status),
		RetryCount:     j.RetryCount,
		MaxRetries:     j.MaxRetries,
		LastError:      j.LastError,
		TokensUsed:     j.TokensUsed,
		NextRetryAt:    j.NextRetryAt,
		ApprovedAt:     j.ApprovedAt,
		CompletedAt:    j.CompletedAt,
		ExpiresAt:      j.ExpiresAt,
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

// ToSyncJobs maps a slice of generated rows.
func ToSyncJobs(rows []*ent.SyncJob) []*entity.SyncJob {
	out := make([]*entity.SyncJob, len(rows))
	for i, r := range rows {
		out[i] = ToSyncJob(r)
	}
	return out
}

// ToJobItem maps a generated row to the transfer struct.
func ToJobItem(it *ent.JobItem) *entity.JobItem {
	if it == nil {
		return nil
	}
	return &entity.JobItem{
		ID:                   it.ID,
		JobID:                it.JobID,
		ExternalProductID:    it.ExternalProductID,
		ExternalImageID:      it.ExternalImageID,
		OriginalURL:          it.OriginalURL,
		OptimizedURL:         it.OptimizedURL,
		OptimizedStoragePath: it.OptimizedStoragePath,
		Status:               constants.ItemStatus(it.Status),
		PushAttempts:         it.PushAttempts,
		LastPushError:        it.LastPushError,
		PushRetryable:        it.PushRetryable,
		PushedAt:             it.PushedAt,
		CreatedAt:            it.CreatedAt,
		UpdatedAt:            it.UpdatedAt,
	}
}

// ToJobItems maps a slice of generated rows.
func ToJobItems(rows []*ent.JobItem) []*entity.JobItem {
	out := make([]*entity.JobItem, len(rows))
	for i, r := range rows {
		out[i] = ToJobItem(r)
	}
	return out
}

// ToReservation maps a generated row to the transfer struct.
func ToReservation(r *ent.TokenReservation) *entity.TokenReservation {
	if r == nil {
		return nil
	}
	return &entity.TokenReservation{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		JobID:          r.JobID,
		AmountReserved: r.AmountReserved,
		AmountConsumed: r.AmountConsumed,
		CreatedAt:      r.CreatedAt,
		ReleasedAt:     r.ReleasedAt,
	}
}

// ToAccount maps a generated row to the transfer struct.
func ToAccount(a *ent.TokenAccount) *entity.TokenAccount {
	if a == nil {
		return nil
	}
	return &entity.TokenAccount{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
