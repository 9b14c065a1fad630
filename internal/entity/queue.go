package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
)

// QueueRow is one row of the paginated queue projection. It is derived from
// job state per request and never persisted.
type QueueRow struct {
	JobID          uuid.UUID           `json:"job_id"`
	StoreID        uuid.UUID           `json:"store_id"`
	Name           string              `json:"name"`
	StoreDomain    string              `json:"store_domain,omitempty"`
	Folder         string              `json:"folder,omitempty"`
	Status         constants.JobStatus `json:"status"`
	ImageCount     int                 `json:"image_count"`
	ProcessedCount int                 `json:"processed_count"`
	PushedCount    int                 `json:"pushed_count"`
	FailedCount    int                 `json:"failed_count"`
	TokensUsed     int64               `json:"tokens_used"`
	CreatedAt      time.Time           `json:"created_at"`
}

// QueuePage is one page of the projection plus the total matching the filter.
type QueuePage struct {
	Items      []QueueRow `json:"items"`
	TotalCount int        `json:"total_count"`
	TotalPages int        `json:"total_pages"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
}

// QueueStats are filter-free aggregate counts over one owner's jobs.
type QueueStats struct {
	TotalCount      int `json:"total_count"`
	QueuedCount     int `json:"queued_count"`
	ProcessingCount int `json:"processing_count"`
	FailedCount     int `json:"failed_count"`
}

// FolderStats are the same aggregates grouped by folder, with a derived
// completion percentage.
type FolderStats struct {
	Folder          string  `json:"folder"`
	TotalCount      int     `json:"total_count"`
	QueuedCount     int     `json:"queued_count"`
	ProcessingCount int     `json:"processing_count"`
	FailedCount     int     `json:"failed_count"`
	CompletedPct    float64 `json:"completed_pct"`
}
