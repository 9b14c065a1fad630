package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
)

// JobItem represents one external image targeted by a job.
type JobItem struct {
	ID                   uuid.UUID            `json:"id"`
	JobID                uuid.UUID            `json:"job_id"`
	ExternalProductID    string               `json:"external_product_id"`
	ExternalImageID      string               `json:"external_image_id"`
	OriginalURL          string               `json:"original_url"`
	OptimizedURL         *string              `json:"optimized_url,omitempty"`
	OptimizedStoragePath *string              `json:"optimized_storage_path,omitempty"`
	Status               constants.ItemStatus `json:"status"`
	PushAttempts         int                  `json:"push_attempts"`
	LastPushError        *string              `json:"last_push_error,omitempty"`
	PushRetryable        bool                 `json:"push_retryable"`
	PushedAt             *time.Time           `json:"pushed_at,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}
