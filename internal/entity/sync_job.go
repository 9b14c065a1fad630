package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
)

// SyncJob represents a sync job for data transfer between layers.
type SyncJob struct {
	ID             uuid.UUID             `json:"id"`
	OwnerID        uuid.UUID             `json:"owner_id"`
	StoreID        uuid.UUID             `json:"store_id"`
	Name           string                `json:"name"`
	StoreDomain    string                `json:"store_domain,omitempty"`
	Folder         string                `json:"folder,omitempty"`
	TriggerType    constants.TriggerType `json:"trigger_type"`
	PresetType     constants.PresetType  `json:"preset_type"`
	PresetID       *uuid.UUID            `json:"preset_id,omitempty"`
	CustomPrompt   *string               `json:"custom_prompt,omitempty"`
	ProductCount   int                   `json:"product_count"`
	ImageCount     int                   `json:"image_count"`
	ProcessedCount int                   `json:"processed_count"`
	PushedCount    int                   `json:"pushed_count"`
	FailedCount    int                   `json:"failed_count"`
	Status         constants.JobStatus   `json:"status"`
	RetryCount     int                   `json:"retry_count"`
	MaxRetries     int                   `json:"max_retries"`
	LastError      *string               `json:"last_error,omitempty"`
	TokensUsed     int64                 `json:"tokens_used"`
	NextRetryAt    *time.Time            `json:"next_retry_at,omitempty"`
	ApprovedAt     *time.Time            `json:"approved_at,omitempty"`
	CompletedAt    *time.Time            `json:"completed_at,omitempty"`
	ExpiresAt      time.Time             `json:"expires_at"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}
