package platform

import (
	"context"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
)

// OptimizeRequest carries one image into the optimization engine.
type OptimizeRequest struct {
	JobID       uuid.UUID
	ItemID      uuid.UUID
	OriginalURL string

	PresetType   constants.PresetType
	PresetID     *uuid.UUID
	CustomPrompt string
}

// OptimizeResult is the normalized shape we want back from the engine.
type OptimizeResult struct {
	OptimizedURL string `json:"optimized_url"`
	StoragePath  string `json:"storage_path"`
	BytesIn      int64  `json:"bytes_in,omitempty"`
	BytesOut     int64  `json:"bytes_out,omitempty"`
}

// Optimizer is the AI image engine boundary. The engine itself is an
// external collaborator; this interface is all the core depends on.
type Optimizer interface {
	Optimize(ctx context.Context, req OptimizeRequest) (OptimizeResult, error)
}

// PushRequest writes one optimized image back to the external platform.
type PushRequest struct {
	ExternalProductID string
	ExternalImageID   string
	ImageURL          string
}

// StorefrontClient is the external platform boundary (product/image API).
type StorefrontClient interface {
	PushImage(ctx context.Context, storeDomain string, req PushRequest) error
}

// AssetStore resolves storage paths of optimized assets to public URLs.
// The storage layer itself is out of scope.
type AssetStore interface {
	PublicURL(storagePath string) string
}
