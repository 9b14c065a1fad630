package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// StorefrontAPIClient pushes optimized images back to the external platform's
// product/image API. OAuth and product discovery live with the platform
// integration, not here.
type StorefrontAPIClient struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewStorefrontAPIClient(baseURL string, timeout time.Duration, logger *slog.Logger) *StorefrontAPIClient {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &StorefrontAPIClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *StorefrontAPIClient) PushImage(ctx context.Context, storeDomain string, req PushRequest) error {
	body, err := json.Marshal(map[string]string{
		"store_domain": storeDomain,
		"product_id":   req.ExternalProductID,
		"image_id":     req.ExternalImageID,
		"image_url":    req.ImageURL,
	})
	if err != nil {
		return fmt.Errorf("encode push request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/stores/%s/images/%s", c.baseURL, storeDomain, req.ExternalImageID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.Warn("storefront.push_transport_error", "image_id", req.ExternalImageID, "error", err)
		return &PushError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 8<<10))
	c.log.Warn("storefront.push_rejected", "image_id", req.ExternalImageID,
		"status", resp.StatusCode, "body", string(raw))
	return &PushError{StatusCode: resp.StatusCode, Message: string(raw)}
}
