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

// OptimizerClient talks to the optimization engine over HTTP. The engine's
// internals are out of scope; this is only the request/response plumbing.
type OptimizerClient struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewOptimizerClient(baseURL string, timeout time.Duration, logger *slog.Logger) *OptimizerClient {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 45 * time.Second
	}
	return &OptimizerClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		log:     logger,
	}
}

func (c *OptimizerClient) Optimize(ctx context.Context, req OptimizeRequest) (OptimizeResult, error) {
	start := time.Now()

	body := map[string]any{
		"job_id":       req.JobID.String(),
		"item_id":      req.ItemID.String(),
		"original_url": req.OriginalURL,
		"preset_type":  string(req.PresetType),
	}
	if req.PresetID != nil {
		body["preset_id"] = req.PresetID.String()
	}
	if req.CustomPrompt != "" {
		body["custom_prompt"] = req.CustomPrompt
	}

	bs, err := json.Marshal(body)
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("encode optimize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/optimize", bytes.NewReader(bs))
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.log.Error("optimizer.http_error", "item_id", req.ItemID, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return OptimizeResult{}, &OptimizeError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return OptimizeResult{}, fmt.Errorf("read optimize response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error("optimizer.bad_status", "item_id", req.ItemID, "status", resp.StatusCode)
		return OptimizeResult{}, &OptimizeError{Message: fmt.Sprintf("engine returned %d: %s", resp.StatusCode, raw)}
	}

	res, err := DecodeOptimizeResult(raw)
	if err != nil {
		c.log.Error("optimizer.decode_error", "item_id", req.ItemID, "error", err)
		return OptimizeResult{}, err
	}

	c.log.Debug("optimizer.ok", "item_id", req.ItemID,
		"bytes_in", res.BytesIn, "bytes_out", res.BytesOut,
		"elapsed_ms", time.Since(start).Milliseconds())
	return res, nil
}
