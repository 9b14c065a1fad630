package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/jobs"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/platform"
	"github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/retrypolicy"
)

// Pool polls for claimable jobs and drives them through their current
// phase. Several pools may run against the same database; the conditional
// claim updates guarantee each job has at most one worker at a time, so a
// lost claim is silence, not an error.
type Pool struct {
	jobs       *jobs.Service
	items      repository.JobItemRepository
	ledger     *ledger.Service
	optimizer  platform.Optimizer
	storefront platform.StorefrontClient
	logger     *slog.Logger

	workers         int
	pollInterval    time.Duration
	claimBatch      int
	itemTimeout     time.Duration
	maxItemAttempts int
	costPerItem     int64

	wg   sync.WaitGroup
	once sync.Once
}

type Option func(*Pool)

func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.pollInterval = d
		}
	}
}

func WithClaimBatch(n int) Option {
	return func(p *Pool) {
		if n > 0 {
			p.claimBatch = n
		}
	}
}

func WithItemTimeout(d time.Duration) Option {
	return func(p *Pool) {
		if d > 0 {
			p.itemTimeout = d
		}
	}
}

func NewPool(
	jobSvc *jobs.Service,
	items repository.JobItemRepository,
	led *ledger.Service,
	optimizer platform.Optimizer,
	storefront platform.StorefrontClient,
	cfg common.JobsConfig,
	logger *slog.Logger,
	opts ...Option,
) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pool{
		jobs:            jobSvc,
		items:           items,
		ledger:          led,
		optimizer:       optimizer,
		storefront:      storefront,
		logger:          logger,
		workers:         4,
		pollInterval:    2 * time.Second,
		claimBatch:      10,
		itemTimeout:     2 * time.Minute,
		maxItemAttempts: cfg.MaxItemAttempts,
		costPerItem:     cfg.CostPerItem,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Start launches the worker loops and the approval-expiry sweeper. They
// run until ctx is cancelled; Wait blocks until they have drained.
func (p *Pool) Start(ctx context.Context) {
	p.once.Do(func() {
		for i := 0; i < p.workers; i++ {
			p.wg.Add(1)
			go func(workerID int) {
				defer p.wg.Done()
				p.logger.Info("worker started", "worker_id", workerID)
				p.runLoop(ctx, workerID)
				p.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}

		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			p.runSweeper(ctx)
		}()
	})
}

// Wait blocks until all workers have exited after ctx cancellation.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) runLoop(ctx context.Context, workerID int) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		p.pollOnce(ctx, workerID)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// pollOnce claims and runs as many jobs from one poll batch as it can.
// Claims other workers won are skipped silently.
func (p *Pool) pollOnce(ctx context.Context, workerID int) {
	claimable, err := p.jobs.ListClaimable(ctx, p.claimBatch)
	if err != nil {
		p.logger.Error("claimable poll failed", "worker_id", workerID, "error", err)
		return
	}

	for _, job := range claimable {
		if ctx.Err() != nil {
			return
		}
		if job.ApprovedAt == nil {
			ok, err := p.jobs.ClaimForProcessing(ctx, job.ID)
			if err != nil {
				p.logger.Error("claim failed", "job_id", job.ID, "error", err)
				continue
			}
			if !ok {
				continue
			}
			p.runProcessing(ctx, job)
		} else {
			ok, err := p.jobs.ClaimForPushing(ctx, job.ID)
			if err != nil {
				p.logger.Error("claim failed", "job_id", job.ID, "error", err)
				continue
			}
			if !ok {
				continue
			}
			p.runPushing(ctx, job)
		}
	}
}

func (p *Pool) runSweeper(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := p.jobs.SweepExpired(ctx, 100)
			if err != nil {
				p.logger.Error("expiry sweep failed", "error", err)
			} else if n > 0 {
				p.logger.Info("expired approvals swept", "count", n)
			}
		}
	}
}

// runProcessing optimizes every queued item, consuming tokens per success,
// then fires the barrier into AWAITING_APPROVAL.
func (p *Pool) runProcessing(ctx context.Context, job *entity.SyncJob) {
	queued, err := p.items.ListByStatus(ctx, job.ID, constants.ItemStatusQueued)
	if err != nil {
		p.logger.Error("item listing failed", "job_id", job.ID, "error", err)
		return
	}

	res, err := p.ledger.OpenReservationForJob(ctx, job.ID)
	if err != nil {
		p.logger.Error("reservation lookup failed", "job_id", job.ID, "error", err)
		_, _ = p.jobs.FailJob(ctx, job.ID, "token reservation missing")
		return
	}

	for _, item := range queued {
		if p.jobAborted(ctx, job.ID) {
			return
		}
		p.processItem(ctx, job, res, item)
	}

	fired, err := p.jobs.FinishProcessing(ctx, job.ID)
	if err != nil {
		p.logger.Error("processing barrier failed", "job_id", job.ID, "error", err)
		return
	}
	if !fired {
		p.logger.Warn("processing finished with unprocessed items", "job_id", job.ID)
	}
}

func (p *Pool) processItem(ctx context.Context, job *entity.SyncJob, res *entity.TokenReservation, item *entity.JobItem) {
	ok, err := p.items.MarkProcessing(ctx, item.ID)
	if err != nil || !ok {
		return
	}

	itemCtx, cancel := context.WithTimeout(ctx, p.itemTimeout)
	defer cancel()

	prompt := ""
	if job.CustomPrompt != nil {
		prompt = *job.CustomPrompt
	}
	result, err := p.optimizer.Optimize(itemCtx, platform.OptimizeRequest{
		JobID:        job.ID,
		ItemID:       item.ID,
		OriginalURL:  item.OriginalURL,
		PresetType:   job.PresetType,
		PresetID:     job.PresetID,
		CustomPrompt: prompt,
	})
	if err != nil {
		p.logger.Error("optimize failed", "job_id", job.ID, "item_id", item.ID, "error", err)
		if _, err := p.items.MarkFailed(ctx, item.ID, err.Error()); err != nil {
			p.logger.Error("item fail mark failed", "item_id", item.ID, "error", err)
		}
		if err := p.jobs.AddProgress(ctx, job.ID, 0, 1, 0); err != nil {
			p.logger.Error("progress update failed", "job_id", job.ID, "error", err)
		}
		return
	}

	// tokens are spent only on successful items; failures cost nothing
	if err := p.ledger.Consume(ctx, res.ID, p.costPerItem); err != nil {
		p.logger.Error("token consume failed", "job_id", job.ID, "item_id", item.ID, "error", err)
		_, _ = p.items.MarkFailed(ctx, item.ID, "token budget exhausted")
		_ = p.jobs.AddProgress(ctx, job.ID, 0, 1, 0)
		return
	}

	if _, err := p.items.MarkReady(ctx, item.ID, result.OptimizedURL, result.StoragePath); err != nil {
		p.logger.Error("item ready mark failed", "item_id", item.ID, "error", err)
		return
	}
	if err := p.jobs.AddProgress(ctx, job.ID, 1, 0, p.costPerItem); err != nil {
		p.logger.Error("progress update failed", "job_id", job.ID, "error", err)
	}
}

// runPushing writes every pushable item back to the storefront and settles
// the run: complete on a clean sweep, retry or fail otherwise.
func (p *Pool) runPushing(ctx context.Context, job *entity.SyncJob) {
	pushable, err := p.items.ListPushable(ctx, job.ID, p.maxItemAttempts)
	if err != nil {
		p.logger.Error("pushable listing failed", "job_id", job.ID, "error", err)
		return
	}

	failures := 0
	lastErr := ""
	for _, item := range pushable {
		if p.jobAborted(ctx, job.ID) {
			return
		}
		if ok, msg := p.pushItem(ctx, job, item); !ok {
			failures++
			lastErr = msg
		}
	}

	if failures == 0 {
		ok, err := p.jobs.CompleteJob(ctx, job.ID)
		if err != nil {
			p.logger.Error("complete failed", "job_id", job.ID, "error", err)
		} else if !ok {
			p.logger.Warn("complete lost race", "job_id", job.ID)
		}
		return
	}

	// a retry makes sense only if some failed item still has budget left
	remaining, err := p.items.ListPushable(ctx, job.ID, p.maxItemAttempts)
	if err != nil {
		p.logger.Error("pushable recount failed", "job_id", job.ID, "error", err)
		return
	}
	current, err := p.jobs.GetJob(ctx, job.ID)
	if err != nil {
		p.logger.Error("job reload failed", "job_id", job.ID, "error", err)
		return
	}
	if err := p.jobs.FinishPushRun(ctx, current, len(remaining) > 0, lastErr); err != nil {
		p.logger.Error("push settlement failed", "job_id", job.ID, "error", err)
	}
}

// pushItem returns ok=false when the push failed; the failure class is
// recorded on the item for the retry decision.
func (p *Pool) pushItem(ctx context.Context, job *entity.SyncJob, item *entity.JobItem) (bool, string) {
	ok, err := p.items.MarkPushing(ctx, item.ID)
	if err != nil || !ok {
		return true, ""
	}

	imageURL := item.OriginalURL
	if item.OptimizedURL != nil {
		imageURL = *item.OptimizedURL
	}

	itemCtx, cancel := context.WithTimeout(ctx, p.itemTimeout)
	defer cancel()
	pushErr := p.storefront.PushImage(itemCtx, job.StoreDomain, platform.PushRequest{
		ExternalProductID: item.ExternalProductID,
		ExternalImageID:   item.ExternalImageID,
		ImageURL:          imageURL,
	})
	if pushErr == nil {
		if _, err := p.items.MarkPushed(ctx, item.ID, time.Now()); err != nil {
			p.logger.Error("item pushed mark failed", "item_id", item.ID, "error", err)
		}
		if err := p.jobs.AddPushed(ctx, job.ID, 1); err != nil {
			p.logger.Error("pushed count update failed", "job_id", job.ID, "error", err)
		}
		return true, ""
	}

	retryable := retrypolicy.Classify(pushErr) == retrypolicy.ClassRetryable
	p.logger.Warn("push failed", "job_id", job.ID, "item_id", item.ID,
		"retryable", retryable, "error", pushErr)
	if _, err := p.items.MarkPushFailed(ctx, item.ID, pushErr.Error(), retryable); err != nil {
		p.logger.Error("push failure mark failed", "item_id", item.ID, "error", err)
	}
	return false, pushErr.Error()
}

// jobAborted reports whether the run should stop early: shutdown, or the
// job was cancelled out from under the worker.
func (p *Pool) jobAborted(ctx context.Context, jobID uuid.UUID) bool {
	if ctx.Err() != nil {
		return true
	}
	job, err := p.jobs.GetJob(ctx, jobID)
	if err != nil {
		return false
	}
	return job.Status.IsTerminal()
}
