package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/jobs"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/platform"
	"github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/repository/repositorytest"
)

type fakeOptimizer struct {
	mu    sync.Mutex
	fail  map[string]error // keyed by original URL
	calls int
}

func (f *fakeOptimizer) Optimize(_ context.Context, req platform.OptimizeRequest) (platform.OptimizeResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err, ok := f.fail[req.OriginalURL]; ok {
		return platform.OptimizeResult{}, err
	}
	return platform.OptimizeResult{
		OptimizedURL: "https://cdn.example.com/opt/" + req.ItemID.String() + ".webp",
		StoragePath:  "opt/" + req.ItemID.String() + ".webp",
	}, nil
}

// fakeStorefront pops one scripted error per push for a given image id;
// an exhausted script means success.
type fakeStorefront struct {
	mu     sync.Mutex
	script map[string][]error
	pushed []string
}

func (f *fakeStorefront) PushImage(_ context.Context, _ string, req platform.PushRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if errs := f.script[req.ExternalImageID]; len(errs) > 0 {
		err := errs[0]
		f.script[req.ExternalImageID] = errs[1:]
		if err != nil {
			return err
		}
	}
	f.pushed = append(f.pushed, req.ExternalImageID)
	return nil
}

type env struct {
	pool       *Pool
	jobSvc     *jobs.Service
	jobRepo    *repositorytest.MemJobRepo
	itemRepo   *repositorytest.MemItemRepo
	ledRepo    *repositorytest.MemLedgerRepo
	led        *ledger.Service
	optimizer  *fakeOptimizer
	storefront *fakeStorefront
	owner      uuid.UUID
}

func newEnv(t *testing.T, balance int64) *env {
	t.Helper()
	items := repositorytest.NewMemItemRepo()
	jobRepo := repositorytest.NewMemJobRepo(items)
	ledRepo := repositorytest.NewMemLedgerRepo()
	led := ledger.NewService(ledRepo, nil)

	cfg := common.JobsConfig{
		CostPerItem:     1,
		MaxRetries:      3,
		MaxItemAttempts: 10,
		RetryBaseDelay:  time.Millisecond,
		RetryMaxDelay:   10 * time.Millisecond,
		ApprovalTTL:     time.Hour,
	}
	jobSvc := jobs.NewService(jobRepo, items, led, cfg, nil)

	opt := &fakeOptimizer{fail: make(map[string]error)}
	sf := &fakeStorefront{script: make(map[string][]error)}
	pool := NewPool(jobSvc, items, led, opt, sf, cfg, nil, WithWorkers(1), WithClaimBatch(10))

	e := &env{
		pool:       pool,
		jobSvc:     jobSvc,
		jobRepo:    jobRepo,
		itemRepo:   items,
		ledRepo:    ledRepo,
		led:        led,
		optimizer:  opt,
		storefront: sf,
		owner:      uuid.New(),
	}
	require.NoError(t, ledRepo.Credit(context.Background(), e.owner, balance))
	return e
}

func (e *env) createJob(t *testing.T, urls ...string) uuid.UUID {
	t.Helper()
	items := make([]repository.CreateItemParams, len(urls))
	for i, u := range urls {
		items[i] = repository.CreateItemParams{
			ExternalProductID: "prod-1",
			ExternalImageID:   u, // reuse the URL as the image id for scripting
			OriginalURL:       u,
		}
	}
	presetID := uuid.New()
	job, err := e.jobSvc.CreateJob(context.Background(), jobs.CreateJobInput{
		OwnerID:      e.owner,
		StoreID:      uuid.New(),
		Name:         "worker test",
		StoreDomain:  "acme.myshop.example",
		TriggerType:  constants.TriggerManual,
		PresetType:   constants.PresetStored,
		PresetID:     &presetID,
		ProductCount: len(urls),
		Items:        items,
	})
	require.NoError(t, err)
	return job.ID
}

func (e *env) status(t *testing.T, id uuid.UUID) constants.JobStatus {
	t.Helper()
	job, err := e.jobRepo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return job.Status
}

func TestPoolDrivesJobToCompletion(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	jobID := e.createJob(t, "a.jpg", "b.jpg", "c.jpg")

	// processing phase
	e.pool.pollOnce(ctx, 1)
	assert.Equal(t, constants.JobStatusAwaitingApproval, e.status(t, jobID))

	job, err := e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, 3, job.ProcessedCount)
	assert.Zero(t, job.FailedCount)
	assert.Equal(t, int64(3), job.TokensUsed)

	// nothing pushable yet, poll is a no-op until approval
	e.pool.pollOnce(ctx, 1)
	assert.Equal(t, constants.JobStatusAwaitingApproval, e.status(t, jobID))

	_, err = e.jobSvc.ApproveJob(ctx, jobID)
	require.NoError(t, err)

	// push phase
	e.pool.pollOnce(ctx, 1)
	assert.Equal(t, constants.JobStatusCompleted, e.status(t, jobID))

	job, err = e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, 3, job.PushedCount)
	assert.Len(t, e.storefront.pushed, 3)

	// the 3 consumed tokens stay spent, the rest of the hold returned
	bal, err := e.led.Balance(ctx, e.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(97), bal)
	assert.Zero(t, e.ledRepo.OpenCount(jobID))
	assert.Equal(t, int64(100), e.ledRepo.Conserved(e.owner))
}

func TestOptimizeFailureCountsAgainstJobNotTokens(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	jobID := e.createJob(t, "good.jpg", "bad.jpg")
	e.optimizer.fail["bad.jpg"] = errors.New("unsupported format")

	e.pool.pollOnce(ctx, 1)
	assert.Equal(t, constants.JobStatusAwaitingApproval, e.status(t, jobID))

	job, err := e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, 1, job.ProcessedCount)
	assert.Equal(t, 1, job.FailedCount)
	assert.Equal(t, int64(1), job.TokensUsed, "failed items consume nothing")

	failed, err := e.itemRepo.ListByStatus(ctx, jobID, constants.ItemStatusFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.False(t, failed[0].PushRetryable)
}

func TestPushRetryLoop(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	jobID := e.createJob(t, "a.jpg", "b.jpg")

	// b fails retryably once, succeeds on the second cycle
	e.storefront.script["b.jpg"] = []error{
		&platform.PushError{StatusCode: 503, Message: "unavailable"},
	}

	e.pool.pollOnce(ctx, 1)
	_, err := e.jobSvc.ApproveJob(ctx, jobID)
	require.NoError(t, err)

	e.pool.pollOnce(ctx, 1)
	job, err := e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusPending, job.Status, "retryable failure loops back")
	assert.Equal(t, 1, job.RetryCount)
	assert.Equal(t, 1, job.PushedCount)
	require.NotNil(t, job.NextRetryAt)

	// after the backoff, only the failed item is pushed again
	time.Sleep(5 * time.Millisecond)
	e.pool.pollOnce(ctx, 1)
	assert.Equal(t, constants.JobStatusCompleted, e.status(t, jobID))

	job, err = e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, 2, job.PushedCount)
	assert.ElementsMatch(t, []string{"a.jpg", "b.jpg"}, e.storefront.pushed)
}

func TestTerminalPushErrorFailsJob(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	jobID := e.createJob(t, "a.jpg")
	e.storefront.script["a.jpg"] = []error{
		&platform.PushError{StatusCode: 404, Message: "image gone"},
	}

	e.pool.pollOnce(ctx, 1)
	_, err := e.jobSvc.ApproveJob(ctx, jobID)
	require.NoError(t, err)
	e.pool.pollOnce(ctx, 1)

	job, err := e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	assert.Zero(t, job.RetryCount, "terminal failures never burn a retry")
	require.NotNil(t, job.LastError)
	assert.Zero(t, e.ledRepo.OpenCount(jobID))
}

func TestRetryCapExhaustionFailsJob(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	jobID := e.createJob(t, "a.jpg")
	// fails retryably on every cycle; the job-level cap bounds it
	e.storefront.script["a.jpg"] = []error{
		&platform.PushError{StatusCode: 503},
		&platform.PushError{StatusCode: 503},
		&platform.PushError{StatusCode: 503},
		&platform.PushError{StatusCode: 503},
	}

	e.pool.pollOnce(ctx, 1)
	_, err := e.jobSvc.ApproveJob(ctx, jobID)
	require.NoError(t, err)

	// exactly max_retries loop-backs
	for cycle := 1; cycle <= 3; cycle++ {
		e.pool.pollOnce(ctx, 1)
		job, err := e.jobRepo.GetByID(ctx, jobID)
		require.NoError(t, err)
		assert.Equal(t, constants.JobStatusPending, job.Status)
		assert.Equal(t, cycle, job.RetryCount)
		time.Sleep(5 * time.Millisecond)
	}

	// the fourth failing cycle exceeds the cap
	e.pool.pollOnce(ctx, 1)
	job, err := e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, job.Status)
	assert.Equal(t, 3, job.RetryCount)
	assert.Zero(t, e.ledRepo.OpenCount(jobID))
}

func TestCancelledJobAbortsProcessing(t *testing.T) {
	e := newEnv(t, 100)
	ctx := context.Background()
	jobID := e.createJob(t, "a.jpg", "b.jpg")

	ok, err := e.jobSvc.ClaimForProcessing(ctx, jobID)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = e.jobRepo.Cancel(ctx, jobID, "operator cancel")
	require.NoError(t, err)

	job, err := e.jobRepo.GetByID(ctx, jobID)
	require.NoError(t, err)
	e.pool.runProcessing(ctx, job)

	assert.Equal(t, constants.JobStatusCancelled, e.status(t, jobID))
	assert.Zero(t, e.optimizer.calls, "no item work after cancellation")
}

func TestStartAndShutdown(t *testing.T) {
	e := newEnv(t, 100)
	jobID := e.createJob(t, "a.jpg")

	ctx, cancel := context.WithCancel(context.Background())
	e.pool.Start(ctx)

	require.Eventually(t, func() bool {
		job, err := e.jobRepo.GetByID(context.Background(), jobID)
		return err == nil && job.Status == constants.JobStatusAwaitingApproval
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	done := make(chan struct{})
	go func() { e.pool.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("pool did not drain after cancel")
	}
}
