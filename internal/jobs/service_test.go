package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/repository/repositorytest"
)

type fixture struct {
	svc       *Service
	jobRepo   *repositorytest.MemJobRepo
	itemRepo  *repositorytest.MemItemRepo
	ledRepo   *repositorytest.MemLedgerRepo
	led       *ledger.Service
	owner     uuid.UUID
	clockTime time.Time
}

func newFixture(t *testing.T, balance int64) *fixture {
	t.Helper()
	items := repositorytest.NewMemItemRepo()
	jobsRepo := repositorytest.NewMemJobRepo(items)
	ledRepo := repositorytest.NewMemLedgerRepo()
	led := ledger.NewService(ledRepo, nil)

	cfg := testJobsConfig()
	svc := NewService(jobsRepo, items, led, cfg, nil)

	f := &fixture{
		svc:       svc,
		jobRepo:   jobsRepo,
		itemRepo:  items,
		ledRepo:   ledRepo,
		led:       led,
		owner:     uuid.New(),
		clockTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	svc.now = func() time.Time { return f.clockTime }
	require.NoError(t, ledRepo.Credit(context.Background(), f.owner, balance))
	return f
}

func testJobsConfig() common.JobsConfig {
	return common.JobsConfig{
		CostPerItem:     2,
		MaxRetries:      3,
		MaxItemAttempts: 3,
		RetryBaseDelay:  30 * time.Second,
		RetryMaxDelay:   30 * time.Minute,
		ApprovalTTL:     72 * time.Hour,
	}
}

func (f *fixture) createInput(itemCount int) CreateJobInput {
	items := make([]repository.CreateItemParams, itemCount)
	for i := range items {
		items[i] = repository.CreateItemParams{
			ExternalProductID: uuid.NewString(),
			ExternalImageID:   uuid.NewString(),
			OriginalURL:       "https://cdn.example.com/raw.jpg",
		}
	}
	presetID := uuid.New()
	return CreateJobInput{
		OwnerID:      f.owner,
		StoreID:      uuid.New(),
		Name:         "summer refresh",
		StoreDomain:  "acme.myshop.example",
		Folder:       "summer",
		TriggerType:  constants.TriggerManual,
		PresetType:   constants.PresetStored,
		PresetID:     &presetID,
		ProductCount: itemCount,
		Items:        items,
	}
}

func TestCreateJobReservesTokensAndPersistsPending(t *testing.T) {
	f := newFixture(t, 100)

	job, err := f.svc.CreateJob(context.Background(), f.createInput(10))
	require.NoError(t, err)

	assert.Equal(t, constants.JobStatusPending, job.Status)
	assert.Equal(t, 10, job.ImageCount)
	assert.Equal(t, 3, job.MaxRetries)
	assert.Equal(t, f.clockTime.Add(72*time.Hour), job.ExpiresAt)

	// 10 items × 2 tokens held
	bal, err := f.led.Balance(context.Background(), f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(80), bal)
	assert.Equal(t, 1, f.ledRepo.OpenCount(job.ID))

	items, err := f.itemRepo.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Len(t, items, 10)
}

func TestCreateJobInsufficientFundsLeavesNoJob(t *testing.T) {
	f := newFixture(t, 5)

	_, err := f.svc.CreateJob(context.Background(), f.createInput(10))
	require.ErrorIs(t, err, ledger.ErrInsufficientFunds)

	assert.Zero(t, f.jobRepo.JobCount())
	bal, err := f.led.Balance(context.Background(), f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(5), bal)
}

func TestCreateJobReleasesHoldWhenPersistFails(t *testing.T) {
	f := newFixture(t, 100)
	f.jobRepo.FailCreate = true

	_, err := f.svc.CreateJob(context.Background(), f.createInput(10))
	require.Error(t, err)

	bal, err := f.led.Balance(context.Background(), f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(100), bal)
}

func TestCreateJobValidation(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	in := f.createInput(0)
	_, err := f.svc.CreateJob(ctx, in)
	assert.ErrorIs(t, err, ErrNoItems)

	in = f.createInput(2)
	in.PresetID = nil
	_, err = f.svc.CreateJob(ctx, in)
	assert.ErrorIs(t, err, ErrBadPreset)

	in = f.createInput(2)
	prompt := "make it pop"
	in.CustomPrompt = &prompt
	_, err = f.svc.CreateJob(ctx, in)
	assert.ErrorIs(t, err, ErrBadPreset)

	in = f.createInput(2)
	in.PresetType = constants.PresetCustom
	in.PresetID = nil
	in.CustomPrompt = &prompt
	_, err = f.svc.CreateJob(ctx, in)
	assert.NoError(t, err)
}

func TestApproveRequiresAwaitingApproval(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job, err := f.svc.CreateJob(ctx, f.createInput(2))
	require.NoError(t, err)

	_, err = f.svc.ApproveJob(ctx, job.ID)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, constants.JobStatusPending, invalid.From)
	assert.Equal(t, "approve", invalid.Command)

	// drive the job to the approval gate
	ok, err := f.svc.ClaimForProcessing(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)
	f.processAllItems(t, job.ID)
	ok, err = f.svc.FinishProcessing(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)

	approved, err := f.svc.ApproveJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedAt)
}

func TestApproveRejectedAfterWindowCloses(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job := f.jobAwaitingApproval(t)
	f.clockTime = job.ExpiresAt.Add(time.Minute)

	_, err := f.svc.ApproveJob(ctx, job.ID)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
}

func TestCancelReleasesReservation(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job, err := f.svc.CreateJob(ctx, f.createInput(5))
	require.NoError(t, err)

	cancelled, err := f.svc.CancelJob(ctx, job.ID, "changed my mind")
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCancelled, cancelled.Status)

	bal, err := f.led.Balance(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(100), bal)
	assert.Zero(t, f.ledRepo.OpenCount(job.ID))

	// cancelling a terminal job is rejected, state unchanged
	_, err = f.svc.CancelJob(ctx, job.ID, "again")
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, constants.JobStatusCancelled, invalid.From)
}

func TestRetryOnlyForFailedPushPhase(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	// failed before approval: not retryable by operator
	job, err := f.svc.CreateJob(ctx, f.createInput(2))
	require.NoError(t, err)
	_, err = f.svc.FailJob(ctx, job.ID, "optimizer unreachable")
	require.NoError(t, err)
	_, err = f.svc.RetryJob(ctx, job.ID)
	var invalid *InvalidTransitionError
	require.ErrorAs(t, err, &invalid)

	// failed after approval: requeued with a fresh budget
	pushJob := f.jobInPushing(t)
	ok, err := f.svc.FailJob(ctx, pushJob.ID, "storefront 500")
	require.NoError(t, err)
	require.True(t, ok)

	retried, err := f.svc.RetryJob(ctx, pushJob.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusPending, retried.Status)
	assert.Zero(t, retried.RetryCount)
	assert.Nil(t, retried.LastError)
}

func TestGetJobExpiresLazily(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job := f.jobAwaitingApproval(t)
	f.clockTime = job.ExpiresAt.Add(time.Hour)

	got, err := f.svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCancelled, got.Status)
	assert.Zero(t, f.ledRepo.OpenCount(job.ID))
}

func TestSweepExpired(t *testing.T) {
	f := newFixture(t, 1000)
	ctx := context.Background()

	stale := f.jobAwaitingApproval(t)
	fresh, err := f.svc.CreateJob(ctx, f.createInput(2))
	require.NoError(t, err)

	f.clockTime = stale.ExpiresAt.Add(time.Minute)
	// recreate a second awaiting job with a later window
	_ = fresh

	n, err := f.svc.SweepExpired(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := f.jobRepo.GetByID(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCancelled, got.Status)

	got, err = f.jobRepo.GetByID(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusPending, got.Status)
}

func TestFinishProcessingBarrier(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job, err := f.svc.CreateJob(ctx, f.createInput(3))
	require.NoError(t, err)
	ok, err := f.svc.ClaimForProcessing(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)

	// two of three processed: barrier holds
	items, err := f.itemRepo.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	for _, it := range items[:2] {
		f.markItemReady(t, it.ID)
	}
	fired, err := f.svc.FinishProcessing(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, fired)

	// last one fails processing: that still counts as processed
	ok, err = f.itemRepo.MarkProcessing(ctx, items[2].ID)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = f.itemRepo.MarkFailed(ctx, items[2].ID, "unsupported format")
	require.NoError(t, err)
	require.True(t, ok)

	fired, err = f.svc.FinishProcessing(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, fired)

	got, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusAwaitingApproval, got.Status)
}

func TestClaimIsExclusive(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job, err := f.svc.CreateJob(ctx, f.createInput(1))
	require.NoError(t, err)

	ok, err := f.svc.ClaimForProcessing(ctx, job.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.svc.ClaimForProcessing(ctx, job.ID)
	require.NoError(t, err)
	assert.False(t, ok, "second claim must lose")
}

func TestFinishPushRunRetriesThenFails(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job := f.jobInPushing(t)

	// three retryable cycles, then terminal failure on the fourth
	for cycle := 0; cycle < 3; cycle++ {
		got, err := f.jobRepo.GetByID(ctx, job.ID)
		require.NoError(t, err)
		require.NoError(t, f.svc.FinishPushRun(ctx, got, true, "storefront 503"))

		got, err = f.jobRepo.GetByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, constants.JobStatusPending, got.Status)
		assert.Equal(t, cycle+1, got.RetryCount)
		require.NotNil(t, got.NextRetryAt)
		assert.True(t, got.NextRetryAt.After(f.clockTime))

		// not claimable until the backoff passes
		ok, err := f.svc.ClaimForPushing(ctx, job.ID)
		require.NoError(t, err)
		assert.False(t, ok)
		f.clockTime = got.NextRetryAt.Add(time.Second)
		ok, err = f.svc.ClaimForPushing(ctx, job.ID)
		require.NoError(t, err)
		require.True(t, ok)
	}

	got, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.NoError(t, f.svc.FinishPushRun(ctx, got, true, "storefront 503"))

	got, err = f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, got.Status)
	assert.Equal(t, 3, got.RetryCount)
	assert.Zero(t, f.ledRepo.OpenCount(job.ID))
}

func TestFinishPushRunTerminalWhenNothingRetryable(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job := f.jobInPushing(t)
	require.NoError(t, f.svc.FinishPushRun(ctx, job, false, "image gone upstream"))

	got, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, got.Status)
	assert.Zero(t, got.RetryCount)
}

func TestCompleteReleasesRemainder(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	job := f.jobInPushing(t)

	// one of two items consumed its tokens during processing
	res, err := f.led.OpenReservationForJob(ctx, job.ID)
	require.NoError(t, err)
	require.NoError(t, f.led.Consume(ctx, res.ID, 2))

	ok, err := f.svc.CompleteJob(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)

	bal, err := f.led.Balance(ctx, f.owner)
	require.NoError(t, err)
	assert.Equal(t, int64(98), bal)
}

// helpers

func (f *fixture) jobAwaitingApproval(t *testing.T) *entity.SyncJob {
	t.Helper()
	ctx := context.Background()
	job, err := f.svc.CreateJob(ctx, f.createInput(2))
	require.NoError(t, err)
	ok, err := f.svc.ClaimForProcessing(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)
	f.processAllItems(t, job.ID)
	ok, err = f.svc.FinishProcessing(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)
	got, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	return got
}

func (f *fixture) jobInPushing(t *testing.T) *entity.SyncJob {
	t.Helper()
	ctx := context.Background()
	job := f.jobAwaitingApproval(t)
	_, err := f.svc.ApproveJob(ctx, job.ID)
	require.NoError(t, err)
	ok, err := f.svc.ClaimForPushing(ctx, job.ID)
	require.NoError(t, err)
	require.True(t, ok)
	got, err := f.jobRepo.GetByID(ctx, job.ID)
	require.NoError(t, err)
	return got
}

func (f *fixture) processAllItems(t *testing.T, jobID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	items, err := f.itemRepo.ListByJob(ctx, jobID)
	require.NoError(t, err)
	for _, it := range items {
		f.markItemReady(t, it.ID)
	}
}

func (f *fixture) markItemReady(t *testing.T, id uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	ok, err := f.itemRepo.MarkProcessing(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = f.itemRepo.MarkReady(ctx, id, "https://cdn/opt.jpg", "opt/x.jpg")
	require.NoError(t, err)
	require.True(t, ok)
}
