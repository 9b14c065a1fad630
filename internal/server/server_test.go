package server

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/optipix/imagesync/constants"
	syncv1 "github.com/optipix/imagesync/gen/proto/sync/v1"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/export"
	"github.com/optipix/imagesync/internal/jobs"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/queue"
	"github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/repository/repositorytest"
	"github.com/optipix/imagesync/internal/selection"
)

type testEnv struct {
	svc     *SyncJobsService
	ledRepo *repositorytest.MemLedgerRepo
	owner   uuid.UUID
	store   uuid.UUID
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	itemRepo := repositorytest.NewMemItemRepo()
	jobRepo := repositorytest.NewMemJobRepo(itemRepo)
	ledRepo := repositorytest.NewMemLedgerRepo()

	owner := uuid.New()
	require.NoError(t, ledRepo.Credit(context.Background(), owner, 100))

	cfg := common.JobsConfig{
		CostPerItem:     1,
		MaxRetries:      3,
		MaxItemAttempts: 3,
		RetryBaseDelay:  time.Second,
		RetryMaxDelay:   time.Minute,
		ApprovalTTL:     time.Hour,
	}
	ledSvc := ledger.NewService(ledRepo, nil)
	jobSvc := jobs.NewService(jobRepo, itemRepo, ledSvc, cfg, nil)
	bulk := selection.NewManager(jobSvc, nil)
	exporter := export.NewService(jobRepo, itemRepo, ledSvc, nil)

	return &testEnv{
		svc:     NewSyncJobsService(jobSvc, bulk, exporter, nil),
		ledRepo: ledRepo,
		owner:   owner,
		store:   uuid.New(),
	}
}

func (e *testEnv) createRequest(n int) *syncv1.CreateJobRequest {
	req := &syncv1.CreateJobRequest{
		OwnerId:      e.owner.String(),
		StoreId:      e.store.String(),
		Name:         "summer catalog",
		StoreDomain:  "shop.example.com",
		Folder:       "summer",
		PresetType:   string(constants.PresetCustom),
		CustomPrompt: "brighten and crop square",
	}
	for i := 0; i < n; i++ {
		req.Items = append(req.Items, &syncv1.NewJobItem{
			ExternalProductId: "prod-1",
			ExternalImageId:   uuid.NewString(),
			OriginalUrl:       "https://cdn.example.com/img.jpg",
		})
	}
	return req
}

func requireCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a grpc status, got %v", err)
	assert.Equal(t, want, st.Code(), "status message: %s", st.Message())
}

func TestCreateJobAndGetJob(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.svc.CreateJob(ctx, env.createRequest(3))
	require.NoError(t, err)
	require.NotNil(t, resp.GetJob())
	assert.Equal(t, string(constants.JobStatusPending), resp.GetJob().GetStatus())
	assert.Equal(t, int32(3), resp.GetJob().GetImageCount())
	assert.NotEmpty(t, resp.GetJob().GetExpiresAt())

	got, err := env.svc.GetJob(ctx, &syncv1.GetJobRequest{JobId: resp.GetJob().GetId()})
	require.NoError(t, err)
	assert.Equal(t, resp.GetJob().GetId(), got.GetJob().GetId())

	items, err := env.svc.ListJobItems(ctx, &syncv1.ListJobItemsRequest{JobId: resp.GetJob().GetId()})
	require.NoError(t, err)
	assert.Len(t, items.GetItems(), 3)
}

func TestCreateJobValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.CreateJob(ctx, &syncv1.CreateJobRequest{OwnerId: "not-a-uuid"})
	requireCode(t, err, codes.InvalidArgument)

	req := env.createRequest(0)
	_, err = env.svc.CreateJob(ctx, req)
	requireCode(t, err, codes.InvalidArgument)

	req = env.createRequest(2)
	req.Name = "  "
	_, err = env.svc.CreateJob(ctx, req)
	requireCode(t, err, codes.InvalidArgument)
}

func TestCreateJobInsufficientFunds(t *testing.T) {
	env := newTestEnv(t)

	// Balance is 100 at one token per image.
	_, err := env.svc.CreateJob(context.Background(), env.createRequest(101))
	requireCode(t, err, codes.ResourceExhausted)
}

func TestGetJobNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.GetJob(context.Background(), &syncv1.GetJobRequest{JobId: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestApproveRejectedOutsideReview(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateJob(ctx, env.createRequest(1))
	require.NoError(t, err)

	// Still PENDING, nothing processed yet.
	_, err = env.svc.ApproveJob(ctx, &syncv1.ApproveJobRequest{JobId: created.GetJob().GetId()})
	requireCode(t, err, codes.FailedPrecondition)
}

func TestCancelJobReleasesTokens(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateJob(ctx, env.createRequest(4))
	require.NoError(t, err)
	jobID := uuid.MustParse(created.GetJob().GetId())

	resp, err := env.svc.CancelJob(ctx, &syncv1.CancelJobRequest{
		JobId:  created.GetJob().GetId(),
		Reason: "wrong folder",
	})
	require.NoError(t, err)
	assert.Equal(t, string(constants.JobStatusCancelled), resp.GetJob().GetStatus())
	assert.Equal(t, 0, env.ledRepo.OpenCount(jobID))
}

func TestApplyBulk(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.svc.CreateJob(ctx, env.createRequest(1))
	require.NoError(t, err)
	missing := uuid.NewString()

	resp, err := env.svc.ApplyBulk(ctx, &syncv1.ApplyBulkRequest{
		Action: "cancel",
		JobIds: []string{first.GetJob().GetId(), missing},
	})
	require.NoError(t, err)
	require.Len(t, resp.GetOutcomes(), 2)
	assert.Equal(t, int32(1), resp.GetSucceeded())
	assert.Equal(t, int32(1), resp.GetFailed())
	assert.True(t, resp.GetOutcomes()[0].GetOk())
	assert.Equal(t, string(constants.JobStatusCancelled), resp.GetOutcomes()[0].GetStatus())
	assert.False(t, resp.GetOutcomes()[1].GetOk())
	assert.NotEmpty(t, resp.GetOutcomes()[1].GetError())
}

func TestApplyBulkValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.ApplyBulk(ctx, &syncv1.ApplyBulkRequest{Action: "explode", JobIds: []string{uuid.NewString()}})
	requireCode(t, err, codes.InvalidArgument)

	_, err = env.svc.ApplyBulk(ctx, &syncv1.ApplyBulkRequest{Action: "cancel"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = env.svc.ApplyBulk(ctx, &syncv1.ApplyBulkRequest{Action: "cancel", JobIds: []string{"nope"}})
	requireCode(t, err, codes.InvalidArgument)
}

func TestExportJobReport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	created, err := env.svc.CreateJob(ctx, env.createRequest(2))
	require.NoError(t, err)

	resp, err := env.svc.ExportJobReport(ctx, &syncv1.ExportJobReportRequest{JobId: created.GetJob().GetId()})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.GetContent())
	assert.Contains(t, resp.GetFilename(), created.GetJob().GetId())
}

type stubQueueRepo struct {
	rows  []entity.QueueRow
	stats entity.QueueStats
}

func (s *stubQueueRepo) ListPage(_ context.Context, _ uuid.UUID, _ repository.QueueFilter, offset, limit int) ([]entity.QueueRow, int, error) {
	if offset >= len(s.rows) {
		return nil, len(s.rows), nil
	}
	end := offset + limit
	if end > len(s.rows) {
		end = len(s.rows)
	}
	return s.rows[offset:end], len(s.rows), nil
}

func (s *stubQueueRepo) Stats(_ context.Context, _ uuid.UUID) (entity.QueueStats, error) {
	return s.stats, nil
}

func (s *stubQueueRepo) FolderStats(_ context.Context, _ uuid.UUID) ([]entity.FolderStats, error) {
	return []entity.FolderStats{{Folder: "summer", TotalCount: 2, CompletedPct: 50}}, nil
}

func newQueueEnv(t *testing.T, repo repository.QueueRepository) (*QueueService, uuid.UUID) {
	t.Helper()
	ledRepo := repositorytest.NewMemLedgerRepo()
	owner := uuid.New()
	require.NoError(t, ledRepo.Credit(context.Background(), owner, 42))

	queueSvc := queue.NewService(repo, nil)
	t.Cleanup(queueSvc.Stop)
	return NewQueueService(queueSvc, ledger.NewService(ledRepo, nil), nil), owner
}

func TestGetQueuePage(t *testing.T) {
	rows := make([]entity.QueueRow, 0, 60)
	for i := 0; i < 60; i++ {
		rows = append(rows, entity.QueueRow{
			JobID:   uuid.New(),
			StoreID: uuid.New(),
			Name:    "job",
			Status:  constants.JobStatusPending,
		})
	}
	svc, owner := newQueueEnv(t, &stubQueueRepo{rows: rows})

	resp, err := svc.GetQueuePage(context.Background(), &syncv1.GetQueuePageRequest{
		OwnerId:  owner.String(),
		Page:     2,
		PageSize: 50,
		Group:    "active",
	})
	require.NoError(t, err)
	assert.Len(t, resp.GetItems(), 10)
	assert.Equal(t, int32(60), resp.GetTotalCount())
	assert.Equal(t, int32(2), resp.GetTotalPages())
	assert.Equal(t, int32(2), resp.GetPage())
	assert.Equal(t, int32(50), resp.GetPageSize())
}

func TestGetQueuePageValidation(t *testing.T) {
	svc, owner := newQueueEnv(t, &stubQueueRepo{})
	ctx := context.Background()

	_, err := svc.GetQueuePage(ctx, &syncv1.GetQueuePageRequest{OwnerId: "bad"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.GetQueuePage(ctx, &syncv1.GetQueuePageRequest{OwnerId: owner.String(), Group: "stuck"})
	requireCode(t, err, codes.InvalidArgument)

	_, err = svc.GetQueuePage(ctx, &syncv1.GetQueuePageRequest{OwnerId: owner.String(), StoreId: "bad"})
	requireCode(t, err, codes.InvalidArgument)
}

func TestGetQueueStatsAndBalance(t *testing.T) {
	svc, owner := newQueueEnv(t, &stubQueueRepo{stats: entity.QueueStats{TotalCount: 7, QueuedCount: 2, ProcessingCount: 1, FailedCount: 3}})
	ctx := context.Background()

	stats, err := svc.GetQueueStats(ctx, &syncv1.GetQueueStatsRequest{OwnerId: owner.String()})
	require.NoError(t, err)
	assert.Equal(t, int32(7), stats.GetTotalCount())
	assert.Equal(t, int32(3), stats.GetFailedCount())

	folders, err := svc.GetFolderStats(ctx, &syncv1.GetFolderStatsRequest{OwnerId: owner.String()})
	require.NoError(t, err)
	require.Len(t, folders.GetFolders(), 1)
	assert.Equal(t, "summer", folders.GetFolders()[0].GetFolder())
	assert.InEpsilon(t, 50.0, folders.GetFolders()[0].GetCompletedPct(), 0.001)

	balance, err := svc.GetTokenBalance(ctx, &syncv1.GetTokenBalanceRequest{OwnerId: owner.String()})
	require.NoError(t, err)
	assert.Equal(t, int64(42), balance.GetBalance())
}
