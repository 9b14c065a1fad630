package repository

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/gen/ent"
)

func newSQLiteClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	client, err := OpenSQLite(dsn, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Schema.Create(context.Background()))
	return client
}

func seedQueueJob(t *testing.T, entc *ent.Client, ownerID, storeID uuid.UUID, name, domain, folder string, status constants.JobStatus) uuid.UUID {
	t.Helper()
	job, err := entc.SyncJob.Create().
		SetOwnerID(ownerID).
		SetStoreID(storeID).
		SetName(name).
		SetStoreDomain(domain).
		SetFolder(folder).
		SetTriggerType(string(constants.TriggerManual)).
		SetPresetType(string(constants.PresetCustom)).
		SetProductCount(1).
		SetImageCount(1).
		SetStatus(string(status)).
		SetExpiresAt(time.Now().Add(time.Hour)).
		Save(context.Background())
	require.NoError(t, err)
	return job.ID
}

func TestQueueListPageSearch(t *testing.T) {
	entc := newSQLiteClient(t)
	repo := NewQueueRepository(entc, slog.Default())
	ctx := context.Background()

	owner := uuid.New()
	storeA := uuid.New()
	storeB := uuid.New()

	summerID := seedQueueJob(t, entc, owner, storeA, "Summer banners", "shop-a.example.com", "summer/banners", constants.JobStatusPending)
	seedQueueJob(t, entc, owner, storeB, "Summer products", "shop-b.example.com", "summer/products", constants.JobStatusCompleted)
	seedQueueJob(t, entc, owner, storeA, "Winter sale", "shop-a.example.com", "winter", constants.JobStatusFailed)
	seedQueueJob(t, entc, uuid.New(), storeA, "Summer decoy", "shop-a.example.com", "summer", constants.JobStatusPending)

	// free text is case-insensitive and matches name or store domain
	rows, total, err := repo.ListPage(ctx, owner, QueueFilter{Search: "sUmMeR"}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	rows, total, err = repo.ListPage(ctx, owner, QueueFilter{Search: "shop-b"}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Summer products", rows[0].Name)

	// a search term that parses as a uuid also matches the job id
	rows, total, err = repo.ListPage(ctx, owner, QueueFilter{Search: summerID.String()}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, summerID, rows[0].JobID)

	rows, total, err = repo.ListPage(ctx, owner, QueueFilter{Search: "nothing-matches-this"}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.Empty(t, rows)
}

func TestQueueListPageFilters(t *testing.T) {
	entc := newSQLiteClient(t)
	repo := NewQueueRepository(entc, slog.Default())
	ctx := context.Background()

	owner := uuid.New()
	storeA := uuid.New()
	storeB := uuid.New()

	seedQueueJob(t, entc, owner, storeA, "banners", "shop-a.example.com", "summer/banners", constants.JobStatusPending)
	seedQueueJob(t, entc, owner, storeB, "products", "shop-b.example.com", "summer/products", constants.JobStatusCompleted)
	seedQueueJob(t, entc, owner, storeA, "sale", "shop-a.example.com", "winter", constants.JobStatusFailed)

	// folder filter is prefix matching
	_, total, err := repo.ListPage(ctx, owner, QueueFilter{Folder: "summer"}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	rows, total, err := repo.ListPage(ctx, owner, QueueFilter{Folder: "summer/b"}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "summer/banners", rows[0].Folder)

	// status set is applied as given, no group expansion here
	rows, total, err = repo.ListPage(ctx, owner, QueueFilter{Statuses: []constants.JobStatus{constants.JobStatusFailed, constants.JobStatusCompleted}}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, rows, 2)

	_, total, err = repo.ListPage(ctx, owner, QueueFilter{StoreID: &storeB}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	// other owners never leak into the page
	_, total, err = repo.ListPage(ctx, uuid.New(), QueueFilter{}, 0, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestQueueListPageWindowing(t *testing.T) {
	entc := newSQLiteClient(t)
	repo := NewQueueRepository(entc, slog.Default())
	ctx := context.Background()

	owner := uuid.New()
	store := uuid.New()
	for i := 0; i < 7; i++ {
		seedQueueJob(t, entc, owner, store, fmt.Sprintf("job-%d", i), "shop.example.com", "f", constants.JobStatusPending)
	}

	rows, total, err := repo.ListPage(ctx, owner, QueueFilter{}, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Len(t, rows, 5)

	rows, total, err = repo.ListPage(ctx, owner, QueueFilter{}, 5, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Len(t, rows, 2)

	// beyond the last row: empty window, total intact
	rows, total, err = repo.ListPage(ctx, owner, QueueFilter{}, 10, 5)
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Empty(t, rows)
}

func TestQueueStatsClassification(t *testing.T) {
	entc := newSQLiteClient(t)
	repo := NewQueueRepository(entc, slog.Default())
	ctx := context.Background()

	owner := uuid.New()
	store := uuid.New()
	byStatus := map[constants.JobStatus]int{
		constants.JobStatusPending:          2,
		constants.JobStatusProcessing:       1,
		constants.JobStatusAwaitingApproval: 1,
		constants.JobStatusApproved:         1,
		constants.JobStatusPushing:          1,
		constants.JobStatusCompleted:        2,
		constants.JobStatusFailed:           1,
		constants.JobStatusCancelled:        1,
	}
	i := 0
	for status, n := range byStatus {
		for j := 0; j < n; j++ {
			seedQueueJob(t, entc, owner, store, fmt.Sprintf("job-%d", i), "shop.example.com", "f", status)
			i++
		}
	}

	stats, err := repo.Stats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 10, stats.TotalCount)
	assert.Equal(t, 2, stats.QueuedCount)
	assert.Equal(t, 1, stats.FailedCount)
	// processing/awaiting/approved/pushing are all in flight
	assert.Equal(t, 4, stats.ProcessingCount)
}

func TestQueueFolderStatsPercentage(t *testing.T) {
	entc := newSQLiteClient(t)
	repo := NewQueueRepository(entc, slog.Default())
	ctx := context.Background()

	owner := uuid.New()
	store := uuid.New()

	seedQueueJob(t, entc, owner, store, "a1", "shop.example.com", "summer", constants.JobStatusCompleted)
	seedQueueJob(t, entc, owner, store, "a2", "shop.example.com", "summer", constants.JobStatusCompleted)
	seedQueueJob(t, entc, owner, store, "a3", "shop.example.com", "summer", constants.JobStatusFailed)
	seedQueueJob(t, entc, owner, store, "a4", "shop.example.com", "summer", constants.JobStatusPending)
	seedQueueJob(t, entc, owner, store, "b1", "shop.example.com", "winter", constants.JobStatusProcessing)

	folders, err := repo.FolderStats(ctx, owner)
	require.NoError(t, err)
	require.Len(t, folders, 2)

	byFolder := make(map[string]int)
	for i, f := range folders {
		byFolder[f.Folder] = i
	}
	require.Contains(t, byFolder, "summer")
	require.Contains(t, byFolder, "winter")

	summer := folders[byFolder["summer"]]
	assert.Equal(t, 4, summer.TotalCount)
	assert.Equal(t, 1, summer.QueuedCount)
	assert.Equal(t, 1, summer.FailedCount)
	assert.Equal(t, 0, summer.ProcessingCount)
	assert.InEpsilon(t, 0.5, summer.CompletedPct, 0.0001)

	winter := folders[byFolder["winter"]]
	assert.Equal(t, 1, winter.TotalCount)
	assert.Equal(t, 1, winter.ProcessingCount)
	assert.Equal(t, 0.0, winter.CompletedPct)
}
