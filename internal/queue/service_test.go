package queue

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/repository"
)

// fakeQueueRepo serves pages from a fixed slice and records the filters it
// was handed, so tests can assert on group expansion and call counts.
type fakeQueueRepo struct {
	rows        []entity.QueueRow
	lastFilter  repository.QueueFilter
	statsCalls  int
	folderCalls int
}

func (f *fakeQueueRepo) match(row entity.QueueRow, flt repository.QueueFilter) bool {
	if len(flt.Statuses) > 0 {
		found := false
		for _, s := range flt.Statuses {
			if row.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if flt.StoreID != nil && row.StoreID != *flt.StoreID {
		return false
	}
	return true
}

func (f *fakeQueueRepo) ListPage(_ context.Context, _ uuid.UUID, flt repository.QueueFilter, offset, limit int) ([]entity.QueueRow, int, error) {
	f.lastFilter = flt
	var matched []entity.QueueRow
	for _, r := range f.rows {
		if f.match(r, flt) {
			matched = append(matched, r)
		}
	}
	total := len(matched)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (f *fakeQueueRepo) Stats(_ context.Context, _ uuid.UUID) (entity.QueueStats, error) {
	f.statsCalls++
	return entity.QueueStats{TotalCount: len(f.rows)}, nil
}

func (f *fakeQueueRepo) FolderStats(_ context.Context, _ uuid.UUID) ([]entity.FolderStats, error) {
	f.folderCalls++
	return []entity.FolderStats{{Folder: "summer", TotalCount: len(f.rows)}}, nil
}

func seedRows(n int, status constants.JobStatus) []entity.QueueRow {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]entity.QueueRow, n)
	for i := range rows {
		rows[i] = entity.QueueRow{
			JobID:     uuid.New(),
			StoreID:   uuid.New(),
			Name:      fmt.Sprintf("job-%03d", i),
			Status:    status,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}
	return rows
}

func TestGetPagePagination(t *testing.T) {
	repo := &fakeQueueRepo{rows: seedRows(120, constants.JobStatusPending)}
	svc := NewService(repo, nil)
	defer svc.Stop()
	owner := uuid.New()

	page, err := svc.GetPage(context.Background(), owner, 1, 50, Filter{Group: constants.GroupAll})
	require.NoError(t, err)
	assert.Len(t, page.Items, 50)
	assert.Equal(t, 120, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 50, page.PageSize)

	page, err = svc.GetPage(context.Background(), owner, 3, 50, Filter{})
	require.NoError(t, err)
	assert.Len(t, page.Items, 20)

	// past the end: empty items, totals intact
	page, err = svc.GetPage(context.Background(), owner, 4, 50, Filter{})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 120, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
}

func TestGetPageClampsSizeAndPage(t *testing.T) {
	repo := &fakeQueueRepo{rows: seedRows(30, constants.JobStatusPending)}
	svc := NewService(repo, nil)
	defer svc.Stop()
	owner := uuid.New()

	cases := []struct {
		requested int
		want      int
	}{
		{0, 50},
		{-5, 50},
		{10, 25},
		{25, 25},
		{60, 50},
		{150, 100},
		{999, 200},
	}
	for _, tc := range cases {
		page, err := svc.GetPage(context.Background(), owner, 1, tc.requested, Filter{})
		require.NoError(t, err)
		assert.Equal(t, tc.want, page.PageSize, "requested %d", tc.requested)
	}

	// page 0 and negative pages are treated as page 1
	page, err := svc.GetPage(context.Background(), owner, 0, 25, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 25)
}

func TestGetPageExpandsStatusGroups(t *testing.T) {
	rows := append(seedRows(4, constants.JobStatusPending), seedRows(2, constants.JobStatusCompleted)...)
	rows = append(rows, seedRows(3, constants.JobStatusFailed)...)
	repo := &fakeQueueRepo{rows: rows}
	svc := NewService(repo, nil)
	defer svc.Stop()
	owner := uuid.New()

	page, err := svc.GetPage(context.Background(), owner, 1, 50, Filter{Group: constants.GroupActive})
	require.NoError(t, err)
	assert.Equal(t, 4, page.TotalCount)
	assert.ElementsMatch(t, constants.StatusesForGroup(constants.GroupActive), repo.lastFilter.Statuses)

	page, err = svc.GetPage(context.Background(), owner, 1, 50, Filter{Group: constants.GroupFailed})
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalCount)

	// all = no status filter
	page, err = svc.GetPage(context.Background(), owner, 1, 50, Filter{Group: constants.GroupAll})
	require.NoError(t, err)
	assert.Equal(t, 9, page.TotalCount)
	assert.Nil(t, repo.lastFilter.Statuses)
}

func TestStatsCached(t *testing.T) {
	repo := &fakeQueueRepo{rows: seedRows(5, constants.JobStatusPending)}
	svc := NewService(repo, nil)
	defer svc.Stop()
	owner := uuid.New()

	for i := 0; i < 3; i++ {
		stats, err := svc.GetStats(context.Background(), owner)
		require.NoError(t, err)
		assert.Equal(t, 5, stats.TotalCount)
	}
	assert.Equal(t, 1, repo.statsCalls)

	// a different owner misses the cache
	_, err := svc.GetStats(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.statsCalls)

	svc.Invalidate(owner)
	_, err = svc.GetStats(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.statsCalls)
}

func TestFolderStatsCached(t *testing.T) {
	repo := &fakeQueueRepo{rows: seedRows(5, constants.JobStatusPending)}
	svc := NewService(repo, nil)
	defer svc.Stop()
	owner := uuid.New()

	for i := 0; i < 2; i++ {
		stats, err := svc.GetFolderStats(context.Background(), owner)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, "summer", stats[0].Folder)
	}
	assert.Equal(t, 1, repo.folderCalls)
}
