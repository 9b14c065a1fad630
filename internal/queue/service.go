package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jellydator/ttlcache/v3"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/repository"
)

const statsTTL = 15 * time.Second

// Filter is the caller-facing queue filter. Group expansion into concrete
// statuses happens here so the repository only ever sees explicit sets.
type Filter struct {
	Group   constants.StatusGroup
	StoreID *uuid.UUID
	Folder  string
	Search  string
}

// Service is the read side of the queue: paginated rows plus aggregate
// counters, backed by pushed-down queries and a short-lived stats cache.
// Stats are polled by dashboards far more often than jobs change state, so
// a small TTL takes the hot aggregates off the database.
type Service struct {
	repo        repository.QueueRepository
	logger      *slog.Logger
	stats       *ttlcache.Cache[uuid.UUID, entity.QueueStats]
	folderStats *ttlcache.Cache[uuid.UUID, []entity.FolderStats]
}

func NewService(repo repository.QueueRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		repo:        repo,
		logger:      logger,
		stats:       ttlcache.New(ttlcache.WithTTL[uuid.UUID, entity.QueueStats](statsTTL)),
		folderStats: ttlcache.New(ttlcache.WithTTL[uuid.UUID, []entity.FolderStats](statsTTL)),
	}
	go s.stats.Start()
	go s.folderStats.Start()
	return s
}

// Stop halts the cache janitors. Call on shutdown.
func (s *Service) Stop() {
	s.stats.Stop()
	s.folderStats.Stop()
}

// GetPage serves one page of the projection. Pages are 1-based; page sizes
// snap to the allowed set. A page past the end comes back empty but still
// carries the correct totals, so pollers can clamp their own cursor.
// Rows read job status as stored: an AWAITING_APPROVAL job past its
// window stays visible here until the expiry sweeper cancels it.
func (s *Service) GetPage(ctx context.Context, ownerID uuid.UUID, page, pageSize int, f Filter) (*entity.QueuePage, error) {
	if page < 1 {
		page = 1
	}
	pageSize = constants.ClampPageSize(pageSize)

	rf := repository.QueueFilter{
		Statuses: constants.StatusesForGroup(f.Group),
		StoreID:  f.StoreID,
		Folder:   f.Folder,
		Search:   f.Search,
	}

	rows, total, err := s.repo.ListPage(ctx, ownerID, rf, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, err
	}

	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	return &entity.QueuePage{
		Items:      rows,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetStats returns the filter-free aggregate counters for one owner.
func (s *Service) GetStats(ctx context.Context, ownerID uuid.UUID) (entity.QueueStats, error) {
	if item := s.stats.Get(ownerID); item != nil {
		return item.Value(), nil
	}
	stats, err := s.repo.Stats(ctx, ownerID)
	if err != nil {
		return entity.QueueStats{}, err
	}
	s.stats.Set(ownerID, stats, ttlcache.DefaultTTL)
	return stats, nil
}

// GetFolderStats returns the per-folder aggregates for one owner.
func (s *Service) GetFolderStats(ctx context.Context, ownerID uuid.UUID) ([]entity.FolderStats, error) {
	if item := s.folderStats.Get(ownerID); item != nil {
		return item.Value(), nil
	}
	stats, err := s.repo.FolderStats(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	s.folderStats.Set(ownerID, stats, ttlcache.DefaultTTL)
	return stats, nil
}

// Invalidate drops the owner's cached stats, for callers that just issued
// a state transition and want the next poll to see it.
func (s *Service) Invalidate(ownerID uuid.UUID) {
	s.stats.Delete(ownerID)
	s.folderStats.Delete(ownerID)
}
