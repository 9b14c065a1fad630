package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	syncv1 "github.com/optipix/imagesync/gen/proto/sync/v1"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/queue"
)

// QueueService serves the paginated queue projection and its aggregates.
type QueueService struct {
	syncv1.UnimplementedQueueServiceServer
	queue  *queue.Service
	ledger *ledger.Service
	logger *slog.Logger
}

func NewQueueService(queueSvc *queue.Service, ledgerSvc *ledger.Service, logger *slog.Logger) *QueueService {
	if logger == nil {
		logger = slog.Default()
	}
	return &QueueService{
		queue:  queueSvc,
		ledger: ledgerSvc,
		logger: logger,
	}
}

func (s *QueueService) GetQueuePage(ctx context.Context, req *syncv1.GetQueuePageRequest) (*syncv1.GetQueuePageResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}

	f := queue.Filter{
		Folder: req.GetFolder(),
		Search: req.GetSearch(),
	}
	switch g := constants.StatusGroup(strings.ToLower(strings.TrimSpace(req.GetGroup()))); g {
	case "", constants.GroupAll:
		f.Group = constants.GroupAll
	case constants.GroupActive, constants.GroupCompleted, constants.GroupFailed:
		f.Group = g
	default:
		return nil, common.InvalidArgumentErrorf("unknown status group %q", req.GetGroup())
	}
	if sid := strings.TrimSpace(req.GetStoreId()); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return nil, common.InvalidArgumentError("store_id must be a UUID")
		}
		f.StoreID = &id
	}

	page, err := s.queue.GetPage(ctx, ownerID, int(req.GetPage()), int(req.GetPageSize()), f)
	if err != nil {
		return nil, rpcError(s.logger, "get queue page", err)
	}

	resp := &syncv1.GetQueuePageResponse{
		Items:      make([]*syncv1.QueueRow, 0, len(page.Items)),
		TotalCount: int32(page.TotalCount),
		TotalPages: int32(page.TotalPages),
		Page:       int32(page.Page),
		PageSize:   int32(page.PageSize),
	}
	for _, row := range page.Items {
		resp.Items = append(resp.Items, toPBQueueRow(row))
	}
	return resp, nil
}

func (s *QueueService) GetQueueStats(ctx context.Context, req *syncv1.GetQueueStatsRequest) (*syncv1.GetQueueStatsResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	stats, err := s.queue.GetStats(ctx, ownerID)
	if err != nil {
		return nil, rpcError(s.logger, "get queue stats", err)
	}
	return &syncv1.GetQueueStatsResponse{
		TotalCount:      int32(stats.TotalCount),
		QueuedCount:     int32(stats.QueuedCount),
		ProcessingCount: int32(stats.ProcessingCount),
		FailedCount:     int32(stats.FailedCount),
	}, nil
}

func (s *QueueService) GetFolderStats(ctx context.Context, req *syncv1.GetFolderStatsRequest) (*syncv1.GetFolderStatsResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	folders, err := s.queue.GetFolderStats(ctx, ownerID)
	if err != nil {
		return nil, rpcError(s.logger, "get folder stats", err)
	}
	resp := &syncv1.GetFolderStatsResponse{Folders: make([]*syncv1.FolderStats, 0, len(folders))}
	for _, f := range folders {
		resp.Folders = append(resp.Folders, &syncv1.FolderStats{
			Folder:          f.Folder,
			TotalCount:      int32(f.TotalCount),
			QueuedCount:     int32(f.QueuedCount),
			ProcessingCount: int32(f.ProcessingCount),
			FailedCount:     int32(f.FailedCount),
			CompletedPct:    f.CompletedPct,
		})
	}
	return resp, nil
}

func (s *QueueService) GetTokenBalance(ctx context.Context, req *syncv1.GetTokenBalanceRequest) (*syncv1.GetTokenBalanceResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	balance, err := s.ledger.Balance(ctx, ownerID)
	if err != nil {
		return nil, rpcError(s.logger, "get token balance", err)
	}
	return &syncv1.GetTokenBalanceResponse{Balance: balance}, nil
}
