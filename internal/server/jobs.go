package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	syncv1 "github.com/optipix/imagesync/gen/proto/sync/v1"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/export"
	"github.com/optipix/imagesync/internal/jobs"
	"github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/selection"
)

// SyncJobsService exposes the job lifecycle over gRPC.
type SyncJobsService struct {
	syncv1.UnimplementedSyncJobsServiceServer
	jobs     *jobs.Service
	bulk     *selection.Manager
	exporter *export.Service
	logger   *slog.Logger
}

func NewSyncJobsService(jobSvc *jobs.Service, bulk *selection.Manager, exporter *export.Service, logger *slog.Logger) *SyncJobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SyncJobsService{
		jobs:     jobSvc,
		bulk:     bulk,
		exporter: exporter,
		logger:   logger,
	}
}

func (s *SyncJobsService) CreateJob(ctx context.Context, req *syncv1.CreateJobRequest) (*syncv1.CreateJobResponse, error) {
	ownerID, err := parseUUIDField(req.GetOwnerId(), "owner_id")
	if err != nil {
		return nil, err
	}
	storeID, err := parseUUIDField(req.GetStoreId(), "store_id")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, common.InvalidArgumentError("name is required")
	}

	in := jobs.CreateJobInput{
		OwnerID:      ownerID,
		StoreID:      storeID,
		Name:         req.GetName(),
		StoreDomain:  req.GetStoreDomain(),
		Folder:       req.GetFolder(),
		TriggerType:  constants.TriggerType(req.GetTriggerType()),
		PresetType:   constants.PresetType(req.GetPresetType()),
		ProductCount: int(req.GetProductCount()),
	}
	if in.TriggerType == "" {
		in.TriggerType = constants.TriggerManual
	}
	if pid := strings.TrimSpace(req.GetPresetId()); pid != "" {
		presetID, err := uuid.Parse(pid)
		if err != nil {
			return nil, common.InvalidArgumentError("preset_id must be a UUID")
		}
		in.PresetID = &presetID
	}
	if prompt := req.GetCustomPrompt(); prompt != "" {
		in.CustomPrompt = &prompt
	}
	for _, it := range req.GetItems() {
		in.Items = append(in.Items, repository.CreateItemParams{
			ExternalProductID: it.GetExternalProductId(),
			ExternalImageID:   it.GetExternalImageId(),
			OriginalURL:       it.GetOriginalUrl(),
		})
	}

	job, err := s.jobs.CreateJob(ctx, in)
	if err != nil {
		return nil, rpcError(s.logger, "create job", err)
	}
	s.logger.Info("job created", "job_id", job.ID, "store_id", job.StoreID, "images", job.ImageCount)
	return &syncv1.CreateJobResponse{Job: toPBJob(job)}, nil
}

func (s *SyncJobsService) GetJob(ctx context.Context, req *syncv1.GetJobRequest) (*syncv1.GetJobResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, rpcError(s.logger, "get job", err)
	}
	return &syncv1.GetJobResponse{Job: toPBJob(job)}, nil
}

func (s *SyncJobsService) ListJobs(ctx context.Context, req *syncv1.ListJobsRequest) (*syncv1.ListJobsResponse, error) {
	var storeID *uuid.UUID
	if sid := strings.TrimSpace(req.GetStoreId()); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return nil, common.InvalidArgumentError("store_id must be a UUID")
		}
		storeID = &id
	}
	rows, err := s.jobs.ListJobs(ctx, storeID, int(req.GetLimit()))
	if err != nil {
		return nil, rpcError(s.logger, "list jobs", err)
	}
	return &syncv1.ListJobsResponse{Jobs: toPBJobs(rows)}, nil
}

func (s *SyncJobsService) ListJobItems(ctx context.Context, req *syncv1.ListJobItemsRequest) (*syncv1.ListJobItemsResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	items, err := s.jobs.ListItems(ctx, jobID)
	if err != nil {
		return nil, rpcError(s.logger, "list job items", err)
	}
	resp := &syncv1.ListJobItemsResponse{Items: make([]*syncv1.JobItem, 0, len(items))}
	for _, it := range items {
		resp.Items = append(resp.Items, toPBJobItem(it))
	}
	return resp, nil
}

func (s *SyncJobsService) ApproveJob(ctx context.Context, req *syncv1.ApproveJobRequest) (*syncv1.ApproveJobResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.ApproveJob(ctx, jobID)
	if err != nil {
		return nil, rpcError(s.logger, "approve job", err)
	}
	s.logger.Info("job approved", "job_id", job.ID)
	return &syncv1.ApproveJobResponse{Job: toPBJob(job)}, nil
}

func (s *SyncJobsService) CancelJob(ctx context.Context, req *syncv1.CancelJobRequest) (*syncv1.CancelJobResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.CancelJob(ctx, jobID, req.GetReason())
	if err != nil {
		return nil, rpcError(s.logger, "cancel job", err)
	}
	s.logger.Info("job cancelled", "job_id", job.ID, "reason", req.GetReason())
	return &syncv1.CancelJobResponse{Job: toPBJob(job)}, nil
}

func (s *SyncJobsService) RetryJob(ctx context.Context, req *syncv1.RetryJobRequest) (*syncv1.RetryJobResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	job, err := s.jobs.RetryJob(ctx, jobID)
	if err != nil {
		return nil, rpcError(s.logger, "retry job", err)
	}
	s.logger.Info("job requeued for push", "job_id", job.ID)
	return &syncv1.RetryJobResponse{Job: toPBJob(job)}, nil
}

func (s *SyncJobsService) ApplyBulk(ctx context.Context, req *syncv1.ApplyBulkRequest) (*syncv1.ApplyBulkResponse, error) {
	action := selection.Action(strings.ToLower(strings.TrimSpace(req.GetAction())))
	switch action {
	case selection.ActionApprove, selection.ActionCancel, selection.ActionRetry:
	default:
		return nil, common.InvalidArgumentErrorf("unknown bulk action %q", req.GetAction())
	}
	if len(req.GetJobIds()) == 0 {
		return nil, common.InvalidArgumentError("job_ids is required")
	}

	ids := make([]uuid.UUID, 0, len(req.GetJobIds()))
	for _, raw := range req.GetJobIds() {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("job_ids contains a non-UUID value %q", raw)
		}
		ids = append(ids, id)
	}

	outcomes, err := s.bulk.ApplyBulk(ctx, ids, action)
	if err != nil {
		return nil, rpcError(s.logger, "apply bulk", err)
	}

	resp := &syncv1.ApplyBulkResponse{Outcomes: make([]*syncv1.BulkOutcome, 0, len(outcomes))}
	for _, o := range outcomes {
		resp.Outcomes = append(resp.Outcomes, &syncv1.BulkOutcome{
			JobId:  o.JobID.String(),
			Ok:     o.OK,
			Status: string(o.Status),
			Error:  o.Error,
		})
		if o.OK {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	return resp, nil
}

func (s *SyncJobsService) ExportJobReport(ctx context.Context, req *syncv1.ExportJobReportRequest) (*syncv1.ExportJobReportResponse, error) {
	jobID, err := parseUUIDField(req.GetJobId(), "job_id")
	if err != nil {
		return nil, err
	}
	content, err := s.exporter.ExportJobReportXLSX(ctx, jobID)
	if err != nil {
		return nil, rpcError(s.logger, "export job report", err)
	}
	return &syncv1.ExportJobReportResponse{
		Filename: fmt.Sprintf("job-report-%s.xlsx", jobID),
		Content:  content,
	}, nil
}

func parseUUIDField(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, common.InvalidArgumentErrorf("%s must be a UUID", field)
	}
	return id, nil
}
