package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/ledger"
	"github.com/optipix/imagesync/internal/repository"
	"github.com/optipix/imagesync/internal/retrypolicy"
)

// CreateJobInput is the trigger-facing creation request. All target items
// are enumerated up front; the item set never grows after creation.
type CreateJobInput struct {
	OwnerID      uuid.UUID
	StoreID      uuid.UUID
	Name         string
	StoreDomain  string
	Folder       string
	TriggerType  constants.TriggerType
	PresetType   constants.PresetType
	PresetID     *uuid.UUID
	CustomPrompt *string
	ProductCount int
	Items        []repository.CreateItemParams
}

// Service owns the job lifecycle: creation against the token ledger,
// operator commands, and the transition bookkeeping the workers call into.
type Service struct {
	repo   repository.SyncJobRepository
	items  repository.JobItemRepository
	ledger *ledger.Service
	policy retrypolicy.Policy
	cfg    common.JobsConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewService(
	repo repository.SyncJobRepository,
	items repository.JobItemRepository,
	led *ledger.Service,
	cfg common.JobsConfig,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repo,
		items:  items,
		ledger: led,
		policy: retrypolicy.FromConfig(cfg),
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// CreateJob reserves tokens for the full item set and persists the job in
// PENDING. The reservation happens first; if it is refused, no job exists.
// If persisting fails after the hold, the hold is released.
func (s *Service) CreateJob(ctx context.Context, in CreateJobInput) (*entity.SyncJob, error) {
	if err := s.validateCreate(in); err != nil {
		return nil, err
	}

	jobID := uuid.New()
	cost := s.cfg.CostPerItem * int64(len(in.Items))

	if _, err := s.ledger.Reserve(ctx, in.OwnerID, jobID, cost); err != nil {
		return nil, err
	}

	job, err := s.repo.Create(ctx, repository.CreateJobParams{
		ID:           jobID,
		OwnerID:      in.OwnerID,
		StoreID:      in.StoreID,
		Name:         in.Name,
		StoreDomain:  in.StoreDomain,
		Folder:       in.Folder,
		TriggerType:  in.TriggerType,
		PresetType:   in.PresetType,
		PresetID:     in.PresetID,
		CustomPrompt: in.CustomPrompt,
		ProductCount: in.ProductCount,
		MaxRetries:   s.cfg.MaxRetries,
		ExpiresAt:    s.now().Add(s.cfg.ApprovalTTL),
		Items:        in.Items,
	})
	if err != nil {
		s.releaseReservation(ctx, jobID)
		return nil, err
	}
	return job, nil
}

func (s *Service) validateCreate(in CreateJobInput) error {
	if len(in.Items) == 0 {
		return ErrNoItems
	}
	if len(in.Items) > constants.MaxBatchSize {
		return ErrTooManyItems
	}
	switch in.PresetType {
	case constants.PresetStored:
		if in.PresetID == nil || in.CustomPrompt != nil {
			return ErrBadPreset
		}
	case constants.PresetCustom:
		if in.CustomPrompt == nil || *in.CustomPrompt == "" || in.PresetID != nil {
			return ErrBadPreset
		}
	default:
		return fmt.Errorf("%w: unknown preset type %q", common.ErrInvalidInput, in.PresetType)
	}
	return nil
}

// GetJob fetches a job, expiring it lazily: a job still awaiting approval
// past its window is cancelled and its token hold released before the
// (refetched) job is returned.
func (s *Service) GetJob(ctx context.Context, id uuid.UUID) (*entity.SyncJob, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.expireIfDue(ctx, job) {
		return s.repo.GetByID(ctx, id)
	}
	return job, nil
}

// ListJobs does not apply the lazy expiry that GetJob does: a job whose
// approval window just lapsed may still show as AWAITING_APPROVAL here
// until the sweeper's next pass or a direct GetJob read.
func (s *Service) ListJobs(ctx context.Context, storeID *uuid.UUID, limit int) ([]*entity.SyncJob, error) {
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}
	return s.repo.List(ctx, storeID, limit)
}

func (s *Service) ListItems(ctx context.Context, jobID uuid.UUID) ([]*entity.JobItem, error) {
	if _, err := s.repo.GetByID(ctx, jobID); err != nil {
		return nil, err
	}
	return s.items.ListByJob(ctx, jobID)
}

// ApproveJob moves an awaiting_approval job to approved, provided its
// approval window is still open.
func (s *Service) ApproveJob(ctx context.Context, id uuid.UUID) (*entity.SyncJob, error) {
	ok, err := s.repo.Approve(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.invalidTransition(ctx, id, "approve")
	}
	return s.repo.GetByID(ctx, id)
}

// CancelJob cancels any non-terminal job and releases its token hold.
func (s *Service) CancelJob(ctx context.Context, id uuid.UUID, reason string) (*entity.SyncJob, error) {
	if reason == "" {
		reason = "cancelled by operator"
	}
	ok, err := s.repo.Cancel(ctx, id, reason)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.invalidTransition(ctx, id, "cancel")
	}
	s.releaseReservation(ctx, id)
	return s.repo.GetByID(ctx, id)
}

// RetryJob is the operator command for a job that failed its push phase:
// it goes back to PENDING with a fresh retry budget, keeping its approval.
// Jobs that failed before approval cannot be retried this way.
func (s *Service) RetryJob(ctx context.Context, id uuid.UUID) (*entity.SyncJob, error) {
	ok, err := s.repo.Requeue(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.invalidTransition(ctx, id, "retry")
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) invalidTransition(ctx context.Context, id uuid.UUID, command string) error {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return &InvalidTransitionError{JobID: id, From: job.Status, Command: command}
}

// --- worker-facing transitions ---

// ListClaimable returns jobs a worker may attempt to claim right now.
func (s *Service) ListClaimable(ctx context.Context, limit int) ([]*entity.SyncJob, error) {
	return s.repo.ListClaimable(ctx, s.now(), limit)
}

// ClaimForProcessing atomically takes a fresh PENDING job. False means
// another worker won the race or the job moved on; the caller skips it.
func (s *Service) ClaimForProcessing(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ClaimProcessing(ctx, id, s.now())
}

// ClaimForPushing atomically takes an approved job (or a pending push
// retry) into PUSHING.
func (s *Service) ClaimForPushing(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.repo.ClaimPushing(ctx, id, s.now())
}

// FinishProcessing fires the barrier into AWAITING_APPROVAL once no item
// remains unprocessed. It returns false while items are still in flight.
func (s *Service) FinishProcessing(ctx context.Context, jobID uuid.UUID) (bool, error) {
	n, err := s.items.CountUnprocessed(ctx, jobID)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	return s.repo.MarkAwaitingApproval(ctx, jobID)
}

// CompleteJob finishes a push run that left no failed items, releasing the
// unconsumed remainder of the token hold.
func (s *Service) CompleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	ok, err := s.repo.Complete(ctx, id, s.now())
	if err != nil {
		return false, err
	}
	if ok {
		s.releaseReservation(ctx, id)
	}
	return ok, nil
}

// FailJob marks a job terminally failed and releases its token hold.
func (s *Service) FailJob(ctx context.Context, id uuid.UUID, lastError string) (bool, error) {
	ok, err := s.repo.Fail(ctx, id, lastError)
	if err != nil {
		return false, err
	}
	if ok {
		s.releaseReservation(ctx, id)
	}
	return ok, nil
}

// FinishPushRun settles a push phase that left failed items behind. The job
// loops back to PENDING when at least one failure was retryable and the
// retry budget is not exhausted; otherwise it fails terminally.
func (s *Service) FinishPushRun(ctx context.Context, job *entity.SyncJob, anyRetryable bool, lastError string) error {
	if anyRetryable && s.policy.ShouldRetry(job.RetryCount) {
		at := s.policy.NextRetryAt(s.now(), job.RetryCount)
		ok, err := s.repo.ScheduleRetry(ctx, job.ID, at, lastError)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Warn("retry schedule lost race", "job_id", job.ID)
		}
		return nil
	}
	_, err := s.FailJob(ctx, job.ID, lastError)
	return err
}

// AddProgress bumps the processing-phase counters on a job.
func (s *Service) AddProgress(ctx context.Context, id uuid.UUID, processedDelta, failedDelta int, tokensDelta int64) error {
	return s.repo.AddProgress(ctx, id, processedDelta, failedDelta, tokensDelta)
}

// AddPushed bumps the pushed counter on a job.
func (s *Service) AddPushed(ctx context.Context, id uuid.UUID, delta int) error {
	return s.repo.AddPushed(ctx, id, delta)
}

// SweepExpired cancels jobs whose approval window lapsed and releases
// their token holds. Returns how many jobs it expired.
func (s *Service) SweepExpired(ctx context.Context, limit int) (int, error) {
	expired, err := s.repo.ListExpired(ctx, s.now(), limit)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, job := range expired {
		if s.expireIfDue(ctx, job) {
			n++
		}
	}
	return n, nil
}

// expireIfDue cancels a job stuck in AWAITING_APPROVAL past its window.
// The cancel is a conditional update, so concurrent sweeps and reads
// settle on exactly one winner.
func (s *Service) expireIfDue(ctx context.Context, job *entity.SyncJob) bool {
	if job.Status != constants.JobStatusAwaitingApproval || job.ExpiresAt.After(s.now()) {
		return false
	}
	ok, err := s.repo.Cancel(ctx, job.ID, "approval window expired")
	if err != nil {
		s.logger.Error("expiry cancel failed", "job_id", job.ID, "error", err)
		return false
	}
	if ok {
		s.logger.Info("sync_job expired", "job_id", job.ID)
		s.releaseReservation(ctx, job.ID)
	}
	return ok
}

// releaseReservation returns the job's unconsumed token hold, if any.
// Safe to call more than once; release is idempotent.
func (s *Service) releaseReservation(ctx context.Context, jobID uuid.UUID) {
	res, err := s.ledger.OpenReservationForJob(ctx, jobID)
	if err != nil {
		if !errors.Is(err, common.ErrNotFound) {
			s.logger.Error("reservation lookup failed", "job_id", jobID, "error", err)
		}
		return
	}
	if err := s.ledger.Release(ctx, res.ID); err != nil {
		s.logger.Error("reservation release failed", "job_id", jobID, "reservation_id", res.ID, "error", err)
	}
}
