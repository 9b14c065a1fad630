// Package repositorytest provides in-memory repository implementations for
// tests. They mirror the conditional-update semantics of the database-backed
// repositories so services can be exercised without a database.
package repositorytest

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/common"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/repository"
)

// MemJobRepo is an in-memory repository.SyncJobRepository.
type MemJobRepo struct {
	mu    sync.Mutex
	jobs  map[uuid.UUID]*entity.SyncJob
	items *MemItemRepo

	// FailCreate makes the next Create calls return an error, for testing
	// reservation rollback.
	FailCreate bool
}

func NewMemJobRepo(items *MemItemRepo) *MemJobRepo {
	return &MemJobRepo{jobs: make(map[uuid.UUID]*entity.SyncJob), items: items}
}

// JobCount returns how many jobs are stored.
func (f *MemJobRepo) JobCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.jobs)
}

func (f *MemJobRepo) Create(_ context.Context, p repository.CreateJobParams) (*entity.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailCreate {
		return nil, errors.New("create refused")
	}
	job := &entity.SyncJob{
		ID:           p.ID,
		OwnerID:      p.OwnerID,
		StoreID:      p.StoreID,
		Name:         p.Name,
		StoreDomain:  p.StoreDomain,
		Folder:       p.Folder,
		TriggerType:  p.TriggerType,
		PresetType:   p.PresetType,
		PresetID:     p.PresetID,
		CustomPrompt: p.CustomPrompt,
		ProductCount: p.ProductCount,
		ImageCount:   len(p.Items),
		Status:       constants.JobStatusPending,
		MaxRetries:   p.MaxRetries,
		ExpiresAt:    p.ExpiresAt,
		CreatedAt:    time.Now(),
	}
	f.jobs[job.ID] = job
	if f.items != nil {
		for _, it := range p.Items {
			f.items.Add(&entity.JobItem{
				ID:                uuid.New(),
				JobID:             job.ID,
				ExternalProductID: it.ExternalProductID,
				ExternalImageID:   it.ExternalImageID,
				OriginalURL:       it.OriginalURL,
				Status:            constants.ItemStatusQueued,
			})
		}
	}
	return cloneJob(job), nil
}

func (f *MemJobRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneJob(job), nil
}

func (f *MemJobRepo) List(_ context.Context, storeID *uuid.UUID, limit int) ([]*entity.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.SyncJob
	for _, j := range f.jobs {
		if storeID != nil && j.StoreID != *storeID {
			continue
		}
		out = append(out, cloneJob(j))
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *MemJobRepo) ListClaimable(_ context.Context, now time.Time, limit int) ([]*entity.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.SyncJob
	for _, j := range f.jobs {
		due := j.NextRetryAt == nil || !j.NextRetryAt.After(now)
		if (j.Status == constants.JobStatusPending && due) || j.Status == constants.JobStatusApproved {
			out = append(out, cloneJob(j))
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.Before(out[k].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *MemJobRepo) ListExpired(_ context.Context, now time.Time, limit int) ([]*entity.SyncJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.SyncJob
	for _, j := range f.jobs {
		if j.Status == constants.JobStatusAwaitingApproval && !j.ExpiresAt.After(now) {
			out = append(out, cloneJob(j))
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *MemJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *MemJobRepo) ClaimProcessing(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status != constants.JobStatusPending || j.ApprovedAt != nil {
		return false, nil
	}
	if j.NextRetryAt != nil && j.NextRetryAt.After(now) {
		return false, nil
	}
	j.Status = constants.JobStatusProcessing
	return true, nil
}

func (f *MemJobRepo) ClaimPushing(_ context.Context, id uuid.UUID, now time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.ApprovedAt == nil {
		return false, nil
	}
	if j.Status != constants.JobStatusApproved && j.Status != constants.JobStatusPending {
		return false, nil
	}
	if j.NextRetryAt != nil && j.NextRetryAt.After(now) {
		return false, nil
	}
	j.Status = constants.JobStatusPushing
	return true, nil
}

func (f *MemJobRepo) MarkAwaitingApproval(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status != constants.JobStatusProcessing {
		return false, nil
	}
	j.Status = constants.JobStatusAwaitingApproval
	return true, nil
}

func (f *MemJobRepo) Approve(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status != constants.JobStatusAwaitingApproval || !j.ExpiresAt.After(at) {
		return false, nil
	}
	j.Status = constants.JobStatusApproved
	j.ApprovedAt = &at
	return true, nil
}

func (f *MemJobRepo) Complete(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status != constants.JobStatusPushing {
		return false, nil
	}
	j.Status = constants.JobStatusCompleted
	j.CompletedAt = &at
	j.NextRetryAt = nil
	j.LastError = nil
	return true, nil
}

func (f *MemJobRepo) Fail(_ context.Context, id uuid.UUID, lastError string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status.IsTerminal() {
		return false, nil
	}
	j.Status = constants.JobStatusFailed
	j.LastError = &lastError
	j.NextRetryAt = nil
	return true, nil
}

func (f *MemJobRepo) Cancel(_ context.Context, id uuid.UUID, reason string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status.IsTerminal() {
		return false, nil
	}
	j.Status = constants.JobStatusCancelled
	j.LastError = &reason
	j.NextRetryAt = nil
	return true, nil
}

func (f *MemJobRepo) ScheduleRetry(_ context.Context, id uuid.UUID, nextRetryAt time.Time, lastError string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status != constants.JobStatusPushing {
		return false, nil
	}
	j.Status = constants.JobStatusPending
	j.RetryCount++
	j.NextRetryAt = &nextRetryAt
	j.LastError = &lastError
	return true, nil
}

func (f *MemJobRepo) Requeue(_ context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok || j.Status != constants.JobStatusFailed || j.ApprovedAt == nil {
		return false, nil
	}
	j.Status = constants.JobStatusPending
	j.RetryCount = 0
	j.NextRetryAt = nil
	j.LastError = nil
	return true, nil
}

func (f *MemJobRepo) AddProgress(_ context.Context, id uuid.UUID, processedDelta, failedDelta int, tokensDelta int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	j.ProcessedCount += processedDelta
	j.FailedCount += failedDelta
	j.TokensUsed += tokensDelta
	return nil
}

func (f *MemJobRepo) AddPushed(_ context.Context, id uuid.UUID, delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.jobs[id]
	if !ok {
		return common.ErrNotFound
	}
	j.PushedCount += delta
	return nil
}

func cloneJob(j *entity.SyncJob) *entity.SyncJob {
	c := *j
	return &c
}

// MemItemRepo is an in-memory repository.JobItemRepository.
type MemItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]*entity.JobItem
}

func NewMemItemRepo() *MemItemRepo {
	return &MemItemRepo{items: make(map[uuid.UUID]*entity.JobItem)}
}

// Add seeds one item directly.
func (f *MemItemRepo) Add(it *entity.JobItem) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[it.ID] = it
}

func (f *MemItemRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]*entity.JobItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.JobItem
	for _, it := range f.items {
		if it.JobID == jobID {
			out = append(out, cloneItem(it))
		}
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID.String() < out[k].ID.String() })
	return out, nil
}

func (f *MemItemRepo) ListByStatus(_ context.Context, jobID uuid.UUID, statuses ...constants.ItemStatus) ([]*entity.JobItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.JobItem
	for _, it := range f.items {
		if it.JobID != jobID {
			continue
		}
		for _, s := range statuses {
			if it.Status == s {
				out = append(out, cloneItem(it))
				break
			}
		}
	}
	return out, nil
}

func (f *MemItemRepo) ListPushable(_ context.Context, jobID uuid.UUID, maxAttempts int) ([]*entity.JobItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.JobItem
	for _, it := range f.items {
		if it.JobID != jobID {
			continue
		}
		if it.Status == constants.ItemStatusReady {
			out = append(out, cloneItem(it))
			continue
		}
		if it.Status == constants.ItemStatusFailed && it.PushRetryable && it.PushAttempts < maxAttempts {
			out = append(out, cloneItem(it))
		}
	}
	return out, nil
}

func (f *MemItemRepo) CountUnprocessed(_ context.Context, jobID uuid.UUID) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, it := range f.items {
		if it.JobID == jobID && !it.Status.IsProcessed() {
			n++
		}
	}
	return n, nil
}

func (f *MemItemRepo) MarkProcessing(_ context.Context, id uuid.UUID) (bool, error) {
	return f.transition(id, func(it *entity.JobItem) bool {
		if it.Status != constants.ItemStatusQueued {
			return false
		}
		it.Status = constants.ItemStatusProcessing
		return true
	})
}

func (f *MemItemRepo) MarkReady(_ context.Context, id uuid.UUID, optimizedURL, storagePath string) (bool, error) {
	return f.transition(id, func(it *entity.JobItem) bool {
		if it.Status != constants.ItemStatusProcessing {
			return false
		}
		it.Status = constants.ItemStatusReady
		it.OptimizedURL = &optimizedURL
		it.OptimizedStoragePath = &storagePath
		return true
	})
}

func (f *MemItemRepo) MarkFailed(_ context.Context, id uuid.UUID, message string) (bool, error) {
	return f.transition(id, func(it *entity.JobItem) bool {
		it.Status = constants.ItemStatusFailed
		it.LastPushError = &message
		it.PushRetryable = false
		return true
	})
}

func (f *MemItemRepo) MarkSkipped(_ context.Context, id uuid.UUID) (bool, error) {
	return f.transition(id, func(it *entity.JobItem) bool {
		it.Status = constants.ItemStatusSkipped
		return true
	})
}

func (f *MemItemRepo) MarkPushing(_ context.Context, id uuid.UUID) (bool, error) {
	return f.transition(id, func(it *entity.JobItem) bool {
		if it.Status != constants.ItemStatusReady && it.Status != constants.ItemStatusFailed {
			return false
		}
		it.Status = constants.ItemStatusPushing
		it.PushAttempts++
		return true
	})
}

func (f *MemItemRepo) MarkPushed(_ context.Context, id uuid.UUID, at time.Time) (bool, error) {
	return f.transition(id, func(it *entity.JobItem) bool {
		if it.Status != constants.ItemStatusPushing {
			return false
		}
		it.Status = constants.ItemStatusPushed
		it.PushedAt = &at
		return true
	})
}

func (f *MemItemRepo) MarkPushFailed(_ context.Context, id uuid.UUID, message string, retryable bool) (bool, error) {
	return f.transition(id, func(it *entity.JobItem) bool {
		if it.Status != constants.ItemStatusPushing {
			return false
		}
		it.Status = constants.ItemStatusFailed
		it.LastPushError = &message
		it.PushRetryable = retryable
		return true
	})
}

func (f *MemItemRepo) transition(id uuid.UUID, fn func(*entity.JobItem) bool) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	it, ok := f.items[id]
	if !ok {
		return false, nil
	}
	return fn(it), nil
}

func cloneItem(it *entity.JobItem) *entity.JobItem {
	c := *it
	return &c
}

// MemLedgerRepo is an in-memory repository.LedgerRepository.
type MemLedgerRepo struct {
	mu           sync.Mutex
	balances     map[uuid.UUID]int64
	reservations map[uuid.UUID]*entity.TokenReservation
}

func NewMemLedgerRepo() *MemLedgerRepo {
	return &MemLedgerRepo{
		balances:     make(map[uuid.UUID]int64),
		reservations: make(map[uuid.UUID]*entity.TokenReservation),
	}
}

// OpenCount returns how many open reservations a job has.
func (m *MemLedgerRepo) OpenCount(jobID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, r := range m.reservations {
		if r.JobID == jobID && r.ReleasedAt == nil {
			n++
		}
	}
	return n
}

// Conserved returns available + open remainders + consumed for one owner.
func (m *MemLedgerRepo) Conserved(ownerID uuid.UUID) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := m.balances[ownerID]
	for _, r := range m.reservations {
		if r.OwnerID != ownerID {
			continue
		}
		total += r.AmountConsumed
		if r.ReleasedAt == nil {
			total += r.AmountReserved - r.AmountConsumed
		}
	}
	return total
}

func (m *MemLedgerRepo) GetAccount(_ context.Context, ownerID uuid.UUID) (*entity.TokenAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[ownerID]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &entity.TokenAccount{OwnerID: ownerID, Balance: bal}, nil
}

func (m *MemLedgerRepo) Credit(_ context.Context, ownerID uuid.UUID, amount int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[ownerID] += amount
	return nil
}

// ReserveIfAvailable checks, debits, and opens the reservation under one
// lock hold, matching the single-transaction semantics of the real repo.
func (m *MemLedgerRepo) ReserveIfAvailable(_ context.Context, ownerID, jobID uuid.UUID, amount int64) (*entity.TokenReservation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reservations {
		if r.JobID == jobID && r.ReleasedAt == nil {
			return nil, false, errors.New("job already has an open reservation")
		}
	}
	if m.balances[ownerID] < amount {
		return nil, false, nil
	}
	m.balances[ownerID] -= amount
	res := &entity.TokenReservation{
		ID:             uuid.New(),
		OwnerID:        ownerID,
		JobID:          jobID,
		AmountReserved: amount,
		CreatedAt:      time.Now(),
	}
	m.reservations[res.ID] = res
	return cloneReservation(res), true, nil
}

func (m *MemLedgerRepo) GetReservation(_ context.Context, id uuid.UUID) (*entity.TokenReservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return cloneReservation(res), nil
}

func (m *MemLedgerRepo) OpenReservationByJob(_ context.Context, jobID uuid.UUID) (*entity.TokenReservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reservations {
		if r.JobID == jobID && r.ReleasedAt == nil {
			return cloneReservation(r), nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *MemLedgerRepo) ConsumeIfWithin(_ context.Context, reservationID uuid.UUID, amount int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[reservationID]
	if !ok || res.ReleasedAt != nil {
		return false, nil
	}
	if res.AmountConsumed+amount > res.AmountReserved {
		return false, nil
	}
	res.AmountConsumed += amount
	return true, nil
}

func (m *MemLedgerRepo) ReleaseOnce(_ context.Context, reservationID uuid.UUID) (int64, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[reservationID]
	if !ok {
		return 0, false, common.ErrNotFound
	}
	if res.ReleasedAt != nil {
		return 0, false, nil
	}
	now := time.Now()
	res.ReleasedAt = &now
	remainder := res.AmountReserved - res.AmountConsumed
	m.balances[res.OwnerID] += remainder
	return remainder, true, nil
}

func cloneReservation(r *entity.TokenReservation) *entity.TokenReservation {
	c := *r
	return &c
}
