package selection

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/entity"
)

// JobCommander is the slice of the job service bulk actions go through.
type JobCommander interface {
	ApproveJob(ctx context.Context, id uuid.UUID) (*entity.SyncJob, error)
	CancelJob(ctx context.Context, id uuid.UUID, reason string) (*entity.SyncJob, error)
	RetryJob(ctx context.Context, id uuid.UUID) (*entity.SyncJob, error)
}

// Action is a bulk lifecycle command applied to every selected job.
type Action string

const (
	ActionApprove Action = "approve"
	ActionCancel  Action = "cancel"
	ActionRetry   Action = "retry"
)

// Outcome is the per-job result of a bulk action. Failures carry the
// rejection reason; they never roll back the jobs that succeeded.
type Outcome struct {
	JobID  uuid.UUID           `json:"job_id"`
	OK     bool                `json:"ok"`
	Status constants.JobStatus `json:"status,omitempty"`
	Error  string              `json:"error,omitempty"`
}

// Manager tracks the set of selected job ids, scoped to the client's
// current filtered view. The selection never survives a scope change: the
// ids only mean something against the filter they were picked under.
type Manager struct {
	jobs   JobCommander
	logger *slog.Logger

	mu       sync.Mutex
	active   bool
	scopeKey string
	selected map[uuid.UUID]struct{}
}

func NewManager(jobSvc JobCommander, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		jobs:     jobSvc,
		logger:   logger,
		selected: make(map[uuid.UUID]struct{}),
	}
}

// EnterSelectionMode starts a fresh selection round.
func (m *Manager) EnterSelectionMode() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = true
	m.selected = make(map[uuid.UUID]struct{})
}

// ExitSelectionMode drops the selection entirely.
func (m *Manager) ExitSelectionMode() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = false
	m.selected = make(map[uuid.UUID]struct{})
}

func (m *Manager) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// SetScope pins the selection to a filter scope. A changed key clears the
// selection; the same key prunes ids that fell out of the visible set.
func (m *Manager) SetScope(key string, visibleIDs []uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if key != m.scopeKey {
		m.scopeKey = key
		m.selected = make(map[uuid.UUID]struct{})
		return
	}

	visible := make(map[uuid.UUID]struct{}, len(visibleIDs))
	for _, id := range visibleIDs {
		visible[id] = struct{}{}
	}
	for id := range m.selected {
		if _, ok := visible[id]; !ok {
			delete(m.selected, id)
		}
	}
}

// Toggle flips one id in or out of the selection.
func (m *Manager) Toggle(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.selected[id]; ok {
		delete(m.selected, id)
	} else {
		m.selected[id] = struct{}{}
	}
}

func (m *Manager) Select(ids ...uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.selected[id] = struct{}{}
	}
}

func (m *Manager) Selected() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uuid.UUID, 0, len(m.selected))
	for id := range m.selected {
		out = append(out, id)
	}
	return out
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.selected)
}

// ApplyBulk runs the action against each id independently. One job's
// rejection never blocks the rest; the caller gets an outcome per id in
// input order so partial success is reportable.
func (m *Manager) ApplyBulk(ctx context.Context, ids []uuid.UUID, action Action) ([]Outcome, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	outcomes := make([]Outcome, 0, len(ids))
	for _, id := range ids {
		var (
			job *entity.SyncJob
			err error
		)
		switch action {
		case ActionApprove:
			job, err = m.jobs.ApproveJob(ctx, id)
		case ActionCancel:
			job, err = m.jobs.CancelJob(ctx, id, "bulk cancel")
		case ActionRetry:
			job, err = m.jobs.RetryJob(ctx, id)
		default:
			return nil, fmt.Errorf("unknown bulk action %q", action)
		}

		if err != nil {
			outcomes = append(outcomes, Outcome{JobID: id, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, Outcome{JobID: id, OK: true, Status: job.Status})
	}

	m.logger.Info("bulk action applied", "action", action, "total", len(ids), "ok", countOK(outcomes))
	return outcomes, nil
}

// ApplySelected runs the action on the current selection and clears it.
func (m *Manager) ApplySelected(ctx context.Context, action Action) ([]Outcome, error) {
	ids := m.Selected()
	outcomes, err := m.ApplyBulk(ctx, ids, action)
	if err != nil {
		return nil, err
	}
	m.ExitSelectionMode()
	return outcomes, nil
}

func countOK(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.OK {
			n++
		}
	}
	return n
}
