package selection

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optipix/imagesync/constants"
	"github.com/optipix/imagesync/internal/entity"
	"github.com/optipix/imagesync/internal/jobs"
)

// fakeCommander approves/cancels/retries based on a per-job status table,
// mimicking the transition gating of the real job service.
type fakeCommander struct {
	statuses map[uuid.UUID]constants.JobStatus
	calls    []string
}

func newFakeCommander() *fakeCommander {
	return &fakeCommander{statuses: make(map[uuid.UUID]constants.JobStatus)}
}

func (f *fakeCommander) add(status constants.JobStatus) uuid.UUID {
	id := uuid.New()
	f.statuses[id] = status
	return id
}

func (f *fakeCommander) ApproveJob(_ context.Context, id uuid.UUID) (*entity.SyncJob, error) {
	f.calls = append(f.calls, "approve")
	if f.statuses[id] != constants.JobStatusAwaitingApproval {
		return nil, &jobs.InvalidTransitionError{JobID: id, From: f.statuses[id], Command: "approve"}
	}
	f.statuses[id] = constants.JobStatusApproved
	return &entity.SyncJob{ID: id, Status: constants.JobStatusApproved}, nil
}

func (f *fakeCommander) CancelJob(_ context.Context, id uuid.UUID, _ string) (*entity.SyncJob, error) {
	f.calls = append(f.calls, "cancel")
	if f.statuses[id].IsTerminal() {
		return nil, &jobs.InvalidTransitionError{JobID: id, From: f.statuses[id], Command: "cancel"}
	}
	f.statuses[id] = constants.JobStatusCancelled
	return &entity.SyncJob{ID: id, Status: constants.JobStatusCancelled}, nil
}

func (f *fakeCommander) RetryJob(_ context.Context, id uuid.UUID) (*entity.SyncJob, error) {
	f.calls = append(f.calls, "retry")
	if f.statuses[id] != constants.JobStatusFailed {
		return nil, &jobs.InvalidTransitionError{JobID: id, From: f.statuses[id], Command: "retry"}
	}
	f.statuses[id] = constants.JobStatusPending
	return &entity.SyncJob{ID: id, Status: constants.JobStatusPending}, nil
}

func TestScopeChangeClearsSelection(t *testing.T) {
	m := NewManager(newFakeCommander(), nil)
	a, b := uuid.New(), uuid.New()

	m.SetScope("group=active", []uuid.UUID{a, b})
	m.Select(a, b)
	assert.Equal(t, 2, m.Count())

	m.SetScope("group=failed", []uuid.UUID{a, b})
	assert.Zero(t, m.Count(), "new filter scope must drop the selection")
}

func TestSameScopePrunesInvisibleIDs(t *testing.T) {
	m := NewManager(newFakeCommander(), nil)
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	m.SetScope("group=active", []uuid.UUID{a, b, c})
	m.Select(a, b, c)

	// b fell off the current page/result set
	m.SetScope("group=active", []uuid.UUID{a, c})
	assert.ElementsMatch(t, []uuid.UUID{a, c}, m.Selected())
}

func TestSelectionModeLifecycle(t *testing.T) {
	m := NewManager(newFakeCommander(), nil)
	id := uuid.New()

	m.EnterSelectionMode()
	assert.True(t, m.Active())
	m.Select(id)
	assert.Equal(t, 1, m.Count())

	m.ExitSelectionMode()
	assert.False(t, m.Active())
	assert.Zero(t, m.Count())

	// re-entering starts empty
	m.Select(id)
	m.EnterSelectionMode()
	assert.Zero(t, m.Count())
}

func TestToggle(t *testing.T) {
	m := NewManager(newFakeCommander(), nil)
	id := uuid.New()

	m.Toggle(id)
	assert.Equal(t, 1, m.Count())
	m.Toggle(id)
	assert.Zero(t, m.Count())
}

func TestApplyBulkPartialSuccess(t *testing.T) {
	cmd := newFakeCommander()
	m := NewManager(cmd, nil)

	ready := cmd.add(constants.JobStatusAwaitingApproval)
	wrong := cmd.add(constants.JobStatusPending)
	also := cmd.add(constants.JobStatusAwaitingApproval)

	outcomes, err := m.ApplyBulk(context.Background(), []uuid.UUID{ready, wrong, also}, ActionApprove)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].OK)
	assert.Equal(t, constants.JobStatusApproved, outcomes[0].Status)
	assert.False(t, outcomes[1].OK)
	assert.Contains(t, outcomes[1].Error, "cannot approve")
	assert.True(t, outcomes[2].OK, "failure on one job must not block the rest")

	// the rejected job is untouched
	assert.Equal(t, constants.JobStatusPending, cmd.statuses[wrong])
}

func TestApplyBulkActions(t *testing.T) {
	cmd := newFakeCommander()
	m := NewManager(cmd, nil)

	cancellable := cmd.add(constants.JobStatusProcessing)
	outcomes, err := m.ApplyBulk(context.Background(), []uuid.UUID{cancellable}, ActionCancel)
	require.NoError(t, err)
	assert.True(t, outcomes[0].OK)
	assert.Equal(t, constants.JobStatusCancelled, outcomes[0].Status)

	failed := cmd.add(constants.JobStatusFailed)
	outcomes, err = m.ApplyBulk(context.Background(), []uuid.UUID{failed}, ActionRetry)
	require.NoError(t, err)
	assert.True(t, outcomes[0].OK)
	assert.Equal(t, constants.JobStatusPending, outcomes[0].Status)

	_, err = m.ApplyBulk(context.Background(), []uuid.UUID{failed}, Action("explode"))
	require.Error(t, err)
}

func TestApplyBulkEmpty(t *testing.T) {
	m := NewManager(newFakeCommander(), nil)
	outcomes, err := m.ApplyBulk(context.Background(), nil, ActionApprove)
	require.NoError(t, err)
	assert.Nil(t, outcomes)
}

func TestApplySelectedClearsSelection(t *testing.T) {
	cmd := newFakeCommander()
	m := NewManager(cmd, nil)

	id := cmd.add(constants.JobStatusAwaitingApproval)
	m.EnterSelectionMode()
	m.Select(id)

	outcomes, err := m.ApplySelected(context.Background(), ActionApprove)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].OK)
	assert.Zero(t, m.Count())
	assert.False(t, m.Active())
}
