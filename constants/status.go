package constants

// JobStatus is the canonical status for rows in sync_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending          JobStatus = "PENDING"           // waiting to be claimed by a worker
	JobStatusProcessing       JobStatus = "PROCESSING"        // items are being optimized
	JobStatusAwaitingApproval JobStatus = "AWAITING_APPROVAL" // all items done, operator review pending
	JobStatusApproved         JobStatus = "APPROVED"          // operator approved, push not started
	JobStatusPushing          JobStatus = "PUSHING"           // writing optimized images back to the storefront
	JobStatusCompleted        JobStatus = "COMPLETED"         // terminal success
	JobStatusFailed           JobStatus = "FAILED"            // terminal failure
	JobStatusCancelled        JobStatus = "CANCELLED"         // terminal, operator cancel or approval expiry
)

// ItemStatus is the canonical status for rows in job_item.
type ItemStatus string

const (
	ItemStatusQueued     ItemStatus = "QUEUED"
	ItemStatusProcessing ItemStatus = "PROCESSING"
	ItemStatusReady      ItemStatus = "READY" // optimized, waiting for approval/push
	ItemStatusPushing    ItemStatus = "PUSHING"
	ItemStatusPushed     ItemStatus = "PUSHED"
	ItemStatusFailed     ItemStatus = "FAILED"
	ItemStatusSkipped    ItemStatus = "SKIPPED"
)

// StatusGroup is the coarse filter used by the queue projection and its callers.
type StatusGroup string

const (
	GroupAll       StatusGroup = "all"
	GroupActive    StatusGroup = "active"
	GroupCompleted StatusGroup = "completed"
	GroupFailed    StatusGroup = "failed"
)

var jobStatuses = []JobStatus{
	JobStatusPending,
	JobStatusProcessing,
	JobStatusAwaitingApproval,
	JobStatusApproved,
	JobStatusPushing,
	JobStatusCompleted,
	JobStatusFailed,
	JobStatusCancelled,
}

var itemStatuses = []ItemStatus{
	ItemStatusQueued,
	ItemStatusProcessing,
	ItemStatusReady,
	ItemStatusPushing,
	ItemStatusPushed,
	ItemStatusFailed,
	ItemStatusSkipped,
}

// JobStatuses returns all job statuses as strings, for schema validation.
func JobStatuses() []string {
	out := make([]string, len(jobStatuses))
	for i, s := range jobStatuses {
		out[i] = string(s)
	}
	return out
}

// ItemStatuses returns all item statuses as strings, for schema validation.
func ItemStatuses() []string {
	out := make([]string, len(itemStatuses))
	for i, s := range itemStatuses {
		out[i] = string(s)
	}
	return out
}

// StatusesForGroup expands a group into the job statuses it covers.
// This is the single place that defines group membership; the state machine,
// the queue projection, and the API surface all go through it.
// GroupAll returns nil, meaning "no status filter".
func StatusesForGroup(g StatusGroup) []JobStatus {
	switch g {
	case GroupActive:
		// APPROVED is in flight: an approved-but-unclaimed job still has an
		// open token hold and a push run ahead of it.
		return []JobStatus{JobStatusPending, JobStatusProcessing, JobStatusAwaitingApproval, JobStatusApproved, JobStatusPushing}
	case GroupCompleted:
		return []JobStatus{JobStatusCompleted}
	case GroupFailed:
		return []JobStatus{JobStatusFailed}
	default:
		return nil
	}
}

// IsTerminal reports whether a job status is terminal. Terminal jobs are
// never mutated again except for archival bookkeeping.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// IsActive reports whether the status belongs to GroupActive.
func (s JobStatus) IsActive() bool {
	for _, a := range StatusesForGroup(GroupActive) {
		if s == a {
			return true
		}
	}
	return false
}

// IsProcessed reports whether an item has reached a terminal outcome for the
// processing phase. The job-level barrier to AWAITING_APPROVAL fires once
// every item satisfies this.
func (s ItemStatus) IsProcessed() bool {
	switch s {
	case ItemStatusReady, ItemStatusPushed, ItemStatusFailed, ItemStatusSkipped:
		return true
	}
	return false
}
