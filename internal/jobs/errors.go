package jobs

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/optipix/imagesync/constants"
)

// InvalidTransitionError rejects a lifecycle command issued against a job
// whose current state does not permit it. The job is left unchanged.
type InvalidTransitionError struct {
	JobID   uuid.UUID
	From    constants.JobStatus
	Command string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s job %s in state %s", e.Command, e.JobID, e.From)
}

var (
	ErrNoItems      = errors.New("job must enumerate at least one item")
	ErrTooManyItems = errors.New("item count exceeds the batch limit")
	ErrBadPreset    = errors.New("exactly one of preset id or custom prompt is required")
)
