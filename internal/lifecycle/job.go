package lifecycle

import (
	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// ExecuteRunArgs is the River job that executes the tasks of one run in order.
type ExecuteRunArgs struct {
	// RunID is the run to execute. It is unique so a run never has two executors.
	RunID uuid.UUID `json:"run_id" river:"unique"`

	// maxAttempts configures the maximum number of times River should retry the job.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the executor.
func (args ExecuteRunArgs) Kind() string { return "ExecuteScanRun" }

// InsertOpts returns the River options of the job. A run keeps at most one
// job in any state that can still execute it.
func (args ExecuteRunArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
