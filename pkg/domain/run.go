package domain

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
)

// RunID uniquely identifies a scan run.
type RunID uuid.UUID

func (id RunID) String() string { return uuid.UUID(id).String() }

// RunMode describes how the target is approached. It is fixed at creation.
type RunMode string

const (
	RunModeURLOnly       RunMode = "url_only"
	RunModeAuthenticated RunMode = "authenticated"
	RunModeHybrid        RunMode = "hybrid"
)

// Valid reports whether m is a known run mode.
func (m RunMode) Valid() bool {
	switch m {
	case RunModeURLOnly, RunModeAuthenticated, RunModeHybrid:
		return true
	default:
		return false
	}
}

// RunStatus represents the lifecycle state of a scan run.
type RunStatus string

const (
	// RunStatusPending indicates the run was created with its plan and no task has started yet.
	RunStatusPending RunStatus = "pending"
	// RunStatusRunning indicates the executor is working through the plan.
	RunStatusRunning RunStatus = "running"
	// RunStatusPaused indicates the run was suspended and will return to running.
	RunStatusPaused RunStatus = "paused"
	// RunStatusCompleted indicates every task completed or was skipped. Terminal.
	RunStatusCompleted RunStatus = "completed"
	// RunStatusFailed indicates a non-skippable task exhausted its retry budget. Terminal.
	RunStatusFailed RunStatus = "failed"
	// RunStatusCanceled indicates the run was halted by an operator. Terminal.
	RunStatusCanceled RunStatus = "canceled"
)

// runPredecessors lists, for every target status, the statuses a run may leave to reach it.
var runPredecessors = map[RunStatus][]RunStatus{ //nolint: gochecknoglobals
	RunStatusRunning:   {RunStatusPending, RunStatusPaused},
	RunStatusPaused:    {RunStatusRunning},
	RunStatusCompleted: {RunStatusRunning},
	RunStatusFailed:    {RunStatusRunning},
	RunStatusCanceled:  {RunStatusPending, RunStatusRunning, RunStatusPaused},
}

// Valid reports whether s is a known run status.
func (s RunStatus) Valid() bool {
	switch s {
	case RunStatusPending, RunStatusRunning, RunStatusPaused,
		RunStatusCompleted, RunStatusFailed, RunStatusCanceled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s RunStatus) IsTerminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed || s == RunStatusCanceled
}

// Haltable reports whether a run in status s may be halted. Any known
// non-terminal status is haltable.
func (s RunStatus) Haltable() bool {
	return s.Valid() && !s.IsTerminal()
}

// RunPredecessors returns the statuses from which a run may transition into to.
// The result is a copy and may be modified by the caller.
func RunPredecessors(to RunStatus) []RunStatus {
	return slices.Clone(runPredecessors[to])
}

// CanTransitionRun reports whether from -> to is a legal run transition.
func CanTransitionRun(from, to RunStatus) bool {
	return slices.Contains(runPredecessors[to], from)
}

// ValidateRunTransition returns an *IllegalTransitionError when from -> to is not legal.
func ValidateRunTransition(from, to RunStatus) error {
	if !CanTransitionRun(from, to) {
		return &IllegalTransitionError{Entity: "scan run", From: string(from), To: string(to)}
	}

	return nil
}

// IllegalTransitionError reports an attempt to move an entity along an edge the
// state machine does not have.
type IllegalTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition %s -> %s", e.Entity, e.From, e.To)
}

// Scores holds the results computed when a run completes. Either may be nil
// when the plan had no task contributing to it.
type Scores struct {
	Security    *float64 `json:"securityScore,omitempty"`
	Reliability *float64 `json:"reliabilityScore,omitempty"`
}

// ScanRun is one execution of a task plan against a project's target.
type ScanRun struct {
	// ID is the unique identifier of the run.
	ID RunID `json:"id"`
	// ProjectID is the owning project.
	ProjectID ProjectID `json:"projectId"`

	// Mode is fixed at creation.
	Mode RunMode `json:"mode"`
	// Status is the current lifecycle state.
	Status RunStatus `json:"status"`
	// Scores are set only when the run completes.
	Scores Scores `json:"scores"`

	// StartedAt is set when the first task begins; zero means not started.
	StartedAt time.Time `json:"startedAt"`
	// EndedAt is set exactly once, on entering a terminal status.
	EndedAt time.Time `json:"endedAt"`

	// ErrorMessage holds a human error on failure or the serialized audit record on halt.
	ErrorMessage string `json:"-"`
	// ErrorSummary holds a short human summary of a halt.
	ErrorSummary string `json:"errorSummary,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
