package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// TaskID uniquely identifies a scan task.
type TaskID uuid.UUID

func (id TaskID) String() string { return uuid.UUID(id).String() }

// Known task types. The set is open: unknown types are stored and classified as-is.
const (
	TaskTypeFingerprint          = "fingerprint"
	TaskTypeTLSCheck             = "tls_check"
	TaskTypeSecurityHeaders      = "security_headers"
	TaskTypeCORSCheck            = "cors_check"
	TaskTypeCookieCheck          = "cookie_check"
	TaskTypeExposureCheck        = "exposure_check"
	TaskTypeEndpointDiscovery    = "endpoint_discovery"
	TaskTypeInjectionSafe        = "injection_safe"
	TaskTypeGraphQLIntrospection = "graphql_introspection"
	TaskTypePerfBaseline         = "perf_baseline"
	TaskTypeLoadRampLight        = "load_ramp_light"
	TaskTypeLoadRampFull         = "load_ramp_full"
	TaskTypeSoakTest             = "soak_test"
	TaskTypeStressTest           = "stress_test"
	TaskTypeReportCompile        = "report_compile"
)

// TaskStatus represents the lifecycle state of a single scan task.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusRunning   TaskStatus = "running"
	TaskStatusCompleted TaskStatus = "completed"
	TaskStatusFailed    TaskStatus = "failed"
	TaskStatusSkipped   TaskStatus = "skipped"
	TaskStatusCanceled  TaskStatus = "canceled"
)

// taskPredecessors lists, for every target status, the statuses a task may leave to reach it.
// running -> pending is a retry and is additionally bounded by the retry budget.
var taskPredecessors = map[TaskStatus][]TaskStatus{ //nolint: gochecknoglobals
	TaskStatusPending:   {TaskStatusRunning},
	TaskStatusRunning:   {TaskStatusPending},
	TaskStatusCompleted: {TaskStatusRunning},
	TaskStatusFailed:    {TaskStatusRunning},
	TaskStatusSkipped:   {TaskStatusPending, TaskStatusRunning},
	TaskStatusCanceled:  {TaskStatusPending, TaskStatusRunning},
}

// IsTerminal reports whether a task in status s can never be re-opened.
func (s TaskStatus) IsTerminal() bool {
	switch s {
	case TaskStatusCompleted, TaskStatusFailed, TaskStatusSkipped, TaskStatusCanceled:
		return true
	default:
		return false
	}
}

// OutstandingTaskStatuses are the non-terminal statuses, i.e. the ones a halt cancels.
func OutstandingTaskStatuses() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusRunning}
}

// TaskPredecessors returns the statuses from which a task may transition into to.
func TaskPredecessors(to TaskStatus) []TaskStatus {
	return slices.Clone(taskPredecessors[to])
}

// CanTransitionTask reports whether from -> to is a legal task transition.
func CanTransitionTask(from, to TaskStatus) bool {
	return slices.Contains(taskPredecessors[to], from)
}

// ValidateTaskTransition returns an *IllegalTransitionError when from -> to is not legal.
func ValidateTaskTransition(from, to TaskStatus) error {
	if !CanTransitionTask(from, to) {
		return &IllegalTransitionError{Entity: "scan task", From: string(from), To: string(to)}
	}

	return nil
}

// ScanTask is one unit of scan work inside a run.
type ScanTask struct {
	ID    TaskID `json:"id"`
	RunID RunID  `json:"runId"`

	// Position is the index of the task in the run's plan.
	Position int `json:"position"`
	// Type is the task type tag, e.g. "tls_check".
	Type string `json:"taskType"`
	// Status is the current lifecycle state.
	Status TaskStatus `json:"status"`
	// Skippable marks tasks whose exhausted retries skip the task instead of failing the run.
	Skippable bool `json:"skippable"`

	Retries    int `json:"retries"`
	MaxRetries int `json:"maxRetries"`

	// Score is reported by the executor when the task completes, if the task produces one.
	Score *float64 `json:"score,omitempty"`

	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`

	ErrorMessage string `json:"errorMessage,omitempty"`
	ErrorDetail  string `json:"errorDetail,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CanRetry reports whether the task still has retry budget left.
func (t ScanTask) CanRetry() bool {
	return t.Retries < t.MaxRetries
}
