package domain

import "fmt"

// Progress is an exact count of a run's tasks by status. Skipped and Canceled
// are tracked separately from the five buckets the dashboard displays, so
// Completed+Running+Failed+Pending+Skipped+Canceled always equals Total.
type Progress struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Running   int `json:"running"`
	Failed    int `json:"failed"`
	Pending   int `json:"pending"`
	Skipped   int `json:"skipped"`
	Canceled  int `json:"canceled"`
}

// ComputeProgress counts tasks by status.
func ComputeProgress(tasks []ScanTask) Progress {
	p := Progress{Total: len(tasks)}
	for i := range tasks {
		switch tasks[i].Status {
		case TaskStatusCompleted:
			p.Completed++
		case TaskStatusRunning:
			p.Running++
		case TaskStatusFailed:
			p.Failed++
		case TaskStatusPending:
			p.Pending++
		case TaskStatusSkipped:
			p.Skipped++
		case TaskStatusCanceled:
			p.Canceled++
		}
	}

	return p
}

// PercentComplete is (completed + failed) / total * 100, or 0 for an empty plan.
func (p Progress) PercentComplete() float64 {
	if p.Total == 0 {
		return 0
	}

	return float64(p.Completed+p.Failed) / float64(p.Total) * 100
}

// CurrentTask returns the running task of an execution-ordered task list, or nil.
// If more than one task is running, the one furthest along the plan wins.
func CurrentTask(tasks []ScanTask) *ScanTask {
	for i := len(tasks) - 1; i >= 0; i-- {
		if tasks[i].Status == TaskStatusRunning {
			return &tasks[i]
		}
	}

	return nil
}

// NextPendingTask returns the first pending task in execution order, or nil.
func NextPendingTask(tasks []ScanTask) *ScanTask {
	for i := range tasks {
		if tasks[i].Status == TaskStatusPending {
			return &tasks[i]
		}
	}

	return nil
}

// FailedRequiredTask returns the first failed task that cannot be skipped, or
// nil. A run holding one can only end as failed.
func FailedRequiredTask(tasks []ScanTask) *ScanTask {
	for i := range tasks {
		if tasks[i].Status == TaskStatusFailed && !tasks[i].Skippable {
			return &tasks[i]
		}
	}

	return nil
}

// CheckSingleRunning returns an error when more than one task is running.
func CheckSingleRunning(tasks []ScanTask) error {
	var running []TaskID
	for i := range tasks {
		if tasks[i].Status == TaskStatusRunning {
			running = append(running, tasks[i].ID)
		}
	}
	if len(running) > 1 {
		return fmt.Errorf("%d tasks running at once, first %s", len(running), running[0])
	}

	return nil
}

// CanComplete reports whether every task completed or was skipped, with none failed.
func CanComplete(tasks []ScanTask) bool {
	for i := range tasks {
		if tasks[i].Status != TaskStatusCompleted && tasks[i].Status != TaskStatusSkipped {
			return false
		}
	}

	return true
}

// ComputeScores averages the scores of completed tasks per category: security
// stages feed the security score, performance stages the reliability score.
func ComputeScores(tasks []ScanTask) Scores {
	var (
		secSum, relSum float64
		secN, relN     int
	)
	for i := range tasks {
		t := tasks[i]
		if t.Status != TaskStatusCompleted || t.Score == nil {
			continue
		}
		stage := ClassifyStage(t.Type)
		switch {
		case IsSecurityStage(stage):
			secSum += *t.Score
			secN++
		case IsReliabilityStage(stage):
			relSum += *t.Score
			relN++
		}
	}

	var scores Scores
	if secN > 0 {
		v := secSum / float64(secN)
		scores.Security = &v
	}
	if relN > 0 {
		v := relSum / float64(relN)
		scores.Reliability = &v
	}

	return scores
}
