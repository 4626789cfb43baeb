package halt

import "scanguard/pkg/domain"

// Assessment is what a halt derives from the task ledger before changing anything.
type Assessment struct {
	// Stage is the stage of the running task, or "Initializing" when none runs.
	Stage string
	// CompletedBefore counts tasks that completed before the halt.
	CompletedBefore int
	// Outstanding lists the pending and running tasks the halt cancels.
	Outstanding []domain.TaskID
}

// Assess inspects the execution-ordered tasks of a run.
func Assess(tasks []domain.ScanTask) Assessment {
	a := Assessment{Stage: domain.StageInitializing}
	if current := domain.CurrentTask(tasks); current != nil {
		a.Stage = domain.ClassifyStage(current.Type)
	}

	for i := range tasks {
		switch {
		case tasks[i].Status == domain.TaskStatusCompleted:
			a.CompletedBefore++
		case !tasks[i].Status.IsTerminal():
			a.Outstanding = append(a.Outstanding, tasks[i].ID)
		}
	}

	return a
}
