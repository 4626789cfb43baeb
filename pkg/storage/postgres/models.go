package postgres

import (
	"database/sql"
	"scanguard/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

type PgProject struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	OwnerID   uuid.UUID `db:"owner_id"`
	Name      string    `db:"name"`
	TargetURL string    `db:"target_url"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgProject) ToDomain() *domain.Project {
	return &domain.Project{
		ID:        domain.ProjectID(p.ID),
		OwnerID:   domain.UserID(p.OwnerID),
		Name:      p.Name,
		TargetURL: p.TargetURL,
		CreatedAt: p.CreatedAt,
	}
}

func (p *PgProject) FromDomain(project domain.Project) {
	*p = PgProject{
		ID:        uuid.UUID(project.ID),
		OwnerID:   uuid.UUID(project.OwnerID),
		Name:      project.Name,
		TargetURL: project.TargetURL,
		CreatedAt: project.CreatedAt,
	}
}

type PgRun struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	ProjectID uuid.UUID `db:"project_id"`

	Mode   string `db:"mode"`
	Status string `db:"status"`

	SecurityScore    sql.NullFloat64 `db:"security_score"    goqu:"skipinsert"`
	ReliabilityScore sql.NullFloat64 `db:"reliability_score" goqu:"skipinsert"`

	StartedAt    sql.NullTime   `db:"started_at"    goqu:"skipinsert"`
	EndedAt      sql.NullTime   `db:"ended_at"      goqu:"skipinsert"`
	ErrorMessage sql.NullString `db:"error_message" goqu:"skipinsert"`
	ErrorSummary sql.NullString `db:"error_summary" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgRun) ToDomain() *domain.ScanRun {
	return &domain.ScanRun{
		ID:        domain.RunID(p.ID),
		ProjectID: domain.ProjectID(p.ProjectID),
		Mode:      domain.RunMode(p.Mode),
		Status:    domain.RunStatus(p.Status),
		Scores: domain.Scores{
			Security:    nullFloatPtr(p.SecurityScore),
			Reliability: nullFloatPtr(p.ReliabilityScore),
		},
		StartedAt:    p.StartedAt.Time,
		EndedAt:      p.EndedAt.Time,
		ErrorMessage: p.ErrorMessage.String,
		ErrorSummary: p.ErrorSummary.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

// FromDomain only carries the columns written on insert; everything else is
// set through guarded updates.
func (p *PgRun) FromDomain(run domain.ScanRun) {
	*p = PgRun{
		ID:        uuid.UUID(run.ID),
		ProjectID: uuid.UUID(run.ProjectID),
		Mode:      string(run.Mode),
		Status:    string(run.Status),
	}
}

type PgTask struct {
	ID    uuid.UUID `db:"id"     goqu:"skipinsert"`
	RunID uuid.UUID `db:"run_id"`

	Position  int    `db:"position"`
	Type      string `db:"task_type"`
	Status    string `db:"status"`
	Skippable bool   `db:"skippable"`

	Retries    int `db:"retries"     goqu:"skipinsert"`
	MaxRetries int `db:"max_retries"`

	Score sql.NullFloat64 `db:"score" goqu:"skipinsert"`

	StartedAt    sql.NullTime   `db:"started_at"    goqu:"skipinsert"`
	EndedAt      sql.NullTime   `db:"ended_at"      goqu:"skipinsert"`
	ErrorMessage sql.NullString `db:"error_message" goqu:"skipinsert"`
	ErrorDetail  sql.NullString `db:"error_detail"  goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTask) ToDomain() domain.ScanTask {
	return domain.ScanTask{
		ID:           domain.TaskID(p.ID),
		RunID:        domain.RunID(p.RunID),
		Position:     p.Position,
		Type:         p.Type,
		Status:       domain.TaskStatus(p.Status),
		Skippable:    p.Skippable,
		Retries:      p.Retries,
		MaxRetries:   p.MaxRetries,
		Score:        nullFloatPtr(p.Score),
		StartedAt:    p.StartedAt.Time,
		EndedAt:      p.EndedAt.Time,
		ErrorMessage: p.ErrorMessage.String,
		ErrorDetail:  p.ErrorDetail.String,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgTask) FromDomain(task domain.ScanTask) {
	*p = PgTask{
		ID:         uuid.UUID(task.ID),
		RunID:      uuid.UUID(task.RunID),
		Position:   task.Position,
		Type:       task.Type,
		Status:     string(task.Status),
		Skippable:  task.Skippable,
		MaxRetries: task.MaxRetries,
	}
}

type PgHalt struct {
	RunID uuid.UUID `db:"run_id"`

	HaltedBy                 string    `db:"halted_by"`
	HaltedAt                 time.Time `db:"halted_at"`
	Reason                   string    `db:"reason"`
	StageWhenHalted          string    `db:"stage_when_halted"`
	TasksCanceled            int       `db:"tasks_canceled"`
	TasksCompletedBeforeHalt int       `db:"tasks_completed_before_halt"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgHalt) ToDomain() *domain.AuditRecord {
	return &domain.AuditRecord{
		HaltedBy:                 p.HaltedBy,
		HaltedAt:                 p.HaltedAt,
		Reason:                   p.Reason,
		StageWhenHalted:          p.StageWhenHalted,
		TasksCanceled:            p.TasksCanceled,
		TasksCompletedBeforeHalt: p.TasksCompletedBeforeHalt,
	}
}

func (p *PgHalt) FromDomain(runID domain.RunID, record domain.AuditRecord) {
	*p = PgHalt{
		RunID:                    uuid.UUID(runID),
		HaltedBy:                 record.HaltedBy,
		HaltedAt:                 record.HaltedAt,
		Reason:                   record.Reason,
		StageWhenHalted:          record.StageWhenHalted,
		TasksCanceled:            record.TasksCanceled,
		TasksCompletedBeforeHalt: record.TasksCompletedBeforeHalt,
	}
}

func nullFloatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64

	return &f
}

// nullable renders nil pointers as SQL NULL in update records.
func nullable[T any](v *T) any {
	if v == nil {
		return goqu.L("NULL")
	}

	return *v
}

// nullableString renders the empty string as SQL NULL in update records.
func nullableString(s string) any {
	if s == "" {
		return goqu.L("NULL")
	}

	return s
}

func pgTasksToDomain(rows []PgTask) []domain.ScanTask {
	out := make([]domain.ScanTask, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}
