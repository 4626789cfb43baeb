package v1handler

import (
	"scanguard/internal/lifecycle"
	"scanguard/pkg/domain"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
	"github.com/ogen-go/ogen/json"
)

// HaltRequest is the body of POST /v1/scan-runs/halt.
type HaltRequest struct {
	// ScanRunID is kept as sent; an unparsable ID resolves to no run.
	ScanRunID string
	Reason    string
}

// Decode decodes HaltRequest from JSON. A null or missing reason is empty.
func (s *HaltRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode HaltRequest to nil")
	}

	return d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "scan_run_id":
			v, err := decodeOptString(d)
			if err != nil {
				return errors.Wrap(err, "decode field \"scan_run_id\"")
			}
			s.ScanRunID = v
		case "reason":
			v, err := decodeOptString(d)
			if err != nil {
				return errors.Wrap(err, "decode field \"reason\"")
			}
			s.Reason = v
		default:
			return d.Skip()
		}

		return nil
	})
}

// CreateRunRequest is the body of POST /v1/projects/{projectID}/scan-runs.
type CreateRunRequest struct {
	Mode domain.RunMode
}

// Decode decodes CreateRunRequest from JSON.
func (s *CreateRunRequest) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode CreateRunRequest to nil")
	}

	return d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "mode":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"mode\"")
			}
			s.Mode = domain.RunMode(v)
		default:
			return d.Skip()
		}

		return nil
	})
}

func decodeOptString(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}

	return d.Str()
}

func encodeOptDateTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	json.EncodeDateTime(e, t)
}

func encodeOptFloat(e *jx.Encoder, f *float64) {
	if f == nil {
		e.Null()

		return
	}
	e.Float64(*f)
}

// EncodeAudit encodes an audit record.
func EncodeAudit(e *jx.Encoder, a domain.AuditRecord) {
	e.ObjStart()
	e.FieldStart("halted_by")
	e.Str(a.HaltedBy)
	e.FieldStart("halted_at")
	json.EncodeDateTime(e, a.HaltedAt)
	e.FieldStart("reason")
	e.Str(a.Reason)
	e.FieldStart("stage_when_halted")
	e.Str(a.StageWhenHalted)
	e.FieldStart("tasks_canceled")
	e.Int(a.TasksCanceled)
	e.FieldStart("tasks_completed_before_halt")
	e.Int(a.TasksCompletedBeforeHalt)
	e.ObjEnd()
}

// EncodeRun encodes a scan run. The raw error payload is not exposed.
func EncodeRun(e *jx.Encoder, r domain.ScanRun) {
	e.ObjStart()
	e.FieldStart("id")
	json.EncodeUUID(e, uuid.UUID(r.ID))
	e.FieldStart("project_id")
	json.EncodeUUID(e, uuid.UUID(r.ProjectID))
	e.FieldStart("mode")
	e.Str(string(r.Mode))
	e.FieldStart("status")
	e.Str(string(r.Status))
	e.FieldStart("security_score")
	encodeOptFloat(e, r.Scores.Security)
	e.FieldStart("reliability_score")
	encodeOptFloat(e, r.Scores.Reliability)
	e.FieldStart("started_at")
	encodeOptDateTime(e, r.StartedAt)
	e.FieldStart("ended_at")
	encodeOptDateTime(e, r.EndedAt)
	if r.Status == domain.RunStatusFailed && r.ErrorMessage != "" {
		e.FieldStart("error_message")
		e.Str(r.ErrorMessage)
	}
	if r.ErrorSummary != "" {
		e.FieldStart("error_summary")
		e.Str(r.ErrorSummary)
	}
	e.FieldStart("created_at")
	json.EncodeDateTime(e, r.CreatedAt)
	e.FieldStart("updated_at")
	encodeOptDateTime(e, r.UpdatedAt)
	e.ObjEnd()
}

// EncodeTask encodes a scan task together with its stage.
func EncodeTask(e *jx.Encoder, t domain.ScanTask) {
	e.ObjStart()
	e.FieldStart("id")
	json.EncodeUUID(e, uuid.UUID(t.ID))
	e.FieldStart("position")
	e.Int(t.Position)
	e.FieldStart("task_type")
	e.Str(t.Type)
	e.FieldStart("stage")
	e.Str(domain.ClassifyStage(t.Type))
	e.FieldStart("status")
	e.Str(string(t.Status))
	e.FieldStart("skippable")
	e.Bool(t.Skippable)
	e.FieldStart("retries")
	e.Int(t.Retries)
	e.FieldStart("max_retries")
	e.Int(t.MaxRetries)
	e.FieldStart("score")
	encodeOptFloat(e, t.Score)
	e.FieldStart("started_at")
	encodeOptDateTime(e, t.StartedAt)
	e.FieldStart("ended_at")
	encodeOptDateTime(e, t.EndedAt)
	if t.ErrorMessage != "" {
		e.FieldStart("error_message")
		e.Str(t.ErrorMessage)
	}
	if t.ErrorDetail != "" {
		e.FieldStart("error_detail")
		e.Str(t.ErrorDetail)
	}
	e.ObjEnd()
}

func encodeTasks(e *jx.Encoder, tasks []domain.ScanTask) {
	e.ArrStart()
	for i := range tasks {
		EncodeTask(e, tasks[i])
	}
	e.ArrEnd()
}

// EncodeProgress encodes the progress counts, the completion percentage and
// the stage currently running.
func EncodeProgress(e *jx.Encoder, p domain.Progress, tasks []domain.ScanTask) {
	e.ObjStart()
	e.FieldStart("total")
	e.Int(p.Total)
	e.FieldStart("completed")
	e.Int(p.Completed)
	e.FieldStart("running")
	e.Int(p.Running)
	e.FieldStart("failed")
	e.Int(p.Failed)
	e.FieldStart("pending")
	e.Int(p.Pending)
	e.FieldStart("skipped")
	e.Int(p.Skipped)
	e.FieldStart("canceled")
	e.Int(p.Canceled)
	e.FieldStart("percent_complete")
	e.Float64(p.PercentComplete())
	e.FieldStart("current_stage")
	if current := domain.CurrentTask(tasks); current != nil {
		e.Str(domain.ClassifyStage(current.Type))
	} else {
		e.Null()
	}
	e.ObjEnd()
}

// EncodeOverview encodes the fields of a run overview into the enclosing object.
func EncodeOverview(e *jx.Encoder, o lifecycle.Overview) {
	e.FieldStart("run")
	EncodeRun(e, o.Run)
	e.FieldStart("progress")
	EncodeProgress(e, o.Progress, o.Tasks)
	e.FieldStart("tasks")
	encodeTasks(e, o.Tasks)
	if o.Audit != nil {
		e.FieldStart("audit")
		EncodeAudit(e, *o.Audit)
	}
}
