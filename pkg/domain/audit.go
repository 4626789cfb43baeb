package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// DefaultHaltReason is recorded when the operator gives no reason.
	DefaultHaltReason = "No reason provided"
	// HaltedTaskMessage marks tasks canceled by a halt.
	HaltedTaskMessage = "Halted by operator"
)

// AuditRecord is the structured summary produced by a halt: who, when, why and
// what was in flight. Exactly one is produced per run.
type AuditRecord struct {
	HaltedBy                 string    `json:"halted_by"`
	HaltedAt                 time.Time `json:"halted_at"`
	Reason                   string    `json:"reason"`
	StageWhenHalted          string    `json:"stage_when_halted"`
	TasksCanceled            int       `json:"tasks_canceled"`
	TasksCompletedBeforeHalt int       `json:"tasks_completed_before_halt"`
}

// TaskDetail composes the error detail stamped on every task the halt canceled.
func (a AuditRecord) TaskDetail() string {
	return fmt.Sprintf("Reason: %s | Stage: %s", a.Reason, a.StageWhenHalted)
}

// Summary is the short human summary stored next to the serialized record.
func (a AuditRecord) Summary() string {
	return fmt.Sprintf("Halted by %s during %s: %s (%d tasks canceled, %d completed before halt)",
		a.HaltedBy, a.StageWhenHalted, a.Reason, a.TasksCanceled, a.TasksCompletedBeforeHalt)
}

// Marshal serializes the record for storage on the run's error field.
func (a AuditRecord) Marshal() (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("could not marshal audit record: %w", err)
	}

	return string(b), nil
}

// UnmarshalAuditRecord parses a record produced by AuditRecord.Marshal.
func UnmarshalAuditRecord(s string) (*AuditRecord, error) {
	var a AuditRecord
	if err := json.Unmarshal([]byte(s), &a); err != nil {
		return nil, fmt.Errorf("could not unmarshal audit record: %w", err)
	}

	return &a, nil
}
