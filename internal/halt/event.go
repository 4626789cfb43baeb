package halt

import (
	"context"
	"scanguard/pkg/bus"
	"scanguard/pkg/domain"
	"time"
)

// Event is published after a halt committed.
type Event struct {
	ScanRunID       string    `json:"scan_run_id"`
	HaltedBy        string    `json:"halted_by"`
	HaltedAt        time.Time `json:"halted_at"`
	Reason          string    `json:"reason"`
	StageWhenHalted string    `json:"stage_when_halted"`
}

// NewEvent builds the event announcing the halt of runID.
func NewEvent(runID domain.RunID, record domain.AuditRecord) Event {
	return Event{
		ScanRunID:       runID.String(),
		HaltedBy:        record.HaltedBy,
		HaltedAt:        record.HaltedAt,
		Reason:          record.Reason,
		StageWhenHalted: record.StageWhenHalted,
	}
}

// BusNotifier publishes halt events on a bus subject.
type BusNotifier struct {
	bus     *bus.Bus
	subject string
}

// NewBusNotifier returns a Notifier publishing to subject on b.
func NewBusNotifier(b *bus.Bus, subject string) *BusNotifier {
	return &BusNotifier{bus: b, subject: subject}
}

func (n *BusNotifier) Halted(ctx context.Context, event Event) error {
	return n.bus.Publish(ctx, n.subject, event) //nolint: wrapcheck
}

// NopNotifier drops events. It is used when no bus is configured.
type NopNotifier struct{}

func (NopNotifier) Halted(context.Context, Event) error { return nil }
