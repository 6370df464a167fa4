package audit

import "github.com/sirupsen/logrus"

// Schedule actions recorded in the audit trail.
const (
	ActionScheduleCreated     = "schedule_created"
	ActionScheduleUpdated     = "schedule_updated"
	ActionScheduleRescheduled = "schedule_rescheduled"
	ActionScheduleStarted     = "schedule_started"
	ActionScheduleCompleted   = "schedule_completed"
	ActionScheduleCancelled   = "schedule_cancelled"
	ActionSchedulePaid        = "schedule_paid"
	ActionScheduleDeleted     = "schedule_deleted"
	ActionSettingsUpdated     = "settings_updated"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink persists one audit record. *Logger is the production sink.
type Sink interface {
	Log(userID *uint, action, entity string, entityID *uint, metadata any) error
}

// Dispatcher writes audit events from a background worker so the
// request path never waits on the audit table.
type Dispatcher struct {
	sink  Sink
	log   *logrus.Logger
	queue chan Event
}

func NewDispatcher(sink Sink, log *logrus.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		log:   log,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.WithError(err).Warn("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full, drop rather than block the request
		d.log.Warn("audit queue full, dropping event")
	}
}
