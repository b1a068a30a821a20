package audit

import "log"

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Recorder is the write side of the audit trail.
type Recorder interface {
	Dispatch(ev Event)
}

// Dispatcher persists events on a background worker so audit writes
// never sit on the request path.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event rather than block the API
		log.Println("audit queue full, dropping event")
	}
}
