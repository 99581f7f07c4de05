package paint

import (
	"fmt"

	"github.com/Garsondee/pitch-grid/internal/grid"
)

// Event kinds recorded by a Session.
const (
	EventClick  = "click"
	EventAssign = "assign"
	EventCopy   = "copy"
	EventClear  = "clear"
	EventCommit = "commit"
	EventError  = "error"
)

// Event is one paint callback or board change.
type Event struct {
	Seq    int
	Kind   string
	Target grid.Cell
	Source grid.Cell
	Detail string
}

// String formats the event as a fixed-width log line.
//
//	0042 copy    7_3   <- 6_3
func (e Event) String() string {
	switch e.Kind {
	case EventCopy:
		return fmt.Sprintf("%04d %-7s %-5s <- %s", e.Seq, e.Kind, e.Target, e.Source)
	case EventCommit, EventError:
		return fmt.Sprintf("%04d %-7s %s", e.Seq, e.Kind, e.Detail)
	default:
		return fmt.Sprintf("%04d %-7s %-5s %s", e.Seq, e.Kind, e.Target, e.Detail)
	}
}

// EventLog is a fixed-capacity ring buffer of events with running totals per
// kind. Totals are not bounded by the capacity.
type EventLog struct {
	entries []Event
	head    int
	count   int
	seq     int
	totals  map[string]int
}

// NewEventLog creates an event log holding at most capacity recent entries.
func NewEventLog(capacity int) *EventLog {
	if capacity < 1 {
		capacity = 1
	}
	return &EventLog{
		entries: make([]Event, capacity),
		totals:  make(map[string]int),
	}
}

// Add appends an event and assigns its sequence number.
func (l *EventLog) Add(e Event) Event {
	l.seq++
	e.Seq = l.seq
	n := len(l.entries)
	l.entries[l.head] = e
	l.head = (l.head + 1) % n
	if l.count < n {
		l.count++
	}
	l.totals[e.Kind]++
	return e
}

// Recent returns the retained entries oldest first.
func (l *EventLog) Recent() []Event {
	n := len(l.entries)
	out := make([]Event, l.count)
	for i := 0; i < l.count; i++ {
		out[i] = l.entries[(l.head-l.count+i+n)%n]
	}
	return out
}

// Count returns how many events of kind were ever added.
func (l *EventLog) Count(kind string) int {
	return l.totals[kind]
}

// Targets returns the targets of retained events of kind, oldest first.
func (l *EventLog) Targets(kind string) []grid.Cell {
	var out []grid.Cell
	for _, e := range l.Recent() {
		if e.Kind == kind {
			out = append(out, e.Target)
		}
	}
	return out
}
