package ecs

import "gopkg.in/eapache/queue.v1"

// Event is a tagged payload pushed by systems during a tick and drained by
// whoever drives the world between ticks.
type Event struct {
	Type string
	Data any
}

// EventQueue buffers events in push order. The zero value is ready to use.
type EventQueue struct {
	ring *queue.Queue
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	if q.ring == nil {
		q.ring = queue.New()
	}
	q.ring.Add(evt)
}

// Drain removes and returns every queued event, oldest first.
func (q *EventQueue) Drain() []Event {
	return q.DrainType("")
}

// DrainType removes and returns the events of one type, oldest first, and
// keeps the others queued in their original order. An empty type matches
// every event.
func (q *EventQueue) DrainType(typ string) []Event {
	if q.Len() == 0 {
		return nil
	}
	var out []Event
	for n := q.ring.Length(); n > 0; n-- {
		evt := q.ring.Remove().(Event)
		if typ == "" || evt.Type == typ {
			out = append(out, evt)
			continue
		}
		q.ring.Add(evt)
	}
	return out
}

func (q *EventQueue) Len() int {
	if q == nil || q.ring == nil {
		return 0
	}
	return q.ring.Length()
}
