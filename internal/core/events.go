package core

import "fmt"

// EventKind identifies a discrete outbound game event. Events are consumed
// by collaborators that play sounds, draw effects or log.
type EventKind int

const (
	EventJump EventKind = iota
	EventCollect
	EventWin
	EventHit
	EventGameOver
	EventStomp
	EventChug
	EventThrow
	EventHonk
	EventBoost
	EventComplete
	EventResumeAudio
	EventReset
)

var eventNames = map[EventKind]string{
	EventJump:        "jump",
	EventCollect:     "collect",
	EventWin:         "win",
	EventHit:         "hit",
	EventGameOver:    "gameover",
	EventStomp:       "stomp",
	EventChug:        "chug",
	EventThrow:       "throw",
	EventHonk:        "honk",
	EventBoost:       "boost",
	EventComplete:    "complete",
	EventResumeAudio: "resume-audio",
	EventReset:       "reset",
}

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is a fire-and-forget notification emitted during a tick.
type Event struct {
	Kind EventKind
	Pos  Vec // where it happened, in world units (zero if not positional)

	// Speed and Interval are set for EventChug: the train speed and the
	// time until the next chug in milliseconds.
	Speed    float64
	Interval float64
}

func (e Event) String() string {
	if e.Kind == EventChug {
		return fmt.Sprintf("%s(speed=%.2f, interval=%.0fms)", e.Kind, e.Speed, e.Interval)
	}
	return e.Kind.String()
}

// EventQueue is the per-tick outbound FIFO of events.
type EventQueue struct {
	items []Event
}

// Push appends an event.
func (q *EventQueue) Push(e Event) {
	q.items = append(q.items, e)
}

// Emit appends an event with only a kind.
func (q *EventQueue) Emit(kind EventKind) {
	q.Push(Event{Kind: kind})
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.items)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
